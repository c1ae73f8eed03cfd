// Package main provides the docgen CLI application.
package main

import (
	"fmt"

	"github.com/deco-project/ci-tools/pkg/docs"
	"github.com/deco-project/ci-tools/pkg/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	outputPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "docgen",
	Short: "Documentation README generator",
	Long: `Documentation README generator.

Reads a docs.yaml configuration describing the documentation set
(header, sections, quick links) and renders docs/README.md from it.`,
	Version:       version.FullString(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := docs.Generate(configPath, outputPath); err != nil {
			fmt.Println("❌", err)
			return err
		}
		fmt.Println("✅ Generated", outputPath)
		fmt.Println("🎉 Documentation README generated successfully!")
		return nil
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "docs.yaml", "path to the documentation configuration file")
	rootCmd.Flags().StringVar(&outputPath, "output", "docs/README.md", "path of the generated README")
}
