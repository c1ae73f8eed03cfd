// Package main provides the lintreport CLI application.
package main

import (
	"fmt"

	"github.com/deco-project/ci-tools/pkg/lintreport"
	"github.com/deco-project/ci-tools/pkg/llm"
	"github.com/deco-project/ci-tools/pkg/platform"
	"github.com/deco-project/ci-tools/pkg/version"
	"github.com/spf13/cobra"
)

var (
	inputPath string
	provider  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lintreport",
	Short: "Lint report pull request bot",
	Long: `Lint report pull request bot.

Reads the golangci-lint output produced by CI, asks a completion service
for a human-readable explanation, and posts it as a comment on the
target pull request. When the lint output is empty nothing is posted.`,
	Version:       version.FullString(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := lintreport.ConfigFromEnv(llm.Provider(provider))
		if err != nil {
			fmt.Println("❌", err)
			return err
		}

		completion, err := llm.NewClient(ctx, cfg.Provider, cfg.APIKey)
		if err != nil {
			fmt.Println("❌", err)
			return err
		}
		defer func() { _ = completion.Close() }()

		bot := lintreport.NewBot(completion, platform.NewGitHubClient(cfg.Token, cfg.Repo), cfg.PRNumber)
		if err := bot.Run(ctx, inputPath); err != nil {
			fmt.Println("❌", err)
			return err
		}
		return nil
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVar(&inputPath, "input", lintreport.DefaultInputPath, "path to the lint output file")
	rootCmd.Flags().StringVar(&provider, "provider", string(llm.ProviderOpenAI), "completion provider (openai, gemini)")
}
