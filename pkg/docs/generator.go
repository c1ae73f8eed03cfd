// Copyright 2026 Deco Project. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/deco-project/ci-tools/pkg/errors"
)

// Generator renders a README from a configuration document.
type Generator struct {
	cfg *Config
}

// NewGenerator creates a generator for the given configuration.
func NewGenerator(cfg *Config) *Generator {
	return &Generator{cfg: cfg}
}

// Render produces the full README content. The three blocks are rendered
// independently and concatenated in fixed order: header, sections, quick
// links. Rendering is deterministic and cannot fail.
func (g *Generator) Render() string {
	var lines []string
	lines = append(lines, RenderHeader(g.cfg)...)
	lines = append(lines, RenderSections(g.cfg)...)
	lines = append(lines, RenderQuickLinks(g.cfg)...)
	return strings.Join(lines, "\n")
}

// Write renders the README and writes it to outputPath, creating any
// missing parent directories and overwriting an existing file.
func (g *Generator) Write(outputPath string) error {
	content := g.Render()

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.WriteError(fmt.Sprintf("failed to create output directory: %s", dir), err)
		}
	}

	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return errors.WriteError(fmt.Sprintf("failed to write %s", outputPath), err)
	}

	return nil
}

// Generate loads the configuration at configPath and writes the rendered
// README to outputPath. This is the full pipeline used by the CLI.
func Generate(configPath, outputPath string) error {
	cfg, err := Load(configPath)
	if err != nil {
		return err
	}
	return NewGenerator(cfg).Write(outputPath)
}
