package lintreport

import (
	"context"
	"fmt"

	"github.com/deco-project/ci-tools/pkg/errors"
	"github.com/deco-project/ci-tools/pkg/llm"
	"github.com/deco-project/ci-tools/pkg/platform"
)

// Bot runs the lint report pipeline: read findings, summarize, post.
type Bot struct {
	completion llm.Client
	platform   platform.Platform
	prNumber   int
}

// NewBot creates a bot over the given completion and comment services.
func NewBot(completion llm.Client, p platform.Platform, prNumber int) *Bot {
	return &Bot{
		completion: completion,
		platform:   p,
		prNumber:   prNumber,
	}
}

// Run executes one pass of the pipeline for the findings file at path.
// Empty findings short-circuit with no side effects. Re-running on the
// same pull request posts a duplicate comment; there is no dedupe.
func (b *Bot) Run(ctx context.Context, path string) error {
	findings, err := ReadFindings(path)
	if err != nil {
		return err
	}

	if findings == "" {
		fmt.Println("No lint issues found. No comment will be created.")
		return nil
	}

	summary, err := b.completion.Summarize(ctx, BuildPrompt(findings))
	if err != nil {
		return errors.LLMError("failed to generate lint summary", err)
	}

	if err := b.platform.PostComment(ctx, b.prNumber, FormatComment(summary)); err != nil {
		return errors.PlatformError("failed to post lint report comment", err)
	}

	return nil
}
