// Package lintreport posts an AI-generated explanation of lint findings
// as a pull request comment.
package lintreport

import (
	"fmt"
	"os"

	"github.com/deco-project/ci-tools/pkg/errors"
	"github.com/deco-project/ci-tools/pkg/llm"
	"github.com/deco-project/ci-tools/pkg/platform"
	"github.com/joho/godotenv"
)

// Config holds everything the bot needs, resolved once at startup.
type Config struct {
	// Provider selects the completion service backend.
	Provider llm.Provider

	// APIKey authenticates against the completion service.
	APIKey string

	// Token authenticates against the source-hosting service.
	Token string

	// Repo is the target repository in owner/repo format.
	Repo string

	// PRNumber is the target pull request number.
	PRNumber int
}

// ConfigFromEnv builds the bot configuration from the environment.
// A .env file is loaded best-effort for local runs. Every required value
// that is absent fails fast with a descriptive error.
func ConfigFromEnv(provider llm.Provider) (*Config, error) {
	_ = godotenv.Load()

	if provider == "" {
		provider = llm.ProviderOpenAI
	}

	apiKey, err := apiKeyFromEnv(provider)
	if err != nil {
		return nil, err
	}

	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return nil, errors.ValidationError("GITHUB_TOKEN environment variable is not set", nil)
	}

	repo, err := platform.RepoFromEnv()
	if err != nil {
		return nil, errors.ValidationError("missing repository configuration", err)
	}

	prNumber, err := platform.PRNumberFromEnv()
	if err != nil {
		return nil, errors.ValidationError("missing pull request configuration", err)
	}

	return &Config{
		Provider: provider,
		APIKey:   apiKey,
		Token:    token,
		Repo:     repo,
		PRNumber: prNumber,
	}, nil
}

func apiKeyFromEnv(provider llm.Provider) (string, error) {
	var name string
	switch provider {
	case llm.ProviderOpenAI:
		name = "OPENAI_API_KEY"
	case llm.ProviderGemini:
		name = "GEMINI_API_KEY"
	default:
		return "", errors.ValidationError(fmt.Sprintf("unknown completion provider: %s", provider), nil)
	}

	key := os.Getenv(name)
	if key == "" {
		return "", errors.ValidationError(fmt.Sprintf("%s environment variable is not set", name), nil)
	}
	return key, nil
}
