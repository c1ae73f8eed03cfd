package lintreport

import (
	"strings"
	"testing"

	"github.com/deco-project/ci-tools/pkg/errors"
	"github.com/deco-project/ci-tools/pkg/llm"
)

func setBotEnv(t *testing.T) {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GEMINI_API_KEY", "g-test")
	t.Setenv("GITHUB_TOKEN", "gh-test")
	t.Setenv("REPO_NAME", "deco-project/deco")
	t.Setenv("PR_NUMBER", "17")
}

func TestConfigFromEnv(t *testing.T) {
	setBotEnv(t)

	cfg, err := ConfigFromEnv(llm.ProviderOpenAI)
	if err != nil {
		t.Fatalf("ConfigFromEnv failed: %v", err)
	}

	if cfg.APIKey != "sk-test" {
		t.Errorf("Expected API key from OPENAI_API_KEY, got %q", cfg.APIKey)
	}
	if cfg.Token != "gh-test" {
		t.Errorf("Expected token from GITHUB_TOKEN, got %q", cfg.Token)
	}
	if cfg.Repo != "deco-project/deco" {
		t.Errorf("Expected repo from REPO_NAME, got %q", cfg.Repo)
	}
	if cfg.PRNumber != 17 {
		t.Errorf("Expected PR number 17, got %d", cfg.PRNumber)
	}
}

func TestConfigFromEnvDefaultsToOpenAI(t *testing.T) {
	setBotEnv(t)

	cfg, err := ConfigFromEnv("")
	if err != nil {
		t.Fatalf("ConfigFromEnv failed: %v", err)
	}
	if cfg.Provider != llm.ProviderOpenAI {
		t.Errorf("Expected openai provider by default, got %s", cfg.Provider)
	}
}

func TestConfigFromEnvGeminiKey(t *testing.T) {
	setBotEnv(t)

	cfg, err := ConfigFromEnv(llm.ProviderGemini)
	if err != nil {
		t.Fatalf("ConfigFromEnv failed: %v", err)
	}
	if cfg.APIKey != "g-test" {
		t.Errorf("Expected API key from GEMINI_API_KEY, got %q", cfg.APIKey)
	}
}

func TestConfigFromEnvMissingValues(t *testing.T) {
	tests := []struct {
		name    string
		unset   string
		wantMsg string
	}{
		{"missing API key", "OPENAI_API_KEY", "OPENAI_API_KEY"},
		{"missing token", "GITHUB_TOKEN", "GITHUB_TOKEN"},
		{"missing repo", "REPO_NAME", "repository"},
		{"missing PR number", "PR_NUMBER", "pull request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBotEnv(t)
			t.Setenv(tt.unset, "")

			_, err := ConfigFromEnv(llm.ProviderOpenAI)
			if err == nil {
				t.Fatal("Expected error for missing configuration")
			}
			if !errors.IsType(err, errors.ErrValidation) {
				t.Errorf("Expected validation error, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Expected error mentioning %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}

func TestConfigFromEnvBadPRNumber(t *testing.T) {
	setBotEnv(t)
	t.Setenv("PR_NUMBER", "not-a-number")

	_, err := ConfigFromEnv(llm.ProviderOpenAI)
	if err == nil {
		t.Fatal("Expected error for non-numeric PR_NUMBER")
	}
}
