// Package platform tests for the GitHub client
package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewGitHubClient(t *testing.T) {
	client := NewGitHubClient("test-token", "owner/repo")

	if client == nil {
		t.Fatal("NewGitHubClient returned nil")
	}
	if client.token != "test-token" {
		t.Errorf("Expected token 'test-token', got '%s'", client.token)
	}
	if client.repo != "owner/repo" {
		t.Errorf("Expected repo 'owner/repo', got '%s'", client.repo)
	}
	if client.baseURL != "https://api.github.com" {
		t.Errorf("Expected default baseURL 'https://api.github.com', got '%s'", client.baseURL)
	}
	if client.Name() != "github" {
		t.Errorf("Expected platform name 'github', got '%s'", client.Name())
	}
}

func TestGitHubClientSetBaseURL(t *testing.T) {
	client := NewGitHubClient("test-token", "owner/repo")
	customURL := "https://github.enterprise.com/api/v3"

	client.SetBaseURL(customURL)

	if client.baseURL != customURL {
		t.Errorf("Expected baseURL '%s', got '%s'", customURL, client.baseURL)
	}
}

func TestGitHubPostCommentValidation(t *testing.T) {
	tests := []struct {
		name    string
		repo    string
		prID    int
		wantErr string
	}{
		{"missing PR number", "owner/repo", 0, "PR number is required"},
		{"missing repo", "", 5, "repository is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewGitHubClient("test-token", tt.repo)
			err := client.PostComment(context.Background(), tt.prID, "body")
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing '%s', got '%s'", tt.wantErr, err.Error())
			}
		})
	}
}

func TestGitHubPostComment(t *testing.T) {
	var gotPath, gotAuth, gotBody string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")

		var comment githubComment
		if err := json.NewDecoder(r.Body).Decode(&comment); err != nil {
			t.Fatalf("Failed to decode comment: %v", err)
		}
		gotBody = comment.Body

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 1}`))
	}))
	defer server.Close()

	client := NewGitHubClient("test-token", "owner/repo")
	client.SetBaseURL(server.URL)

	err := client.PostComment(context.Background(), 42, "Test comment")
	if err != nil {
		t.Fatalf("PostComment failed: %v", err)
	}

	if gotPath != "/repos/owner/repo/issues/42/comments" {
		t.Errorf("Unexpected path '%s'", gotPath)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Expected bearer auth, got '%s'", gotAuth)
	}
	if gotBody != "Test comment" {
		t.Errorf("Expected comment body passed through, got '%s'", gotBody)
	}
}

func TestGitHubPostCommentAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "Bad credentials"}`))
	}))
	defer server.Close()

	client := NewGitHubClient("bad-token", "owner/repo")
	client.SetBaseURL(server.URL)

	err := client.PostComment(context.Background(), 42, "Test comment")
	if err == nil {
		t.Fatal("Expected error for unauthorized response")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("Expected status code in error, got '%s'", err.Error())
	}
}

func TestGitHubGetPRInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/owner/repo/pulls/7" {
			t.Errorf("Unexpected path '%s'", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"number": 7,
			"title": "Fix lint issues",
			"body": "Cleanup",
			"state": "open",
			"user": {"login": "dev"},
			"head": {"ref": "fix-lint", "sha": "abc123"},
			"base": {"ref": "main", "sha": "def456"}
		}`))
	}))
	defer server.Close()

	client := NewGitHubClient("test-token", "owner/repo")
	client.SetBaseURL(server.URL)

	info, err := client.GetPRInfo(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetPRInfo failed: %v", err)
	}

	if info.Number != 7 {
		t.Errorf("Expected PR number 7, got %d", info.Number)
	}
	if info.Title != "Fix lint issues" {
		t.Errorf("Expected title 'Fix lint issues', got '%s'", info.Title)
	}
	if info.Author != "dev" {
		t.Errorf("Expected author 'dev', got '%s'", info.Author)
	}
	if info.HeadBranch != "fix-lint" || info.BaseBranch != "main" {
		t.Errorf("Unexpected branches: %+v", info)
	}
	if info.HeadSHA != "abc123" {
		t.Errorf("Expected head SHA 'abc123', got '%s'", info.HeadSHA)
	}
}

func TestGitHubHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/repos/owner/repo" {
			_, _ = w.Write([]byte(`{"full_name": "owner/repo"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewGitHubClient("test-token", "owner/repo")
	client.SetBaseURL(server.URL)

	if err := client.Health(context.Background()); err != nil {
		t.Errorf("Health check failed: %v", err)
	}

	missing := NewGitHubClient("test-token", "owner/missing")
	missing.SetBaseURL(server.URL)
	if err := missing.Health(context.Background()); err == nil {
		t.Error("Expected health check failure for missing repo")
	}
}

func TestRepoFromEnv(t *testing.T) {
	t.Setenv("REPO_NAME", "")
	if _, err := RepoFromEnv(); err == nil {
		t.Error("Expected error when REPO_NAME is not set")
	}

	t.Setenv("REPO_NAME", "owner/repo")
	repo, err := RepoFromEnv()
	if err != nil {
		t.Fatalf("RepoFromEnv failed: %v", err)
	}
	if repo != "owner/repo" {
		t.Errorf("Expected 'owner/repo', got '%s'", repo)
	}
}

func TestPRNumberFromEnv(t *testing.T) {
	t.Setenv("PR_NUMBER", "")
	if _, err := PRNumberFromEnv(); err == nil {
		t.Error("Expected error when PR_NUMBER is not set")
	}

	t.Setenv("PR_NUMBER", "abc")
	if _, err := PRNumberFromEnv(); err == nil {
		t.Error("Expected error for non-numeric PR_NUMBER")
	}

	t.Setenv("PR_NUMBER", "42")
	number, err := PRNumberFromEnv()
	if err != nil {
		t.Fatalf("PRNumberFromEnv failed: %v", err)
	}
	if number != 42 {
		t.Errorf("Expected 42, got %d", number)
	}
}
