// Copyright 2026 Deco Project. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// GitHubClient implements Platform for the GitHub REST API.
type GitHubClient struct {
	token   string
	baseURL string // For GitHub Enterprise self-hosted
	repo    string // owner/repo format
	client  *http.Client
}

// githubPR represents the GitHub pull request response
type githubPR struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	State  string `json:"state"`
	User   struct {
		Login string `json:"login"`
	} `json:"user"`
	Head struct {
		Ref string `json:"ref"`
		SHA string `json:"sha"`
	} `json:"head"`
	Base struct {
		Ref string `json:"ref"`
		SHA string `json:"sha"`
	} `json:"base"`
}

// githubComment represents an issue comment creation payload
type githubComment struct {
	Body string `json:"body"`
}

// NewGitHubClient creates a new GitHub platform client
func NewGitHubClient(token, repo string) *GitHubClient {
	baseURL := os.Getenv("GITHUB_API_URL")
	if baseURL == "" {
		baseURL = "https://api.github.com"
	}

	return &GitHubClient{
		token:   token,
		baseURL: baseURL,
		repo:    repo,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetBaseURL sets a custom base URL for GitHub Enterprise
func (g *GitHubClient) SetBaseURL(url string) {
	g.baseURL = url
}

// Name returns the platform name
func (g *GitHubClient) Name() string {
	return "github"
}

// PostComment creates an issue-style comment on a GitHub pull request.
// Pull request comments use the issues API endpoint.
func (g *GitHubClient) PostComment(ctx context.Context, prID int, body string) error {
	if prID == 0 {
		return fmt.Errorf("PR number is required")
	}
	if g.repo == "" {
		return fmt.Errorf("repository is required")
	}

	comment := githubComment{
		Body: body,
	}

	payload, err := json.Marshal(comment)
	if err != nil {
		return fmt.Errorf("failed to marshal comment: %w", err)
	}

	url := fmt.Sprintf("%s/repos/%s/issues/%d/comments", g.baseURL, g.repo, prID)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	g.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post comment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("failed to post comment (status %d): %s", resp.StatusCode, string(respBody))
	}

	return nil
}

// GetPRInfo retrieves pull request information from GitHub
func (g *GitHubClient) GetPRInfo(ctx context.Context, prID int) (*PRInfo, error) {
	url := fmt.Sprintf("%s/repos/%s/pulls/%d", g.baseURL, g.repo, prID)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	g.setHeaders(req)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get PR info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get PR info (status %d)", resp.StatusCode)
	}

	var pr githubPR
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, fmt.Errorf("failed to decode PR response: %w", err)
	}

	return &PRInfo{
		Number:     pr.Number,
		Title:      pr.Title,
		Body:       pr.Body,
		Author:     pr.User.Login,
		State:      pr.State,
		BaseBranch: pr.Base.Ref,
		HeadBranch: pr.Head.Ref,
		HeadSHA:    pr.Head.SHA,
	}, nil
}

// Health checks if the GitHub API and repository are accessible
func (g *GitHubClient) Health(ctx context.Context) error {
	url := fmt.Sprintf("%s/repos/%s", g.baseURL, g.repo)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	g.setHeaders(req)

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed (status %d)", resp.StatusCode)
	}

	return nil
}

func (g *GitHubClient) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", g.token))
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "deco-ci-tools/1.0")
}
