// Copyright 2026 Deco Project. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package platform provides source-hosting platform clients used to
// publish pull request comments.
package platform

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

// Platform is the abstraction over source-hosting services.
type Platform interface {
	// Name returns the platform name (github)
	Name() string

	// PostComment posts an issue-style comment to a pull request
	PostComment(ctx context.Context, prID int, body string) error

	// GetPRInfo retrieves pull request metadata
	GetPRInfo(ctx context.Context, prID int) (*PRInfo, error)

	// Health checks if the platform API is accessible
	Health(ctx context.Context) error
}

// PRInfo contains pull request metadata
type PRInfo struct {
	Number     int
	Title      string
	Body       string
	Author     string
	State      string
	BaseBranch string
	HeadBranch string
	HeadSHA    string
}

// RepoFromEnv reads the target repository (owner/repo) from the
// environment.
func RepoFromEnv() (string, error) {
	repo := os.Getenv("REPO_NAME")
	if repo == "" {
		return "", fmt.Errorf("REPO_NAME environment variable is not set")
	}
	return repo, nil
}

// PRNumberFromEnv reads the target pull request number from the
// environment.
func PRNumberFromEnv() (int, error) {
	raw := os.Getenv("PR_NUMBER")
	if raw == "" {
		return 0, fmt.Errorf("PR_NUMBER environment variable is not set")
	}
	number, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("PR_NUMBER is not a valid number: %q", raw)
	}
	return number, nil
}
