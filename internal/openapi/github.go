package openapi

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"
	"github.com/google/go-github/v81/github"
)

// GitHubSource fetches API documents stored in GitHub repositories.
type GitHubSource struct {
	client *github.Client
}

// NewGitHubSource creates a GitHub-backed document source with rate limiting.
// If GITHUB_TOKEN is set, the client is authenticated for higher rate limits.
func NewGitHubSource() (*GitHubSource, error) {
	// The rate limit waiter handles both primary limits (5000 req/hour
	// authenticated, 60 unauthenticated) and secondary abuse-detection
	// limits with automatic retry.
	rateLimiter, err := github_ratelimit.NewRateLimitWaiterClient(nil)
	if err != nil {
		return nil, err
	}

	ghClient := github.NewClient(rateLimiter)
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		ghClient = ghClient.WithAuthToken(token)
	}

	return &GitHubSource{client: ghClient}, nil
}

// Fetch retrieves the raw content of owner/repo/path[@ref]. The ref defaults
// to the repository's default branch when absent.
func (s *GitHubSource) Fetch(ctx context.Context, ref string) ([]byte, error) {
	owner, repo, path, gitRef, err := parseGitHubRef(ref)
	if err != nil {
		return nil, err
	}

	var opts *github.RepositoryContentGetOptions
	if gitRef != "" {
		opts = &github.RepositoryContentGetOptions{Ref: gitRef}
	}

	fileContent, _, _, err := s.client.Repositories.GetContents(ctx, owner, repo, path, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: github %s/%s/%s: %v", ErrFetchFailed, owner, repo, path, err)
	}
	if fileContent == nil || fileContent.Content == nil {
		return nil, fmt.Errorf("%w: github %s/%s/%s is not a file", ErrFetchFailed, owner, repo, path)
	}

	content, err := base64.StdEncoding.DecodeString(*fileContent.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: decode content of %s: %v", ErrFetchFailed, path, err)
	}
	return content, nil
}

// parseGitHubRef splits "owner/repo/path/to/file[@ref]" into its parts.
func parseGitHubRef(ref string) (owner, repo, path, gitRef string, err error) {
	if at := strings.LastIndex(ref, "@"); at >= 0 {
		gitRef = ref[at+1:]
		ref = ref[:at]
	}

	parts := strings.SplitN(ref, "/", 3)
	if len(parts) < 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", "", "", "", fmt.Errorf("%w: github locator must be owner/repo/path, got %q", ErrFetchFailed, ref)
	}
	return parts[0], parts[1], parts[2], gitRef, nil
}
