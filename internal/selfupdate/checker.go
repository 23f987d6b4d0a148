// Package selfupdate checks GitHub releases for a newer focusbar build
// and replaces the running binary after checksum verification.
package selfupdate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

const (
	defaultOwner           = "abhisek"
	defaultRepo            = "focusbar"
	defaultAPIBaseURL      = "https://api.github.com"
	defaultDownloadBaseURL = "https://github.com"
)

// CheckInput carries the running version.
type CheckInput struct {
	Version string
}

// CheckResult reports what the latest release is and whether it is
// newer than the running version.
type CheckResult struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
	ReleaseURL      string
}

// Checker talks to the GitHub release API.
type Checker struct {
	owner           string
	repo            string
	apiBaseURL      string
	downloadBaseURL string
	client          *http.Client
	execPath        func() (string, error)
}

// Option configures a Checker.
type Option func(*Checker)

// WithBaseURL overrides the GitHub API base URL.
func WithBaseURL(url string) Option {
	return func(c *Checker) { c.apiBaseURL = url }
}

// WithDownloadBaseURL overrides the release-asset download base URL.
func WithDownloadBaseURL(url string) Option {
	return func(c *Checker) { c.downloadBaseURL = url }
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) { c.client.Timeout = d }
}

// withExecPath overrides executable-path resolution, for tests.
func withExecPath(fn func() (string, error)) Option {
	return func(c *Checker) { c.execPath = fn }
}

// NewChecker creates a Checker for the focusbar release repository.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		owner:           defaultOwner,
		repo:            defaultRepo,
		apiBaseURL:      defaultAPIBaseURL,
		downloadBaseURL: defaultDownloadBaseURL,
		client:          &http.Client{Timeout: 30 * time.Second},
		execPath:        os.Executable,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// latestRelease is the subset of the GitHub release payload we read.
type latestRelease struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check fetches the latest release tag and compares it to the running
// version. A dev build ("(devel)" or empty) always reports an update as
// unavailable rather than erroring; Update handles dev builds itself.
func (c *Checker) Check(ctx context.Context, input *CheckInput) (*CheckResult, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest",
		strings.TrimRight(c.apiBaseURL, "/"), c.owner, c.repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from release API", resp.StatusCode)
	}

	var rel latestRelease
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}
	if rel.TagName == "" {
		return nil, fmt.Errorf("release has no tag name")
	}

	result := &CheckResult{
		CurrentVersion: input.Version,
		LatestVersion:  rel.TagName,
		ReleaseURL:     rel.HTMLURL,
	}
	result.UpdateAvailable = isNewer(rel.TagName, input.Version)
	return result, nil
}

// isNewer reports whether latest is a strictly newer semver than
// current. Non-semver current versions (dev builds) never trigger an
// update offer.
func isNewer(latest, current string) bool {
	latest = ensureV(latest)
	current = ensureV(current)
	if !semver.IsValid(latest) || !semver.IsValid(current) {
		return false
	}
	return semver.Compare(latest, current) > 0
}

func ensureV(v string) string {
	if v == "" || strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}
