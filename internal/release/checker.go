package release

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/codegen-labs/codegen/internal/branding"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const githubAPIBase = "https://api.github.com"

// Release is the subset of a GitHub release the checker needs.
type Release struct {
	Version   string    `json:"tag_name"`
	Published time.Time `json:"published_at"`
	HTMLURL   string    `json:"html_url"`
}

// Checker looks up the latest published release.
type Checker struct {
	build      string
	repo       string
	apiBase    string
	httpClient *http.Client
	fs         afero.Fs
	logger     *zap.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(ch *Checker) {
		ch.httpClient = c
	}
}

// WithAPIBase overrides the GitHub API root.
func WithAPIBase(base string) Option {
	return func(ch *Checker) {
		ch.apiBase = base
	}
}

// WithFs sets the filesystem holding the release record.
func WithFs(fs afero.Fs) Option {
	return func(ch *Checker) {
		ch.fs = fs
	}
}

// WithLogger sets the logger for lookup failures.
func WithLogger(l *zap.Logger) Option {
	return func(ch *Checker) {
		if l != nil {
			ch.logger = l
		}
	}
}

// New creates a Checker for the running build.
func New(build string, opts ...Option) *Checker {
	c := &Checker{
		build:      build,
		repo:       branding.GitHubRepo(),
		apiBase:    githubAPIBase,
		httpClient: http.DefaultClient,
		fs:         afero.NewOsFs(),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Latest fetches the latest release from GitHub.
func (c *Checker) Latest(ctx context.Context) (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", c.apiBase, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", branding.CLIName()+"-release-check")

	// Support optional GitHub token for higher rate limits.
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		req.Header.Set("Authorization", "token "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching release: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("release not found")
	case http.StatusForbidden:
		return nil, fmt.Errorf("GitHub API rate limit exceeded. Set GITHUB_TOKEN for higher limits")
	default:
		return nil, fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	var rel Release
	if err := json.Unmarshal(body, &rel); err != nil {
		return nil, fmt.Errorf("parsing release JSON: %w", err)
	}
	if rel.Version == "" {
		return nil, fmt.Errorf("release has no tag")
	}
	return &rel, nil
}
