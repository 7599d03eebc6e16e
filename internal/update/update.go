package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ReleasesURL is the GitHub endpoint for the latest published release.
const ReleasesURL = "https://api.github.com/repos/april2040/singularity-calendar/releases/latest"

// Result holds the outcome of a version check.
type Result struct {
	LatestVersion string
}

type ghRelease struct {
	TagName string `json:"tag_name"`
}

type Checker struct {
	URL    string
	Client *http.Client
	Logger *zap.Logger
}

func NewChecker(logger *zap.Logger) *Checker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Checker{URL: ReleasesURL, Client: http.DefaultClient, Logger: logger}
}

// Check reports a newer release than currentVersion, or nil when the
// current build is up to date, is a dev build, or the check failed.
func (c *Checker) Check(ctx context.Context, currentVersion string) *Result {
	current := strings.TrimPrefix(currentVersion, "v")
	if current == "" || current == "dev" {
		return nil
	}

	latest, err := c.latest(ctx)
	if err != nil {
		c.Logger.Debug("version check failed", zap.Error(err))
		return nil
	}
	if latest == "" || latest == current {
		return nil
	}
	return &Result{LatestVersion: latest}
}

func (c *Checker) latest(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var release ghRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("decoding release: %w", err)
	}
	return strings.TrimPrefix(release.TagName, "v"), nil
}
