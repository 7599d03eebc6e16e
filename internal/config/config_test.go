package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:3000" {
		t.Errorf("expected default base url, got %q", cfg.API.BaseURL)
	}
	want := Endpoints{Today: "/api/today", History: "/api/history", Weekly: "/api/weekly", News: "/api/news"}
	if cfg.API.Endpoints != want {
		t.Errorf("unexpected endpoints: %+v", cfg.API.Endpoints)
	}
	if cfg.TimeoutDuration() != 10*time.Second {
		t.Errorf("expected 10s timeout, got %v", cfg.TimeoutDuration())
	}
	if cfg.RetryCount() != 2 {
		t.Errorf("expected 2 retries, got %d", cfg.RetryCount())
	}
	if len(cfg.NewsFeeds) == 0 {
		t.Error("expected at least one default news feed")
	}
}

func TestTimeoutDuration(t *testing.T) {
	cfg := &Config{API: APIConfig{Timeout: "250ms"}}
	if d := cfg.TimeoutDuration(); d != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %v", d)
	}

	for _, bad := range []string{"", "invalid", "-1s"} {
		cfg.API.Timeout = bad
		if d := cfg.TimeoutDuration(); d != 10*time.Second {
			t.Errorf("TimeoutDuration(%q) = %v, want 10s default", bad, d)
		}
	}
}

func TestRetryCount(t *testing.T) {
	tests := []struct {
		input int
		want  int
	}{
		{0, 0},
		{3, 3},
		{-1, 2},
	}
	for _, tt := range tests {
		cfg := &Config{API: APIConfig{MaxRetries: tt.input}}
		if got := cfg.RetryCount(); got != tt.want {
			t.Errorf("RetryCount(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestBreakerOpenTimeout(t *testing.T) {
	cfg := &Config{API: APIConfig{Breaker: BreakerConfig{OpenTimeout: "30s"}}}
	if d := cfg.BreakerOpenTimeout(); d != 30*time.Second {
		t.Errorf("expected 30s, got %v", d)
	}
	cfg.API.Breaker.OpenTimeout = ""
	if d := cfg.BreakerOpenTimeout(); d != time.Minute {
		t.Errorf("expected 1m default, got %v", d)
	}
}

func TestGetHistoryType(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetHistoryType(); got != "default" {
		t.Errorf("expected default, got %q", got)
	}
	cfg.HistoryType = "space"
	if got := cfg.GetHistoryType(); got != "space" {
		t.Errorf("expected space, got %q", got)
	}
}

func TestEnabledFeeds(t *testing.T) {
	cfg := &Config{
		NewsFeeds: []Source{
			{Name: "A", Enabled: true},
			{Name: "B", Enabled: false},
			{Name: "C", Enabled: true},
		},
	}
	enabled := cfg.EnabledFeeds()
	if len(enabled) != 2 {
		t.Fatalf("expected 2 enabled feeds, got %d", len(enabled))
	}
	if enabled[0].Name != "A" || enabled[1].Name != "C" {
		t.Errorf("unexpected enabled feeds: %v", enabled)
	}
}

func TestLoadFromFileKeepsUnsetDefaults(t *testing.T) {
	path := writeConfig(t, `api:
  base_url: https://calendar.example.com
  timeout: 3s
news_feeds:
  - name: Test
    type: rss
    url: https://example.com/feed
    enabled: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "https://calendar.example.com" {
		t.Errorf("expected custom base url, got %s", cfg.API.BaseURL)
	}
	if cfg.TimeoutDuration() != 3*time.Second {
		t.Errorf("expected 3s, got %v", cfg.TimeoutDuration())
	}
	if cfg.API.Endpoints.Today != "/api/today" {
		t.Errorf("expected default today endpoint kept, got %q", cfg.API.Endpoints.Today)
	}
	if cfg.RetryCount() != 2 {
		t.Errorf("expected default retries kept, got %d", cfg.RetryCount())
	}
	if cfg.NewsFeeds[0].Name != "Test" {
		t.Errorf("expected first feed Test, got %s", cfg.NewsFeeds[0].Name)
	}
	if len(cfg.NewsFeeds) <= 1 {
		t.Errorf("expected default feeds to be merged, got %d total", len(cfg.NewsFeeds))
	}
}

func TestLoadNonexistentFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:3000" {
		t.Errorf("expected default base url, got %q", cfg.API.BaseURL)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected defaults to be written to %s: %v", path, err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvBaseURL, "https://env.example.com")
	t.Setenv(EnvTimeout, "1500ms")
	t.Setenv(EnvMaxRetries, "4")

	cfg, err := Load(writeConfig(t, "api:\n  base_url: http://file.example.com\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "https://env.example.com" {
		t.Errorf("expected env base url, got %q", cfg.API.BaseURL)
	}
	if cfg.TimeoutDuration() != 1500*time.Millisecond {
		t.Errorf("expected 1.5s, got %v", cfg.TimeoutDuration())
	}
	if cfg.RetryCount() != 4 {
		t.Errorf("expected 4 retries, got %d", cfg.RetryCount())
	}
}

func TestEnvOverrideIgnoresBadRetryCount(t *testing.T) {
	t.Setenv(EnvMaxRetries, "lots")
	cfg, err := Load(writeConfig(t, "api:\n  max_retries: 1\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RetryCount() != 1 {
		t.Errorf("expected file value 1, got %d", cfg.RetryCount())
	}
}

func TestMergeDefaultFeeds(t *testing.T) {
	cfg := &Config{
		NewsFeeds: []Source{
			{Name: "Existing", Type: "rss", URL: "https://example.com/feed", Enabled: true},
			{Name: "Shared", Type: "rss", URL: "https://mine.com/feed", Enabled: false},
		},
	}
	defaults := &Config{
		NewsFeeds: []Source{
			{Name: "Shared", Type: "atom", URL: "https://new.com/feed", Enabled: true},
			{Name: "NewSource", Type: "rss", URL: "https://new-source.com/feed", Enabled: true},
		},
	}
	mergeDefaultFeeds(cfg, defaults)

	if len(cfg.NewsFeeds) != 3 {
		t.Fatalf("expected 3 feeds after merge, got %d", len(cfg.NewsFeeds))
	}
	if cfg.NewsFeeds[1].URL != "https://mine.com/feed" || cfg.NewsFeeds[1].Enabled {
		t.Errorf("expected user's Shared feed to win, got %+v", cfg.NewsFeeds[1])
	}
	if cfg.NewsFeeds[2].Name != "NewSource" {
		t.Errorf("expected NewSource appended, got %s", cfg.NewsFeeds[2].Name)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	if _, err := Load(writeConfig(t, "api: [unclosed\n")); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidateBaseURLScheme(t *testing.T) {
	cfg := &Config{API: APIConfig{BaseURL: "ftp://example.com"}}
	if err := validate(cfg); err == nil {
		t.Error("expected error for ftp base url")
	}
	cfg.API.BaseURL = "https://example.com"
	if err := validate(cfg); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateFeedMissingName(t *testing.T) {
	cfg := &Config{API: APIConfig{BaseURL: "http://x"}, NewsFeeds: []Source{{Type: "rss", URL: "https://example.com"}}}
	if err := validate(cfg); err == nil {
		t.Error("expected error for missing name")
	}
}

func TestValidateFeedMissingURL(t *testing.T) {
	cfg := &Config{API: APIConfig{BaseURL: "http://x"}, NewsFeeds: []Source{{Name: "Test", Type: "rss"}}}
	if err := validate(cfg); err == nil {
		t.Error("expected error for missing URL")
	}
}

func TestValidateFeedInvalidType(t *testing.T) {
	cfg := &Config{API: APIConfig{BaseURL: "http://x"}, NewsFeeds: []Source{{Name: "Test", Type: "json", URL: "https://example.com"}}}
	if err := validate(cfg); err == nil {
		t.Error("expected error for invalid type")
	}
}

func TestValidateFeedInvalidURLScheme(t *testing.T) {
	cfg := &Config{API: APIConfig{BaseURL: "http://x"}, NewsFeeds: []Source{{Name: "Test", Type: "rss", URL: "file:///etc/passwd"}}}
	if err := validate(cfg); err == nil {
		t.Error("expected error for file:// URL scheme")
	}
}
