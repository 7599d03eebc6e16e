package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/april2040/singularity-calendar/internal/config"
)

func TestItemID(t *testing.T) {
	id1 := itemID("https://example.com/post-1", "")
	id2 := itemID("https://example.com/post-2", "")
	id1again := itemID("https://example.com/post-1", "other title")

	assert.NotEqual(t, id1, id2, "different URLs should produce different IDs")
	assert.Equal(t, id1, id1again, "same URL should produce same ID")
	assert.Len(t, id1, 32)
	assert.NotEqual(t, itemID("", "a"), itemID("", "b"), "title is used when link is empty")
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"short", 10, "short"},
		{"this is a long string", 10, "this is..."},
		{"abcd", 3, "abc"},
		{"", 5, ""},
		{"观察者的日记与历史", 5, "观察..."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, truncate(tt.input, tt.n), "truncate(%q, %d)", tt.input, tt.n)
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"<p>Hello</p>", "Hello"},
		{"<b>Bold</b> and <i>italic</i>", "Bold and italic"},
		{"<div>  Multiple   spaces  </div>", "Multiple spaces"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stripHTML(tt.input))
	}
}

const rssBody = `<?xml version="1.0"?>
<rss version="2.0"><channel><title>AI</title>
<item><title>Fresh model release</title><link>https://example.com/fresh</link>
<description>&lt;p&gt;New weights&lt;/p&gt;</description><pubDate>%s</pubDate></item>
<item><title>Old news</title><link>https://example.com/old</link>
<pubDate>Mon, 02 Jan 2006 15:04:05 GMT</pubDate></item>
</channel></rss>`

func TestRSSFetcherFetch(t *testing.T) {
	pub := time.Now().Add(-time.Hour).UTC().Format(time.RFC1123)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(strings.Replace(rssBody, "%s", pub, 1)))
	}))
	defer srv.Close()

	items, err := NewRSSFetcher().Fetch(context.Background(), config.Source{Name: "AI", Type: "rss", URL: srv.URL})
	require.NoError(t, err)
	require.Len(t, items, 1, "items older than a week are skipped")
	assert.Equal(t, "Fresh model release", items[0].Title)
	assert.Equal(t, "New weights", items[0].Summary)
	assert.Equal(t, "AI", items[0].Source)
}

func TestItemsFromFeedFallsBackToContent(t *testing.T) {
	now := time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)
	f := &gofeed.Feed{Items: []*gofeed.Item{{Title: " T ", Link: "https://x", Content: "<b>body</b>"}}}
	items := itemsFromFeed(f, "src", now, time.Hour)
	require.Len(t, items, 1)
	assert.Equal(t, "T", items[0].Title)
	assert.Equal(t, "body", items[0].Summary)
	assert.Equal(t, now, items[0].Published)
}

type stubFetcher map[string][]Item

func (s stubFetcher) Fetch(_ context.Context, src config.Source) ([]Item, error) {
	items, ok := s[src.Name]
	if !ok {
		return nil, errors.New("unreachable " + src.Name)
	}
	return items, nil
}

func TestFetchAll(t *testing.T) {
	f := stubFetcher{
		"a": {{ID: "1", Title: "one"}},
		"b": {{ID: "2", Title: "two"}, {ID: "3", Title: "three"}},
	}
	res := FetchAll(context.Background(), f, []config.Source{{Name: "a"}, {Name: "b"}, {Name: "down"}})
	assert.Len(t, res.Items, 3)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0].Error(), "down")
}

func TestFromAPI(t *testing.T) {
	it := FromAPI(map[string]any{
		"title":       "大模型新进展",
		"url":         "https://news.example.com/1",
		"summary":     "<p>摘要</p>",
		"publishedAt": "2026-01-03T08:00:00Z",
	}, 0)
	assert.Equal(t, "大模型新进展", it.Title)
	assert.Equal(t, "https://news.example.com/1", it.Link)
	assert.Equal(t, "摘要", it.Summary)
	assert.Equal(t, "api", it.Source)
	assert.Equal(t, 2026, it.Published.Year())
	assert.NotEmpty(t, it.ID)

	empty := FromAPI(map[string]any{"title": 42}, 1)
	assert.Empty(t, empty.Title)
	assert.True(t, empty.Published.IsZero())

	bare := FromAPI("GPT 发布新版本", 2)
	assert.Equal(t, "GPT 发布新版本", bare.Title)
	assert.Equal(t, "api", bare.Source)

	assert.Empty(t, FromAPI(42.0, 3).Title)
}

func TestMergeKeepsUntitledAPIItems(t *testing.T) {
	var items []Item
	for i, v := range []any{
		map[string]any{"summary": "只有摘要"},
		map[string]any{"source": "wire"},
		map[string]any{"source": "wire"},
		nil,
	} {
		items = append(items, FromAPI(v, i))
	}

	got := Merge(items)
	assert.Len(t, got, 4, "items without link or title must not collapse into one")

	again := FromAPI(map[string]any{"source": "wire"}, 1)
	assert.Equal(t, items[1].ID, again.ID, "ids stay stable for the same position")
}

func TestMerge(t *testing.T) {
	t0 := time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)
	api := []Item{{ID: "x", Title: "api x", Published: t0}}
	feeds := []Item{
		{ID: "x", Title: "feed x", Published: t0.Add(time.Hour)},
		{ID: "y", Title: "feed y", Published: t0.Add(2 * time.Hour)},
	}
	got := Merge(api, feeds)
	require.Len(t, got, 2)
	assert.Equal(t, "feed y", got[0].Title)
	assert.Equal(t, "api x", got[1].Title)
}
