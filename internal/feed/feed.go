// Package feed pulls news items from RSS/Atom sources and normalizes the
// backend's news list into the same shape.
package feed

import (
	"context"
	"crypto/sha256"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/april2040/singularity-calendar/internal/config"
)

// Item is one news headline.
type Item struct {
	ID        string
	Source    string
	Title     string
	Link      string
	Summary   string
	Published time.Time
}

type Fetcher interface {
	Fetch(ctx context.Context, source config.Source) ([]Item, error)
}

type RSSFetcher struct {
	parser *gofeed.Parser
	maxAge time.Duration
}

func NewRSSFetcher() *RSSFetcher {
	return &RSSFetcher{parser: gofeed.NewParser(), maxAge: 7 * 24 * time.Hour}
}

func (f *RSSFetcher) Fetch(ctx context.Context, source config.Source) ([]Item, error) {
	parsed, err := f.parser.ParseURLWithContext(source.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", source.Name, err)
	}
	return itemsFromFeed(parsed, source.Name, time.Now(), f.maxAge), nil
}

func itemsFromFeed(parsed *gofeed.Feed, sourceName string, now time.Time, maxAge time.Duration) []Item {
	cutoff := now.Add(-maxAge)
	items := make([]Item, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		pub := now
		if it.PublishedParsed != nil {
			pub = *it.PublishedParsed
		} else if it.UpdatedParsed != nil {
			pub = *it.UpdatedParsed
		}
		if pub.Before(cutoff) {
			continue
		}

		desc := it.Description
		if desc == "" {
			desc = it.Content
		}

		items = append(items, Item{
			ID:        itemID(it.Link, it.Title),
			Source:    sourceName,
			Title:     strings.TrimSpace(it.Title),
			Link:      it.Link,
			Summary:   truncate(stripHTML(desc), 200),
			Published: pub,
		})
	}
	return items
}

type FetchResult struct {
	Items  []Item
	Errors []error
}

// FetchAll fetches every source concurrently. One failing source does not
// affect the others.
func FetchAll(ctx context.Context, f Fetcher, sources []config.Source) FetchResult {
	var (
		mu     sync.Mutex
		result FetchResult
		wg     sync.WaitGroup
	)

	for _, src := range sources {
		wg.Add(1)
		go func(s config.Source) {
			defer wg.Done()
			items, err := f.Fetch(ctx, s)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Errors = append(result.Errors, err)
				return
			}
			result.Items = append(result.Items, items...)
		}(src)
	}

	wg.Wait()
	return result
}

// FromAPI converts element index of the backend's news list. Objects are
// read by key, bare strings become the title, anything else is empty.
func FromAPI(v any, index int) Item {
	m, _ := v.(map[string]any)
	if s, ok := v.(string); ok {
		m = map[string]any{"title": s}
	}
	str := func(keys ...string) string {
		for _, k := range keys {
			if v, ok := m[k].(string); ok && v != "" {
				return v
			}
		}
		return ""
	}

	it := Item{
		Source:  str("source"),
		Title:   str("title", "headline"),
		Link:    str("url", "link"),
		Summary: truncate(stripHTML(str("summary", "description")), 200),
	}
	if it.Source == "" {
		it.Source = "api"
	}
	if ts := str("publishedAt", "published", "date"); ts != "" {
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			it.Published = t
		}
	}
	it.ID = itemID(it.Link, it.Title, it.Summary, fmt.Sprintf("api#%d", index))
	return it
}

// Merge combines item lists, dropping duplicates by ID and ordering the
// result newest first. Earlier lists win on duplicates.
func Merge(lists ...[]Item) []Item {
	seen := map[string]bool{}
	var out []Item
	for _, l := range lists {
		for _, it := range l {
			if seen[it.ID] {
				continue
			}
			seen[it.ID] = true
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Published.After(out[j].Published)
	})
	return out
}

// itemID hashes the first non-empty key.
func itemID(keys ...string) string {
	var key string
	for _, k := range keys {
		if k != "" {
			key = k
			break
		}
	}
	h := sha256.Sum256([]byte(key))
	return fmt.Sprintf("%x", h[:16])
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func stripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
