// Package coordinator owns the calendar state shown to the user. It decides
// between backend and local content, caches the result for the calendar
// day and tells subscribers when anything changes.
//
// Build one Coordinator at startup and hand it to every consumer.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/april2040/singularity-calendar/internal/calendar"
	"github.com/april2040/singularity-calendar/internal/dateutil"
)

// ErrRemoteUnavailable is recorded in the error slot when the backend gave
// no usable entry and local content is being served instead.
var ErrRemoteUnavailable = errors.New("remote data unavailable, showing local content")

// Remote is the subset of the API client the coordinator uses. Both
// methods return nil when nothing could be fetched.
type Remote interface {
	FetchToday(ctx context.Context, date time.Time) *calendar.Entry
	FetchHistoryBenchmark(ctx context.Context, eventType string) map[string]any
}

// Local produces fallback entries.
type Local interface {
	Generate(date time.Time) calendar.Entry
}

// State is a snapshot of every slot the presentation layer reads.
type State struct {
	Today       *calendar.Entry
	History     map[string]any
	Loading     bool
	Err         string
	LastUpdated time.Time
	Source      calendar.SourceTag
}

// HasData reports whether a today entry is present.
func (s State) HasData() bool { return s.Today != nil }

// IsUsingAPIData reports whether the current entry came from the backend.
func (s State) IsUsingAPIData() bool { return s.Source == calendar.SourceAPI }

type Coordinator struct {
	remote      Remote
	local       Local
	now         func() time.Time
	logger      *zap.Logger
	historyType string

	mu    sync.RWMutex
	state State
	// day is the DayKey of the date the cached entry was loaded for.
	day string

	flight singleflight.Group

	subMu  sync.Mutex
	subs   map[int]chan struct{}
	nextID int
}

type Option func(*Coordinator)

func WithLogger(l *zap.Logger) Option {
	return func(c *Coordinator) { c.logger = l }
}

func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) { c.now = now }
}

// WithHistoryType sets the event type requested by LoadHistoryBenchmark.
func WithHistoryType(t string) Option {
	return func(c *Coordinator) { c.historyType = t }
}

func New(remote Remote, local Local, opts ...Option) *Coordinator {
	c := &Coordinator{
		remote:      remote,
		local:       local,
		now:         time.Now,
		logger:      zap.NewNop(),
		historyType: "default",
		state:       State{Source: calendar.SourceLocal},
		subs:        map[int]chan struct{}{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns a copy of the current state.
func (c *Coordinator) Snapshot() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s := c.state
	if s.Today != nil {
		e := *s.Today
		s.Today = &e
	}
	if s.History != nil {
		h := make(map[string]any, len(s.History))
		for k, v := range s.History {
			h[k] = v
		}
		s.History = h
	}
	return s
}

// LoadTodayData returns the entry for date's calendar day. The cached entry
// is returned as-is when it was loaded for the same day and generated today,
// unless forceRefresh is set.
// Otherwise the backend is tried first and local content fills in when it
// has nothing. It never fails; concurrent loads for the same day share one
// fetch.
func (c *Coordinator) LoadTodayData(ctx context.Context, date time.Time, forceRefresh bool) calendar.Entry {
	if !forceRefresh {
		if e, ok := c.cached(date); ok {
			c.logger.Debug("using cached data", zap.String("date", dateutil.DayKey(date)))
			return e
		}
	}

	v, _, _ := c.flight.Do("today:"+dateutil.DayKey(date), func() (any, error) {
		return c.load(ctx, date), nil
	})
	return v.(calendar.Entry)
}

func (c *Coordinator) cached(date time.Time) (calendar.Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.state.Today == nil || c.day != dateutil.DayKey(date) {
		return calendar.Entry{}, false
	}
	if !dateutil.SameDay(c.state.Today.Metadata.GeneratedAt, c.now()) {
		return calendar.Entry{}, false
	}
	return *c.state.Today, true
}

func (c *Coordinator) load(ctx context.Context, date time.Time) calendar.Entry {
	c.update(func(s *State) {
		s.Loading = true
		s.Err = ""
	})
	defer c.update(func(s *State) { s.Loading = false })

	entry, source, errText := c.resolve(ctx, date)

	c.update(func(s *State) {
		c.day = dateutil.DayKey(date)
		s.Today = &entry
		s.Source = source
		s.Err = errText
		s.LastUpdated = c.now()
	})
	return entry
}

// resolve picks the entry for date. A panic from either collaborator is
// treated like any other failure: recorded and answered with local content.
func (c *Coordinator) resolve(ctx context.Context, date time.Time) (entry calendar.Entry, source calendar.SourceTag, errText string) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("loading today data: %v", r)
			c.logger.Error("loading data failed", zap.Error(err))
			entry, source, errText = c.fallback(date), calendar.SourceLocal, err.Error()
		}
	}()

	if remote := c.remote.FetchToday(ctx, date); remote != nil {
		e := *remote
		e.Metadata.Source = calendar.SourceAPI
		if e.Metadata.GeneratedAt.IsZero() {
			e.Metadata.GeneratedAt = c.now()
		}
		c.logger.Info("using api data", zap.String("date", dateutil.DayKey(date)))
		return e, calendar.SourceAPI, ""
	}

	c.logger.Info("using local data", zap.String("date", dateutil.DayKey(date)))
	return c.local.Generate(date), calendar.SourceLocal, ErrRemoteUnavailable.Error()
}

// fallback generates local content; a panicking generator yields a minimal
// entry so callers still get every field populated.
func (c *Coordinator) fallback(date time.Time) (e calendar.Entry) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("local generation failed", zap.Any("panic", r))
			e = minimalEntry(date, c.now())
		}
	}()
	return c.local.Generate(date)
}

func minimalEntry(date, now time.Time) calendar.Entry {
	return calendar.Entry{
		Date: calendar.DateInfo{
			Gregorian: dateutil.Format(date, "yyyy年MM月dd日"),
			Weekday:   dateutil.WeekdayName(date),
			Lunar:     dateutil.PlaceholderLunar{}.LunarText(date),
		},
		Narrative: calendar.Narrative{
			Title:   "观察者的日记",
			Content: "今天，我在安静地观察。",
			Mood:    calendar.MoodHumble,
		},
		HistoryBenchmark: calendar.HistoryBenchmark{
			Event:       "互联网诞生",
			Year:        "1983年",
			Context:     "信息开始在全球流动",
			Perspective: "今天，我让你们每个人都能触及人类所有的知识。",
			Comparison:  "连接是起点，理解才是终点",
		},
		MicroAction: "对陌生人微笑一次",
		Metadata: calendar.Metadata{
			GeneratedAt: now,
			Version:     calendar.SchemaVersion,
			Theme:       "daily",
			Source:      calendar.SourceLocal,
		},
	}
}

// LoadHistoryBenchmark refreshes the history slot. Failures are logged and
// leave the previous value in place.
func (c *Coordinator) LoadHistoryBenchmark(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Warn("loading history benchmark failed", zap.Any("panic", r))
		}
	}()

	data := c.remote.FetchHistoryBenchmark(ctx, c.historyType)
	if data == nil {
		c.logger.Warn("history benchmark unavailable, keeping previous value")
		return
	}
	c.update(func(s *State) { s.History = data })
}

// RefreshAll force-reloads today's entry, then the history benchmark.
func (c *Coordinator) RefreshAll(ctx context.Context) {
	c.LoadTodayData(ctx, c.now(), true)
	c.LoadHistoryBenchmark(ctx)
}

// ClearData resets every slot to its initial value.
func (c *Coordinator) ClearData() {
	c.update(func(s *State) {
		c.day = ""
		*s = State{Source: calendar.SourceLocal, Loading: s.Loading}
	})
}

func (c *Coordinator) update(fn func(*State)) {
	c.mu.Lock()
	fn(&c.state)
	c.mu.Unlock()
	c.notify()
}
