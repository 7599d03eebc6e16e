// Package content produces calendar entries without the backend. Output is
// a pure function of the calendar date, so the same day always shows the
// same card on every machine.
package content

import (
	"fmt"
	"strings"
	"time"

	"github.com/april2040/singularity-calendar/internal/calendar"
	"github.com/april2040/singularity-calendar/internal/dateutil"
)

const (
	narrativeTitle = "观察者的日记"
	defaultTheme   = "daily"
)

// Generator builds local calendar entries.
type Generator struct {
	lunar dateutil.LunarCalendar
	now   func() time.Time
}

type Option func(*Generator)

// WithLunar replaces the placeholder lunar calendar.
func WithLunar(l dateutil.LunarCalendar) Option {
	return func(g *Generator) { g.lunar = l }
}

// WithClock sets the source of the metadata timestamp.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{lunar: dateutil.PlaceholderLunar{}, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// PoolSize is the number of distinct narrative/history/action triples.
func PoolSize() int {
	return len(narratives)
}

// Index returns the pool slot used for date: (y*10000 + m*100 + d) mod N.
func Index(date time.Time) int {
	y, m, d := date.Date()
	hash := y*10000 + int(m)*100 + d
	idx := hash % PoolSize()
	if idx < 0 {
		idx += PoolSize()
	}
	return idx
}

// Generate returns the local entry for date's calendar day.
func (g *Generator) Generate(date time.Time) calendar.Entry {
	idx := Index(date)
	n := narratives[idx]

	body := n.body
	if strings.Contains(body, "%s") {
		body = fmt.Sprintf(body, dateutil.Format(date, "yyyy年M月d日"))
	}

	return calendar.Entry{
		Date: calendar.DateInfo{
			Gregorian: dateutil.Format(date, "yyyy年MM月dd日"),
			Weekday:   dateutil.WeekdayName(date),
			Lunar:     g.lunar.LunarText(date),
			SolarTerm: SolarTerm(date),
		},
		Narrative: calendar.Narrative{
			Title:   narrativeTitle,
			Content: body,
			Mood:    n.mood,
		},
		HistoryBenchmark: historyEvents[idx],
		MicroAction:      microActions[idx],
		Metadata: calendar.Metadata{
			GeneratedAt: g.now(),
			Version:     calendar.SchemaVersion,
			Theme:       defaultTheme,
			Source:      calendar.SourceLocal,
		},
	}
}

// SolarTerm returns "<name>将至" when date is within two days of a solar
// term anchor in the same month, or "" otherwise. The first anchor in table
// order wins.
func SolarTerm(date time.Time) string {
	_, m, d := date.Date()
	for _, term := range solarTerms {
		if int(m) != term.month {
			continue
		}
		diff := d - term.day
		if diff < 0 {
			diff = -diff
		}
		if diff <= 2 {
			return term.name + "将至"
		}
	}
	return ""
}
