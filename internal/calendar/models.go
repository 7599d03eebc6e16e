package calendar

import "time"

// Mood tags the tone of a narrative.
type Mood string

const (
	MoodCurious    Mood = "curious"
	MoodThoughtful Mood = "thoughtful"
	MoodInspired   Mood = "inspired"
	MoodHumble     Mood = "humble"
	MoodHopeful    Mood = "hopeful"
)

// SourceTag records where an entry came from.
type SourceTag string

const (
	SourceLocal SourceTag = "local"
	SourceAPI   SourceTag = "api"
)

// SchemaVersion is stamped on locally generated entries.
const SchemaVersion = "1.0.0"

// Entry is one day's calendar card.
type Entry struct {
	Date             DateInfo         `json:"date"`
	Narrative        Narrative        `json:"narrative"`
	HistoryBenchmark HistoryBenchmark `json:"historyBenchmark"`
	MicroAction      string           `json:"microAction" validate:"required"`
	Metadata         Metadata         `json:"metadata"`
}

type DateInfo struct {
	Gregorian string `json:"gregorian" validate:"required"`
	Weekday   string `json:"weekday" validate:"required"`
	Lunar     string `json:"lunar" validate:"required"`
	SolarTerm string `json:"solarTerm,omitempty"`
}

type Narrative struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Mood    Mood   `json:"mood" validate:"required,oneof=curious thoughtful inspired humble hopeful"`
}

type HistoryBenchmark struct {
	Event       string `json:"event" validate:"required"`
	Year        string `json:"year" validate:"required"`
	Context     string `json:"context" validate:"required"`
	Perspective string `json:"perspective" validate:"required"`
	Comparison  string `json:"comparison" validate:"required"`
}

type Metadata struct {
	GeneratedAt time.Time `json:"generatedAt"`
	Version     string    `json:"version"`
	Theme       string    `json:"theme"`
	Source      SourceTag `json:"dataSource"`
}
