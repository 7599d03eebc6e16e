package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/april2040/singularity-calendar/internal/calendar"
)

var moodLabels = map[calendar.Mood]string{
	calendar.MoodCurious:    "好奇",
	calendar.MoodThoughtful: "沉思",
	calendar.MoodInspired:   "灵感",
	calendar.MoodHumble:     "谦逊",
	calendar.MoodHopeful:    "希望",
}

// RenderCard draws e as a bordered card width columns wide. history, if
// non-nil, is the separately loaded benchmark and is listed below the card's
// own.
func RenderCard(e calendar.Entry, history map[string]any, width int) string {
	inner := width - 6
	if inner < 30 {
		inner = 30
	}

	var lines []string

	header := dateStyle.Render(e.Date.Gregorian) + "  " + dateMetaStyle.Render(e.Date.Weekday+" · "+e.Date.Lunar)
	lines = append(lines, header)
	if e.Date.SolarTerm != "" {
		lines = append(lines, solarTermStyle.Render(e.Date.SolarTerm))
	}

	lines = append(lines, sectionTitleStyle.Render(e.Narrative.Title))
	if label, ok := moodLabels[e.Narrative.Mood]; ok {
		lines = append(lines, moodStyle.Render("心情："+label))
	}
	lines = append(lines, bodyStyle.Width(inner).Render(e.Narrative.Content))

	hb := e.HistoryBenchmark
	lines = append(lines, sectionTitleStyle.Render("历史对标"))
	lines = append(lines, historyEventStyle.Render(fmt.Sprintf("%s · %s", hb.Year, hb.Event)))
	lines = append(lines, bodyStyle.Width(inner).Render(hb.Context))
	lines = append(lines, bodyStyle.Width(inner).Render(hb.Perspective))
	lines = append(lines, moodStyle.Width(inner).Render(hb.Comparison))

	if extra := formatHistory(history); extra != "" {
		lines = append(lines, dateMetaStyle.Width(inner).Render(extra))
	}

	lines = append(lines, sectionTitleStyle.Render("今日微行动"))
	lines = append(lines, actionStyle.Render("→ "+e.MicroAction))

	return cardStyle.Width(inner + 4).Render(strings.Join(lines, "\n"))
}

func formatHistory(h map[string]any) string {
	if len(h) == 0 {
		return ""
	}
	event, _ := h["event"].(string)
	year, _ := h["year"].(string)
	switch {
	case event != "" && year != "":
		return fmt.Sprintf("另见：%s · %s", year, event)
	case event != "":
		return "另见：" + event
	}
	return ""
}

// SourceLabel describes where the shown entry came from.
func SourceLabel(source calendar.SourceTag) string {
	if source == calendar.SourceAPI {
		return sourceAPIStyle.Render("● 在线数据")
	}
	return sourceLocalStyle.Render("● 本地数据")
}

// RenderPlain prints e without styling, for pipes and logs.
func RenderPlain(e calendar.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s", e.Date.Gregorian, e.Date.Weekday, e.Date.Lunar)
	if e.Date.SolarTerm != "" {
		fmt.Fprintf(&b, " %s", e.Date.SolarTerm)
	}
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s (%s)\n%s\n\n", e.Narrative.Title, e.Narrative.Mood, e.Narrative.Content)
	hb := e.HistoryBenchmark
	fmt.Fprintf(&b, "历史对标: %s %s\n%s\n%s\n%s\n\n", hb.Year, hb.Event, hb.Context, hb.Perspective, hb.Comparison)
	fmt.Fprintf(&b, "今日微行动: %s\n", e.MicroAction)
	fmt.Fprintf(&b, "[%s]\n", e.Metadata.Source)
	return b.String()
}

func place(width int, s string) string {
	if width <= 0 {
		return s
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
