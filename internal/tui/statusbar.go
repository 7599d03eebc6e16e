package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/april2040/singularity-calendar/internal/calendar"
)

func renderStatusBar(source calendar.SourceTag, lastUpdated time.Time, loading bool, spin string, width int) string {
	left := " " + SourceLabel(source)
	if !lastUpdated.IsZero() {
		left += fmt.Sprintf(" · 更新于 %s", lastUpdated.Format("15:04:05"))
	}
	if loading {
		left += " " + spin + " 加载中..."
	}

	right := " r refresh  c clear  q quit "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}
