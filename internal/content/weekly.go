package content

import (
	"time"

	"github.com/april2040/singularity-calendar/internal/dateutil"
)

// Weekly is the local stand-in for the backend's weekly theme.
type Weekly struct {
	Week    int      `json:"week"`
	Quarter int      `json:"quarter"`
	Theme   string   `json:"theme"`
	Themes  []string `json:"themes"`
}

// WeeklyTheme picks the quarter's theme list for date and rotates through
// it week by week.
func WeeklyTheme(date time.Time) Weekly {
	q := (int(date.Month()) - 1) / 3
	return weekly(dateutil.WeekNumber(date), q)
}

// WeeklyThemeForWeek is WeeklyTheme for a week number of the year. Weeks
// are split into quarters of 13; weeks past 52 stay in the fourth quarter.
func WeeklyThemeForWeek(week int) Weekly {
	if week < 1 {
		week = 1
	}
	q := (week - 1) / 13
	if q > 3 {
		q = 3
	}
	return weekly(week, q)
}

func weekly(week, q int) Weekly {
	if week < 1 {
		week = 1
	}
	themes := weeklyThemes[q]
	return Weekly{
		Week:    week,
		Quarter: q + 1,
		Theme:   themes[(week-1)%len(themes)],
		Themes:  append([]string(nil), themes[:]...),
	}
}
