package dateutil

import (
	"math"
	"time"
)

// LunarCalendar turns a Gregorian date into display text for the lunar
// calendar. Swap in a real astronomical implementation behind this
// interface; nothing else depends on how the text is derived.
type LunarCalendar interface {
	LunarText(t time.Time) string
}

// LunarDate is the result of the placeholder conversion.
type LunarDate struct {
	Year  int
	Month string
	Day   string
}

var (
	lunarMonths = [12]string{"正", "二", "三", "四", "五", "六", "七", "八", "九", "十", "冬", "腊"}
	lunarDays   = [30]string{
		"初一", "初二", "初三", "初四", "初五", "初六", "初七", "初八", "初九", "初十",
		"十一", "十二", "十三", "十四", "十五", "十六", "十七", "十八", "十九", "二十",
		"廿一", "廿二", "廿三", "廿四", "廿五", "廿六", "廿七", "廿八", "廿九", "三十",
	}
)

// PlaceholderLunar is NOT a lunar calendar. It maps the day count since
// 1900-01-01 onto fixed 30-day months so the card has plausible looking
// text. Results are stable per date and wrong against any real almanac.
type PlaceholderLunar struct{}

// Convert applies the placeholder arithmetic to t's calendar date.
func (PlaceholderLunar) Convert(t time.Time) LunarDate {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	base := time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	diffDays := int(math.Floor(day.Sub(base).Hours() / 24))

	out := LunarDate{
		Year:  1900 + int(math.Floor(float64(diffDays)/365.2425)),
		Month: lunarMonths[0],
		Day:   lunarDays[0],
	}
	// Dates before the base produce negative remainders; those keep the
	// first month and day.
	dayOfYear := diffDays % 365
	if dayOfYear >= 0 {
		out.Month = lunarMonths[(dayOfYear/30)%12]
		out.Day = lunarDays[dayOfYear%30]
	}
	return out
}

// LunarText renders the placeholder date as "<month>月<day>", e.g. 冬月十五.
func (p PlaceholderLunar) LunarText(t time.Time) string {
	ld := p.Convert(t)
	return ld.Month + "月" + ld.Day
}
