package dateutil

import (
	"math"
	"regexp"
	"strconv"
	"time"
)

// Weekdays is indexed by time.Weekday, Sunday first.
var Weekdays = [7]string{"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六"}

// Alternation order matters: longer tokens must be tried before their prefixes.
var tokenPattern = regexp.MustCompile(`yyyy|yy|MM|M|dd|d|HH|H|mm|m|ss|s`)

// Format substitutes the date tokens yyyy, yy, MM, M, dd, d, HH, H, mm, m,
// ss and s in pattern with the corresponding fields of t. Anything else in
// the pattern is copied through unchanged.
func Format(t time.Time, pattern string) string {
	return tokenPattern.ReplaceAllStringFunc(pattern, func(tok string) string {
		switch tok {
		case "yyyy":
			return pad(t.Year(), 4)
		case "yy":
			y := pad(t.Year(), 4)
			return y[len(y)-2:]
		case "MM":
			return pad(int(t.Month()), 2)
		case "M":
			return strconv.Itoa(int(t.Month()))
		case "dd":
			return pad(t.Day(), 2)
		case "d":
			return strconv.Itoa(t.Day())
		case "HH":
			return pad(t.Hour(), 2)
		case "H":
			return strconv.Itoa(t.Hour())
		case "mm":
			return pad(t.Minute(), 2)
		case "m":
			return strconv.Itoa(t.Minute())
		case "ss":
			return pad(t.Second(), 2)
		case "s":
			return strconv.Itoa(t.Second())
		}
		return tok
	})
}

func pad(n, width int) string {
	s := strconv.Itoa(n)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

// WeekdayName returns the Chinese weekday label for t.
func WeekdayName(t time.Time) string {
	return Weekdays[t.Weekday()]
}

// SameDay reports whether a and b fall on the same calendar date in the
// location of b.
func SameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsWeekend reports whether t is a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// WeekNumber returns the number of started weeks since January 1st of t's
// year. Midnight on January 1st is week 0.
func WeekNumber(t time.Time) int {
	start := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	weeks := t.Sub(start).Hours() / (24 * 7)
	return int(math.Ceil(weeks))
}

// DayKey returns the YYYY-MM-DD form of t's local date.
func DayKey(t time.Time) string {
	return Format(t, "yyyy-MM-dd")
}
