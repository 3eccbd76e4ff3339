package gurbani

import (
	"fmt"
	"time"
)

// FirstHukamnamaDate is the earliest date the hukamnama archive covers
var FirstHukamnamaDate = time.Date(2002, time.January, 1, 0, 0, 0, 0, time.UTC)

// Accepted input layouts for hukamnama dates, most specific first
var dateLayouts = []string{
	"2006/1/2",
	"2006-01-02",
	"2006-1-2",
}

// ParseDate parses a hukamnama date in route (2006/1/2) or ISO form
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid hukamnama date %q", s)
}

// DateOnly truncates t to midnight UTC of its calendar day
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatRouteDate formats a date the way hukamnama routes carry it (2024/3/7)
func FormatRouteDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Year(), int(t.Month()), t.Day())
}

// FormatInputDate formats a date for an HTML date input
func FormatInputDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// ExpandDate renders a date as "March 7" or "March 7, 2024".
// Unparseable input is returned unchanged.
func ExpandDate(s string, withYear bool) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	if withYear {
		return t.Format("January 2, 2006")
	}
	return t.Format("January 2")
}

// ClampDate bounds t to [lo, hi]
func ClampDate(t, lo, hi time.Time) time.Time {
	if t.Before(lo) {
		return lo
	}
	if t.After(hi) {
		return hi
	}
	return t
}
