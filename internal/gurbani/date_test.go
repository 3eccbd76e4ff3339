package gurbani

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	for _, in := range []string{"2024/3/7", "2024-03-07", "2024-3-7"} {
		got, err := ParseDate(in)
		require.NoError(t, err, in)
		assert.Equal(t, day(2024, time.March, 7), got, in)
	}

	_, err := ParseDate("yesterday")
	assert.Error(t, err)
}

func TestExpandDate(t *testing.T) {
	assert.Equal(t, "March 7", ExpandDate("2024/3/7", false))
	assert.Equal(t, "March 7, 2024", ExpandDate("2024/3/7", true))
	assert.Equal(t, "not-a-date", ExpandDate("not-a-date", false))
}

func TestFormatDates(t *testing.T) {
	d := day(2024, time.March, 7)
	assert.Equal(t, "2024/3/7", FormatRouteDate(d))
	assert.Equal(t, "2024-03-07", FormatInputDate(d))
}

func TestClampDate(t *testing.T) {
	lo, hi := day(2002, 1, 1), day(2024, 3, 7)
	assert.Equal(t, lo, ClampDate(day(1999, 5, 5), lo, hi))
	assert.Equal(t, hi, ClampDate(day(2030, 5, 5), lo, hi))
	assert.Equal(t, day(2010, 5, 5), ClampDate(day(2010, 5, 5), lo, hi))
}
