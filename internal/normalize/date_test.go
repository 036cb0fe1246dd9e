package normalize

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	jan15 := civil.Date{Year: 2024, Month: time.January, Day: 15}

	tests := []struct {
		input    string
		expected civil.Date
		ok       bool
	}{
		{"15-01-2024", jan15, true},
		{"15/01/2024", jan15, true},
		{"15 Jan 2024", jan15, true},
		{"15 JAN 2024", jan15, true},
		{"15-Jan-2024", jan15, true},
		{"15 January 2024", jan15, true},
		{"2024-01-15", jan15, true},
		{"Jan 15, 2024", jan15, true},
		{"January 15, 2024", jan15, true},
		{"15-Jan-24", jan15, true},
		{"15/Jan/2024", jan15, true},
		{"15/Jan/24", jan15, true},
		{"  15   Jan  2024 ", jan15, true},
		{"5 Jan 2024", civil.Date{Year: 2024, Month: time.January, Day: 5}, true},
		{"5-Jan-2024", civil.Date{Year: 2024, Month: time.January, Day: 5}, true},
		{"31-02-2024", civil.Date{}, false},
		{"not a date", civil.Date{}, false},
		{"", civil.Date{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseDate(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestParseDate_TemplatePriority(t *testing.T) {
	// day-month layouts come before the US month-day layout
	got, ok := ParseDate("01-02-2024")
	require.True(t, ok)
	assert.Equal(t, civil.Date{Year: 2024, Month: time.February, Day: 1}, got)

	got, ok = ParseDate("03/04/2024")
	require.True(t, ok)
	assert.Equal(t, civil.Date{Year: 2024, Month: time.April, Day: 3}, got)

	// only the month-day reading is possible here
	got, ok = ParseDate("12/25/2024")
	require.True(t, ok)
	assert.Equal(t, civil.Date{Year: 2024, Month: time.December, Day: 25}, got)
}

func TestExtractDate(t *testing.T) {
	tests := []struct {
		input    string
		expected civil.Date
		ok       bool
	}{
		{"Payment Due Date: 15-Jan-2024 Pay now", civil.Date{Year: 2024, Month: time.January, Day: 15}, true},
		{"Statement Period: 01-Jan-2024 to 31-Jan-2024", civil.Date{Year: 2024, Month: time.January, Day: 1}, true},
		{"due on 05/03/2024.", civil.Date{Year: 2024, Month: time.March, Day: 5}, true},
		{"closing 2024-02-29 balance", civil.Date{Year: 2024, Month: time.February, Day: 29}, true},
		{"no dates in here", civil.Date{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ExtractDate(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestParseDateLoose(t *testing.T) {
	got, ok := ParseDateLoose("15-Jan-2024 Total Amount Due")
	require.True(t, ok)
	assert.Equal(t, civil.Date{Year: 2024, Month: time.January, Day: 15}, got)
}

func TestIsValidDate(t *testing.T) {
	now := time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date civil.Date
		want bool
	}{
		{"recent", civil.Date{Year: 2026, Month: time.September, Day: 1}, true},
		{"nine years ago", civil.Date{Year: 2017, Month: time.October, Day: 15}, true},
		{"eleven years ago", civil.Date{Year: 2015, Month: time.October, Day: 15}, false},
		{"exactly ten years ago", civil.Date{Year: 2016, Month: time.October, Day: 15}, false},
		{"day after ten years ago", civil.Date{Year: 2016, Month: time.October, Day: 16}, true},
		{"next month", civil.Date{Year: 2026, Month: time.November, Day: 15}, true},
		{"exactly one year ahead", civil.Date{Year: 2027, Month: time.October, Day: 15}, false},
		{"two years ahead", civil.Date{Year: 2028, Month: time.January, Day: 1}, false},
		{"zero value", civil.Date{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidDate(tt.date, now))
		})
	}
}

func TestIsValidDate_ElevenYearsAgoRelativeToToday(t *testing.T) {
	now := time.Now()
	old := civil.DateOf(now.AddDate(-11, 0, 0))
	assert.False(t, IsValidDate(old, now))
}
