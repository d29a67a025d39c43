package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCriteria(t *testing.T) {
	criteria, err := NewCriteria(" Chicago", "MARCH", "Monday", "chicago", "new york city", "washington")
	require.NoError(t, err)
	assert.Equal(t, Criteria{City: "chicago", Month: "march", Weekday: "monday"}, criteria)
	assert.Equal(t, 3, criteria.MonthOrdinal())

	weekday, ok := criteria.WeekdayValue()
	require.True(t, ok)
	assert.Equal(t, time.Monday, weekday)
}

func TestNewCriteriaAll(t *testing.T) {
	criteria, err := NewCriteria("washington", "all", "All")
	require.NoError(t, err)
	assert.Equal(t, 0, criteria.MonthOrdinal())

	_, ok := criteria.WeekdayValue()
	assert.False(t, ok)
}

func TestNewCriteriaInvalid(t *testing.T) {
	testCases := []struct {
		name     string
		city     string
		month    string
		weekday  string
		expected error
	}{
		{name: "unknown city", city: "montreal", month: "all", weekday: "all", expected: ErrInvalidCity},
		{name: "unknown month", city: "chicago", month: "juneteenth", weekday: "all", expected: ErrInvalidMonth},
		{name: "month number", city: "chicago", month: "3", weekday: "all", expected: ErrInvalidMonth},
		{name: "unknown weekday", city: "chicago", month: "all", weekday: "funday", expected: ErrInvalidWeekday},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCriteria(tc.city, tc.month, tc.weekday, "chicago", "washington")
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestWeekdayValueCoversCanonicalNames(t *testing.T) {
	expected := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday}
	for idx, name := range Weekdays {
		weekday, ok := Criteria{Weekday: name}.WeekdayValue()
		require.True(t, ok)
		assert.Equal(t, expected[idx], weekday, name)
	}
}

func TestMonthOrdinalCoversCanonicalNames(t *testing.T) {
	for idx, name := range Months {
		assert.Equal(t, idx+1, Criteria{Month: name}.MonthOrdinal(), name)
	}
}
