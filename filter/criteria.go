package filter

import (
	"fmt"
	"time"

	"bikeshare/utils"
)

// All is the value that disables a month or weekday filter
const All = "all"

var (
	// Months in canonical order, january first
	Months = []string{
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	}

	// Weekdays in canonical order, monday first
	Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
)

// Criteria is the selection of one analysis session
// + City: city to analyze
// + Month: "all" or a month name
// + Weekday: "all" or a day name
type Criteria struct {
	City    string `json:"city"`
	Month   string `json:"month"`
	Weekday string `json:"weekday"`
}

// NewCriteria validates the user input against the known vocabularies. If cities is empty any city is accepted
func NewCriteria(city string, month string, weekday string, cities ...string) (Criteria, error) {
	criteria := Criteria{
		City:    utils.Normalize(city),
		Month:   utils.Normalize(month),
		Weekday: utils.Normalize(weekday),
	}

	if len(cities) > 0 && !utils.ContainsString(criteria.City, cities) {
		return Criteria{}, fmt.Errorf("%w: %q", ErrInvalidCity, city)
	}

	if criteria.Month != All && !utils.ContainsString(criteria.Month, Months) {
		return Criteria{}, fmt.Errorf("%w: %q", ErrInvalidMonth, month)
	}

	if criteria.Weekday != All && !utils.ContainsString(criteria.Weekday, Weekdays) {
		return Criteria{}, fmt.Errorf("%w: %q", ErrInvalidWeekday, weekday)
	}

	return criteria, nil
}

// MonthOrdinal returns the month number, from 1 to 12, or 0 if every month is selected
func (c Criteria) MonthOrdinal() int {
	return utils.IndexOfString(c.Month, Months) + 1
}

// WeekdayValue returns the selected weekday. The second value is false if every day is selected
func (c Criteria) WeekdayValue() (time.Weekday, bool) {
	idx := utils.IndexOfString(c.Weekday, Weekdays)
	if idx < 0 {
		return time.Sunday, false
	}
	// Weekdays starts on monday, time.Weekday on sunday
	return time.Weekday((idx + 1) % 7), true
}

func (c Criteria) String() string {
	return fmt.Sprintf("city: %s, month: %s, weekday: %s", c.City, c.Month, c.Weekday)
}
