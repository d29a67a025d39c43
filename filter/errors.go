package filter

import "errors"

var (
	ErrInvalidCity    = errors.New("invalid city")
	ErrInvalidMonth   = errors.New("invalid month")
	ErrInvalidWeekday = errors.New("invalid weekday")
)
