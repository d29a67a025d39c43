package trip

import (
	"time"
)

// TripRecord struct that contains one row of a city trips file
// + StartTime: date and time in which the trip begins
// + EndTime: date and time in which the trip ends. Zero if the city does not report it
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + Duration: duration of the trip in seconds
// + UserType: type of user (Subscriber, Customer, ...). Empty if not reported
// + Gender: gender of the user. Empty if not reported or if the city does not have the column
// + BirthYear: birth year of the user. Zero when missing
// + Month, Weekday, Hour: derived from StartTime once, at load time
type TripRecord struct {
	StartTime    time.Time    `json:"start_time"`
	EndTime      time.Time    `json:"end_time,omitempty"`
	StartStation string       `json:"start_station"`
	EndStation   string       `json:"end_station"`
	Duration     float64      `json:"duration"`
	UserType     string       `json:"user_type"`
	Gender       string       `json:"gender,omitempty"`
	BirthYear    int          `json:"birth_year,omitempty"`
	Month        time.Month   `json:"month"`
	Weekday      time.Weekday `json:"weekday"`
	Hour         int          `json:"hour"`
}

// NewTripRecord returns a TripRecord with its derived time fields already set
func NewTripRecord(startTime time.Time, startStation string, endStation string, duration float64, userType string) TripRecord {
	return TripRecord{
		StartTime:    startTime,
		StartStation: startStation,
		EndStation:   endStation,
		Duration:     duration,
		UserType:     userType,
		Month:        startTime.Month(),
		Weekday:      startTime.Weekday(),
		Hour:         startTime.Hour(),
	}
}

// HasBirthYear returns true if the birth year of the user was reported
func (tr TripRecord) HasBirthYear() bool {
	return tr.BirthYear > 0
}

// GetPairKey returns the key used to group trips by start and end station
func (tr TripRecord) GetPairKey() StationPair {
	return StationPair{Start: tr.StartStation, End: tr.EndStation}
}

// StationPair is a (start station, end station) combination
type StationPair struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
