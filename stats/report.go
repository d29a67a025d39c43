package stats

import "bikeshare/domain/entities/trip"

// Report contains the four statistic groups of a filtered dataset
type Report struct {
	Time     TimeStats     `json:"time"`
	Station  StationStats  `json:"station"`
	Duration DurationStats `json:"duration"`
	User     UserStats     `json:"user"`
}

// TimeStats contains the most frequent times of travel
// + Month: name of the most common month, e.g. March
// + Weekday: name of the most common day of week, e.g. Monday
// + Hour: most common start hour, from 0 to 23
type TimeStats struct {
	NoData  bool   `json:"no_data"`
	Month   string `json:"month,omitempty"`
	Weekday string `json:"weekday,omitempty"`
	Hour    int    `json:"hour"`
}

// StationStats contains the most popular stations and trip
// + PopularTripDistanceKm: distance between the stations of PopularTrip. Nil if any of them has no coordinates
type StationStats struct {
	NoData                bool             `json:"no_data"`
	StartStation          string           `json:"start_station,omitempty"`
	StartStationCount     int              `json:"start_station_count"`
	EndStation            string           `json:"end_station,omitempty"`
	EndStationCount       int              `json:"end_station_count"`
	PopularTrip           trip.StationPair `json:"popular_trip"`
	PopularTripCount      int              `json:"popular_trip_count"`
	PopularTripDistanceKm *float64         `json:"popular_trip_distance_km,omitempty"`
}

// DurationStats contains the total and average trip duration, in seconds
type DurationStats struct {
	NoData bool    `json:"no_data"`
	Count  int     `json:"count"`
	Total  float64 `json:"total"`
	Mean   float64 `json:"mean"`
}

// UserStats contains the user demographics
// + UserTypes: trips per user type, most common first
// + HasGender: the city reports gender. Genders is only meaningful if true
// + HasBirthYear: the city reports birth year. BirthYear is only meaningful if true
type UserStats struct {
	NoData       bool                     `json:"no_data"`
	UserTypes    []FrequencyEntry[string] `json:"user_types"`
	HasGender    bool                     `json:"has_gender"`
	Genders      []FrequencyEntry[string] `json:"genders,omitempty"`
	HasBirthYear bool                     `json:"has_birth_year"`
	BirthYear    BirthYearStats           `json:"birth_year"`
}

// BirthYearStats contains the earliest, most recent and most common birth year. Missing years are not counted
type BirthYearStats struct {
	NoData     bool `json:"no_data"`
	Earliest   int  `json:"earliest,omitempty"`
	MostRecent int  `json:"most_recent,omitempty"`
	MostCommon int  `json:"most_common,omitempty"`
}
