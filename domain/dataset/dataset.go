package dataset

import (
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
)

// Column identifies an optional column of a trips file
type Column string

const (
	EndTime   Column = "End Time"
	Gender    Column = "Gender"
	BirthYear Column = "Birth Year"
)

// Dataset is an ordered, read-only sequence of trips of one city.
// + City: city which belongs the data
// + records: trips in source order
// + columns: optional columns present in the source. Once set, it cannot change
// + stations: station coordinates by station name. May be empty
type Dataset struct {
	City     string
	records  []trip.TripRecord
	columns  map[Column]bool
	stations map[string]station.StationData
}

func New(city string, records []trip.TripRecord, columns []Column, stations map[string]station.StationData) *Dataset {
	columnSet := make(map[Column]bool, len(columns))
	for _, column := range columns {
		columnSet[column] = true
	}

	if stations == nil {
		stations = make(map[string]station.StationData)
	}

	return &Dataset{
		City:     city,
		records:  records,
		columns:  columnSet,
		stations: stations,
	}
}

// Derive returns a new Dataset with the given records that keeps the city, the optional columns
// and the stations of ds
func (ds *Dataset) Derive(records []trip.TripRecord) *Dataset {
	return &Dataset{
		City:     ds.City,
		records:  records,
		columns:  ds.columns,
		stations: ds.stations,
	}
}

func (ds *Dataset) Len() int {
	return len(ds.records)
}

func (ds *Dataset) IsEmpty() bool {
	return len(ds.records) == 0
}

// At returns the record in position idx
func (ds *Dataset) At(idx int) trip.TripRecord {
	return ds.records[idx]
}

// Records returns the trips of the dataset. The returned slice must not be modified
func (ds *Dataset) Records() []trip.TripRecord {
	return ds.records[:len(ds.records):len(ds.records)]
}

// Slice returns a copy of the records in [start, end). Bounds are clamped to the dataset length
func (ds *Dataset) Slice(start int, end int) []trip.TripRecord {
	if start < 0 {
		start = 0
	}
	if end > len(ds.records) {
		end = len(ds.records)
	}
	if start >= end {
		return []trip.TripRecord{}
	}

	window := make([]trip.TripRecord, end-start)
	copy(window, ds.records[start:end])
	return window
}

func (ds *Dataset) HasColumn(column Column) bool {
	return ds.columns[column]
}

// Columns returns the optional columns present, in a fixed order
func (ds *Dataset) Columns() []Column {
	var columns []Column
	for _, column := range []Column{EndTime, Gender, BirthYear} {
		if ds.columns[column] {
			columns = append(columns, column)
		}
	}
	return columns
}

// Station returns the coordinates of a station, if known
func (ds *Dataset) Station(name string) (station.StationData, bool) {
	stationData, ok := ds.stations[name]
	return stationData, ok
}
