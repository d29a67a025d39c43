package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/catalog"
	"bikeshare/domain/dataset"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
)

const (
	startTimeColumn    = "Start Time"
	endTimeColumn      = "End Time"
	durationColumn     = "Trip Duration"
	startStationColumn = "Start Station"
	endStationColumn   = "End Station"
	userTypeColumn     = "User Type"
	genderColumn       = "Gender"
	birthYearColumn    = "Birth Year"

	stationNameColumn      = "name"
	stationLatitudeColumn  = "latitude"
	stationLongitudeColumn = "longitude"

	utf8BOM = "\ufeff"
)

var (
	requiredColumns = []string{startTimeColumn, durationColumn, startStationColumn, endStationColumn, userTypeColumn}

	// fallbackTimeLayouts are tried, in order, when a timestamp does not match the city layout
	fallbackTimeLayouts = []string{
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"2006-01-02T15:04:05",
		"1/2/2006 15:04",
	}
)

// Loader reads the record source of a city into a Dataset
type Loader struct {
	catalog *catalog.Catalog
}

func New(sourceCatalog *catalog.Catalog) *Loader {
	return &Loader{
		catalog: sourceCatalog,
	}
}

// Load reads the trips of city and, if the city has one, its station coordinates.
// Every call reads the files again
func (l *Loader) Load(city string) (*dataset.Dataset, error) {
	source, err := l.catalog.Lookup(city)
	if err != nil {
		return nil, err
	}

	tripsFile, err := openSource(source.Trips)
	if err != nil {
		return nil, err
	}
	defer closeSource(tripsFile)

	records, columns, err := readTrips(source.Trips, tripsFile, source.TimeLayout)
	if err != nil {
		log.Errorf("[loader][city: %s][status: ERROR] error reading %s: %s", city, source.Trips, err.Error())
		return nil, err
	}

	var stations map[string]station.StationData
	if source.Stations != "" {
		stationsFile, err := openSource(source.Stations)
		if err != nil {
			return nil, err
		}
		defer closeSource(stationsFile)

		stations, err = readStations(source.Stations, stationsFile)
		if err != nil {
			log.Errorf("[loader][city: %s][status: ERROR] error reading %s: %s", city, source.Stations, err.Error())
			return nil, err
		}
	}

	ds := dataset.New(city, records, columns, stations)
	log.Infof("[loader][city: %s][status: OK] %v trips and %v stations loaded, optional columns: %v", city, ds.Len(), len(stations), ds.Columns())
	return ds, nil
}

// Read parses a trips source of city from reader
func Read(city string, reader io.Reader, timeLayout string) (*dataset.Dataset, error) {
	records, columns, err := readTrips(city, reader, timeLayout)
	if err != nil {
		return nil, err
	}
	return dataset.New(city, records, columns, nil), nil
}

// ReadStations parses a station coordinates source with columns name, latitude and longitude
func ReadStations(reader io.Reader) (map[string]station.StationData, error) {
	return readStations("stations", reader)
}

func openSource(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %s: %w", path, err.Error(), catalog.ErrSourceNotFound)
	}
	return file, nil
}

func closeSource(file *os.File) {
	if err := file.Close(); err != nil {
		log.Errorf("[loader][status: ERROR] error closing %s: %s", file.Name(), err.Error())
	}
}

// columnIndexes maps a header name to its position. Header names are compared trimmed and case-insensitive
type columnIndexes map[string]int

func newColumnIndexes(header []string) columnIndexes {
	indexes := make(columnIndexes, len(header))
	for idx, name := range header {
		if idx == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		name = strings.ReplaceAll(strings.TrimSpace(name), `"`, "")
		indexes[strings.ToLower(name)] = idx
	}
	return indexes
}

func (ci columnIndexes) index(column string) (int, bool) {
	idx, ok := ci[strings.ToLower(column)]
	return idx, ok
}

func (ci columnIndexes) has(column string) bool {
	_, ok := ci.index(column)
	return ok
}

// field returns the trimmed value of column in row, or an empty string if the row is too short
func (ci columnIndexes) field(row []string, column string) string {
	idx, ok := ci.index(column)
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func newCSVReader(reader io.Reader) *csv.Reader {
	csvReader := csv.NewReader(reader)
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1
	return csvReader
}

func readTrips(sourceName string, reader io.Reader, timeLayout string) ([]trip.TripRecord, []dataset.Column, error) {
	csvReader := newCSVReader(reader)

	header, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, newMalformedSourceError(sourceName, 0, startTimeColumn, ErrMissingColumn)
		}
		return nil, nil, newMalformedSourceError(sourceName, 1, "", err)
	}

	indexes := newColumnIndexes(header)
	for _, column := range requiredColumns {
		if !indexes.has(column) {
			return nil, nil, newMalformedSourceError(sourceName, 0, column, ErrMissingColumn)
		}
	}

	var columns []dataset.Column
	hasEndTime := indexes.has(endTimeColumn)
	hasGender := indexes.has(genderColumn)
	hasBirthYear := indexes.has(birthYearColumn)
	if hasEndTime {
		columns = append(columns, dataset.EndTime)
	}
	if hasGender {
		columns = append(columns, dataset.Gender)
	}
	if hasBirthYear {
		columns = append(columns, dataset.BirthYear)
	}

	var records []trip.TripRecord
	line := 1
	for {
		row, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, newMalformedSourceError(sourceName, line+1, "", err)
		}
		line, _ = csvReader.FieldPos(0)

		if isBlankRow(row) {
			continue
		}

		startTime, err := parseTime(indexes.field(row, startTimeColumn), timeLayout)
		if err != nil {
			log.Debugf("[loader][source: %s] invalid start time at line %v: %v", sourceName, line, indexes.field(row, startTimeColumn))
			return nil, nil, newMalformedSourceError(sourceName, line, startTimeColumn, ErrInvalidDate)
		}

		duration, err := strconv.ParseFloat(indexes.field(row, durationColumn), 64)
		if err != nil || !isValidDuration(duration) {
			log.Debugf("[loader][source: %s] invalid duration at line %v: %v", sourceName, line, indexes.field(row, durationColumn))
			return nil, nil, newMalformedSourceError(sourceName, line, durationColumn, ErrInvalidDurationType)
		}

		record := trip.NewTripRecord(
			startTime,
			indexes.field(row, startStationColumn),
			indexes.field(row, endStationColumn),
			duration,
			indexes.field(row, userTypeColumn),
		)

		if hasEndTime {
			// an unparseable end time is not needed by any statistic, it is kept as zero
			if endTime, err := parseTime(indexes.field(row, endTimeColumn), timeLayout); err == nil {
				record.EndTime = endTime
			}
		}

		if hasGender {
			record.Gender = indexes.field(row, genderColumn)
		}

		if hasBirthYear {
			record.BirthYear = parseBirthYear(indexes.field(row, birthYearColumn))
		}

		records = append(records, record)
	}

	return records, columns, nil
}

func readStations(sourceName string, reader io.Reader) (map[string]station.StationData, error) {
	csvReader := newCSVReader(reader)

	header, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, newMalformedSourceError(sourceName, 0, stationNameColumn, ErrMissingColumn)
		}
		return nil, newMalformedSourceError(sourceName, 1, "", err)
	}

	indexes := newColumnIndexes(header)
	for _, column := range []string{stationNameColumn, stationLatitudeColumn, stationLongitudeColumn} {
		if !indexes.has(column) {
			return nil, newMalformedSourceError(sourceName, 0, column, ErrMissingColumn)
		}
	}

	stations := make(map[string]station.StationData)
	line := 1
	for {
		row, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, newMalformedSourceError(sourceName, line+1, "", err)
		}
		line, _ = csvReader.FieldPos(0)

		if isBlankRow(row) {
			continue
		}

		latitude, err := strconv.ParseFloat(indexes.field(row, stationLatitudeColumn), 64)
		if err != nil {
			return nil, newMalformedSourceError(sourceName, line, stationLatitudeColumn, ErrInvalidCoordinates)
		}

		longitude, err := strconv.ParseFloat(indexes.field(row, stationLongitudeColumn), 64)
		if err != nil {
			return nil, newMalformedSourceError(sourceName, line, stationLongitudeColumn, ErrInvalidCoordinates)
		}

		name := indexes.field(row, stationNameColumn)
		stations[name] = station.StationData{
			Name:      name,
			Latitude:  latitude,
			Longitude: longitude,
		}
	}

	return stations, nil
}

func parseTime(value string, timeLayout string) (time.Time, error) {
	if timeLayout != "" {
		if parsed, err := time.Parse(timeLayout, value); err == nil {
			return parsed, nil
		}
	}

	var err error
	for _, layout := range fallbackTimeLayouts {
		var parsed time.Time
		parsed, err = time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, err
}

// parseBirthYear returns 0 when the value is missing. Sources write years as floats, e.g. 1992.0
func parseBirthYear(value string) int {
	if value == "" {
		return 0
	}

	year, err := strconv.ParseFloat(value, 64)
	if err != nil || year <= 0 {
		log.Debugf("[loader] ignoring invalid birth year: %v", value)
		return 0
	}
	return int(year)
}

func isBlankRow(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}

// isValidDuration rejects NaN, infinite and negative durations, which ParseFloat accepts
func isValidDuration(duration float64) bool {
	return !math.IsNaN(duration) && !math.IsInf(duration, 0) && duration >= 0
}
