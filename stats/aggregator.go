package stats

import (
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/dataset"
	"bikeshare/domain/entities/trip"
)

var (
	canonicalMonths = []time.Month{
		time.January, time.February, time.March, time.April, time.May, time.June,
		time.July, time.August, time.September, time.October, time.November, time.December,
	}

	canonicalWeekdays = []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday,
	}

	canonicalHours = func() []int {
		hours := make([]int, 24)
		for hour := range hours {
			hours[hour] = hour
		}
		return hours
	}()
)

// Aggregate computes every statistic group of ds. Groups without data are marked with NoData
// instead of failing the whole report
func Aggregate(ds *dataset.Dataset) Report {
	var report Report
	var err error

	report.Time, err = ComputeTimeStats(ds)
	logGroup("time", ds, err)

	report.Station, err = ComputeStationStats(ds)
	logGroup("station", ds, err)

	report.Duration, err = ComputeDurationStats(ds)
	logGroup("duration", ds, err)

	report.User, err = ComputeUserStats(ds)
	logGroup("user", ds, err)

	return report
}

func logGroup(group string, ds *dataset.Dataset, err error) {
	if err != nil {
		log.Infof("[aggregator][city: %s][group: %s][status: NO DATA] %s", ds.City, group, err.Error())
		return
	}
	log.Debugf("[aggregator][city: %s][group: %s][status: OK] %v trips aggregated", ds.City, group, ds.Len())
}

// ComputeTimeStats returns the most common month, weekday and start hour. Ties go to the value that comes
// first in calendar order: January, Monday and hour 0 first
func ComputeTimeStats(ds *dataset.Dataset) (TimeStats, error) {
	if ds.IsEmpty() {
		return TimeStats{NoData: true}, ErrEmptyDataset
	}

	months := NewFrequencyTable[time.Month]()
	weekdays := NewFrequencyTable[time.Weekday]()
	hours := NewFrequencyTable[int]()
	for _, record := range ds.Records() {
		months.Add(record.Month)
		weekdays.Add(record.Weekday)
		hours.Add(record.Hour)
	}

	month, _, _ := months.ModeIn(canonicalMonths)
	weekday, _, _ := weekdays.ModeIn(canonicalWeekdays)
	hour, _, _ := hours.ModeIn(canonicalHours)

	return TimeStats{
		Month:   month.String(),
		Weekday: weekday.String(),
		Hour:    hour,
	}, nil
}

// ComputeStationStats returns the most common start station, end station and start-end combination.
// Ties go to the value that appears first in ds
func ComputeStationStats(ds *dataset.Dataset) (StationStats, error) {
	if ds.IsEmpty() {
		return StationStats{NoData: true}, ErrEmptyDataset
	}

	startStations := NewFrequencyTable[string]()
	endStations := NewFrequencyTable[string]()
	trips := NewFrequencyTable[trip.StationPair]()
	for _, record := range ds.Records() {
		startStations.Add(record.StartStation)
		endStations.Add(record.EndStation)
		trips.Add(record.GetPairKey())
	}

	startStation, startCount, _ := startStations.Mode()
	endStation, endCount, _ := endStations.Mode()
	popularTrip, tripCount, _ := trips.Mode()
	log.Debugf("[aggregator][city: %s] %v start stations, %v end stations and %v distinct trips", ds.City, startStations.Len(), endStations.Len(), trips.Len())

	stationStats := StationStats{
		StartStation:      startStation,
		StartStationCount: startCount,
		EndStation:        endStation,
		EndStationCount:   endCount,
		PopularTrip:       popularTrip,
		PopularTripCount:  tripCount,
	}

	from, okFrom := ds.Station(popularTrip.Start)
	to, okTo := ds.Station(popularTrip.End)
	if okFrom && okTo {
		distance := from.DistanceTo(to)
		stationStats.PopularTripDistanceKm = &distance
	}

	return stationStats, nil
}

// ComputeDurationStats returns the total and the mean trip duration
func ComputeDurationStats(ds *dataset.Dataset) (DurationStats, error) {
	accumulator := durationaccumulator.NewDurationAccumulator()
	for _, record := range ds.Records() {
		accumulator.UpdateAccumulator(record.Duration)
	}

	mean, err := accumulator.GetAverageDuration()
	if err != nil {
		return DurationStats{NoData: true}, ErrEmptyDataset
	}

	return DurationStats{
		Count: accumulator.Counter,
		Total: accumulator.TotalDuration,
		Mean:  mean,
	}, nil
}

// ComputeUserStats returns the trips per user type and, when the city reports them, the trips per gender
// and the birth year statistics. Empty user types and genders are not counted
func ComputeUserStats(ds *dataset.Dataset) (UserStats, error) {
	hasGender := ds.HasColumn(dataset.Gender)
	hasBirthYear := ds.HasColumn(dataset.BirthYear)

	if ds.IsEmpty() {
		return UserStats{
			NoData:       true,
			HasGender:    hasGender,
			HasBirthYear: hasBirthYear,
			BirthYear:    BirthYearStats{NoData: true},
		}, ErrEmptyDataset
	}

	userTypes := NewFrequencyTable[string]()
	genders := NewFrequencyTable[string]()
	birthYears := NewFrequencyTable[int]()
	earliest, mostRecent := 0, 0
	for _, record := range ds.Records() {
		if record.UserType != "" {
			userTypes.Add(record.UserType)
		}

		if hasGender && record.Gender != "" {
			genders.Add(record.Gender)
		}

		if hasBirthYear && record.HasBirthYear() {
			birthYears.Add(record.BirthYear)
			if earliest == 0 || record.BirthYear < earliest {
				earliest = record.BirthYear
			}
			if record.BirthYear > mostRecent {
				mostRecent = record.BirthYear
			}
		}
	}

	userStats := UserStats{
		UserTypes:    userTypes.Entries(),
		HasGender:    hasGender,
		HasBirthYear: hasBirthYear,
		BirthYear:    BirthYearStats{NoData: true},
	}

	if hasGender {
		userStats.Genders = genders.Entries()
	}

	if mostCommon, _, ok := birthYears.Mode(); ok {
		userStats.BirthYear = BirthYearStats{
			Earliest:   earliest,
			MostRecent: mostRecent,
			MostCommon: mostCommon,
		}
	}

	return userStats, nil
}
