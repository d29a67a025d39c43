package filter

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/dataset"
	"bikeshare/domain/entities/trip"
)

// 2017-03-06 is a monday
func newTrip(month time.Month, day int, hour int, startStation string) trip.TripRecord {
	startTime := time.Date(2017, month, day, hour, 0, 0, 0, time.UTC)
	return trip.NewTripRecord(startTime, startStation, "End", 60, "Subscriber")
}

func newTestDataset() *dataset.Dataset {
	records := []trip.TripRecord{
		newTrip(time.March, 6, 8, "A"),   // monday
		newTrip(time.March, 7, 9, "B"),   // tuesday
		newTrip(time.May, 1, 10, "C"),    // monday
		newTrip(time.March, 13, 11, "D"), // monday
		newTrip(time.June, 4, 12, "E"),   // sunday
	}
	return dataset.New("chicago", records, []dataset.Column{dataset.Gender}, nil)
}

func startStations(ds *dataset.Dataset) []string {
	var stations []string
	for _, record := range ds.Records() {
		stations = append(stations, record.StartStation)
	}
	return stations
}

func TestApplyAllReturnsEqualDataset(t *testing.T) {
	ds := newTestDataset()

	filtered := Apply(ds, Criteria{City: "chicago", Month: All, Weekday: All})

	if diff := cmp.Diff(ds.Records(), filtered.Records()); diff != "" {
		t.Errorf("filtered records mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, filtered.HasColumn(dataset.Gender))
	assert.Equal(t, "chicago", filtered.City)
}

func TestApply(t *testing.T) {
	testCases := []struct {
		name     string
		month    string
		weekday  string
		expected []string
	}{
		{name: "month only", month: "march", weekday: All, expected: []string{"A", "B", "D"}},
		{name: "weekday only", month: All, weekday: "monday", expected: []string{"A", "C", "D"}},
		{name: "month and weekday", month: "march", weekday: "monday", expected: []string{"A", "D"}},
		{name: "sunday", month: All, weekday: "Sunday", expected: []string{"E"}},
		{name: "no match", month: "december", weekday: All, expected: nil},
		{name: "no match on both", month: "may", weekday: "tuesday", expected: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ds := newTestDataset()

			filtered := Apply(ds, Criteria{City: "chicago", Month: tc.month, Weekday: tc.weekday})

			if diff := cmp.Diff(tc.expected, startStations(filtered)); diff != "" {
				t.Errorf("filtered stations mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, 5, ds.Len(), "input dataset must not change")
		})
	}
}

func TestApplyIsSubsetAndComplete(t *testing.T) {
	ds := newTestDataset()

	for _, month := range append([]string{All}, Months...) {
		for _, weekday := range append([]string{All}, Weekdays...) {
			criteria := Criteria{City: "chicago", Month: month, Weekday: weekday}
			filtered := Apply(ds, criteria)

			matches := func(record trip.TripRecord) bool {
				if ordinal := criteria.MonthOrdinal(); ordinal != 0 && int(record.Month) != ordinal {
					return false
				}
				if day, ok := criteria.WeekdayValue(); ok && record.Weekday != day {
					return false
				}
				return true
			}

			for _, record := range filtered.Records() {
				require.True(t, matches(record), "record %v should not pass %s", record.StartTime, criteria)
			}

			expected := 0
			for _, record := range ds.Records() {
				if matches(record) {
					expected++
				}
			}
			require.Equal(t, expected, filtered.Len(), criteria.String())
		}
	}
}

func TestApplyEmptyDataset(t *testing.T) {
	ds := dataset.New("washington", nil, nil, nil)

	filtered := Apply(ds, Criteria{City: "washington", Month: "march", Weekday: "monday"})
	require.NotNil(t, filtered)
	assert.True(t, filtered.IsEmpty())
}
