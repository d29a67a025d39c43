package session

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/catalog"
	"bikeshare/domain/business/sessionreport"
	"bikeshare/domain/dataset"
	"bikeshare/domain/entities/trip"
	"bikeshare/filter"
	"bikeshare/paginator"
)

type fakeLoader struct {
	datasets map[string]*dataset.Dataset
	calls    int
}

func (fl *fakeLoader) Load(city string) (*dataset.Dataset, error) {
	fl.calls++
	ds, ok := fl.datasets[city]
	if !ok {
		return nil, fmt.Errorf("city %q: %w", city, catalog.ErrSourceNotFound)
	}
	return ds, nil
}

type fakePublisher struct {
	reports []*sessionreport.SessionReport
	err     error
	closed  bool
}

func (fp *fakePublisher) Publish(_ context.Context, report *sessionreport.SessionReport) error {
	fp.reports = append(fp.reports, report)
	return fp.err
}

func (fp *fakePublisher) Close() error {
	fp.closed = true
	return nil
}

// 2017-03-06 is a monday
func newLoader() *fakeLoader {
	records := make([]trip.TripRecord, 0, 12)
	for day := 0; day < 12; day++ {
		startTime := time.Date(2017, time.March, 6+day, 8, 0, 0, 0, time.UTC)
		records = append(records, trip.NewTripRecord(startTime, "A", "B", 100, "Subscriber"))
	}
	return &fakeLoader{
		datasets: map[string]*dataset.Dataset{
			"chicago": dataset.New("chicago", records, nil, nil),
		},
	}
}

func TestRun(t *testing.T) {
	loader := newLoader()
	reportPublisher := &fakePublisher{}
	runner := New(loader, reportPublisher)

	result, err := runner.Run(context.Background(), filter.Criteria{City: "chicago", Month: "march", Weekday: "monday"})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, result.ID)
	assert.Equal(t, 2, result.Dataset.Len(), "march 6 and march 13 are mondays")
	assert.Equal(t, "March", result.Report.Time.Month)
	assert.Equal(t, "Monday", result.Report.Time.Weekday)
	assert.InDelta(t, 200, result.Report.Duration.Total, 1e-9)

	require.Len(t, reportPublisher.reports, 1)
	published := reportPublisher.reports[0]
	assert.Equal(t, result.ID.String(), published.GetSessionID())
	assert.Equal(t, 2, published.TotalTrips)
	assert.Equal(t, result.Report, published.Report)

	require.NoError(t, runner.Close())
	assert.True(t, reportPublisher.closed)
}

func TestRunEachSessionReloads(t *testing.T) {
	loader := newLoader()
	runner := New(loader, nil)

	first, err := runner.Run(context.Background(), filter.Criteria{City: "chicago", Month: "all", Weekday: "all"})
	require.NoError(t, err)
	second, err := runner.Run(context.Background(), filter.Criteria{City: "chicago", Month: "all", Weekday: "all"})
	require.NoError(t, err)

	assert.Equal(t, 2, loader.calls)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestRunNoMatches(t *testing.T) {
	runner := New(newLoader(), &fakePublisher{})

	result, err := runner.Run(context.Background(), filter.Criteria{City: "chicago", Month: "december", Weekday: "all"})
	require.NoError(t, err)
	assert.True(t, result.Dataset.IsEmpty())
	assert.True(t, result.Report.Time.NoData)
	assert.True(t, result.Report.Station.NoData)
	assert.True(t, result.Report.Duration.NoData)
	assert.True(t, result.Report.User.NoData)

	_, ok := result.Pager().Next()
	assert.False(t, ok)
}

func TestRunUnknownCity(t *testing.T) {
	reportPublisher := &fakePublisher{}
	runner := New(newLoader(), reportPublisher)

	result, err := runner.Run(context.Background(), filter.Criteria{City: "montreal", Month: "all", Weekday: "all"})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, catalog.ErrSourceNotFound)
	assert.Empty(t, reportPublisher.reports)
}

func TestRunPublishErrorDoesNotFailSession(t *testing.T) {
	reportPublisher := &fakePublisher{err: errors.New("broker down")}
	runner := New(newLoader(), reportPublisher)

	result, err := runner.Run(context.Background(), filter.Criteria{City: "chicago", Month: "all", Weekday: "all"})
	require.NoError(t, err)
	assert.Equal(t, 12, result.Dataset.Len())
}

func TestResultPagerStartsOverEachTime(t *testing.T) {
	runner := New(newLoader(), nil, paginator.WithPageSize(5), paginator.WithLegacyWindow(true))

	result, err := runner.Run(context.Background(), filter.Criteria{City: "chicago", Month: "all", Weekday: "all"})
	require.NoError(t, err)

	pager := result.Pager()
	first, ok := pager.Next()
	require.True(t, ok)
	assert.Equal(t, 6, len(first.Records))
	_, ok = pager.Next()
	require.True(t, ok)

	restarted, ok := result.Pager().Next()
	require.True(t, ok)
	assert.Equal(t, 0, restarted.Start)
}
