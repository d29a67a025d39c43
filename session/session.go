package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/sessionreport"
	"bikeshare/domain/dataset"
	"bikeshare/filter"
	"bikeshare/paginator"
	"bikeshare/publisher"
	"bikeshare/stats"
)

// DatasetLoader returns the full dataset of a city
type DatasetLoader interface {
	Load(city string) (*dataset.Dataset, error)
}

// Runner executes analysis sessions: load, filter, aggregate and publish
type Runner struct {
	loader       DatasetLoader
	publisher    publisher.ReportPublisher
	pagerOptions []paginator.Option
}

func New(loader DatasetLoader, reportPublisher publisher.ReportPublisher, pagerOptions ...paginator.Option) *Runner {
	if reportPublisher == nil {
		reportPublisher = publisher.NewNoop()
	}

	return &Runner{
		loader:       loader,
		publisher:    reportPublisher,
		pagerOptions: pagerOptions,
	}
}

// Result is the outcome of one analysis session
// + ID: identifier of the session, used in logs and published reports
// + Criteria: filters applied
// + Dataset: trips that passed the filters
// + Report: statistics of Dataset
// + Elapsed: time spent loading, filtering and aggregating
type Result struct {
	ID           uuid.UUID
	Criteria     filter.Criteria
	Dataset      *dataset.Dataset
	Report       stats.Report
	Elapsed      time.Duration
	pagerOptions []paginator.Option
}

// Pager returns a paginator positioned on the first page of the filtered trips
func (r *Result) Pager() *paginator.Paginator {
	return paginator.New(r.Dataset, r.pagerOptions...)
}

func getLogMessage(sessionID uuid.UUID, criteria filter.Criteria, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[session: %s][city: %s][status: ERROR] %s: %s", sessionID, criteria.City, message, err.Error())
	}
	return fmt.Sprintf("[session: %s][city: %s][status: OK] %s", sessionID, criteria.City, message)
}

// Run executes an analysis session for criteria. Only a load error fails the session; a report that
// cannot be published is logged
func (r *Runner) Run(ctx context.Context, criteria filter.Criteria) (*Result, error) {
	sessionID := uuid.New()
	start := time.Now()

	ds, err := r.loader.Load(criteria.City)
	if err != nil {
		log.Error(getLogMessage(sessionID, criteria, "error loading dataset", err))
		return nil, fmt.Errorf("error loading %s: %w", criteria.City, err)
	}

	filtered := filter.Apply(ds, criteria)
	log.Info(getLogMessage(sessionID, criteria, fmt.Sprintf("%v of %v trips match month %s and weekday %s", filtered.Len(), ds.Len(), criteria.Month, criteria.Weekday), nil))

	report := stats.Aggregate(filtered)
	elapsed := time.Since(start)

	sessionReport := sessionreport.NewSessionReport(sessionID.String(), criteria, filtered.Len(), report)
	if err := r.publisher.Publish(ctx, sessionReport); err != nil {
		log.Error(getLogMessage(sessionID, criteria, "error publishing report", err))
	}

	return &Result{
		ID:           sessionID,
		Criteria:     criteria,
		Dataset:      filtered,
		Report:       report,
		Elapsed:      elapsed,
		pagerOptions: r.pagerOptions,
	}, nil
}

// Close releases the publisher
func (r *Runner) Close() error {
	return r.publisher.Close()
}
