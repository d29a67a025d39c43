package sessionreport

import (
	"bikeshare/domain/entities"
	"bikeshare/filter"
	"bikeshare/stats"
)

const (
	reportType = "report"
	stage      = "explorer"
)

// SessionReport contains the result of an analysis session
// + Metadata: metadata added to the structure
// + Criteria: filters applied to the city data
// + TotalTrips: amount of trips that passed the filters
// + Report: statistics of the filtered trips
type SessionReport struct {
	Metadata   entities.Metadata `json:"metadata"`
	Criteria   filter.Criteria   `json:"criteria"`
	TotalTrips int               `json:"total_trips"`
	Report     stats.Report      `json:"report"`
}

func NewSessionReport(sessionID string, criteria filter.Criteria, totalTrips int, report stats.Report) *SessionReport {
	return &SessionReport{
		Metadata:   entities.NewMetadata(sessionID, criteria.City, reportType, stage),
		Criteria:   criteria,
		TotalTrips: totalTrips,
		Report:     report,
	}
}

func (sr *SessionReport) GetMetadata() entities.Metadata {
	return sr.Metadata
}

func (sr *SessionReport) GetSessionID() string {
	return sr.Metadata.GetSessionID()
}
