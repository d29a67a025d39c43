package sessionreport

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bikeshare/filter"
	"bikeshare/stats"
)

func TestNewSessionReport(t *testing.T) {
	criteria := filter.Criteria{City: "washington", Month: "all", Weekday: "friday"}

	sessionReport := NewSessionReport("abc", criteria, 7, stats.Report{})

	metadata := sessionReport.GetMetadata()
	assert.Equal(t, "abc", sessionReport.GetSessionID())
	assert.Equal(t, "washington", metadata.GetCity())
	assert.Equal(t, "report", metadata.GetType())
	assert.Equal(t, "explorer", metadata.GetStage())
	assert.Equal(t, criteria, sessionReport.Criteria)
	assert.Equal(t, 7, sessionReport.TotalTrips)
}
