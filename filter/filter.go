package filter

import (
	"bikeshare/domain/dataset"
	"bikeshare/domain/entities/trip"
)

// Apply returns a new dataset with the trips of ds that match the month and the weekday of criteria.
// Order is preserved and ds is not modified. "all" disables the corresponding filter
func Apply(ds *dataset.Dataset, criteria Criteria) *dataset.Dataset {
	month := criteria.MonthOrdinal()
	weekday, filterWeekday := criteria.WeekdayValue()

	if month == 0 && !filterWeekday {
		return ds.Derive(ds.Records())
	}

	filtered := make([]trip.TripRecord, 0, ds.Len())
	for idx := 0; idx < ds.Len(); idx++ {
		record := ds.At(idx)
		if month != 0 && int(record.Month) != month {
			continue
		}

		if filterWeekday && record.Weekday != weekday {
			continue
		}

		filtered = append(filtered, record)
	}

	return ds.Derive(filtered)
}
