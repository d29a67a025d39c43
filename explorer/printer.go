package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"bikeshare/domain/dataset"
	"bikeshare/paginator"
	"bikeshare/session"
	"bikeshare/stats"
)

const (
	noDataMessage = "No data available for the selected filters"
	rawTimeLayout = "2006-01-02 15:04:05"
)

func printSeparator(out io.Writer) {
	fmt.Fprintln(out, strings.Repeat("-", 40))
}

// printReport writes the four statistic groups of result
func printReport(out io.Writer, result *session.Result) {
	fmt.Fprintf(out, "Filters: %s, %v trips\n", result.Criteria.String(), result.Dataset.Len())
	printSeparator(out)

	printTimeStats(out, result.Report.Time)
	printStationStats(out, result.Report.Station)
	printDurationStats(out, result.Report.Duration)
	printUserStats(out, result.Report.User)

	fmt.Fprintf(out, "\nThis took %s.\n", result.Elapsed)
	printSeparator(out)
}

func printTimeStats(out io.Writer, timeStats stats.TimeStats) {
	fmt.Fprint(out, "\nCalculating The Most Frequent Times of Travel...\n\n")
	if timeStats.NoData {
		fmt.Fprintln(out, noDataMessage)
		return
	}

	fmt.Fprintf(out, "The most common month: %s\n", timeStats.Month)
	fmt.Fprintf(out, "The most common day of week: %s\n", timeStats.Weekday)
	fmt.Fprintf(out, "The most common start hour: %v\n", timeStats.Hour)
}

func printStationStats(out io.Writer, stationStats stats.StationStats) {
	fmt.Fprint(out, "\nCalculating The Most Popular Stations and Trip...\n\n")
	if stationStats.NoData {
		fmt.Fprintln(out, noDataMessage)
		return
	}

	fmt.Fprintf(out, "The most commonly used start station: %s (%v trips)\n", stationStats.StartStation, stationStats.StartStationCount)
	fmt.Fprintf(out, "The most commonly used end station: %s (%v trips)\n", stationStats.EndStation, stationStats.EndStationCount)
	fmt.Fprintf(out, "The most frequent combination of start station and end station trip: %s - %s (%v trips)\n",
		stationStats.PopularTrip.Start, stationStats.PopularTrip.End, stationStats.PopularTripCount)
	if stationStats.PopularTripDistanceKm != nil {
		fmt.Fprintf(out, "Distance between both stations: %.2f km\n", *stationStats.PopularTripDistanceKm)
	}
}

func printDurationStats(out io.Writer, durationStats stats.DurationStats) {
	fmt.Fprint(out, "\nCalculating Trip Duration...\n\n")
	if durationStats.NoData {
		fmt.Fprintln(out, noDataMessage)
		return
	}

	fmt.Fprintf(out, "Total travel time: %.2f seconds\n", durationStats.Total)
	fmt.Fprintf(out, "Mean travel time: %.2f seconds\n", durationStats.Mean)
}

func printUserStats(out io.Writer, userStats stats.UserStats) {
	fmt.Fprint(out, "\nCalculating User Stats...\n\n")
	if userStats.NoData {
		fmt.Fprintln(out, noDataMessage)
		return
	}

	fmt.Fprintln(out, "Counts of user types:")
	printEntries(out, userStats.UserTypes)

	if userStats.HasGender {
		fmt.Fprintln(out, "Counts of gender:")
		printEntries(out, userStats.Genders)
	}

	if !userStats.HasBirthYear {
		return
	}

	if userStats.BirthYear.NoData {
		fmt.Fprintln(out, "No birth year reported")
		return
	}
	fmt.Fprintf(out, "Earliest year of birth: %v\n", userStats.BirthYear.Earliest)
	fmt.Fprintf(out, "Most recent year of birth: %v\n", userStats.BirthYear.MostRecent)
	fmt.Fprintf(out, "Most common year of birth: %v\n", userStats.BirthYear.MostCommon)
}

func printEntries(out io.Writer, entries []stats.FrequencyEntry[string]) {
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, entry := range entries {
		fmt.Fprintf(writer, "  %s\t%v\n", entry.Value, entry.Count)
	}
	writer.Flush()
}

// printPage writes the header of page followed by one row per trip, showing only the columns ds has
func printPage(out io.Writer, ds *dataset.Dataset, page paginator.Page) {
	fmt.Fprintf(out, "Display items (%v - %v) page(%v / %v)\n", page.Start+1, page.End, page.Number+1, page.TotalPages)

	hasEndTime := ds.HasColumn(dataset.EndTime)
	hasGender := ds.HasColumn(dataset.Gender)
	hasBirthYear := ds.HasColumn(dataset.BirthYear)

	headers := []string{"#", "Start Time"}
	if hasEndTime {
		headers = append(headers, "End Time")
	}
	headers = append(headers, "Trip Duration", "Start Station", "End Station", "User Type")
	if hasGender {
		headers = append(headers, "Gender")
	}
	if hasBirthYear {
		headers = append(headers, "Birth Year")
	}

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, strings.Join(headers, "\t"))
	for i, record := range page.Records {
		row := []string{fmt.Sprint(page.Start + i + 1), record.StartTime.Format(rawTimeLayout)}
		if hasEndTime {
			endTime := ""
			if !record.EndTime.IsZero() {
				endTime = record.EndTime.Format(rawTimeLayout)
			}
			row = append(row, endTime)
		}
		row = append(row, fmt.Sprint(record.Duration), record.StartStation, record.EndStation, record.UserType)
		if hasGender {
			row = append(row, record.Gender)
		}
		if hasBirthYear {
			birthYear := ""
			if record.HasBirthYear() {
				birthYear = fmt.Sprint(record.BirthYear)
			}
			row = append(row, birthYear)
		}
		fmt.Fprintln(writer, strings.Join(row, "\t"))
	}
	writer.Flush()
}
