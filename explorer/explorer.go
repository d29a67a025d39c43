package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"bikeshare/filter"
	"bikeshare/session"
	"bikeshare/utils"
)

const yes = "yes"

// Explorer is the interactive loop: it asks for the filters, shows the statistics of the session
// and lets the user browse the filtered trips
type Explorer struct {
	scanner *bufio.Scanner
	out     io.Writer
	runner  *session.Runner
	cities  []string
}

func NewExplorer(in io.Reader, out io.Writer, runner *session.Runner, cities []string) *Explorer {
	return &Explorer{
		scanner: bufio.NewScanner(in),
		out:     out,
		runner:  runner,
		cities:  cities,
	}
}

// Run executes analysis sessions until the user does not want to restart or the input ends
func (e *Explorer) Run(ctx context.Context) error {
	fmt.Fprintln(e.out, "Hello! Let's explore some US bikeshare data!")

	for {
		criteria, err := e.getFilters()
		if err != nil {
			return ignoreEOF(err)
		}

		result, err := e.runner.Run(ctx, criteria)
		if err != nil {
			fmt.Fprintf(e.out, "Could not analyze %s: %s\n", criteria.City, err.Error())
		} else {
			printReport(e.out, result)
			if err := e.showRawData(result); err != nil {
				return ignoreEOF(err)
			}
		}

		restart, err := e.readLine("\nWould you like to restart? Enter yes or no.\n")
		if err != nil {
			return ignoreEOF(err)
		}

		if restart != yes {
			return nil
		}
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		log.Debug("[explorer] input finished")
		return nil
	}
	return err
}

// getFilters asks for the city, month and day to analyze until valid values are given
func (e *Explorer) getFilters() (filter.Criteria, error) {
	city, err := e.ask(
		fmt.Sprintf("Write the name of the city to analyze (%s): ", strings.Join(e.cities, ", ")),
		"Valid city :)",
		e.cities,
	)
	if err != nil {
		return filter.Criteria{}, err
	}

	month, err := e.ask(
		"Write the name of the month to analyze (all, january, february, ... , december): ",
		"Valid month :)",
		append([]string{filter.All}, filter.Months...),
	)
	if err != nil {
		return filter.Criteria{}, err
	}

	weekday, err := e.ask(
		"Write the name of the day to analyze (all, monday, tuesday, ... sunday): ",
		"Valid day :)",
		append([]string{filter.All}, filter.Weekdays...),
	)
	if err != nil {
		return filter.Criteria{}, err
	}

	printSeparator(e.out)
	return filter.NewCriteria(city, month, weekday, e.cities...)
}

// ask repeats question until the answer is one of validValues
func (e *Explorer) ask(question string, validMessage string, validValues []string) (string, error) {
	for {
		answer, err := e.readLine(question)
		if err != nil {
			return "", err
		}

		if utils.ContainsString(answer, validValues) {
			fmt.Fprintln(e.out, validMessage)
			return answer, nil
		}
		fmt.Fprintln(e.out, "Please enter a valid value")
	}
}

// readLine prints question and returns the normalized answer. io.EOF is returned when the input ends
func (e *Explorer) readLine(question string) (string, error) {
	fmt.Fprint(e.out, question)
	if !e.scanner.Scan() {
		if err := e.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return utils.Normalize(e.scanner.Text()), nil
}

// showRawData prints one page of trips each time the user answers yes
func (e *Explorer) showRawData(result *session.Result) error {
	pager := result.Pager()
	for {
		answer, err := e.readLine("Would you like to see raw data (yes/no): ")
		if err != nil {
			return err
		}

		if answer != yes {
			break
		}

		page, ok := pager.Next()
		if !ok {
			fmt.Fprintln(e.out, "There is no more data to show")
			break
		}
		printPage(e.out, result.Dataset, page)
	}

	printSeparator(e.out)
	return nil
}
