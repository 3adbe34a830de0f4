package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/theoremus-urban-solutions/bussearch/trips"
)

// Detail returns the full detail card of a record
func Detail(r trips.Record) string {
	lines := []string{
		"Bus Number: " + r.BusNumber,
		"Operator: " + r.Operator,
		"Route: " + r.Departure + " → " + r.Destination,
		"Timing: " + r.Timing,
		"Duration: " + r.Duration,
		"Fare: ₹" + r.Fare,
		"Seats: " + r.Seats,
		"AC: " + r.AC,
		"Sleeper: " + r.Sleeper,
		"Ratings: " + r.Rating,
		"Days: " + r.Days,
		"Contact: " + r.Contact,
		"Stops: " + r.Stops,
		"Features: " + r.Features,
		"Remarks: " + r.Remarks,
	}
	return strings.Join(lines, "\n") + "\n"
}

// WriteDetail writes the detail card of a record
func WriteDetail(w io.Writer, r trips.Record) error {
	_, err := io.WriteString(w, Detail(r))
	return err
}

// WriteOptions lists the selectable sources, destinations and operators
func WriteOptions(w io.Writer, records []trips.Record) error {
	sections := []struct {
		title  string
		values []string
	}{
		{"Sources", trips.DistinctSources(records)},
		{"Destinations", trips.DistinctDestinations(records)},
		{"Operators", OperatorOptions(records)},
	}
	for _, s := range sections {
		if _, err := fmt.Fprintf(w, "%s:\n", s.title); err != nil {
			return err
		}
		for _, v := range s.values {
			if _, err := fmt.Fprintf(w, "  %s\n", v); err != nil {
				return err
			}
		}
	}
	return nil
}
