package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/theoremus-urban-solutions/bussearch/trips"
)

// WarningMark is appended to flagged cells
const WarningMark = "⚠"

var tableHeader = []string{
	"Bus Number", "Operator", "Timing", "Fare (INR)",
	"Ratings", "Duration", "AC", "Sleeper",
	"Seats", "From", "To",
}

// Row returns the table cells of one record
func Row(r trips.Record) []string {
	a := Flags(r)
	rating, seats := r.Rating, r.Seats
	if a.LowRating {
		rating += " " + WarningMark
	}
	if a.LowSeats {
		seats += " " + WarningMark
	}
	return []string{
		r.BusNumber, r.Operator, r.Timing, r.Fare,
		rating, r.Duration, r.AC, r.Sleeper,
		seats, r.Departure, r.Destination,
	}
}

// WriteTable writes records as an aligned text table
func WriteTable(w io.Writer, records []trips.Record) error {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, tableHeader)
	for _, r := range records {
		rows = append(rows, Row(r))
	}

	widths := make([]int, len(tableHeader))
	for _, row := range rows {
		for i, cell := range row {
			if n := runewidth.StringWidth(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	var b strings.Builder
	for n, row := range rows {
		writeRow(&b, row, widths)
		if n == 0 {
			sep := make([]string, len(widths))
			for i, wd := range widths {
				sep[i] = strings.Repeat("-", wd)
			}
			writeRow(&b, sep, widths)
		}
	}
	if len(records) == 0 {
		b.WriteString("(no matching buses)\n")
	} else {
		fmt.Fprintf(&b, "(%d bus%s)\n", len(records), plural(len(records)))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeRow(b *strings.Builder, row []string, widths []int) {
	for i, cell := range row {
		if i > 0 {
			b.WriteString("  ")
		}
		if i == len(row)-1 {
			b.WriteString(cell)
			continue
		}
		b.WriteString(runewidth.FillRight(cell, widths[i]))
	}
	b.WriteString("\n")
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "es"
}
