package formatter

import (
	"github.com/theoremus-urban-solutions/bussearch/query"
	"github.com/theoremus-urban-solutions/bussearch/trips"
)

// Thresholds below which a record is flagged
const (
	LowRatingThreshold = 3.0
	LowSeatsThreshold  = 5
)

// Advisory holds the presentation hints of one record
type Advisory struct {
	LowRating bool `json:"lowRating"`
	LowSeats  bool `json:"lowSeats"`
}

// Flags computes the advisory hints. Unparsable values are never flagged.
func Flags(r trips.Record) Advisory {
	var a Advisory
	if v, ok := trips.ParseRating(r.Rating); ok && v < LowRatingThreshold {
		a.LowRating = true
	}
	if v, ok := trips.ParseSeats(r.Seats); ok && v < LowSeatsThreshold {
		a.LowSeats = true
	}
	return a
}

// OperatorOptions returns the operator choices offered to a user: the
// "All Operators" sentinel followed by the distinct operator names.
func OperatorOptions(records []trips.Record) []string {
	ops := trips.DistinctOperators(records)
	return append([]string{query.AllOperators}, ops...)
}
