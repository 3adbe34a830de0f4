package query

import (
	"strings"

	"github.com/theoremus-urban-solutions/bussearch/trips"
)

// predicate is Criteria prepared for a single pass over the records
type predicate struct {
	source      string
	destination string
	operator    string
	weekday     string
	acOnly      bool
	sleeperOnly bool
	minRating   *float64
	maxFare     *int
}

func newPredicate(c Criteria) predicate {
	op := strings.TrimSpace(c.Operator)
	if strings.EqualFold(op, AllOperators) {
		op = ""
	}
	return predicate{
		source:      strings.TrimSpace(c.Source),
		destination: strings.TrimSpace(c.Destination),
		operator:    op,
		weekday:     c.Weekday(),
		acOnly:      c.ACOnly,
		sleeperOnly: c.SleeperOnly,
		minRating:   c.MinRating,
		maxFare:     c.MaxFare,
	}
}

// match is the conjunction of all active constraints; inactive ones pass.
func (p predicate) match(r trips.Record) bool {
	if p.source != "" && !strings.EqualFold(r.Departure, p.source) {
		return false
	}
	if p.destination != "" && !strings.EqualFold(r.Destination, p.destination) {
		return false
	}
	if p.operator != "" && !strings.EqualFold(r.Operator, p.operator) {
		return false
	}
	if p.weekday != "" && !strings.Contains(r.Days, p.weekday) {
		return false
	}
	if p.acOnly && !trips.IsYes(r.AC) {
		return false
	}
	if p.sleeperOnly && !trips.IsYes(r.Sleeper) {
		return false
	}
	if p.minRating != nil {
		v, ok := trips.ParseRating(r.Rating)
		if !ok || v < *p.minRating {
			return false
		}
	}
	if p.maxFare != nil {
		v, ok := trips.ParseFare(r.Fare)
		if !ok || v > *p.maxFare {
			return false
		}
	}
	return true
}

// Filter returns the records matching every active constraint of c, in
// input order. The input slice is not modified.
func Filter(records []trips.Record, c Criteria) []trips.Record {
	p := newPredicate(c)
	out := make([]trips.Record, 0, len(records))
	for _, r := range records {
		if p.match(r) {
			out = append(out, r)
		}
	}
	return out
}
