package query

import (
	"errors"

	"github.com/theoremus-urban-solutions/bussearch/internal/logging"
	"github.com/theoremus-urban-solutions/bussearch/trips"
)

// ErrEmptyResult is returned by the reductions when there is nothing to
// reduce. The accompanying ResultSet is empty and callers keep showing it.
var ErrEmptyResult = errors.New("empty result set")

// ResultSet is the ordered output of one query or reduction
type ResultSet []trips.Record

// Run filters records by c and sorts the matches by c.Sort.
func Run(records []trips.Record, c Criteria) ResultSet {
	matched := Filter(records, c)
	rs := ResultSet(Sort(matched, c.Sort))
	logging.Debug("query executed",
		"source", c.Source,
		"destination", c.Destination,
		"weekday", c.Weekday(),
		"sort", c.Sort.String(),
		"scanned", len(records),
		"matched", len(rs))
	return rs
}

// Cheapest narrows rs to its lowest-fare record. The first record wins a
// tie and unparsable fares lose to any parsable one.
func Cheapest(rs ResultSet) (ResultSet, error) {
	return reduce(rs, fareKey, intKey.less)
}

// Fastest narrows rs to its shortest-duration record. The first record wins
// a tie and unparsable durations rank as DurationSentinel.
func Fastest(rs ResultSet) (ResultSet, error) {
	return reduce(rs, durationKey, intLess)
}

func reduce[K any](rs ResultSet, key func(trips.Record) K, less func(a, b K) bool) (ResultSet, error) {
	if len(rs) == 0 {
		return ResultSet{}, ErrEmptyResult
	}
	best := 0
	bestKey := key(rs[0])
	for i := 1; i < len(rs); i++ {
		if k := key(rs[i]); less(k, bestKey) {
			best, bestKey = i, k
		}
	}
	return ResultSet{rs[best]}, nil
}

// FindByKey returns the first record of rs whose bus number equals key
// exactly. Records outside rs are never considered.
func FindByKey(rs ResultSet, key string) (trips.Record, bool) {
	for _, r := range rs {
		if r.BusNumber == key {
			return r, true
		}
	}
	return trips.Record{}, false
}
