package query

import (
	"sort"

	"github.com/theoremus-urban-solutions/bussearch/trips"
)

// intKey orders parsed values before unparsed ones
type intKey struct {
	v  int
	ok bool
}

func (a intKey) less(b intKey) bool {
	if a.ok != b.ok {
		return a.ok
	}
	return a.v < b.v
}

type ratingKey struct {
	v  float64
	ok bool
}

// descending, unparsed last
func (a ratingKey) less(b ratingKey) bool {
	if a.ok != b.ok {
		return a.ok
	}
	return a.v > b.v
}

func fareKey(r trips.Record) intKey {
	v, ok := trips.ParseFare(r.Fare)
	return intKey{v, ok}
}

func timingKey(r trips.Record) int { return trips.ClockKey(r.Timing) }

func durationKey(r trips.Record) int { return trips.DurationKey(r.Duration) }

func rateKey(r trips.Record) ratingKey {
	v, ok := trips.ParseRating(r.Rating)
	return ratingKey{v, ok}
}

func intLess(a, b int) bool { return a < b }

// Sort returns a stably sorted copy of records. SortNone keeps input order.
func Sort(records []trips.Record, mode SortMode) []trips.Record {
	out := make([]trips.Record, len(records))
	copy(out, records)
	switch mode {
	case SortFare:
		sortStable(out, fareKey, intKey.less)
	case SortTiming:
		sortStable(out, timingKey, intLess)
	case SortRating:
		sortStable(out, rateKey, ratingKey.less)
	case SortDuration:
		sortStable(out, durationKey, intLess)
	}
	return out
}

// sortStable derives each key once and sorts records and keys together
func sortStable[K any](records []trips.Record, key func(trips.Record) K, less func(a, b K) bool) {
	keys := make([]K, len(records))
	for i, r := range records {
		keys[i] = key(r)
	}
	sort.Stable(keyedSlice[K]{records: records, keys: keys, less: less})
}

type keyedSlice[K any] struct {
	records []trips.Record
	keys    []K
	less    func(a, b K) bool
}

func (s keyedSlice[K]) Len() int           { return len(s.records) }
func (s keyedSlice[K]) Less(i, j int) bool { return s.less(s.keys[i], s.keys[j]) }
func (s keyedSlice[K]) Swap(i, j int) {
	s.records[i], s.records[j] = s.records[j], s.records[i]
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
}
