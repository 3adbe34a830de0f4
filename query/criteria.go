package query

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/theoremus-urban-solutions/bussearch/internal/logging"
	"github.com/theoremus-urban-solutions/bussearch/trips"
)

// AllOperators is the selection choice that disables the operator filter
const AllOperators = "All Operators"

// DateLayout is the serialized form of Criteria.Date
const DateLayout = "2006-01-02"

// SortMode selects the ordering of a ResultSet
type SortMode int

const (
	SortNone     SortMode = -1 // load order
	SortFare     SortMode = 0  // fare, lowest first
	SortTiming   SortMode = 1  // departure time, earliest first
	SortRating   SortMode = 2  // rating, highest first
	SortDuration SortMode = 3  // duration, shortest first
)

var sortNames = map[SortMode]string{
	SortNone:     "none",
	SortFare:     "fare",
	SortTiming:   "timing",
	SortRating:   "rating",
	SortDuration: "duration",
}

func (m SortMode) String() string {
	if n, ok := sortNames[m]; ok {
		return n
	}
	return "SortMode(" + strconv.Itoa(int(m)) + ")"
}

// ParseSortMode accepts a mode name ("fare", "timing", "rating", "duration",
// "none") or its ordinal ("0".."3").
func ParseSortMode(s string) (SortMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, n := range sortNames {
		if s == n {
			return m, nil
		}
	}
	if i, err := strconv.Atoi(s); err == nil && i >= int(SortFare) && i <= int(SortDuration) {
		return SortMode(i), nil
	}
	return SortNone, &CriteriaError{Field: "sort", Value: s, Msg: "must be one of fare, timing, rating, duration or 0-3"}
}

// Criteria is the parameter bundle of one query. The zero value matches
// every record and sorts by fare.
type Criteria struct {
	Source      string
	Destination string
	Operator    string    // empty or AllOperators disables the filter
	Date        time.Time // zero means no day-of-departure filter
	ACOnly      bool
	SleeperOnly bool
	MinRating   *float64
	MaxFare     *int
	Sort        SortMode
}

// Weekday is the day name the Days column must contain, or "".
func (c Criteria) Weekday() string {
	return trips.Weekday(c.Date)
}

// Swap exchanges source and destination and keeps everything else.
func Swap(c Criteria) Criteria {
	c.Source, c.Destination = c.Destination, c.Source
	return c
}

// CriteriaError reports a malformed front-end criteria value
type CriteriaError struct {
	Field string
	Value string
	Msg   string
}

func (e *CriteriaError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Msg)
}

// RawCriteria carries criteria as a front end collects them
type RawCriteria struct {
	Source      string
	Destination string
	Operator    string
	Date        string // YYYY-MM-DD
	ACOnly      bool
	SleeperOnly bool
	MinRating   string
	MaxFare     string
	Sort        string // name or ordinal; empty selects defaultSort
}

// ParseCriteria validates raw front-end values. Malformed min-rating,
// max-fare and sort values are errors. A date that does not parse leaves
// Date unset, so no weekday filter applies.
func ParseCriteria(raw RawCriteria, defaultSort SortMode) (Criteria, error) {
	c := Criteria{
		Source:      strings.TrimSpace(raw.Source),
		Destination: strings.TrimSpace(raw.Destination),
		Operator:    strings.TrimSpace(raw.Operator),
		ACOnly:      raw.ACOnly,
		SleeperOnly: raw.SleeperOnly,
		Sort:        defaultSort,
	}
	if d := strings.TrimSpace(raw.Date); d != "" {
		t, err := time.Parse(DateLayout, d)
		if err != nil {
			logging.Debug("ignoring unparsable date", "date", d)
		} else {
			c.Date = t
		}
	}
	if s := strings.TrimSpace(raw.MinRating); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Criteria{}, &CriteriaError{Field: "min-rating", Value: s, Msg: "must be a decimal number"}
		}
		c.MinRating = &v
	}
	if s := strings.TrimSpace(raw.MaxFare); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return Criteria{}, &CriteriaError{Field: "max-fare", Value: s, Msg: "must be an integer"}
		}
		c.MaxFare = &v
	}
	if s := strings.TrimSpace(raw.Sort); s != "" {
		m, err := ParseSortMode(s)
		if err != nil {
			return Criteria{}, err
		}
		c.Sort = m
	}
	return c, nil
}
