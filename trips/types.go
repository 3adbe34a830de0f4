package trips

import "fmt"

// Header names of the trip table
const (
	ColBusNumber   = "Bus Number"
	ColOperator    = "Bus Name"
	ColDeparture   = "Departure"
	ColDestination = "Destination"
	ColTiming      = "Timing"
	ColFare        = "Fare (INR)"
	ColRating      = "Ratings"
	ColDuration    = "Duration"
	ColAC          = "AC"
	ColSleeper     = "Sleeper"
	ColSeats       = "Seats"
	ColDays        = "Day of Departure"
	ColContact     = "Contact Details"
	ColStops       = "In Between Stops"
	ColFeatures    = "Features"
	ColRemarks     = "Remarks"
)

// Columns lists the known headers in table order
var Columns = []string{
	ColBusNumber, ColOperator, ColDeparture, ColDestination, ColTiming,
	ColFare, ColRating, ColDuration, ColAC, ColSleeper, ColSeats, ColDays,
	ColContact, ColStops, ColFeatures, ColRemarks,
}

// Record is one loaded trip row. Values are kept exactly as read.
type Record struct {
	BusNumber   string `json:"busNumber"`
	Operator    string `json:"operator"`
	Departure   string `json:"departure"`
	Destination string `json:"destination"`
	Timing      string `json:"timing"`
	Fare        string `json:"fare"`
	Rating      string `json:"rating"`
	Duration    string `json:"duration"`
	AC          string `json:"ac"`
	Sleeper     string `json:"sleeper"`
	Seats       string `json:"seats"`
	Days        string `json:"days"`
	Contact     string `json:"contact"`
	Stops       string `json:"stops"`
	Features    string `json:"features"`
	Remarks     string `json:"remarks"`
	// Extra holds columns outside the known header set, keyed by header name
	Extra map[string]string `json:"extra,omitempty"`
}

// Field returns the value stored under a header name, or "" when absent.
func (r Record) Field(header string) string {
	if p := r.slot(header); p != nil {
		return *p
	}
	return r.Extra[header]
}

// slot maps a known header to its struct field
func (r *Record) slot(header string) *string {
	switch header {
	case ColBusNumber:
		return &r.BusNumber
	case ColOperator:
		return &r.Operator
	case ColDeparture:
		return &r.Departure
	case ColDestination:
		return &r.Destination
	case ColTiming:
		return &r.Timing
	case ColFare:
		return &r.Fare
	case ColRating:
		return &r.Rating
	case ColDuration:
		return &r.Duration
	case ColAC:
		return &r.AC
	case ColSleeper:
		return &r.Sleeper
	case ColSeats:
		return &r.Seats
	case ColDays:
		return &r.Days
	case ColContact:
		return &r.Contact
	case ColStops:
		return &r.Stops
	case ColFeatures:
		return &r.Features
	case ColRemarks:
		return &r.Remarks
	}
	return nil
}

// LoadError reports a trip table that could not be opened or parsed.
type LoadError struct {
	Path string // empty for reader sources
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("load trips from %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("load trips: %v", e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
