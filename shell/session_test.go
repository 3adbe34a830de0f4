package shell

import (
	"errors"
	"testing"

	"github.com/theoremus-urban-solutions/bussearch/query"
	"github.com/theoremus-urban-solutions/bussearch/trips"
)

var records = []trips.Record{
	{BusNumber: "A1", Departure: "Bengaluru", Destination: "Mysuru", Fare: "700", Duration: "3h 0m", AC: "yes", Rating: "4.0", Seats: "20"},
	{BusNumber: "A2", Departure: "Bengaluru", Destination: "Mysuru", Fare: "150", Duration: "4h 10m", AC: "no", Rating: "2.0", Seats: "2"},
	{BusNumber: "A3", Departure: "Bengaluru", Destination: "Mysuru", Fare: "400", Duration: "2h 45m", AC: "yes", Rating: "3.5", Seats: "12"},
	{BusNumber: "B1", Departure: "Mysuru", Destination: "Bengaluru", Fare: "350", Duration: "3h 5m", AC: "yes", Rating: "4.4", Seats: "9"},
}

func ids(rs query.ResultSet) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.BusNumber
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSession_SearchAndNarrow(t *testing.T) {
	s := NewSession(records, query.SortFare)
	rs := s.Search(query.Criteria{Source: "bengaluru", Sort: query.SortFare})
	if got := ids(rs); !equal(got, []string{"A2", "A3", "A1"}) {
		t.Fatalf("Search() = %v", got)
	}

	cheapest, err := s.Cheapest()
	if err != nil {
		t.Fatalf("Cheapest() error: %v", err)
	}
	if got := ids(cheapest); !equal(got, []string{"A2"}) {
		t.Errorf("Cheapest() = %v", got)
	}
	if got := ids(s.Active()); !equal(got, []string{"A2"}) {
		t.Errorf("active set after Cheapest = %v, want [A2]", got)
	}
	if _, ok := s.Show("A3"); ok {
		t.Error("A3 was narrowed away and must not be found")
	}
	if rec, ok := s.Show("A2"); !ok || rec.Fare != "150" {
		t.Errorf("Show(A2) = %+v, %v", rec, ok)
	}
}

func TestSession_Fastest(t *testing.T) {
	s := NewSession(records, query.SortFare)
	s.Search(query.Criteria{Destination: "Mysuru"})
	rs, err := s.Fastest()
	if err != nil {
		t.Fatalf("Fastest() error: %v", err)
	}
	if got := ids(rs); !equal(got, []string{"A3"}) {
		t.Errorf("Fastest() = %v", got)
	}
}

func TestSession_EmptyNarrowIsNoOp(t *testing.T) {
	s := NewSession(records, query.SortFare)
	s.Search(query.Criteria{Source: "Hassan"})

	rs, err := s.Cheapest()
	if !errors.Is(err, query.ErrEmptyResult) {
		t.Errorf("expected ErrEmptyResult, got %v", err)
	}
	if len(rs) != 0 || len(s.Active()) != 0 {
		t.Errorf("active set should stay empty, got %v", s.Active())
	}
	if _, err := s.Fastest(); !errors.Is(err, query.ErrEmptyResult) {
		t.Errorf("expected ErrEmptyResult from Fastest, got %v", err)
	}
}

func TestSession_SwapReruns(t *testing.T) {
	s := NewSession(records, query.SortFare)
	s.Search(query.Criteria{Source: "Bengaluru", Destination: "Mysuru", ACOnly: true})

	rs := s.Swap()
	if got := ids(rs); !equal(got, []string{"B1"}) {
		t.Errorf("Swap() = %v, want [B1]", got)
	}
	c := s.Criteria()
	if c.Source != "Mysuru" || c.Destination != "Bengaluru" || !c.ACOnly {
		t.Errorf("criteria after swap = %+v", c)
	}
}

func TestSession_ShowBeforeSearch(t *testing.T) {
	s := NewSession(records, query.SortFare)
	if _, ok := s.Show("A1"); ok {
		t.Error("nothing is displayed before the first search")
	}
}

func TestSession_SwapBeforeSearchUsesDefaultSort(t *testing.T) {
	s := NewSession(records, query.SortDuration)
	if got := s.Criteria().Sort; got != query.SortDuration {
		t.Fatalf("initial sort = %v, want duration", got)
	}

	rs := s.Swap()
	if got := ids(rs); !equal(got, []string{"A3", "A1", "B1", "A2"}) {
		t.Errorf("Swap() = %v, want duration order", got)
	}
}
