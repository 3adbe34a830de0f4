package shell

import (
	"sync"

	"github.com/theoremus-urban-solutions/bussearch/query"
	"github.com/theoremus-urban-solutions/bussearch/trips"
)

// Session holds the state of one interactive user: the last criteria and
// the active result set that reductions and lookups work on. Each
// operation replaces the active set as a whole.
type Session struct {
	mu       sync.Mutex
	records  []trips.Record
	criteria query.Criteria
	active   query.ResultSet
}

// NewSession starts with an empty active set and empty criteria sorted by defaultSort
func NewSession(records []trips.Record, defaultSort query.SortMode) *Session {
	return &Session{
		records:  records,
		criteria: query.Criteria{Sort: defaultSort},
		active:   query.ResultSet{},
	}
}

// Search runs c against all records and makes the result active.
func (s *Session) Search(c query.Criteria) query.ResultSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria = c
	s.active = query.Run(s.records, c)
	return s.active
}

// Swap exchanges source and destination of the last criteria and searches again.
func (s *Session) Swap() query.ResultSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria = query.Swap(s.criteria)
	s.active = query.Run(s.records, s.criteria)
	return s.active
}

// Cheapest narrows the active set to its cheapest record. On an empty active
// set it returns query.ErrEmptyResult and the active set stays empty.
func (s *Session) Cheapest() (query.ResultSet, error) {
	return s.narrow(query.Cheapest)
}

// Fastest narrows the active set to its fastest record; see Cheapest.
func (s *Session) Fastest() (query.ResultSet, error) {
	return s.narrow(query.Fastest)
}

func (s *Session) narrow(reduce func(query.ResultSet) (query.ResultSet, error)) (query.ResultSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rs, err := reduce(s.active)
	s.active = rs
	return rs, err
}

// Show looks a bus number up in the active set only.
func (s *Session) Show(busNumber string) (trips.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return query.FindByKey(s.active, busNumber)
}

func (s *Session) Active() query.ResultSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *Session) Criteria() query.Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

func (s *Session) Records() []trips.Record { return s.records }
