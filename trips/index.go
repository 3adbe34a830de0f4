package trips

import (
	"sort"

	"github.com/theoremus-urban-solutions/bussearch/config"
	"github.com/theoremus-urban-solutions/bussearch/internal/logging"
)

// Store holds the records loaded at startup. It is read-only after
// construction and safe for concurrent use.
type Store struct {
	records []Record
}

// NewStore wraps already loaded records
func NewStore(records []Record) *Store {
	return &Store{records: records}
}

// NewStoreFromConfig loads the table named by the data config
func NewStoreFromConfig(cfg config.DataConfig) (*Store, error) {
	records, err := LoadFile(cfg.Path, WithComma(cfg.Comma()))
	if err != nil {
		return nil, err
	}
	logging.Info("trip table loaded", "path", cfg.Path, "records", len(records))
	return NewStore(records), nil
}

// Records returns the loaded records in load order. Callers must not modify the slice.
func (s *Store) Records() []Record { return s.records }

func (s *Store) Len() int { return len(s.records) }

func (s *Store) Sources() []string { return DistinctSources(s.records) }

func (s *Store) Destinations() []string { return DistinctDestinations(s.records) }

func (s *Store) Operators() []string { return DistinctOperators(s.records) }

// DistinctSources returns the sorted set of non-empty departure places
func DistinctSources(records []Record) []string {
	return distinct(records, func(r Record) string { return r.Departure })
}

// DistinctDestinations returns the sorted set of non-empty destination places
func DistinctDestinations(records []Record) []string {
	return distinct(records, func(r Record) string { return r.Destination })
}

// DistinctOperators returns the sorted set of non-empty operator names.
// The "All Operators" choice is added by consumers, not here.
func DistinctOperators(records []Record) []string {
	return distinct(records, func(r Record) string { return r.Operator })
}

func distinct(records []Record, field func(Record) string) []string {
	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0)
	for _, r := range records {
		v := field(r)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
