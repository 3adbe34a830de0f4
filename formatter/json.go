package formatter

import (
	"encoding/json"

	"github.com/theoremus-urban-solutions/bussearch/trips"
)

// RecordView is a record with its advisory flags, as serialized to JSON
type RecordView struct {
	trips.Record
	Advisory
}

// Views pairs each record with its flags, preserving order
func Views(records []trips.Record) []RecordView {
	out := make([]RecordView, len(records))
	for i, r := range records {
		out[i] = RecordView{Record: r, Advisory: Flags(r)}
	}
	return out
}

// BuildJSON serializes a result set as a JSON array
func BuildJSON(records []trips.Record) ([]byte, error) {
	return json.MarshalIndent(Views(records), "", "  ")
}
