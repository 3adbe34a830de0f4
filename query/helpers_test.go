package query

import (
	"testing"

	"github.com/theoremus-urban-solutions/bussearch/trips"
)

func busNumbers(records []trips.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.BusNumber
	}
	return out
}

func fares(records []trips.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Fare
	}
	return out
}

func assertOrder(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }
