package query

import (
	"errors"
	"testing"
	"time"
)

func TestSwap(t *testing.T) {
	in := Criteria{
		Source:      "A",
		Destination: "B",
		Operator:    "VRL",
		Date:        time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		ACOnly:      true,
		MinRating:   floatPtr(3.5),
		MaxFare:     intPtr(900),
		Sort:        SortDuration,
	}
	out := Swap(in)
	if out.Source != "B" || out.Destination != "A" {
		t.Errorf("Swap() = %q -> %q, want B -> A", out.Source, out.Destination)
	}
	if out.Operator != in.Operator || !out.Date.Equal(in.Date) || out.ACOnly != in.ACOnly ||
		out.SleeperOnly != in.SleeperOnly || out.MinRating != in.MinRating ||
		out.MaxFare != in.MaxFare || out.Sort != in.Sort {
		t.Errorf("Swap() changed other fields: %+v", out)
	}
	if in.Source != "A" {
		t.Error("Swap() must not modify its argument")
	}
}

func TestParseSortMode(t *testing.T) {
	tests := []struct {
		in      string
		want    SortMode
		wantErr bool
	}{
		{"fare", SortFare, false},
		{"0", SortFare, false},
		{"Timing", SortTiming, false},
		{"1", SortTiming, false},
		{"rating", SortRating, false},
		{"2", SortRating, false},
		{" duration ", SortDuration, false},
		{"3", SortDuration, false},
		{"none", SortNone, false},
		{"4", SortNone, true},
		{"-1", SortNone, true},
		{"price", SortNone, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSortMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSortMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseSortMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSortMode_String(t *testing.T) {
	if SortRating.String() != "rating" {
		t.Errorf("SortRating.String() = %q", SortRating.String())
	}
	if SortMode(9).String() != "SortMode(9)" {
		t.Errorf("unknown mode String() = %q", SortMode(9).String())
	}
}

func TestParseCriteria(t *testing.T) {
	c, err := ParseCriteria(RawCriteria{
		Source:      " Bengaluru ",
		Destination: "Mysuru",
		Date:        "2024-03-04",
		ACOnly:      true,
		MinRating:   "3.5",
		MaxFare:     "800",
		Sort:        "2",
	}, SortFare)
	if err != nil {
		t.Fatalf("ParseCriteria() error: %v", err)
	}
	if c.Source != "Bengaluru" || c.Destination != "Mysuru" || !c.ACOnly {
		t.Errorf("unexpected criteria: %+v", c)
	}
	if c.Weekday() != "Monday" {
		t.Errorf("Weekday() = %q, want Monday", c.Weekday())
	}
	if c.MinRating == nil || *c.MinRating != 3.5 {
		t.Errorf("MinRating = %v", c.MinRating)
	}
	if c.MaxFare == nil || *c.MaxFare != 800 {
		t.Errorf("MaxFare = %v", c.MaxFare)
	}
	if c.Sort != SortRating {
		t.Errorf("Sort = %v, want rating", c.Sort)
	}
}

func TestParseCriteria_Defaults(t *testing.T) {
	c, err := ParseCriteria(RawCriteria{Date: "04/03/2024"}, SortTiming)
	if err != nil {
		t.Fatalf("ParseCriteria() error: %v", err)
	}
	if c.Weekday() != "" {
		t.Errorf("unparsable date should disable the weekday filter, got %q", c.Weekday())
	}
	if c.MinRating != nil || c.MaxFare != nil {
		t.Errorf("empty thresholds should stay unset: %+v", c)
	}
	if c.Sort != SortTiming {
		t.Errorf("Sort = %v, want default timing", c.Sort)
	}
}

func TestParseCriteria_Errors(t *testing.T) {
	tests := []struct {
		name  string
		raw   RawCriteria
		field string
	}{
		{"rating", RawCriteria{MinRating: "good"}, "min-rating"},
		{"fare", RawCriteria{MaxFare: "12.5"}, "max-fare"},
		{"sort", RawCriteria{Sort: "cheapest"}, "sort"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCriteria(tt.raw, SortFare)
			var ce *CriteriaError
			if !errors.As(err, &ce) {
				t.Fatalf("expected *CriteriaError, got %v", err)
			}
			if ce.Field != tt.field {
				t.Errorf("Field = %q, want %q", ce.Field, tt.field)
			}
		})
	}
}
