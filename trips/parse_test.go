package trips

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"9:00 AM", 9 * 60, true},
		{"2:15 PM", 14*60 + 15, true},
		{"12:00 AM", 0, true},
		{"12:30 PM", 12*60 + 30, true},
		{"  07:05 pm ", 19*60 + 5, true},
		{"11:59 PM", 23*60 + 59, true},
		{"garbage", 0, false},
		{"13:00 PM", 0, false},
		{"0:30 AM", 0, false},
		{"9:60 AM", 0, false},
		{"9:00", 0, false},
		{"9:00PM", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseClock(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseClock(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestClockKey_Fallback(t *testing.T) {
	if ClockKey("garbage") != ClockKey("12:00 AM") {
		t.Error("unparsable timing should key as 12:00 AM")
	}
	if ClockKey("2:15 PM") <= ClockKey("9:00 AM") {
		t.Error("2:15 PM should key after 9:00 AM")
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"4h 30m", 270, true},
		{"0h 45m", 45, true},
		{"99h 59m", 99*60 + 59, true},
		{"  2h   5m ", 125, true},
		{"3 15", 195, true},
		{"N/A", 0, false},
		{"4h", 0, false},
		{"4h xm", 0, false},
		{"", 0, false},
		{"20000h 0m", 20000 * 60, true},
		{"9223372036854775807h 0m", 0, false},
		{"1h 9223372036854775807m", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDuration(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseDuration(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDurationKey_Sentinel(t *testing.T) {
	if got := DurationKey("N/A"); got != DurationSentinel {
		t.Errorf("DurationKey(N/A) = %d, want sentinel", got)
	}
	if DurationKey("N/A") <= DurationKey("99h 59m") {
		t.Error("sentinel should be larger than a real duration")
	}
	if DurationKey("N/A") <= DurationKey("20000h 0m") {
		t.Error("sentinel should be larger than a very long duration")
	}
	if DurationKey("9223372036854775807h 0m") != DurationSentinel {
		t.Error("an overflowing duration should key as the sentinel")
	}
}

func TestParseNumbers(t *testing.T) {
	if v, ok := ParseFare(" 450 "); !ok || v != 450 {
		t.Errorf("ParseFare = %d, %v", v, ok)
	}
	if _, ok := ParseFare("450.5"); ok {
		t.Error("decimal fare should not parse as integer")
	}
	if _, ok := ParseSeats("many"); ok {
		t.Error("ParseSeats(many) should fail")
	}
	if v, ok := ParseRating("3.0"); !ok || v != 3.0 {
		t.Errorf("ParseRating = %v, %v", v, ok)
	}
	for _, bad := range []string{"abc", "", "NaN", "inf"} {
		if _, ok := ParseRating(bad); ok {
			t.Errorf("ParseRating(%q) should fail", bad)
		}
	}
}

func TestIsYes(t *testing.T) {
	for in, want := range map[string]bool{"yes": true, "YES": true, "Yes": true, "no": false, "": false, "y": false} {
		if got := IsYes(in); got != want {
			t.Errorf("IsYes(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestWeekday(t *testing.T) {
	d := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	if got := Weekday(d); got != "Monday" {
		t.Errorf("Weekday(2024-03-04) = %q, want Monday", got)
	}
	if got := Weekday(time.Time{}); got != "" {
		t.Errorf("Weekday(zero) = %q, want empty", got)
	}
}
