package trips

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// DurationSentinel is the key of an unparsable duration, larger than any real one
const DurationSentinel = math.MaxInt

// maxDurationPart bounds each duration token so h*60+m stays below DurationSentinel
const maxDurationPart = math.MaxInt / 128

// ParseFare parses an integer fare such as "450".
func ParseFare(s string) (int, bool) {
	return parseInt(s)
}

// ParseSeats parses an integer seat count.
func ParseSeats(s string) (int, bool) {
	return parseInt(s)
}

// ParseRating parses a decimal rating such as "4.2". NaN and infinities fail.
func ParseRating(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseClock parses a 12-hour wall-clock time ("9:05 AM", "12:30 pm") into
// minutes since midnight.
func ParseClock(s string) (int, bool) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return 0, false
	}
	hs, ms, ok := strings.Cut(parts[0], ":")
	if !ok {
		return 0, false
	}
	h, ok := smallUint(hs)
	if !ok || h < 1 || h > 12 {
		return 0, false
	}
	m, ok := smallUint(ms)
	if !ok || m > 59 {
		return 0, false
	}
	switch strings.ToUpper(parts[1]) {
	case "AM":
		if h == 12 {
			h = 0
		}
	case "PM":
		if h != 12 {
			h += 12
		}
	default:
		return 0, false
	}
	return h*60 + m, true
}

// ClockKey is ParseClock with 12:00 AM (0) for unparsable input.
func ClockKey(s string) int {
	v, _ := ParseClock(s)
	return v
}

// ParseDuration parses "<H>h <M>m" into total minutes. Only the first two
// whitespace-separated tokens are read; the unit letters are optional.
// Values too large to represent in minutes fail.
func ParseDuration(s string) (int, bool) {
	parts := strings.Fields(s)
	if len(parts) < 2 {
		return 0, false
	}
	h, err := strconv.Atoi(strings.ReplaceAll(parts[0], "h", ""))
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(strings.ReplaceAll(parts[1], "m", ""))
	if err != nil {
		return 0, false
	}
	if h > maxDurationPart || h < -maxDurationPart || m > maxDurationPart || m < -maxDurationPart {
		return 0, false
	}
	return h*60 + m, true
}

// DurationKey is ParseDuration with DurationSentinel for unparsable input.
func DurationKey(s string) int {
	if v, ok := ParseDuration(s); ok {
		return v
	}
	return DurationSentinel
}

// IsYes reports whether a flag column reads "yes" in any case.
func IsYes(s string) bool {
	return strings.EqualFold(s, "yes")
}

// Weekday returns the English day name of t, or "" for the zero time.
func Weekday(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Weekday().String()
}

func parseInt(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return v, true
}

// smallUint parses one or two ASCII digits
func smallUint(s string) (int, bool) {
	if len(s) == 0 || len(s) > 2 {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
