package shell

import (
	"fmt"
	"strings"

	"github.com/theoremus-urban-solutions/bussearch/query"
)

type Command struct {
	Name string
	Args []string
	Line string
}

// Parse splits a shell line into a dot-command and its arguments. Double
// quotes group words into one argument: .search from="Bengaluru Central"
func Parse(line string) (*Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, fmt.Errorf("empty command")
	}
	parts, err := split(line)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(parts[0], ".") {
		return nil, fmt.Errorf("commands must start with '.'")
	}
	return &Command{Name: strings.ToLower(parts[0]), Args: parts[1:], Line: line}, nil
}

func split(line string) ([]string, error) {
	var (
		parts   []string
		cur     strings.Builder
		inQuote bool
		started bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			started = true
		case !inQuote && (r == ' ' || r == '\t'):
			if started {
				parts = append(parts, cur.String())
				cur.Reset()
				started = false
			}
		default:
			cur.WriteRune(r)
			started = true
		}
	}
	if inQuote {
		return nil, fmt.Errorf("unterminated quote")
	}
	if started {
		parts = append(parts, cur.String())
	}
	return parts, nil
}

// ParseSearchArgs turns .search arguments into raw criteria.
// Keys: from, to, operator, date, min-rating, max-fare, sort; flags: ac, sleeper.
func ParseSearchArgs(args []string) (query.RawCriteria, error) {
	var raw query.RawCriteria
	for _, arg := range args {
		key, value, hasValue := strings.Cut(arg, "=")
		key = strings.ToLower(key)
		if !hasValue {
			switch key {
			case "ac":
				raw.ACOnly = true
			case "sleeper":
				raw.SleeperOnly = true
			default:
				return raw, fmt.Errorf("unknown search flag %q", arg)
			}
			continue
		}
		switch key {
		case "from", "source":
			raw.Source = value
		case "to", "destination":
			raw.Destination = value
		case "operator", "op":
			raw.Operator = value
		case "date":
			raw.Date = value
		case "min-rating", "rating":
			raw.MinRating = value
		case "max-fare", "fare":
			raw.MaxFare = value
		case "sort":
			raw.Sort = value
		default:
			return raw, fmt.Errorf("unknown search key %q", key)
		}
	}
	return raw, nil
}

// ValidateArgs checks the argument count of a command
func ValidateArgs(cmd *Command, count int) error {
	if len(cmd.Args) < count {
		return fmt.Errorf("expected %d argument(s), got %d", count, len(cmd.Args))
	}
	return nil
}
