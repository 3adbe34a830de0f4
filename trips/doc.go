/*
Package trips provides bus trip record loading and the derived option sets.

This package is data-source agnostic: it reads any io.Reader holding a
delimited table with a header row and builds one Record per data row. It
does not validate a schema. Unknown columns are kept in Record.Extra and
missing columns read as empty strings.

# Basic Usage

	records, err := trips.LoadFile("karnataka_bus_10cities.csv")
	if err != nil {
	    // *trips.LoadError: missing file, no header row or a read failure
	    log.Fatal(err)
	}

	store := trips.NewStore(records)
	sources := store.Sources()      // sorted, non-empty departure places
	operators := store.Operators()  // sorted, non-empty operator names

# Typed values

Records hold raw strings. Typed values are derived on demand through the
parsers in this package (ParseFare, ParseRating, ParseClock,
ParseDuration, IsYes, ...). Each parser reports failure with a boolean and
never panics; the Key variants (ClockKey, DurationKey) substitute the
documented sentinel instead:

  - an unparsable timing compares as 12:00 AM (minute 0)
  - an unparsable duration compares as DurationSentinel minutes

Records are never mutated after load.
*/
package trips
