package trips

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"
)

// ErrNoHeader is wrapped in a LoadError when the source has no header row
var ErrNoHeader = errors.New("missing header row")

const utf8BOM = "\ufeff"

type loadOptions struct {
	comma rune
}

// Option configures Load
type Option func(*loadOptions)

// WithComma sets the field delimiter (default ',').
func WithComma(r rune) Option {
	return func(o *loadOptions) {
		if r != 0 {
			o.comma = r
		}
	}
}

// LoadFile opens path and loads it with Load. Open and parse failures are
// returned as *LoadError carrying the path.
func LoadFile(path string, opts ...Option) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()
	records, err := Load(f, opts...)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, err
	}
	return records, nil
}

// Load reads a delimited table with a header row and returns one Record per
// data row in row order. Header names are used verbatim (a leading UTF-8 BOM
// is dropped). Short rows leave the trailing fields empty; values past the
// last header are ignored. Blank lines are skipped. Stray quotes are kept
// as literal characters.
func Load(r io.Reader, opts ...Option) ([]Record, error) {
	o := loadOptions{comma: ','}
	for _, opt := range opts {
		opt(&o)
	}
	csvr := csv.NewReader(r)
	csvr.Comma = o.comma
	csvr.FieldsPerRecord = -1
	// free-text columns may hold a bare quote, e.g. 32" TV
	csvr.LazyQuotes = true

	head, err := csvr.Read()
	if err == io.EOF {
		return nil, &LoadError{Err: ErrNoHeader}
	}
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	if len(head) > 0 {
		head[0] = strings.TrimPrefix(head[0], utf8BOM)
	}

	records := []Record{}
	for {
		row, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &LoadError{Err: err}
		}
		records = append(records, newRecord(head, row))
	}
	return records, nil
}

func newRecord(head, row []string) Record {
	var rec Record
	for i, h := range head {
		val := ""
		if i < len(row) {
			val = row[i]
		}
		if p := rec.slot(h); p != nil {
			*p = val
			continue
		}
		if rec.Extra == nil {
			rec.Extra = make(map[string]string)
		}
		rec.Extra[h] = val
	}
	return rec
}
