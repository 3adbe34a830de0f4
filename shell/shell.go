package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/theoremus-urban-solutions/bussearch/formatter"
	"github.com/theoremus-urban-solutions/bussearch/internal/logging"
	"github.com/theoremus-urban-solutions/bussearch/query"
	"github.com/theoremus-urban-solutions/bussearch/trips"
)

const prompt = "bus> "

var commandNames = []string{
	".search", ".swap", ".cheapest", ".fastest", ".show", ".options", ".help", ".exit", ".quit",
}

const helpText = `Commands:
  .search [from=X] [to=Y] [operator=Z] [date=YYYY-MM-DD] [ac] [sleeper]
          [min-rating=N] [max-fare=N] [sort=fare|timing|rating|duration]
  .swap              swap from/to and search again
  .cheapest          keep only the cheapest bus of the current results
  .fastest           keep only the fastest bus of the current results
  .show <bus-number> full details of a bus in the current results
  .options           list sources, destinations and operators
  .help              this text
  .exit              leave the shell
`

// Shell is an interactive front end over a Session
type Shell struct {
	session     *Session
	out         io.Writer
	defaultSort query.SortMode
	format      string
}

// NewShell creates a shell writing to out. format is "table" or "json".
func NewShell(records []trips.Record, out io.Writer, defaultSort query.SortMode, format string) *Shell {
	if out == nil {
		out = os.Stdout
	}
	return &Shell{
		session:     NewSession(records, defaultSort),
		out:         out,
		defaultSort: defaultSort,
		format:      format,
	}
}

func (sh *Shell) Session() *Session { return sh.session }

// Run reads commands until .exit, EOF or Ctrl-C.
func (sh *Shell) Run() error {
	line := liner.NewLiner()
	defer func() { _ = line.Close() }()
	line.SetCtrlCAborts(true)
	line.SetCompleter(func(input string) []string {
		var out []string
		for _, c := range commandNames {
			if strings.HasPrefix(c, strings.ToLower(input)) {
				out = append(out, c)
			}
		}
		return out
	})

	fmt.Fprintf(sh.out, "%d buses loaded. Type '.help' for commands.\n", len(sh.session.Records()))
	for {
		input, err := line.Prompt(prompt)
		if err == liner.ErrPromptAborted || err == io.EOF {
			fmt.Fprintln(sh.out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)
		if sh.ExecuteLine(input) {
			return nil
		}
	}
}

// ExecuteLine runs one shell line and reports whether the shell should exit.
func (sh *Shell) ExecuteLine(input string) bool {
	cmd, err := Parse(input)
	if err != nil {
		fmt.Fprintf(sh.out, "ERROR: %v\n", err)
		return false
	}
	exit, err := sh.Execute(cmd)
	if err != nil {
		fmt.Fprintf(sh.out, "ERROR: %v\n", err)
	}
	return exit
}

// Execute runs a parsed command
func (sh *Shell) Execute(cmd *Command) (bool, error) {
	switch cmd.Name {
	case ".search":
		raw, err := ParseSearchArgs(cmd.Args)
		if err != nil {
			return false, err
		}
		c, err := query.ParseCriteria(raw, sh.defaultSort)
		if err != nil {
			return false, err
		}
		return false, sh.render(sh.session.Search(c))
	case ".swap":
		return false, sh.render(sh.session.Swap())
	case ".cheapest", ".fastest":
		reduce := sh.session.Cheapest
		if cmd.Name == ".fastest" {
			reduce = sh.session.Fastest
		}
		rs, err := reduce()
		if errors.Is(err, query.ErrEmptyResult) {
			fmt.Fprintln(sh.out, "No results to narrow; run .search first.")
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return false, sh.render(rs)
	case ".show":
		if err := ValidateArgs(cmd, 1); err != nil {
			return false, err
		}
		key := strings.Join(cmd.Args, " ")
		rec, ok := sh.session.Show(key)
		if !ok {
			fmt.Fprintf(sh.out, "Bus %s is not in the current results.\n", key)
			return false, nil
		}
		return false, formatter.WriteDetail(sh.out, rec)
	case ".options":
		return false, formatter.WriteOptions(sh.out, sh.session.Records())
	case ".help":
		_, err := io.WriteString(sh.out, helpText)
		return false, err
	case ".exit", ".quit":
		return true, nil
	}
	return false, fmt.Errorf("unknown command %s (try .help)", cmd.Name)
}

func (sh *Shell) render(rs query.ResultSet) error {
	logging.Debug("rendering result set", "records", len(rs), "format", sh.format)
	if sh.format == "json" {
		data, err := formatter.BuildJSON(rs)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(sh.out, string(data))
		return err
	}
	return formatter.WriteTable(sh.out, rs)
}
