package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/theoremus-urban-solutions/bussearch/formatter"
	"github.com/theoremus-urban-solutions/bussearch/query"
)

// criteriaFlags binds the query criteria to command flags
type criteriaFlags struct {
	raw query.RawCriteria
}

func (f *criteriaFlags) bind(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.raw.Source, "from", "f", "", "Departure place (exact, case-insensitive)")
	fl.StringVarP(&f.raw.Destination, "to", "t", "", "Destination place (exact, case-insensitive)")
	fl.StringVar(&f.raw.Operator, "operator", "", "Operator name, or \"All Operators\"")
	fl.StringVar(&f.raw.Date, "date", "", "Travel date YYYY-MM-DD; keeps buses running on that weekday")
	fl.BoolVar(&f.raw.ACOnly, "ac", false, "AC buses only")
	fl.BoolVar(&f.raw.SleeperOnly, "sleeper", false, "Sleeper buses only")
	fl.StringVar(&f.raw.MinRating, "min-rating", "", "Minimum rating, e.g. 3.5")
	fl.StringVar(&f.raw.MaxFare, "max-fare", "", "Maximum fare in INR")
	fl.StringVarP(&f.raw.Sort, "sort", "s", "", "Sort: fare|timing|rating|duration or 0-3 (default from config)")
}

// run parses the criteria and queries the configured store
func (f *criteriaFlags) run() (query.ResultSet, error) {
	c, err := query.ParseCriteria(f.raw, defaultSort())
	if err != nil {
		return nil, err
	}
	store, err := loadStore()
	if err != nil {
		return nil, err
	}
	return query.Run(store.Records(), c), nil
}

func newSearchCmd() *cobra.Command {
	var (
		cf       criteriaFlags
		cheapest bool
		fastest  bool
		show     string
	)
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Filter and sort buses",
		Example: `  bussearch search --from Bengaluru --to Mysuru --ac --sort duration
  bussearch search --date 2024-03-04 --max-fare 600 --cheapest`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := cf.run()
			if err != nil {
				return err
			}
			switch {
			case cheapest:
				rs, err = query.Cheapest(rs)
			case fastest:
				rs, err = query.Fastest(rs)
			}
			if errors.Is(err, query.ErrEmptyResult) {
				fmt.Fprintln(cmd.ErrOrStderr(), "No matching buses to narrow.")
			} else if err != nil {
				return err
			}
			if show != "" {
				return showIn(cmd, rs, show)
			}
			return render(cmd.OutOrStdout(), rs)
		},
	}
	cf.bind(cmd)
	cmd.Flags().BoolVar(&cheapest, "cheapest", false, "Keep only the cheapest matching bus")
	cmd.Flags().BoolVar(&fastest, "fastest", false, "Keep only the fastest matching bus")
	cmd.Flags().StringVar(&show, "show", "", "Print the detail card of this bus from the result")
	cmd.MarkFlagsMutuallyExclusive("cheapest", "fastest")
	return cmd
}

func newShowCmd() *cobra.Command {
	var cf criteriaFlags
	cmd := &cobra.Command{
		Use:   "show <bus-number>",
		Short: "Show full details of a bus among the search results",
		Long: `Show looks the bus number up in the result of the search described by
the criteria flags, so a bus excluded by those criteria is not found.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := cf.run()
			if err != nil {
				return err
			}
			return showIn(cmd, rs, args[0])
		},
	}
	cf.bind(cmd)
	return cmd
}

func showIn(cmd *cobra.Command, rs query.ResultSet, busNumber string) error {
	rec, ok := query.FindByKey(rs, busNumber)
	if !ok {
		return fmt.Errorf("bus %s is not in the search results", busNumber)
	}
	return formatter.WriteDetail(cmd.OutOrStdout(), rec)
}
