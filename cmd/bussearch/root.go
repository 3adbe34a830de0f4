package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/theoremus-urban-solutions/bussearch/config"
	"github.com/theoremus-urban-solutions/bussearch/formatter"
	"github.com/theoremus-urban-solutions/bussearch/internal/logging"
	"github.com/theoremus-urban-solutions/bussearch/query"
	"github.com/theoremus-urban-solutions/bussearch/trips"
)

var (
	configArg string
	dataArg   string
	formatArg string
	debugFlag bool
)

var rootCmd = &cobra.Command{
	Use:           "bussearch",
	Short:         "Filter, sort and inspect bus trips from a CSV table",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := ""
		if debugFlag {
			level = "debug"
		}
		if err := config.LoadAppConfig(configArg,
			config.WithDataPath(dataArg),
			config.WithOutputFormat(formatArg),
			config.WithLogLevel(level),
		); err != nil {
			return err
		}
		logging.InitLogging(logging.Config{Level: config.Config.Log.Level, Format: config.Config.Log.Format})
		return nil
	},
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configArg, "config", "c", "", "Config file (default bussearch.yml)")
	rootCmd.PersistentFlags().StringVarP(&dataArg, "data", "d", "", "Trip table path or http(s) URL (overrides data.path)")
	rootCmd.PersistentFlags().StringVarP(&formatArg, "format", "o", "", "Output format: table|json")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "v", false, "Enable debug logs")

	rootCmd.AddCommand(newSearchCmd(), newShowCmd(), newOptionsCmd(), newShellCmd())
}

// loadStore loads the configured trip table. A load error aborts the command.
func loadStore() (*trips.Store, error) {
	return newFetcher().loadStore(config.Config.Data)
}

func defaultSort() query.SortMode {
	m, err := query.ParseSortMode(config.Config.Query.DefaultSort)
	if err != nil {
		return query.SortFare
	}
	return m
}

func render(w io.Writer, rs query.ResultSet) error {
	if config.Config.Output.Format == "json" {
		data, err := formatter.BuildJSON(rs)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	return formatter.WriteTable(w, rs)
}
