package main

import (
	"github.com/spf13/cobra"
	"github.com/theoremus-urban-solutions/bussearch/config"
	"github.com/theoremus-urban-solutions/bussearch/formatter"
	"github.com/theoremus-urban-solutions/bussearch/shell"
)

func newOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List selectable sources, destinations and operators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore()
			if err != nil {
				return err
			}
			return formatter.WriteOptions(cmd.OutOrStdout(), store.Records())
		},
	}
}

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive search session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore()
			if err != nil {
				return err
			}
			sh := shell.NewShell(store.Records(), cmd.OutOrStdout(), defaultSort(), config.Config.Output.Format)
			return sh.Run()
		},
	}
}
