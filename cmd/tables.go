package cmd

import (
	"github.com/spf13/cobra"

	"slrc/pkg/compiler"
)

var TablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the grammar and the SLR(1) ACTION/GOTO table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return compiler.DumpTables(cmd.OutOrStdout())
	},
}
