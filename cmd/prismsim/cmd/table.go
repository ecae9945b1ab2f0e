package cmd

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/prismhw/prismsim/chroma"
)

var tableCmd = &cobra.Command{
	Use:   "table <file>",
	Short: "Parse and print a microprogram table listing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := chroma.ParseTableFile(args[0])
		if err != nil {
			return err
		}
		for i, e := range table {
			cmd.Printf("%d: select 0x%04x  data 0x%08x\n", i, e.Select, e.Data)
		}
		if verbose {
			spew.Fdump(cmd.OutOrStdout(), table)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
}
