package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "prismsim",
	Short: "PRISM peripheral protocol simulator",
	Long: `Cycle-accurate simulator for the PRISM shift/condition peripheral:
loads a microprogram table over the register interface, releases the
peripheral and runs serial transfers against emulated external devices.

Examples:
  prismsim run                                 # builtin gpio24 scenario
  prismsim run --table prog.tbl --tx 0xf05077  # custom microprogram
  prismsim run --mode serial --data a55a       # byte-serial link session
  prismsim table prog.tbl                      # parse and print a listing`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
