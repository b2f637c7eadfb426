// Package cmd implements the polycalc command line interface.
package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "polycalc",
	Short: "Manipulate integer polynomials in the paired text format.",
	Long: `polycalc reads polynomials as whitespace-separated integer pairs
(coefficient exponent) terminated by the pair "0 0", and prints results in
human-readable form. Polynomial arguments name files, with "-" for stdin.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// Execute runs the root command, exiting with a non-zero status on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}

// getFlag extracts a boolean flag, halting on lookup failure.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		log.Fatal(err)
	}
	return r
}
