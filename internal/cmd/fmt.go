package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// fmtCmd represents the fmt command
var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Print a polynomial in human-readable form.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "-"
		if len(args) == 1 {
			path = args[0]
		}
		p, err := readPoly(path)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(p)
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}
