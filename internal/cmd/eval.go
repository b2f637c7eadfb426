package cmd

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// evalCmd represents the eval command
var evalCmd = &cobra.Command{
	Use:   "eval x [file]",
	Short: "Evaluate a polynomial at an integer point.",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		x, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			log.Fatalf("bad evaluation point %q: %v", args[0], err)
		}
		path := "-"
		if len(args) == 2 {
			path = args[1]
		}
		p, err := readPoly(path)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(p.Eval(x))
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
