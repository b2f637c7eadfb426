package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/polyarith/intpoly/poly"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add a b",
	Short: "Print the sum of two polynomials.",
	Args:  cobra.ExactArgs(2),
	Run:   runBinop(poly.Poly.Add),
}

// subCmd represents the sub command
var subCmd = &cobra.Command{
	Use:   "sub a b",
	Short: "Print the difference of two polynomials.",
	Args:  cobra.ExactArgs(2),
	Run:   runBinop(poly.Poly.Sub),
}

// mulCmd represents the mul command
var mulCmd = &cobra.Command{
	Use:   "mul a b",
	Short: "Print the product of two polynomials.",
	Args:  cobra.ExactArgs(2),
	Run:   runBinop(poly.Poly.Mul),
}

// runBinop builds a command body combining two polynomial files with op.
func runBinop(op func(poly.Poly, poly.Poly) poly.Poly) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		a, err := readPoly(args[0])
		if err != nil {
			log.Fatal(err)
		}
		b, err := readPoly(args[1])
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(op(a, b))
	}
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(subCmd)
	rootCmd.AddCommand(mulCmd)
}
