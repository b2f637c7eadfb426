package main

import "github.com/polyarith/intpoly/internal/cmd"

func main() {
	cmd.Execute()
}
