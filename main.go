/*
Ucalc CLI Calculator
--------------------

A complex-number expression calculator: infix and RPN parsing to a
shared postfix token stream, evaluation over a complex domain, user
variables and functions, unit conversion, and persisted history and
settings.
*/

package main

import (
	"fmt"
	"os"

	"ucalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
