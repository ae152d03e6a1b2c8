// SPDX-License-Identifier: MIT

// Command axiomcalc is the command-line front-end of the axiomic engine:
// prime analytics, the axiom projector, semantic arithmetic and symbolic
// calculus, one subcommand each, plus an interactive pad.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		os.Exit(1)
	}
}
