// SPDX-License-Identifier: MIT

// Command semicon inspects material data banks, renormalized parameters
// and symbolic k·p Hamiltonians from the command line.
//
// Usage:
//
//	semicon banks                       # list embedded data banks
//	semicon banks winkler               # print one bank as a table
//	semicon params GaAs --bank winkler  # bare parameters for all bands
//	semicon hamiltonian --bands gamma_6c --components foreman,zeeman
//	semicon spin 1.5                    # spin matrices
//
// Every flag may also be set through a SEMICON_<FLAG> environment variable
// or a config file given with --config.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
