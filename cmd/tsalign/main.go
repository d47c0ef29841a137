// Command tsalign is the CLI front end for the template-switch-aware
// aligner (spec §6's external interface), a cobra command tree in the
// shape of goalign's cmd package: one root command, one subcommand per
// operation, flags bound to package-level variables in each subcommand's
// init().
package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("tsalign: ")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
