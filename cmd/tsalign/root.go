package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tsalign",
	Short: "Optimal-cost template-switch-aware sequence alignment",
	Long: `tsalign computes an optimal-cost alignment between a reference and a
query sequence, optionally routing through one or more template switches,
using a generic A* search engine over an affine-gap cost model.`,
}
