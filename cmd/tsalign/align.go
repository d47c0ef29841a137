package main

import (
	"fmt"
	"time"

	"github.com/sebschmi/tsalign-go/alignresult"
	"github.com/sebschmi/tsalign-go/cost"
	"github.com/sebschmi/tsalign-go/costmodel"
	"github.com/sebschmi/tsalign-go/lowerbound"
	"github.com/sebschmi/tsalign-go/tsalign"
	"github.com/sebschmi/tsalign-go/tsconfig"
	"github.com/spf13/cobra"
)

var (
	alignReference            string
	alignQuery                string
	alignConfigurationDir     string
	alignOutput               string
	alignCostLimit            int64
	alignMemoryLimit          int64
	alignForceLabelCorrecting bool
)

var alignCmd = &cobra.Command{
	Use:   "align",
	Short: "Align a reference and a query sequence",
	RunE:  runAlign,
}

func init() {
	rootCmd.AddCommand(alignCmd)
	alignCmd.Flags().StringVar(&alignReference, "reference", "", "path to the reference sequence file")
	alignCmd.Flags().StringVar(&alignQuery, "query", "", "path to the query sequence file")
	alignCmd.Flags().StringVar(&alignConfigurationDir, "configuration-directory", "", "directory containing "+configFileName)
	alignCmd.Flags().StringVar(&alignOutput, "output", "-", "output TOML file path (- for stdout)")
	alignCmd.Flags().Int64Var(&alignCostLimit, "cost-limit", -1, "abort once cost exceeds this value (-1: unlimited)")
	alignCmd.Flags().Int64Var(&alignMemoryLimit, "memory-limit", -1, "abort once open+closed list size exceeds this value (-1: unlimited)")
	alignCmd.Flags().BoolVar(&alignForceLabelCorrecting, "force-label-correcting", false, "force label-correcting closed-list semantics")
	_ = alignCmd.MarkFlagRequired("reference")
	_ = alignCmd.MarkFlagRequired("query")
	_ = alignCmd.MarkFlagRequired("configuration-directory")
}

func runAlign(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(alignConfigurationDir, costmodel.DNA)
	if err != nil {
		return err
	}

	reference, err := readSequenceFile(alignReference, costmodel.DNA)
	if err != nil {
		return err
	}
	query, err := readSequenceFile(alignQuery, costmodel.DNA)
	if err != nil {
		return err
	}

	costs, bounds, err := buildCostsAndBounds(cfg, reference, query)
	if err != nil {
		return err
	}

	rng := tsalign.Range{R0: 0, R1: len(reference), Q0: 0, Q1: len(query)}
	ctx, err := tsalign.New[int32](reference, query, rng, costs, bounds, tsalign.DefaultStrategies())
	if err != nil {
		return fmt.Errorf("tsalign: %w", err)
	}
	if limit, ok := costLimitValue(alignCostLimit); ok {
		ctx = ctx.WithCostLimit(limit)
	}
	if alignMemoryLimit >= 0 {
		ctx = ctx.WithMemoryLimit(int(alignMemoryLimit))
	}
	if alignForceLabelCorrecting {
		ctx = ctx.WithLabelCorrecting()
	}

	start := time.Now()
	outcome, err := tsalign.Align[int32](ctx)
	if err != nil {
		return fmt.Errorf("tsalign: align: %w", err)
	}

	result := alignresult.Build[int32](outcome, reference, query, rng, time.Since(start))
	doc, err := result.WriteTOML()
	if err != nil {
		return fmt.Errorf("tsalign: write result: %w", err)
	}

	return writeOutputFile(alignOutput, doc)
}

// buildCostsAndBounds assembles the gap-affine and TS-jump lower-bound
// tables for cfg over the two sequences, per spec §4.4, and passes every
// field tsconfig parsed -- all four per-corner base costs, flank limits and flank tables,
// and the four step-wise cost functions -- through into tsalign.Costs
// rather than collapsing them to a single representative value.
func buildCostsAndBounds(cfg *tsconfig.Config[int32], reference, query []byte) (tsalign.Costs[int32], tsalign.LowerBounds[int32], error) {
	maxN := len(reference)
	if len(query) > maxN {
		maxN = len(query)
	}

	gapAffine, err := lowerbound.NewGapAffineLowerBounds[int32](maxN, cfg.Primary.MinSubstitution(), cfg.Primary.MinGapOpen(), cfg.Primary.MinGapExtend(), false)
	if err != nil {
		return tsalign.Costs[int32]{}, tsalign.LowerBounds[int32]{}, fmt.Errorf("tsalign: lower bounds: %w", err)
	}

	varGap := make([]cost.Value[int32], maxN+1)
	for g := 0; g <= maxN; g++ {
		varGap[g] = gapAffine.VariableGap2LowerBound(g)
	}
	tsJump := lowerbound.NewTsJumpLowerBounds(varGap, varGap, cfg.BaseCost.RR)

	costs := tsalign.Costs[int32]{
		Primary:    cfg.Primary,
		Secondary:  cfg.Secondary,
		LeftFlank:  cfg.LeftFlank,
		RightFlank: cfg.RightFlank,

		LeftFlankLength:    cfg.Limits.LeftFlankLength,
		RightFlankLength:   cfg.Limits.RightFlankLength,
		MinSecondaryLength: cfg.Limits.MinLength,

		BaseCost: tsalign.BaseCost[int32]{
			RR: cfg.BaseCost.RR,
			RQ: cfg.BaseCost.RQ,
			QR: cfg.BaseCost.QR,
			QQ: cfg.BaseCost.QQ,
		},

		Offset:           cfg.Offset,
		Length:           cfg.Length,
		LengthDifference: cfg.LengthDifference,
		AntiPrimaryGap:   cfg.AntiPrimaryGap,
	}
	bounds := tsalign.LowerBounds[int32]{GapAffine: gapAffine, TsJump: tsJump}

	return costs, bounds, nil
}
