package main

import (
	"fmt"

	"github.com/sebschmi/tsalign-go/anchor"
	"github.com/sebschmi/tsalign-go/costmodel"
	"github.com/sebschmi/tsalign-go/tsalign"
	"github.com/spf13/cobra"
)

var (
	chainReference             string
	chainQuery                 string
	chainConfigurationDir      string
	chainOutput                string
	chainK                     int
	chainMaxSuccessors         int
	chainOpenList              string
	chainUseEmbeddedRQRanges   bool
)

var chainAlignCmd = &cobra.Command{
	Use:   "chain-align",
	Short: "Align via k-mer anchoring and chaining (faster, approximate seeding; optimal gap-filling)",
	RunE:  runChainAlign,
}

func init() {
	rootCmd.AddCommand(chainAlignCmd)
	chainAlignCmd.Flags().StringVar(&chainReference, "reference", "", "path to the reference sequence file")
	chainAlignCmd.Flags().StringVar(&chainQuery, "query", "", "path to the query sequence file")
	chainAlignCmd.Flags().StringVar(&chainConfigurationDir, "configuration-directory", "", "directory containing "+configFileName)
	chainAlignCmd.Flags().StringVar(&chainOutput, "output", "-", "output TOML file path (- for stdout)")
	chainAlignCmd.Flags().IntVar(&chainK, "k", 16, "k-mer length used for anchor seeding")
	chainAlignCmd.Flags().IntVar(&chainMaxSuccessors, "max-chaining-successors", 0, "cap outgoing chain edges per anchor (0: unbounded)")
	chainAlignCmd.Flags().StringVar(&chainOpenList, "chaining-open-list", "binary-heap", "chain-A* open list: binary-heap or bucket-queue")
	chainAlignCmd.Flags().BoolVar(&chainUseEmbeddedRQRanges, "use-embedded-rq-ranges", false, "accepted for interface compatibility; has no effect on chain-align")
	_ = chainAlignCmd.MarkFlagRequired("reference")
	_ = chainAlignCmd.MarkFlagRequired("query")
	_ = chainAlignCmd.MarkFlagRequired("configuration-directory")
}

func runChainAlign(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(chainConfigurationDir, costmodel.DNA)
	if err != nil {
		return err
	}

	reference, err := readSequenceFile(chainReference, costmodel.DNA)
	if err != nil {
		return err
	}
	query, err := readSequenceFile(chainQuery, costmodel.DNA)
	if err != nil {
		return err
	}

	costs, bounds, err := buildCostsAndBounds(cfg, reference, query)
	if err != nil {
		return err
	}

	openList := anchor.OpenListBinaryHeap
	if chainOpenList == "bucket-queue" {
		openList = anchor.OpenListBucketQueue
	}
	opts := anchor.NewOptions(anchor.WithK(chainK), anchor.WithMaxChainingSuccessors(chainMaxSuccessors), anchor.WithChainingOpenList(openList))

	// --use-embedded-rq-ranges is a chain-align tuning flag from spec §6;
	// this implementation's anchor.BuildAnchorLists always computes all five
	// lists but anchor.Align only chains the primary list (see DESIGN.md),
	// so the flag is accepted for interface compatibility and otherwise has
	// no effect until anchor.Align grows TS-aware secondary chaining.
	_ = chainUseEmbeddedRQRanges

	result, err := anchor.Align[int32](reference, query, costs, bounds, tsalign.DefaultStrategies(), opts)
	if err != nil {
		return fmt.Errorf("tsalign: chain-align: %w", err)
	}

	doc, err := result.WriteTOML()
	if err != nil {
		return fmt.Errorf("tsalign: write result: %w", err)
	}

	return writeOutputFile(chainOutput, doc)
}
