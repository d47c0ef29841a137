package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sebschmi/tsalign-go/costmodel"
	"github.com/sebschmi/tsalign-go/lowerbound"
	"github.com/sebschmi/tsalign-go/tsconfig"
	"github.com/spf13/cobra"
)

var (
	precomputeConfigurationDir string
	precomputeCacheDir         string
	precomputeMaxN             int
)

var precomputeCmd = &cobra.Command{
	Use:   "precompute-lower-bounds",
	Short: "Precompute and cache the gap-affine lower-bound table for a cost configuration",
	RunE:  runPrecompute,
}

func init() {
	rootCmd.AddCommand(precomputeCmd)
	precomputeCmd.Flags().StringVar(&precomputeConfigurationDir, "configuration-directory", "", "directory containing "+configFileName)
	precomputeCmd.Flags().StringVar(&precomputeCacheDir, "cache-directory", "", "directory to write the cached table into")
	precomputeCmd.Flags().IntVar(&precomputeMaxN, "max-n", 256, "largest gap length the table covers")
	_ = precomputeCmd.MarkFlagRequired("configuration-directory")
	_ = precomputeCmd.MarkFlagRequired("cache-directory")
}

func runPrecompute(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(precomputeConfigurationDir, costmodel.DNA)
	if err != nil {
		return err
	}

	gapAffine, err := lowerbound.NewGapAffineLowerBounds[int32](precomputeMaxN, cfg.Primary.MinSubstitution(), cfg.Primary.MinGapOpen(), cfg.Primary.MinGapExtend(), false)
	if err != nil {
		return fmt.Errorf("tsalign: lower bounds: %w", err)
	}

	var serialized bytes.Buffer
	if err := tsconfig.Write(&serialized, cfg, costmodel.DNA); err != nil {
		return fmt.Errorf("tsalign: serialize config: %w", err)
	}
	checksum := lowerbound.ChecksumCostConfig(serialized.Bytes())
	cacheName := hex.EncodeToString(checksum[:]) + ".cache"

	if err := os.MkdirAll(precomputeCacheDir, 0o755); err != nil {
		return fmt.Errorf("tsalign: create cache directory: %w", err)
	}

	f, err := os.Create(filepath.Join(precomputeCacheDir, cacheName))
	if err != nil {
		return fmt.Errorf("tsalign: create cache file: %w", err)
	}
	defer f.Close()

	if err := lowerbound.WriteTable[int32](f, gapAffine.Table()); err != nil {
		return fmt.Errorf("tsalign: write cache: %w", err)
	}

	return nil
}
