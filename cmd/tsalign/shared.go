package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sebschmi/tsalign-go/cost"
	"github.com/sebschmi/tsalign-go/costmodel"
	"github.com/sebschmi/tsalign-go/tsalign"
	"github.com/sebschmi/tsalign-go/tsconfig"
)

// configFileName is the fixed file name tsalign looks for inside
// --configuration-directory, per spec §6's config-file format.
const configFileName = "costs.cfg"

// readSequenceFile reads a raw (non-FASTA, per spec §1's Non-goals) sequence
// file, stripping whitespace, and validates it against alphabet.
func readSequenceFile(path string, alphabet costmodel.Alphabet) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tsalign: read %s: %w", path, err)
	}

	out := make([]byte, 0, len(raw))
	for _, b := range raw {
		switch b {
		case '\n', '\r', '\t', ' ':
			continue
		}
		out = append(out, b)
	}

	if _, err := tsalign.NewByteSequence(out, alphabet); err != nil {
		return nil, fmt.Errorf("tsalign: %s: %w", path, err)
	}

	return out, nil
}

// loadConfig reads and parses the cost configuration from
// <dir>/costs.cfg, per spec §6.
func loadConfig(dir string, alphabet costmodel.Alphabet) (*tsconfig.Config[int32], error) {
	f, err := os.Open(filepath.Join(dir, configFileName))
	if err != nil {
		return nil, fmt.Errorf("tsalign: open config: %w", err)
	}
	defer f.Close()

	cfg, err := tsconfig.Parse[int32](f, alphabet)
	if err != nil {
		return nil, fmt.Errorf("tsalign: parse config: %w", err)
	}

	return cfg, nil
}

// costLimitValue converts a --cost-limit flag (negative meaning "unset")
// into the (cost.Value, has) pair tsalign.Context.WithCostLimit expects.
func costLimitValue(flag int64) (cost.Value[int32], bool) {
	if flag < 0 {
		return cost.Value[int32]{}, false
	}

	return cost.FromUint[int32](uint64(flag)), true
}

func writeOutputFile(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)

		return err
	}

	return os.WriteFile(path, data, 0o644)
}
