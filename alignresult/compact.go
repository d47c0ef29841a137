// Package alignresult builds the caller-facing AlignmentResult described in
// spec §4.7 and §6: run-length compaction of the raw backtrace, performance
// statistics, and TOML serialization.
package alignresult

import "github.com/sebschmi/tsalign-go/tsalign"

// CompactedStep is one run-length-encoded entry of the compacted trace: a
// repeated step and how many times it repeats consecutively.
type CompactedStep struct {
	Count int         `toml:"count"`
	Step  string      `toml:"step"`
	Raw   tsalign.Step `toml:"-"`
}

// Compact drops internal bookkeeping steps (Root, SecondaryRoot,
// PrimaryReentry) and merges consecutive identical steps into (count, step)
// pairs, per spec §4.7. Compaction is idempotent: compacting an
// already-compacted, re-expanded trace yields the identical sequence.
func Compact(trace tsalign.Trace) []CompactedStep {
	var out []CompactedStep
	for _, step := range trace {
		if step.IsInternal() {
			continue
		}
		if len(out) > 0 && out[len(out)-1].Raw == step {
			out[len(out)-1].Count++
			continue
		}
		out = append(out, CompactedStep{Count: 1, Step: string(step), Raw: step})
	}

	return out
}

// Expand is the inverse of Compact, used to verify idempotency: it rebuilds
// the flat (non-internal) step sequence from a compacted trace.
func Expand(compacted []CompactedStep) tsalign.Trace {
	var out tsalign.Trace
	for _, c := range compacted {
		for i := 0; i < c.Count; i++ {
			out = append(out, c.Raw)
		}
	}

	return out
}
