package alignresult

import (
	"bytes"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sebschmi/tsalign-go/astar"
	"github.com/sebschmi/tsalign-go/cost"
	"github.com/sebschmi/tsalign-go/tsalign"
)

// RangeStats mirrors the range a search was restricted to, per spec §6's
// result table (range.reference_offset, range.reference_limit, ...).
type RangeStats struct {
	ReferenceOffset int `toml:"reference_offset"`
	ReferenceLimit  int `toml:"reference_limit"`
	QueryOffset     int `toml:"query_offset"`
	QueryLimit      int `toml:"query_limit"`
}

// Statistics is the performance/shape table from spec §6.
type Statistics struct {
	Cost                       uint64     `toml:"cost"`
	CostPerBase                float64    `toml:"cost_per_base"`
	DurationSeconds            float64    `toml:"duration_seconds"`
	OpenedNodes                int        `toml:"opened_nodes"`
	ClosedNodes                int        `toml:"closed_nodes"`
	SuboptimalOpenedNodes      int        `toml:"suboptimal_opened_nodes"`
	SuboptimalOpenedNodesRatio float64    `toml:"suboptimal_opened_nodes_ratio"`
	ReferenceOffset            int        `toml:"reference_offset"`
	QueryOffset                int        `toml:"query_offset"`
	ReferenceLength            int        `toml:"reference_length"`
	QueryLength                int        `toml:"query_length"`
	Range                      RangeStats `toml:"range"`
}

// AlignmentResult is the TOML document described in spec §6: the compacted
// alignment, a statistics table, and the input sequences.
type AlignmentResult struct {
	Alignment []CompactedStep `toml:"alignment"`
	Stats     Statistics      `toml:"statistics"`
	Reference string          `toml:"reference"`
	Query     string          `toml:"query"`

	// Status records why the search ended; only "found_target" carries a
	// meaningful Alignment and Stats.Cost.
	Status string `toml:"status"`
}

// ErrNotFound reports that a search did not find a target. Build itself never
// returns an error: for such a search it returns a result whose Status names
// the outcome and whose alignment is empty.
var ErrNotFound = fmt.Errorf("alignresult: search did not find a target")

// Build assembles an AlignmentResult from a finished tsalign.Outcome.
func Build[T cost.Integer](outcome tsalign.Outcome[T], reference, query []byte, rng tsalign.Range, duration time.Duration) *AlignmentResult {
	status := statusString(outcome.Status)

	r := &AlignmentResult{
		Status:    status,
		Reference: string(reference),
		Query:     string(query),
	}

	if outcome.Status != astar.StatusFoundTarget {
		r.Stats = Statistics{
			OpenedNodes:           outcome.Counters.Opened,
			ClosedNodes:           outcome.Counters.Closed,
			SuboptimalOpenedNodes: outcome.Counters.SuboptimalOpened,
			DurationSeconds:       duration.Seconds(),
		}

		return r
	}

	compacted := Compact(outcome.Trace)
	r.Alignment = compacted

	costValue := outcome.Cost.ToUint()
	refLen := rng.R1 - rng.R0
	queryLen := rng.Q1 - rng.Q0
	bases := refLen
	if queryLen > bases {
		bases = queryLen
	}
	var costPerBase float64
	if bases > 0 {
		costPerBase = float64(costValue) / float64(bases)
	}

	var suboptimalRatio float64
	if outcome.Counters.Opened > 0 {
		suboptimalRatio = float64(outcome.Counters.SuboptimalOpened) / float64(outcome.Counters.Opened)
	}

	r.Stats = Statistics{
		Cost:                       costValue,
		CostPerBase:                costPerBase,
		DurationSeconds:            duration.Seconds(),
		OpenedNodes:                outcome.Counters.Opened,
		ClosedNodes:                outcome.Counters.Closed,
		SuboptimalOpenedNodes:      outcome.Counters.SuboptimalOpened,
		SuboptimalOpenedNodesRatio: suboptimalRatio,
		ReferenceOffset:            rng.R0,
		QueryOffset:                rng.Q0,
		ReferenceLength:            refLen,
		QueryLength:                queryLen,
		Range: RangeStats{
			ReferenceOffset: rng.R0,
			ReferenceLimit:  rng.R1,
			QueryOffset:     rng.Q0,
			QueryLimit:      rng.Q1,
		},
	}

	return r
}

func statusString(s astar.Status) string {
	switch s {
	case astar.StatusFoundTarget:
		return "found_target"
	case astar.StatusNoTarget:
		return "no_target"
	case astar.StatusExceededCostLimit:
		return "exceeded_cost_limit"
	case astar.StatusExceededMemoryLimit:
		return "exceeded_memory_limit"
	default:
		return "unknown"
	}
}

// WriteTOML serializes r as the TOML result document from spec §6.
func (r *AlignmentResult) WriteTOML() ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(r); err != nil {
		return nil, fmt.Errorf("alignresult: encode: %w", err)
	}

	return buf.Bytes(), nil
}
