package tsconfig

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sebschmi/tsalign-go/cost"
	"github.com/sebschmi/tsalign-go/costmodel"
)

// Sentinel errors, per spec §7's "Config parse error" / "Config semantic
// error" kinds.
var (
	ErrMalformedSection    = errors.New("tsconfig: malformed section")
	ErrUnrecognisedKey     = errors.New("tsconfig: unrecognised key")
	ErrMissingSection      = errors.New("tsconfig: missing required section")
	ErrDuplicateSection    = errors.New("tsconfig: duplicate section")
	ErrTableShapeMismatch  = errors.New("tsconfig: substitution table shape mismatch")
)

const (
	sectionLimits           = "Limits"
	sectionBaseCost         = "Base Cost"
	sectionOffset           = "Offset"
	sectionLength           = "Length"
	sectionLengthDifference = "LengthDifference"
	sectionAntiPrimaryGap   = "AntiPrimaryGap"
	sectionPrimaryEdit      = "Primary Edit Costs"
	sectionSecondaryEdit    = "Secondary Edit Costs"
	sectionLeftFlankEdit    = "Left Flank Edit Costs"
	sectionRightFlankEdit   = "Right Flank Edit Costs"
)

// rawSections splits the document into an ordered list of (title, body
// lines), per the "# <Title>" delimiter convention.
func rawSections(r io.Reader) ([]string, map[string][]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var order []string
	sections := make(map[string][]string)
	current := ""

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "# ") {
			title := strings.TrimSpace(strings.TrimPrefix(line, "# "))
			if _, exists := sections[title]; exists {
				return nil, nil, fmt.Errorf("%w: %q", ErrDuplicateSection, title)
			}
			order = append(order, title)
			sections[title] = nil
			current = title
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if current == "" {
			return nil, nil, fmt.Errorf("%w: content before first section header", ErrMalformedSection)
		}
		sections[current] = append(sections[current], line)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("tsconfig: scan: %w", err)
	}

	return order, sections, nil
}

// Parse reads a cost configuration document over alphabet, per spec §6.
func Parse[T cost.Integer](r io.Reader, alphabet costmodel.Alphabet) (*Config[T], error) {
	_, sections, err := rawSections(r)
	if err != nil {
		return nil, err
	}

	cfg := &Config[T]{}

	if err := parseLimits(sections, &cfg.Limits); err != nil {
		return nil, err
	}
	if err := parseBaseCost[T](sections, &cfg.BaseCost); err != nil {
		return nil, err
	}

	stepFns := map[string]*costmodel.StepFunction[int32, T]{
		sectionOffset:           &cfg.Offset,
		sectionLength:           &cfg.Length,
		sectionLengthDifference: &cfg.LengthDifference,
		sectionAntiPrimaryGap:   &cfg.AntiPrimaryGap,
	}
	for name, dest := range stepFns {
		lines, ok := sections[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingSection, name)
		}
		f, err := parseStepFunction[T](lines)
		if err != nil {
			return nil, fmt.Errorf("tsconfig: section %q: %w", name, err)
		}
		*dest = f
	}

	tables := map[string]**costmodel.AffineGapCosts[T]{
		sectionPrimaryEdit:    &cfg.Primary,
		sectionSecondaryEdit:  &cfg.Secondary,
		sectionLeftFlankEdit:  &cfg.LeftFlank,
		sectionRightFlankEdit: &cfg.RightFlank,
	}
	for name, dest := range tables {
		lines, ok := sections[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingSection, name)
		}
		table, err := parseEditCosts[T](lines, alphabet)
		if err != nil {
			return nil, fmt.Errorf("tsconfig: section %q: %w", name, err)
		}
		*dest = table
	}

	return cfg, nil
}

func parseLimits(sections map[string][]string, limits *Limits) error {
	lines, ok := sections[sectionLimits]
	if !ok {
		return fmt.Errorf("%w: %q", ErrMissingSection, sectionLimits)
	}

	kv, err := parseKeyValues(lines)
	if err != nil {
		return err
	}

	for key, raw := range kv {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("tsconfig: %s: %q is not an integer", key, raw)
		}
		switch key {
		case "left_flank_length":
			limits.LeftFlankLength = v
		case "right_flank_length":
			limits.RightFlankLength = v
		case "min_length":
			limits.MinLength = v
		default:
			return fmt.Errorf("%w: %q", ErrUnrecognisedKey, key)
		}
	}

	return nil
}

func parseBaseCost[T cost.Integer](sections map[string][]string, dest *BaseCost[T]) error {
	lines, ok := sections[sectionBaseCost]
	if !ok {
		return fmt.Errorf("%w: %q", ErrMissingSection, sectionBaseCost)
	}

	kv, err := parseKeyValues(lines)
	if err != nil {
		return err
	}

	assign := map[string]*cost.Value[T]{
		"rr": &dest.RR,
		"rq": &dest.RQ,
		"qr": &dest.QR,
		"qq": &dest.QQ,
	}
	for key, raw := range kv {
		field, known := assign[key]
		if !known {
			return fmt.Errorf("%w: %q", ErrUnrecognisedKey, key)
		}
		v, err := parseCostToken[T](raw)
		if err != nil {
			return fmt.Errorf("tsconfig: base cost %s: %w", key, err)
		}
		*field = v
	}

	return nil
}

// parseKeyValues parses "key=value" lines into a map, per the Limits and
// Base Cost section format.
func parseKeyValues(lines []string) (map[string]string, error) {
	kv := make(map[string]string)
	for _, line := range lines {
		parts := strings.SplitN(strings.TrimSpace(line), "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: expected key=value, got %q", ErrMalformedSection, line)
		}
		kv[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}

	return kv, nil
}

// parseStepFunction parses the two whitespace-separated lines of a
// cost-function block: breakpoints (with "-inf"/"inf" tokens) then costs.
func parseStepFunction[T cost.Integer](lines []string) (costmodel.StepFunction[int32, T], error) {
	if len(lines) != 2 {
		return costmodel.StepFunction[int32, T]{}, fmt.Errorf("%w: expected 2 lines, got %d", ErrMalformedSection, len(lines))
	}

	breakpointTokens := strings.Fields(lines[0])
	costTokens := strings.Fields(lines[1])
	if len(breakpointTokens) != len(costTokens) {
		return costmodel.StepFunction[int32, T]{}, fmt.Errorf("%w: %d breakpoints, %d costs", ErrMalformedSection, len(breakpointTokens), len(costTokens))
	}

	breakpoints := make([]int32, len(breakpointTokens))
	for i, tok := range breakpointTokens {
		switch tok {
		case "-inf":
			breakpoints[i] = -1 << 31
		case "inf":
			breakpoints[i] = 1<<31 - 1
		default:
			v, err := strconv.ParseInt(tok, 10, 32)
			if err != nil {
				return costmodel.StepFunction[int32, T]{}, fmt.Errorf("tsconfig: breakpoint %q: %w", tok, err)
			}
			breakpoints[i] = int32(v)
		}
	}

	costs := make([]cost.Value[T], len(costTokens))
	for i, tok := range costTokens {
		v, err := parseCostToken[T](tok)
		if err != nil {
			return costmodel.StepFunction[int32, T]{}, err
		}
		costs[i] = v
	}

	return costmodel.NewStepFunction(breakpoints, costs)
}

// parseEditCosts parses one "<Name> Edit Costs" block: an alphabet header
// row, a "---+---" separator, |Σ| substitution rows, then
// GapOpenCostVector/GapExtendCostVector rows.
func parseEditCosts[T cost.Integer](lines []string, alphabet costmodel.Alphabet) (*costmodel.AffineGapCosts[T], error) {
	n := alphabet.Len()
	if len(lines) < 2+n+2 {
		return nil, fmt.Errorf("%w: expected at least %d lines, got %d", ErrMalformedSection, 2+n+2, len(lines))
	}

	// lines[0] is the header row, lines[1] is the "---+---" separator; both
	// are positional and not re-validated against the alphabet order beyond
	// their presence, matching the original format's column-order contract.
	body := lines[2:]
	if len(body) != n+2 {
		return nil, fmt.Errorf("%w: expected %d substitution rows + 2 gap vectors, got %d", ErrMalformedSection, n+2, len(body))
	}

	substitution := make([][]cost.Value[T], n)
	for i := 0; i < n; i++ {
		row, err := parseCostRow[T](body[i], n)
		if err != nil {
			return nil, fmt.Errorf("tsconfig: substitution row %d: %w", i, err)
		}
		substitution[i] = row
	}

	gapOpen, err := parseCostRow[T](body[n], n)
	if err != nil {
		return nil, fmt.Errorf("tsconfig: gap-open vector: %w", err)
	}
	gapExtend, err := parseCostRow[T](body[n+1], n)
	if err != nil {
		return nil, fmt.Errorf("tsconfig: gap-extend vector: %w", err)
	}

	return costmodel.NewAffineGapCosts(alphabet, substitution, gapOpen, gapExtend)
}

func parseCostRow[T cost.Integer](line string, n int) ([]cost.Value[T], error) {
	tokens := strings.Fields(line)
	if len(tokens) != n {
		return nil, fmt.Errorf("%w: expected %d columns, got %d", ErrTableShapeMismatch, n, len(tokens))
	}

	row := make([]cost.Value[T], n)
	for i, tok := range tokens {
		v, err := parseCostToken[T](tok)
		if err != nil {
			return nil, err
		}
		row[i] = v
	}

	return row, nil
}

// parseCostToken parses a single cost cell, accepting "inf" for MaxValue.
func parseCostToken[T cost.Integer](tok string) (cost.Value[T], error) {
	if tok == "inf" {
		return cost.Max[T](), nil
	}

	v, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return cost.Value[T]{}, fmt.Errorf("tsconfig: invalid cost %q: %w", tok, err)
	}

	return cost.FromUint[T](v), nil
}
