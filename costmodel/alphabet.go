// Package costmodel implements the affine-gap cost tables and step-wise cost
// functions described in spec §4.2: per-alphabet substitution/gap tables,
// their precomputed minima, and the V-shaped step functions used for the
// template-switch offset/length/anti-primary-gap costs.
package costmodel

import (
	"errors"
	"fmt"
)

// Sentinel errors for alphabet and cost-table construction.
var (
	// ErrEmptyAlphabet indicates an alphabet with zero symbols.
	ErrEmptyAlphabet = errors.New("costmodel: alphabet must be non-empty")

	// ErrUnknownSymbol indicates a byte outside the alphabet was looked up.
	ErrUnknownSymbol = errors.New("costmodel: symbol not in alphabet")

	// ErrDuplicateSymbol indicates the same byte appears twice in an alphabet.
	ErrDuplicateSymbol = errors.New("costmodel: duplicate symbol in alphabet")
)

// Alphabet is a small closed byte-to-index mapping. Sequences are immutable
// byte arrays over a fixed Alphabet, per spec §3.4.
type Alphabet struct {
	symbols []byte
	index   [256]int8 // -1 means "not in alphabet"
}

// DNA is the four-letter nucleotide alphabet used by default.
var DNA = mustNewAlphabet([]byte("ACGT"))

// Blosum62Alphabet is the twenty-symbol amino-acid alphabet matching the
// BLOSUM62 substitution table convention (only the alphabet is provided; this
// package has no built-in BLOSUM62 table), carried from the pack's protein-alignment stack (ndaniels-MICA's
// biogo/blosum tables) as an alternate constructor per SPEC_FULL.md §3.
var Blosum62Alphabet = mustNewAlphabet([]byte("ARNDCQEGHILKMFPSTWYV"))

// NewAlphabet builds an Alphabet from an ordered, deduplicated symbol list.
// The order determines column/row order in substitution matrices.
func NewAlphabet(symbols []byte) (Alphabet, error) {
	if len(symbols) == 0 {
		return Alphabet{}, ErrEmptyAlphabet
	}

	var a Alphabet
	for i := range a.index {
		a.index[i] = -1
	}
	a.symbols = append([]byte(nil), symbols...)
	for i, s := range a.symbols {
		if a.index[s] != -1 {
			return Alphabet{}, fmt.Errorf("%w: %q", ErrDuplicateSymbol, s)
		}
		a.index[s] = int8(i)
	}

	return a, nil
}

func mustNewAlphabet(symbols []byte) Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}

	return a
}

// Len returns the alphabet size |Σ|.
func (a Alphabet) Len() int {
	return len(a.symbols)
}

// Symbols returns the alphabet in column order. The returned slice must not
// be mutated by the caller.
func (a Alphabet) Symbols() []byte {
	return a.symbols
}

// IndexOf returns the column/row index of symbol c, or an error if c is not
// a member of the alphabet.
func (a Alphabet) IndexOf(c byte) (int, error) {
	i := a.index[c]
	if i < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, c)
	}

	return int(i), nil
}
