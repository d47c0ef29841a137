package tsalign

import "github.com/sebschmi/tsalign-go/costmodel"

// Sequence is the narrow interface Context consumes from a sequence source,
// per SPEC_FULL.md §3: FASTA parsing is out of scope for the core (spec
// §1's Non-goals), so a FASTA-backed implementation is expected to live
// outside this module and plug in through this seam rather than the core
// importing a FASTA library itself. Context itself operates on plain []byte
// for simplicity; Sequence exists for callers (such as cmd/tsalign) that
// want to validate a byte slice against an Alphabet before slicing it.
type Sequence interface {
	Len() int
	At(i int) byte
	Alphabet() costmodel.Alphabet
}

// ByteSequence is the trivial Sequence implementation over a validated byte
// slice, what cmd/tsalign builds after reading a raw (non-FASTA) input file.
type ByteSequence struct {
	bytes    []byte
	alphabet costmodel.Alphabet
}

// NewByteSequence validates every byte of data against alphabet and wraps it
// as a Sequence.
func NewByteSequence(data []byte, alphabet costmodel.Alphabet) (ByteSequence, error) {
	for _, b := range data {
		if _, err := alphabet.IndexOf(b); err != nil {
			return ByteSequence{}, err
		}
	}

	return ByteSequence{bytes: data, alphabet: alphabet}, nil
}

func (s ByteSequence) Len() int                        { return len(s.bytes) }
func (s ByteSequence) At(i int) byte                    { return s.bytes[i] }
func (s ByteSequence) Alphabet() costmodel.Alphabet     { return s.alphabet }
func (s ByteSequence) Bytes() []byte                    { return s.bytes }
