package tsalign

// complement returns the Watson-Crick complement of a DNA base, preserving
// case, and passing through any symbol outside {A,C,G,T} (e.g. an
// IUPAC ambiguity code or a protein residue) unchanged. Mirrors the
// 2-bit complementCode table package anchor uses for reverse-complement
// k-mer indexing, but operates directly on bytes since the secondary
// region walks one symbol at a time rather than a packed window.
func complement(b byte) byte {
	switch b {
	case 'A':
		return 'T'
	case 'C':
		return 'G'
	case 'G':
		return 'C'
	case 'T':
		return 'A'
	case 'a':
		return 't'
	case 'c':
		return 'g'
	case 'g':
		return 'c'
	case 't':
		return 'a'
	default:
		return b
	}
}
