package anchor

import "sort"

// baseCode maps a DNA symbol to its 2-bit code, per spec §4.6's "bit-packed,
// 2 bits/base" k-mer representation. Returns ok=false for any symbol outside
// {A,C,G,T} (case-insensitive), which breaks the current k-mer window.
func baseCode(b byte) (uint64, bool) {
	switch b {
	case 'A', 'a':
		return 0, true
	case 'C', 'c':
		return 1, true
	case 'G', 'g':
		return 2, true
	case 'T', 't':
		return 3, true
	default:
		return 0, false
	}
}

func complementCode(c uint64) uint64 { return 3 - c }

// kmerEntry is one packed k-mer occurrence: its value and the position its
// window starts at.
type kmerEntry struct {
	kmer uint64
	pos  int
}

// packKmers packs every length-k window of seq into a sorted kmerEntry list.
// k must be in [1, 32] so the packed value fits a uint64, per spec §4.6.
func packKmers(seq []byte, k int) []kmerEntry {
	if k <= 0 || k > 32 || len(seq) < k {
		return nil
	}

	entries := make([]kmerEntry, 0, len(seq)-k+1)
	var packed uint64
	valid := 0
	mask := uint64(1)<<(2*uint(k)) - 1

	for i, b := range seq {
		code, ok := baseCode(b)
		if !ok {
			valid = 0
			packed = 0
			continue
		}
		packed = ((packed << 2) | code) & mask
		valid++
		if valid >= k {
			entries = append(entries, kmerEntry{kmer: packed, pos: i - k + 1})
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].kmer < entries[j].kmer })

	return entries
}

// packReverseComplementKmers packs the reverse complement of every length-k
// window of seq, reporting each entry's position in seq's own forward
// coordinates (the start of the window whose reverse complement equals the
// packed value). Used to seed the four secondary anchor lists.
func packReverseComplementKmers(seq []byte, k int) []kmerEntry {
	if k <= 0 || k > 32 || len(seq) < k {
		return nil
	}

	entries := make([]kmerEntry, 0, len(seq)-k+1)
	mask := uint64(1)<<(2*uint(k)) - 1

	for start := 0; start+k <= len(seq); start++ {
		var packed uint64
		ok := true
		for j := k - 1; j >= 0; j-- {
			code, valid := baseCode(seq[start+j])
			if !valid {
				ok = false
				break
			}
			packed = (packed << 2) | complementCode(code)
		}
		if ok {
			entries = append(entries, kmerEntry{kmer: packed & mask, pos: start})
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].kmer < entries[j].kmer })

	return entries
}

// mergeMatches finds exact k-mer matches between two sorted kmerEntry lists
// by ordered merge, flushing a cartesian product of positions whenever the
// k-mer value changes, per spec §4.6.
func mergeMatches(a, b []kmerEntry, k int, kind Kind) []Anchor {
	var out []Anchor
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].kmer < b[j].kmer:
			i++
		case a[i].kmer > b[j].kmer:
			j++
		default:
			kmer := a[i].kmer
			iEnd := i
			for iEnd < len(a) && a[iEnd].kmer == kmer {
				iEnd++
			}
			jEnd := j
			for jEnd < len(b) && b[jEnd].kmer == kmer {
				jEnd++
			}
			for x := i; x < iEnd; x++ {
				for y := j; y < jEnd; y++ {
					out = append(out, Anchor{Kind: kind, R0: a[x].pos, R1: a[x].pos + k, Q0: b[y].pos, Q1: b[y].pos + k})
				}
			}
			i, j = iEnd, jEnd
		}
	}

	sort.Slice(out, func(x, y int) bool {
		if out[x].R0 != out[y].R0 {
			return out[x].R0 < out[y].R0
		}

		return out[x].Q0 < out[y].Q0
	})

	return out
}

// BuildAnchorLists indexes reference and query with length-k k-mers and
// returns the five ordered anchor lists of spec §4.6: primary (forward vs.
// forward) and the four secondary reverse-orientation combinations.
//
// The RR/RQ/QR/QQ naming follows spec §3.8 ("according to which sequence
// contributes ancestor and descendant"), approximated here by matching a
// sequence's own reverse-complement k-mers against the other sequence's
// forward k-mers (RQ, QR) or its own forward k-mers (RR, QQ).
func BuildAnchorLists(reference, query []byte, k int) AnchorLists {
	refFwd := packKmers(reference, k)
	qryFwd := packKmers(query, k)
	refRev := packReverseComplementKmers(reference, k)
	qryRev := packReverseComplementKmers(query, k)

	return AnchorLists{
		Primary: mergeMatches(refFwd, qryFwd, k, KindPrimary),
		RR:      mergeMatches(refRev, refFwd, k, KindRR),
		RQ:      mergeMatches(refRev, qryFwd, k, KindRQ),
		QR:      mergeMatches(qryRev, refFwd, k, KindQR),
		QQ:      mergeMatches(qryRev, qryFwd, k, KindQQ),
	}
}
