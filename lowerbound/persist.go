package lowerbound

import (
	"bufio"
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/sebschmi/tsalign-go/cost"
)

// WriteTable serializes a dense 2-D cost table in the on-disk layout from
// spec §6: dimensions (rows, cols as little-endian uint64) followed by the
// raw little-endian bytes of every cell, row-major. Callers key the
// resulting file by ChecksumCostConfig and refuse to load on mismatch --
// this module fixes little-endian and adds no magic/version of its own,
// deviating from the native-endian original only in byte order (spec §9's
// porting note).
func WriteTable[T cost.Integer](w io.Writer, table [][]cost.Value[T]) error {
	bw := bufio.NewWriter(w)

	rows := uint64(len(table))
	cols := uint64(0)
	if rows > 0 {
		cols = uint64(len(table[0]))
	}

	if err := binary.Write(bw, binary.LittleEndian, rows); err != nil {
		return fmt.Errorf("lowerbound: write rows: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, cols); err != nil {
		return fmt.Errorf("lowerbound: write cols: %w", err)
	}

	for i, row := range table {
		if uint64(len(row)) != cols {
			return fmt.Errorf("lowerbound: ragged table: row %d has %d cols, want %d", i, len(row), cols)
		}
		for _, v := range row {
			if err := binary.Write(bw, binary.LittleEndian, v.ToPrimitive()); err != nil {
				return fmt.Errorf("lowerbound: write cell: %w", err)
			}
		}
	}

	return bw.Flush()
}

// ReadTable is the inverse of WriteTable.
func ReadTable[T cost.Integer](r io.Reader) ([][]cost.Value[T], error) {
	var rows, cols uint64
	if err := binary.Read(r, binary.LittleEndian, &rows); err != nil {
		return nil, fmt.Errorf("lowerbound: read rows: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &cols); err != nil {
		return nil, fmt.Errorf("lowerbound: read cols: %w", err)
	}

	table := make([][]cost.Value[T], rows)
	for i := range table {
		table[i] = make([]cost.Value[T], cols)
		for j := range table[i] {
			var raw T
			if err := binary.Read(r, binary.LittleEndian, &raw); err != nil {
				return nil, fmt.Errorf("lowerbound: read cell (%d,%d): %w", i, j, err)
			}
			table[i][j] = cost.FromPrimitive[T](raw)
		}
	}

	return table, nil
}

// ChecksumCostConfig hashes a serialized cost configuration so a cache file
// can be keyed by it and refused on mismatch, per spec §6's "files are keyed
// externally by a SHA-1 hash of the serialised cost configuration".
func ChecksumCostConfig(serialized []byte) [sha1.Size]byte {
	return sha1.Sum(serialized)
}
