// Package ntuple implements the N-tuple value network used by the
// learning slider: eight 65536-entry lookup tables, one per row and
// column pattern of the 4×4 grid, whose summed weights approximate the
// value of an afterstate.
package ntuple

import "threes"

const (
	// NumTuples is the number of patterns extracted per grid:
	// the four rows followed by the four columns.
	NumTuples = 8
	// TableSize is 16^4: one weight per base-16 packing of a
	// 4-cell line, so extracted indices can never be out of range.
	TableSize = 65536
)

// Tuples holds the eight table indices extracted from one grid.
type Tuples [NumTuples]int

// Extract returns the indices for g in fixed order: rows 0–3, then
// columns 0–3. Each index packs the line's four cells base-16 with the
// most significant digit first. Extraction is pure and deterministic.
func Extract(g threes.Grid) Tuples {
	var t Tuples
	for i := 0; i < 4; i++ {
		t[i] = int(g[i][0])<<12 | int(g[i][1])<<8 | int(g[i][2])<<4 | int(g[i][3])
		t[4+i] = int(g[0][i])<<12 | int(g[1][i])<<8 | int(g[2][i])<<4 | int(g[3][i])
	}
	return t
}
