package ntuple

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
)

// Network is the lookup-table value function: one weight table per
// tuple pattern. The value of an afterstate is the sum of the eight
// selected weights.
type Network struct {
	tables [NumTuples][]float32
}

// NewZero returns a network with every weight at zero.
func NewZero() *Network {
	n := &Network{}
	for i := range n.tables {
		n.tables[i] = make([]float32, TableSize)
	}
	return n
}

// Estimate returns the value of the afterstate whose indices are t.
func (n *Network) Estimate(t Tuples) float32 {
	var v float32
	for i, idx := range t {
		v += n.tables[i][idx]
	}
	return v
}

// Adjust adds delta to the weight each tuple selects. This is the
// network's only mutator.
func (n *Network) Adjust(t Tuples, delta float32) {
	for i, idx := range t {
		n.tables[i][idx] += delta
	}
}

// Weight returns table i's entry at idx.
func (n *Network) Weight(i, idx int) float32 { return n.tables[i][idx] }

// Save writes the network to path: a little-endian uint32 table count,
// then each table's raw float32 entries back to back with no per-table
// prefix or padding.
func (n *Network) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ntuple: create %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, uint32(NumTuples)); err != nil {
		f.Close()
		return fmt.Errorf("ntuple: write %s: %w", path, err)
	}
	for i := range n.tables {
		if err := binary.Write(w, binary.LittleEndian, n.tables[i]); err != nil {
			f.Close()
			return fmt.Errorf("ntuple: write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("ntuple: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("ntuple: write %s: %w", path, err)
	}
	return nil
}

// Load reads a network saved by Save. The stored table count must equal
// NumTuples and every table must be complete: a mismatched or truncated
// file fails without producing a half-loaded network.
func Load(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ntuple: open %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("ntuple: read %s: %w", path, err)
	}
	if count != NumTuples {
		return nil, fmt.Errorf("ntuple: %s holds %d tables, want %d", path, count, NumTuples)
	}
	n := NewZero()
	for i := range n.tables {
		if err := binary.Read(r, binary.LittleEndian, n.tables[i]); err != nil {
			return nil, fmt.Errorf("ntuple: read %s table %d: %w", path, i, err)
		}
	}
	return n, nil
}
