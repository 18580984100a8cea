// Package threes implements the Threes! board mechanics.
//
// The board is a 4×4 grid of nibble cells. A cell holds a tile rank:
// 0 is empty, rank 1 and 2 are the base tiles, and rank r ≥ 3 is the
// tile with face value 3·2^(r−3). Board is a flat value type with no
// pointers or slices, so agents can copy it with = and search on
// private copies.
package threes

// Cell is a tile rank in [0, 15]. 0 denotes an empty cell.
type Cell uint8

// Reward is a realized score delta returned by board mutations.
type Reward int

// IllegalReward is the sentinel returned when a move does not change
// the board.
const IllegalReward Reward = -1

// Direction identifies one of the four slide moves. The enumeration
// order is canonical: agents evaluate directions in exactly this order,
// and the learner's tie-break depends on it staying stable.
type Direction uint8

const (
	DirUp    Direction = iota // 0
	DirRight                  // 1
	DirDown                   // 2
	DirLeft                   // 3
	NumDirections
)

// NoSlide is the Last() value before the first slide of an episode,
// when a tile may be placed anywhere on the grid.
const NoSlide uint8 = 4

// Grid is the raw 4×4 cell matrix, row-major.
type Grid [4][4]Cell

// At returns the cell at linear position pos (0–15, row-major).
func (g *Grid) At(pos int) Cell { return g[pos/4][pos%4] }

// Set stores c at linear position pos.
func (g *Grid) Set(pos int, c Cell) { g[pos/4][pos%4] = c }

// TileValue returns the face value of a tile of rank c.
func (c Cell) TileValue() int {
	switch {
	case c == 0:
		return 0
	case c <= 2:
		return int(c)
	default:
		return 3 << (c - 3)
	}
}

// Score returns the realized score of a tile of rank c: 3^(c−2) for
// c ≥ 3, zero for the base tiles.
func (c Cell) Score() Reward {
	if c < 3 {
		return 0
	}
	s := Reward(1)
	for i := Cell(2); i < c; i++ {
		s *= 3
	}
	return s
}

// Board holds the grid plus the placement bookkeeping: the 1-2-3 tile
// bag, the announced hint tile, and the direction of the previous slide.
type Board struct {
	grid Grid
	bag  [4]uint8 // remaining tiles per rank in the current bag cycle; index 0 unused
	hint Cell     // announced next tile; 0 before the first placement
	last uint8    // Direction of the most recent slide, or NoSlide
}

// NewBoard returns an empty board with a full bag and no hint.
func NewBoard() Board {
	return Board{bag: [4]uint8{0, 1, 1, 1}, last: NoSlide}
}

// Grid returns a copy of the raw grid.
func (b *Board) Grid() Grid { return b.grid }

// At returns the cell at linear position pos.
func (b *Board) At(pos int) Cell { return b.grid.At(pos) }

// Hint returns the announced next tile, or 0 when none is outstanding.
func (b *Board) Hint() Cell { return b.hint }

// BagCount returns how many tiles of rank t remain in the current bag
// cycle. The outstanding hint has already been removed from the bag.
func (b *Board) BagCount(t Cell) uint8 {
	if t < 1 || t > 3 {
		return 0
	}
	return b.bag[t]
}

// Last returns the direction of the most recent slide, or NoSlide.
// The placer uses it to select the entry edge for the next tile.
func (b *Board) Last() uint8 { return b.last }

// Value returns the total realized score: the sum of Score over every
// tile on the grid.
func (b *Board) Value() Reward {
	var total Reward
	for _, row := range b.grid {
		for _, c := range row {
			total += c.Score()
		}
	}
	return total
}

// combineInto shifts or merges the tile at src into dst. A tile moves
// one cell into an empty neighbor; 1 and 2 combine to 3; equal ranks
// ≥ 3 combine to the next rank. Reports whether anything changed.
func combineInto(dst, src *Cell) bool {
	switch {
	case *src == 0:
		return false
	case *dst == 0:
		*dst, *src = *src, 0
	case (*dst == 1 && *src == 2) || (*dst == 2 && *src == 1):
		*dst, *src = 3, 0
	case *dst == *src && *dst >= 3:
		*dst, *src = *dst+1, 0
	default:
		return false
	}
	return true
}

// Slide applies the move d. Each adjacent cell pair along d is processed
// once from the destination side, so every tile shifts at most one cell
// per move. Returns the score delta, or IllegalReward when nothing moves
// (the board is left untouched in that case).
func (b *Board) Slide(d Direction) Reward {
	before := b.Value()
	moved := false
	for i := 0; i < 4; i++ {
		for j := 0; j < 3; j++ {
			var dst, src *Cell
			switch d {
			case DirUp:
				dst, src = &b.grid[j][i], &b.grid[j+1][i]
			case DirRight:
				dst, src = &b.grid[i][3-j], &b.grid[i][2-j]
			case DirDown:
				dst, src = &b.grid[3-j][i], &b.grid[2-j][i]
			case DirLeft:
				dst, src = &b.grid[i][j], &b.grid[i][j+1]
			default:
				return IllegalReward
			}
			if combineInto(dst, src) {
				moved = true
			}
		}
	}
	if !moved {
		return IllegalReward
	}
	b.last = uint8(d)
	return b.Value() - before
}

// Afterstate returns the grid after sliding d, before any tile is
// placed. The receiver is not modified; ok is false when the slide is
// illegal (the unchanged grid is returned in that case).
func (b Board) Afterstate(d Direction) (grid Grid, ok bool) {
	if b.Slide(d) == IllegalReward {
		return b.grid, false
	}
	return b.grid, true
}

// Place puts a tile of rank tile at linear position pos and records
// hint as the next announced tile. The placed tile (when no hint was
// outstanding) and the new hint are consumed from the bag; an exhausted
// bag refills with one tile of each base rank. Returns 0, or
// IllegalReward for an occupied cell or an out-of-range rank.
func (b *Board) Place(pos int, tile, hint Cell) Reward {
	if pos < 0 || pos >= 16 || b.grid.At(pos) != 0 {
		return IllegalReward
	}
	if tile < 1 || tile > 3 || hint < 1 || hint > 3 {
		return IllegalReward
	}
	b.grid.Set(pos, tile)
	if b.hint == 0 {
		b.takeTile(tile)
	}
	b.takeTile(hint)
	b.hint = hint
	return 0
}

// takeTile removes one tile of rank t from the bag, refilling the bag
// when the cycle is exhausted.
func (b *Board) takeTile(t Cell) {
	if b.bag[t] > 0 {
		b.bag[t]--
	}
	if b.bag[1] == 0 && b.bag[2] == 0 && b.bag[3] == 0 {
		b.bag = [4]uint8{0, 1, 1, 1}
	}
}
