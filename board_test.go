package threes

import "testing"

// TestTileValueAndScore checks the rank → face value / score mapping.
func TestTileValueAndScore(t *testing.T) {
	cases := []struct {
		rank  Cell
		value int
		score Reward
	}{
		{0, 0, 0},
		{1, 1, 0},
		{2, 2, 0},
		{3, 3, 3},
		{4, 6, 9},
		{5, 12, 27},
		{6, 24, 81},
	}
	for _, c := range cases {
		if got := c.rank.TileValue(); got != c.value {
			t.Errorf("rank %d: TileValue = %d, want %d", c.rank, got, c.value)
		}
		if got := c.rank.Score(); got != c.score {
			t.Errorf("rank %d: Score = %d, want %d", c.rank, got, c.score)
		}
	}
}

// TestNewBoard verifies the opening state: empty grid, full bag,
// no hint, placement allowed anywhere.
func TestNewBoard(t *testing.T) {
	b := NewBoard()
	for pos := 0; pos < 16; pos++ {
		if b.At(pos) != 0 {
			t.Fatalf("cell %d not empty on a new board", pos)
		}
	}
	for r := Cell(1); r <= 3; r++ {
		if b.BagCount(r) != 1 {
			t.Errorf("BagCount(%d) = %d, want 1", r, b.BagCount(r))
		}
	}
	if b.Hint() != 0 {
		t.Errorf("Hint = %d, want 0", b.Hint())
	}
	if b.Last() != NoSlide {
		t.Errorf("Last = %d, want NoSlide", b.Last())
	}
	if b.Value() != 0 {
		t.Errorf("Value = %d, want 0", b.Value())
	}
}

// TestSlideShiftsOneCell verifies that a lone tile moves exactly one
// cell per slide, not across the whole line.
func TestSlideShiftsOneCell(t *testing.T) {
	b := Board{}
	b.grid[2][1] = 3

	if r := b.Slide(DirUp); r != 0 {
		t.Fatalf("Slide(up) reward = %d, want 0", r)
	}
	if b.grid[1][1] != 3 || b.grid[2][1] != 0 {
		t.Errorf("tile did not shift one cell up: grid = %v", b.grid)
	}
	if b.Last() != uint8(DirUp) {
		t.Errorf("Last = %d, want %d", b.Last(), DirUp)
	}
}

// TestSlideMergeBaseTiles verifies 1+2 → 3 with reward 3, in both
// pair orders.
func TestSlideMergeBaseTiles(t *testing.T) {
	for _, c := range []struct{ top, bottom Cell }{{1, 2}, {2, 1}} {
		b := Board{}
		b.grid[0][0] = c.top
		b.grid[1][0] = c.bottom

		if r := b.Slide(DirUp); r != 3 {
			t.Fatalf("Slide(up) with %d over %d: reward = %d, want 3", c.top, c.bottom, r)
		}
		if b.grid[0][0] != 3 || b.grid[1][0] != 0 {
			t.Errorf("merge result grid = %v", b.grid)
		}
	}
}

// TestSlideMergeEqualRanks verifies that equal ranks ≥ 3 combine to the
// next rank and that base ranks do not self-combine.
func TestSlideMergeEqualRanks(t *testing.T) {
	b := Board{}
	b.grid[0][2] = 4
	b.grid[1][2] = 4

	// Two rank-4 tiles (score 9 each) become one rank-5 (score 27).
	if r := b.Slide(DirUp); r != 9 {
		t.Fatalf("Slide(up) merging 4+4: reward = %d, want 9", r)
	}
	if b.grid[0][2] != 5 {
		t.Errorf("merged rank = %d, want 5", b.grid[0][2])
	}

	b = Board{}
	b.grid[0][0] = 1
	b.grid[1][0] = 1
	if r := b.Slide(DirUp); r != IllegalReward {
		t.Errorf("Slide(up) with 1 over 1: reward = %d, want illegal", r)
	}
}

// TestSlideIllegalLeavesBoardUntouched verifies the sentinel and that a
// rejected slide mutates nothing.
func TestSlideIllegalLeavesBoardUntouched(t *testing.T) {
	b := Board{last: NoSlide}
	b.grid[0][0] = 1 // lone tile already in the corner

	before := b
	if r := b.Slide(DirUp); r != IllegalReward {
		t.Fatalf("Slide(up) reward = %d, want illegal", r)
	}
	if r := b.Slide(DirLeft); r != IllegalReward {
		t.Fatalf("Slide(left) reward = %d, want illegal", r)
	}
	if b != before {
		t.Errorf("illegal slide mutated the board")
	}
	if b.Last() != NoSlide {
		t.Errorf("illegal slide recorded Last = %d", b.Last())
	}
}

// TestSlideAllDirections pins the traversal orientation: the same lone
// tile ends up against the correct wall side for each direction.
func TestSlideAllDirections(t *testing.T) {
	cases := []struct {
		d        Direction
		from, to [2]int
	}{
		{DirUp, [2]int{2, 1}, [2]int{1, 1}},
		{DirRight, [2]int{1, 1}, [2]int{1, 2}},
		{DirDown, [2]int{1, 2}, [2]int{2, 2}},
		{DirLeft, [2]int{2, 2}, [2]int{2, 1}},
	}
	for _, c := range cases {
		b := Board{}
		b.grid[c.from[0]][c.from[1]] = 5
		if r := b.Slide(c.d); r != 0 {
			t.Fatalf("Slide(%d) reward = %d, want 0", c.d, r)
		}
		if b.grid[c.to[0]][c.to[1]] != 5 {
			t.Errorf("Slide(%d): tile not at %v: grid = %v", c.d, c.to, b.grid)
		}
	}
}

// TestSlidePartialLineMovement verifies that a blocked pair does not
// stop a later pair in the same line from combining.
func TestSlidePartialLineMovement(t *testing.T) {
	b := Board{}
	b.grid[0][0] = 5
	b.grid[1][0] = 4
	b.grid[2][0] = 4

	// (0,1) is blocked (5 over 4), but (1,2) merges 4+4.
	if r := b.Slide(DirUp); r != 9 {
		t.Fatalf("Slide(up) reward = %d, want 9", r)
	}
	if b.grid[0][0] != 5 || b.grid[1][0] != 5 || b.grid[2][0] != 0 {
		t.Errorf("partial movement grid = %v", b.grid)
	}
}

// TestAfterstateIsPure verifies that Afterstate returns the post-merge
// grid without touching the receiver, and flags illegal directions.
func TestAfterstateIsPure(t *testing.T) {
	b := Board{}
	b.grid[0][3] = 1
	b.grid[1][3] = 2
	before := b

	grid, ok := b.Afterstate(DirUp)
	if !ok {
		t.Fatal("Afterstate(up) reported illegal for a legal slide")
	}
	if grid[0][3] != 3 || grid[1][3] != 0 {
		t.Errorf("afterstate grid = %v", grid)
	}
	if b != before {
		t.Errorf("Afterstate mutated the board")
	}

	if _, ok := b.Afterstate(DirRight); ok {
		t.Errorf("Afterstate(right) reported legal for an immovable board")
	}
}

// TestPlaceConsumesBagAndHint walks the opening placements and checks
// the bag cycle, including the refill once all three ranks are drawn.
func TestPlaceConsumesBagAndHint(t *testing.T) {
	b := NewBoard()

	// Opening placement: no hint outstanding, so both the placed tile
	// and the announced hint come out of the bag.
	if r := b.Place(0, 2, 3); r != 0 {
		t.Fatalf("Place reward = %d, want 0", r)
	}
	if b.At(0) != 2 {
		t.Errorf("cell 0 = %d, want 2", b.At(0))
	}
	if b.Hint() != 3 {
		t.Errorf("Hint = %d, want 3", b.Hint())
	}
	if b.BagCount(1) != 1 || b.BagCount(2) != 0 || b.BagCount(3) != 0 {
		t.Errorf("bag = {%d %d %d}, want {1 0 0}", b.BagCount(1), b.BagCount(2), b.BagCount(3))
	}

	// Second placement places the outstanding hint; drawing rank 1 as
	// the new hint empties the bag, which refills immediately.
	if r := b.Place(1, 3, 1); r != 0 {
		t.Fatalf("Place reward = %d, want 0", r)
	}
	if b.Hint() != 1 {
		t.Errorf("Hint = %d, want 1", b.Hint())
	}
	for r := Cell(1); r <= 3; r++ {
		if b.BagCount(r) != 1 {
			t.Errorf("after refill: BagCount(%d) = %d, want 1", r, b.BagCount(r))
		}
	}
}

// TestPlaceRejectsBadArguments covers occupied cells and out-of-range
// positions and ranks.
func TestPlaceRejectsBadArguments(t *testing.T) {
	b := NewBoard()
	if r := b.Place(5, 1, 2); r != 0 {
		t.Fatalf("setup Place failed: %d", r)
	}

	if r := b.Place(5, 1, 2); r != IllegalReward {
		t.Errorf("Place on occupied cell: reward = %d, want illegal", r)
	}
	if r := b.Place(-1, 1, 2); r != IllegalReward {
		t.Errorf("Place at -1: reward = %d, want illegal", r)
	}
	if r := b.Place(16, 1, 2); r != IllegalReward {
		t.Errorf("Place at 16: reward = %d, want illegal", r)
	}
	if r := b.Place(6, 0, 2); r != IllegalReward {
		t.Errorf("Place of rank 0: reward = %d, want illegal", r)
	}
	if r := b.Place(6, 4, 2); r != IllegalReward {
		t.Errorf("Place of rank 4: reward = %d, want illegal", r)
	}
	if r := b.Place(6, 1, 4); r != IllegalReward {
		t.Errorf("Place with hint rank 4: reward = %d, want illegal", r)
	}
}

// TestValueSumsTileScores verifies totalValue over a mixed grid.
func TestValueSumsTileScores(t *testing.T) {
	b := Board{}
	b.grid[0][0] = 1
	b.grid[0][1] = 2
	b.grid[1][0] = 3
	b.grid[2][2] = 4
	b.grid[3][3] = 5

	if got := b.Value(); got != 3+9+27 {
		t.Errorf("Value = %d, want %d", got, 3+9+27)
	}
}

// TestGridAccessors verifies the linear position helpers and that
// Grid() hands out an independent copy.
func TestGridAccessors(t *testing.T) {
	b := Board{}
	b.grid[1][2] = 7
	if b.At(6) != 7 {
		t.Errorf("At(6) = %d, want 7", b.At(6))
	}

	g := b.Grid()
	g.Set(0, 9)
	if b.At(0) != 0 {
		t.Errorf("mutating the Grid copy leaked into the board")
	}
	if g.At(0) != 9 {
		t.Errorf("Grid.Set/At mismatch: %d", g.At(0))
	}
}
