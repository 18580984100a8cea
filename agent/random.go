package agent

import "threes"

// placementEdges lists the cells a new tile may enter, indexed by the
// direction of the previous slide: tiles enter along the edge opposite
// the slide. The NoSlide slot covers the whole grid, used before the
// first slide of an episode.
var placementEdges = [5][]int{
	threes.DirUp:    {12, 13, 14, 15},
	threes.DirRight: {0, 4, 8, 12},
	threes.DirDown:  {0, 1, 2, 3},
	threes.DirLeft:  {3, 7, 11, 15},
	threes.NoSlide:  {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
}

// RandomPlacer is the environment role: it drops the announced tile on
// a uniformly random free cell of the entry edge and draws the next
// hint from the 1-2-3 bag.
type RandomPlacer struct {
	randomized
}

// NewRandomPlacer builds a placer from its key=value configuration.
// Recognized keys: seed, plus the shared name/role defaults.
func NewRandomPlacer(args string) *RandomPlacer {
	return &RandomPlacer{newRandomized("name=place role=placer " + args)}
}

// Decide places the outstanding hint (or, on the opening placement, a
// fresh bag draw) on a random free entry-edge cell and announces the
// next hint. Returns the null action when the entry edge is full.
func (a *RandomPlacer) Decide(b *threes.Board) threes.Action {
	edge := append([]int(nil), placementEdges[b.Last()]...)
	a.rng.Shuffle(len(edge), func(i, j int) { edge[i], edge[j] = edge[j], edge[i] })

	for _, pos := range edge {
		if b.At(pos) != 0 {
			continue
		}

		var bag []threes.Cell
		for t := threes.Cell(1); t <= 3; t++ {
			for i := uint8(0); i < b.BagCount(t); i++ {
				bag = append(bag, t)
			}
		}
		a.rng.Shuffle(len(bag), func(i, j int) { bag[i], bag[j] = bag[j], bag[i] })

		tile := b.Hint()
		if tile == 0 {
			// Opening placement: no hint has been announced yet.
			tile = bag[len(bag)-1]
			bag = bag[:len(bag)-1]
		}
		hint := bag[len(bag)-1]
		return threes.PlaceAction(pos, tile, hint)
	}
	return threes.Action{}
}

// RandomSlider is the baseline player: it slides in a uniformly random
// legal direction.
type RandomSlider struct {
	randomized
}

// NewRandomSlider builds a slider from its key=value configuration.
// Recognized keys: seed, plus the shared name/role defaults.
func NewRandomSlider(args string) *RandomSlider {
	return &RandomSlider{newRandomized("name=slide role=slider " + args)}
}

// Decide returns a random legal slide, or the null action when every
// direction is illegal.
func (a *RandomSlider) Decide(b *threes.Board) threes.Action {
	dirs := []threes.Direction{threes.DirUp, threes.DirRight, threes.DirDown, threes.DirLeft}
	a.rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })

	for _, d := range dirs {
		tmp := *b
		if tmp.Slide(d) != threes.IllegalReward {
			return threes.SlideAction(d)
		}
	}
	return threes.Action{}
}
