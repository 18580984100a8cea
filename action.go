package threes

// ActionKind tags the closed set of actions an agent can produce.
type ActionKind uint8

const (
	// ActionNone is the null action: the agent found no legal move,
	// which signals the end of the episode to the hosting loop.
	ActionNone ActionKind = iota
	// ActionSlide moves every tile one step in a direction.
	ActionSlide
	// ActionPlace drops a tile on an empty cell and announces the next hint.
	ActionPlace
)

// Action is a tagged move value. The zero value is the null action.
type Action struct {
	Kind ActionKind
	Dir  Direction // ActionSlide
	Pos  int       // ActionPlace: linear cell position
	Tile Cell      // ActionPlace: rank of the placed tile
	Hint Cell      // ActionPlace: rank of the next announced tile
}

// SlideAction builds a slide in direction d.
func SlideAction(d Direction) Action {
	return Action{Kind: ActionSlide, Dir: d}
}

// PlaceAction builds a placement of tile at pos with hint announced next.
func PlaceAction(pos int, tile, hint Cell) Action {
	return Action{Kind: ActionPlace, Pos: pos, Tile: tile, Hint: hint}
}

// IsNone reports whether a is the null action.
func (a Action) IsNone() bool { return a.Kind == ActionNone }

// Apply executes the action against b and returns the board's reward.
// Applying the null action returns IllegalReward.
func (a Action) Apply(b *Board) Reward {
	switch a.Kind {
	case ActionSlide:
		return b.Slide(a.Dir)
	case ActionPlace:
		return b.Place(a.Pos, a.Tile, a.Hint)
	default:
		return IllegalReward
	}
}
