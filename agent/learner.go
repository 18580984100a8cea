package agent

import (
	"threes"
	"threes/ntuple"
)

// DefaultAlpha is the learning rate used when no alpha key is supplied.
const DefaultAlpha = 0.0125

// learnerPhase tags whether the learner carries an estimate awaiting
// its temporal-difference correction.
type learnerPhase uint8

const (
	phaseIdle    learnerPhase = iota // no carried estimate
	phaseDecided                     // pending holds the previous afterstate
)

// Learner is the TD(0) slider. Each turn it evaluates the four slides
// by one-ply afterstate lookahead (realized score delta plus the
// network's estimate of the resulting grid), picks the best, and
// corrects the previous turn's estimate toward that target. Learning
// runs one transition behind the acting policy.
type Learner struct {
	base
	net   *ntuple.Network
	alpha float32

	// Carried state: the previous decision's afterstate tuples and the
	// value predicted for them. Single-slot, overwritten every turn,
	// valid only between two consecutive decisions of one episode.
	phase    learnerPhase
	pending  ntuple.Tuples
	pendingV float32
}

// NewLearner builds the learning slider from its key=value
// configuration. Recognized keys: init (fresh zero tables),
// load=<path>, save=<path>, alpha=<learning rate>. A configured load
// path that cannot be read is fatal: training must never proceed from
// a partially initialized network.
func NewLearner(args string) *Learner {
	l := &Learner{base: newBase("name=learn role=slider " + args)}
	l.alpha = float32(l.props.Float("alpha", DefaultAlpha))

	if l.props.Has("load") {
		path := l.props.String("load")
		net, err := ntuple.Load(path)
		if err != nil {
			l.log.WithError(err).Fatal("load weights")
		}
		l.net = net
		l.log.WithField("path", path).Info("weights loaded")
	} else {
		l.net = ntuple.NewZero()
	}
	return l
}

// Decide evaluates the four directions in canonical order on private
// copies of b and returns the slide with the highest
// reward + estimate, keeping the first direction on ties. Before
// returning it applies the pending temporal-difference correction:
// toward the chosen target when a move exists, or toward zero when the
// position is dead (no further reward is possible).
func (l *Learner) Decide(b *threes.Board) threes.Action {
	var (
		best       threes.Action
		bestTarget float32
		bestGrid   threes.Grid
		found      bool
	)
	for d := threes.DirUp; d < threes.NumDirections; d++ {
		tmp := *b
		reward := tmp.Slide(d)
		if reward == threes.IllegalReward {
			continue
		}
		grid := tmp.Grid()
		target := float32(reward) + l.net.Estimate(ntuple.Extract(grid))
		// Strict improvement only: ties keep the lowest direction.
		if !found || target > bestTarget {
			found = true
			best = threes.SlideAction(d)
			bestTarget = target
			bestGrid = grid
		}
	}

	if !found {
		l.flush(0)
		return threes.Action{}
	}

	if l.phase == phaseDecided {
		l.net.Adjust(l.pending, l.alpha*(bestTarget-l.pendingV))
	}
	tuples := ntuple.Extract(bestGrid)
	l.pending = tuples
	// Re-read after the correction: the chosen afterstate can share
	// tuples with the one just adjusted.
	l.pendingV = l.net.Estimate(tuples)
	l.phase = phaseDecided
	return best
}

// flush applies the update rule with a fixed target and clears the
// carried state. Callers pass target zero at episode end: a dead
// position yields no further reward.
func (l *Learner) flush(target float32) {
	if l.phase != phaseDecided {
		return
	}
	l.net.Adjust(l.pending, l.alpha*(target-l.pendingV))
	l.phase = phaseIdle
}

// CloseEpisode flushes the carried estimate toward the terminal zero
// target. It is idempotent: once flushed, the learner is idle and a
// second call changes nothing.
func (l *Learner) CloseEpisode(flag string) { l.flush(0) }

// Close persists the network to the configured save path, if any.
// Call it once when the agent is retired. A path that cannot be
// written is fatal, mirroring the load policy.
func (l *Learner) Close() {
	if !l.props.Has("save") {
		return
	}
	path := l.props.String("save")
	if err := l.net.Save(path); err != nil {
		l.log.WithError(err).Fatal("save weights")
	}
	l.log.WithField("path", path).Info("weights saved")
}

// Alpha returns the configured learning rate.
func (l *Learner) Alpha() float32 { return l.alpha }

// Network exposes the value network, primarily for hosts that want to
// inspect training progress.
func (l *Learner) Network() *ntuple.Network { return l.net }
