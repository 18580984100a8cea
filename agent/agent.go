// Package agent implements the decision-making roles for Threes!: the
// uniformly random placer and slider baselines, and the TD-learning
// slider that trains an N-tuple value network from self-play.
package agent

import (
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"threes"
)

// Agent is the capability every role implements: inspect a board and
// produce an action. The roles (RandomPlacer, RandomSlider, Learner)
// form a closed set fixed at configuration time.
type Agent interface {
	// Decide returns the agent's move for b, or the null action when
	// no legal move exists (the episode-end signal).
	Decide(b *threes.Board) threes.Action
	// OpenEpisode and CloseEpisode bracket one episode for agents that
	// keep per-episode state.
	OpenEpisode(flag string)
	CloseEpisode(flag string)
	// Notify pushes one out-of-band key=value pair into the agent's
	// configuration table.
	Notify(msg string)
	Name() string
	Role() string
}

// base carries the configuration table and identity shared by every role.
type base struct {
	props Properties
	id    uuid.UUID
	log   *logrus.Entry
}

func newBase(args string) base {
	p := ParseProperties(args)
	id := uuid.New()
	return base{
		props: p,
		id:    id,
		log: logrus.WithFields(logrus.Fields{
			"agent": p.String("name"),
			"role":  p.String("role"),
			"id":    id,
		}),
	}
}

func (b *base) OpenEpisode(flag string)  {}
func (b *base) CloseEpisode(flag string) {}
func (b *base) Notify(msg string)        { b.props.Notify(msg) }
func (b *base) Name() string             { return b.props.String("name") }
func (b *base) Role() string             { return b.props.String("role") }

// randomized extends base with a seedable RNG for the baseline roles.
// Without a seed key the generator starts from a fixed state, so the
// default behavior is reproducible.
type randomized struct {
	base
	rng *rand.Rand
}

func newRandomized(args string) randomized {
	b := newBase(args)
	seed := uint64(b.props.Int("seed", 0))
	return randomized{base: b, rng: rand.New(rand.NewPCG(seed, seed))}
}
