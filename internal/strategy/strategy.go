// Package strategy holds the move-selection policies a mark can be
// bound to. The kind set is closed: construction goes through New and
// anything outside Kinds fails with apperror.ErrUnsupportedKind.
package strategy

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/gridmind/internal/apperror"
	"github.com/rocketscienceinc/gridmind/internal/entity"
)

const (
	KindHuman     = "human"
	KindRandom    = "random"
	KindHeuristic = "heuristic"
	KindMinimax   = "minimax"
)

// Kinds - every valid strategy kind, in the order reported on
// construction failures.
var Kinds = []string{KindHuman, KindRandom, KindHeuristic, KindMinimax}

// Strategy - a move-selection policy bound to one mark. Implementations
// are stateless with respect to game progress: Decide always computes
// from the state it is handed and never mutates it.
type Strategy interface {
	Kind() string
	Name() string
	Mark() entity.Mark
	Decide(state *entity.GameState) (entity.Position, error)
}

// Options - construction parameters; zero values pick sane defaults.
type Options struct {
	// MaxDepth bounds the minimax search in plies; 0 means the whole game.
	MaxDepth int
	// Rand is the random source for the random strategy; nil seeds from
	// the clock.
	Rand *rand.Rand
}

// New - constructs a strategy of the given kind for mark.
func New(kind string, mark entity.Mark, opts Options) (Strategy, error) {
	switch kind {
	case KindHuman:
		return NewHuman(mark), nil
	case KindRandom:
		return NewRandom(mark, opts.Rand), nil
	case KindHeuristic:
		return NewHeuristic(mark), nil
	case KindMinimax:
		return NewMinimax(mark, opts.MaxDepth), nil
	default:
		return nil, fmt.Errorf("%w: %q (valid kinds: %v)", apperror.ErrUnsupportedKind, kind, Kinds)
	}
}
