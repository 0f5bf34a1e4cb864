package strategy

import (
	"math/rand"
	"time"

	"github.com/rocketscienceinc/gridmind/internal/apperror"
	"github.com/rocketscienceinc/gridmind/internal/entity"
)

type randomStrategy struct {
	mark entity.Mark
	rng  *rand.Rand
}

// NewRandom - picks uniformly among the empty cells. A nil rng seeds
// from the clock; tests inject a fixed-seed source instead.
func NewRandom(mark entity.Mark, rng *rand.Rand) Strategy {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // game moves, not crypto
	}

	return &randomStrategy{
		mark: mark,
		rng:  rng,
	}
}

func (that *randomStrategy) Kind() string { return KindRandom }

func (that *randomStrategy) Name() string { return "Random" }

func (that *randomStrategy) Mark() entity.Mark { return that.mark }

func (that *randomStrategy) Decide(state *entity.GameState) (entity.Position, error) {
	empty := state.Board.EmptyPositions()
	if len(empty) == 0 {
		return entity.Position{}, apperror.ErrNoLegalMoves
	}

	return empty[that.rng.Intn(len(empty))], nil
}
