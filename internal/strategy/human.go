package strategy

import (
	"fmt"

	"github.com/rocketscienceinc/gridmind/internal/apperror"
	"github.com/rocketscienceinc/gridmind/internal/entity"
)

type humanStrategy struct {
	mark entity.Mark
}

// NewHuman - carries identity only. A human's moves arrive through the
// engine's direct-apply path; asking this strategy to decide a move
// synchronously is a caller bug and fails immediately.
func NewHuman(mark entity.Mark) Strategy {
	return &humanStrategy{mark: mark}
}

func (that *humanStrategy) Kind() string { return KindHuman }

func (that *humanStrategy) Name() string { return "Human" }

func (that *humanStrategy) Mark() entity.Mark { return that.mark }

func (that *humanStrategy) Decide(_ *entity.GameState) (entity.Position, error) {
	return entity.Position{}, fmt.Errorf("%w: mark %s", apperror.ErrHumanMoveRequired, that.mark)
}
