package strategy

import (
	"github.com/rocketscienceinc/gridmind/internal/analyzer"
	"github.com/rocketscienceinc/gridmind/internal/apperror"
	"github.com/rocketscienceinc/gridmind/internal/entity"
)

type heuristicStrategy struct {
	mark entity.Mark
}

// NewHeuristic - greedy single-ply policy over the move analyzer:
// take a win, block a win, make a fork, block a fork, else the first
// open cell in row-major order. Deliberately non-exhaustive; it can be
// beaten by a deeper-searching opponent.
func NewHeuristic(mark entity.Mark) Strategy {
	return &heuristicStrategy{mark: mark}
}

func (that *heuristicStrategy) Kind() string { return KindHeuristic }

func (that *heuristicStrategy) Name() string { return "Heuristic" }

func (that *heuristicStrategy) Mark() entity.Mark { return that.mark }

func (that *heuristicStrategy) Decide(state *entity.GameState) (entity.Position, error) {
	analyses := analyzer.AnalyzeMoves(state)
	if len(analyses) == 0 {
		return entity.Position{}, apperror.ErrNoLegalMoves
	}

	// Each tier keeps the analyzer's row-major order, so the first
	// match within a tier wins.
	if pos, ok := fastestWin(analyses); ok {
		return pos, nil
	}

	for _, tier := range []func(analyzer.MoveAnalysis) bool{
		func(a analyzer.MoveAnalysis) bool { return a.BlocksOpponentWin },
		func(a analyzer.MoveAnalysis) bool { return a.CreatesFork },
		func(a analyzer.MoveAnalysis) bool { return a.BlocksOpponentFork },
	} {
		for _, analysis := range analyses {
			if tier(analysis) {
				return analysis.Position, nil
			}
		}
	}

	return analyses[0].Position, nil
}

// fastestWin - the first move with the smallest WinInTurns among the
// winning candidates.
func fastestWin(analyses []analyzer.MoveAnalysis) (entity.Position, bool) {
	best := -1
	var bestPos entity.Position

	for _, analysis := range analyses {
		if !analysis.IsWinning() {
			continue
		}
		if best == -1 || analysis.WinInTurns < best {
			best = analysis.WinInTurns
			bestPos = analysis.Position
		}
	}

	return bestPos, best != -1
}
