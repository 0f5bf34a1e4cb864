// Package tictactoe drives one game: a single state machine plus the
// two strategies bound to X and O.
package tictactoe

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/rocketscienceinc/gridmind/internal/analyzer"
	"github.com/rocketscienceinc/gridmind/internal/apperror"
	"github.com/rocketscienceinc/gridmind/internal/entity"
	"github.com/rocketscienceinc/gridmind/internal/grid"
	"github.com/rocketscienceinc/gridmind/internal/strategy"
)

var ErrMarkMismatch = errors.New("strategy is bound to the wrong mark")

// GameController - orchestrates a single game. Not safe for concurrent
// use: each instance belongs to one logical game and callers must
// serialize plies against it.
type GameController struct {
	state      *entity.GameState
	strategies map[entity.Mark]strategy.Strategy
}

// NewGameController - wires a fresh game to the X and O strategies.
func NewGameController(xStrategy, oStrategy strategy.Strategy) (*GameController, error) {
	if xStrategy.Mark() != entity.PlayerX {
		return nil, fmt.Errorf("%w: %s carries %s", ErrMarkMismatch, xStrategy.Name(), xStrategy.Mark())
	}
	if oStrategy.Mark() != entity.PlayerO {
		return nil, fmt.Errorf("%w: %s carries %s", ErrMarkMismatch, oStrategy.Name(), oStrategy.Mark())
	}

	return &GameController{
		state: entity.NewGameState(),
		strategies: map[entity.Mark]strategy.Strategy{
			entity.PlayerX: xStrategy,
			entity.PlayerO: oStrategy,
		},
	}, nil
}

// State - a deep, independent snapshot; mutating it never affects the
// controller.
func (that *GameController) State() *entity.GameState {
	return that.state.Clone()
}

// StrategyFor - the strategy bound to mark.
func (that *GameController) StrategyFor(mark entity.Mark) strategy.Strategy {
	return that.strategies[mark]
}

// AdvanceTurn - asks the current player's strategy for a move and
// applies it. Strategy failures propagate unchanged, including the
// human strategy's refusal to decide synchronously.
func (that *GameController) AdvanceTurn() (entity.Position, error) {
	if that.state.IsFinished() {
		return entity.Position{}, apperror.ErrGameFinished
	}

	current := that.strategies[that.state.CurrentPlayer]

	pos, err := current.Decide(that.state)
	if err != nil {
		return entity.Position{}, fmt.Errorf("%s (%s) failed to move: %w", current.Name(), current.Mark(), err)
	}

	if err = that.state.ApplyMove(pos); err != nil {
		return entity.Position{}, fmt.Errorf("%s (%s) produced an illegal move: %w", current.Name(), current.Mark(), err)
	}

	return pos, nil
}

// ApplyPosition - applies an externally supplied move for the current
// player, bypassing strategy consultation. This is the only move path
// for human-bound marks. Illegal moves report false and change nothing.
func (that *GameController) ApplyPosition(pos entity.Position) bool {
	return that.state.ApplyMove(pos) == nil
}

// AvailablePositions - the legal targets, row-major.
func (that *GameController) AvailablePositions() []entity.Position {
	return that.state.Board.EmptyPositions()
}

// AnalyzeMoves - per-move tactical analysis, recomputed on demand.
func (that *GameController) AnalyzeMoves() []analyzer.MoveAnalysis {
	return analyzer.AnalyzeMoves(that.state)
}

// BestMoves - the analysis list ranked: fastest wins first (moves that
// do not win last), then blocks of opponent wins, then forks. Ties keep
// the analyzer's row-major order.
func (that *GameController) BestMoves() []analyzer.MoveAnalysis {
	ranked := that.AnalyzeMoves()

	sort.SliceStable(ranked, func(i, j int) bool {
		if ri, rj := winRank(ranked[i]), winRank(ranked[j]); ri != rj {
			return ri < rj
		}
		if ranked[i].BlocksOpponentWin != ranked[j].BlocksOpponentWin {
			return ranked[i].BlocksOpponentWin
		}
		if ranked[i].CreatesFork != ranked[j].CreatesFork {
			return ranked[i].CreatesFork
		}
		return false
	})

	return ranked
}

// winRank - sort key for WinInTurns; moves that do not win rank after
// every winning move.
func winRank(analysis analyzer.MoveAnalysis) int {
	if !analysis.IsWinning() {
		return math.MaxInt
	}
	return analysis.WinInTurns
}

// IsFinished - true once the game reached Won or Draw.
func (that *GameController) IsFinished() bool {
	return that.state.IsFinished()
}

// Winner - the winning mark, or ok=false while playing or on a draw.
func (that *GameController) Winner() (entity.Mark, bool) {
	if that.state.Winner == entity.EmptyCell {
		return entity.EmptyCell, false
	}
	return that.state.Winner, true
}

// Reset - starts the game over with the same strategy bindings.
func (that *GameController) Reset() {
	that.state.Reset()
}

// History - the chronological move log as "X: A1, O: B2, X: C3".
func (that *GameController) History() string {
	parts := make([]string, 0, len(that.state.Moves))
	for _, move := range that.state.Moves {
		parts = append(parts, fmt.Sprintf("%s: %s", move.Player, grid.FormatPosition(move.Position)))
	}
	return strings.Join(parts, ", ")
}
