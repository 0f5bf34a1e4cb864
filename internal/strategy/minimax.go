package strategy

import (
	"math"

	"github.com/rocketscienceinc/gridmind/internal/apperror"
	"github.com/rocketscienceinc/gridmind/internal/entity"
)

// DefaultMaxDepth - enough plies to search any 3x3 game to the end.
const DefaultMaxDepth = 9

// winScore - base terminal score; remaining depth is added on top so
// faster wins (and slower losses) score better.
const winScore = 10

type minimaxStrategy struct {
	mark     entity.Mark
	maxDepth int
}

// NewMinimax - exhaustive game-tree search with alpha-beta pruning.
// maxDepth <= 0 falls back to DefaultMaxDepth.
func NewMinimax(mark entity.Mark, maxDepth int) Strategy {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	return &minimaxStrategy{
		mark:     mark,
		maxDepth: maxDepth,
	}
}

func (that *minimaxStrategy) Kind() string { return KindMinimax }

func (that *minimaxStrategy) Name() string { return "Minimax" }

func (that *minimaxStrategy) Mark() entity.Mark { return that.mark }

func (that *minimaxStrategy) Decide(state *entity.GameState) (entity.Position, error) {
	empty := state.Board.EmptyPositions()
	if len(empty) == 0 {
		return entity.Position{}, apperror.ErrNoLegalMoves
	}

	// Opening shortcut: the center is a known best first move, no point
	// searching 9! positions to rediscover it.
	if state.Board.IsEmpty() {
		return entity.Position{Row: 1, Col: 1}, nil
	}

	mover := state.CurrentPlayer

	bestScore := math.MinInt
	var bestPos entity.Position
	alpha, beta := math.MinInt, math.MaxInt

	for _, pos := range empty {
		board := state.Board
		board.Place(pos, mover)

		score := that.search(&board, mover, mover.Opponent(), that.maxDepth-1, alpha, beta)
		if score > bestScore {
			bestScore = score
			bestPos = pos
		}
		if bestScore > alpha {
			alpha = bestScore
		}
	}

	return bestPos, nil
}

// search - scores a board from the mover's perspective. turn is the
// mark to place next; the node maximizes when turn == mover. All
// recursion happens on stack copies of the board.
func (that *minimaxStrategy) search(board *entity.Board, mover, turn entity.Mark, depth, alpha, beta int) int {
	switch winner := board.WinnerMark(); {
	case winner == mover:
		return winScore + depth
	case winner != entity.EmptyCell:
		return -winScore - depth
	}

	if depth == 0 || board.IsFull() {
		return 0
	}

	if turn == mover {
		best := math.MinInt
		for _, pos := range board.EmptyPositions() {
			next := *board
			next.Place(pos, turn)

			if score := that.search(&next, mover, turn.Opponent(), depth-1, alpha, beta); score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := math.MaxInt
	for _, pos := range board.EmptyPositions() {
		next := *board
		next.Place(pos, turn)

		if score := that.search(&next, mover, turn.Opponent(), depth-1, alpha, beta); score < best {
			best = score
		}
		if best < beta {
			beta = best
		}
		if beta <= alpha {
			break
		}
	}
	return best
}
