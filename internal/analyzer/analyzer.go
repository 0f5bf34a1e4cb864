// Package analyzer classifies candidate moves for the heuristic layer:
// immediate wins, blocks of opponent wins, and forks.
package analyzer

import "github.com/rocketscienceinc/gridmind/internal/entity"

// MoveAnalysis - the tactical profile of placing the current player's
// mark at Position. WinInTurns is 1 for an immediately winning move and
// 0 when the move does not win; no deeper forced-win search is done.
type MoveAnalysis struct {
	Position           entity.Position `json:"position"`
	WinInTurns         int             `json:"win_in_turns,omitempty"`
	BlocksOpponentWin  bool            `json:"blocks_opponent_win"`
	CreatesFork        bool            `json:"creates_fork"`
	BlocksOpponentFork bool            `json:"blocks_opponent_fork"`
}

// IsWinning - true when the move completes a line for the mover.
func (that MoveAnalysis) IsWinning() bool {
	return that.WinInTurns > 0
}

// AnalyzeMove - classifies a single candidate move. All simulation
// happens on value copies; the shared board is never touched.
func AnalyzeMove(state *entity.GameState, pos entity.Position) MoveAnalysis {
	mover := state.CurrentPlayer
	opponent := mover.Opponent()

	analysis := MoveAnalysis{Position: pos}

	moverBoard := state.Board
	moverBoard.Place(pos, mover)
	if moverBoard.WinnerMark() == mover {
		analysis.WinInTurns = 1
	}

	opponentBoard := state.Board
	opponentBoard.Place(pos, opponent)
	analysis.BlocksOpponentWin = opponentBoard.WinnerMark() == opponent

	analysis.CreatesFork = countThreatLines(&moverBoard, mover) >= 2
	analysis.BlocksOpponentFork = countThreatLines(&opponentBoard, opponent) >= 2

	return analysis
}

// AnalyzeMoves - classifies every empty position in row-major order.
// The order matters: it is the tie-break for strategy selection.
func AnalyzeMoves(state *entity.GameState) []MoveAnalysis {
	empty := state.Board.EmptyPositions()

	analyses := make([]MoveAnalysis, 0, len(empty))
	for _, pos := range empty {
		analyses = append(analyses, AnalyzeMove(state, pos))
	}
	return analyses
}

// countThreatLines - lines one move from completion for mark: exactly
// two of mark's cells and one empty cell. Two or more after a move is a
// fork, since a single reply can only close one of them.
func countThreatLines(board *entity.Board, mark entity.Mark) int {
	count := 0
	for _, combo := range entity.WinCombos {
		var owned, empty int
		for _, idx := range combo {
			pos := entity.PositionFromIndex(idx)
			switch board.At(pos) {
			case mark:
				owned++
			case entity.EmptyCell:
				empty++
			}
		}
		if owned == 2 && empty == 1 {
			count++
		}
	}
	return count
}
