package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/gridmind/internal/apperror"
)

const (
	StatusPlaying = "playing"
	StatusWon     = "won"
	StatusDraw    = "draw"
)

var ErrInvalidPosition = errors.New("invalid board position")

// MoveRecord - one applied move; immutable once appended to the log.
type MoveRecord struct {
	Player   Mark      `json:"player"`
	Position Position  `json:"position"`
	Sequence int       `json:"sequence"`
	PlayedAt time.Time `json:"played_at"`
}

// GameState - the 3x3 board together with turn and outcome bookkeeping.
type GameState struct {
	Board         Board        `json:"board"`
	CurrentPlayer Mark         `json:"current_player"`
	Status        string       `json:"status"`
	Winner        Mark         `json:"winner,omitempty"`
	Moves         []MoveRecord `json:"moves"`
	TurnNumber    int          `json:"turn_number"`
}

// NewGameState - returns a fresh game with X to move.
func NewGameState() *GameState {
	return &GameState{
		CurrentPlayer: PlayerX,
		Status:        StatusPlaying,
	}
}

// ApplyMove - places the current player's mark at pos.
// Illegal moves leave the state untouched and report a sentinel error.
func (that *GameState) ApplyMove(pos Position) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !pos.Valid() {
		return fmt.Errorf("%w: %+v", ErrInvalidPosition, pos)
	}

	if that.Board.At(pos) != EmptyCell {
		return apperror.ErrCellOccupied
	}

	mover := that.CurrentPlayer
	that.Board.Place(pos, mover)
	that.Moves = append(that.Moves, MoveRecord{
		Player:   mover,
		Position: pos,
		Sequence: that.TurnNumber,
		PlayedAt: time.Now(),
	})
	that.TurnNumber++

	that.updateStatus(mover)

	return nil
}

// updateStatus - re-evaluates terminal conditions after a move. The turn
// only flips while the game is still running, so on a terminal board
// CurrentPlayer is left pointing at the mover.
func (that *GameState) updateStatus(mover Mark) {
	switch winner := that.Board.WinnerMark(); {
	case winner != EmptyCell:
		that.Winner = winner
		that.Status = StatusWon
	case that.Board.IsFull():
		that.Status = StatusDraw
	default:
		that.CurrentPlayer = mover.Opponent()
	}
}

// Reset - returns the game to the initial empty position.
func (that *GameState) Reset() {
	that.Board = Board{}
	that.CurrentPlayer = PlayerX
	that.Status = StatusPlaying
	that.Winner = EmptyCell
	that.Moves = nil
	that.TurnNumber = 0
}

// Clone - deep copy, safe to hand out or mutate independently.
func (that *GameState) Clone() *GameState {
	cloned := *that
	cloned.Moves = make([]MoveRecord, len(that.Moves))
	copy(cloned.Moves, that.Moves)
	return &cloned
}

func (that *GameState) IsPlaying() bool {
	return that.Status == StatusPlaying
}

func (that *GameState) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}
