package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrNoLegalMoves      = errors.New("no legal moves available")
	ErrHumanMoveRequired = errors.New("human move requires external input")
	ErrUnsupportedKind   = errors.New("unsupported strategy kind")
)
