package entity

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

const (
	boardSize = 3
	cellCount = boardSize * boardSize
)

// WinCombos - the 8 winning lines of a 3x3 board as flat cell indexes.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Mark - a player's symbol on the board.
type Mark string

// Opponent - the other player's mark; empty stays empty.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

// Position - a (row, col) pair, each in [0,2].
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Position) Valid() bool {
	return that.Row >= 0 && that.Row < boardSize && that.Col >= 0 && that.Col < boardSize
}

// Index - the flat row-major cell index.
func (that Position) Index() int {
	return that.Row*boardSize + that.Col
}

// PositionFromIndex - inverse of Position.Index.
func PositionFromIndex(idx int) Position {
	return Position{Row: idx / boardSize, Col: idx % boardSize}
}

// Board - 9 cells stored row-major; the zero value is an empty board.
type Board [cellCount]Mark

func (that *Board) At(pos Position) Mark {
	return that[pos.Index()]
}

func (that *Board) Place(pos Position, mark Mark) {
	that[pos.Index()] = mark
}

// WinnerMark - the mark fully occupying some line, or EmptyCell.
func (that *Board) WinnerMark() Mark {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}
	return EmptyCell
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}
	return true
}

func (that *Board) IsEmpty() bool {
	for _, cell := range that {
		if cell != EmptyCell {
			return false
		}
	}
	return true
}

// EmptyPositions - all unoccupied positions in row-major order.
func (that *Board) EmptyPositions() []Position {
	positions := make([]Position, 0, cellCount)
	for idx, cell := range that {
		if cell == EmptyCell {
			positions = append(positions, PositionFromIndex(idx))
		}
	}
	return positions
}
