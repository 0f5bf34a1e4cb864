// Package grid maps board positions to the human-readable "A1".."C3"
// references used at the input and rendering boundary.
package grid

import "github.com/rocketscienceinc/gridmind/internal/entity"

// FormatPosition - the column-letter plus row-number reference for pos,
// e.g. (0,0) -> "A1", (2,1) -> "B3".
func FormatPosition(pos entity.Position) string {
	return string([]byte{byte('A' + pos.Col), byte('1' + pos.Row)})
}

// ParseReference - parses a reference like "b2" into a position.
// Anything outside [A-Ca-c][1-3], including extra characters or
// whitespace, reports ok=false rather than an error.
func ParseReference(ref string) (entity.Position, bool) {
	if len(ref) != 2 {
		return entity.Position{}, false
	}

	col := ref[0]
	switch {
	case col >= 'A' && col <= 'C':
		col -= 'A'
	case col >= 'a' && col <= 'c':
		col -= 'a'
	default:
		return entity.Position{}, false
	}

	row := ref[1]
	if row < '1' || row > '3' {
		return entity.Position{}, false
	}

	return entity.Position{Row: int(row - '1'), Col: int(col)}, true
}
