package board

import (
	"errors"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	Size  = 8
	Empty = '.'
)

var (
	ErrNoSquare = errors.New("square not on board")
)

var initialRows = []string{
	"rnbqkbnr",
	"pppppppp",
	"........",
	"........",
	"........",
	"........",
	"PPPPPPPP",
	"RNBQKBNR",
}

// Board is the grid as read from a board file. Row 0 is rank 8 and
// column 0 is file a. Only lines of exactly Size characters become rows, so a
// malformed file can leave fewer (or more) than Size rows.
type Board [][]rune

func Initial() Board {
	b := make(Board, 0, Size)
	for _, row := range initialRows {
		b = append(b, []rune(row))
	}
	return b
}

/*
	Reads a board file. Every line is trimmed and only lines with exactly
	8 characters are kept, in order.
*/
func Load(path string) (Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(string(data)), nil
}

func Parse(text string) Board {
	b := Board{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if utf8.RuneCountInString(line) != Size {
			continue
		}

		b = append(b, []rune(line))
	}

	return b
}

// OnBoard reports whether (row, col) is a square of the loaded grid.
func (b Board) OnBoard(row, col int) bool {
	return row >= 0 && row < Size && row < len(b) &&
		col >= 0 && col < Size && col < len(b[row])
}

func (b Board) At(row, col int) (rune, bool) {
	if !b.OnBoard(row, col) {
		return 0, false
	}

	return b[row][col], true
}

func (b Board) IsEmpty(row, col int) bool {
	piece, ok := b.At(row, col)
	return ok && piece == Empty
}

func (b Board) Set(row, col int, piece rune) error {
	if !b.OnBoard(row, col) {
		return ErrNoSquare
	}

	b[row][col] = piece
	return nil
}

func (b Board) Clone() Board {
	clone := make(Board, len(b))
	for i, row := range b {
		clone[i] = append([]rune(nil), row...)
	}

	return clone
}

// Count returns how many squares hold piece.
func (b Board) Count(piece rune) int {
	n := 0
	for _, row := range b {
		for _, p := range row {
			if p == piece {
				n++
			}
		}
	}

	return n
}

func (b Board) String() string {
	var sb strings.Builder
	for _, row := range b {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}

	return sb.String()
}

// Save writes the board one row per line, the format Load reads back.
func (b Board) Save(path string) error {
	return os.WriteFile(path, []byte(b.String()), 0644)
}

func IsWhite(piece rune) bool {
	return unicode.IsUpper(piece)
}

func IsBlack(piece rune) bool {
	return unicode.IsLower(piece)
}
