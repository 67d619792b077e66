package movegen

import (
	"errors"
	"fmt"
	"os"
	"strings"

	chess "github.com/garlicgarrison/go-chess"
	"github.com/garlicgarrison/pawn-ai/board"
)

var (
	ErrInvalidNotation = errors.New("invalid move notation")
)

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) String() string {
	return board.Square(p.Row, p.Col).String()
}

type Move struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// String returns the move in coordinate notation, e.g. "e7e6".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

func onGrid(p Position) bool {
	return p.Row >= 0 && p.Row < board.Size && p.Col >= 0 && p.Col < board.Size
}

// Parse decodes 4-character coordinate notation.
func Parse(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	m, err := chess.UCINotation{}.Decode(nil, s)
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	r1, c1 := board.Coords(m.S1())
	r2, c2 := board.Coords(m.S2())
	move := Move{From: Position{r1, c1}, To: Position{r2, c2}}
	if !onGrid(move.From) || !onGrid(move.To) {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	return move, nil
}

// WriteFile overwrites path with the move notation, no trailing newline.
func WriteFile(path string, m Move) error {
	return os.WriteFile(path, []byte(m.String()), 0644)
}

// ReadFile reads the first token of a move file.
func ReadFile(path string) (Move, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Move{}, err
	}

	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return Move{}, fmt.Errorf("%w: empty move file", ErrInvalidNotation)
	}

	return Parse(fields[0])
}
