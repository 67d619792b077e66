package game

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"sync"

	"github.com/garlicgarrison/pawn-ai/board"
	"github.com/garlicgarrison/pawn-ai/movegen"
	"github.com/garlicgarrison/pawn-ai/policy"
	"github.com/google/uuid"
)

var (
	ErrNoHistory   = errors.New("no moves to undo")
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over")
)

type Side int8

const (
	White Side = 0
	Black Side = 1
)

func (s Side) String() string {
	if s == White {
		return "White"
	}
	return "Black"
}

func (s Side) owns(piece rune) bool {
	if s == White {
		return board.IsWhite(piece)
	}
	return board.IsBlack(piece)
}

type Outcome int8

const (
	NoOutcome Outcome = iota
	WhiteWon
	BlackWon
)

func (o Outcome) String() string {
	switch o {
	case WhiteWon:
		return "White wins! Black king was captured."
	case BlackWon:
		return "Black wins! White king was captured."
	default:
		return "*"
	}
}

type Record struct {
	Move     movegen.Move `json:"-"`
	Notation string       `json:"move"`
	Captured string       `json:"captured,omitempty"`
	Side     string       `json:"side"`
}

type Game struct {
	ID         string
	Difficulty policy.Difficulty

	board    board.Board
	turn     Side
	history  []Record
	selector *policy.Selector
	mutex    sync.Mutex
}

func NewGame(difficulty policy.Difficulty, selector *policy.Selector) *Game {
	return &Game{
		ID:         uuid.NewString(),
		Difficulty: difficulty,
		board:      board.Initial(),
		turn:       White,
		history:    []Record{},
		selector:   selector,
	}
}

// Board returns a copy of the current position.
func (g *Game) Board() board.Board {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	return g.board.Clone()
}

func (g *Game) Turn() Side {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	return g.turn
}

/*
	Applies m for the side to move. The origin has to hold one of that side's
	pieces and the destination must not; nothing else about the move is checked.
*/
func (g *Game) Move(m movegen.Move) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	return g.move(m)
}

func (g *Game) move(m movegen.Move) error {
	if outcome(g.board) != NoOutcome {
		return ErrGameOver
	}

	piece, ok := g.board.At(m.From.Row, m.From.Col)
	if !ok || !g.turn.owns(piece) {
		return ErrIllegalMove
	}
	target, ok := g.board.At(m.To.Row, m.To.Col)
	if !ok || g.turn.owns(target) {
		return ErrIllegalMove
	}

	g.board[m.To.Row][m.To.Col] = piece
	g.board[m.From.Row][m.From.Col] = board.Empty

	rec := Record{
		Move:     m,
		Notation: m.String(),
		Side:     g.turn.String(),
	}
	if target != board.Empty {
		rec.Captured = string(target)
	}
	g.history = append(g.history, rec)
	g.turn = 1 - g.turn

	return nil
}

// Undo reverts the last move and gives back any captured piece.
func (g *Game) Undo() (Record, error) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if len(g.history) == 0 {
		return Record{}, ErrNoHistory
	}

	rec := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	m := rec.Move
	g.board[m.From.Row][m.From.Col] = g.board[m.To.Row][m.To.Col]
	g.board[m.To.Row][m.To.Col] = board.Empty
	if rec.Captured != "" {
		g.board[m.To.Row][m.To.Col] = []rune(rec.Captured)[0]
	}
	g.turn = 1 - g.turn

	return rec, nil
}

// AIMove picks a black pawn move with the game's difficulty and plays it.
func (g *Game) AIMove() (movegen.Move, error) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if g.turn != Black {
		return movegen.Move{}, ErrIllegalMove
	}

	moves := movegen.Generate(g.board)
	m, err := g.selector.Choose(g.board, moves, g.Difficulty)
	if err != nil {
		return movegen.Move{}, err
	}

	if err := g.move(m); err != nil {
		return movegen.Move{}, err
	}

	log.Printf("game %s: AI (%s) played %s", g.ID, g.Difficulty, m)
	return m, nil
}

func (g *Game) Outcome() Outcome {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	return outcome(g.board)
}

func outcome(b board.Board) Outcome {
	if b.Count('K') == 0 {
		return BlackWon
	}
	if b.Count('k') == 0 {
		return WhiteWon
	}
	return NoOutcome
}

type History struct {
	ID         string   `json:"id"`
	Difficulty string   `json:"difficulty"`
	Result     string   `json:"result"`
	Moves      []Record `json:"moves"`
}

func (g *Game) History() History {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	moves := make([]Record, len(g.history))
	copy(moves, g.history)

	return History{
		ID:         g.ID,
		Difficulty: string(g.Difficulty),
		Result:     outcome(g.board).String(),
		Moves:      moves,
	}
}

func (g *Game) WriteHistory(path string) error {
	b, err := json.MarshalIndent(g.History(), "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, 0644)
}
