package policy

import (
	"errors"
	"math/rand"
	"sort"
	"strings"

	"github.com/garlicgarrison/pawn-ai/board"
	"github.com/garlicgarrison/pawn-ai/movegen"
)

var (
	ErrNoMoves = errors.New("no valid moves available")
)

type Difficulty string

const (
	EASY   Difficulty = "easy"
	MEDIUM Difficulty = "medium"
	HARD   Difficulty = "hard"
)

// LookupDifficulty matches a label case-insensitively.
func LookupDifficulty(label string) (Difficulty, bool) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(label))); d {
	case EASY, MEDIUM, HARD:
		return d, true
	default:
		return EASY, false
	}
}

// ParseDifficulty is LookupDifficulty with unknown labels played as easy.
func ParseDifficulty(label string) Difficulty {
	d, _ := LookupDifficulty(label)
	return d
}

type Selector struct {
	rng *rand.Rand
}

func NewSelector(rng *rand.Rand) *Selector {
	return &Selector{
		rng: rng,
	}
}

func (s *Selector) Choose(b board.Board, moves []movegen.Move, d Difficulty) (movegen.Move, error) {
	if len(moves) == 0 {
		return movegen.Move{}, ErrNoMoves
	}

	switch d {
	case MEDIUM:
		return chooseMedium(b, moves), nil
	case HARD:
		return chooseHard(b, moves), nil
	default:
		return s.chooseRandom(moves), nil
	}
}

func (s *Selector) chooseRandom(moves []movegen.Move) movegen.Move {
	return moves[s.rng.Intn(len(moves))]
}

// best capture first, then closest to the center; generation order on ties
func chooseMedium(b board.Board, moves []movegen.Move) movegen.Move {
	ranked := make([]movegen.Move, len(moves))
	copy(ranked, moves)

	sort.SliceStable(ranked, func(i, j int) bool {
		vi, vj := CaptureValue(b, ranked[i]), CaptureValue(b, ranked[j])
		if vi != vj {
			return vi > vj
		}
		return CenterBonus(ranked[i]) > CenterBonus(ranked[j])
	})

	return ranked[0]
}

func chooseHard(b board.Board, moves []movegen.Move) movegen.Move {
	best := moves[0]
	bestScore := HardScore(b, best)
	for _, m := range moves[1:] {
		score := HardScore(b, m)
		if score > bestScore {
			best = m
			bestScore = score
		}
	}

	return best
}
