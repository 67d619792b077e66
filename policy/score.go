package policy

import (
	"math"

	chess "github.com/garlicgarrison/go-chess"
	"github.com/garlicgarrison/pawn-ai/board"
	"github.com/garlicgarrison/pawn-ai/movegen"
)

/*
	Weights used by the hard policy on top of the capture value
*/
const (
	// Any move that advances the pawn
	ForwardBonus = 0.1
	// Per file step toward the center
	CenterFileWeight = 0.05
)

var PieceValueMap = map[chess.PieceType]int{
	chess.Pawn:   1,
	chess.Knight: 3,
	chess.Bishop: 3,
	chess.Rook:   5,
	chess.Queen:  9,
	chess.King:   100,
}

// PieceValue is case-insensitive; anything that is not a piece letter is 0.
func PieceValue(piece rune) int {
	return PieceValueMap[board.PieceType(piece)]
}

// CaptureValue is the value of whatever stands on the destination square.
func CaptureValue(b board.Board, m movegen.Move) int {
	target, ok := b.At(m.To.Row, m.To.Col)
	if !ok {
		return 0
	}

	return PieceValue(target)
}

// CenterBonus is the negated squared distance of the destination from the
// board center.
func CenterBonus(m movegen.Move) float64 {
	dr := float64(m.To.Row) - 3.5
	dc := float64(m.To.Col) - 3.5
	return -(dr*dr + dc*dc)
}

func HardScore(b board.Board, m movegen.Move) float64 {
	score := float64(CaptureValue(b, m))
	if m.To.Row > m.From.Row {
		score += ForwardBonus
	}
	score += (4 - math.Abs(3.5-float64(m.To.Col))) * CenterFileWeight

	return score
}
