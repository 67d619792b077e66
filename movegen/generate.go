package movegen

import (
	"github.com/garlicgarrison/pawn-ai/board"
)

const (
	BlackPawn      = 'p'
	blackStartRank = 1
)

/*
	Returns every pseudo-legal move of the black pawns on the board, scanning
	rows 0..7 and columns 0..7. Per pawn the order is single step, double
	step, capture left, capture right. Other black pieces never move.
*/
func Generate(b board.Board) []Move {
	moves := make([]Move, 0)
	for row := 0; row < board.Size && row < len(b); row++ {
		for col := 0; col < board.Size && col < len(b[row]); col++ {
			if b[row][col] != BlackPawn {
				continue
			}

			moves = append(moves, pawnMoves(b, row, col)...)
		}
	}

	return moves
}

func pawnMoves(b board.Board, row, col int) []Move {
	moves := make([]Move, 0, 4)
	from := Position{row, col}

	if b.IsEmpty(row+1, col) {
		moves = append(moves, Move{From: from, To: Position{row + 1, col}})

		// double step needs both squares in front empty
		if row == blackStartRank && b.IsEmpty(row+2, col) {
			moves = append(moves, Move{From: from, To: Position{row + 2, col}})
		}
	}

	for _, dc := range []int{-1, 1} {
		target, ok := b.At(row+1, col+dc)
		if ok && board.IsWhite(target) {
			moves = append(moves, Move{From: from, To: Position{row + 1, col + dc}})
		}
	}

	return moves
}
