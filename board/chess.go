package board

import (
	chess "github.com/garlicgarrison/go-chess"
)

var LetterToPiece = map[rune]chess.Piece{
	'K': chess.WhiteKing,
	'Q': chess.WhiteQueen,
	'R': chess.WhiteRook,
	'B': chess.WhiteBishop,
	'N': chess.WhiteKnight,
	'P': chess.WhitePawn,
	'k': chess.BlackKing,
	'q': chess.BlackQueen,
	'r': chess.BlackRook,
	'b': chess.BlackBishop,
	'n': chess.BlackKnight,
	'p': chess.BlackPawn,
}

// PieceType is the kind of piece a letter names, regardless of color.
func PieceType(piece rune) chess.PieceType {
	p, ok := LetterToPiece[piece]
	if !ok {
		return chess.NoPieceType
	}

	return p.Type()
}

// Square maps grid coordinates to the chess square they stand for.
func Square(row, col int) chess.Square {
	return chess.NewSquare(chess.File(col), chess.Rank(Size-1-row))
}

// Coords is the inverse of Square.
func Coords(sq chess.Square) (int, int) {
	return Size - 1 - int(sq.Rank()), int(sq.File())
}

// Chess converts the grid to a go-chess board. Unknown letters are dropped.
func (b Board) Chess() *chess.Board {
	squares := make(map[chess.Square]chess.Piece)
	for i, row := range b {
		if i >= Size {
			break
		}

		for j, piece := range row {
			p, ok := LetterToPiece[piece]
			if !ok {
				continue
			}

			squares[Square(i, j)] = p
		}
	}

	return chess.NewBoard(squares)
}

// FEN returns the piece placement field for the board.
func (b Board) FEN() string {
	return b.Chess().String()
}

func (b Board) Draw() string {
	return b.Chess().Draw()
}
