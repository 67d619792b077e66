package board

import (
	"errors"
	"math/rand"
)

const MaxPieces = 30

var (
	ErrInvalidPieceConfig = errors.New("piece counts must be non-negative and add up to 30 or fewer")
)

// Piece counts for a random board, kings excluded; one king per side is
// always placed.
type PieceConfig struct {
	WhiteQ int `yaml:"white_q"`
	WhiteR int `yaml:"white_r"`
	WhiteB int `yaml:"white_b"`
	WhiteN int `yaml:"white_n"`
	WhiteP int `yaml:"white_p"`
	BlackQ int `yaml:"black_q"`
	BlackR int `yaml:"black_r"`
	BlackB int `yaml:"black_b"`
	BlackN int `yaml:"black_n"`
	BlackP int `yaml:"black_p"`
}

func DefaultPieceConfig() PieceConfig {
	return PieceConfig{
		WhiteQ: 1,
		WhiteR: 1,
		WhiteB: 1,
		WhiteN: 1,
		WhiteP: 4,
		BlackP: 6,
	}
}

type pieceCount struct {
	piece rune
	n     int
}

func (cfg PieceConfig) counts() []pieceCount {
	return []pieceCount{
		{'Q', cfg.WhiteQ},
		{'R', cfg.WhiteR},
		{'B', cfg.WhiteB},
		{'N', cfg.WhiteN},
		{'P', cfg.WhiteP},
		{'q', cfg.BlackQ},
		{'r', cfg.BlackR},
		{'b', cfg.BlackB},
		{'n', cfg.BlackN},
		{'p', cfg.BlackP},
	}
}

func (cfg PieceConfig) Validate() error {
	total := 0
	for _, c := range cfg.counts() {
		if c.n < 0 {
			return ErrInvalidPieceConfig
		}
		total += c.n
	}

	if total > MaxPieces {
		return ErrInvalidPieceConfig
	}
	return nil
}

/*
	Generates a random board with the configured pieces plus both kings.
	Pawns never land on the first or last rank. Nothing else about the
	position is checked.
*/
func Random(cfg PieceConfig, rng *rand.Rand) (Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := make(Board, Size)
	for i := range b {
		b[i] = []rune("........")
	}

	place := func(piece rune) {
		for {
			var row, col int
			switch piece {
			case 'P', 'p':
				row, col = rng.Intn(6)+1, rng.Intn(8)
			default:
				row, col = rng.Intn(8), rng.Intn(8)
			}

			if b[row][col] == Empty {
				b[row][col] = piece
				return
			}
		}
	}

	for _, c := range cfg.counts() {
		for i := 0; i < c.n; i++ {
			place(c.piece)
		}
	}
	place('K')
	place('k')

	return b, nil
}
