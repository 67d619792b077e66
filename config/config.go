package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/garlicgarrison/pawn-ai/board"
	"github.com/garlicgarrison/pawn-ai/policy"
	"gopkg.in/yaml.v2"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
)

// 0 seeds easy picks from the clock
type Config struct {
	Seed       int64  `yaml:"seed"`
	Quiet      bool   `yaml:"quiet"`
	Difficulty string `yaml:"difficulty"`
}

func Default() Config {
	return Config{
		Difficulty: string(policy.EASY),
	}
}

// Load reads a YAML config file; fields it leaves out keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	err = cfg.Validate()
	if err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Difficulty == "" {
		c.Difficulty = string(policy.EASY)
		return nil
	}

	d, ok := policy.LookupDifficulty(c.Difficulty)
	if !ok {
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, c.Difficulty)
	}
	c.Difficulty = string(d)

	return nil
}

// LoadPieces reads the piece counts used to generate random boards.
func LoadPieces(path string) (board.PieceConfig, error) {
	cfg := board.DefaultPieceConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	err = cfg.Validate()
	if err != nil {
		return cfg, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	return cfg, nil
}
