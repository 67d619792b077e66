package main

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/garlicgarrison/pawn-ai/board"
	"github.com/garlicgarrison/pawn-ai/config"
	"github.com/garlicgarrison/pawn-ai/movegen"
	"github.com/garlicgarrison/pawn-ai/policy"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const usage = "Usage: pawnai board.txt move.txt [easy|medium|hard]"

type options struct {
	configPath string
	seed       int64
	quiet      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "pawnai board.txt move.txt [easy|medium|hard]",
		Short:        "Pick a black pawn move for a board file",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 3 {
				fmt.Fprintln(cmd.OutOrStdout(), usage)
				return nil
			}

			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			_, _, err = chooseMove(cmd, newSelector(cfg), args[0], args[1], strings.ToLower(args[2]))
			return err
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file")
	cmd.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "random seed for easy picks (0 uses the clock)")
	cmd.PersistentFlags().BoolVar(&opts.quiet, "quiet", false, "discard diagnostic logging")

	cmd.AddCommand(newPlayCmd(opts))
	cmd.AddCommand(newRandomCmd(opts))

	return cmd
}

// resolve loads the config file, applies explicit flags over it and sets up
// the run's logger.
func (o *options) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		cfg, err = config.Load(o.configPath)
		if err != nil {
			return cfg, err
		}
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed = o.seed
	}
	if cmd.Flags().Changed("quiet") {
		cfg.Quiet = o.quiet
	}

	runID := uuid.NewString()
	log.SetPrefix(fmt.Sprintf("[%s] ", runID[:8]))
	if cfg.Quiet {
		log.SetOutput(io.Discard)
	} else {
		log.SetOutput(cmd.ErrOrStderr())
	}

	return cfg, nil
}

func newSelector(cfg config.Config) *policy.Selector {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return policy.NewSelector(rand.New(rand.NewSource(seed)))
}

/*
	Loads the board, picks a move for black and writes it to movePath.
	Returns false when black has no pawn move, which is not an error.
*/
func chooseMove(cmd *cobra.Command, sel *policy.Selector, boardPath, movePath, label string) (movegen.Move, bool, error) {
	b, err := board.Load(boardPath)
	if err != nil {
		return movegen.Move{}, false, err
	}
	log.Printf("board loaded: %s (%d rows)", b.FEN(), len(b))

	moves := movegen.Generate(b)
	if len(moves) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No valid moves available for AI.")
		return movegen.Move{}, false, nil
	}
	log.Printf("%d candidate moves", len(moves))

	move, err := sel.Choose(b, moves, policy.ParseDifficulty(label))
	if err != nil {
		return movegen.Move{}, false, err
	}

	err = movegen.WriteFile(movePath, move)
	if err != nil {
		log.Printf("write error -- %s", err)
		return movegen.Move{}, false, err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "AI (%s) chose move: %s\n", label, move)
	return move, true, nil
}
