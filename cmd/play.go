package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/garlicgarrison/pawn-ai/game"
	"github.com/garlicgarrison/pawn-ai/movegen"
	"github.com/garlicgarrison/pawn-ai/policy"
	"github.com/spf13/cobra"
)

type playOptions struct {
	difficulty  string
	boardPath   string
	movePath    string
	historyPath string
	direct      bool

	sel *policy.Selector
}

func newPlayCmd(opts *options) *cobra.Command {
	popts := &playOptions{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play white against the pawn AI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			label := cfg.Difficulty
			if cmd.Flags().Changed("difficulty") {
				label = strings.ToLower(popts.difficulty)
			}

			popts.sel = newSelector(cfg)
			g := game.NewGame(policy.ParseDifficulty(label), popts.sel)
			log.Printf("game %s started (%s)", g.ID, g.Difficulty)

			return popts.run(cmd, g, label)
		},
	}

	cmd.Flags().StringVarP(&popts.difficulty, "difficulty", "d", "", "easy, medium or hard (defaults to the config)")
	cmd.Flags().StringVar(&popts.boardPath, "board", "board.txt", "board file handed to the AI")
	cmd.Flags().StringVar(&popts.movePath, "move", "move.txt", "move file the AI answers in")
	cmd.Flags().StringVar(&popts.historyPath, "history", "", "write the game record as JSON when the game ends")
	cmd.Flags().BoolVar(&popts.direct, "direct", false, "skip the board/move file round trip")

	return cmd
}

func (p *playOptions) run(cmd *cobra.Command, g *game.Game, label string) error {
	out := cmd.OutOrStdout()
	in := bufio.NewScanner(cmd.InOrStdin())

	for g.Outcome() == game.NoOutcome {
		fmt.Fprint(out, g.Board().Draw())

		if g.Turn() == game.White {
			fmt.Fprint(out, "White's move (e.g. e2e4) or 'u' to undo: ")
			if !in.Scan() {
				break
			}

			p.whiteTurn(out, g, strings.Join(strings.Fields(in.Text()), ""))
			continue
		}

		fmt.Fprintf(out, "AI (%s) is thinking...\n", label)
		ok, err := p.aiTurn(cmd, g, label)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}

	if o := g.Outcome(); o != game.NoOutcome {
		fmt.Fprintln(out, o)
	}

	if p.historyPath != "" {
		err := g.WriteHistory(p.historyPath)
		if err != nil {
			log.Printf("write error -- %s", err)
			return err
		}
	}

	return nil
}

func (p *playOptions) whiteTurn(out io.Writer, g *game.Game, text string) {
	if text == "u" {
		for i := 0; i < 2; i++ {
			rec, err := g.Undo()
			if err != nil {
				fmt.Fprintln(out, "No moves to undo.")
				return
			}
			fmt.Fprintf(out, "Undid move: %s\n", rec.Notation)
		}
		return
	}

	m, err := movegen.Parse(text)
	if err != nil {
		fmt.Fprintln(out, "Invalid input. Use format like e2e4.")
		return
	}

	if err := g.Move(m); err != nil {
		fmt.Fprintln(out, "Invalid move.")
	}
}

/*
	Plays black's reply. Unless direct is set the board goes out through the
	board file and the answer comes back through the move file, the same
	files the one-shot command reads and writes.
*/
func (p *playOptions) aiTurn(cmd *cobra.Command, g *game.Game, label string) (bool, error) {
	out := cmd.OutOrStdout()

	if p.direct {
		m, err := g.AIMove()
		if errors.Is(err, policy.ErrNoMoves) {
			fmt.Fprintln(out, "No valid moves available for AI.")
			return false, nil
		}
		if err != nil {
			return false, err
		}

		fmt.Fprintf(out, "AI (%s) chose move: %s\n", label, m)
		return true, nil
	}

	err := g.Board().Save(p.boardPath)
	if err != nil {
		return false, err
	}

	_, ok, err := chooseMove(cmd, p.sel, p.boardPath, p.movePath, label)
	if err != nil || !ok {
		return false, err
	}

	m, err := movegen.ReadFile(p.movePath)
	if err == nil {
		err = g.Move(m)
	}
	if err != nil {
		log.Printf("error -- %s", err)
		fmt.Fprintln(out, "AI move failed.")
		return false, nil
	}

	return true, nil
}
