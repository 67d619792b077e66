package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/garlicgarrison/pawn-ai/board"
	"github.com/garlicgarrison/pawn-ai/config"
	"github.com/spf13/cobra"
)

func newRandomCmd(opts *options) *cobra.Command {
	var piecesPath string

	cmd := &cobra.Command{
		Use:   "random board.txt",
		Short: "Write a random board file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			pieces := board.DefaultPieceConfig()
			if piecesPath != "" {
				pieces, err = config.LoadPieces(piecesPath)
				if err != nil {
					return err
				}
			}

			seed := cfg.Seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			b, err := board.Random(pieces, rand.New(rand.NewSource(seed)))
			if err != nil {
				return err
			}
			log.Printf("random board: %s", b.FEN())

			err = b.Save(args[0])
			if err != nil {
				log.Printf("write error -- %s", err)
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), b.Draw())
			return nil
		},
	}

	cmd.Flags().StringVar(&piecesPath, "pieces", "", "YAML piece counts (see config/pieces.yaml)")

	return cmd
}
