// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/idea-engine/internal/evolve"
)

var evolveCmd = &cobra.Command{
	Use:   "evolve <id> <direction>",
	Short: "Evolve an idea toward a direction",
	Long: `Evolve pushes an existing idea in one of four directions:

  1. darker   grim or serious
  2. hopeful  optimistic or uplifting
  3. complex  moral ambiguity or philosophical depth
  4. action   faster pace and more conflict

The genre, theme and conflict are re-drawn from the direction's subset;
the other elements are kept. The direction may be given by name or number.`,
	Args: cobra.ExactArgs(2),
	RunE: runEvolve,
}

func runEvolve(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	d, err := evolve.ParseDirection(args[1])
	if err != nil {
		return err
	}
	s, err := openSession()
	if err != nil {
		return err
	}
	e, err := s.engine.Evolve(id, string(d))
	if err != nil {
		return err
	}
	printEntity(cmd.OutOrStdout(), e)
	return s.save()
}

func init() {
	rootCmd.AddCommand(evolveCmd)
}
