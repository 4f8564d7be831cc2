// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var variationsCmd = &cobra.Command{
	Use:   "variations <id>",
	Short: "Show fresh variations of an idea",
	Long: `Variations re-samples two or three elements of an existing idea several
times and prints the results. Variations are not saved unless --adopt picks
one, which records it as a child of the idea.`,
	Args: cobra.ExactArgs(1),
	RunE: runVariations,
}

func runVariations(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	adopt, _ := cmd.Flags().GetInt("adopt")

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", count)
	}
	if adopt < 0 || adopt > count {
		return fmt.Errorf("--adopt must be between 1 and %d", count)
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	parent, err := s.store.Get(id)
	if err != nil {
		return err
	}
	variants, err := s.engine.Variants(parent.Attributes, count)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Variations of #%d %s:\n", parent.ID, parent.Title)
	for i, v := range variants {
		fmt.Fprintf(out, "  %d. %s\n", i+1, v.Prompt)
	}

	if adopt == 0 {
		return nil
	}
	e, err := s.engine.Adopt(id, variants[adopt-1])
	if err != nil {
		return err
	}
	printEntity(out, e)
	return s.save()
}

func init() {
	variationsCmd.Flags().IntP("count", "n", 3, "number of variations")
	variationsCmd.Flags().Int("adopt", 0, "save the n-th variation as a new idea (1-based, 0 = none)")

	rootCmd.AddCommand(variationsCmd)
}
