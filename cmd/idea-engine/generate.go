// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate new story ideas",
	Long: `Generate samples one genre, character type, plot device, setting, theme
and conflict per idea, renders a prompt with a title and a few variations,
and appends the ideas to the history file as new roots.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")

	s, err := openSession()
	if err != nil {
		return err
	}
	ideas, err := s.stories.Generate(count)
	if err != nil {
		return err
	}
	for _, idea := range ideas {
		printEntity(cmd.OutOrStdout(), idea)
	}
	return s.save()
}

func init() {
	generateCmd.Flags().IntP("count", "n", 1, "number of ideas to generate")

	rootCmd.AddCommand(generateCmd)
}
