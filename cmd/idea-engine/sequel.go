// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
)

var sequelCmd = &cobra.Command{
	Use:   "sequel <id>",
	Short: "Create a sequel to an existing idea",
	Long: `Sequel keeps two of the parent's genre, character type and setting,
re-samples every other element and records the result as a child of the
parent idea.`,
	Args: cobra.ExactArgs(1),
	RunE: runSequel,
}

func runSequel(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	s, err := openSession()
	if err != nil {
		return err
	}
	e, err := s.engine.Sequel(id)
	if err != nil {
		return err
	}
	printEntity(cmd.OutOrStdout(), e)
	return s.save()
}

func init() {
	rootCmd.AddCommand(sequelCmd)
}
