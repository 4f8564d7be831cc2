// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/idea-engine/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the ideas in the history file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		roots, _ := cmd.Flags().GetBool("roots")

		s, err := openSession()
		if err != nil {
			return err
		}
		var entities []types.Entity
		for _, e := range s.store.All() {
			if roots && !e.IsRoot() {
				continue
			}
			entities = append(entities, e)
		}
		printTable(cmd.OutOrStdout(), entities)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one idea, optionally with its lineage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		withLineage, _ := cmd.Flags().GetBool("lineage")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		s, err := openSession()
		if err != nil {
			return err
		}
		e, err := s.store.Get(id)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(e)
		}
		printEntity(out, e)
		if !withLineage {
			return nil
		}

		chain, err := s.store.Ancestry(id)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "\nANCESTRY:")
		for depth, a := range chain {
			fmt.Fprintf(out, "  %*s#%d %s\n", depth*2, "", a.ID, a.Title)
		}
		children, err := s.store.Children(id)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "\nCHILDREN:")
		if len(children) == 0 {
			fmt.Fprintln(out, "  none")
		}
		for _, c := range children {
			fmt.Fprintf(out, "  #%d %s (%s)\n", c.ID, c.Title, c.DerivationKind)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().Bool("roots", false, "list only root ideas")
	showCmd.Flags().Bool("lineage", false, "print ancestry and children")
	showCmd.Flags().Bool("json", false, "output the idea as JSON")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
}
