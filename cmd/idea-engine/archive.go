// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/idea-engine/internal/archive"
	"github.com/pdiddy/idea-engine/internal/evolve"
	"github.com/pdiddy/idea-engine/internal/lineage"
	"github.com/pdiddy/idea-engine/pkg/types"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Mirror the history into SQLite for search, lineage and export",
	Long: `Archive manages a local SQLite database built from the JSON history file.
Use subcommands to ingest the history, search it, walk an idea's lineage or
export it.`,
}

// --- ingest subcommand ---

var archiveIngestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest the history file into the archive",
	Long: `Ingest upserts every idea of the history file into the archive database
and writes export.yaml. Unchanged ideas are skipped on subsequent runs.`,
	Args: cobra.NoArgs,
	RunE: runArchiveIngest,
}

func runArchiveIngest(cmd *cobra.Command, args []string) error {
	hist := historyConfig()
	ls, err := lineage.Load(hist.Path)
	if err != nil {
		return err
	}

	store, err := openArchive(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Ingest(cmd.Context(), ls.All(), cmd.OutOrStdout())
	return err
}

// --- search subcommand ---

var archiveSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search archived ideas by text and filters",
	Long: `Search matches the query against idea titles and prompts and narrows the
result with --kind, --direction, --attr, --value and --parent filters.`,
	RunE: runArchiveSearch,
}

func runArchiveSearch(cmd *cobra.Command, args []string) error {
	opts, err := queryOptsFromFlags(cmd, args)
	if err != nil {
		return err
	}
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query, --kind, --direction, --attr, --value or --parent")
	}

	store, err := openArchive(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.Retrieve(cmd.Context(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	printTable(cmd.OutOrStdout(), results)
	return nil
}

// --- lineage subcommand ---

var archiveLineageCmd = &cobra.Command{
	Use:   "lineage <id>",
	Short: "Print the chain of ideas leading to an archived idea",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		store, err := openArchive(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		chain, err := store.Ancestry(cmd.Context(), id)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for depth, e := range chain {
			label := string(e.DerivationKind)
			if e.Direction != "" {
				label += "/" + string(e.Direction)
			}
			fmt.Fprintf(out, "%s#%d %s [%s]\n", strings.Repeat("  ", depth), e.ID, e.Title, label)
		}
		return nil
	},
}

// --- export subcommand ---

var archiveExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the archive to YAML or JSON",
	Long: `Export writes the archive (or a filtered subset) to archive/export.yaml
or export.json. Supports the same filter flags as search.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		opts, err := queryOptsFromFlags(cmd, args)
		if err != nil {
			return err
		}
		store, err := openArchive(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		var path string
		switch format {
		case "yaml", "":
			path, err = store.ExportYAML(cmd.Context(), opts)
		case "json":
			path, err = store.ExportJSON(cmd.Context(), opts)
		default:
			return fmt.Errorf("unsupported format %q: use yaml or json", format)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
		return nil
	},
}

// --- shared helpers ---

func openArchive(cmd *cobra.Command) (*archive.Store, error) {
	cfg := archiveConfig()
	cfg.MaxResults, _ = cmd.Flags().GetInt("max-results")
	return archive.NewStore(cfg, archive.WithLogger(logger))
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) (archive.QueryOptions, error) {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}
	kind, _ := cmd.Flags().GetString("kind")
	direction, _ := cmd.Flags().GetString("direction")
	attr, _ := cmd.Flags().GetString("attr")
	value, _ := cmd.Flags().GetString("value")
	parent, _ := cmd.Flags().GetInt("parent")
	limit, _ := cmd.Flags().GetInt("limit")

	opts := archive.QueryOptions{
		Query:      queryText,
		Kind:       types.DerivationKind(kind),
		Attribute:  attr,
		Value:      value,
		MaxResults: limit,
	}
	if direction != "" {
		d, err := evolve.ParseDirection(direction)
		if err != nil {
			return archive.QueryOptions{}, err
		}
		opts.Direction = d
	}
	if parent >= 0 {
		opts.ParentID = &parent
	}
	return opts, nil
}

func init() {
	archiveCmd.PersistentFlags().Int("max-results", 20, "maximum number of query results")

	for _, c := range []*cobra.Command{archiveSearchCmd, archiveExportCmd} {
		c.Flags().String("query", "", "substring of title or prompt")
		c.Flags().String("kind", "", "filter by derivation kind: none, sequel, evolution, variation")
		c.Flags().String("direction", "", "filter by evolution direction")
		c.Flags().String("attr", "", "filter by attribute name, e.g. genre")
		c.Flags().String("value", "", "filter by attribute value, e.g. Horror")
		c.Flags().Int("parent", -1, "filter by parent id (-1 = any)")
		c.Flags().Int("limit", 0, "maximum results (0 = use default)")
	}
	archiveSearchCmd.Flags().Bool("json", false, "output results as JSON")
	archiveExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	archiveCmd.AddCommand(archiveIngestCmd)
	archiveCmd.AddCommand(archiveSearchCmd)
	archiveCmd.AddCommand(archiveLineageCmd)
	archiveCmd.AddCommand(archiveExportCmd)

	rootCmd.AddCommand(archiveCmd)
}
