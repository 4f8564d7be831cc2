// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/idea-engine/internal/business"
	"github.com/pdiddy/idea-engine/internal/compose"
	"github.com/pdiddy/idea-engine/internal/sampler"
	"github.com/pdiddy/idea-engine/internal/taxonomy"
	"github.com/pdiddy/idea-engine/pkg/types"
)

var businessCmd = &cobra.Command{
	Use:   "business",
	Short: "Generate business ideas from an industry, audience or trend",
	Long: `Business generates business concepts. Each concept pairs an industry
niche with a target audience, a trend, a business model and a revenue
stream, and comes with a name, a description, a value proposition and a
real-world constraint with a suggested mitigation.

Seed flags pin attributes: --industry and --niche select the industry
method, --demographic and --psychographic the audience method and --trend
the trend method. Without seed flags --method picks how each idea is
seeded (industry, audience, trend or mixed).`,
	Args: cobra.NoArgs,
	RunE: runBusiness,
}

func runBusiness(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()
	method, _ := f.GetString("method")
	count, _ := f.GetInt("count")
	industry, _ := f.GetString("industry")
	niche, _ := f.GetString("niche")
	demographic, _ := f.GetString("demographic")
	psychographic, _ := f.GetString("psychographic")
	trend, _ := f.GetString("trend")
	pivots, _ := f.GetInt("pivots")
	savePath, _ := f.GetString("save")
	jsonOutput, _ := f.GetBool("json")

	if count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", count)
	}

	cfg := engineConfig()
	rng := sampler.NewRand(cfg.Seed)
	gen, err := business.New(
		sampler.New(taxonomy.DefaultBusiness(), rng),
		compose.NewDefault(rng),
		business.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	var ideas []types.BusinessIdea
	switch {
	case industry != "" || niche != "":
		for range count {
			idea, err := gen.FromIndustry(industry, niche)
			if err != nil {
				return err
			}
			ideas = append(ideas, idea)
		}
	case demographic != "" || psychographic != "":
		for range count {
			idea, err := gen.FromAudience(demographic, psychographic)
			if err != nil {
				return err
			}
			ideas = append(ideas, idea)
		}
	case trend != "":
		for range count {
			idea, err := gen.FromTrend(trend)
			if err != nil {
				return err
			}
			ideas = append(ideas, idea)
		}
	default:
		ideas, err = gen.Collection(count, business.ParseMethod(method))
		if err != nil {
			return err
		}
	}

	if pivots > 0 {
		var pivoted []types.BusinessIdea
		for _, idea := range ideas {
			for range pivots {
				p, err := gen.Pivot(idea)
				if err != nil {
					return err
				}
				pivoted = append(pivoted, p)
			}
		}
		ideas = append(ideas, pivoted...)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(ideas); err != nil {
			return err
		}
	} else {
		for _, idea := range ideas {
			printBusinessIdea(out, idea)
		}
	}

	if savePath != "" {
		if err := business.SaveCollection(savePath, ideas); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Collection saved to %s\n", savePath)
	}
	return nil
}

var businessCategoriesCmd = &cobra.Command{
	Use:   "categories [category]",
	Short: "List business categories or the values of one category",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tax := taxonomy.DefaultBusiness()
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			for _, name := range tax.Categories() {
				fmt.Fprintln(out, name)
			}
			return nil
		}
		c, err := tax.Category(args[0])
		if err != nil {
			return err
		}
		if c.Kind() == taxonomy.Flat {
			for _, v := range c.Values() {
				fmt.Fprintf(out, "  %s\n", v)
			}
			return nil
		}
		for _, g := range c.Groups() {
			fmt.Fprintf(out, "%s:\n", g.Name)
			for _, v := range g.Values {
				fmt.Fprintf(out, "  %s\n", v)
			}
		}
		return nil
	},
}

func init() {
	f := businessCmd.Flags()
	f.String("method", "mixed", "generation method: industry, audience, trend or mixed")
	f.IntP("count", "n", 1, "number of ideas")
	f.String("industry", "", "industry to generate for")
	f.String("niche", "", "industry niche to generate for")
	f.String("demographic", "", "target demographic")
	f.String("psychographic", "", "target psychographic")
	f.String("trend", "", "trend to build on")
	f.Int("pivots", 0, "pivots to derive from each idea")
	f.String("save", "", "save the collection to a JSON file")
	f.Bool("json", false, "output ideas as JSON")

	businessCmd.AddCommand(businessCategoriesCmd)
	rootCmd.AddCommand(businessCmd)
}
