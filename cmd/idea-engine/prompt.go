// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/idea-engine/internal/compose"
	"github.com/pdiddy/idea-engine/internal/sampler"
)

var promptCmd = &cobra.Command{
	Use:   "prompt <kind>",
	Short: "Render a conversational prompt",
	Long: `Prompt renders one template from a conversational bank: greeting, faq,
fun, knowledge, clarification, context-recall or farewell. Greetings use
--name and context recalls use --topic. With --all every template of the
kind is rendered in order.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: kindNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		topic, _ := cmd.Flags().GetString("topic")
		all, _ := cmd.Flags().GetBool("all")

		kind := compose.Kind(strings.ToLower(args[0]))
		if !slices.Contains(compose.ConversationKinds, kind) {
			return fmt.Errorf("%w: %q (want one of %s)", compose.ErrUnknownKind, args[0], strings.Join(kindNames(), ", "))
		}

		c := compose.NewDefault(sampler.NewRand(engineConfig().Seed))
		data := map[string]string{
			compose.KeyName:          name,
			compose.KeyPreviousTopic: topic,
		}

		out := cmd.OutOrStdout()
		if all {
			lines, err := c.RenderAll(kind, data)
			if err != nil {
				return err
			}
			for _, l := range lines {
				fmt.Fprintln(out, l)
			}
			return nil
		}
		line, err := c.Render(kind, data)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, line)
		return nil
	},
}

func kindNames() []string {
	names := make([]string, len(compose.ConversationKinds))
	for i, k := range compose.ConversationKinds {
		names[i] = string(k)
	}
	return names
}

func init() {
	promptCmd.Flags().String("name", "Assistant", "assistant name used by greetings")
	promptCmd.Flags().String("topic", "that", "previous topic used by context recalls")
	promptCmd.Flags().Bool("all", false, "render every template of the kind")

	rootCmd.AddCommand(promptCmd)
}
