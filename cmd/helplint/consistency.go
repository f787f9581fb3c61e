// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"helplint-cli/internal/helpcheck"

	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	consistencyFormat string

	consistencyCmd = &cobra.Command{
		Use:   "consistency [paths...]",
		Short: "Show the cross-module parameter description aggregate",
		Long: `Collect every parameter description across the given modules and show
the aggregate: for each parameter name, the distinct normalized texts
and the functions using each one. Parameters with more than one text
are the ones the consistency check flags.

The TOML format is an interchange document for downstream style tooling.`,
		Example: `  helplint consistency ./modules
  helplint consistency ./modules --format toml > aggregate.toml`,
		RunE: runConsistency,
	}
)

func init() {
	consistencyCmd.Flags().StringVar(&consistencyFormat, "format", "human", "aggregate format: human or toml")
}

func runConsistency(cmd *cobra.Command, args []string) error {
	cfg := currentConfig()

	sources, err := gatherSources(args, false)
	if err != nil {
		return err
	}

	acc := helpcheck.NewAccumulator()
	opts := helpcheck.Options{
		Sources:     sources,
		Rules:       cfg.RewriteRules,
		Exclusions:  cfg.ConsistencyExclusions,
		Accumulator: acc,
	}
	if err := opts.Normalize(); err != nil {
		return err
	}

	if _, err := helpcheck.Audit(cmd.Context(), opts); err != nil {
		return err
	}

	switch consistencyFormat {
	case "toml":
		return helpcheck.WriteAggregateTOML(cmd.OutOrStdout(), acc)
	case "human":
		printAggregate(cmd, acc)
		return nil
	default:
		return fmt.Errorf("unsupported aggregate format: %s (valid: human, toml)", consistencyFormat)
	}
}

func printAggregate(cmd *cobra.Command, acc *helpcheck.Accumulator) {
	out := cmd.OutOrStdout()
	snapshot := acc.Snapshot()

	fmt.Fprintln(out, TitleStyle.Render("Parameter Description Aggregate"))

	for _, module := range acc.Modules() {
		fmt.Fprintln(out)
		fmt.Fprintln(out, TitleStyle.Render("Module: "+module))

		params := maps.Keys(snapshot[module])
		slices.Sort(params)

		for _, param := range params {
			texts := snapshot[module][param]
			marker := SuccessStyle.Render("✓")
			if len(texts) > 1 {
				marker = ErrorStyle.Render("✗")
			}
			fmt.Fprintf(out, "  %s %s\n", marker, CmdStyle.Render("--"+string(param)))

			keys := maps.Keys(texts)
			slices.Sort(keys)
			for _, text := range keys {
				fns := make([]string, 0, len(texts[text]))
				for _, fn := range texts[text] {
					fns = append(fns, string(fn))
				}
				slices.Sort(fns)
				display := text
				if display == "" {
					display = "(empty)"
				}
				fmt.Fprintf(out, "    %s %s\n",
					VerboseStyle.Render(fmt.Sprintf("%q", display)),
					SubtitleStyle.Render("used by "+strings.Join(fns, ", ")),
				)
			}
		}
	}
}
