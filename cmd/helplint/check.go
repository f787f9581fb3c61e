// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"helplint-cli/internal/helpcheck"
	"helplint-cli/internal/introspect"
	"helplint-cli/internal/issue"
	"helplint-cli/pkg/helpdoc"

	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	checkOutPath      string
	checkOutputFormat string
	checkJSON         bool
	checkSelf         bool

	checkCmd = &cobra.Command{
		Use:   "check [paths...]",
		Short: "Audit module help for completeness and consistency",
		Long: `Audit the help of every command module found under the given paths.

Each path may be a helpmod manifest file or a directory searched
recursively for 'helpmod.cue' and '*.helpmod.cue' files. With --self,
helplint's own command tree is audited as an additional module.

Rewrite rules and consistency exclusions come from the configuration
file; see 'helplint config show'.`,
		Example: `  helplint check ./modules
  helplint check files.helpmod.cue net.helpmod.cue
  helplint check --self
  helplint check ./modules --out help-audit.md --json`,
		RunE: runCheck,
	}
)

func init() {
	checkCmd.Flags().StringVarP(&checkOutPath, "out", "o", "", "write a markdown audit report to this path")
	checkCmd.Flags().StringVar(&checkOutputFormat, "output", "", "summary format: human or json")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "output JSON summary to stdout (alias for --output json)")
	checkCmd.Flags().BoolVar(&checkSelf, "self", false, "audit helplint's own command tree")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := currentConfig()

	outputFormat := helpcheck.OutputFormat(checkOutputFormat)
	if outputFormat == "" {
		outputFormat = helpcheck.OutputFormat(cfg.Output.Format)
	}
	if checkJSON {
		outputFormat = helpcheck.OutputFormatJSON
	}

	sources, err := gatherSources(args, checkSelf)
	if err != nil {
		return err
	}

	outPath := checkOutPath
	if outPath == "" {
		outPath = cfg.Output.Path
	}

	opts := helpcheck.Options{
		Sources:      sources,
		OutputPath:   outPath,
		OutputFormat: outputFormat,
		Rules:        cfg.RewriteRules,
		Exclusions:   cfg.ConsistencyExclusions,
	}

	result, err := helpcheck.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	if outputFormat == helpcheck.OutputFormatJSON {
		if err := helpcheck.WriteSummaryJSON(cmd.OutOrStdout(), result.Summary); err != nil {
			return err
		}
	} else {
		printHumanSummary(cmd, result)
	}

	if failed := result.Report.Metrics.FailedChecks; failed > 0 {
		return &ExitError{
			Code: 1,
			Err:  fmt.Errorf("%d of %d help checks failed", failed, result.Report.Metrics.TotalChecks),
		}
	}
	return nil
}

// gatherSources resolves manifest paths and the optional self tree into
// audit sources, rendering an issue card when nothing can be audited.
func gatherSources(paths []string, includeSelf bool) ([]helpcheck.Source, error) {
	var sources []helpcheck.Source

	if len(paths) > 0 {
		moduleSources, err := introspect.LoadSources(paths)
		if err != nil {
			rendered, _ := issue.Get(issue.ManifestParseErrorId).Render("dark")
			fmt.Fprint(os.Stderr, rendered)
			return nil, issue.WrapWithOperation(err, "load helpmod manifests")
		}
		if len(moduleSources) == 0 {
			rendered, _ := issue.Get(issue.ManifestNotFoundId).Render("dark")
			fmt.Fprint(os.Stderr, rendered)
			return nil, fmt.Errorf("no helpmod manifests found under %s", strings.Join(paths, ", "))
		}
		for _, source := range moduleSources {
			logger.Debug("loaded manifest", "module", source.Name(), "path", source.Origin())
			sources = append(sources, source)
		}
	}

	if includeSelf {
		self, err := introspect.NewCommandSource("", rootCmd)
		if err != nil {
			return nil, err
		}
		sources = append(sources, self)
	}

	if len(sources) == 0 {
		rendered, _ := issue.Get(issue.NoModulesSelectedId).Render("dark")
		fmt.Fprint(os.Stderr, rendered)
		return nil, fmt.Errorf("no module sources selected")
	}

	return sources, nil
}

func printHumanSummary(cmd *cobra.Command, result *helpcheck.Result) {
	out := cmd.OutOrStdout()
	metrics := result.Report.Metrics

	fmt.Fprintln(out, TitleStyle.Render("Help Audit Summary"))
	fmt.Fprintln(out)
	if result.ReportPath != "" {
		fmt.Fprintf(out, "%s %s\n", SubtitleStyle.Render("Report:"), CmdStyle.Render(result.ReportPath))
	}
	fmt.Fprintf(out, "%s %s\n", SubtitleStyle.Render("Total checks:"), SuccessStyle.Render(strconv.Itoa(metrics.TotalChecks)))
	fmt.Fprintf(out, "%s %s\n", SubtitleStyle.Render("Pass rate:"), SuccessStyle.Render(fmt.Sprintf("%.1f%%", metrics.PassPercentage)))

	if metrics.FailedChecks == 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%s All help checks passed\n", SuccessStyle.Render("✓"))
		return
	}

	fmt.Fprintf(out, "%s %s\n", SubtitleStyle.Render("Failed checks:"), ErrorStyle.Render(strconv.Itoa(metrics.FailedChecks)))

	for _, module := range result.Report.Modules {
		failed := helpcheck.Failed(module.Results)
		disagreeing := disagreeingParameters(module)
		if len(failed) == 0 && len(disagreeing) == 0 {
			continue
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, TitleStyle.Render("Module: "+module.Module))
		for _, r := range failed {
			fmt.Fprintf(out, "  %s %s %s\n",
				ErrorStyle.Render("✗"),
				CmdStyle.Render(r.Label()),
				VerboseStyle.Render(fmt.Sprintf("[%s]", r.Severity)),
			)
			if verbose && r.Observed != "" {
				fmt.Fprintf(out, "    %s\n", VerboseStyle.Render("observed: "+r.Observed))
			}
		}
		for _, param := range disagreeing {
			severity := helpcheck.SeverityForCheck(helpcheck.CheckParameterConsistency)
			fmt.Fprintf(out, "  %s %s %s\n",
				ErrorStyle.Render("✗"),
				CmdStyle.Render(string(helpdoc.ParameterMarker+param)+": descriptions disagree"),
				VerboseStyle.Render(fmt.Sprintf("[%s]", severity)),
			)
			for _, group := range module.Groups[param] {
				names := make([]string, 0, len(group.Functions))
				for _, fn := range group.Functions {
					names = append(names, string(fn))
				}
				text := group.Text
				if text == "" {
					text = "(empty)"
				}
				fmt.Fprintf(out, "    %s\n", VerboseStyle.Render(fmt.Sprintf("%q used by %s", text, strings.Join(names, ", "))))
			}
		}
	}
}

func disagreeingParameters(module helpcheck.ModuleReport) []helpdoc.ParameterName {
	params := maps.Keys(module.Consistency)
	slices.Sort(params)

	var disagreeing []helpdoc.ParameterName
	for _, param := range params {
		if len(helpcheck.Failed(module.Consistency[param])) > 0 {
			disagreeing = append(disagreeing, param)
		}
	}
	return disagreeing
}
