// SPDX-License-Identifier: MPL-2.0

package helpcheck

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"helplint-cli/pkg/helpdoc"
)

// WriteMarkdown writes the audit report to the specified path.
func WriteMarkdown(report *AuditReport, path string) error {
	if report == nil {
		return errors.New("report is nil")
	}
	if path == "" {
		return errors.New("report path is empty")
	}

	generatedAt := report.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now().UTC()
	}

	var sb strings.Builder
	sb.WriteString("# Help Audit Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", generatedAt.UTC().Format(time.RFC3339)))

	writeMetricsSection(&sb, report.Metrics)
	for _, module := range report.Modules {
		writeModuleSection(&sb, module)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure report dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// WriteSummaryJSON writes the summary JSON to the provided writer.
func WriteSummaryJSON(w io.Writer, summary Summary) error {
	if w == nil {
		return errors.New("writer is nil")
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(summary); err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}

	return nil
}

type (
	// aggregateDocument is the TOML shape of the parameter text aggregate:
	// one table per module, one sub-table per parameter, each text keyed to
	// the functions using it.
	aggregateDocument struct {
		GeneratedAt time.Time                  `toml:"generated_at"`
		Modules     map[string]aggregateModule `toml:"modules"`
	}

	aggregateModule struct {
		Parameters map[string][]aggregateText `toml:"parameters"`
	}

	aggregateText struct {
		Text      string   `toml:"text"`
		Functions []string `toml:"functions"`
	}
)

// WriteAggregateTOML writes the accumulated parameter texts as a TOML
// document, the interchange format consumed by downstream style tooling.
func WriteAggregateTOML(w io.Writer, acc *Accumulator) error {
	if w == nil {
		return errors.New("writer is nil")
	}
	if acc == nil {
		return errors.New("accumulator is nil")
	}

	doc := aggregateDocument{
		GeneratedAt: time.Now().UTC(),
		Modules:     make(map[string]aggregateModule),
	}

	for module, params := range acc.Snapshot() {
		out := aggregateModule{Parameters: make(map[string][]aggregateText)}
		for param, texts := range params {
			keys := maps.Keys(texts)
			slices.Sort(keys)

			entries := make([]aggregateText, 0, len(keys))
			for _, text := range keys {
				fns := make([]string, 0, len(texts[text]))
				for _, fn := range texts[text] {
					fns = append(fns, string(fn))
				}
				slices.Sort(fns)
				entries = append(entries, aggregateText{Text: text, Functions: fns})
			}
			out.Parameters[string(param)] = entries
		}
		doc.Modules[module] = out
	}

	encoder := toml.NewEncoder(w)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encode aggregate: %w", err)
	}

	return nil
}

func writeMetricsSection(sb *strings.Builder, metrics Metrics) {
	sb.WriteString("## Metrics\n\n")
	sb.WriteString(fmt.Sprintf("- Total checks: %d\n", metrics.TotalChecks))
	sb.WriteString(fmt.Sprintf("- Failed checks: %d\n", metrics.FailedChecks))
	sb.WriteString(fmt.Sprintf("- Pass percentage: %.2f%%\n\n", metrics.PassPercentage))

	sb.WriteString("### Failures by Check\n\n")
	sb.WriteString("| Check | Failures |\n")
	sb.WriteString("|---|---|\n")
	for _, kind := range kindOrder {
		sb.WriteString(fmt.Sprintf("| %s | %d |\n", kind, metrics.FailuresByKind[kind]))
	}
	sb.WriteString("\n")

	sb.WriteString("### Failures by Severity\n\n")
	sb.WriteString("| Severity | Failures |\n")
	sb.WriteString("|---|---|\n")
	for _, severity := range severityOrder {
		sb.WriteString(fmt.Sprintf("| %s | %d |\n", severity, metrics.BySeverity[severity]))
	}
	sb.WriteString("\n")
}

func writeModuleSection(sb *strings.Builder, module ModuleReport) {
	sb.WriteString(fmt.Sprintf("## Module: %s\n\n", module.Module))
	if module.Source != "" {
		sb.WriteString(fmt.Sprintf("Source: %s\n\n", module.Source))
	}

	failed := Failed(module.Results)
	if len(failed) == 0 {
		sb.WriteString("All completeness checks passed.\n\n")
	} else {
		sb.WriteString("### Failed Checks\n\n")
		sb.WriteString("| Check | Severity | Observed |\n")
		sb.WriteString("|---|---|---|\n")
		for _, result := range failed {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n",
				escapeTableValue(result.Label()),
				escapeTableValue(string(result.Severity)),
				escapeTableValue(result.Observed),
			))
		}
		sb.WriteString("\n")
	}

	writeConsistencySection(sb, module)
}

func writeConsistencySection(sb *strings.Builder, module ModuleReport) {
	params := maps.Keys(module.Consistency)
	slices.Sort(params)

	var disagreeing []helpdoc.ParameterName
	for _, param := range params {
		if len(Failed(module.Consistency[param])) > 0 {
			disagreeing = append(disagreeing, param)
		}
	}

	sb.WriteString("### Parameter Consistency\n\n")
	if len(disagreeing) == 0 {
		sb.WriteString("All shared parameter descriptions agree.\n\n")
		return
	}

	for _, param := range disagreeing {
		sb.WriteString(fmt.Sprintf("#### %s%s\n\n", helpdoc.ParameterMarker, param))
		for _, group := range module.Groups[param] {
			names := make([]string, 0, len(group.Functions))
			for _, fn := range group.Functions {
				names = append(names, string(fn))
			}
			text := group.Text
			if text == "" {
				text = "(empty)"
			}
			sb.WriteString(fmt.Sprintf("- %q used by %s\n", text, strings.Join(names, ", ")))
		}
		sb.WriteString("\n")
	}
}

func escapeTableValue(value string) string {
	if value == "" {
		return "-"
	}

	escaped := strings.ReplaceAll(value, "\r", "")
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	escaped = strings.ReplaceAll(escaped, "|", "\\|")
	return escaped
}
