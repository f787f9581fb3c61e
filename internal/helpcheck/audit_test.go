// SPDX-License-Identifier: MPL-2.0

package helpcheck

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"helplint-cli/pkg/helpdoc"
)

type staticSource struct {
	name      string
	origin    string
	functions []helpdoc.FunctionDescriptor
	documents map[helpdoc.FunctionName]*helpdoc.HelpDocument
}

func (s staticSource) Name() string                                 { return s.name }
func (s staticSource) Origin() string                               { return s.origin }
func (s staticSource) Functions() []helpdoc.FunctionDescriptor      { return s.functions }
func (s staticSource) Documents() map[helpdoc.FunctionName]*helpdoc.HelpDocument {
	return s.documents
}

func filesSource() staticSource {
	return staticSource{
		name:   "files",
		origin: "files.helpmod.cue",
		functions: []helpdoc.FunctionDescriptor{
			{
				Name: "remove-item",
				Parameters: []helpdoc.ParameterDescriptor{
					{Name: "path", Required: true},
				},
			},
			{
				Name: "get-item",
				Parameters: []helpdoc.ParameterDescriptor{
					{Name: "path", Required: true},
				},
			},
		},
		documents: map[helpdoc.FunctionName]*helpdoc.HelpDocument{
			"remove-item": {
				Synopsis:    "Removes an item.",
				Description: "Removes a file or directory.",
				InputTypes:  []string{"string"},
				Examples:    []string{"remove-item --path /tmp/a"},
				Parameters: map[helpdoc.ParameterName]helpdoc.ParameterHelp{
					"path": {Description: "The file path."},
				},
			},
			"get-item": {
				Synopsis:    "Gets an item.",
				Description: "Reads a file or directory.",
				InputTypes:  []string{"string"},
				Examples:    []string{"get-item --path /tmp/a"},
				Parameters: map[helpdoc.ParameterName]helpdoc.ParameterHelp{
					"path": {Description: "The file path"},
				},
			},
		},
	}
}

func TestAuditEndToEnd(t *testing.T) {
	opts := Options{
		Sources:      []Source{filesSource()},
		OutputFormat: OutputFormatHuman,
	}
	if err := opts.Normalize(); err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	report, err := Audit(context.Background(), opts)
	if err != nil {
		t.Fatalf("Audit: %v", err)
	}

	if len(report.Modules) != 1 {
		t.Fatalf("expected 1 module report, got %d", len(report.Modules))
	}
	module := report.Modules[0]
	if module.Module != "files" {
		t.Fatalf("unexpected module name %q", module.Module)
	}

	// Completeness checks all pass; the period drift on --path fails.
	if failed := Failed(module.Results); len(failed) != 0 {
		t.Fatalf("expected no completeness failures, got %d: %+v", len(failed), failed)
	}
	paramResults := module.Consistency["path"]
	if len(paramResults) != 1 || paramResults[0].Passed {
		t.Fatalf("expected a consistency failure for --path, got %+v", paramResults)
	}
	if paramResults[0].Severity != SeverityHigh {
		t.Fatalf("expected high severity, got %q", paramResults[0].Severity)
	}

	if report.Metrics.FailedChecks != 1 {
		t.Fatalf("expected exactly 1 failed check, got %d", report.Metrics.FailedChecks)
	}
}

func TestAuditRewriteRulesReconcile(t *testing.T) {
	opts := Options{
		Sources: []Source{filesSource()},
		Rules: RuleSet{
			"path": {{Search: `\.$`, Replace: ""}},
		},
	}
	if err := opts.Normalize(); err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	report, err := Audit(context.Background(), opts)
	if err != nil {
		t.Fatalf("Audit: %v", err)
	}
	if report.Metrics.FailedChecks != 0 {
		t.Fatalf("expected rewrite rule to reconcile all checks, got %d failures", report.Metrics.FailedChecks)
	}
}

func TestAuditCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := Options{Sources: []Source{filesSource()}}
	if err := opts.Normalize(); err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	if _, err := Audit(ctx, opts); err == nil {
		t.Fatalf("expected canceled context to abort the audit")
	}
}

func TestAuditRejectsInvalidOptions(t *testing.T) {
	if _, err := Audit(context.Background(), Options{}); err == nil {
		t.Fatalf("expected an error with no sources")
	}

	opts := Options{
		Sources:      []Source{filesSource()},
		OutputFormat: OutputFormat("yaml"),
		Rules:        RuleSet{},
		Exclusions:   Exclusions{},
	}
	if _, err := Audit(context.Background(), opts); err == nil {
		t.Fatalf("expected an error for an unsupported output format")
	}
}

func TestRunWritesReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reports", "help-audit.md")

	opts := Options{
		Sources:    []Source{filesSource()},
		OutputPath: path,
	}

	result, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.ReportPath != path {
		t.Fatalf("unexpected report path %q", result.ReportPath)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	text := string(content)
	if !strings.Contains(text, "# Help Audit Report") {
		t.Fatalf("report missing title:\n%s", text)
	}
	if !strings.Contains(text, "Module: files") {
		t.Fatalf("report missing module section:\n%s", text)
	}
	if !strings.Contains(text, "--path") {
		t.Fatalf("report missing disagreeing parameter:\n%s", text)
	}
}
