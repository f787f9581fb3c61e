// SPDX-License-Identifier: MPL-2.0

package helpcheck

import "context"

// Result is the output of a help audit run.
type Result struct {
	Report     *AuditReport
	ReportPath string
	Summary    Summary
}

// Summary captures the report path and metrics for a run.
type Summary struct {
	ReportPath string  `json:"report_path,omitempty"`
	Metrics    Metrics `json:"metrics"`
}

// Run executes a help audit and writes the report when an output path is
// set. Without one, the caller renders the report itself.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Normalize(); err != nil {
		return nil, err
	}

	report, err := Audit(ctx, opts)
	if err != nil {
		return nil, err
	}

	if opts.OutputPath != "" {
		if err := WriteMarkdown(report, opts.OutputPath); err != nil {
			return nil, err
		}
	}

	return &Result{
		Report:     report,
		ReportPath: opts.OutputPath,
		Summary: Summary{
			ReportPath: opts.OutputPath,
			Metrics:    report.Metrics,
		},
	}, nil
}
