// SPDX-License-Identifier: MPL-2.0

package helpcheck

import (
	"fmt"
	"time"

	"helplint-cli/pkg/helpdoc"
)

// Help audit constants.
const (
	// Function-level check kinds.
	CheckSynopsis    CheckKind = "synopsis"
	CheckDescription CheckKind = "description"
	CheckInputTypes  CheckKind = "input_types"
	CheckExamples    CheckKind = "examples"

	// Parameter-level check kinds.
	CheckParameterDocumented        CheckKind = "parameter_documented"
	CheckParameterRequiredOrDefault CheckKind = "parameter_required_or_default"
	CheckParameterInExample         CheckKind = "parameter_in_example"

	// Cross-function check kind.
	CheckParameterConsistency CheckKind = "parameter_consistency"

	// Severity levels.
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

type (
	// CheckKind identifies one of the independent help checks.
	CheckKind string

	// Severity identifies the severity of a failed check.
	Severity string

	// CheckResult is the outcome of a single check. Failures are reported,
	// never raised: a failed check does not stop the remaining checks.
	CheckResult struct {
		Kind      CheckKind             `json:"kind"`
		Function  helpdoc.FunctionName  `json:"function"`
		Parameter helpdoc.ParameterName `json:"parameter,omitempty"`
		Passed    bool                  `json:"passed"`
		// Observed carries the value the check saw, for diagnostic display.
		Observed string   `json:"observed,omitempty"`
		Severity Severity `json:"severity,omitempty"`
	}

	// ConsistencyRecord captures one (function, parameter, description)
	// observation. Records are collected while the per-function checks run
	// and consumed once at the end of a module scan.
	ConsistencyRecord struct {
		Function    helpdoc.FunctionName
		Parameter   helpdoc.ParameterName
		Description string
	}

	// DescriptionGroup is one distinct normalized description text and the
	// functions that use it for a given parameter name.
	DescriptionGroup struct {
		Text      string                 `json:"text"`
		Functions []helpdoc.FunctionName `json:"functions"`
	}

	// ModuleReport is the audit outcome for a single module.
	ModuleReport struct {
		Module      string                                        `json:"module"`
		Source      string                                        `json:"source,omitempty"`
		Results     []CheckResult                                 `json:"results"`
		Consistency map[helpdoc.ParameterName][]CheckResult       `json:"consistency"`
		Groups      map[helpdoc.ParameterName][]DescriptionGroup  `json:"groups,omitempty"`
	}

	// Metrics captures aggregate audit metrics.
	Metrics struct {
		TotalChecks    int               `json:"total_checks"`
		FailedChecks   int               `json:"failed_checks"`
		PassPercentage float64           `json:"pass_percentage"`
		FailuresByKind map[CheckKind]int `json:"failures_by_kind"`
		BySeverity     map[Severity]int  `json:"failures_by_severity"`
	}

	// AuditReport is the complete help audit report.
	AuditReport struct {
		GeneratedAt time.Time      `json:"generated_at"`
		Modules     []ModuleReport `json:"modules"`
		Metrics     Metrics        `json:"metrics"`
	}
)

// Label returns a human-readable identifier for the check, combining the
// function name, the parameter name when present, and the check kind.
func (r CheckResult) Label() string {
	if r.Parameter != "" {
		return fmt.Sprintf("%s: %s%s: %s", r.Function, helpdoc.ParameterMarker, r.Parameter, r.Kind)
	}
	return fmt.Sprintf("%s: %s", r.Function, r.Kind)
}

// Failed returns the subset of results that did not pass.
func Failed(results []CheckResult) []CheckResult {
	var failed []CheckResult
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}
