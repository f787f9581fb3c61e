// SPDX-License-Identifier: MPL-2.0

package helpcheck

// severityOrder fixes the display order for severity breakdowns.
var severityOrder = []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}

// kindOrder fixes the display order for per-kind breakdowns.
var kindOrder = []CheckKind{
	CheckSynopsis,
	CheckDescription,
	CheckInputTypes,
	CheckExamples,
	CheckParameterDocumented,
	CheckParameterRequiredOrDefault,
	CheckParameterInExample,
	CheckParameterConsistency,
}

// ApplySeverity assigns severities to results lacking one. Passed results
// are left untouched.
func ApplySeverity(results []CheckResult) []CheckResult {
	if len(results) == 0 {
		return results
	}

	updated := append([]CheckResult(nil), results...)
	for i, result := range updated {
		if result.Passed || result.Severity != "" {
			continue
		}
		updated[i].Severity = SeverityForCheck(result.Kind)
	}

	return updated
}

// SeverityForCheck maps a check kind to the severity of its failure. A
// missing synopsis hides the command from discovery entirely; disagreeing
// descriptions actively mislead; the rest degrade the help without lying.
func SeverityForCheck(kind CheckKind) Severity {
	switch kind {
	case CheckSynopsis:
		return SeverityCritical
	case CheckParameterConsistency, CheckParameterDocumented:
		return SeverityHigh
	case CheckDescription, CheckParameterRequiredOrDefault:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
