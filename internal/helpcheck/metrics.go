// SPDX-License-Identifier: MPL-2.0

package helpcheck

// ComputeMetrics calculates pass percentage and failure counts across all
// module reports.
func ComputeMetrics(modules []ModuleReport) Metrics {
	metrics := Metrics{
		FailuresByKind: make(map[CheckKind]int),
		BySeverity:     make(map[Severity]int),
	}

	for _, kind := range kindOrder {
		metrics.FailuresByKind[kind] = 0
	}
	for _, severity := range severityOrder {
		metrics.BySeverity[severity] = 0
	}

	count := func(results []CheckResult) {
		for _, result := range results {
			metrics.TotalChecks++
			if result.Passed {
				continue
			}
			metrics.FailedChecks++
			metrics.FailuresByKind[result.Kind]++
			if result.Severity != "" {
				metrics.BySeverity[result.Severity]++
			}
		}
	}

	for _, module := range modules {
		count(module.Results)
		for _, results := range module.Consistency {
			count(results)
		}
	}

	if metrics.TotalChecks > 0 {
		passed := metrics.TotalChecks - metrics.FailedChecks
		metrics.PassPercentage = (float64(passed) / float64(metrics.TotalChecks)) * 100
	}

	return metrics
}
