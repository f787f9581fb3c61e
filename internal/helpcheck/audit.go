// SPDX-License-Identifier: MPL-2.0

package helpcheck

import (
	"context"
	"fmt"
	"time"
)

// Audit runs the full help audit over every source in the options: the
// per-function and per-parameter checks, then the cross-function consistency
// comparison, then severity assignment and metrics.
func Audit(ctx context.Context, opts Options) (*AuditReport, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	acc := opts.Accumulator
	if acc == nil {
		acc = NewAccumulator()
	}

	modules := make([]ModuleReport, 0, len(opts.Sources))
	for _, source := range opts.Sources {
		if err := checkContext(ctx); err != nil {
			return nil, err
		}

		results, records := CheckModule(source.Functions(), source.Documents())
		results = ApplySeverity(results)

		consistency, groups := CheckConsistency(source.Name(), records, opts.Exclusions, opts.Rules, acc)
		for param, paramResults := range consistency {
			consistency[param] = ApplySeverity(paramResults)
		}

		modules = append(modules, ModuleReport{
			Module:      source.Name(),
			Source:      source.Origin(),
			Results:     results,
			Consistency: consistency,
			Groups:      groups,
		})
	}

	report := &AuditReport{
		GeneratedAt: time.Now().UTC(),
		Modules:     modules,
		Metrics:     ComputeMetrics(modules),
	}

	return report, nil
}

func checkContext(ctx context.Context) error {
	if ctx == nil {
		return nil
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("context canceled: %w", ctx.Err())
	default:
		return nil
	}
}
