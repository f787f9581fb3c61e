// SPDX-License-Identifier: MPL-2.0

package helpcheck

import (
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"helplint-cli/pkg/helpdoc"
)

type (
	// TextUsage maps one distinct normalized description text to the
	// functions using it.
	TextUsage map[string][]helpdoc.FunctionName

	// ParameterTexts maps parameter names to their text usages within one
	// module.
	ParameterTexts map[helpdoc.ParameterName]TextUsage

	// Accumulator collects the parameter description texts observed across
	// module scans. It is an explicit value handed to CheckConsistency
	// rather than process-wide state, so independent audits never share or
	// clobber each other's aggregate.
	//
	// Safe for concurrent use.
	Accumulator struct {
		mu      sync.Mutex
		modules map[string]ParameterTexts
	}
)

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{modules: make(map[string]ParameterTexts)}
}

// Record stores the functions using one normalized text for a parameter in a
// module. Recording the same (module, parameter, text) again replaces the
// previous function list.
func (a *Accumulator) Record(module string, param helpdoc.ParameterName, text string, functions []helpdoc.FunctionName) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.modules == nil {
		a.modules = make(map[string]ParameterTexts)
	}
	params := a.modules[module]
	if params == nil {
		params = make(ParameterTexts)
		a.modules[module] = params
	}
	texts := params[param]
	if texts == nil {
		texts = make(TextUsage)
		params[param] = texts
	}
	texts[text] = append([]helpdoc.FunctionName(nil), functions...)
}

// Merge folds another accumulator's contents into this one. When both carry
// entries for the same (module, parameter), the other's entry replaces this
// one's wholesale: the most recent scan of a module is authoritative.
func (a *Accumulator) Merge(other *Accumulator) {
	if other == nil {
		return
	}
	snapshot := other.Snapshot()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.modules == nil {
		a.modules = make(map[string]ParameterTexts)
	}
	for module, params := range snapshot {
		dst := a.modules[module]
		if dst == nil {
			dst = make(ParameterTexts)
			a.modules[module] = dst
		}
		for param, texts := range params {
			dst[param] = texts
		}
	}
}

// Snapshot returns a deep copy of the accumulated state, keyed by module
// name. Mutating the copy does not affect the accumulator.
func (a *Accumulator) Snapshot() map[string]ParameterTexts {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make(map[string]ParameterTexts, len(a.modules))
	for module, params := range a.modules {
		paramsCopy := make(ParameterTexts, len(params))
		for param, texts := range params {
			textsCopy := make(TextUsage, len(texts))
			for text, fns := range texts {
				textsCopy[text] = append([]helpdoc.FunctionName(nil), fns...)
			}
			paramsCopy[param] = textsCopy
		}
		out[module] = paramsCopy
	}
	return out
}

// Modules returns the sorted module names present in the accumulator.
func (a *Accumulator) Modules() []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	names := maps.Keys(a.modules)
	slices.Sort(names)
	return names
}
