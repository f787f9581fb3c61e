// SPDX-License-Identifier: MPL-2.0

package helpcheck

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"helplint-cli/pkg/helpdoc"
)

// Exclusions maps parameter names to the functions whose description for
// that parameter is left out of the consistency comparison.
type Exclusions map[helpdoc.ParameterName][]helpdoc.FunctionName

// Excluded reports whether the given (parameter, function) pair is excluded
// from consistency checking. Parameter matching is case-insensitive for the
// same reason RuleSet.RulesFor folds: config decoding lowercases map keys.
func (e Exclusions) Excluded(param helpdoc.ParameterName, fn helpdoc.FunctionName) bool {
	if slices.Contains(e[param], fn) {
		return true
	}
	return slices.Contains(e[foldParameterName(param)], fn)
}

// CheckConsistency compares the normalized description texts of every
// parameter name documented by more than zero functions in a module. A
// parameter passes when all non-excluded functions agree on exactly one
// normalized text. The observed value lists every distinct text with the
// functions that use it, so a failure shows the full disagreement at once.
//
// Records are also folded into the accumulator when one is supplied, making
// the aggregate available for cross-module reporting.
func CheckConsistency(module string, records []ConsistencyRecord, exclusions Exclusions, rules RuleSet, acc *Accumulator) (map[helpdoc.ParameterName][]CheckResult, map[helpdoc.ParameterName][]DescriptionGroup) {
	byParam := make(map[helpdoc.ParameterName][]ConsistencyRecord)
	for _, rec := range records {
		if exclusions.Excluded(rec.Parameter, rec.Function) {
			continue
		}
		byParam[rec.Parameter] = append(byParam[rec.Parameter], rec)
	}

	results := make(map[helpdoc.ParameterName][]CheckResult)
	groups := make(map[helpdoc.ParameterName][]DescriptionGroup)

	params := maps.Keys(byParam)
	slices.Sort(params)

	for _, param := range params {
		recs := byParam[param]

		byText := make(map[string][]helpdoc.FunctionName)
		for _, rec := range recs {
			text := NormalizeDescription(rec.Description, rules.RulesFor(param))
			byText[text] = append(byText[text], rec.Function)
		}

		texts := maps.Keys(byText)
		slices.Sort(texts)

		var paramGroups []DescriptionGroup
		for _, text := range texts {
			fns := byText[text]
			slices.Sort(fns)
			paramGroups = append(paramGroups, DescriptionGroup{Text: text, Functions: fns})
		}
		groups[param] = paramGroups

		if acc != nil {
			for _, group := range paramGroups {
				acc.Record(module, param, group.Text, group.Functions)
			}
		}

		results[param] = []CheckResult{{
			Kind:      CheckParameterConsistency,
			Parameter: param,
			Passed:    len(byText) == 1,
			Observed:  describeGroups(paramGroups),
		}}
	}

	return results, groups
}

// describeGroups renders the distinct texts and their users as a single
// diagnostic line per text.
func describeGroups(groups []DescriptionGroup) string {
	lines := make([]string, 0, len(groups))
	for _, group := range groups {
		names := make([]string, 0, len(group.Functions))
		for _, fn := range group.Functions {
			names = append(names, string(fn))
		}
		lines = append(lines, fmt.Sprintf("%q used by %s", group.Text, strings.Join(names, ", ")))
	}
	return strings.Join(lines, "; ")
}
