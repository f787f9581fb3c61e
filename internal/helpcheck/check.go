// SPDX-License-Identifier: MPL-2.0

package helpcheck

import (
	"fmt"
	"regexp"
	"strings"

	"helplint-cli/pkg/helpdoc"
)

// CheckFunctionHelp runs the four function-level checks against a command's
// help document. All checks run regardless of earlier failures.
//
// The synopsis check also fails when the synopsis is textually equal to the
// command name: that is the framework fallback for a command with no help
// block at all.
func CheckFunctionHelp(fn helpdoc.FunctionName, doc *helpdoc.HelpDocument) []CheckResult {
	if doc == nil {
		doc = &helpdoc.HelpDocument{}
	}

	synopsis := strings.TrimSpace(doc.Synopsis)
	results := []CheckResult{
		{
			Kind:     CheckSynopsis,
			Function: fn,
			Passed:   synopsis != "" && synopsis != string(fn),
			Observed: synopsis,
		},
		{
			Kind:     CheckDescription,
			Function: fn,
			Passed:   strings.TrimSpace(doc.Description) != "",
			Observed: doc.Description,
		},
		{
			Kind:     CheckInputTypes,
			Function: fn,
			Passed:   len(doc.InputTypes) > 0,
			Observed: strings.Join(doc.InputTypes, ", "),
		},
		{
			Kind:     CheckExamples,
			Function: fn,
			Passed:   len(doc.Examples) > 0,
			Observed: fmt.Sprintf("%d example(s)", len(doc.Examples)),
		},
	}

	return results
}

// CheckParameterHelp runs the three parameter-level checks for a single
// declared parameter. Framework-injected parameters produce no results.
//
// The required-or-default check accepts either the declared attributes or
// the documented ones: a parameter passes when it is required or carries a
// non-empty default from either source. A boolean false default or an empty
// default counts as "no default".
func CheckParameterHelp(fn helpdoc.FunctionName, param helpdoc.ParameterDescriptor, doc *helpdoc.HelpDocument) []CheckResult {
	if param.IsCommon() {
		return nil
	}

	help, _ := doc.ParameterHelpFor(param.Name)

	required := param.Required || help.Required
	defaultValue := param.DefaultValue
	if defaultValue == "" {
		defaultValue = help.DefaultValue
	}

	examples := doc.ExampleTexts()

	results := []CheckResult{
		{
			Kind:      CheckParameterDocumented,
			Function:  fn,
			Parameter: param.Name,
			Passed:    strings.TrimSpace(help.Description) != "",
			Observed:  help.Description,
		},
		{
			Kind:      CheckParameterRequiredOrDefault,
			Function:  fn,
			Parameter: param.Name,
			Passed:    required || defaultValue != "",
			Observed:  fmt.Sprintf("required=%v default=%q", required, defaultValue),
		},
		{
			Kind:      CheckParameterInExample,
			Function:  fn,
			Parameter: param.Name,
			Passed:    parameterInExamples(param.Name, examples),
			Observed:  fmt.Sprintf("searched %d example(s) for %s%s", len(examples), helpdoc.ParameterMarker, param.Name),
		},
	}

	return results
}

// parameterInExamples reports whether the parameter occurs as a whole token
// in at least one example: the marker-prefixed name preceded by start of
// text or whitespace and followed by whitespace, "=", or end of text.
func parameterInExamples(name helpdoc.ParameterName, examples []string) bool {
	pattern := regexp.MustCompile(`(^|\s)` + regexp.QuoteMeta(helpdoc.ParameterMarker+string(name)) + `([=\s]|$)`)
	for _, example := range examples {
		if pattern.MatchString(example) {
			return true
		}
	}
	return false
}

// CheckModule runs the function-level and parameter-level checks for every
// command in the module and collects the consistency records consumed by
// CheckConsistency. Commands without a help document are checked against an
// empty one so every check still runs and fails visibly.
func CheckModule(functions []helpdoc.FunctionDescriptor, docs map[helpdoc.FunctionName]*helpdoc.HelpDocument) ([]CheckResult, []ConsistencyRecord) {
	var results []CheckResult
	var records []ConsistencyRecord

	for _, fn := range functions {
		doc := docs[fn.Name]
		results = append(results, CheckFunctionHelp(fn.Name, doc)...)

		for _, param := range fn.Parameters {
			if param.IsCommon() {
				continue
			}
			results = append(results, CheckParameterHelp(fn.Name, param, doc)...)

			help, _ := doc.ParameterHelpFor(param.Name)
			records = append(records, ConsistencyRecord{
				Function:    fn.Name,
				Parameter:   param.Name,
				Description: help.Description,
			})
		}
	}

	return results, records
}
