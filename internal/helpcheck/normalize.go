// SPDX-License-Identifier: MPL-2.0

package helpcheck

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"helplint-cli/pkg/helpdoc"
)

// ErrInvalidRewriteRule is the sentinel error wrapped by InvalidRewriteRuleError.
var ErrInvalidRewriteRule = errors.New("invalid rewrite rule")

type (
	// RewriteRule is a search/replace pair applied to a parameter's
	// description text before consistency comparison. Rules let a module
	// tolerate benign wording drift (e.g. mapping "removes" to "deletes").
	RewriteRule struct {
		// Search is a regular expression matched against the description.
		Search string `json:"search" mapstructure:"search"`
		// Replace is the replacement text, with $1-style group references.
		Replace string `json:"replace" mapstructure:"replace"`
	}

	// InvalidRewriteRuleError is returned when a rule's search pattern does
	// not compile. It wraps ErrInvalidRewriteRule for errors.Is().
	InvalidRewriteRuleError struct {
		Rule  RewriteRule
		Cause error
	}

	// RuleSet maps parameter names to their rewrite rules, in application
	// order.
	RuleSet map[helpdoc.ParameterName][]RewriteRule
)

// Error implements the error interface for InvalidRewriteRuleError.
func (e *InvalidRewriteRuleError) Error() string {
	return fmt.Sprintf("invalid rewrite rule search pattern %q: %v", e.Rule.Search, e.Cause)
}

// Unwrap returns ErrInvalidRewriteRule for errors.Is() compatibility.
func (e *InvalidRewriteRuleError) Unwrap() error { return ErrInvalidRewriteRule }

// IsValid returns whether the rule's search pattern compiles,
// and a list of validation errors if it does not.
func (r RewriteRule) IsValid() (bool, []error) {
	if _, err := regexp.Compile(r.Search); err != nil {
		return false, []error{&InvalidRewriteRuleError{Rule: r, Cause: err}}
	}
	return true, nil
}

// RulesFor returns the rewrite rules for a parameter name. Matching is
// case-insensitive: the config decode path lowercases map keys, so a rule
// keyed "Path" arrives as "path" and must still match a parameter declared
// as "Path". An exact-case entry wins over a folded one.
func (rs RuleSet) RulesFor(param helpdoc.ParameterName) []RewriteRule {
	if rules, ok := rs[param]; ok {
		return rules
	}
	return rs[foldParameterName(param)]
}

// foldParameterName lowercases a parameter name for case-insensitive
// configuration lookups.
func foldParameterName(param helpdoc.ParameterName) helpdoc.ParameterName {
	return helpdoc.ParameterName(strings.ToLower(string(param)))
}

// Validate checks every rule in the set, collecting all failures.
func (rs RuleSet) Validate() []error {
	var errs []error
	for _, rules := range rs {
		for _, rule := range rules {
			if _, ruleErrs := rule.IsValid(); len(ruleErrs) > 0 {
				errs = append(errs, ruleErrs...)
			}
		}
	}
	return errs
}

// NormalizeDescription collapses embedded newlines to single spaces, applies
// each rule's search/replace in the supplied order, and trims surrounding
// whitespace. The function is pure and idempotent for rule sets whose
// replacements do not reintroduce their own search patterns.
//
// Rules that fail to compile are skipped; Validate reports them up front.
func NormalizeDescription(text string, rules []RewriteRule) string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\n", " ")

	for _, rule := range rules {
		pattern, err := regexp.Compile(rule.Search)
		if err != nil {
			continue
		}
		normalized = pattern.ReplaceAllString(normalized, rule.Replace)
	}

	return strings.TrimSpace(normalized)
}
