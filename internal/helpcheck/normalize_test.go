// SPDX-License-Identifier: MPL-2.0

package helpcheck

import (
	"errors"
	"testing"
)

func TestNormalizeDescription(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		rules    []RewriteRule
		expected string
	}{
		{
			name:     "collapses newlines to spaces",
			text:     "The file\npath to remove.",
			expected: "The file path to remove.",
		},
		{
			name:     "handles windows line endings",
			text:     "The file\r\npath.",
			expected: "The file path.",
		},
		{
			name:     "trims surrounding whitespace",
			text:     "  The path.  ",
			expected: "The path.",
		},
		{
			name:     "strips trailing period via rule",
			text:     "The file path.",
			rules:    []RewriteRule{{Search: `\.$`, Replace: ""}},
			expected: "The file path",
		},
		{
			name: "rules apply in order",
			text: "removes the item",
			rules: []RewriteRule{
				{Search: "removes", Replace: "deletes"},
				{Search: "deletes the", Replace: "deletes a"},
			},
			expected: "deletes a item",
		},
		{
			name:     "invalid rule is skipped",
			text:     "The path.",
			rules:    []RewriteRule{{Search: "([", Replace: "x"}},
			expected: "The path.",
		},
		{
			name:     "empty text",
			text:     "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDescription(tt.text, tt.rules)
			if got != tt.expected {
				t.Fatalf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestNormalizeDescriptionIdempotent(t *testing.T) {
	rules := []RewriteRule{
		{Search: `\.$`, Replace: ""},
		{Search: "removes", Replace: "deletes"},
	}
	text := "Removes the item\nat the given path."

	once := NormalizeDescription(text, rules)
	twice := NormalizeDescription(once, rules)
	if once != twice {
		t.Fatalf("normalization must be idempotent: %q != %q", once, twice)
	}
}

func TestRuleSetRulesFor(t *testing.T) {
	rs := RuleSet{
		"path":  {{Search: `\.$`, Replace: ""}},
		"Force": {{Search: "force", Replace: "overwrite"}},
	}

	if rules := rs.RulesFor("path"); len(rules) != 1 {
		t.Fatalf("exact match: expected 1 rule, got %d", len(rules))
	}
	// A rule keyed lowercase (the config decode path folds keys) must match
	// a mixed-case parameter name.
	if rules := rs.RulesFor("Path"); len(rules) != 1 || rules[0].Search != `\.$` {
		t.Fatalf("folded match: expected the path rule, got %v", rules)
	}
	// An exact-case entry wins over folding.
	if rules := rs.RulesFor("Force"); len(rules) != 1 || rules[0].Replace != "overwrite" {
		t.Fatalf("exact-case entry must win, got %v", rules)
	}
	if rules := rs.RulesFor("missing"); rules != nil {
		t.Fatalf("unknown parameter must yield no rules, got %v", rules)
	}
}

func TestRuleSetValidate(t *testing.T) {
	rs := RuleSet{
		"path": {{Search: `\.$`, Replace: ""}},
		"bad":  {{Search: "([", Replace: ""}},
	}

	errs := rs.Validate()
	if len(errs) != 1 {
		t.Fatalf("expected 1 validation error, got %d", len(errs))
	}
	if !errors.Is(errs[0], ErrInvalidRewriteRule) {
		t.Fatalf("expected ErrInvalidRewriteRule, got %v", errs[0])
	}

	var ruleErr *InvalidRewriteRuleError
	if !errors.As(errs[0], &ruleErr) {
		t.Fatalf("expected InvalidRewriteRuleError, got %T", errs[0])
	}
	if ruleErr.Rule.Search != "([" {
		t.Fatalf("error must carry the offending rule, got %q", ruleErr.Rule.Search)
	}
}
