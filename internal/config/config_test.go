// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"helplint-cli/internal/helpcheck"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	cfg, resolved, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("a missing config file must not be an error: %v", err)
	}
	if resolved != "" {
		t.Fatalf("expected no resolved path, got %q", resolved)
	}
	if len(cfg.RewriteRules) != 0 || len(cfg.ConsistencyExclusions) != 0 {
		t.Fatalf("expected empty rule and exclusion sets, got %+v", cfg)
	}
	if cfg.Output.Format != ReportFormatHuman {
		t.Fatalf("expected default format, got %q", cfg.Output.Format)
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Fatalf("expected default color scheme, got %q", cfg.UI.ColorScheme)
	}
}

func TestLoadFromConfigDir(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
rewrite_rules: {
	path: [
		{search: "\\.$", replace: ""},
	]
}

consistency_exclusions: {
	path: ["legacy-item"]
}

ui: {
	verbose: true
}
`)

	cfg, resolved, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("loadWithOptions: %v", err)
	}
	if resolved != path {
		t.Fatalf("expected resolved path %q, got %q", path, resolved)
	}

	rules := cfg.RewriteRules["path"]
	if len(rules) != 1 || rules[0].Search != `\.$` {
		t.Fatalf("unexpected rewrite rules: %+v", cfg.RewriteRules)
	}
	if !cfg.ConsistencyExclusions.Excluded("path", "legacy-item") {
		t.Fatalf("expected legacy-item exclusion: %+v", cfg.ConsistencyExclusions)
	}
	if !cfg.UI.Verbose {
		t.Fatalf("expected verbose to be set")
	}
	// Unset fields keep their defaults.
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Fatalf("expected default color scheme, got %q", cfg.UI.ColorScheme)
	}
}

func TestLoadMixedCaseRuleKeysStillApply(t *testing.T) {
	// Viper lowercases map keys during decode, so a rule written for "Path"
	// arrives in the decoded RuleSet keyed "path". The checker's folded
	// lookups must still find it for a parameter declared as "Path".
	dir := t.TempDir()
	writeConfig(t, dir, `
rewrite_rules: {
	"Path": [
		{search: "\\.$", replace: ""},
	]
}

consistency_exclusions: {
	"Path": ["legacy-item"]
}
`)

	cfg, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("loadWithOptions: %v", err)
	}

	rules := cfg.RewriteRules.RulesFor("Path")
	if len(rules) != 1 || rules[0].Search != `\.$` {
		t.Fatalf("mixed-case rule key lost in decode: %+v", cfg.RewriteRules)
	}
	if !cfg.ConsistencyExclusions.Excluded("Path", "legacy-item") {
		t.Fatalf("mixed-case exclusion key lost in decode: %+v", cfg.ConsistencyExclusions)
	}

	results, _ := helpcheck.CheckConsistency("files", []helpcheck.ConsistencyRecord{
		{Function: "remove-item", Parameter: "Path", Description: "The file path."},
		{Function: "get-item", Parameter: "Path", Description: "The file path"},
	}, cfg.ConsistencyExclusions, cfg.RewriteRules, nil)
	if r := results["Path"]; len(r) != 1 || !r[0].Passed {
		t.Fatalf("loaded rule must reconcile the drift end to end: %+v", r)
	}
}

func TestLoadExplicitFileMissing(t *testing.T) {
	_, _, err := loadWithOptions(context.Background(), LoadOptions{
		ConfigFilePath: filepath.Join(t.TempDir(), "nope.cue"),
	})
	if err == nil {
		t.Fatalf("an explicit config path that does not exist must fail")
	}
}

func TestLoadRejectsInvalidCUE(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `ui: {color_scheme: "sepia"}`)

	if _, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: dir}); err == nil {
		t.Fatalf("expected schema violation for unknown color scheme")
	}
}

func TestLoadRejectsUncompilableRewriteRule(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
rewrite_rules: {
	path: [
		{search: "([", replace: ""},
	]
}
`)

	_, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err == nil {
		t.Fatalf("expected validation error for uncompilable pattern")
	}
	if !errors.Is(err, helpcheck.ErrInvalidRewriteRule) {
		t.Fatalf("expected ErrInvalidRewriteRule in the chain, got %v", err)
	}
}

func TestLoadCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := loadWithOptions(ctx, LoadOptions{ConfigDirPath: t.TempDir()}); err == nil {
		t.Fatalf("expected canceled context error")
	}
}

func TestGenerateCUERoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RewriteRules = helpcheck.RuleSet{
		"path": {{Search: `\.$`, Replace: ""}},
	}
	cfg.ConsistencyExclusions = helpcheck.Exclusions{
		"path": {"legacy-item"},
	}
	cfg.Output.Path = "help-audit.md"
	cfg.UI.Verbose = true

	dir := t.TempDir()
	writeConfig(t, dir, GenerateCUE(cfg))

	loaded, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("generated config must load: %v", err)
	}
	if len(loaded.RewriteRules["path"]) != 1 {
		t.Fatalf("rewrite rules lost in round trip: %+v", loaded.RewriteRules)
	}
	if !loaded.ConsistencyExclusions.Excluded("path", "legacy-item") {
		t.Fatalf("exclusions lost in round trip: %+v", loaded.ConsistencyExclusions)
	}
	if loaded.Output.Path != "help-audit.md" || !loaded.UI.Verbose {
		t.Fatalf("scalar fields lost in round trip: %+v", loaded)
	}
}

func TestConfigDirOverride(t *testing.T) {
	t.Cleanup(Reset)

	dir := t.TempDir()
	SetConfigDirOverride(dir)

	got, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir: %v", err)
	}
	if got != dir {
		t.Fatalf("expected override %q, got %q", dir, got)
	}
}

func TestProviderLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `ui: {verbose: true}`)

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.UI.Verbose {
		t.Fatalf("expected verbose from file")
	}
}
