// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"helplint-cli/internal/config"
	"helplint-cli/internal/helpcheck"
	"helplint-cli/pkg/helpdoc"
	"helplint-cli/pkg/helpmod"

	"github.com/spf13/cobra"
)

// writeManifest writes a helpmod manifest into dir and returns its path.
func writeManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s) = %v", path, err)
	}
	return path
}

// resetCheckFlags restores the check command's package-level flag vars.
func resetCheckFlags(t *testing.T) {
	t.Helper()
	origOut, origFormat, origJSON, origSelf := checkOutPath, checkOutputFormat, checkJSON, checkSelf
	origLoaded := loadedConfig
	t.Cleanup(func() {
		checkOutPath, checkOutputFormat, checkJSON, checkSelf = origOut, origFormat, origJSON, origSelf
		loadedConfig = origLoaded
	})
	checkOutPath, checkOutputFormat, checkJSON, checkSelf = "", "", false, false
	loadedConfig = config.DefaultConfig()
}

const brokenManifest = `module: "demo"
functions: [
	{
		name: "copy"
		synopsis: "copy"
		parameters: [
			{name: "dest"},
		]
	},
]
`

func TestGatherSources(t *testing.T) {
	t.Run("loads manifests from a directory", func(t *testing.T) {
		dir := t.TempDir()
		writeManifest(t, dir, helpmod.ManifestName, helpmod.GenerateCUE(helpmod.StarterModule("demo")))

		sources, err := gatherSources([]string{dir}, false)
		if err != nil {
			t.Fatalf("gatherSources() = %v", err)
		}
		if len(sources) != 1 {
			t.Fatalf("len(sources) = %d, want 1", len(sources))
		}
		if sources[0].Name() != "demo" {
			t.Errorf("source name = %q, want %q", sources[0].Name(), "demo")
		}
	})

	t.Run("self adds the helplint command tree", func(t *testing.T) {
		sources, err := gatherSources(nil, true)
		if err != nil {
			t.Fatalf("gatherSources() = %v", err)
		}
		if len(sources) != 1 {
			t.Fatalf("len(sources) = %d, want 1", len(sources))
		}
		if got := sources[0].Name(); got != "helplint" {
			t.Errorf("source name = %q, want %q", got, "helplint")
		}
	})

	t.Run("no sources selected fails", func(t *testing.T) {
		if _, err := gatherSources(nil, false); err == nil {
			t.Fatal("gatherSources() = nil, want error")
		}
	})

	t.Run("directory without manifests fails", func(t *testing.T) {
		if _, err := gatherSources([]string{t.TempDir()}, false); err == nil {
			t.Fatal("gatherSources() = nil, want error")
		}
	})

	t.Run("unparseable manifest fails", func(t *testing.T) {
		dir := t.TempDir()
		writeManifest(t, dir, helpmod.ManifestName, "module: 42\n")

		if _, err := gatherSources([]string{dir}, false); err == nil {
			t.Fatal("gatherSources() = nil, want error")
		}
	})
}

func TestRunCheck(t *testing.T) {
	// Not parallel: subtests mutate package-level flag vars.

	newCommand := func(out *bytes.Buffer) *cobra.Command {
		c := &cobra.Command{Use: "check"}
		c.SetContext(context.Background())
		c.SetOut(out)
		c.SetErr(out)
		return c
	}

	t.Run("clean module passes", func(t *testing.T) {
		resetCheckFlags(t)
		dir := t.TempDir()
		writeManifest(t, dir, helpmod.ManifestName, helpmod.GenerateCUE(helpmod.StarterModule("demo")))

		var out bytes.Buffer
		if err := runCheck(newCommand(&out), []string{dir}); err != nil {
			t.Fatalf("runCheck() = %v", err)
		}
		if !strings.Contains(out.String(), "All help checks passed") {
			t.Errorf("output missing pass banner:\n%s", out.String())
		}
	})

	t.Run("failing module returns exit error", func(t *testing.T) {
		resetCheckFlags(t)
		dir := t.TempDir()
		writeManifest(t, dir, helpmod.ManifestName, brokenManifest)

		var out bytes.Buffer
		err := runCheck(newCommand(&out), []string{dir})
		if err == nil {
			t.Fatal("runCheck() = nil, want exit error")
		}

		var exitErr *ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("runCheck() error type = %T, want *ExitError", err)
		}
		if exitErr.Code != 1 {
			t.Errorf("exit code = %d, want 1", exitErr.Code)
		}
		if !strings.Contains(out.String(), "copy") {
			t.Errorf("summary does not name the failing function:\n%s", out.String())
		}
	})

	t.Run("consistency disagreement shows its severity", func(t *testing.T) {
		resetCheckFlags(t)
		dir := t.TempDir()
		writeManifest(t, dir, helpmod.ManifestName, driftManifest)

		var out bytes.Buffer
		err := runCheck(newCommand(&out), []string{dir})
		if err == nil {
			t.Fatal("runCheck() = nil, want exit error")
		}

		if !strings.Contains(out.String(), "descriptions disagree") {
			t.Fatalf("summary missing disagreement line:\n%s", out.String())
		}
		badge := fmt.Sprintf("[%s]", helpcheck.SeverityForCheck(helpcheck.CheckParameterConsistency))
		if !strings.Contains(out.String(), badge) {
			t.Errorf("summary badge does not match the consistency severity %s:\n%s", badge, out.String())
		}
	})

	t.Run("json summary", func(t *testing.T) {
		resetCheckFlags(t)
		checkJSON = true
		dir := t.TempDir()
		writeManifest(t, dir, helpmod.ManifestName, helpmod.GenerateCUE(helpmod.StarterModule("demo")))

		var out bytes.Buffer
		if err := runCheck(newCommand(&out), []string{dir}); err != nil {
			t.Fatalf("runCheck() = %v", err)
		}

		var summary helpcheck.Summary
		if err := json.Unmarshal(out.Bytes(), &summary); err != nil {
			t.Fatalf("summary is not valid JSON: %v\n%s", err, out.String())
		}
		if summary.Metrics.FailedChecks != 0 {
			t.Errorf("FailedChecks = %d, want 0", summary.Metrics.FailedChecks)
		}
	})

	t.Run("writes markdown report", func(t *testing.T) {
		resetCheckFlags(t)
		dir := t.TempDir()
		writeManifest(t, dir, helpmod.ManifestName, helpmod.GenerateCUE(helpmod.StarterModule("demo")))
		checkOutPath = filepath.Join(dir, "audit.md")

		var out bytes.Buffer
		if err := runCheck(newCommand(&out), []string{dir}); err != nil {
			t.Fatalf("runCheck() = %v", err)
		}

		data, err := os.ReadFile(checkOutPath)
		if err != nil {
			t.Fatalf("ReadFile(report) = %v", err)
		}
		if !strings.Contains(string(data), "# Help Audit Report") {
			t.Errorf("report missing title:\n%s", data)
		}
	})
}

func TestDisagreeingParameters(t *testing.T) {
	module := helpcheck.ModuleReport{
		Consistency: map[helpdoc.ParameterName][]helpcheck.CheckResult{},
	}
	if got := disagreeingParameters(module); len(got) != 0 {
		t.Errorf("disagreeingParameters(empty) = %v, want none", got)
	}

	module.Consistency["path"] = []helpcheck.CheckResult{{Passed: true}}
	module.Consistency["force"] = []helpcheck.CheckResult{{Passed: false}}
	got := disagreeingParameters(module)
	if len(got) != 1 || got[0] != "force" {
		t.Errorf("disagreeingParameters() = %v, want [force]", got)
	}
}
