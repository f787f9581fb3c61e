// SPDX-License-Identifier: MPL-2.0

package introspect

import (
	"testing"

	"github.com/spf13/cobra"

	"helplint-cli/pkg/helpdoc"
)

func testTree() *cobra.Command {
	root := &cobra.Command{
		Use:   "filer",
		Short: "Manages files.",
	}
	root.PersistentFlags().Bool("verbose", false, "Enable verbose output.")

	remove := &cobra.Command{
		Use:         "remove",
		Short:       "Removes an item.",
		Long:        "Removes a file or directory at the given path.",
		Example:     "  filer remove --path /tmp/a --recurse",
		Annotations: map[string]string{AnnotationInputTypes: "string"},
		Run:         func(*cobra.Command, []string) {},
	}
	remove.Flags().String("path", "", "The file path.")
	remove.Flags().Bool("recurse", false, "Remove children as well.")
	_ = remove.MarkFlagRequired("path")

	hidden := &cobra.Command{
		Use:    "migrate-legacy",
		Hidden: true,
		Run:    func(*cobra.Command, []string) {},
	}

	root.AddCommand(remove, hidden)
	return root
}

func functionByName(t *testing.T, fns []helpdoc.FunctionDescriptor, name helpdoc.FunctionName) helpdoc.FunctionDescriptor {
	t.Helper()
	for _, fn := range fns {
		if fn.Name == name {
			return fn
		}
	}
	t.Fatalf("function %q not found in %v", name, fns)
	return helpdoc.FunctionDescriptor{}
}

func TestNewCommandSourceNilRoot(t *testing.T) {
	if _, err := NewCommandSource("x", nil); err == nil {
		t.Fatalf("expected error for nil root")
	}
}

func TestNewCommandSourceWalksTree(t *testing.T) {
	source, err := NewCommandSource("", testTree())
	if err != nil {
		t.Fatalf("NewCommandSource: %v", err)
	}
	if source.Name() != "filer" {
		t.Fatalf("expected module name from root command, got %q", source.Name())
	}

	fns := source.Functions()
	if len(fns) != 2 {
		t.Fatalf("expected root and remove (hidden skipped), got %d: %v", len(fns), fns)
	}
	functionByName(t, fns, "filer")
	functionByName(t, fns, "filer remove")
}

func TestCommandSourceFlagMapping(t *testing.T) {
	source, err := NewCommandSource("", testTree())
	if err != nil {
		t.Fatalf("NewCommandSource: %v", err)
	}

	remove := functionByName(t, source.Functions(), "filer remove")
	byName := make(map[helpdoc.ParameterName]helpdoc.ParameterDescriptor)
	for _, p := range remove.Parameters {
		byName[p.Name] = p
	}

	path, ok := byName["path"]
	if !ok {
		t.Fatalf("expected --path parameter")
	}
	if !path.Required {
		t.Fatalf("expected --path to be required")
	}
	if path.IsCommon() {
		t.Fatalf("--path is a declared parameter, not a framework one")
	}

	// A false boolean default counts as no default.
	if recurse := byName["recurse"]; recurse.DefaultValue != "" {
		t.Fatalf("expected empty default for bool flag, got %q", recurse.DefaultValue)
	}

	// Inherited and framework-injected flags carry the sentinel position.
	if verbose, ok := byName["verbose"]; !ok || !verbose.IsCommon() {
		t.Fatalf("expected inherited --verbose to be a framework parameter: %+v", verbose)
	}
	if help, ok := byName["help"]; ok && !help.IsCommon() {
		t.Fatalf("expected --help to be a framework parameter")
	}
}

func TestCommandSourceDocuments(t *testing.T) {
	source, err := NewCommandSource("", testTree())
	if err != nil {
		t.Fatalf("NewCommandSource: %v", err)
	}

	doc := source.Documents()["filer remove"]
	if doc == nil {
		t.Fatalf("expected a help document for 'filer remove'")
	}
	if doc.Synopsis != "Removes an item." {
		t.Fatalf("unexpected synopsis %q", doc.Synopsis)
	}
	if len(doc.InputTypes) != 1 || doc.InputTypes[0] != "string" {
		t.Fatalf("unexpected input types %v", doc.InputTypes)
	}
	if len(doc.Examples) != 1 || doc.Examples[0] != "filer remove --path /tmp/a --recurse" {
		t.Fatalf("unexpected examples %v", doc.Examples)
	}

	help, ok := doc.ParameterHelpFor("path")
	if !ok || help.Description != "The file path." {
		t.Fatalf("unexpected parameter help %+v ok=%v", help, ok)
	}
}

func TestSplitExamples(t *testing.T) {
	example := "\n  # remove a file\n  filer remove --path /tmp/a\n\n  filer remove --path /tmp/b --recurse\n"
	examples := splitExamples(example)
	if len(examples) != 2 {
		t.Fatalf("expected 2 examples (comments and blanks skipped), got %v", examples)
	}
}
