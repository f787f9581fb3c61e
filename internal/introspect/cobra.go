// SPDX-License-Identifier: MPL-2.0

package introspect

import (
	"errors"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"helplint-cli/pkg/helpdoc"
)

// AnnotationInputTypes is the cobra annotation key commands use to declare
// their accepted input types, comma separated.
const AnnotationInputTypes = "helplint.dev/input-types"

// CommandSource adapts a live cobra command tree into an auditable module.
// Hidden commands and hidden flags are skipped; inherited flags and the
// framework help/version flags become framework parameters.
type CommandSource struct {
	name      string
	functions []helpdoc.FunctionDescriptor
	documents map[helpdoc.FunctionName]*helpdoc.HelpDocument
}

// NewCommandSource walks the command tree rooted at root and materializes
// its help metadata. The module name defaults to the root command's name.
func NewCommandSource(name string, root *cobra.Command) (*CommandSource, error) {
	if root == nil {
		return nil, errors.New("root command is nil")
	}
	if name == "" {
		name = root.Name()
	}

	source := &CommandSource{
		name:      name,
		documents: make(map[helpdoc.FunctionName]*helpdoc.HelpDocument),
	}

	root.InitDefaultHelpFlag()

	var walk func(cmd *cobra.Command)
	walk = func(cmd *cobra.Command) {
		if cmd == nil || cmd.Hidden {
			return
		}

		source.addCommand(cmd)

		children := cmd.Commands()
		sort.Slice(children, func(i, j int) bool {
			return children[i].CommandPath() < children[j].CommandPath()
		})
		for _, child := range children {
			walk(child)
		}
	}

	walk(root)
	return source, nil
}

// Name returns the module name used in reports.
func (s *CommandSource) Name() string { return s.name }

// Origin identifies the adapter kind.
func (s *CommandSource) Origin() string { return "cobra" }

// Functions lists the visible commands and their flags.
func (s *CommandSource) Functions() []helpdoc.FunctionDescriptor { return s.functions }

// Documents maps command paths to the help extracted from the tree.
func (s *CommandSource) Documents() map[helpdoc.FunctionName]*helpdoc.HelpDocument {
	return s.documents
}

func (s *CommandSource) addCommand(cmd *cobra.Command) {
	fnName := helpdoc.FunctionName(cmd.CommandPath())
	if fnName == "" {
		fnName = helpdoc.FunctionName(cmd.Name())
	}

	doc := &helpdoc.HelpDocument{
		Synopsis:    cmd.Short,
		Description: cmd.Long,
		InputTypes:  splitInputTypes(cmd.Annotations[AnnotationInputTypes]),
		Examples:    splitExamples(cmd.Example),
		Parameters:  make(map[helpdoc.ParameterName]helpdoc.ParameterHelp),
	}

	fn := helpdoc.FunctionDescriptor{Name: fnName}

	position := 0
	addFlag := func(flag *pflag.Flag, common bool) {
		if flag.Hidden {
			return
		}

		name := helpdoc.ParameterName(flag.Name)
		descriptor := helpdoc.ParameterDescriptor{
			Name:         name,
			Position:     position,
			Required:     flagRequired(flag),
			DefaultValue: flagDefault(flag),
		}
		if common || isFrameworkFlag(flag) {
			descriptor.Position = helpdoc.PositionCommon
		} else {
			position++
		}
		fn.Parameters = append(fn.Parameters, descriptor)

		doc.Parameters[name] = helpdoc.ParameterHelp{
			Description:  flag.Usage,
			Required:     descriptor.Required,
			DefaultValue: descriptor.DefaultValue,
		}
	}

	cmd.LocalFlags().VisitAll(func(flag *pflag.Flag) { addFlag(flag, false) })
	cmd.InheritedFlags().VisitAll(func(flag *pflag.Flag) { addFlag(flag, true) })

	s.functions = append(s.functions, fn)
	s.documents[fnName] = doc
}

// isFrameworkFlag reports whether the flag is injected by the framework
// rather than declared by the command.
func isFrameworkFlag(flag *pflag.Flag) bool {
	return flag.Name == "help" || flag.Name == "version"
}

func flagRequired(flag *pflag.Flag) bool {
	required, ok := flag.Annotations[cobra.BashCompOneRequiredFlag]
	return ok && len(required) > 0 && required[0] == "true"
}

// flagDefault returns the flag's default value, treating a false boolean
// default as no default at all.
func flagDefault(flag *pflag.Flag) string {
	if flag.DefValue == "" {
		return ""
	}
	if flag.Value != nil && flag.Value.Type() == "bool" && flag.DefValue == "false" {
		return ""
	}
	return flag.DefValue
}

func splitExamples(example string) []string {
	var examples []string
	for _, line := range strings.Split(example, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		examples = append(examples, line)
	}
	return examples
}

func splitInputTypes(raw string) []string {
	var types []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		types = append(types, part)
	}
	return types
}
