// SPDX-License-Identifier: MPL-2.0

package helpdoc

import (
	"math"
	"sort"
)

const (
	// ParameterMarker is the token that introduces a parameter on a command
	// line. Examples must reference parameters as "--<name>".
	ParameterMarker = "--"

	// PositionCommon is the sentinel position marking a framework-injected
	// parameter (help, version, inherited persistent flags). Parameters at
	// this position are excluded from all per-parameter checks.
	PositionCommon = math.MinInt32
)

type (
	// ParameterDescriptor describes a single declared parameter of a command.
	ParameterDescriptor struct {
		// Name is the bare parameter name, without the marker prefix.
		Name ParameterName
		// Position is the declaration order of the parameter, or
		// PositionCommon for framework-injected parameters.
		Position int
		// Required indicates whether the parameter must be provided.
		Required bool
		// DefaultValue is the declared default, empty when none exists.
		DefaultValue string
	}

	// FunctionDescriptor describes an exported command and its declared
	// parameters, in declaration order.
	FunctionDescriptor struct {
		Name       FunctionName
		Parameters []ParameterDescriptor
	}

	// ParameterHelp is the documented help block of a single parameter.
	ParameterHelp struct {
		// Description is the documented help text for the parameter.
		Description string
		// Required mirrors the documented required attribute.
		Required bool
		// DefaultValue mirrors the documented default, empty when none.
		DefaultValue string
	}

	// HelpDocument is the parsed inline documentation of a command.
	HelpDocument struct {
		// Synopsis is the one-line summary. A synopsis textually equal to
		// the command name is the framework fallback for a missing one.
		Synopsis string
		// Description is the long-form help text.
		Description string
		// InputTypes names the input types the command accepts.
		InputTypes []string
		// Examples holds example invocation snippets.
		Examples []string
		// Parameters maps parameter names to their documented help.
		Parameters map[ParameterName]ParameterHelp
	}
)

// IsCommon reports whether the parameter is framework-injected.
func (p ParameterDescriptor) IsCommon() bool {
	return p.Position == PositionCommon
}

// DeclaredParameters returns the command's own parameters, excluding
// framework-injected ones, in declaration order.
func (f FunctionDescriptor) DeclaredParameters() []ParameterDescriptor {
	var params []ParameterDescriptor
	for _, p := range f.Parameters {
		if p.IsCommon() {
			continue
		}
		params = append(params, p)
	}
	return params
}

// ExampleTexts returns the document's example snippets, or nil for a
// missing document.
func (d *HelpDocument) ExampleTexts() []string {
	if d == nil {
		return nil
	}
	return d.Examples
}

// ParameterHelpFor returns the documented help for the named parameter
// and whether any documentation exists for it.
func (d *HelpDocument) ParameterHelpFor(name ParameterName) (ParameterHelp, bool) {
	if d == nil || d.Parameters == nil {
		return ParameterHelp{}, false
	}
	help, ok := d.Parameters[name]
	return help, ok
}

// DocumentedParameterNames returns the documented parameter names sorted
// for stable iteration.
func (d *HelpDocument) DocumentedParameterNames() []ParameterName {
	if d == nil || len(d.Parameters) == 0 {
		return nil
	}
	names := make([]ParameterName, 0, len(d.Parameters))
	for name := range d.Parameters {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
