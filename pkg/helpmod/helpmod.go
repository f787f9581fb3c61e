// SPDX-License-Identifier: MPL-2.0

package helpmod

import (
	_ "embed"
	"fmt"
	"os"

	"helplint-cli/pkg/cueutil"
	"helplint-cli/pkg/helpdoc"
)

//go:embed helpmod_schema.cue
var helpmodSchema string

// ManifestName is the standard file name for a helpmod manifest.
const ManifestName = "helpmod.cue"

// ManifestSuffix is the suffix for named manifests (e.g. "files.helpmod.cue").
const ManifestSuffix = ".helpmod.cue"

type (
	// Parameter documents a single declared parameter of a command.
	Parameter struct {
		// Name is the bare parameter name (no "--" marker).
		Name string `json:"name"`
		// Description provides help text for the parameter.
		Description string `json:"description,omitempty"`
		// Required indicates whether the parameter must be provided.
		Required bool `json:"required,omitempty"`
		// Default is the declared default value (optional).
		Default string `json:"default,omitempty"`
		// Common marks a framework-injected parameter that lint checks skip.
		Common bool `json:"common,omitempty"`
	}

	// Function declares an exported command and its inline help.
	Function struct {
		// Name is the command identifier.
		Name string `json:"name"`
		// Synopsis is the one-line summary.
		Synopsis string `json:"synopsis,omitempty"`
		// Description is the long-form help text.
		Description string `json:"description,omitempty"`
		// Inputs names the input types the command accepts.
		Inputs []string `json:"inputs,omitempty"`
		// Examples holds example invocation snippets.
		Examples []string `json:"examples,omitempty"`
		// Parameters documents the command's declared parameters.
		Parameters []Parameter `json:"parameters,omitempty"`
	}

	// Module is a complete parsed helpmod manifest.
	Module struct {
		// Name is the module identifier.
		Name string `json:"module"`
		// Description summarizes the module's purpose.
		Description string `json:"description,omitempty"`
		// Functions lists the module's exported commands.
		Functions []Function `json:"functions"`

		// FilePath stores where the manifest was loaded from (not in CUE).
		FilePath string `json:"-"`
	}
)

// Parse reads and parses a helpmod manifest from the given path.
func Parse(path string) (*Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read helpmod manifest at %s: %w", path, err)
	}

	return ParseBytes(data, path)
}

// ParseBytes parses helpmod manifest content from bytes. The path parameter
// is used for error messages and recorded as the module's FilePath.
func ParseBytes(data []byte, path string) (*Module, error) {
	result, err := cueutil.ParseAndDecodeString[Module](helpmodSchema, data, "#Module",
		cueutil.WithFilename(path))
	if err != nil {
		return nil, err
	}

	mod := result.Value
	mod.FilePath = path

	if err := mod.validate(); err != nil {
		return nil, err
	}

	return mod, nil
}

// validate enforces the structural constraints CUE cannot express:
// function name uniqueness and per-function parameter name uniqueness.
func (m *Module) validate() error {
	seenFunctions := make(map[string]struct{}, len(m.Functions))
	for _, fn := range m.Functions {
		if _, dup := seenFunctions[fn.Name]; dup {
			return fmt.Errorf("helpmod manifest at %s declares function %q more than once", m.FilePath, fn.Name)
		}
		seenFunctions[fn.Name] = struct{}{}

		seenParams := make(map[string]struct{}, len(fn.Parameters))
		for _, p := range fn.Parameters {
			if _, dup := seenParams[p.Name]; dup {
				return fmt.Errorf("function %q in helpmod manifest at %s declares parameter %q more than once", fn.Name, m.FilePath, p.Name)
			}
			seenParams[p.Name] = struct{}{}
		}
	}
	return nil
}

// GetFunction finds a function by name, or nil when absent.
func (m *Module) GetFunction(name string) *Function {
	for i := range m.Functions {
		if m.Functions[i].Name == name {
			return &m.Functions[i]
		}
	}
	return nil
}

// Descriptors converts the manifest into the strongly-typed model consumed
// by the checker: one descriptor per function plus its help document.
// Parameter positions follow declaration order; parameters marked common
// get the sentinel position.
func (m *Module) Descriptors() ([]helpdoc.FunctionDescriptor, map[helpdoc.FunctionName]*helpdoc.HelpDocument) {
	descriptors := make([]helpdoc.FunctionDescriptor, 0, len(m.Functions))
	docs := make(map[helpdoc.FunctionName]*helpdoc.HelpDocument, len(m.Functions))

	for _, fn := range m.Functions {
		name := helpdoc.FunctionName(fn.Name)

		descriptor := helpdoc.FunctionDescriptor{Name: name}
		doc := &helpdoc.HelpDocument{
			Synopsis:    fn.Synopsis,
			Description: fn.Description,
			InputTypes:  append([]string(nil), fn.Inputs...),
			Examples:    append([]string(nil), fn.Examples...),
			Parameters:  make(map[helpdoc.ParameterName]helpdoc.ParameterHelp, len(fn.Parameters)),
		}

		for i, p := range fn.Parameters {
			position := i
			if p.Common {
				position = helpdoc.PositionCommon
			}
			descriptor.Parameters = append(descriptor.Parameters, helpdoc.ParameterDescriptor{
				Name:         helpdoc.ParameterName(p.Name),
				Position:     position,
				Required:     p.Required,
				DefaultValue: p.Default,
			})

			if p.Description != "" || p.Required || p.Default != "" {
				doc.Parameters[helpdoc.ParameterName(p.Name)] = helpdoc.ParameterHelp{
					Description:  p.Description,
					Required:     p.Required,
					DefaultValue: p.Default,
				}
			}
		}

		descriptors = append(descriptors, descriptor)
		docs[name] = doc
	}

	return descriptors, docs
}
