// SPDX-License-Identifier: MPL-2.0

package helpmod

import (
	"fmt"
	"strings"
)

// GenerateCUE generates a CUE representation of a Module, suitable for
// writing a starter manifest.
func GenerateCUE(m *Module) string {
	var sb strings.Builder

	sb.WriteString("// helpmod manifest - inline help declarations for a command module\n")
	sb.WriteString("// Audit with: helplint check <path>\n\n")

	sb.WriteString(fmt.Sprintf("module: %q\n", m.Name))
	if m.Description != "" {
		sb.WriteString(fmt.Sprintf("description: %q\n", m.Description))
	}

	sb.WriteString("\nfunctions: [\n")
	for _, fn := range m.Functions {
		sb.WriteString("\t{\n")
		sb.WriteString(fmt.Sprintf("\t\tname: %q\n", fn.Name))
		if fn.Synopsis != "" {
			sb.WriteString(fmt.Sprintf("\t\tsynopsis: %q\n", fn.Synopsis))
		}
		if fn.Description != "" {
			writeMultiline(&sb, "\t\t", "description", fn.Description)
		}
		if len(fn.Inputs) > 0 {
			sb.WriteString("\t\tinputs: [")
			for i, input := range fn.Inputs {
				if i > 0 {
					sb.WriteString(", ")
				}
				sb.WriteString(fmt.Sprintf("%q", input))
			}
			sb.WriteString("]\n")
		}
		if len(fn.Examples) > 0 {
			sb.WriteString("\t\texamples: [\n")
			for _, example := range fn.Examples {
				sb.WriteString(fmt.Sprintf("\t\t\t%q,\n", example))
			}
			sb.WriteString("\t\t]\n")
		}
		if len(fn.Parameters) > 0 {
			sb.WriteString("\t\tparameters: [\n")
			for _, p := range fn.Parameters {
				sb.WriteString("\t\t\t{")
				sb.WriteString(fmt.Sprintf("name: %q", p.Name))
				if p.Description != "" {
					sb.WriteString(fmt.Sprintf(", description: %q", p.Description))
				}
				if p.Required {
					sb.WriteString(", required: true")
				}
				if p.Default != "" {
					sb.WriteString(fmt.Sprintf(", default: %q", p.Default))
				}
				if p.Common {
					sb.WriteString(", common: true")
				}
				sb.WriteString("},\n")
			}
			sb.WriteString("\t\t]\n")
		}
		sb.WriteString("\t},\n")
	}
	sb.WriteString("]\n")

	return sb.String()
}

// writeMultiline emits a field using CUE multi-line string syntax when the
// value contains newlines.
func writeMultiline(sb *strings.Builder, indent, field, value string) {
	if !strings.Contains(value, "\n") {
		sb.WriteString(fmt.Sprintf("%s%s: %q\n", indent, field, value))
		return
	}

	sb.WriteString(fmt.Sprintf("%s%s: \"\"\"\n", indent, field))
	for _, line := range strings.Split(value, "\n") {
		sb.WriteString(fmt.Sprintf("%s\t%s\n", indent, line))
	}
	sb.WriteString(fmt.Sprintf("%s\t\"\"\"\n", indent))
}

// StarterModule returns a minimal example module used by "helplint init".
func StarterModule(name string) *Module {
	return &Module{
		Name:        name,
		Description: "Inline help declarations for " + name,
		Functions: []Function{
			{
				Name:        "greet",
				Synopsis:    "Prints a greeting.",
				Description: "Prints a configurable greeting to standard output.",
				Inputs:      []string{"string"},
				Examples:    []string{"greet --name world"},
				Parameters: []Parameter{
					{Name: "name", Description: "The name to greet.", Required: true},
				},
			},
		},
	}
}
