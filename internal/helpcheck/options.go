// SPDX-License-Identifier: MPL-2.0

package helpcheck

import (
	"fmt"
	"path/filepath"

	"helplint-cli/pkg/helpdoc"
)

type OutputFormat string

const (
	OutputFormatHuman OutputFormat = "human"
	OutputFormatJSON  OutputFormat = "json"
)

// Source supplies one module's help metadata to the audit. The two built-in
// adapters are manifest files and live command trees; anything that can
// materialize descriptors and documents can be audited.
type Source interface {
	// Name is the module name used in reports and in the aggregate.
	Name() string
	// Origin describes where the module came from (a file path, "cobra").
	Origin() string
	// Functions lists the declared commands and their parameters.
	Functions() []helpdoc.FunctionDescriptor
	// Documents maps command names to their help documents. Commands
	// missing from the map are audited against an empty document.
	Documents() map[helpdoc.FunctionName]*helpdoc.HelpDocument
}

type Options struct {
	Sources      []Source
	OutputPath   string
	OutputFormat OutputFormat
	Rules        RuleSet
	Exclusions   Exclusions
	// Accumulator receives the parameter text aggregate. When nil, Audit
	// allocates a private one for the run.
	Accumulator *Accumulator
}

func (o *Options) Normalize() error {
	if o.OutputFormat == "" {
		o.OutputFormat = OutputFormatHuman
	}
	if o.OutputPath != "" && !filepath.IsAbs(o.OutputPath) {
		abs, err := filepath.Abs(o.OutputPath)
		if err != nil {
			return err
		}
		o.OutputPath = abs
	}
	if o.Rules == nil {
		o.Rules = RuleSet{}
	}
	if o.Exclusions == nil {
		o.Exclusions = Exclusions{}
	}
	return o.Validate()
}

func (o Options) Validate() error {
	if len(o.Sources) == 0 {
		return fmt.Errorf("at least one module source is required")
	}
	if errs := o.Rules.Validate(); len(errs) > 0 {
		return fmt.Errorf("rewrite rules: %w", errs[0])
	}
	switch o.OutputFormat {
	case OutputFormatHuman, OutputFormatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", o.OutputFormat)
	}
}
