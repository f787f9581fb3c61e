// SPDX-License-Identifier: MPL-2.0

package introspect

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"

	"helplint-cli/pkg/helpdoc"
	"helplint-cli/pkg/helpmod"
)

// ModuleSource adapts a parsed helpmod manifest into an auditable module.
type ModuleSource struct {
	module    *helpmod.Module
	functions []helpdoc.FunctionDescriptor
	documents map[helpdoc.FunctionName]*helpdoc.HelpDocument
}

// NewModuleSource wraps an already-parsed manifest.
func NewModuleSource(module *helpmod.Module) (*ModuleSource, error) {
	if module == nil {
		return nil, fmt.Errorf("module is nil")
	}

	functions, documents := module.Descriptors()
	return &ModuleSource{
		module:    module,
		functions: functions,
		documents: documents,
	}, nil
}

// LoadModuleSource parses the manifest at path and wraps it.
func LoadModuleSource(path string) (*ModuleSource, error) {
	module, err := helpmod.Parse(path)
	if err != nil {
		return nil, err
	}
	return NewModuleSource(module)
}

// Name returns the manifest's module name.
func (s *ModuleSource) Name() string { return s.module.Name }

// Origin returns the manifest file path.
func (s *ModuleSource) Origin() string { return s.module.FilePath }

// Functions lists the declared commands and their parameters.
func (s *ModuleSource) Functions() []helpdoc.FunctionDescriptor { return s.functions }

// Documents maps command names to the help declared in the manifest.
func (s *ModuleSource) Documents() map[helpdoc.FunctionName]*helpdoc.HelpDocument {
	return s.documents
}

// DiscoverManifests resolves each path to the manifest files beneath it. A
// file path must name a manifest; a directory is walked recursively for
// "helpmod.cue" and "*.helpmod.cue" files. Results are sorted and
// de-duplicated.
func DiscoverManifests(paths []string) ([]string, error) {
	var manifests []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if !info.IsDir() {
			if !isManifestName(filepath.Base(path)) {
				return nil, fmt.Errorf("not a helpmod manifest: %s", path)
			}
			manifests = append(manifests, path)
			continue
		}

		err = filepath.WalkDir(path, func(entry string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if isManifestName(d.Name()) {
				manifests = append(manifests, entry)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", path, err)
		}
	}

	slices.Sort(manifests)
	return slices.Compact(manifests), nil
}

func isManifestName(name string) bool {
	return name == helpmod.ManifestName || strings.HasSuffix(name, helpmod.ManifestSuffix)
}

// LoadSources parses every discovered manifest under the given paths.
func LoadSources(paths []string) ([]*ModuleSource, error) {
	manifests, err := DiscoverManifests(paths)
	if err != nil {
		return nil, err
	}

	sources := make([]*ModuleSource, 0, len(manifests))
	for _, manifest := range manifests {
		source, err := LoadModuleSource(manifest)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", manifest, err)
		}
		sources = append(sources, source)
	}
	return sources, nil
}
