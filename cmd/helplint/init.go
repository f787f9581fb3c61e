// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"helplint-cli/pkg/helpmod"

	"github.com/spf13/cobra"
)

var (
	initForce bool

	initCmd = &cobra.Command{
		Use:   "init [module-name]",
		Short: "Create a starter helpmod manifest",
		Long: `Create a starter helpmod manifest in the current directory.

The manifest declares one fully documented example function; replace it
with your module's commands. The module name defaults to the current
directory's name.`,
		Example: `  helplint init
  helplint init files`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}
)

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing manifest")
}

func runInit(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	if name == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine working directory: %w", err)
		}
		name = filepath.Base(wd)
	}

	path := helpmod.ManifestName
	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	content := helpmod.GenerateCUE(helpmod.StarterModule(name))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	fmt.Printf("%s Created %s for module %s\n", SuccessStyle.Render("✓"), CmdStyle.Render(path), CmdStyle.Render(name))
	fmt.Printf("%s\n", SubtitleStyle.Render("Lint it with: helplint check "+path))
	return nil
}
