// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/helplint/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/helplint/config.cue on macOS, %APPDATA%\helplint\config.cue
// on Windows). The package provides type-safe configuration access and carries the rewrite
// rules and consistency exclusions the checker consumes, plus output and UI settings.
//
// Configuration validation is performed against a CUE schema (config_schema.cue) to ensure
// type safety and provide clear error messages for invalid configurations. A missing config
// file is never an error: the checker runs with empty rule and exclusion sets.
package config
