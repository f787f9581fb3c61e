// SPDX-License-Identifier: MPL-2.0

// Package introspect adapts help metadata sources into the descriptor and
// document shapes the checker consumes. Two adapters exist: helpmod manifest
// files on disk, and live cobra command trees inspected in process.
package introspect
