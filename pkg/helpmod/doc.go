// SPDX-License-Identifier: MPL-2.0

// Package helpmod defines the schema and parsing for helpmod CUE manifests.
//
// A helpmod manifest declares a module's exported commands together with
// their inline help: synopsis, description, input types, examples, and
// per-parameter documentation. Manifests are schema-validated with CUE at
// parse time. Help completeness itself is NOT enforced by the schema:
// auditing help quality is the linter's job, so a manifest with a missing
// synopsis must parse cleanly and fail the lint instead.
package helpmod
