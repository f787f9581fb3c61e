// SPDX-License-Identifier: MPL-2.0

// Package helpcheck implements the help completeness and consistency checker.
//
// The checker runs a flat sequence of independent predicates over
// already-materialized help metadata: per-function checks (synopsis,
// description, input types, examples), per-parameter checks (documented,
// required-or-default, appears in an example), and a cross-function
// consistency check that every command documenting the same parameter name
// uses the same description text after rewrite normalization. Every check
// produces its own result; no failure masks another.
package helpcheck
