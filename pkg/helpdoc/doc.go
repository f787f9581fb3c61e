// SPDX-License-Identifier: MPL-2.0

// Package helpdoc defines the strongly-typed model for command help metadata.
//
// A module exposes a set of commands; each command declares parameters and
// carries a HelpDocument with its parsed inline documentation (synopsis,
// description, input types, examples, and per-parameter help). Introspection
// adapters (see internal/introspect) are the only place that deals with
// loosely-typed source data; everything downstream consumes these types.
package helpdoc
