// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error presentation: actionable errors
// with suggestions, and rendered markdown cards for well-known failure modes.
package issue
