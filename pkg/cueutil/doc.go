// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing utilities.
//
// It consolidates the parsing pattern used by the helpmod and config
// packages: compile the embedded schema, compile and unify the user data,
// then validate and decode into a Go struct.
//
// # Usage
//
//	//go:embed helpmod_schema.cue
//	var schemaBytes []byte
//
//	result, err := cueutil.ParseAndDecode[Module](
//	    schemaBytes,
//	    userFileBytes,
//	    "#Module",
//	    cueutil.WithFilename("helpmod.cue"),
//	)
//	if err != nil {
//	    return nil, err // error includes the CUE path to the offending field
//	}
//	return result.Value, nil
package cueutil
