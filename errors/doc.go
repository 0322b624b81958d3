// Package errors provides standardized error handling patterns for the xAPI
// data model.
//
// # Overview
//
// The errors package implements a three-class error classification system
// matching the failure modes of a construction-validated value model:
// NilArgument (a required parameter is absent), InvalidArgument (a parameter
// is present but violates a semantic invariant), and Unimplemented (a variant
// outside a closed polymorphic family was encountered during serialization).
//
// Every failure in this module is synchronous and terminal for the call that
// produced it: there is nothing to retry, nothing is logged internally, and
// no partially constructed value is ever observable. Classification exists so
// callers can distinguish "you forgot a parameter" from "your parameter is
// wrong" from "this is a defect in dispatch" without string matching.
//
// # Error Classification
//
//   - NilArgument: a required constructor parameter was nil or a zero value
//   - InvalidArgument: empty strings or sequences where content is required,
//     explicitly-empty optional collections, out-of-range numbers, duplicates
//   - Unimplemented: an unrecognized member of a closed variant set (IFI,
//     statement object) reached a serializer dispatch
//
// The classification system integrates with Go's standard error handling,
// supporting errors.Is(), errors.As(), and error wrapping chains.
//
// # Quick Start
//
// Constructors report failures through the three constructor functions:
//
//	// Required parameter absent
//	if name.IsZero() {
//	    return LikertDefinition{}, errors.NilArgument("LikertDefinition", "name")
//	}
//
//	// Parameter present but invalid
//	if len(scale) == 0 {
//	    return LikertDefinition{}, errors.InvalidArgument(
//	        "LikertDefinition", "scale", "must contain at least one component")
//	}
//
// Callers branch on classification, not message text:
//
//	if _, err := statement.NewLikertDefinition(name, desc, pattern, scale); err != nil {
//	    switch {
//	    case errors.IsNilArgument(err):
//	        // a required field was never supplied
//	    case errors.IsInvalidArgument(err):
//	        // the field was supplied but violates an invariant
//	    }
//	}
//
// # Inspecting Errors
//
// All error types support standard library error inspection:
//
//	var ae *errors.ArgumentError
//	if errors.As(err, &ae) {
//	    log.Printf("entity: %s, argument: %s", ae.Entity, ae.Argument)
//	}
//
//	if errors.Is(err, errors.ErrInvalidArgument) {
//	    // any invariant violation, however deep the wrap chain
//	}
//
// The offending parameter name required by the construction contract is
// available through Argument(err) or the ArgumentError fields.
//
// # Thread Safety
//
// All constructors and classification helpers are pure functions. Error
// variables are immutable and safe for concurrent access.
//
// # Design Philosophy
//
//   - Classification over string matching: errors are classified by type
//   - Fail fast: violations surface at the construction call, never later
//   - Standards over invention: Go error idioms (Is/As/Unwrap) throughout
//   - No recovery machinery: failure always means "caller must fix input"
package errors
