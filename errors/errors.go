package errors

import (
	"errors"
	"fmt"
)

// ErrorClass represents the classification of errors for handling purposes
type ErrorClass int

const (
	// ErrorNilArgument represents errors where a required constructor
	// parameter is absent (nil interface or zero value type)
	ErrorNilArgument ErrorClass = iota
	// ErrorInvalidArgument represents errors where a parameter is present
	// but violates a semantic invariant
	ErrorInvalidArgument
	// ErrorUnimplemented represents a variant outside the supported closed
	// set, encountered during serialization
	ErrorUnimplemented
	// ErrorUnknown represents errors that carry no xAPI classification
	ErrorUnknown
)

// String returns the string representation of ErrorClass
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorNilArgument:
		return "nil_argument"
	case ErrorInvalidArgument:
		return "invalid_argument"
	case ErrorUnimplemented:
		return "unimplemented"
	default:
		return "unknown"
	}
}

// Standard error variables for the three failure kinds
var (
	// ErrNilArgument is the sentinel for absent required parameters
	ErrNilArgument = errors.New("required argument is missing")

	// ErrInvalidArgument is the sentinel for structurally present but
	// semantically invalid parameters
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnimplemented is the sentinel for unrecognized or unsupported
	// variants of a closed polymorphic family
	ErrUnimplemented = errors.New("variant not implemented")
)

// ArgumentError wraps an argument failure with the entity and parameter
// that produced it. It is returned by every validating constructor.
type ArgumentError struct {
	Class    ErrorClass
	Entity   string // constructing type, e.g. "LikertDefinition"
	Argument string // offending parameter name, e.g. "scale"
	Reason   string // invariant description for invalid arguments
	Err      error  // sentinel: ErrNilArgument or ErrInvalidArgument
}

// Error implements the error interface
func (ae *ArgumentError) Error() string {
	if ae.Reason != "" {
		return fmt.Sprintf("%s: argument %q: %s", ae.Entity, ae.Argument, ae.Reason)
	}
	return fmt.Sprintf("%s: argument %q: %s", ae.Entity, ae.Argument, ae.Err.Error())
}

// Unwrap returns the underlying sentinel error
func (ae *ArgumentError) Unwrap() error {
	return ae.Err
}

// VariantError reports a value outside a closed polymorphic family during
// serialization. It signals a defect, not a recoverable condition.
type VariantError struct {
	Entity string // dispatching type, e.g. "Agent"
	Detail string // description of the unrecognized variant
	Err    error  // sentinel: ErrUnimplemented
}

// Error implements the error interface
func (ve *VariantError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ve.Entity, ve.Detail, ve.Err.Error())
}

// Unwrap returns the underlying sentinel error
func (ve *VariantError) Unwrap() error {
	return ve.Err
}

// NilArgument creates an error reporting that a required parameter is
// absent. The argument name is preserved for callers to inspect.
func NilArgument(entity, argument string) error {
	return &ArgumentError{
		Class:    ErrorNilArgument,
		Entity:   entity,
		Argument: argument,
		Err:      ErrNilArgument,
	}
}

// InvalidArgument creates an error reporting that a parameter is present
// but violates an invariant, with the reason spelled out.
func InvalidArgument(entity, argument, reason string) error {
	return &ArgumentError{
		Class:    ErrorInvalidArgument,
		Entity:   entity,
		Argument: argument,
		Reason:   reason,
		Err:      ErrInvalidArgument,
	}
}

// Unimplemented creates an error reporting a variant outside the supported
// closed set. Serialization aborts immediately when this is returned.
func Unimplemented(entity, detail string) error {
	return &VariantError{
		Entity: entity,
		Detail: detail,
		Err:    ErrUnimplemented,
	}
}

// IsNilArgument checks if an error reports an absent required parameter
func IsNilArgument(err error) bool {
	if err == nil {
		return false
	}

	var ae *ArgumentError
	if errors.As(err, &ae) {
		return ae.Class == ErrorNilArgument
	}

	return errors.Is(err, ErrNilArgument)
}

// IsInvalidArgument checks if an error reports an invariant violation
func IsInvalidArgument(err error) bool {
	if err == nil {
		return false
	}

	var ae *ArgumentError
	if errors.As(err, &ae) {
		return ae.Class == ErrorInvalidArgument
	}

	return errors.Is(err, ErrInvalidArgument)
}

// IsUnimplemented checks if an error reports an unrecognized variant
func IsUnimplemented(err error) bool {
	if err == nil {
		return false
	}

	var ve *VariantError
	if errors.As(err, &ve) {
		return true
	}

	return errors.Is(err, ErrUnimplemented)
}

// Classify returns the error class for an error
func Classify(err error) ErrorClass {
	if err == nil {
		return ErrorUnknown
	}

	if IsNilArgument(err) {
		return ErrorNilArgument
	}
	if IsInvalidArgument(err) {
		return ErrorInvalidArgument
	}
	if IsUnimplemented(err) {
		return ErrorUnimplemented
	}

	return ErrorUnknown
}

// Argument extracts the offending parameter name from an error.
// Returns the empty string when the error carries no argument context.
func Argument(err error) string {
	var ae *ArgumentError
	if errors.As(err, &ae) {
		return ae.Argument
	}
	return ""
}

// Wrap creates a standardized error with context following the pattern:
// "entity.method: action failed: %w"
func Wrap(err error, entity, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", entity, method, action, err)
}
