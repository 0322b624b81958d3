package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorClass_String(t *testing.T) {
	tests := []struct {
		class    ErrorClass
		expected string
	}{
		{ErrorNilArgument, "nil_argument"},
		{ErrorInvalidArgument, "invalid_argument"},
		{ErrorUnimplemented, "unimplemented"},
		{ErrorUnknown, "unknown"},
		{ErrorClass(999), "unknown"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			result := test.class.String()
			if result != test.expected {
				t.Errorf("expected %s, got %s", test.expected, result)
			}
		})
	}
}

func TestNilArgument(t *testing.T) {
	err := NilArgument("Verb", "id")

	if !errors.Is(err, ErrNilArgument) {
		t.Error("expected error to match ErrNilArgument")
	}
	if !strings.Contains(err.Error(), "Verb") {
		t.Errorf("expected entity in message, got: %v", err)
	}
	if !strings.Contains(err.Error(), `"id"`) {
		t.Errorf("expected argument name in message, got: %v", err)
	}

	var ae *ArgumentError
	if !errors.As(err, &ae) {
		t.Fatal("expected *ArgumentError")
	}
	if ae.Entity != "Verb" {
		t.Errorf("expected entity Verb, got %s", ae.Entity)
	}
	if ae.Argument != "id" {
		t.Errorf("expected argument id, got %s", ae.Argument)
	}
	if ae.Class != ErrorNilArgument {
		t.Errorf("expected ErrorNilArgument class, got %v", ae.Class)
	}
}

func TestInvalidArgument(t *testing.T) {
	err := InvalidArgument("LikertDefinition", "scale", "must contain at least one component")

	if !errors.Is(err, ErrInvalidArgument) {
		t.Error("expected error to match ErrInvalidArgument")
	}
	if errors.Is(err, ErrNilArgument) {
		t.Error("invalid argument must not match ErrNilArgument")
	}
	if !strings.Contains(err.Error(), "must contain at least one component") {
		t.Errorf("expected reason in message, got: %v", err)
	}
	if !strings.Contains(err.Error(), `"scale"`) {
		t.Errorf("expected argument name in message, got: %v", err)
	}

	var ae *ArgumentError
	if !errors.As(err, &ae) {
		t.Fatal("expected *ArgumentError")
	}
	if ae.Reason != "must contain at least one component" {
		t.Errorf("unexpected reason: %s", ae.Reason)
	}
}

func TestUnimplemented(t *testing.T) {
	err := Unimplemented("IFI", "variant CustomIFI is not part of the supported set")

	if !errors.Is(err, ErrUnimplemented) {
		t.Error("expected error to match ErrUnimplemented")
	}
	if !strings.Contains(err.Error(), "IFI") {
		t.Errorf("expected entity in message, got: %v", err)
	}

	var ve *VariantError
	if !errors.As(err, &ve) {
		t.Fatal("expected *VariantError")
	}
	if ve.Entity != "IFI" {
		t.Errorf("expected entity IFI, got %s", ve.Entity)
	}
}

func TestIsNilArgument(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"constructed nil argument", NilArgument("Statement", "actor"), true},
		{"bare sentinel", ErrNilArgument, true},
		{"wrapped sentinel", fmt.Errorf("wrapped: %w", ErrNilArgument), true},
		{"invalid argument", InvalidArgument("Score", "scaled", "must be within [-1, 1]"), false},
		{"unimplemented", Unimplemented("Actor", "unknown IFI variant"), false},
		{"unrelated", errors.New("something else"), false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsNilArgument(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestIsInvalidArgument(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"constructed invalid argument", InvalidArgument("IRI", "value", "must be absolute"), true},
		{"bare sentinel", ErrInvalidArgument, true},
		{"wrapped", fmt.Errorf("statement.NewVerb: validation failed: %w", InvalidArgument("Verb", "display", "language map is empty")), true},
		{"nil argument", NilArgument("Verb", "display"), false},
		{"unrelated", errors.New("something else"), false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsInvalidArgument(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestIsUnimplemented(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"constructed", Unimplemented("StatementObject", "variant not supported"), true},
		{"bare sentinel", ErrUnimplemented, true},
		{"nil argument", NilArgument("Account", "homePage"), false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsUnimplemented(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorClass
	}{
		{"nil argument", NilArgument("Result", "value"), ErrorNilArgument},
		{"invalid argument", InvalidArgument("Score", "min", "must be less than max"), ErrorInvalidArgument},
		{"unimplemented", Unimplemented("IFI", "unsupported variant"), ErrorUnimplemented},
		{"unclassified", errors.New("plain error"), ErrorUnknown},
		{"nil error", nil, ErrorUnknown},
		{"wrapped nil argument", fmt.Errorf("outer: %w", NilArgument("Context", "registration")), ErrorNilArgument},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := Classify(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v", test.expected, result)
			}
		})
	}
}

func TestArgument(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil argument", NilArgument("Statement", "verb"), "verb"},
		{"invalid argument", InvalidArgument("CharacterString", "value", "must not be empty"), "value"},
		{"wrapped", fmt.Errorf("outer: %w", NilArgument("Activity", "id")), "id"},
		{"plain error", errors.New("no argument here"), ""},
		{"nil error", nil, ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := Argument(test.err)
			if result != test.expected {
				t.Errorf("expected %q, got %q", test.expected, result)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	base := InvalidArgument("LanguageMap", "entries", "duplicate language tag \"en-US\"")
	wrapped := Wrap(base, "statement", "NewVerb", "display construction")

	if wrapped == nil {
		t.Fatal("expected non-nil wrapped error")
	}
	expected := "statement.NewVerb: display construction failed"
	if !strings.Contains(wrapped.Error(), expected) {
		t.Errorf("expected %q in message, got: %v", expected, wrapped)
	}
	if !errors.Is(wrapped, ErrInvalidArgument) {
		t.Error("wrapping must preserve classification")
	}
	if Argument(wrapped) != "entries" {
		t.Errorf("wrapping must preserve argument name, got %q", Argument(wrapped))
	}

	if Wrap(nil, "statement", "NewVerb", "anything") != nil {
		t.Error("wrapping nil must return nil")
	}
}
