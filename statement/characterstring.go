package statement

import (
	"strings"

	json "github.com/goccy/go-json"

	"github.com/seanpm2001/xapi/errors"
)

// CharacterString is a validated, immutable unit of interaction response
// text. It is the element type of correct-response patterns and the value
// learners' answers are matched against.
//
// The zero value is invalid; construct through NewCharacterString.
type CharacterString struct {
	value string
}

// NewCharacterString creates a CharacterString from s.
// An empty string is rejected: response text must carry content.
func NewCharacterString(s string) (CharacterString, error) {
	if s == "" {
		return CharacterString{}, errors.InvalidArgument("CharacterString", "value", "must not be empty")
	}
	return CharacterString{value: s}, nil
}

// String returns the underlying text.
func (cs CharacterString) String() string {
	return cs.value
}

// IsZero reports whether cs is the invalid zero value.
func (cs CharacterString) IsZero() bool {
	return cs.value == ""
}

// Match reports whether candidate matches the stored text. Comparison is
// case-insensitive under Unicode case folding unless caseMatters is true.
func (cs CharacterString) Match(candidate string, caseMatters bool) bool {
	if caseMatters {
		return cs.value == candidate
	}
	return strings.EqualFold(cs.value, candidate)
}

// MarshalJSON implements json.Marshaler, emitting the text as a JSON string.
func (cs CharacterString) MarshalJSON() ([]byte, error) {
	return json.Marshal(cs.value)
}
