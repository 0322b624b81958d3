package statement

import (
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/seanpm2001/xapi/errors"
	"github.com/seanpm2001/xapi/pkg/optional"
)

// ResponsePattern is an ordered, non-empty list of acceptable responses for
// an interaction, with two independent matching flags. Each flag is
// tri-state: absent, explicitly false, and explicitly true are three
// different configurations, and absence falls back to lenient matching
// (case-insensitive, order-insensitive).
//
// Construction using Functional Options:
//
//	// Any of two spellings, case-insensitive
//	pattern, err := statement.NewResponsePattern(patterns)
//
//	// Exact-case matching
//	pattern, err := statement.NewResponsePattern(patterns,
//	    statement.WithCaseMatters(true))
//
// The zero value is invalid; construct through NewResponsePattern or one of
// the shortcut factories.
type ResponsePattern struct {
	patterns     []CharacterString
	caseMatters  optional.Option[bool]
	orderMatters optional.Option[bool]
}

// ResponsePatternOption is a functional option for ResponsePattern
// construction.
type ResponsePatternOption func(*ResponsePattern)

// WithCaseMatters sets the case-sensitivity flag explicitly. Leaving the
// option off keeps the flag absent, which matches case-insensitively.
func WithCaseMatters(caseMatters bool) ResponsePatternOption {
	return func(rp *ResponsePattern) {
		rp.caseMatters = optional.Some(caseMatters)
	}
}

// WithOrderMatters sets the order-sensitivity flag explicitly. Leaving the
// option off keeps the flag absent, which matches sequences in any order.
func WithOrderMatters(orderMatters bool) ResponsePatternOption {
	return func(rp *ResponsePattern) {
		rp.orderMatters = optional.Some(orderMatters)
	}
}

// NewResponsePattern creates a ResponsePattern from the given patterns.
// The slice must be non-nil and non-empty and every element must be a
// constructed CharacterString.
func NewResponsePattern(patterns []CharacterString, opts ...ResponsePatternOption) (ResponsePattern, error) {
	if patterns == nil {
		return ResponsePattern{}, errors.NilArgument("ResponsePattern", "patterns")
	}
	if len(patterns) == 0 {
		return ResponsePattern{}, errors.InvalidArgument("ResponsePattern", "patterns",
			"must contain at least one pattern")
	}
	for i, p := range patterns {
		if p.IsZero() {
			return ResponsePattern{}, errors.InvalidArgument("ResponsePattern", "patterns",
				fmt.Sprintf("pattern %d is a zero value", i))
		}
	}

	stored := make([]CharacterString, len(patterns))
	copy(stored, patterns)

	rp := ResponsePattern{patterns: stored}
	for _, opt := range opts {
		opt(&rp)
	}
	return rp, nil
}

// NewSingleResponsePattern creates a pattern accepting exactly one
// response value. Delegates to NewResponsePattern.
func NewSingleResponsePattern(value string) (ResponsePattern, error) {
	cs, err := NewCharacterString(value)
	if err != nil {
		return ResponsePattern{}, err
	}
	return NewResponsePattern([]CharacterString{cs})
}

// NewBooleanResponsePattern creates the pattern for a true-false
// interaction: the lowercase token of value, matched case-insensitively.
// Delegates to NewResponsePattern.
func NewBooleanResponsePattern(value bool) (ResponsePattern, error) {
	cs, err := NewCharacterString(strconv.FormatBool(value))
	if err != nil {
		return ResponsePattern{}, err
	}
	return NewResponsePattern([]CharacterString{cs}, WithCaseMatters(false))
}

// Patterns returns the stored patterns in order. The returned slice is a
// copy.
func (rp ResponsePattern) Patterns() []CharacterString {
	patterns := make([]CharacterString, len(rp.patterns))
	copy(patterns, rp.patterns)
	return patterns
}

// CaseMatters returns the case-sensitivity flag, absent when never set.
func (rp ResponsePattern) CaseMatters() optional.Option[bool] {
	return rp.caseMatters
}

// OrderMatters returns the order-sensitivity flag, absent when never set.
func (rp ResponsePattern) OrderMatters() optional.Option[bool] {
	return rp.orderMatters
}

// IsZero reports whether rp is the invalid zero value.
func (rp ResponsePattern) IsZero() bool {
	return rp.patterns == nil
}

// Match reports whether candidate matches any stored pattern. Matching is
// case-insensitive unless the case flag was explicitly set to true.
func (rp ResponsePattern) Match(candidate string) bool {
	caseMatters := rp.caseMatters.OrElse(false)
	for _, p := range rp.patterns {
		if p.Match(candidate, caseMatters) {
			return true
		}
	}
	return false
}

// MatchSequence reports whether the candidate sequence matches the stored
// patterns. With the order flag explicitly true, patterns and candidates
// must match pairwise in position. Otherwise the comparison is
// position-independent: every candidate must consume a distinct pattern.
// Case rules follow the case flag as in Match.
func (rp ResponsePattern) MatchSequence(candidates []string) bool {
	if len(candidates) != len(rp.patterns) {
		return false
	}
	caseMatters := rp.caseMatters.OrElse(false)

	if rp.orderMatters.OrElse(false) {
		for i, candidate := range candidates {
			if !rp.patterns[i].Match(candidate, caseMatters) {
				return false
			}
		}
		return true
	}

	used := make([]bool, len(rp.patterns))
	for _, candidate := range candidates {
		matched := false
		for i, p := range rp.patterns {
			if used[i] || !p.Match(candidate, caseMatters) {
				continue
			}
			used[i] = true
			matched = true
			break
		}
		if !matched {
			return false
		}
	}
	return true
}

// MarshalJSON implements json.Marshaler, emitting the pattern strings as a
// JSON array in stored order. The matching flags live on the interaction
// definition, not in this array.
func (rp ResponsePattern) MarshalJSON() ([]byte, error) {
	values := make([]string, len(rp.patterns))
	for i, p := range rp.patterns {
		values[i] = p.String()
	}
	return json.Marshal(values)
}
