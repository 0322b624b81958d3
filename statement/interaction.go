package statement

import (
	json "github.com/goccy/go-json"

	"github.com/seanpm2001/xapi/errors"
)

// InteractionType classifies how a learner interacts with an activity.
// The values mirror the cmi.interaction vocabulary and appear verbatim
// under the interactionType key of a definition.
type InteractionType string

const (
	// InteractionTrueFalse is a two-choice interaction with responses
	// "true" or "false".
	InteractionTrueFalse InteractionType = "true-false"

	// InteractionChoice asks the learner to select from a list of choices.
	InteractionChoice InteractionType = "choice"

	// InteractionFillIn asks for one or more short supplied strings.
	InteractionFillIn InteractionType = "fill-in"

	// InteractionLongFillIn asks for longer free-form supplied text.
	InteractionLongFillIn InteractionType = "long-fill-in"

	// InteractionMatching asks the learner to pair items from a source
	// set with items from a target set.
	InteractionMatching InteractionType = "matching"

	// InteractionPerformance asks the learner to perform a task made of
	// distinct steps.
	InteractionPerformance InteractionType = "performance"

	// InteractionSequencing asks the learner to order items from a list.
	InteractionSequencing InteractionType = "sequencing"

	// InteractionLikert asks the learner to rate on a discrete scale.
	InteractionLikert InteractionType = "likert"

	// InteractionNumeric asks for a numeric response.
	InteractionNumeric InteractionType = "numeric"

	// InteractionOther covers interactions outside the named categories.
	InteractionOther InteractionType = "other"
)

// String returns the string representation of the InteractionType.
func (it InteractionType) String() string {
	return string(it)
}

// IsValid checks if the InteractionType is one of the defined constants.
func (it InteractionType) IsValid() bool {
	switch it {
	case InteractionTrueFalse, InteractionChoice, InteractionFillIn,
		InteractionLongFillIn, InteractionMatching, InteractionPerformance,
		InteractionSequencing, InteractionLikert, InteractionNumeric,
		InteractionOther:
		return true
	default:
		return false
	}
}

// MarshalJSON implements json.Marshaler to ensure InteractionType
// serializes as a string.
func (it InteractionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(it))
}

// UnmarshalJSON implements json.Unmarshaler to deserialize InteractionType
// from a string.
func (it *InteractionType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*it = InteractionType(s)
	return nil
}

// InteractionComponent is one selectable element of an interaction: a
// choice, a scale point, a matching source or target, or a performance
// step. The id is the machine token response patterns refer to; the
// description is the human-readable label.
//
// The zero value is invalid; construct through NewInteractionComponent.
type InteractionComponent struct {
	id          string
	description LanguageMap
}

// NewInteractionComponent creates an InteractionComponent. The id must be
// non-empty and the description is required.
func NewInteractionComponent(id string, description LanguageMap) (InteractionComponent, error) {
	if id == "" {
		return InteractionComponent{}, errors.InvalidArgument("InteractionComponent", "id", "must not be empty")
	}
	if description.IsZero() {
		return InteractionComponent{}, errors.NilArgument("InteractionComponent", "description")
	}
	return InteractionComponent{id: id, description: description}, nil
}

// ID returns the component's machine token.
func (ic InteractionComponent) ID() string {
	return ic.id
}

// Description returns the component's display text.
func (ic InteractionComponent) Description() LanguageMap {
	return ic.description
}

// IsZero reports whether ic is the invalid zero value.
func (ic InteractionComponent) IsZero() bool {
	return ic.id == ""
}

// componentWire is the JSON shape of an InteractionComponent.
type componentWire struct {
	ID          string      `json:"id"`
	Description LanguageMap `json:"description"`
}

// MarshalJSON implements json.Marshaler.
func (ic InteractionComponent) MarshalJSON() ([]byte, error) {
	return json.Marshal(componentWire{ID: ic.id, Description: ic.description})
}
