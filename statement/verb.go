package statement

import (
	json "github.com/goccy/go-json"

	"github.com/seanpm2001/xapi/errors"
)

// Verb is the action of a statement: an IRI identifying what the actor did
// plus a human-readable display map. The IRI carries the meaning; the
// display is informational only.
//
// The zero value is invalid; construct through NewVerb.
type Verb struct {
	id      IRI
	display LanguageMap
}

// NewVerb creates a Verb. Both the id and the display map are required.
func NewVerb(id IRI, display LanguageMap) (Verb, error) {
	if id.IsZero() {
		return Verb{}, errors.NilArgument("Verb", "id")
	}
	if display.IsZero() {
		return Verb{}, errors.NilArgument("Verb", "display")
	}
	return Verb{id: id, display: display}, nil
}

// ID returns the verb IRI.
func (v Verb) ID() IRI {
	return v.id
}

// Display returns the display map.
func (v Verb) Display() LanguageMap {
	return v.display
}

// IsZero reports whether v is the invalid zero value.
func (v Verb) IsZero() bool {
	return v.id.IsZero()
}

// verbWire is the JSON shape of a Verb.
type verbWire struct {
	ID      IRI         `json:"id"`
	Display LanguageMap `json:"display"`
}

// MarshalJSON implements json.Marshaler.
func (v Verb) MarshalJSON() ([]byte, error) {
	return json.Marshal(verbWire{ID: v.id, Display: v.display})
}
