package statement

import (
	"net/url"

	json "github.com/goccy/go-json"

	"github.com/seanpm2001/xapi/errors"
)

// IRI is a validated absolute internationalized resource identifier. IRIs
// identify verbs, activities, activity types, and extension keys.
//
// The zero value is invalid; construct through NewIRI.
type IRI struct {
	value string
}

// NewIRI creates an IRI from s. The string must be non-empty, parseable,
// and absolute (it must carry a scheme).
func NewIRI(s string) (IRI, error) {
	if s == "" {
		return IRI{}, errors.InvalidArgument("IRI", "value", "must not be empty")
	}
	u, err := url.Parse(s)
	if err != nil {
		return IRI{}, errors.InvalidArgument("IRI", "value", "not a parseable IRI: "+err.Error())
	}
	if !u.IsAbs() {
		return IRI{}, errors.InvalidArgument("IRI", "value", "must be absolute (missing scheme)")
	}
	return IRI{value: s}, nil
}

// String returns the IRI text.
func (iri IRI) String() string {
	return iri.value
}

// IsZero reports whether iri is the invalid zero value.
func (iri IRI) IsZero() bool {
	return iri.value == ""
}

// Equal reports whether two IRIs hold identical text. Comparison is exact;
// no normalization is applied.
func (iri IRI) Equal(other IRI) bool {
	return iri.value == other.value
}

// MarshalJSON implements json.Marshaler, emitting the IRI as a JSON string.
func (iri IRI) MarshalJSON() ([]byte, error) {
	return json.Marshal(iri.value)
}
