package statement

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/seanpm2001/xapi/errors"
)

// Object is the sealed family of things a statement can be about. Activity
// is currently the only variant; the marker method keeps the set closed so
// adding a variant is a localized, compiler-visible change. Serialization
// dispatches on the variant and rejects anything outside the set with an
// unimplemented-variant error.
type Object interface {
	isObject()
}

// Activity is the thing an actor interacted with, identified by IRI and
// optionally described by a definition. It serializes in two shapes: the
// full objectType-tagged form as a statement object, and a short id-only
// form inside context activity lists.
//
// The zero value is invalid; construct through NewActivity.
type Activity struct {
	id         IRI
	definition Definition
}

// activityConfig collects the optional fields of Activity construction.
type activityConfig struct {
	definition    Definition
	definitionSet bool
}

// ActivityOption is a functional option for Activity construction.
type ActivityOption func(*activityConfig)

// WithDefinition attaches a definition describing the activity.
func WithDefinition(def Definition) ActivityOption {
	return func(c *activityConfig) {
		c.definition = def
		c.definitionSet = true
	}
}

// NewActivity creates an Activity. The id is required. A definition
// supplied through WithDefinition must be a constructed value.
func NewActivity(id IRI, opts ...ActivityOption) (Activity, error) {
	if id.IsZero() {
		return Activity{}, errors.NilArgument("Activity", "id")
	}

	var cfg activityConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.definitionSet {
		if cfg.definition == nil {
			return Activity{}, errors.InvalidArgument("Activity", "definition",
				"must not be nil; omit the option instead")
		}
		if cfg.definition.Name().IsZero() {
			return Activity{}, errors.InvalidArgument("Activity", "definition",
				"definition is a zero value; build it with its constructor")
		}
	}

	return Activity{id: id, definition: cfg.definition}, nil
}

func (Activity) isObject() {}

// ID returns the activity IRI.
func (a Activity) ID() IRI {
	return a.id
}

// Definition returns the attached definition and whether one is present.
func (a Activity) Definition() (Definition, bool) {
	return a.definition, a.definition != nil
}

// IsZero reports whether a is the invalid zero value.
func (a Activity) IsZero() bool {
	return a.id.IsZero()
}

// activityWire is the full statement-object JSON shape.
type activityWire struct {
	ObjectType string     `json:"objectType"`
	ID         IRI        `json:"id"`
	Definition Definition `json:"definition,omitempty"`
}

// activityRefWire is the short id-only shape used inside context activity
// lists.
type activityRefWire struct {
	ID IRI `json:"id"`
}

// MarshalJSON implements json.Marshaler, emitting the full
// objectType-tagged form.
func (a Activity) MarshalJSON() ([]byte, error) {
	return json.Marshal(activityWire{
		ObjectType: "Activity",
		ID:         a.id,
		Definition: a.definition,
	})
}

// marshalObject dispatches on the statement object variant. The default
// arm is unreachable for values built through this package; reaching it
// means the variant set grew without the serializer keeping up.
func marshalObject(o Object) ([]byte, error) {
	switch v := o.(type) {
	case Activity:
		return v.MarshalJSON()
	default:
		return nil, errors.Unimplemented("StatementObject",
			fmt.Sprintf("variant %T is not a supported statement object", o))
	}
}
