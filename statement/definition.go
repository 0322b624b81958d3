package statement

import (
	json "github.com/goccy/go-json"

	"github.com/seanpm2001/xapi/errors"
	"github.com/seanpm2001/xapi/pkg/optional"
)

// InteractionActivityType is the activity type IRI every interaction
// definition reports. It is fixed by the cmi.interaction vocabulary and is
// never caller-settable.
var InteractionActivityType = IRI{value: "http://adlnet.gov/expapi/activities/cmi.interaction"}

// Definition is the capability shared by every activity definition: the
// human-readable identity of an activity (name, description, type) plus its
// optional metadata. The set of implementations is closed; consumers that
// only need this surface accept a Definition and stay independent of the
// concrete interaction kind.
type Definition interface {
	json.Marshaler
	// Name returns the activity's display name by language.
	Name() LanguageMap
	// Description returns the activity's description by language.
	Description() LanguageMap
	// Type returns the activity type IRI.
	Type() IRI
	// MoreInfo returns the documentation IRI when one was provided.
	MoreInfo() optional.Option[IRI]
	// Extensions returns the attached extensions when any were provided.
	Extensions() optional.Option[Extensions]
	isDefinition()
}

// InteractionDefinition extends Definition with the interaction-specific
// surface: the interaction kind and the responses that count as correct.
type InteractionDefinition interface {
	Definition
	// InteractionType returns the fixed interaction kind.
	InteractionType() InteractionType
	// CorrectResponsesPattern returns the correct-response pattern.
	CorrectResponsesPattern() ResponsePattern
}

// definitionConfig collects the optional fields shared by all definition
// constructors.
type definitionConfig struct {
	moreInfo   optional.Option[IRI]
	extensions optional.Option[Extensions]
}

// DefinitionOption is a functional option for definition construction.
type DefinitionOption func(*definitionConfig)

// WithMoreInfo sets an IRI resolving to documentation about the activity.
func WithMoreInfo(moreInfo IRI) DefinitionOption {
	return func(c *definitionConfig) {
		c.moreInfo = optional.Some(moreInfo)
	}
}

// WithExtensions attaches extensions to the definition.
func WithExtensions(ext Extensions) DefinitionOption {
	return func(c *definitionConfig) {
		c.extensions = optional.Some(ext)
	}
}

// validate rejects explicitly supplied but empty optional fields. entity
// names the constructing type in error messages.
func (c definitionConfig) validate(entity string) error {
	if moreInfo, ok := c.moreInfo.Get(); ok && moreInfo.IsZero() {
		return errors.InvalidArgument(entity, "moreInfo", "must not be a zero IRI")
	}
	if ext, ok := c.extensions.Get(); ok && ext.IsZero() {
		return errors.InvalidArgument(entity, "extensions",
			"must not be empty; omit the option instead")
	}
	return nil
}

// ActivityDefinition is the plain, non-interaction activity definition:
// name, description, and type, with optional documentation and extensions.
//
// The zero value is invalid; construct through NewActivityDefinition.
type ActivityDefinition struct {
	name        LanguageMap
	description LanguageMap
	actType     IRI
	moreInfo    optional.Option[IRI]
	extensions  optional.Option[Extensions]
}

// NewActivityDefinition creates an ActivityDefinition. Name, description,
// and activity type are all required.
func NewActivityDefinition(name, description LanguageMap, activityType IRI, opts ...DefinitionOption) (ActivityDefinition, error) {
	if name.IsZero() {
		return ActivityDefinition{}, errors.NilArgument("ActivityDefinition", "name")
	}
	if description.IsZero() {
		return ActivityDefinition{}, errors.NilArgument("ActivityDefinition", "description")
	}
	if activityType.IsZero() {
		return ActivityDefinition{}, errors.NilArgument("ActivityDefinition", "activityType")
	}

	var cfg definitionConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate("ActivityDefinition"); err != nil {
		return ActivityDefinition{}, err
	}

	return ActivityDefinition{
		name:        name,
		description: description,
		actType:     activityType,
		moreInfo:    cfg.moreInfo,
		extensions:  cfg.extensions,
	}, nil
}

func (ActivityDefinition) isDefinition() {}

// Name returns the activity's display name by language.
func (d ActivityDefinition) Name() LanguageMap {
	return d.name
}

// Description returns the activity's description by language.
func (d ActivityDefinition) Description() LanguageMap {
	return d.description
}

// Type returns the activity type IRI.
func (d ActivityDefinition) Type() IRI {
	return d.actType
}

// MoreInfo returns the documentation IRI when one was provided.
func (d ActivityDefinition) MoreInfo() optional.Option[IRI] {
	return d.moreInfo
}

// Extensions returns the attached extensions when any were provided.
func (d ActivityDefinition) Extensions() optional.Option[Extensions] {
	return d.extensions
}

// IsZero reports whether d is the invalid zero value.
func (d ActivityDefinition) IsZero() bool {
	return d.name.IsZero()
}

// definitionWire is the JSON shape shared by every definition. Interaction
// fields and component lists stay nil for plain activity definitions; at
// most one list group is set for interaction definitions.
type definitionWire struct {
	Name                    LanguageMap            `json:"name"`
	Description             LanguageMap            `json:"description"`
	Type                    IRI                    `json:"type"`
	MoreInfo                *IRI                   `json:"moreInfo,omitempty"`
	InteractionType         *InteractionType       `json:"interactionType,omitempty"`
	CorrectResponsesPattern *ResponsePattern       `json:"correctResponsesPattern,omitempty"`
	Choices                 []InteractionComponent `json:"choices,omitempty"`
	Scale                   []InteractionComponent `json:"scale,omitempty"`
	Source                  []InteractionComponent `json:"source,omitempty"`
	Target                  []InteractionComponent `json:"target,omitempty"`
	Steps                   []InteractionComponent `json:"steps,omitempty"`
	Extensions              *Extensions            `json:"extensions,omitempty"`
}

// MarshalJSON implements json.Marshaler. Only name, description, and type
// always appear; optional fields are dropped entirely when absent.
func (d ActivityDefinition) MarshalJSON() ([]byte, error) {
	return json.Marshal(definitionWire{
		Name:        d.name,
		Description: d.description,
		Type:        d.actType,
		MoreInfo:    d.moreInfo.Ptr(),
		Extensions:  d.extensions.Ptr(),
	})
}
