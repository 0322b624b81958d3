package statement

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/seanpm2001/xapi/errors"
	"github.com/seanpm2001/xapi/pkg/optional"
)

// interactionCore carries the fields common to every interaction
// definition. Concrete definition types embed it and add their component
// lists; the promoted methods satisfy the InteractionDefinition interface.
type interactionCore struct {
	name        LanguageMap
	description LanguageMap
	moreInfo    optional.Option[IRI]
	extensions  optional.Option[Extensions]
	kind        InteractionType
	pattern     ResponsePattern
}

// newInteractionCore validates and assembles the shared fields. entity
// names the concrete definition type in error messages.
func newInteractionCore(entity string, name, description LanguageMap, kind InteractionType,
	pattern ResponsePattern, opts []DefinitionOption) (interactionCore, error) {
	if name.IsZero() {
		return interactionCore{}, errors.NilArgument(entity, "name")
	}
	if description.IsZero() {
		return interactionCore{}, errors.NilArgument(entity, "description")
	}
	if pattern.IsZero() {
		return interactionCore{}, errors.NilArgument(entity, "pattern")
	}

	var cfg definitionConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(entity); err != nil {
		return interactionCore{}, err
	}

	return interactionCore{
		name:        name,
		description: description,
		moreInfo:    cfg.moreInfo,
		extensions:  cfg.extensions,
		kind:        kind,
		pattern:     pattern,
	}, nil
}

// validateComponents checks a required component list and returns a copy
// of it. The list must be non-nil, non-empty, and free of zero values.
func validateComponents(entity, argument string, components []InteractionComponent) ([]InteractionComponent, error) {
	if components == nil {
		return nil, errors.NilArgument(entity, argument)
	}
	if len(components) == 0 {
		return nil, errors.InvalidArgument(entity, argument, "must contain at least one component")
	}
	for i, c := range components {
		if c.IsZero() {
			return nil, errors.InvalidArgument(entity, argument,
				fmt.Sprintf("component %d is a zero value", i))
		}
	}
	copied := make([]InteractionComponent, len(components))
	copy(copied, components)
	return copied, nil
}

func (interactionCore) isDefinition() {}

// Name returns the activity's display name by language.
func (c interactionCore) Name() LanguageMap {
	return c.name
}

// Description returns the activity's description by language.
func (c interactionCore) Description() LanguageMap {
	return c.description
}

// Type returns the fixed cmi.interaction activity type IRI.
func (c interactionCore) Type() IRI {
	return InteractionActivityType
}

// MoreInfo returns the documentation IRI when one was provided.
func (c interactionCore) MoreInfo() optional.Option[IRI] {
	return c.moreInfo
}

// Extensions returns the attached extensions when any were provided.
func (c interactionCore) Extensions() optional.Option[Extensions] {
	return c.extensions
}

// InteractionType returns the fixed interaction kind.
func (c interactionCore) InteractionType() InteractionType {
	return c.kind
}

// CorrectResponsesPattern returns the correct-response pattern.
func (c interactionCore) CorrectResponsesPattern() ResponsePattern {
	return c.pattern
}

// wire builds the shared portion of the definition JSON shape.
func (c interactionCore) wire() definitionWire {
	kind := c.kind
	pattern := c.pattern
	return definitionWire{
		Name:                    c.name,
		Description:             c.description,
		Type:                    InteractionActivityType,
		MoreInfo:                c.moreInfo.Ptr(),
		InteractionType:         &kind,
		CorrectResponsesPattern: &pattern,
		Extensions:              c.extensions.Ptr(),
	}
}

// copyComponents returns a copy of a stored component list for accessors.
func copyComponents(components []InteractionComponent) []InteractionComponent {
	copied := make([]InteractionComponent, len(components))
	copy(copied, components)
	return copied
}

// TrueFalseDefinition is a two-choice interaction whose only responses are
// "true" and "false". It carries no component lists.
type TrueFalseDefinition struct {
	interactionCore
}

// NewTrueFalseDefinition creates a TrueFalseDefinition. Name, description,
// and the correct-response pattern are required.
func NewTrueFalseDefinition(name, description LanguageMap, pattern ResponsePattern,
	opts ...DefinitionOption) (TrueFalseDefinition, error) {
	core, err := newInteractionCore("TrueFalseDefinition", name, description, InteractionTrueFalse, pattern, opts)
	if err != nil {
		return TrueFalseDefinition{}, err
	}
	return TrueFalseDefinition{interactionCore: core}, nil
}

// MarshalJSON implements json.Marshaler.
func (d TrueFalseDefinition) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.wire())
}

// ChoiceDefinition asks the learner to select among a list of choices.
type ChoiceDefinition struct {
	interactionCore
	choices []InteractionComponent
}

// NewChoiceDefinition creates a ChoiceDefinition. The choices list is
// required and must be non-empty.
func NewChoiceDefinition(name, description LanguageMap, pattern ResponsePattern,
	choices []InteractionComponent, opts ...DefinitionOption) (ChoiceDefinition, error) {
	core, err := newInteractionCore("ChoiceDefinition", name, description, InteractionChoice, pattern, opts)
	if err != nil {
		return ChoiceDefinition{}, err
	}
	copied, err := validateComponents("ChoiceDefinition", "choices", choices)
	if err != nil {
		return ChoiceDefinition{}, err
	}
	return ChoiceDefinition{interactionCore: core, choices: copied}, nil
}

// Choices returns the selectable choices in order. The returned slice is a
// copy.
func (d ChoiceDefinition) Choices() []InteractionComponent {
	return copyComponents(d.choices)
}

// MarshalJSON implements json.Marshaler.
func (d ChoiceDefinition) MarshalJSON() ([]byte, error) {
	wire := d.wire()
	wire.Choices = d.choices
	return json.Marshal(wire)
}

// FillInDefinition asks the learner for one or more short supplied
// strings. It carries no component lists.
type FillInDefinition struct {
	interactionCore
}

// NewFillInDefinition creates a FillInDefinition.
func NewFillInDefinition(name, description LanguageMap, pattern ResponsePattern,
	opts ...DefinitionOption) (FillInDefinition, error) {
	core, err := newInteractionCore("FillInDefinition", name, description, InteractionFillIn, pattern, opts)
	if err != nil {
		return FillInDefinition{}, err
	}
	return FillInDefinition{interactionCore: core}, nil
}

// MarshalJSON implements json.Marshaler.
func (d FillInDefinition) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.wire())
}

// LongFillInDefinition asks the learner for longer free-form text. It
// carries no component lists.
type LongFillInDefinition struct {
	interactionCore
}

// NewLongFillInDefinition creates a LongFillInDefinition.
func NewLongFillInDefinition(name, description LanguageMap, pattern ResponsePattern,
	opts ...DefinitionOption) (LongFillInDefinition, error) {
	core, err := newInteractionCore("LongFillInDefinition", name, description, InteractionLongFillIn, pattern, opts)
	if err != nil {
		return LongFillInDefinition{}, err
	}
	return LongFillInDefinition{interactionCore: core}, nil
}

// MarshalJSON implements json.Marshaler.
func (d LongFillInDefinition) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.wire())
}

// MatchingDefinition asks the learner to pair items from a source set with
// items from a target set. Both sets are required.
type MatchingDefinition struct {
	interactionCore
	source []InteractionComponent
	target []InteractionComponent
}

// NewMatchingDefinition creates a MatchingDefinition. Source and target
// lists are both required and must each be non-empty.
func NewMatchingDefinition(name, description LanguageMap, pattern ResponsePattern,
	source, target []InteractionComponent, opts ...DefinitionOption) (MatchingDefinition, error) {
	core, err := newInteractionCore("MatchingDefinition", name, description, InteractionMatching, pattern, opts)
	if err != nil {
		return MatchingDefinition{}, err
	}
	copiedSource, err := validateComponents("MatchingDefinition", "source", source)
	if err != nil {
		return MatchingDefinition{}, err
	}
	copiedTarget, err := validateComponents("MatchingDefinition", "target", target)
	if err != nil {
		return MatchingDefinition{}, err
	}
	return MatchingDefinition{interactionCore: core, source: copiedSource, target: copiedTarget}, nil
}

// Source returns the source items in order. The returned slice is a copy.
func (d MatchingDefinition) Source() []InteractionComponent {
	return copyComponents(d.source)
}

// Target returns the target items in order. The returned slice is a copy.
func (d MatchingDefinition) Target() []InteractionComponent {
	return copyComponents(d.target)
}

// MarshalJSON implements json.Marshaler.
func (d MatchingDefinition) MarshalJSON() ([]byte, error) {
	wire := d.wire()
	wire.Source = d.source
	wire.Target = d.target
	return json.Marshal(wire)
}

// PerformanceDefinition asks the learner to perform a task made of
// distinct steps.
type PerformanceDefinition struct {
	interactionCore
	steps []InteractionComponent
}

// NewPerformanceDefinition creates a PerformanceDefinition. The steps list
// is required and must be non-empty.
func NewPerformanceDefinition(name, description LanguageMap, pattern ResponsePattern,
	steps []InteractionComponent, opts ...DefinitionOption) (PerformanceDefinition, error) {
	core, err := newInteractionCore("PerformanceDefinition", name, description, InteractionPerformance, pattern, opts)
	if err != nil {
		return PerformanceDefinition{}, err
	}
	copied, err := validateComponents("PerformanceDefinition", "steps", steps)
	if err != nil {
		return PerformanceDefinition{}, err
	}
	return PerformanceDefinition{interactionCore: core, steps: copied}, nil
}

// Steps returns the task steps in order. The returned slice is a copy.
func (d PerformanceDefinition) Steps() []InteractionComponent {
	return copyComponents(d.steps)
}

// MarshalJSON implements json.Marshaler.
func (d PerformanceDefinition) MarshalJSON() ([]byte, error) {
	wire := d.wire()
	wire.Steps = d.steps
	return json.Marshal(wire)
}

// SequencingDefinition asks the learner to order items from a list.
type SequencingDefinition struct {
	interactionCore
	choices []InteractionComponent
}

// NewSequencingDefinition creates a SequencingDefinition. The choices list
// is required and must be non-empty.
func NewSequencingDefinition(name, description LanguageMap, pattern ResponsePattern,
	choices []InteractionComponent, opts ...DefinitionOption) (SequencingDefinition, error) {
	core, err := newInteractionCore("SequencingDefinition", name, description, InteractionSequencing, pattern, opts)
	if err != nil {
		return SequencingDefinition{}, err
	}
	copied, err := validateComponents("SequencingDefinition", "choices", choices)
	if err != nil {
		return SequencingDefinition{}, err
	}
	return SequencingDefinition{interactionCore: core, choices: copied}, nil
}

// Choices returns the orderable items. The returned slice is a copy.
func (d SequencingDefinition) Choices() []InteractionComponent {
	return copyComponents(d.choices)
}

// MarshalJSON implements json.Marshaler.
func (d SequencingDefinition) MarshalJSON() ([]byte, error) {
	wire := d.wire()
	wire.Choices = d.choices
	return json.Marshal(wire)
}

// LikertDefinition asks the learner to rate on a discrete scale. The scale
// is the ordered list of rating points; the correct-response pattern names
// the point ids that count as correct. A single-point scale is legal.
//
// Construction:
//
//	scale := []statement.InteractionComponent{low, medium, high}
//	def, err := statement.NewLikertDefinition(name, description, pattern, scale)
//
// The activity type is fixed to the cmi.interaction IRI and is not
// caller-settable.
type LikertDefinition struct {
	interactionCore
	scale []InteractionComponent
}

// NewLikertDefinition creates a LikertDefinition. Name, description, and
// the correct-response pattern are required; the scale must be non-nil and
// hold at least one component.
func NewLikertDefinition(name, description LanguageMap, pattern ResponsePattern,
	scale []InteractionComponent, opts ...DefinitionOption) (LikertDefinition, error) {
	core, err := newInteractionCore("LikertDefinition", name, description, InteractionLikert, pattern, opts)
	if err != nil {
		return LikertDefinition{}, err
	}
	copied, err := validateComponents("LikertDefinition", "scale", scale)
	if err != nil {
		return LikertDefinition{}, err
	}
	return LikertDefinition{interactionCore: core, scale: copied}, nil
}

// Scale returns the rating points in order. The returned slice is a copy.
func (d LikertDefinition) Scale() []InteractionComponent {
	return copyComponents(d.scale)
}

// MarshalJSON implements json.Marshaler.
func (d LikertDefinition) MarshalJSON() ([]byte, error) {
	wire := d.wire()
	wire.Scale = d.scale
	return json.Marshal(wire)
}

// NumericDefinition asks the learner for a numeric response. It carries no
// component lists.
type NumericDefinition struct {
	interactionCore
}

// NewNumericDefinition creates a NumericDefinition.
func NewNumericDefinition(name, description LanguageMap, pattern ResponsePattern,
	opts ...DefinitionOption) (NumericDefinition, error) {
	core, err := newInteractionCore("NumericDefinition", name, description, InteractionNumeric, pattern, opts)
	if err != nil {
		return NumericDefinition{}, err
	}
	return NumericDefinition{interactionCore: core}, nil
}

// MarshalJSON implements json.Marshaler.
func (d NumericDefinition) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.wire())
}

// OtherDefinition covers interactions outside the named categories. It
// carries no component lists.
type OtherDefinition struct {
	interactionCore
}

// NewOtherDefinition creates an OtherDefinition.
func NewOtherDefinition(name, description LanguageMap, pattern ResponsePattern,
	opts ...DefinitionOption) (OtherDefinition, error) {
	core, err := newInteractionCore("OtherDefinition", name, description, InteractionOther, pattern, opts)
	if err != nil {
		return OtherDefinition{}, err
	}
	return OtherDefinition{interactionCore: core}, nil
}

// MarshalJSON implements json.Marshaler.
func (d OtherDefinition) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.wire())
}
