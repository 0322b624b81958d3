package vocabulary

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/seanpm2001/xapi/errors"
)

// Profile is a declarative vocabulary document: a named set of verbs and
// activity types an application wants registered beyond the ADL defaults.
//
// Document shape:
//
//	name: cmi5
//	verbs:
//	  - id: https://w3id.org/xapi/adl/verbs/satisfied
//	    display:
//	      en-US: satisfied
//	    description: The actor met all requirements of the unit.
//	activityTypes:
//	  - id: https://w3id.org/xapi/cmi5/activitytype/block
//	    description: A structural grouping of units.
type Profile struct {
	Name          string                `yaml:"name"`
	Verbs         []ProfileVerb         `yaml:"verbs"`
	ActivityTypes []ProfileActivityType `yaml:"activityTypes"`
}

// ProfileVerb is one verb entry of a Profile.
type ProfileVerb struct {
	ID          string            `yaml:"id"`
	Display     map[string]string `yaml:"display"`
	Description string            `yaml:"description"`
}

// ProfileActivityType is one activity-type entry of a Profile.
type ProfileActivityType struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
}

// LoadProfile parses and validates a YAML vocabulary profile. Every verb
// needs an id and at least one display entry; every activity type needs an
// id. Structural violations are rejected before anything reaches the
// registry.
func LoadProfile(r io.Reader) (*Profile, error) {
	if r == nil {
		return nil, errors.NilArgument("Profile", "r")
	}

	var p Profile
	if err := yaml.NewDecoder(r).Decode(&p); err != nil {
		return nil, errors.Wrap(err, "Profile", "LoadProfile", "decode document")
	}

	for i, verb := range p.Verbs {
		if verb.ID == "" {
			return nil, errors.InvalidArgument("Profile", "verbs",
				fmt.Sprintf("verb %d is missing an id", i))
		}
		if len(verb.Display) == 0 {
			return nil, errors.InvalidArgument("Profile", "verbs",
				fmt.Sprintf("verb %d (%s) has no display entries", i, verb.ID))
		}
		for tag, text := range verb.Display {
			if tag == "" {
				return nil, errors.InvalidArgument("Profile", "verbs",
					fmt.Sprintf("verb %d (%s) has an empty display tag", i, verb.ID))
			}
			if text == "" {
				return nil, errors.InvalidArgument("Profile", "verbs",
					fmt.Sprintf("verb %d (%s) has empty display text for tag %q", i, verb.ID, tag))
			}
		}
	}

	for i, at := range p.ActivityTypes {
		if at.ID == "" {
			return nil, errors.InvalidArgument("Profile", "activityTypes",
				fmt.Sprintf("activity type %d is missing an id", i))
		}
	}

	return &p, nil
}

// Register merges the profile's verbs into the global registry. Verbs
// already registered under the same IRI are overwritten. Activity types
// carry no registry state; consumers read them off the Profile directly.
func (p *Profile) Register() {
	for _, verb := range p.Verbs {
		opts := make([]Option, 0, len(verb.Display)+1)
		for tag, text := range verb.Display {
			opts = append(opts, WithDisplay(tag, text))
		}
		if verb.Description != "" {
			opts = append(opts, WithDescription(verb.Description))
		}
		Register(verb.ID, opts...)
	}
}
