package main

import (
	"fmt"
	"log"

	json "github.com/goccy/go-json"

	"github.com/seanpm2001/xapi/schema"
	"github.com/seanpm2001/xapi/vocabulary"
)

// statementDoc is the slice of a statement document the linter inspects
// beyond schema validation.
type statementDoc struct {
	Verb struct {
		ID string `json:"id"`
	} `json:"verb"`
	Object struct {
		Definition struct {
			Type string `json:"type"`
		} `json:"definition"`
	} `json:"object"`
}

// lintDocument validates one serialized statement. Schema violations are
// errors; an unregistered verb or unknown activity type only warns, since
// applications legitimately mint their own IRIs.
func lintDocument(name string, data []byte, knownTypes map[string]bool) error {
	if err := schema.ValidateStatement(data); err != nil {
		return err
	}

	var doc statementDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to decode statement: %w", err)
	}

	if _, ok := vocabulary.Lookup(doc.Verb.ID); !ok {
		log.Printf("  ⚠️  %s: verb %s is not registered", name, doc.Verb.ID)
	}
	if t := doc.Object.Definition.Type; t != "" && !knownTypes[t] {
		log.Printf("  ⚠️  %s: activity type %s is not a known type", name, t)
	}

	return nil
}

// defaultActivityTypes returns the ADL activity-type set the linter
// accepts without a profile.
func defaultActivityTypes() map[string]bool {
	return map[string]bool{
		vocabulary.ActivityTypeCourse:      true,
		vocabulary.ActivityTypeModule:      true,
		vocabulary.ActivityTypeAssessment:  true,
		vocabulary.ActivityTypeLesson:      true,
		vocabulary.ActivityTypeMedia:       true,
		vocabulary.ActivityTypeInteraction: true,
	}
}
