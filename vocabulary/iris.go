package vocabulary

import (
	"fmt"
	"strings"
)

// Base IRI constants for the ADL vocabulary namespaces
const (
	AdlBase          = "http://adlnet.gov/expapi"
	VerbBase         = AdlBase + "/verbs"
	ActivityTypeBase = AdlBase + "/activities"
)

// VerbIRI builds a verb IRI in the ADL namespace from a short verb name.
//
// Input format: a single lowercase path segment (e.g., "completed")
// Output format: "http://adlnet.gov/expapi/verbs/completed"
//
// This is a convenience for callers composing IRIs from configuration;
// code should prefer the named constants where one exists.
//
// Returns empty string for invalid input formats.
//
// Example:
//
//	iri := vocabulary.VerbIRI("completed")  // == vocabulary.VerbCompleted
func VerbIRI(name string) string {
	segment := pathSegment(name)
	if segment == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s", VerbBase, segment)
}

// ActivityTypeIRI builds an activity-type IRI in the ADL namespace from a
// short type name.
//
// Input format: a single lowercase path segment (e.g., "assessment")
// Output format: "http://adlnet.gov/expapi/activities/assessment"
//
// Returns empty string for invalid input formats.
//
// Example:
//
//	iri := vocabulary.ActivityTypeIRI("course")  // == vocabulary.ActivityTypeCourse
func ActivityTypeIRI(name string) string {
	segment := pathSegment(name)
	if segment == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s", ActivityTypeBase, segment)
}

// pathSegment validates and normalizes a single IRI path segment.
// Returns empty string when the input cannot form one segment.
func pathSegment(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	// A segment must not introduce new path levels or fragments
	if strings.ContainsAny(name, "/#?") {
		return ""
	}

	// Embedded whitespace never belongs in an IRI segment
	if strings.ContainsAny(name, " \t\n") {
		return ""
	}

	return name
}
