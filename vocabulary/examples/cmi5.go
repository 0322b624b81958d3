// Package examples provides reference vocabulary registrations. These are
// NOT part of the core library; they demonstrate how applications register
// verbs beyond the shipped ADL defaults.
//
// Applications should create similar packages in their own codebases.
package examples

import "github.com/seanpm2001/xapi/vocabulary"

// cmi5 extension verbs. The cmi5 profile reuses most of the ADL set and
// adds these three under the w3id namespace.
const (
	// Cmi5VerbSatisfied - the actor met all requirements of a block or course
	Cmi5VerbSatisfied = "https://w3id.org/xapi/adl/verbs/satisfied"

	// Cmi5VerbWaived - a requirement was lifted without the actor doing it
	Cmi5VerbWaived = "https://w3id.org/xapi/adl/verbs/waived"

	// Cmi5VerbAbandoned - the session ended without a terminate call
	Cmi5VerbAbandoned = "https://w3id.org/xapi/adl/verbs/abandoned"
)

// RegisterCmi5Vocabulary registers the cmi5 extension verbs.
func RegisterCmi5Vocabulary() {
	vocabulary.Register(Cmi5VerbSatisfied,
		vocabulary.WithDisplay("en-US", "satisfied"),
		vocabulary.WithDescription("The actor met all requirements of a block or course."))

	vocabulary.Register(Cmi5VerbWaived,
		vocabulary.WithDisplay("en-US", "waived"),
		vocabulary.WithDescription("A requirement was lifted without the actor completing it."))

	vocabulary.Register(Cmi5VerbAbandoned,
		vocabulary.WithDisplay("en-US", "abandoned"),
		vocabulary.WithDescription("The session ended abnormally, without a terminate call."))
}
