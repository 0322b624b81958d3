// Package xapi is the module root for a validated, serialize-only model of
// learning-experience statements.
//
// # Layout
//
// The module is organized by concern:
//
//	statement/    the statement data model: actors, verbs, activities,
//	              interaction definitions, results, context, serialization
//	vocabulary/   well-known ADL verb and activity-type IRIs, a runtime
//	              verb registry, and YAML vocabulary profiles
//	schema/       JSON Schema validation of serialized statement output
//	errors/       argument-error classification shared by all packages
//	pkg/optional/ explicit optional values backing sparse serialization
//	pkg/duration/ ISO-8601 duration formatting
//
//	cmd/statement-lint/   CLI validating serialized statement documents
//
// # Design
//
// Every exported type is an immutable value constructed through a
// validating constructor; the zero value of a required type is invalid and
// rejected wherever it is passed. Optional fields are explicit, either an
// optional.Option value or a nil interface, and absent fields contribute
// no JSON keys on serialization.
//
// Construction errors are classified: a missing required argument is a
// nil-argument error naming the parameter, a present-but-malformed one is
// an invalid-argument error naming the parameter and reason. Serializing a
// variant outside the sealed actor, identifier, or object families is an
// unimplemented-variant defect, never silent fallback output.
//
// # Quick Start
//
//	mbox, _ := statement.NewMailbox("ada@example.com")
//	actor, _ := statement.NewAgent(mbox, statement.WithName("Ada Lovelace"))
//
//	info, _ := vocabulary.Lookup(vocabulary.VerbCompleted)
//	verb, _ := info.Verb()
//
//	id, _ := statement.NewIRI("https://example.com/activities/golf-quiz")
//	object, _ := statement.NewActivity(id)
//
//	st, err := statement.NewStatement(actor, verb, object)
//	if err != nil {
//	    return err
//	}
//	out, err := statement.Serialize(st)
package xapi
