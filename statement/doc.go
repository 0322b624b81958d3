// Package statement implements the experience record data model: validated,
// immutable value types that assemble into complete "actor, verb, object"
// statements and serialize to the interoperable JSON wire format.
//
// # Overview
//
// Every type in this package follows the same contract: a constructor
// validates all inputs and either returns a fully valid, immutable value or
// an error naming the offending argument. No partially constructed value is
// ever observable, there are no setters, and serialization can assume its
// input is valid. The package is pure: no I/O, no logging, no global state.
//
// The aggregate root is Statement:
//
//	actor, err := statement.NewAgent(mbox, statement.WithName("Ada Lovelace"))
//	verb, err := statement.NewVerb(verbIRI, display)
//	activity, err := statement.NewActivity(activityIRI)
//
//	st, err := statement.NewStatement(actor, verb, activity)
//	out, err := statement.Serialize(st)
//
// # Optional Fields
//
// Optional data is modeled with optional.Option values or nil interfaces,
// never with sentinel values. Absence is meaningful: a boolean flag that was
// never set is distinct from one explicitly set to false, and an absent
// field contributes no JSON key at all, never a null.
//
// Where a field is optional, supplying it empty is an error. A Result with
// no fields, an empty Extensions collection, or an empty member list are
// all rejected at construction: callers with nothing to attach omit the
// option instead.
//
// # Actors and Identifiers
//
// Actors come in two variants, Agent and Group, and are identified by at
// most one inverse functional identifier (IFI). The IFI family is closed:
// Mailbox, MailboxSha1Sum, OpenID, and Account are the only variants, and
// serialization dispatches exhaustively over them. A value outside the set
// produces an unimplemented-variant error immediately.
//
// # Interaction Definitions
//
// Activity definitions form a small closed hierarchy: the plain
// ActivityDefinition plus one definition type per interaction kind
// (true-false, choice, fill-in, long-fill-in, matching, performance,
// sequencing, likert, numeric, other). All interaction definitions share
// the fixed cmi.interaction activity type and a required correct-response
// pattern; kinds with selectable components additionally require their
// component lists. Consumers that do not care about the concrete kind
// accept the Definition or InteractionDefinition interfaces.
//
// Response matching lives on ResponsePattern:
//
//	pattern, err := statement.NewSingleResponsePattern("likert_3")
//	pattern.Match("LIKERT_3") // true: case-insensitive by default
//
// # Serialization
//
// Every entity implements json.Marshaler. Objects are sparse: absent
// optional fields are omitted entirely, and key order is fixed by the wire
// structs (a minimal statement emits exactly id, actor, verb, object in
// that order). Language maps and extensions emit their keys in
// construction order.
//
// # Error Handling
//
// Constructors fail with exactly two argument error kinds: a nil-argument
// error naming the missing parameter, or an invalid-argument error naming
// the parameter and the violated rule. Serializers add the
// unimplemented-variant error for values outside a closed family. All
// three classify through the errors package:
//
//	if errors.IsInvalidArgument(err) {
//	    // the caller supplied a value that violates a model invariant
//	}
//
// # Thread Safety
//
// All values are immutable after construction and safe for concurrent use.
// Accessors that expose internal slices return copies.
package statement
