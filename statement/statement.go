package statement

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/seanpm2001/xapi/errors"
	"github.com/seanpm2001/xapi/pkg/optional"
)

// timestampLayout renders ISO-8601 with millisecond precision and a UTC
// offset, the form consumers of serialized statements expect.
const timestampLayout = "2006-01-02T15:04:05.000-07:00"

// Statement is the complete record of one experience: an actor, the verb
// describing what they did, and the object they did it to, with optional
// result, context, and timestamp. Statements are immutable after
// construction.
//
// Construction using Functional Options:
//
//	// Minimal statement with a generated id
//	st, err := statement.NewStatement(actor, verb, activity)
//
//	// Statement with a fixed id (testing/replay)
//	st, err := statement.NewStatement(actor, verb, activity,
//	    statement.WithID(id))
//
//	// Fully populated statement
//	st, err := statement.NewStatement(actor, verb, activity,
//	    statement.WithResult(result),
//	    statement.WithContext(ctx),
//	    statement.WithTimestamp(when))
type Statement struct {
	id        uuid.UUID
	actor     Actor
	verb      Verb
	object    Object
	result    optional.Option[Result]
	context   optional.Option[Context]
	timestamp optional.Option[time.Time]
}

// StatementOption is a functional option for Statement construction.
type StatementOption func(*Statement)

// WithID sets a specific statement id instead of generating one. Useful
// for replaying historical records or fixing ids in tests.
func WithID(id uuid.UUID) StatementOption {
	return func(s *Statement) {
		s.id = id
	}
}

// WithResult attaches the measured outcome.
func WithResult(result Result) StatementOption {
	return func(s *Statement) {
		s.result = optional.Some(result)
	}
}

// WithContext attaches the situating context.
func WithContext(ctx Context) StatementOption {
	return func(s *Statement) {
		s.context = optional.Some(ctx)
	}
}

// WithTimestamp sets when the experience occurred. Without the option the
// statement carries no timestamp at all; consumers fall back to their own
// receipt time.
func WithTimestamp(t time.Time) StatementOption {
	return func(s *Statement) {
		s.timestamp = optional.Some(t)
	}
}

// NewStatement creates a Statement. Actor, verb, and object are required;
// the id is generated unless WithID supplies one. Optional attachments
// must be constructed values: a zero Result, Context, or timestamp is
// rejected rather than silently dropped.
func NewStatement(actor Actor, verb Verb, object Object, opts ...StatementOption) (Statement, error) {
	if actor == nil {
		return Statement{}, errors.NilArgument("Statement", "actor")
	}
	if verb.IsZero() {
		return Statement{}, errors.NilArgument("Statement", "verb")
	}
	if object == nil {
		return Statement{}, errors.NilArgument("Statement", "object")
	}
	if a, ok := object.(Activity); ok && a.IsZero() {
		return Statement{}, errors.NilArgument("Statement", "object")
	}

	s := Statement{
		id:     uuid.New(),
		actor:  actor,
		verb:   verb,
		object: object,
	}
	for _, opt := range opts {
		opt(&s)
	}

	if s.id == uuid.Nil {
		return Statement{}, errors.InvalidArgument("Statement", "id", "must not be the nil UUID")
	}
	if result, ok := s.result.Get(); ok && result.IsZero() {
		return Statement{}, errors.InvalidArgument("Statement", "result",
			"must not be empty; omit the option instead")
	}
	if ctx, ok := s.context.Get(); ok && ctx.IsZero() {
		return Statement{}, errors.InvalidArgument("Statement", "context",
			"must not be empty; omit the option instead")
	}
	if t, ok := s.timestamp.Get(); ok && t.IsZero() {
		return Statement{}, errors.InvalidArgument("Statement", "timestamp", "must not be the zero time")
	}

	return s, nil
}

// ID returns the statement id.
func (s Statement) ID() uuid.UUID {
	return s.id
}

// Actor returns the statement's subject.
func (s Statement) Actor() Actor {
	return s.actor
}

// Verb returns the statement's action.
func (s Statement) Verb() Verb {
	return s.verb
}

// Object returns what the statement is about.
func (s Statement) Object() Object {
	return s.object
}

// Result returns the measured outcome when one was attached.
func (s Statement) Result() optional.Option[Result] {
	return s.result
}

// Context returns the situating context when one was attached.
func (s Statement) Context() optional.Option[Context] {
	return s.context
}

// Timestamp returns when the experience occurred, when recorded.
func (s Statement) Timestamp() optional.Option[time.Time] {
	return s.timestamp
}

// statementWire is the JSON shape of a Statement. Field order here is the
// emission order: id, actor, verb, object, then the optionals.
type statementWire struct {
	ID        string          `json:"id"`
	Actor     Actor           `json:"actor"`
	Verb      Verb            `json:"verb"`
	Object    json.RawMessage `json:"object"`
	Result    *Result         `json:"result,omitempty"`
	Context   *Context        `json:"context,omitempty"`
	Timestamp *string         `json:"timestamp,omitempty"`
}

// MarshalJSON implements json.Marshaler. A minimal statement emits exactly
// id, actor, verb, and object; absent optionals contribute no keys, never
// null values.
func (s Statement) MarshalJSON() ([]byte, error) {
	object, err := marshalObject(s.object)
	if err != nil {
		return nil, err
	}

	wire := statementWire{
		ID:      s.id.String(),
		Actor:   s.actor,
		Verb:    s.verb,
		Object:  object,
		Result:  s.result.Ptr(),
		Context: s.context.Ptr(),
	}
	if t, ok := s.timestamp.Get(); ok {
		formatted := t.Format(timestampLayout)
		wire.Timestamp = &formatted
	}
	return json.Marshal(wire)
}
