package statement

import (
	json "github.com/goccy/go-json"

	"github.com/seanpm2001/xapi/errors"
	"github.com/seanpm2001/xapi/pkg/optional"
)

// Actor is the sealed family of statement subjects: the individual Agent
// and the collective Group. Both are immutable after construction and
// serialize to the objectType-tagged JSON shapes consumers expect.
type Actor interface {
	json.Marshaler
	// Name returns the display name when one was provided.
	Name() optional.Option[string]
	// Identifier returns the actor's inverse functional identifier, or
	// nil for an unidentified actor.
	Identifier() IFI
	isActor()
}

// actorConfig collects the optional fields shared by Agent and Group
// construction.
type actorConfig struct {
	name optional.Option[string]
}

// ActorOption is a functional option for Agent and Group construction.
type ActorOption func(*actorConfig)

// WithName sets the actor's display name.
func WithName(name string) ActorOption {
	return func(c *actorConfig) {
		c.name = optional.Some(name)
	}
}

// Agent is an individual actor. Both the display name and the identifier
// are optional: an Agent with neither is a valid, fully anonymous subject.
//
// Construction using Functional Options:
//
//	// Identified agent
//	agent, err := statement.NewAgent(mbox)
//
//	// Identified agent with a display name
//	agent, err := statement.NewAgent(mbox, statement.WithName("Ada Lovelace"))
//
//	// Unidentified agent
//	agent, err := statement.NewAgent(nil, statement.WithName("Ada Lovelace"))
type Agent struct {
	name optional.Option[string]
	ifi  IFI
}

// NewAgent creates an Agent. A nil ifi produces an unidentified agent.
// A provided display name must be non-empty.
func NewAgent(ifi IFI, opts ...ActorOption) (Agent, error) {
	var cfg actorConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if ifi != nil && ifiIsZero(ifi) {
		return Agent{}, errors.InvalidArgument("Agent", "ifi",
			"identifier is a zero value; build it with its constructor")
	}
	if name, ok := cfg.name.Get(); ok && name == "" {
		return Agent{}, errors.InvalidArgument("Agent", "name", "must not be empty")
	}

	return Agent{name: cfg.name, ifi: ifi}, nil
}

func (Agent) isActor() {}

// Name returns the display name when one was provided.
func (a Agent) Name() optional.Option[string] {
	return a.name
}

// Identifier returns the agent's IFI, or nil for an unidentified agent.
func (a Agent) Identifier() IFI {
	return a.ifi
}

// actorWire is the JSON shape shared by Agent and Group. The identifier
// keys come from the embedded ifiWire; Member stays nil for agents.
type actorWire struct {
	ObjectType string  `json:"objectType"`
	Name       *string `json:"name,omitempty"`
	ifiWire
	Member []Agent `json:"member,omitempty"`
}

// MarshalJSON implements json.Marshaler. The object always carries
// objectType "Agent"; name and the identifier key appear only when present.
func (a Agent) MarshalJSON() ([]byte, error) {
	ifi, err := newIFIWire(a.ifi)
	if err != nil {
		return nil, err
	}
	return json.Marshal(actorWire{
		ObjectType: "Agent",
		Name:       a.name.Ptr(),
		ifiWire:    ifi,
	})
}

// Group is a collective actor: a set of member agents, an identifier for
// the collective itself, or both. An anonymous group (no identifier) must
// name its members; a group with neither identifier nor members is
// meaningless and not constructible.
type Group struct {
	name   optional.Option[string]
	ifi    IFI
	member []Agent
}

// NewGroup creates a Group. Pass a nil member slice to omit the member
// list; a non-nil empty slice is rejected as explicitly empty. When ifi is
// nil the member list becomes required.
func NewGroup(ifi IFI, member []Agent, opts ...ActorOption) (Group, error) {
	var cfg actorConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if ifi != nil && ifiIsZero(ifi) {
		return Group{}, errors.InvalidArgument("Group", "ifi",
			"identifier is a zero value; build it with its constructor")
	}
	if name, ok := cfg.name.Get(); ok && name == "" {
		return Group{}, errors.InvalidArgument("Group", "name", "must not be empty")
	}
	if member != nil && len(member) == 0 {
		return Group{}, errors.InvalidArgument("Group", "member",
			"must contain at least one agent; pass nil to omit the member list")
	}
	if ifi == nil && member == nil {
		return Group{}, errors.InvalidArgument("Group", "member",
			"an anonymous group requires at least one member")
	}

	var members []Agent
	if member != nil {
		members = make([]Agent, len(member))
		copy(members, member)
	}

	return Group{name: cfg.name, ifi: ifi, member: members}, nil
}

func (Group) isActor() {}

// Name returns the display name when one was provided.
func (g Group) Name() optional.Option[string] {
	return g.name
}

// Identifier returns the group's IFI, or nil for an anonymous group.
func (g Group) Identifier() IFI {
	return g.ifi
}

// Member returns the member agents in construction order. The returned
// slice is a copy; nil when no member list was provided.
func (g Group) Member() []Agent {
	if g.member == nil {
		return nil
	}
	members := make([]Agent, len(g.member))
	copy(members, g.member)
	return members
}

// MarshalJSON implements json.Marshaler. The object always carries
// objectType "Group"; name, the identifier key, and member appear only
// when present.
func (g Group) MarshalJSON() ([]byte, error) {
	ifi, err := newIFIWire(g.ifi)
	if err != nil {
		return nil, err
	}
	return json.Marshal(actorWire{
		ObjectType: "Group",
		Name:       g.name.Ptr(),
		ifiWire:    ifi,
		Member:     g.member,
	})
}
