package statement

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/seanpm2001/xapi/errors"
	"github.com/seanpm2001/xapi/pkg/optional"
)

// ContextActivities groups the activities that situate a statement:
// parents the object belongs to, groupings it is part of, categories
// (profiles) it conforms to, and other loosely related activities. At
// least one group must be populated; an empty grouping is never
// constructible.
//
// The lists serialize in the short id-only activity form.
type ContextActivities struct {
	parent   []Activity
	grouping []Activity
	category []Activity
	other    []Activity
}

// ContextActivitiesOption is a functional option for ContextActivities
// construction.
type ContextActivitiesOption func(*ContextActivities)

// WithParent sets the activities the statement object is a direct part of.
func WithParent(activities ...Activity) ContextActivitiesOption {
	return func(ca *ContextActivities) {
		ca.parent = activities
	}
}

// WithGrouping sets activities the statement belongs to more loosely.
func WithGrouping(activities ...Activity) ContextActivitiesOption {
	return func(ca *ContextActivities) {
		ca.grouping = activities
	}
}

// WithCategory sets the profiles or categories the statement conforms to.
func WithCategory(activities ...Activity) ContextActivitiesOption {
	return func(ca *ContextActivities) {
		ca.category = activities
	}
}

// WithOther sets related activities outside the first three groups.
func WithOther(activities ...Activity) ContextActivitiesOption {
	return func(ca *ContextActivities) {
		ca.other = activities
	}
}

// NewContextActivities creates a ContextActivities grouping. At least one
// of the four lists must be populated, and every supplied activity must be
// a constructed value.
func NewContextActivities(opts ...ContextActivitiesOption) (ContextActivities, error) {
	var ca ContextActivities
	for _, opt := range opts {
		opt(&ca)
	}

	if ca.IsZero() {
		return ContextActivities{}, errors.InvalidArgument("ContextActivities", "opts",
			"at least one activity list is required; omit contextActivities instead")
	}

	lists := []struct {
		argument   string
		activities *[]Activity
	}{
		{"parent", &ca.parent},
		{"grouping", &ca.grouping},
		{"category", &ca.category},
		{"other", &ca.other},
	}
	for _, list := range lists {
		if *list.activities == nil {
			continue
		}
		if len(*list.activities) == 0 {
			return ContextActivities{}, errors.InvalidArgument("ContextActivities", list.argument,
				"must contain at least one activity; omit the option instead")
		}
		for i, a := range *list.activities {
			if a.IsZero() {
				return ContextActivities{}, errors.InvalidArgument("ContextActivities", list.argument,
					fmt.Sprintf("activity %d is a zero value", i))
			}
		}
		copied := make([]Activity, len(*list.activities))
		copy(copied, *list.activities)
		*list.activities = copied
	}

	return ca, nil
}

// Parent returns the parent activities. The returned slice is a copy; nil
// when the group was not populated.
func (ca ContextActivities) Parent() []Activity {
	return copyActivities(ca.parent)
}

// Grouping returns the grouping activities. The returned slice is a copy.
func (ca ContextActivities) Grouping() []Activity {
	return copyActivities(ca.grouping)
}

// Category returns the category activities. The returned slice is a copy.
func (ca ContextActivities) Category() []Activity {
	return copyActivities(ca.category)
}

// Other returns the other related activities. The returned slice is a copy.
func (ca ContextActivities) Other() []Activity {
	return copyActivities(ca.other)
}

// IsZero reports whether no list was populated.
func (ca ContextActivities) IsZero() bool {
	return ca.parent == nil && ca.grouping == nil && ca.category == nil && ca.other == nil
}

func copyActivities(activities []Activity) []Activity {
	if activities == nil {
		return nil
	}
	copied := make([]Activity, len(activities))
	copy(copied, activities)
	return copied
}

// contextActivitiesWire is the JSON shape of a ContextActivities grouping.
type contextActivitiesWire struct {
	Parent   []activityRefWire `json:"parent,omitempty"`
	Grouping []activityRefWire `json:"grouping,omitempty"`
	Category []activityRefWire `json:"category,omitempty"`
	Other    []activityRefWire `json:"other,omitempty"`
}

func activityRefs(activities []Activity) []activityRefWire {
	if activities == nil {
		return nil
	}
	refs := make([]activityRefWire, len(activities))
	for i, a := range activities {
		refs[i] = activityRefWire{ID: a.ID()}
	}
	return refs
}

// MarshalJSON implements json.Marshaler, emitting each populated list as
// an array of short-form activities.
func (ca ContextActivities) MarshalJSON() ([]byte, error) {
	return json.Marshal(contextActivitiesWire{
		Parent:   activityRefs(ca.parent),
		Grouping: activityRefs(ca.grouping),
		Category: activityRefs(ca.category),
		Other:    activityRefs(ca.other),
	})
}

// Context situates a statement: the registration it belongs to, the
// instructor and team involved, surrounding activities, the content
// revision, the delivery platform, and the interaction language. Every
// field is optional, but a Context with no fields at all is not
// constructible.
//
// Construction using Functional Options:
//
//	ctx, err := statement.NewContext(
//	    statement.WithRegistration(registration),
//	    statement.WithInstructor(instructor),
//	    statement.WithContextActivities(activities))
type Context struct {
	registration      optional.Option[uuid.UUID]
	instructor        Actor
	team              Actor
	contextActivities optional.Option[ContextActivities]
	revision          optional.Option[string]
	platform          optional.Option[string]
	language          optional.Option[string]
	extensions        optional.Option[Extensions]
}

// ContextOption is a functional option for Context construction.
type ContextOption func(*Context)

// WithRegistration ties the statement to a registration: one enrollment of
// one learner in one course of study.
func WithRegistration(registration uuid.UUID) ContextOption {
	return func(c *Context) {
		c.registration = optional.Some(registration)
	}
}

// WithInstructor records the actor who instructed the experience.
func WithInstructor(instructor Actor) ContextOption {
	return func(c *Context) {
		c.instructor = instructor
	}
}

// WithTeam records the group the actor worked within.
func WithTeam(team Actor) ContextOption {
	return func(c *Context) {
		c.team = team
	}
}

// WithContextActivities attaches the surrounding activity grouping.
func WithContextActivities(ca ContextActivities) ContextOption {
	return func(c *Context) {
		c.contextActivities = optional.Some(ca)
	}
}

// WithRevision records the revision of the learning content.
func WithRevision(revision string) ContextOption {
	return func(c *Context) {
		c.revision = optional.Some(revision)
	}
}

// WithPlatform records the platform the experience occurred on.
func WithPlatform(platform string) ContextOption {
	return func(c *Context) {
		c.platform = optional.Some(platform)
	}
}

// WithLanguage records the language the experience occurred in.
func WithLanguage(language string) ContextOption {
	return func(c *Context) {
		c.language = optional.Some(language)
	}
}

// WithContextExtensions attaches extensions to the context.
func WithContextExtensions(ext Extensions) ContextOption {
	return func(c *Context) {
		c.extensions = optional.Some(ext)
	}
}

// NewContext creates a Context. At least one field must be supplied.
// Provided values must be constructed: the registration must not be the
// nil UUID and strings must be non-empty. A nil instructor or team
// counts as absent.
func NewContext(opts ...ContextOption) (Context, error) {
	var c Context
	for _, opt := range opts {
		opt(&c)
	}

	if c.IsZero() {
		return Context{}, errors.InvalidArgument("Context", "opts",
			"at least one field is required; omit the context instead of attaching an empty one")
	}
	if registration, ok := c.registration.Get(); ok && registration == uuid.Nil {
		return Context{}, errors.InvalidArgument("Context", "registration", "must not be the nil UUID")
	}
	if ca, ok := c.contextActivities.Get(); ok && ca.IsZero() {
		return Context{}, errors.InvalidArgument("Context", "contextActivities",
			"must not be empty; omit the option instead")
	}
	if revision, ok := c.revision.Get(); ok && revision == "" {
		return Context{}, errors.InvalidArgument("Context", "revision", "must not be empty")
	}
	if platform, ok := c.platform.Get(); ok && platform == "" {
		return Context{}, errors.InvalidArgument("Context", "platform", "must not be empty")
	}
	if language, ok := c.language.Get(); ok && language == "" {
		return Context{}, errors.InvalidArgument("Context", "language", "must not be empty")
	}
	if ext, ok := c.extensions.Get(); ok && ext.IsZero() {
		return Context{}, errors.InvalidArgument("Context", "extensions",
			"must not be empty; omit the option instead")
	}

	return c, nil
}

// Registration returns the registration when one was recorded.
func (c Context) Registration() optional.Option[uuid.UUID] {
	return c.registration
}

// Instructor returns the instructor, or nil when none was recorded.
func (c Context) Instructor() Actor {
	return c.instructor
}

// Team returns the team, or nil when none was recorded.
func (c Context) Team() Actor {
	return c.team
}

// ContextActivities returns the activity grouping when one was recorded.
func (c Context) ContextActivities() optional.Option[ContextActivities] {
	return c.contextActivities
}

// Revision returns the content revision when one was recorded.
func (c Context) Revision() optional.Option[string] {
	return c.revision
}

// Platform returns the platform when one was recorded.
func (c Context) Platform() optional.Option[string] {
	return c.platform
}

// Language returns the language when one was recorded.
func (c Context) Language() optional.Option[string] {
	return c.language
}

// Extensions returns the attached extensions when any were recorded.
func (c Context) Extensions() optional.Option[Extensions] {
	return c.extensions
}

// IsZero reports whether c carries no fields at all.
func (c Context) IsZero() bool {
	return !c.registration.IsPresent() && c.instructor == nil && c.team == nil &&
		!c.contextActivities.IsPresent() && !c.revision.IsPresent() &&
		!c.platform.IsPresent() && !c.language.IsPresent() && !c.extensions.IsPresent()
}

// contextWire is the JSON shape of a Context.
type contextWire struct {
	Registration      *string            `json:"registration,omitempty"`
	Instructor        Actor              `json:"instructor,omitempty"`
	Team              Actor              `json:"team,omitempty"`
	ContextActivities *ContextActivities `json:"contextActivities,omitempty"`
	Revision          *string            `json:"revision,omitempty"`
	Platform          *string            `json:"platform,omitempty"`
	Language          *string            `json:"language,omitempty"`
	Extensions        *Extensions        `json:"extensions,omitempty"`
}

// MarshalJSON implements json.Marshaler. Absent fields contribute no keys.
func (c Context) MarshalJSON() ([]byte, error) {
	wire := contextWire{
		Instructor:        c.instructor,
		Team:              c.team,
		ContextActivities: c.contextActivities.Ptr(),
		Revision:          c.revision.Ptr(),
		Platform:          c.platform.Ptr(),
		Language:          c.language.Ptr(),
		Extensions:        c.extensions.Ptr(),
	}
	if registration, ok := c.registration.Get(); ok {
		formatted := registration.String()
		wire.Registration = &formatted
	}
	return json.Marshal(wire)
}
