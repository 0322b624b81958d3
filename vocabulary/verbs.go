package vocabulary

// Verb vocabulary for the ADL namespace.
//
// Verb IRIs carry the meaning of a statement; the display text attached to
// them is informational only. Two statements with the same verb IRI mean
// the same action regardless of display language.
//
// Naming conventions:
//   - IRI path segment: lowercase past-tense English ("completed", "passed")
//   - Go constant: Verb prefix plus the capitalized segment (VerbCompleted)
//
// Applications define their own verbs outside this namespace; these
// constants cover the common ADL set and are registered as defaults.

const (
	// VerbCompleted indicates the actor finished or concluded the activity
	// normally.
	VerbCompleted = VerbBase + "/completed"

	// VerbAnswered indicates the actor replied to a question or interaction.
	VerbAnswered = VerbBase + "/answered"

	// VerbAttempted indicates the actor made an effort toward the activity,
	// with no implication of completion.
	VerbAttempted = VerbBase + "/attempted"

	// VerbExperienced indicates the actor passively encountered the
	// activity, such as viewing a page or playing a video.
	VerbExperienced = VerbBase + "/experienced"

	// VerbPassed indicates the actor met the passing criteria of a graded
	// activity.
	VerbPassed = VerbBase + "/passed"

	// VerbFailed indicates the actor did not meet the passing criteria of a
	// graded activity.
	VerbFailed = VerbBase + "/failed"

	// VerbInitialized indicates the activity was started or prepared for
	// the actor.
	VerbInitialized = VerbBase + "/initialized"

	// VerbTerminated indicates the actor ended the activity.
	VerbTerminated = VerbBase + "/terminated"

	// VerbResponded indicates the actor reacted to a prompt or request.
	VerbResponded = VerbBase + "/responded"

	// VerbProgressed indicates the actor advanced through part of the
	// activity.
	VerbProgressed = VerbBase + "/progressed"

	// VerbLaunched indicates the activity was opened for the actor by a
	// launch mechanism.
	VerbLaunched = VerbBase + "/launched"

	// VerbVoided indicates the statement referenced by this one is to be
	// disregarded.
	VerbVoided = VerbBase + "/voided"
)

func init() {
	registerDefaults()
}

// registerDefaults loads the ADL verb set into the registry. Called from
// init; tests that Clear the registry call it again to restore.
func registerDefaults() {
	defaults := []struct {
		id          string
		display     string
		description string
	}{
		{VerbCompleted, "completed", "The actor finished or concluded the activity normally."},
		{VerbAnswered, "answered", "The actor replied to a question or interaction."},
		{VerbAttempted, "attempted", "The actor made an effort toward the activity without implying completion."},
		{VerbExperienced, "experienced", "The actor passively encountered the activity."},
		{VerbPassed, "passed", "The actor met the passing criteria of a graded activity."},
		{VerbFailed, "failed", "The actor did not meet the passing criteria of a graded activity."},
		{VerbInitialized, "initialized", "The activity was started or prepared for the actor."},
		{VerbTerminated, "terminated", "The actor ended the activity."},
		{VerbResponded, "responded", "The actor reacted to a prompt or request."},
		{VerbProgressed, "progressed", "The actor advanced through part of the activity."},
		{VerbLaunched, "launched", "The activity was opened for the actor by a launch mechanism."},
		{VerbVoided, "voided", "The statement referenced by this one is to be disregarded."},
	}

	for _, verb := range defaults {
		Register(verb.id,
			WithDisplay("en-US", verb.display),
			WithDescription(verb.description))
	}
}
