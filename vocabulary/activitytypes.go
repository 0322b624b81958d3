package vocabulary

// Activity-type vocabulary for the ADL namespace.
//
// An activity definition's type IRI classifies what kind of thing the
// activity is. Consumers group and filter on these IRIs, so reuse of the
// well-known set beats inventing parallel ones.

const (
	// ActivityTypeCourse classifies a full course of instruction.
	ActivityTypeCourse = ActivityTypeBase + "/course"

	// ActivityTypeModule classifies one unit within a course.
	ActivityTypeModule = ActivityTypeBase + "/module"

	// ActivityTypeAssessment classifies a graded test or quiz.
	ActivityTypeAssessment = ActivityTypeBase + "/assessment"

	// ActivityTypeLesson classifies a single lesson or learning session.
	ActivityTypeLesson = ActivityTypeBase + "/lesson"

	// ActivityTypeMedia classifies audio, video, or other media content.
	ActivityTypeMedia = ActivityTypeBase + "/media"

	// ActivityTypeInteraction classifies a single interaction item such as
	// a quiz question. Interaction definitions carry this type implicitly.
	ActivityTypeInteraction = ActivityTypeBase + "/cmi.interaction"
)
