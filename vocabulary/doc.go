// Package vocabulary provides the well-known verb and activity-type IRIs of
// the ADL namespace, a runtime verb registry, and YAML vocabulary profiles.
//
// # Verb IRIs
//
// A verb IRI is the semantic identity of an action. The display text that
// travels with it is informational only; consumers compare IRIs, never
// display strings. This package ships the common ADL set as constants:
//
//	vocabulary.VerbCompleted   // "http://adlnet.gov/expapi/verbs/completed"
//	vocabulary.VerbPassed      // "http://adlnet.gov/expapi/verbs/passed"
//	vocabulary.VerbAnswered    // "http://adlnet.gov/expapi/verbs/answered"
//
// Activity-type IRIs classify what kind of thing an activity is:
//
//	vocabulary.ActivityTypeCourse       // ".../activities/course"
//	vocabulary.ActivityTypeAssessment   // ".../activities/assessment"
//	vocabulary.ActivityTypeInteraction  // ".../activities/cmi.interaction"
//
// # Verb Registry
//
// The registry maps verb IRIs to their display text and description. The
// ADL defaults are registered at package load; applications add their own
// verbs with functional options:
//
//	vocabulary.Register("https://example.com/verbs/reviewed",
//	    vocabulary.WithDisplay("en-US", "reviewed"),
//	    vocabulary.WithDisplay("de-DE", "überprüft"),
//	    vocabulary.WithDescription("The actor reviewed previously seen material."))
//
// Lookups return copies and are safe for concurrent use:
//
//	if info, ok := vocabulary.Lookup(vocabulary.VerbCompleted); ok {
//	    verb, err := info.Verb()  // bridge to a statement.Verb
//	    ...
//	}
//
// # Profiles
//
// A profile is a YAML document declaring verbs and activity types beyond
// the defaults. LoadProfile validates the document's structure;
// (*Profile).Register merges its verbs into the registry:
//
//	profile, err := vocabulary.LoadProfile(file)
//	if err != nil {
//	    return err
//	}
//	profile.Register()
//
// Registration is overwrite-on-conflict: a profile can replace the shipped
// display text of an ADL verb without touching this package.
package vocabulary
