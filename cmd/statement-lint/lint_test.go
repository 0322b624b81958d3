package main

import (
	"strings"
	"testing"

	"github.com/seanpm2001/xapi/vocabulary"
)

const validDoc = `{
  "id": "12345678-1234-5678-1234-567812345678",
  "actor": {"objectType": "Agent", "mbox": "mailto:ada@example.com"},
  "verb": {"id": "http://adlnet.gov/expapi/verbs/completed", "display": {"en-US": "completed"}},
  "object": {"objectType": "Activity", "id": "https://example.com/activities/golf-quiz"}
}`

func TestLintDocument_Valid(t *testing.T) {
	if err := lintDocument("test", []byte(validDoc), defaultActivityTypes()); err != nil {
		t.Fatalf("Expected valid document, got: %v", err)
	}
}

func TestLintDocument_SchemaViolation(t *testing.T) {
	doc := `{"id": "12345678-1234-5678-1234-567812345678"}`

	err := lintDocument("test", []byte(doc), defaultActivityTypes())
	if err == nil {
		t.Fatal("Expected schema violation error, got nil")
	}
	if !strings.Contains(err.Error(), "actor is required") {
		t.Errorf("Error should name the missing field, got: %v", err)
	}
}

func TestLintDocument_UnregisteredVerbIsNotAnError(t *testing.T) {
	doc := strings.Replace(validDoc,
		"http://adlnet.gov/expapi/verbs/completed",
		"https://example.com/verbs/invented", 1)

	if err := lintDocument("test", []byte(doc), defaultActivityTypes()); err != nil {
		t.Fatalf("Unregistered verb should only warn, got: %v", err)
	}
}

func TestLintDocument_ProfileVerbSuppresses(t *testing.T) {
	doc := strings.Replace(validDoc,
		"http://adlnet.gov/expapi/verbs/completed",
		"https://w3id.org/xapi/video/verbs/seeked", 1)

	profile, err := vocabulary.LoadProfile(strings.NewReader(`
verbs:
  - id: https://w3id.org/xapi/video/verbs/seeked
    display:
      en-US: seeked
`))
	if err != nil {
		t.Fatalf("Failed to load profile: %v", err)
	}
	profile.Register()

	if _, ok := vocabulary.Lookup("https://w3id.org/xapi/video/verbs/seeked"); !ok {
		t.Fatal("Profile verb should be registered")
	}
	if err := lintDocument("test", []byte(doc), defaultActivityTypes()); err != nil {
		t.Fatalf("Expected valid document, got: %v", err)
	}
}

func TestDefaultActivityTypes(t *testing.T) {
	types := defaultActivityTypes()

	for _, id := range []string{
		vocabulary.ActivityTypeCourse,
		vocabulary.ActivityTypeInteraction,
	} {
		if !types[id] {
			t.Errorf("Expected %s in the default activity types", id)
		}
	}
}
