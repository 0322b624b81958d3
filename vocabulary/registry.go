package vocabulary

import (
	"sort"
	"sync"

	"github.com/seanpm2001/xapi/errors"
	"github.com/seanpm2001/xapi/statement"
)

// VerbInfo holds the registered metadata of one verb: its IRI, the display
// text per language tag, and an optional free-form description.
type VerbInfo struct {
	ID          string
	Display     map[string]string
	Description string
}

// Global verb registry
var (
	registryMu   sync.RWMutex
	verbRegistry = make(map[string]VerbInfo)
)

// Option is a functional option for configuring verb registration.
type Option func(*VerbInfo)

// WithDisplay adds display text for a language tag. Repeat the option to
// cover multiple languages; a repeated tag overwrites the earlier text.
func WithDisplay(tag, text string) Option {
	return func(v *VerbInfo) {
		if v.Display == nil {
			v.Display = make(map[string]string)
		}
		v.Display[tag] = text
	}
}

// WithDescription sets the human-readable description of the verb.
func WithDescription(desc string) Option {
	return func(v *VerbInfo) {
		v.Description = desc
	}
}

// Register records a verb in the global registry. This should be called
// during package initialization (init functions) by domain vocabularies.
//
// If a verb is already registered it is overwritten, which lets
// applications override the shipped ADL defaults.
//
// Example:
//
//	vocabulary.Register("https://example.com/verbs/reviewed",
//	    vocabulary.WithDisplay("en-US", "reviewed"),
//	    vocabulary.WithDescription("The actor reviewed previously seen material."))
func Register(id string, opts ...Option) {
	info := VerbInfo{ID: id}
	for _, opt := range opts {
		opt(&info)
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	verbRegistry[id] = info
}

// Lookup retrieves the metadata of a registered verb by IRI. The returned
// VerbInfo is a copy; mutating it does not affect the registry. This
// function is thread-safe and can be called concurrently.
func Lookup(id string) (*VerbInfo, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	info, exists := verbRegistry[id]
	if !exists {
		return nil, false
	}

	infoCopy := info
	infoCopy.Display = make(map[string]string, len(info.Display))
	for tag, text := range info.Display {
		infoCopy.Display[tag] = text
	}
	return &infoCopy, true
}

// List returns the IRIs of all registered verbs. Useful for debugging and
// introspection.
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	ids := make([]string, 0, len(verbRegistry))
	for id := range verbRegistry {
		ids = append(ids, id)
	}
	return ids
}

// Clear removes all registered verbs, including the ADL defaults. This is
// primarily useful for testing.
func Clear() {
	registryMu.Lock()
	defer registryMu.Unlock()
	verbRegistry = make(map[string]VerbInfo)
}

// Verb converts the registry entry into a statement.Verb. Display entries
// are emitted in language-tag order so the result is deterministic.
//
// A VerbInfo with no display entries cannot form a Verb and returns an
// invalid-argument error.
func (v *VerbInfo) Verb() (statement.Verb, error) {
	id, err := statement.NewIRI(v.ID)
	if err != nil {
		return statement.Verb{}, errors.Wrap(err, "VerbInfo", "Verb", "parse id")
	}

	tags := make([]string, 0, len(v.Display))
	for tag := range v.Display {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	entries := make([]statement.LanguageEntry, 0, len(tags))
	for _, tag := range tags {
		entries = append(entries, statement.LanguageEntry{Tag: tag, Display: v.Display[tag]})
	}

	display, err := statement.NewLanguageMap(entries...)
	if err != nil {
		return statement.Verb{}, errors.Wrap(err, "VerbInfo", "Verb", "build display")
	}

	return statement.NewVerb(id, display)
}
