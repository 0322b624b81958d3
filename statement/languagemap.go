package statement

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/seanpm2001/xapi/errors"
)

// LanguageEntry pairs an RFC 5646 language tag with display text in that
// language. It is the construction unit for LanguageMap.
type LanguageEntry struct {
	Tag     string
	Display string
}

// LanguageMap is an immutable mapping of language tags to display text.
// Entries keep their construction order: serialization emits keys in the
// order they were supplied, not in Go's randomized map order.
//
// The zero value is empty and invalid wherever a LanguageMap is required;
// construct through NewLanguageMap or SingleLanguage.
type LanguageMap struct {
	tags    []string
	entries map[string]string
}

// NewLanguageMap creates a LanguageMap from the given entries. At least one
// entry is required, every tag and display must be non-empty, and tags must
// be unique. Violations are rejected rather than silently merged.
func NewLanguageMap(entries ...LanguageEntry) (LanguageMap, error) {
	if len(entries) == 0 {
		return LanguageMap{}, errors.InvalidArgument("LanguageMap", "entries", "must contain at least one entry")
	}

	tags := make([]string, 0, len(entries))
	m := make(map[string]string, len(entries))
	for i, entry := range entries {
		if entry.Tag == "" {
			return LanguageMap{}, errors.InvalidArgument("LanguageMap", "entries",
				fmt.Sprintf("entry %d has an empty language tag", i))
		}
		if entry.Display == "" {
			return LanguageMap{}, errors.InvalidArgument("LanguageMap", "entries",
				fmt.Sprintf("entry %d (%s) has empty display text", i, entry.Tag))
		}
		if _, exists := m[entry.Tag]; exists {
			return LanguageMap{}, errors.InvalidArgument("LanguageMap", "entries",
				fmt.Sprintf("duplicate language tag %q", entry.Tag))
		}
		tags = append(tags, entry.Tag)
		m[entry.Tag] = entry.Display
	}

	return LanguageMap{tags: tags, entries: m}, nil
}

// SingleLanguage creates a LanguageMap holding one entry. It is shorthand
// for the common single-locale case and delegates to NewLanguageMap.
func SingleLanguage(tag, display string) (LanguageMap, error) {
	return NewLanguageMap(LanguageEntry{Tag: tag, Display: display})
}

// Len returns the number of entries.
func (lm LanguageMap) Len() int {
	return len(lm.tags)
}

// Get returns the display text for tag and whether the tag is present.
func (lm LanguageMap) Get(tag string) (string, bool) {
	display, ok := lm.entries[tag]
	return display, ok
}

// Tags returns the language tags in construction order. The returned slice
// is a copy; mutating it does not affect the map.
func (lm LanguageMap) Tags() []string {
	tags := make([]string, len(lm.tags))
	copy(tags, lm.tags)
	return tags
}

// IsZero reports whether lm is the empty zero value.
func (lm LanguageMap) IsZero() bool {
	return len(lm.tags) == 0
}

// MarshalJSON implements json.Marshaler, emitting entries as a JSON object
// with keys in construction order.
func (lm LanguageMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, tag := range lm.tags {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(tag)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(lm.entries[tag])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
