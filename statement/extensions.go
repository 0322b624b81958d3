package statement

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/seanpm2001/xapi/errors"
)

// ExtensionEntry pairs an IRI key with an opaque value. It is the
// construction unit for Extensions.
type ExtensionEntry struct {
	Key   IRI
	Value string
}

// Extensions is an immutable mapping of IRI keys to opaque values, attached
// to definitions, results, and contexts for vendor-specific data. Entries
// keep their construction order in serialized output.
//
// An empty Extensions value is never constructible: callers that have
// nothing to attach omit the extensions option instead of passing an empty
// collection.
type Extensions struct {
	keys    []string
	entries map[string]string
}

// NewExtensions creates an Extensions collection from the given entries.
// At least one entry is required, every key must be a constructed IRI,
// every value must be non-empty, and keys must be unique.
func NewExtensions(entries ...ExtensionEntry) (Extensions, error) {
	if len(entries) == 0 {
		return Extensions{}, errors.InvalidArgument("Extensions", "entries",
			"must contain at least one entry; omit extensions instead of passing an empty collection")
	}

	keys := make([]string, 0, len(entries))
	m := make(map[string]string, len(entries))
	for i, entry := range entries {
		if entry.Key.IsZero() {
			return Extensions{}, errors.InvalidArgument("Extensions", "entries",
				fmt.Sprintf("entry %d has a zero IRI key", i))
		}
		if entry.Value == "" {
			return Extensions{}, errors.InvalidArgument("Extensions", "entries",
				fmt.Sprintf("entry %d (%s) has an empty value", i, entry.Key.String()))
		}
		if _, exists := m[entry.Key.String()]; exists {
			return Extensions{}, errors.InvalidArgument("Extensions", "entries",
				fmt.Sprintf("duplicate extension key %q", entry.Key.String()))
		}
		keys = append(keys, entry.Key.String())
		m[entry.Key.String()] = entry.Value
	}

	return Extensions{keys: keys, entries: m}, nil
}

// Len returns the number of entries.
func (e Extensions) Len() int {
	return len(e.keys)
}

// Get returns the value stored under key and whether the key is present.
func (e Extensions) Get(key IRI) (string, bool) {
	value, ok := e.entries[key.String()]
	return value, ok
}

// Keys returns the extension keys as strings in construction order. The
// returned slice is a copy.
func (e Extensions) Keys() []string {
	keys := make([]string, len(e.keys))
	copy(keys, e.keys)
	return keys
}

// IsZero reports whether e is the empty zero value.
func (e Extensions) IsZero() bool {
	return len(e.keys) == 0
}

// MarshalJSON implements json.Marshaler, emitting entries as a JSON object
// with keys in construction order.
func (e Extensions) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range e.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(e.entries[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
