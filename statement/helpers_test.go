package statement

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Test fixtures shared across the package tests. Each helper fails the
// test immediately on construction errors so individual tests read as
// straight-line arrange/act/assert.

func mustIRI(t *testing.T, s string) IRI {
	t.Helper()
	iri, err := NewIRI(s)
	require.NoError(t, err)
	return iri
}

func mustLanguageMap(t *testing.T, entries ...LanguageEntry) LanguageMap {
	t.Helper()
	lm, err := NewLanguageMap(entries...)
	require.NoError(t, err)
	return lm
}

func mustSingleLanguage(t *testing.T, tag, display string) LanguageMap {
	t.Helper()
	lm, err := SingleLanguage(tag, display)
	require.NoError(t, err)
	return lm
}

func mustCharacterString(t *testing.T, s string) CharacterString {
	t.Helper()
	cs, err := NewCharacterString(s)
	require.NoError(t, err)
	return cs
}

func mustPattern(t *testing.T, values ...string) ResponsePattern {
	t.Helper()
	patterns := make([]CharacterString, len(values))
	for i, v := range values {
		patterns[i] = mustCharacterString(t, v)
	}
	rp, err := NewResponsePattern(patterns)
	require.NoError(t, err)
	return rp
}

func mustComponent(t *testing.T, id, tag, display string) InteractionComponent {
	t.Helper()
	ic, err := NewInteractionComponent(id, mustSingleLanguage(t, tag, display))
	require.NoError(t, err)
	return ic
}

func mustMailbox(t *testing.T, address string) Mailbox {
	t.Helper()
	m, err := NewMailbox(address)
	require.NoError(t, err)
	return m
}

func mustAgent(t *testing.T, ifi IFI, opts ...ActorOption) Agent {
	t.Helper()
	a, err := NewAgent(ifi, opts...)
	require.NoError(t, err)
	return a
}

func mustVerb(t *testing.T, id, tag, display string) Verb {
	t.Helper()
	v, err := NewVerb(mustIRI(t, id), mustSingleLanguage(t, tag, display))
	require.NoError(t, err)
	return v
}

func mustActivity(t *testing.T, id string, opts ...ActivityOption) Activity {
	t.Helper()
	a, err := NewActivity(mustIRI(t, id), opts...)
	require.NoError(t, err)
	return a
}

func mustExtensions(t *testing.T, entries ...ExtensionEntry) Extensions {
	t.Helper()
	ext, err := NewExtensions(entries...)
	require.NoError(t, err)
	return ext
}
