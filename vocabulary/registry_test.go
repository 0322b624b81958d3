package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seanpm2001/xapi/errors"
	"github.com/seanpm2001/xapi/statement"
)

func TestRegister_AndLookup(t *testing.T) {
	const id = "https://example.com/verbs/reviewed"
	Register(id,
		WithDisplay("en-US", "reviewed"),
		WithDisplay("de-DE", "überprüft"),
		WithDescription("The actor reviewed previously seen material."))

	info, ok := Lookup(id)

	require.True(t, ok)
	assert.Equal(t, id, info.ID)
	assert.Equal(t, "reviewed", info.Display["en-US"])
	assert.Equal(t, "überprüft", info.Display["de-DE"])
	assert.Equal(t, "The actor reviewed previously seen material.", info.Description)
}

func TestLookup_UnknownVerb(t *testing.T) {
	info, ok := Lookup("https://example.com/verbs/never-registered")

	assert.False(t, ok)
	assert.Nil(t, info)
}

func TestLookup_ReturnsCopy(t *testing.T) {
	info, ok := Lookup(VerbCompleted)
	require.True(t, ok)

	info.Display["en-US"] = "tampered"
	info.Description = "tampered"

	fresh, ok := Lookup(VerbCompleted)
	require.True(t, ok)
	assert.Equal(t, "completed", fresh.Display["en-US"])
	assert.NotEqual(t, "tampered", fresh.Description)
}

func TestRegister_Overwrites(t *testing.T) {
	const id = "https://example.com/verbs/bookmarked"
	Register(id, WithDisplay("en-US", "bookmarked"))
	Register(id, WithDisplay("en-GB", "bookmarked"))

	info, ok := Lookup(id)

	require.True(t, ok)
	assert.NotContains(t, info.Display, "en-US")
	assert.Equal(t, "bookmarked", info.Display["en-GB"])
}

func TestList(t *testing.T) {
	const id = "https://example.com/verbs/listed"
	Register(id, WithDisplay("en-US", "listed"))

	ids := List()

	assert.Contains(t, ids, id)
	assert.Contains(t, ids, VerbCompleted)
}

func TestClear(t *testing.T) {
	defer registerDefaults()

	Clear()

	_, ok := Lookup(VerbCompleted)
	assert.False(t, ok)
	assert.Empty(t, List())
}

func TestDefaults(t *testing.T) {
	tests := []struct {
		id      string
		display string
	}{
		{VerbCompleted, "completed"},
		{VerbAnswered, "answered"},
		{VerbAttempted, "attempted"},
		{VerbExperienced, "experienced"},
		{VerbPassed, "passed"},
		{VerbFailed, "failed"},
		{VerbInitialized, "initialized"},
		{VerbTerminated, "terminated"},
		{VerbResponded, "responded"},
		{VerbProgressed, "progressed"},
		{VerbLaunched, "launched"},
		{VerbVoided, "voided"},
	}

	for _, tt := range tests {
		t.Run(tt.display, func(t *testing.T) {
			info, ok := Lookup(tt.id)

			require.True(t, ok)
			assert.Equal(t, tt.display, info.Display["en-US"])
			assert.NotEmpty(t, info.Description)
		})
	}
}

func TestVerbInfo_Verb(t *testing.T) {
	t.Run("bridges a default verb", func(t *testing.T) {
		info, ok := Lookup(VerbCompleted)
		require.True(t, ok)

		verb, err := info.Verb()
		require.NoError(t, err)

		out, err := statement.Serialize(verb)
		require.NoError(t, err)
		assert.Equal(t,
			`{"id":"http://adlnet.gov/expapi/verbs/completed","display":{"en-US":"completed"}}`,
			out)
	})

	t.Run("display entries in tag order", func(t *testing.T) {
		const id = "https://example.com/verbs/rated"
		Register(id,
			WithDisplay("fr-FR", "noté"),
			WithDisplay("de-DE", "bewertet"),
			WithDisplay("en-US", "rated"))

		info, ok := Lookup(id)
		require.True(t, ok)

		verb, err := info.Verb()
		require.NoError(t, err)

		out, err := statement.Serialize(verb)
		require.NoError(t, err)
		assert.Equal(t,
			`{"id":"https://example.com/verbs/rated","display":{"de-DE":"bewertet","en-US":"rated","fr-FR":"noté"}}`,
			out)
	})

	t.Run("relative id rejected", func(t *testing.T) {
		info := &VerbInfo{ID: "verbs/completed", Display: map[string]string{"en-US": "completed"}}

		_, err := info.Verb()

		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrInvalidArgument)
	})

	t.Run("missing display rejected", func(t *testing.T) {
		info := &VerbInfo{ID: "https://example.com/verbs/silent"}

		_, err := info.Verb()

		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrInvalidArgument)
	})
}
