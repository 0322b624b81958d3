package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seanpm2001/xapi/errors"
)

func TestNewIRI(t *testing.T) {
	valid := []string{
		"http://adlnet.gov/expapi/verbs/completed",
		"https://example.com/activities/golf-quiz",
		"urn:uuid:1f3cd91a-ad44-41b2-9a0b-7a5a49e5e1f2",
		"tag:example.com,2026:statements/7",
	}

	for _, s := range valid {
		t.Run("valid "+s, func(t *testing.T) {
			iri, err := NewIRI(s)

			require.NoError(t, err)
			assert.Equal(t, s, iri.String())
			assert.False(t, iri.IsZero())
		})
	}

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"relative path", "expapi/verbs/completed"},
		{"missing scheme", "//example.com/verbs/completed"},
		{"unparseable", "http://exa mple.com/\x7f"},
	}

	for _, test := range tests {
		t.Run(test.name+" rejected", func(t *testing.T) {
			_, err := NewIRI(test.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrInvalidArgument)
			assert.Equal(t, "value", errors.Argument(err))
		})
	}
}

func TestIRI_Equal(t *testing.T) {
	a := mustIRI(t, "http://adlnet.gov/expapi/verbs/completed")
	b := mustIRI(t, "http://adlnet.gov/expapi/verbs/completed")
	c := mustIRI(t, "http://adlnet.gov/expapi/verbs/answered")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	// No normalization: case variants stay distinct.
	upper := mustIRI(t, "HTTP://adlnet.gov/expapi/verbs/completed")
	assert.False(t, a.Equal(upper))
}

func TestIRI_MarshalJSON(t *testing.T) {
	iri := mustIRI(t, "https://example.com/activities/golf-quiz")

	data, err := iri.MarshalJSON()

	require.NoError(t, err)
	assert.Equal(t, `"https://example.com/activities/golf-quiz"`, string(data))
}
