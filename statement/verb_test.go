package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seanpm2001/xapi/errors"
)

func TestNewVerb(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		v, err := NewVerb(
			mustIRI(t, "http://adlnet.gov/expapi/verbs/completed"),
			mustSingleLanguage(t, "en-US", "completed"),
		)

		require.NoError(t, err)
		assert.Equal(t, "http://adlnet.gov/expapi/verbs/completed", v.ID().String())
		assert.Equal(t, 1, v.Display().Len())
		assert.False(t, v.IsZero())
	})

	t.Run("zero id rejected", func(t *testing.T) {
		_, err := NewVerb(IRI{}, mustSingleLanguage(t, "en-US", "completed"))

		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrNilArgument)
		assert.Equal(t, "id", errors.Argument(err))
	})

	t.Run("zero display rejected", func(t *testing.T) {
		_, err := NewVerb(mustIRI(t, "http://adlnet.gov/expapi/verbs/completed"), LanguageMap{})

		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrNilArgument)
		assert.Equal(t, "display", errors.Argument(err))
	})
}

func TestVerb_MarshalJSON(t *testing.T) {
	v := mustVerb(t, "http://adlnet.gov/expapi/verbs/completed", "en-US", "completed")

	data, err := v.MarshalJSON()

	require.NoError(t, err)
	assert.Equal(t,
		`{"id":"http://adlnet.gov/expapi/verbs/completed","display":{"en-US":"completed"}}`,
		string(data))
}
