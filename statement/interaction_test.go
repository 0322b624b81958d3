package statement

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seanpm2001/xapi/errors"
)

func TestInteractionType_String(t *testing.T) {
	tests := []struct {
		kind     InteractionType
		expected string
	}{
		{InteractionTrueFalse, "true-false"},
		{InteractionChoice, "choice"},
		{InteractionFillIn, "fill-in"},
		{InteractionLongFillIn, "long-fill-in"},
		{InteractionMatching, "matching"},
		{InteractionPerformance, "performance"},
		{InteractionSequencing, "sequencing"},
		{InteractionLikert, "likert"},
		{InteractionNumeric, "numeric"},
		{InteractionOther, "other"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			assert.Equal(t, test.expected, test.kind.String())
		})
	}
}

func TestInteractionType_IsValid(t *testing.T) {
	valid := []InteractionType{
		InteractionTrueFalse, InteractionChoice, InteractionFillIn,
		InteractionLongFillIn, InteractionMatching, InteractionPerformance,
		InteractionSequencing, InteractionLikert, InteractionNumeric,
		InteractionOther,
	}

	for _, kind := range valid {
		t.Run("Valid_"+kind.String(), func(t *testing.T) {
			assert.True(t, kind.IsValid())
		})
	}

	invalid := []InteractionType{
		"", "Likert", "LIKERT", "truefalse", "multiple-choice",
	}

	for _, kind := range invalid {
		t.Run("Invalid_"+string(kind), func(t *testing.T) {
			assert.False(t, kind.IsValid())
		})
	}
}

func TestInteractionType_JSONMarshal(t *testing.T) {
	data, err := json.Marshal(InteractionLikert)

	require.NoError(t, err)
	assert.Equal(t, `"likert"`, string(data))
}

func TestInteractionType_JSONUnmarshal(t *testing.T) {
	var kind InteractionType
	err := json.Unmarshal([]byte(`"long-fill-in"`), &kind)

	require.NoError(t, err)
	assert.Equal(t, InteractionLongFillIn, kind)
}

func TestNewInteractionComponent(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		ic, err := NewInteractionComponent("likert_3", mustSingleLanguage(t, "en-US", "Strongly agree"))

		require.NoError(t, err)
		assert.Equal(t, "likert_3", ic.ID())
		assert.Equal(t, 1, ic.Description().Len())
		assert.False(t, ic.IsZero())
	})

	t.Run("empty id rejected", func(t *testing.T) {
		_, err := NewInteractionComponent("", mustSingleLanguage(t, "en-US", "Strongly agree"))

		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrInvalidArgument)
		assert.Equal(t, "id", errors.Argument(err))
	})

	t.Run("zero description rejected", func(t *testing.T) {
		_, err := NewInteractionComponent("likert_3", LanguageMap{})

		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrNilArgument)
		assert.Equal(t, "description", errors.Argument(err))
	})
}

func TestInteractionComponent_MarshalJSON(t *testing.T) {
	ic := mustComponent(t, "likert_3", "en-US", "Strongly agree")

	data, err := ic.MarshalJSON()

	require.NoError(t, err)
	assert.Equal(t, `{"id":"likert_3","description":{"en-US":"Strongly agree"}}`, string(data))
}
