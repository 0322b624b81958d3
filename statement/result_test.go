package statement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seanpm2001/xapi/errors"
)

func TestNewScore(t *testing.T) {
	t.Run("scaled only", func(t *testing.T) {
		s, err := NewScore(0.95)

		require.NoError(t, err)
		assert.Equal(t, 0.95, s.Scaled())
		assert.False(t, s.Raw().IsPresent())
		assert.False(t, s.Min().IsPresent())
		assert.False(t, s.Max().IsPresent())
	})

	t.Run("boundaries are inclusive", func(t *testing.T) {
		for _, scaled := range []float64{-1, 0, 1} {
			_, err := NewScore(scaled)
			assert.NoError(t, err, "scaled %v", scaled)
		}
	})

	t.Run("out of range rejected", func(t *testing.T) {
		for _, scaled := range []float64{-1.01, 1.01, 2} {
			_, err := NewScore(scaled)

			require.Error(t, err, "scaled %v", scaled)
			assert.ErrorIs(t, err, errors.ErrInvalidArgument)
			assert.Equal(t, "scaled", errors.Argument(err))
		}
	})

	t.Run("partial trio is constructible", func(t *testing.T) {
		s, err := NewScore(0.5, WithRawScore(50))

		require.NoError(t, err)
		raw, ok := s.Raw().Get()
		assert.True(t, ok)
		assert.Equal(t, 50.0, raw)
		assert.False(t, s.Min().IsPresent())
	})

	t.Run("min above max rejected", func(t *testing.T) {
		_, err := NewScore(0.5, WithMinScore(100), WithMaxScore(0))

		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrInvalidArgument)
		assert.Equal(t, "min", errors.Argument(err))
	})

	t.Run("raw outside bounds rejected", func(t *testing.T) {
		_, err := NewScore(0.5, WithRawScore(-5), WithMinScore(0))
		assert.ErrorIs(t, err, errors.ErrInvalidArgument)

		_, err = NewScore(0.5, WithRawScore(120), WithMaxScore(100))
		assert.ErrorIs(t, err, errors.ErrInvalidArgument)
	})
}

func TestScore_MarshalJSON(t *testing.T) {
	t.Run("scaled only", func(t *testing.T) {
		s, err := NewScore(0.95)
		require.NoError(t, err)

		data, err := s.MarshalJSON()

		require.NoError(t, err)
		assert.Equal(t, `{"scaled":0.95}`, string(data))
	})

	t.Run("full trio emits all four", func(t *testing.T) {
		s, err := NewScore(0.95, WithRawScore(95), WithMinScore(0), WithMaxScore(100))
		require.NoError(t, err)

		data, err := s.MarshalJSON()

		require.NoError(t, err)
		assert.Equal(t, `{"scaled":0.95,"raw":95,"min":0,"max":100}`, string(data))
	})

	t.Run("partial trio withholds raw figures", func(t *testing.T) {
		tests := []struct {
			name string
			opts []ScoreOption
		}{
			{"raw only", []ScoreOption{WithRawScore(95)}},
			{"raw and min", []ScoreOption{WithRawScore(95), WithMinScore(0)}},
			{"min and max", []ScoreOption{WithMinScore(0), WithMaxScore(100)}},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				s, err := NewScore(0.95, test.opts...)
				require.NoError(t, err)

				data, err := s.MarshalJSON()

				require.NoError(t, err)
				assert.Equal(t, `{"scaled":0.95}`, string(data))
			})
		}
	})
}

func TestNewResult(t *testing.T) {
	t.Run("single field suffices", func(t *testing.T) {
		r, err := NewResult(WithSuccess(true))

		require.NoError(t, err)
		success, ok := r.Success().Get()
		assert.True(t, ok)
		assert.True(t, success)
		assert.False(t, r.IsZero())
	})

	t.Run("explicit false is present", func(t *testing.T) {
		r, err := NewResult(WithSuccess(false), WithCompletion(false))

		require.NoError(t, err)
		success, ok := r.Success().Get()
		assert.True(t, ok)
		assert.False(t, success)
		completion, ok := r.Completion().Get()
		assert.True(t, ok)
		assert.False(t, completion)
	})

	t.Run("no fields rejected", func(t *testing.T) {
		_, err := NewResult()

		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrInvalidArgument)
		assert.Equal(t, "opts", errors.Argument(err))
	})

	t.Run("empty response rejected", func(t *testing.T) {
		_, err := NewResult(WithResponse(""))

		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrInvalidArgument)
		assert.Equal(t, "response", errors.Argument(err))
	})

	t.Run("negative duration rejected", func(t *testing.T) {
		_, err := NewResult(WithDuration(-time.Second))

		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrInvalidArgument)
		assert.Equal(t, "duration", errors.Argument(err))
	})

	t.Run("empty extensions rejected", func(t *testing.T) {
		_, err := NewResult(WithResultExtensions(Extensions{}))

		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrInvalidArgument)
		assert.Equal(t, "extensions", errors.Argument(err))
	})
}

func TestResult_MarshalJSON(t *testing.T) {
	t.Run("sparse single field", func(t *testing.T) {
		r, err := NewResult(WithSuccess(true))
		require.NoError(t, err)

		data, err := r.MarshalJSON()

		require.NoError(t, err)
		assert.Equal(t, `{"success":true}`, string(data))
	})

	t.Run("duration renders ISO-8601", func(t *testing.T) {
		r, err := NewResult(WithDuration(90 * time.Second))
		require.NoError(t, err)

		data, err := r.MarshalJSON()

		require.NoError(t, err)
		assert.Equal(t, `{"duration":"PT1M30S"}`, string(data))
	})

	t.Run("fully populated in field order", func(t *testing.T) {
		score, err := NewScore(0.95)
		require.NoError(t, err)
		ext := mustExtensions(t,
			ExtensionEntry{Key: mustIRI(t, "https://example.com/ext/attempts"), Value: "2"},
		)

		r, err := NewResult(
			WithScore(score),
			WithSuccess(true),
			WithCompletion(true),
			WithResponse("likert_3"),
			WithDuration(90*time.Second),
			WithResultExtensions(ext),
		)
		require.NoError(t, err)

		data, err := r.MarshalJSON()

		require.NoError(t, err)
		assert.Equal(t,
			`{"score":{"scaled":0.95},"success":true,"completion":true,`+
				`"response":"likert_3","duration":"PT1M30S",`+
				`"extensions":{"https://example.com/ext/attempts":"2"}}`,
			string(data))
	})
}
