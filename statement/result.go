package statement

import (
	"time"

	json "github.com/goccy/go-json"

	"github.com/seanpm2001/xapi/errors"
	"github.com/seanpm2001/xapi/pkg/duration"
	"github.com/seanpm2001/xapi/pkg/optional"
)

// Score is a measured outcome. The scaled value is required and normalized
// to [-1, 1]; raw, min, and max are independently optional at construction
// but serialize all-or-nothing: unless all three are present, only the
// scaled value appears in JSON. A partially supplied trio is a legal score
// that simply withholds the raw figures from the wire.
type Score struct {
	scaled float64
	raw    optional.Option[float64]
	min    optional.Option[float64]
	max    optional.Option[float64]
}

// ScoreOption is a functional option for Score construction.
type ScoreOption func(*Score)

// WithRawScore sets the unnormalized score value.
func WithRawScore(raw float64) ScoreOption {
	return func(s *Score) {
		s.raw = optional.Some(raw)
	}
}

// WithMinScore sets the lowest possible raw value.
func WithMinScore(min float64) ScoreOption {
	return func(s *Score) {
		s.min = optional.Some(min)
	}
}

// WithMaxScore sets the highest possible raw value.
func WithMaxScore(max float64) ScoreOption {
	return func(s *Score) {
		s.max = optional.Some(max)
	}
}

// NewScore creates a Score. The scaled value must lie within [-1, 1], and
// whichever of raw, min, and max are supplied must be mutually consistent:
// min must not exceed max, and raw must lie within whichever bounds are
// present.
func NewScore(scaled float64, opts ...ScoreOption) (Score, error) {
	if scaled < -1 || scaled > 1 {
		return Score{}, errors.InvalidArgument("Score", "scaled", "must be within [-1, 1]")
	}

	s := Score{scaled: scaled}
	for _, opt := range opts {
		opt(&s)
	}

	minVal, hasMin := s.min.Get()
	maxVal, hasMax := s.max.Get()
	rawVal, hasRaw := s.raw.Get()
	if hasMin && hasMax && minVal > maxVal {
		return Score{}, errors.InvalidArgument("Score", "min", "must not exceed max")
	}
	if hasRaw && hasMin && rawVal < minVal {
		return Score{}, errors.InvalidArgument("Score", "raw", "must not be below min")
	}
	if hasRaw && hasMax && rawVal > maxVal {
		return Score{}, errors.InvalidArgument("Score", "raw", "must not exceed max")
	}

	return s, nil
}

// Scaled returns the normalized score value.
func (s Score) Scaled() float64 {
	return s.scaled
}

// Raw returns the unnormalized value when one was provided.
func (s Score) Raw() optional.Option[float64] {
	return s.raw
}

// Min returns the lower bound when one was provided.
func (s Score) Min() optional.Option[float64] {
	return s.min
}

// Max returns the upper bound when one was provided.
func (s Score) Max() optional.Option[float64] {
	return s.max
}

// scoreWire is the JSON shape of a Score.
type scoreWire struct {
	Scaled float64  `json:"scaled"`
	Raw    *float64 `json:"raw,omitempty"`
	Min    *float64 `json:"min,omitempty"`
	Max    *float64 `json:"max,omitempty"`
}

// MarshalJSON implements json.Marshaler. The raw trio is all-or-nothing:
// a score missing any of raw, min, or max emits only the scaled value.
func (s Score) MarshalJSON() ([]byte, error) {
	wire := scoreWire{Scaled: s.scaled}
	if s.raw.IsPresent() && s.min.IsPresent() && s.max.IsPresent() {
		wire.Raw = s.raw.Ptr()
		wire.Min = s.min.Ptr()
		wire.Max = s.max.Ptr()
	}
	return json.Marshal(wire)
}

// Result records the measured outcome of a statement. Every field is
// optional, but a Result with no fields at all is not constructible:
// callers with nothing to record omit the result instead of attaching an
// empty one.
//
// Construction using Functional Options:
//
//	result, err := statement.NewResult(
//	    statement.WithScore(score),
//	    statement.WithSuccess(true),
//	    statement.WithDuration(90*time.Second))
type Result struct {
	score      optional.Option[Score]
	success    optional.Option[bool]
	completion optional.Option[bool]
	response   optional.Option[string]
	duration   optional.Option[time.Duration]
	extensions optional.Option[Extensions]
}

// ResultOption is a functional option for Result construction.
type ResultOption func(*Result)

// WithScore attaches a score to the result.
func WithScore(score Score) ResultOption {
	return func(r *Result) {
		r.score = optional.Some(score)
	}
}

// WithSuccess records whether the attempt succeeded. Absence of the option
// means "unknown", which is distinct from an explicit false.
func WithSuccess(success bool) ResultOption {
	return func(r *Result) {
		r.success = optional.Some(success)
	}
}

// WithCompletion records whether the activity was completed. Absence means
// "unknown", distinct from an explicit false.
func WithCompletion(completion bool) ResultOption {
	return func(r *Result) {
		r.completion = optional.Some(completion)
	}
}

// WithResponse records the learner's literal response text.
func WithResponse(response string) ResultOption {
	return func(r *Result) {
		r.response = optional.Some(response)
	}
}

// WithDuration records the time the attempt took.
func WithDuration(d time.Duration) ResultOption {
	return func(r *Result) {
		r.duration = optional.Some(d)
	}
}

// WithResultExtensions attaches extensions to the result.
func WithResultExtensions(ext Extensions) ResultOption {
	return func(r *Result) {
		r.extensions = optional.Some(ext)
	}
}

// NewResult creates a Result. At least one field must be supplied; a
// provided response must be non-empty, a provided duration must not be
// negative, and provided extensions must be a constructed value.
func NewResult(opts ...ResultOption) (Result, error) {
	var r Result
	for _, opt := range opts {
		opt(&r)
	}

	if r.IsZero() {
		return Result{}, errors.InvalidArgument("Result", "opts",
			"at least one field is required; omit the result instead of attaching an empty one")
	}
	if response, ok := r.response.Get(); ok && response == "" {
		return Result{}, errors.InvalidArgument("Result", "response", "must not be empty")
	}
	if d, ok := r.duration.Get(); ok && d < 0 {
		return Result{}, errors.InvalidArgument("Result", "duration", "must not be negative")
	}
	if ext, ok := r.extensions.Get(); ok && ext.IsZero() {
		return Result{}, errors.InvalidArgument("Result", "extensions",
			"must not be empty; omit the option instead")
	}

	return r, nil
}

// Score returns the score when one was recorded.
func (r Result) Score() optional.Option[Score] {
	return r.score
}

// Success returns the success flag when one was recorded.
func (r Result) Success() optional.Option[bool] {
	return r.success
}

// Completion returns the completion flag when one was recorded.
func (r Result) Completion() optional.Option[bool] {
	return r.completion
}

// Response returns the response text when one was recorded.
func (r Result) Response() optional.Option[string] {
	return r.response
}

// Duration returns the attempt duration when one was recorded.
func (r Result) Duration() optional.Option[time.Duration] {
	return r.duration
}

// Extensions returns the attached extensions when any were recorded.
func (r Result) Extensions() optional.Option[Extensions] {
	return r.extensions
}

// IsZero reports whether r carries no fields at all.
func (r Result) IsZero() bool {
	return !r.score.IsPresent() && !r.success.IsPresent() && !r.completion.IsPresent() &&
		!r.response.IsPresent() && !r.duration.IsPresent() && !r.extensions.IsPresent()
}

// resultWire is the JSON shape of a Result. The duration field carries the
// ISO-8601 rendering, not Go's native format.
type resultWire struct {
	Score      *Score      `json:"score,omitempty"`
	Success    *bool       `json:"success,omitempty"`
	Completion *bool       `json:"completion,omitempty"`
	Response   *string     `json:"response,omitempty"`
	Duration   *string     `json:"duration,omitempty"`
	Extensions *Extensions `json:"extensions,omitempty"`
}

// MarshalJSON implements json.Marshaler. Absent fields contribute no keys.
func (r Result) MarshalJSON() ([]byte, error) {
	wire := resultWire{
		Score:      r.score.Ptr(),
		Success:    r.success.Ptr(),
		Completion: r.completion.Ptr(),
		Response:   r.response.Ptr(),
		Extensions: r.extensions.Ptr(),
	}
	if d, ok := r.duration.Get(); ok {
		formatted := duration.Format(d)
		wire.Duration = &formatted
	}
	return json.Marshal(wire)
}
