// Package optional provides a generic explicit-presence container.
//
// This package uses a dedicated Option type rather than pointers or sentinel
// values to represent "possibly absent" data. Absence is a first-class state:
// an absent Option carries no value at all, and a present Option always
// carries a constructed, validated value.
//
// Zero Value Semantics:
//   - The zero Option is absent; None[T]() and Option[T]{} are equivalent
//   - Get on an absent Option returns the zero value of T and false
//
// Usage Examples:
//
//	// Present value
//	scaled := optional.Some(0.95)
//
//	// Absent value
//	raw := optional.None[float64]()
//
//	// Checked access
//	if v, ok := scaled.Get(); ok {
//	    fmt.Println(v)
//	}
//
//	// Fallback access
//	v := raw.OrElse(0)
package optional

// Option holds a value of type T that may be absent. The zero value is
// absent.
type Option[T any] struct {
	value   T
	present bool
}

// Some returns an Option holding value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr converts a pointer into an Option. A nil pointer maps to absent;
// a non-nil pointer maps to a present copy of the pointee.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Get returns the held value and whether it is present. When absent, the
// returned value is the zero value of T.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsPresent reports whether the Option holds a value.
func (o Option[T]) IsPresent() bool {
	return o.present
}

// OrElse returns the held value when present, otherwise fallback.
func (o Option[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// Ptr returns a pointer to a copy of the held value, or nil when absent.
// The copy keeps the Option itself immutable: mutating the pointee never
// affects the Option.
func (o Option[T]) Ptr() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}
