// Package keyframe provides keyframes and animation sequences: ordered
// timelines of keyframed values that produce the interpolated value at a
// movable playback time, much like CSS @keyframes.
//
// Time is plain numeric input. A Sequence never reads a clock; callers feed it
// deltas (AdvanceBy) or absolute positions (AdvanceTo).
package keyframe

import (
	"github.com/decker502/keyframe/pkg/easing"
)

// Keyframe is an immutable (value, time, easing) anchor on a timeline.
//
// The easing governs the segment that ends at this keyframe, i.e. the
// interpolation from the previous keyframe up to this one. The easing of the
// first keyframe in a sequence is never used.
type Keyframe[T any] struct {
	value  T
	time   float64
	easing easing.Function
}

// New creates a keyframe. A nil easing means easing.Linear.
func New[T any](value T, time float64, fn easing.Function) Keyframe[T] {
	if fn == nil {
		fn = easing.Linear
	}
	return Keyframe[T]{value: value, time: time, easing: fn}
}

// At creates a keyframe with linear easing.
func At[T any](value T, time float64) Keyframe[T] {
	return New(value, time, nil)
}

// Value returns the keyframe's value.
func (k Keyframe[T]) Value() T { return k.value }

// Time returns the keyframe's position on the timeline.
func (k Keyframe[T]) Time() float64 { return k.time }

// Easing returns the curve used to reach this keyframe.
func (k Keyframe[T]) Easing() easing.Function {
	if k.easing == nil {
		return easing.Linear
	}
	return k.easing
}
