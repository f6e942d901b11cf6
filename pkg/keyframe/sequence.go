package keyframe

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"
	"sort"

	"github.com/decker502/keyframe/pkg/easing"
	"github.com/decker502/keyframe/pkg/tween"
)

var (
	// ErrEmptySequence is returned by value and duration queries on a
	// sequence without keyframes.
	ErrEmptySequence = errors.New("animation sequence is empty")

	// ErrInvalidTime is returned for keyframe times that are negative,
	// NaN or infinite.
	ErrInvalidTime = errors.New("invalid keyframe time")
)

// Sequence is an ordered timeline of keyframes with a current playback time.
//
// Keyframe times are kept non-decreasing and the current time is kept inside
// [first keyframe time, last keyframe time]. Keyframes sharing a time form a
// zero-length segment; the one inserted last wins at that instant.
//
// A Sequence is not safe for concurrent use.
type Sequence[T any] struct {
	blend  tween.BlendFunc[T]
	frames []Keyframe[T]
	time   float64
}

// NewSequence builds a sequence of numbers. Keyframes may be given in any
// order; equal times keep their argument order.
func NewSequence[T tween.Number](frames ...Keyframe[T]) (*Sequence[T], error) {
	return NewSequenceFunc(tween.LerpFunc[T](), frames...)
}

// NewBlendSequence builds a sequence of values implementing tween.Blender.
func NewBlendSequence[T tween.Blender[T]](frames ...Keyframe[T]) (*Sequence[T], error) {
	return NewSequenceFunc(tween.BlenderFunc[T](), frames...)
}

// NewSequenceFunc builds a sequence blending values with blend.
func NewSequenceFunc[T any](blend tween.BlendFunc[T], frames ...Keyframe[T]) (*Sequence[T], error) {
	for i, kf := range frames {
		if err := checkTime(kf.time); err != nil {
			return nil, fmt.Errorf("keyframe %d: %w", i, err)
		}
	}

	s := &Sequence[T]{
		blend:  blend,
		frames: slices.Clone(frames),
	}
	slices.SortStableFunc(s.frames, func(a, b Keyframe[T]) int {
		switch {
		case a.time < b.time:
			return -1
		case a.time > b.time:
			return 1
		}
		return 0
	})
	if len(s.frames) > 0 {
		s.time = s.frames[0].time
	}
	return s, nil
}

// Collect builds a sequence from a stream of keyframes.
func Collect[T any](blend tween.BlendFunc[T], frames iter.Seq[Keyframe[T]]) (*Sequence[T], error) {
	return NewSequenceFunc(blend, slices.Collect(frames)...)
}

// Insert adds a keyframe in time order. A keyframe whose time equals existing
// ones is placed after them.
func (s *Sequence[T]) Insert(kf Keyframe[T]) error {
	if err := checkTime(kf.time); err != nil {
		return err
	}

	i := s.upperBound(kf.time)
	s.frames = slices.Insert(s.frames, i, kf)
	if len(s.frames) == 1 {
		s.time = kf.time
	}
	s.time = s.clamp(s.time)
	return nil
}

// InsertMany inserts each keyframe in order, stopping at the first invalid one.
func (s *Sequence[T]) InsertMany(frames ...Keyframe[T]) error {
	for i, kf := range frames {
		if err := s.Insert(kf); err != nil {
			return fmt.Errorf("keyframe %d: %w", i, err)
		}
	}
	return nil
}

// Remove deletes every keyframe at exactly time t and reports how many were
// removed.
func (s *Sequence[T]) Remove(t float64) int {
	before := len(s.frames)
	s.frames = slices.DeleteFunc(s.frames, func(kf Keyframe[T]) bool {
		return kf.time == t
	})

	removed := before - len(s.frames)
	if len(s.frames) == 0 {
		s.time = 0
	} else if removed > 0 {
		s.time = s.clamp(s.time)
	}
	return removed
}

// AdvanceBy moves the playback time by delta, clamped to the timeline.
// It reports whether the sequence reached its end, or its start when delta
// is negative.
func (s *Sequence[T]) AdvanceBy(delta float64) bool {
	if len(s.frames) == 0 {
		return true
	}

	s.time = s.clamp(s.time + delta)
	if delta < 0 {
		return s.IsAtStart()
	}
	return s.IsFinished()
}

// AdvanceTo sets the playback time, clamped to the timeline, and reports
// whether the sequence is finished.
func (s *Sequence[T]) AdvanceTo(t float64) bool {
	if len(s.frames) == 0 {
		return true
	}

	s.time = s.clamp(t)
	return s.IsFinished()
}

// AdvanceAndWrap moves the playback time by delta, looping around the
// timeline instead of clamping. It reports whether the time wrapped.
// A NaN delta is ignored; an infinite one counts as a wrap and leaves the
// time where it is.
func (s *Sequence[T]) AdvanceAndWrap(delta float64) bool {
	if len(s.frames) == 0 || math.IsNaN(delta) {
		return false
	}

	first, last := s.bounds()
	d := last - first
	if d <= 0 {
		return false
	}

	if math.IsInf(delta, 0) {
		return true
	}

	offset := s.time - first + delta
	if offset >= 0 && offset <= d {
		s.time = first + offset
		return false
	}

	offset = math.Mod(offset, d)
	if offset < 0 {
		offset += d
	}
	s.time = s.clamp(first + offset)
	return true
}

// Reverse mirrors the timeline in place so that playing forward now shows the
// original animation backwards. The current time is mirrored as well.
func (s *Sequence[T]) Reverse() {
	n := len(s.frames)
	if n == 0 {
		return
	}

	first, last := s.bounds()
	reversed := make([]Keyframe[T], n)
	for i := range n {
		src := s.frames[n-1-i]
		fn := s.frames[0].Easing()
		if i > 0 {
			// The segment now ending here used to end at the frame after src.
			fn = mirror(s.frames[n-i].Easing())
		}
		reversed[i] = Keyframe[T]{
			value:  src.value,
			time:   first + last - src.time,
			easing: fn,
		}
	}

	s.frames = reversed
	s.time = s.clamp(first + last - s.time)
}

// Now returns the value at the current playback time.
func (s *Sequence[T]) Now() (T, error) {
	if len(s.frames) == 0 {
		var zero T
		return zero, ErrEmptySequence
	}

	lo, hi := s.bracket()
	a, b := s.frames[lo], s.frames[hi]
	if lo == hi {
		return a.value, nil
	}

	span := b.time - a.time
	if span <= 0 {
		return b.value, nil
	}
	p := (s.time - a.time) / span
	return s.blend(a.value, b.value, b.Easing().Eval(p)), nil
}

// Pair returns the keyframes bracketing the current time. A keyframe sitting
// exactly at the current time is the upper one; at the first keyframe both
// are the same keyframe.
func (s *Sequence[T]) Pair() (lower, upper Keyframe[T], err error) {
	if len(s.frames) == 0 {
		return lower, upper, ErrEmptySequence
	}

	lo, hi := s.bracket()
	return s.frames[lo], s.frames[hi], nil
}

// Duration returns the time between the first and the last keyframe.
func (s *Sequence[T]) Duration() (float64, error) {
	if len(s.frames) == 0 {
		return 0, ErrEmptySequence
	}

	first, last := s.bounds()
	return last - first, nil
}

// Time returns the current playback time.
func (s *Sequence[T]) Time() float64 {
	return s.time
}

// Progress returns how far playback is through the timeline, in [0, 1].
// A zero-length timeline counts as complete; an empty one as not started.
func (s *Sequence[T]) Progress() float64 {
	if len(s.frames) == 0 {
		return 0
	}

	first, last := s.bounds()
	if last <= first {
		return 1
	}
	return (s.time - first) / (last - first)
}

// IsFinished reports whether playback is at the last keyframe. An empty
// sequence has nothing to play and counts as finished.
func (s *Sequence[T]) IsFinished() bool {
	if len(s.frames) == 0 {
		return true
	}
	_, last := s.bounds()
	return s.time >= last
}

// IsAtStart reports whether playback is at the first keyframe.
func (s *Sequence[T]) IsAtStart() bool {
	if len(s.frames) == 0 {
		return true
	}
	first, _ := s.bounds()
	return s.time <= first
}

// Len returns the number of keyframes.
func (s *Sequence[T]) Len() int {
	return len(s.frames)
}

// Keyframes returns a copy of the keyframes in time order.
func (s *Sequence[T]) Keyframes() []Keyframe[T] {
	return slices.Clone(s.frames)
}

// HasKeyframeAt reports whether any keyframe sits exactly at t.
func (s *Sequence[T]) HasKeyframeAt(t float64) bool {
	i := sort.Search(len(s.frames), func(i int) bool { return s.frames[i].time >= t })
	return i < len(s.frames) && s.frames[i].time == t
}

// bracket locates the segment ending at the current time. upper is the first
// keyframe at or after the current time; when several share that time it is
// the last of them. lower is the keyframe before upper, or upper itself at the
// first keyframe.
func (s *Sequence[T]) bracket() (lo, hi int) {
	n := len(s.frames)
	i := s.upperBound(s.time)
	switch {
	case i > 0 && s.frames[i-1].time == s.time:
		hi = i - 1
	case i == n:
		hi = n - 1
	default:
		hi = i
	}
	if hi == 0 {
		return 0, 0
	}
	return hi - 1, hi
}

// upperBound returns the index of the first keyframe strictly after t.
func (s *Sequence[T]) upperBound(t float64) int {
	return sort.Search(len(s.frames), func(i int) bool { return s.frames[i].time > t })
}

func (s *Sequence[T]) bounds() (first, last float64) {
	return s.frames[0].time, s.frames[len(s.frames)-1].time
}

func (s *Sequence[T]) clamp(t float64) float64 {
	first, last := s.bounds()
	switch {
	case t < first || math.IsNaN(t):
		return first
	case t > last:
		return last
	}
	return t
}

func checkTime(t float64) error {
	if t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidTime, t)
	}
	return nil
}

// mirrored plays a curve backwards: y(x) = 1 - f(1 - x).
type mirrored struct {
	fn easing.Function
}

func (m mirrored) Eval(x float64) float64 {
	return 1 - m.fn.Eval(1-x)
}

func mirror(fn easing.Function) easing.Function {
	if m, ok := fn.(mirrored); ok {
		return m.fn
	}
	return mirrored{fn: fn}
}
