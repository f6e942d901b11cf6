// Package tween blends values of arbitrary types between two endpoints.
//
// A value participates in tweening either by being a plain number (see [Number])
// or by implementing [Blender]. Anything else can still be tweened by passing a
// [BlendFunc] explicitly.
package tween

import (
	"math"

	"github.com/decker502/keyframe/pkg/easing"
)

// Number is the set of scalar types with a canonical linear blend.
type Number interface {
	~float32 | ~float64 |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Blender is implemented by vector-like values that know how to blend
// themselves towards another value of the same type.
type Blender[T any] interface {
	Blend(to T, progress float64) T
}

// BlendFunc blends from towards to. progress 0 must yield from and 1 must yield to.
type BlendFunc[T any] func(from, to T, progress float64) T

// Lerp linearly interpolates between from and to.
//
// Written as a weighted sum so that progress 0 and 1 return the endpoints
// exactly. Progress outside [0, 1] extrapolates. Integer results are rounded
// to the nearest value; unsigned results are clamped into the type's range.
func Lerp[T Number](from, to T, progress float64) T {
	v := float64(from)*(1-progress) + float64(to)*progress
	if !isInteger[T]() {
		return T(v)
	}
	v = math.Round(v)
	if limit, ok := unsignedMax[T](); ok {
		switch {
		case v <= 0:
			return 0
		case v >= float64(limit):
			return limit
		}
	}
	return T(v)
}

// Blend blends two Blender values.
func Blend[T Blender[T]](from, to T, progress float64) T {
	return from.Blend(to, progress)
}

// LerpFunc returns Lerp as a BlendFunc for T.
func LerpFunc[T Number]() BlendFunc[T] {
	return Lerp[T]
}

// BlenderFunc returns Blend as a BlendFunc for T.
func BlenderFunc[T Blender[T]]() BlendFunc[T] {
	return Blend[T]
}

// Ease tweens between two numbers along fn.
//
//	x := tween.Ease(easing.OutCubic, 100.0, 50.0, 0.5) // 56.25
func Ease[T Number](fn easing.Function, from, to T, x float64) T {
	return Lerp(from, to, eval(fn, x))
}

// EaseFunc tweens between two values of any type using blend.
func EaseFunc[T any](blend BlendFunc[T], fn easing.Function, from, to T, x float64) T {
	return blend(from, to, eval(fn, x))
}

// EaseScaled is Ease with the progress expressed as time out of maxTime.
// A non-positive maxTime counts as already finished.
func EaseScaled[T Number](fn easing.Function, from, to T, time, maxTime float64) T {
	if maxTime <= 0 {
		return Ease(fn, from, to, 1)
	}
	return Ease(fn, from, to, time/maxTime)
}

func eval(fn easing.Function, x float64) float64 {
	if fn == nil {
		return x
	}
	return fn.Eval(x)
}

func isInteger[T Number]() bool {
	var one T = 1
	return one/2 == 0
}

// unsignedMax returns the largest value of T when T is unsigned.
func unsignedMax[T Number]() (T, bool) {
	var zero, one T = 0, 1
	limit := zero - one
	return limit, limit > zero
}
