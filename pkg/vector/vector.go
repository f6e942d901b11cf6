// Package vector adapts point, vector, rectangle and color types for tweening.
// Every type implements tween.Blender by blending each component on its own.
package vector

import (
	"fmt"

	"github.com/decker502/keyframe/pkg/tween"
)

// Vec2 is a 2D point or vector.
type Vec2 struct {
	X, Y float64
}

// Blend implements tween.Blender.
func (v Vec2) Blend(to Vec2, progress float64) Vec2 {
	return Vec2{
		X: tween.Lerp(v.X, to.X, progress),
		Y: tween.Lerp(v.Y, to.Y, progress),
	}
}

// Vec3 is a 3D point or vector.
type Vec3 struct {
	X, Y, Z float64
}

// Blend implements tween.Blender.
func (v Vec3) Blend(to Vec3, progress float64) Vec3 {
	return Vec3{
		X: tween.Lerp(v.X, to.X, progress),
		Y: tween.Lerp(v.Y, to.Y, progress),
		Z: tween.Lerp(v.Z, to.Z, progress),
	}
}

// Vec4 is a 4D vector, e.g. a homogeneous point or a raw RGBA quadruple.
type Vec4 struct {
	X, Y, Z, W float64
}

// Blend implements tween.Blender.
func (v Vec4) Blend(to Vec4, progress float64) Vec4 {
	return Vec4{
		X: tween.Lerp(v.X, to.X, progress),
		Y: tween.Lerp(v.Y, to.Y, progress),
		Z: tween.Lerp(v.Z, to.Z, progress),
		W: tween.Lerp(v.W, to.W, progress),
	}
}

// Rect is an axis-aligned rectangle given by two corners.
type Rect struct {
	Min, Max Vec2
}

// Blend implements tween.Blender.
func (r Rect) Blend(to Rect, progress float64) Rect {
	return Rect{
		Min: r.Min.Blend(to.Min, progress),
		Max: r.Max.Blend(to.Max, progress),
	}
}

// Components returns the coordinates in order.
func (v Vec2) Components() []float64 { return []float64{v.X, v.Y} }

// Components returns the coordinates in order.
func (v Vec3) Components() []float64 { return []float64{v.X, v.Y, v.Z} }

// Components returns the coordinates in order.
func (v Vec4) Components() []float64 { return []float64{v.X, v.Y, v.Z, v.W} }

// Vec2From builds a Vec2 from exactly two components.
func Vec2From(c []float64) (Vec2, error) {
	if len(c) != 2 {
		return Vec2{}, componentError(2, len(c))
	}
	return Vec2{c[0], c[1]}, nil
}

// Vec3From builds a Vec3 from exactly three components.
func Vec3From(c []float64) (Vec3, error) {
	if len(c) != 3 {
		return Vec3{}, componentError(3, len(c))
	}
	return Vec3{c[0], c[1], c[2]}, nil
}

// Vec4From builds a Vec4 from exactly four components.
func Vec4From(c []float64) (Vec4, error) {
	if len(c) != 4 {
		return Vec4{}, componentError(4, len(c))
	}
	return Vec4{c[0], c[1], c[2], c[3]}, nil
}

func componentError(want, got int) error {
	return fmt.Errorf("expected %d components, got %d", want, got)
}
