package easing

import (
	"math"
	"strconv"
)

const (
	newtonIterations    = 8
	newtonMinSlope      = 1e-6
	solveEpsilon        = 1e-6
	bisectionIterations = 40
)

// CSS timing function keywords.
var (
	Ease      = NewCubicBezier(0.25, 0.1, 0.25, 1)
	EaseIn    = NewCubicBezier(0.42, 0, 1, 1)
	EaseOut   = NewCubicBezier(0, 0, 0.58, 1)
	EaseInOut = NewCubicBezier(0.42, 0, 0.58, 1)
)

// CubicBezier is a user-defined easing curve equivalent to the CSS
// cubic-bezier() timing function. The curve runs from (0,0) to (1,1) with
// the two control points in between.
//
// The x coordinates of the control points must lie in [0, 1] for the curve to
// be a function of x. NewCubicBezier clamps them into that range; the y
// coordinates are kept as given and may overshoot.
type CubicBezier struct {
	x1, y1, x2, y2 float64

	// polynomial coefficients: B(t) = ((a*t + b)*t + c)*t
	ax, bx, cx float64
	ay, by, cy float64
}

// NewCubicBezier builds the curve for control points (x1,y1) and (x2,y2).
func NewCubicBezier(x1, y1, x2, y2 float64) *CubicBezier {
	x1 = clamp01(x1)
	x2 = clamp01(x2)

	c := &CubicBezier{x1: x1, y1: y1, x2: x2, y2: y2}
	c.cx = 3 * x1
	c.bx = 3*(x2-x1) - c.cx
	c.ax = 1 - c.cx - c.bx
	c.cy = 3 * y1
	c.by = 3*(y2-y1) - c.cy
	c.ay = 1 - c.cy - c.by
	return c
}

// ControlPoints returns the effective control points after clamping.
func (c *CubicBezier) ControlPoints() (x1, y1, x2, y2 float64) {
	return c.x1, c.y1, c.x2, c.y2
}

// Eval returns the curve's y for the given x.
//
// Inputs outside [0, 1] are extrapolated along the tangent at the nearest
// end of the curve, as CSS does.
func (c *CubicBezier) Eval(x float64) float64 {
	switch {
	case x == 0:
		return 0
	case x == 1:
		return 1
	case x < 0:
		return c.startSlope() * x
	case x > 1:
		return 1 + c.endSlope()*(x-1)
	}
	return c.sampleY(c.solveT(x))
}

// String formats the curve the way CSS writes it.
func (c *CubicBezier) String() string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return "cubic-bezier(" + f(c.x1) + ", " + f(c.y1) + ", " + f(c.x2) + ", " + f(c.y2) + ")"
}

func (c *CubicBezier) sampleX(t float64) float64 {
	return ((c.ax*t+c.bx)*t + c.cx) * t
}

func (c *CubicBezier) sampleY(t float64) float64 {
	return ((c.ay*t+c.by)*t + c.cy) * t
}

func (c *CubicBezier) slopeX(t float64) float64 {
	return (3*c.ax*t+2*c.bx)*t + c.cx
}

// solveT finds t with sampleX(t) == x for x in (0, 1).
//
// Newton-Raphson from t=x converges in a few steps for typical curves. When
// the tangent is flat or an iterate leaves [0, 1] it falls back to bisection,
// which always converges because x(t) is monotonic for clamped control points.
func (c *CubicBezier) solveT(x float64) float64 {
	t := x
	for i := 0; i < newtonIterations; i++ {
		diff := c.sampleX(t) - x
		if math.Abs(diff) < solveEpsilon {
			return t
		}
		slope := c.slopeX(t)
		if math.Abs(slope) < newtonMinSlope {
			break
		}
		t -= diff / slope
		if t < 0 || t > 1 || math.IsNaN(t) {
			break
		}
	}

	lo, hi := 0.0, 1.0
	t = x
	for i := 0; i < bisectionIterations; i++ {
		diff := c.sampleX(t) - x
		if math.Abs(diff) < solveEpsilon {
			return t
		}
		if diff > 0 {
			hi = t
		} else {
			lo = t
		}
		t = lo + (hi-lo)/2
	}
	return t
}

func (c *CubicBezier) startSlope() float64 {
	switch {
	case c.x1 > 0:
		return c.y1 / c.x1
	case c.x2 > 0:
		return c.y2 / c.x2
	}
	return 0
}

func (c *CubicBezier) endSlope() float64 {
	switch {
	case c.x2 < 1:
		return (c.y2 - 1) / (c.x2 - 1)
	case c.x1 < 1:
		return (c.y1 - 1) / (c.x1 - 1)
	}
	return 0
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
