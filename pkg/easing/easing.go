// Package easing provides easing curves that reshape linear progress.
//
// All curves map a progress value x to an eased progress value. Named curves
// return exactly 0 at x=0 and 1 at x=1. In between they may leave [0, 1]
// (back, elastic and bounce do on purpose) and they are never clamped.
//
// Reference: https://easings.net/
package easing

import "math"

// Function is an easing curve.
type Function interface {
	Eval(x float64) float64
}

// Func adapts an ordinary function to Function.
type Func func(x float64) float64

// Eval calls f(x).
func (f Func) Eval(x float64) float64 {
	return f(x)
}

// Linear is the identity curve.
var Linear = Func(func(x float64) float64 {
	return x
})

// Step holds at 0 until the segment ends, then jumps to 1.
var Step = Func(func(x float64) float64 {
	if x < 1 {
		return 0
	}
	return 1
})

// Sine family.
var (
	InSine = Func(func(x float64) float64 {
		if x == 1 {
			return 1
		}
		return 1 - math.Cos(x*math.Pi/2)
	})
	OutSine = Func(func(x float64) float64 {
		if x == 1 {
			return 1
		}
		return math.Sin(x * math.Pi / 2)
	})
	InOutSine = Func(func(x float64) float64 {
		if x == 1 {
			return 1
		}
		return -(math.Cos(math.Pi*x) - 1) / 2
	})
)

// Power families: In accelerates, Out decelerates, InOut does both.
var (
	InQuad    = inPow(2)
	OutQuad   = outPow(2)
	InOutQuad = inOutPow(2)

	InCubic    = inPow(3)
	OutCubic   = outPow(3)
	InOutCubic = inOutPow(3)

	InQuart    = inPow(4)
	OutQuart   = outPow(4)
	InOutQuart = inOutPow(4)

	InQuint    = inPow(5)
	OutQuint   = outPow(5)
	InOutQuint = inOutPow(5)
)

// Exponential family. The formulas only approach their endpoints, so 0 and 1
// are special cased.
var (
	InExpo = Func(func(x float64) float64 {
		if x == 0 {
			return 0
		}
		return math.Pow(2, 10*x-10)
	})
	OutExpo = Func(func(x float64) float64 {
		if x == 1 {
			return 1
		}
		return 1 - math.Pow(2, -10*x)
	})
	InOutExpo = Func(func(x float64) float64 {
		switch {
		case x == 0:
			return 0
		case x == 1:
			return 1
		case x < 0.5:
			return math.Pow(2, 20*x-10) / 2
		default:
			return (2 - math.Pow(2, -20*x+10)) / 2
		}
	})
)

// Circular family. The radicand is floored at zero so extrapolated input
// stays finite.
var (
	InCirc = Func(func(x float64) float64 {
		return 1 - sqrt0(1-x*x)
	})
	OutCirc = Func(func(x float64) float64 {
		return sqrt0(1 - (x-1)*(x-1))
	})
	InOutCirc = Func(func(x float64) float64 {
		if x < 0.5 {
			return (1 - sqrt0(1-4*x*x)) / 2
		}
		return (sqrt0(1-(2-2*x)*(2-2*x)) + 1) / 2
	})
)

func inPow(n int) Func {
	return func(x float64) float64 {
		return pow(x, n)
	}
}

func outPow(n int) Func {
	return func(x float64) float64 {
		return 1 - pow(1-x, n)
	}
}

func inOutPow(n int) Func {
	scale := float64(int(1) << (n - 1))
	return func(x float64) float64 {
		if x < 0.5 {
			return scale * pow(x, n)
		}
		return 1 - pow(2-2*x, n)/2
	}
}

// pow multiplies instead of calling math.Pow so small integer powers stay exact.
func pow(x float64, n int) float64 {
	r := 1.0
	for i := 0; i < n; i++ {
		r *= x
	}
	return r
}

func sqrt0(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Sqrt(v)
}
