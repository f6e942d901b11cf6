package easing

import "math"

const (
	backC1 = 1.70158
	backC2 = backC1 * 1.525
	backC3 = backC1 + 1

	elasticC4 = 2 * math.Pi / 3
	elasticC5 = 2 * math.Pi / 4.5

	bounceN1 = 7.5625
	bounceD1 = 2.75
)

// Back family. Pulls back below 0 (In) or overshoots past 1 (Out).
var (
	InBack = Func(func(x float64) float64 {
		if x == 1 {
			return 1
		}
		return backC3*x*x*x - backC1*x*x
	})
	OutBack = Func(func(x float64) float64 {
		if x == 0 {
			return 0
		}
		d := x - 1
		return 1 + backC3*d*d*d + backC1*d*d
	})
	InOutBack = Func(func(x float64) float64 {
		if x == 1 {
			return 1
		}
		if x < 0.5 {
			return (4 * x * x * ((backC2+1)*2*x - backC2)) / 2
		}
		d := 2*x - 2
		return (d*d*((backC2+1)*d+backC2) + 2) / 2
	})
)

// Elastic family. Oscillates around the endpoints.
var (
	InElastic = Func(func(x float64) float64 {
		switch x {
		case 0:
			return 0
		case 1:
			return 1
		}
		return -math.Pow(2, 10*x-10) * math.Sin((10*x-10.75)*elasticC4)
	})
	OutElastic = Func(func(x float64) float64 {
		switch x {
		case 0:
			return 0
		case 1:
			return 1
		}
		return math.Pow(2, -10*x)*math.Sin((10*x-0.75)*elasticC4) + 1
	})
	InOutElastic = Func(func(x float64) float64 {
		switch {
		case x == 0:
			return 0
		case x == 1:
			return 1
		case x < 0.5:
			return -(math.Pow(2, 20*x-10) * math.Sin((20*x-11.125)*elasticC5)) / 2
		default:
			return (math.Pow(2, -20*x+10)*math.Sin((20*x-11.125)*elasticC5))/2 + 1
		}
	})
)

// Bounce family.
var (
	InBounce = Func(func(x float64) float64 {
		return 1 - outBounce(1-x)
	})

	OutBounce = Func(outBounce)

	InOutBounce = Func(func(x float64) float64 {
		if x < 0.5 {
			return (1 - outBounce(1-2*x)) / 2
		}
		return (1 + outBounce(2*x-1)) / 2
	})
)

func outBounce(x float64) float64 {
	switch {
	case x == 1:
		return 1
	case x < 1/bounceD1:
		return bounceN1 * x * x
	case x < 2/bounceD1:
		x -= 1.5 / bounceD1
		return bounceN1*x*x + 0.75
	case x < 2.5/bounceD1:
		x -= 2.25 / bounceD1
		return bounceN1*x*x + 0.9375
	default:
		x -= 2.625 / bounceD1
		return bounceN1*x*x + 0.984375
	}
}
