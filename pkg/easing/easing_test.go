package easing

import (
	"math"
	"testing"
)

func named() map[string]Function {
	out := make(map[string]Function, len(catalog))
	for _, name := range Names() {
		fn, _ := Lookup(name)
		out[name] = fn
	}
	return out
}

// TestEndpoints checks f(0)==0 and f(1)==1 for every named curve.
func TestEndpoints(t *testing.T) {
	for name, fn := range named() {
		t.Run(name, func(t *testing.T) {
			if got := fn.Eval(0); math.Abs(got) > 1e-9 {
				t.Errorf("%s(0) = %v, want 0", name, got)
			}
			if got := fn.Eval(1); math.Abs(got-1) > 1e-9 {
				t.Errorf("%s(1) = %v, want 1", name, got)
			}
		})
	}
}

func TestLinearIsIdentity(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		x := float64(i) / 1000
		if got := Linear.Eval(x); got != x {
			t.Fatalf("Linear(%v) = %v", x, got)
		}
	}
}

// TestKnownValues pins the reference curves at their midpoints.
func TestKnownValues(t *testing.T) {
	tests := []struct {
		name     string
		fn       Function
		input    float64
		expected float64
	}{
		{"in_quad mid", InQuad, 0.5, 0.25},
		{"out_quad mid", OutQuad, 0.5, 0.75},
		{"in_cubic mid", InCubic, 0.5, 0.125},
		{"out_cubic mid", OutCubic, 0.5, 0.875},
		{"in_out_cubic quarter", InOutCubic, 0.25, 0.0625},
		{"in_out_cubic mid", InOutCubic, 0.5, 0.5},
		{"in_quart mid", InQuart, 0.5, 0.0625},
		{"in_quint mid", InQuint, 0.5, 0.03125},
		{"in_out_quint mid", InOutQuint, 0.5, 0.5},
		{"in_sine mid", InSine, 0.5, 1 - math.Sqrt2/2},
		{"out_sine mid", OutSine, 0.5, math.Sqrt2 / 2},
		{"in_out_sine mid", InOutSine, 0.5, 0.5},
		{"out_expo mid", OutExpo, 0.5, 1 - 1.0/32},
		{"in_expo mid", InExpo, 0.5, 1.0 / 32},
		{"in_circ mid", InCirc, 0.5, 1 - math.Sqrt(0.75)},
		{"out_bounce mid", OutBounce, 0.5, 0.765625},
		{"step before end", Step, 0.999, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.fn.Eval(tt.input)
			if math.Abs(result-tt.expected) > 1e-6 {
				t.Errorf("Eval(%v) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestEaseOutIsAheadOfLinear checks the "fast start, slow end" shape.
func TestEaseOutIsAheadOfLinear(t *testing.T) {
	for _, fn := range []Function{OutQuad, OutCubic, OutQuart, OutQuint, OutSine, OutExpo, OutCirc} {
		for i := 1; i < 10; i++ {
			p := float64(i) / 10
			if eased := fn.Eval(p); eased <= p {
				t.Errorf("ease-out value %v at %v should be ahead of linear", eased, p)
			}
		}
	}
}

func TestEaseInIsBehindLinear(t *testing.T) {
	for _, fn := range []Function{InQuad, InCubic, InQuart, InQuint, InSine, InExpo, InCirc} {
		for i := 1; i < 10; i++ {
			p := float64(i) / 10
			if eased := fn.Eval(p); eased >= p {
				t.Errorf("ease-in value %v at %v should be behind linear", eased, p)
			}
		}
	}
}

// TestOvershootIsNotClamped makes sure back and elastic leave [0, 1].
func TestOvershootIsNotClamped(t *testing.T) {
	if got := InBack.Eval(0.2); got >= 0 {
		t.Errorf("InBack(0.2) = %v, want < 0", got)
	}
	if got := OutBack.Eval(0.8); got <= 1 {
		t.Errorf("OutBack(0.8) = %v, want > 1", got)
	}

	overshoot := false
	for i := 1; i < 20; i++ {
		if OutElastic.Eval(float64(i)/20) > 1 {
			overshoot = true
			break
		}
	}
	if !overshoot {
		t.Error("OutElastic never overshoots 1")
	}
}

func TestExtrapolationStaysFinite(t *testing.T) {
	for name, fn := range named() {
		for _, x := range []float64{-0.5, 1.5} {
			if got := fn.Eval(x); math.IsNaN(got) || math.IsInf(got, 0) {
				t.Errorf("%s(%v) = %v, want finite", name, x, got)
			}
		}
	}
}

func TestFunc(t *testing.T) {
	half := Func(func(x float64) float64 { return x / 2 })
	if got := half.Eval(0.5); got != 0.25 {
		t.Errorf("Func.Eval = %v, want 0.25", got)
	}
}
