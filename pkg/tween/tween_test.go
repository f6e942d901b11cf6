package tween

import (
	"math"
	"testing"

	"github.com/decker502/keyframe/pkg/easing"
)

// TestLerp covers endpoints, midpoints and extrapolation.
func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		t        float64
		expected float64
	}{
		{"start", 0.0, 100.0, 0.0, 0.0},
		{"mid", 0.0, 100.0, 0.5, 50.0},
		{"end", 0.0, 100.0, 1.0, 100.0},
		{"quarter", 0.0, 100.0, 0.25, 25.0},
		{"negative range", -50.0, 50.0, 0.5, 0.0},
		{"reversed range", 100.0, 0.0, 0.5, 50.0},
		{"extrapolate past end", 0.0, 10.0, 1.5, 15.0},
		{"extrapolate before start", 0.0, 10.0, -0.5, -5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Lerp(tt.a, tt.b, tt.t)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, result, tt.expected)
			}
		})
	}
}

// TestLerpEndpointsExact checks blend(a,b,0)==a and blend(a,b,1)==b without tolerance.
func TestLerpEndpointsExact(t *testing.T) {
	pairs := [][2]float64{
		{0.1, 0.7},
		{-3.3, 1e9},
		{1.0 / 3.0, 2.0 / 3.0},
		{123.456, -0.001},
	}
	for _, p := range pairs {
		if got := Lerp(p[0], p[1], 0); got != p[0] {
			t.Errorf("Lerp(%v, %v, 0) = %v, want exactly %v", p[0], p[1], got, p[0])
		}
		if got := Lerp(p[0], p[1], 1); got != p[1] {
			t.Errorf("Lerp(%v, %v, 1) = %v, want exactly %v", p[0], p[1], got, p[1])
		}
	}

	if got := Lerp(float32(0.1), float32(0.7), 1); got != float32(0.7) {
		t.Errorf("float32 Lerp end = %v, want 0.7", got)
	}
}

func TestLerpIntegers(t *testing.T) {
	if got := Lerp(0, 10, 0.26); got != 3 {
		t.Errorf("Lerp(0, 10, 0.26) = %d, want 3 (rounded)", got)
	}
	if got := Lerp(uint8(200), uint8(100), 0.5); got != 150 {
		t.Errorf("Lerp(200, 100, 0.5) = %d, want 150", got)
	}
	if got := Lerp(int64(-7), int64(7), 1); got != 7 {
		t.Errorf("Lerp(-7, 7, 1) = %d, want 7", got)
	}
}

func TestLerpUnsignedExtrapolationClamps(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		want     uint8
	}{
		{"below zero", -1, 0},
		{"above max", 5, 255},
		{"in range", 1.5, 125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(uint8(50), uint8(100), tt.progress); got != tt.want {
				t.Errorf("Lerp(50, 100, %v) = %d, want %d", tt.progress, got, tt.want)
			}
		})
	}

	if got := Lerp(uint(3), uint(1), 5); got != 0 {
		t.Errorf("Lerp(uint 3, 1, 5) = %d, want 0", got)
	}
	if got := Lerp(-3, 1, -1); got != -7 {
		t.Errorf("Lerp(-3, 1, -1) = %d, want -7 (signed extrapolates)", got)
	}
}

type pair struct{ x, y float64 }

func (p pair) Blend(to pair, progress float64) pair {
	return pair{Lerp(p.x, to.x, progress), Lerp(p.y, to.y, progress)}
}

func TestBlend(t *testing.T) {
	from, to := pair{0, 10}, pair{10, 30}
	got := Blend(from, to, 0.5)
	if got != (pair{5, 20}) {
		t.Errorf("Blend = %+v, want {5 20}", got)
	}

	blend := BlenderFunc[pair]()
	if got := blend(from, to, 1); got != to {
		t.Errorf("BlenderFunc end = %+v, want %+v", got, to)
	}
}

// TestEase mirrors the scale animation use case: 1.0 -> 0.85 along OutCubic.
func TestEase(t *testing.T) {
	tests := []struct {
		progress float64
		expected float64
	}{
		{0.0, 1.0},
		{1.0, 0.85},
		{0.5, 0.86875}, // 1.0 + (0.85 - 1.0) * 0.875
	}

	for _, tt := range tests {
		scale := Ease(easing.OutCubic, 1.0, 0.85, tt.progress)
		if math.Abs(scale-tt.expected) > 0.001 {
			t.Errorf("progress %v: scale = %v, want %v", tt.progress, scale, tt.expected)
		}
	}
}

func TestEaseNilFunctionIsLinear(t *testing.T) {
	if got := Ease(nil, 0.0, 8.0, 0.25); got != 2 {
		t.Errorf("Ease(nil, 0, 8, 0.25) = %v, want 2", got)
	}
}

func TestEaseFunc(t *testing.T) {
	got := EaseFunc(BlenderFunc[pair](), easing.InQuad, pair{0, 0}, pair{4, 8}, 0.5)
	if got != (pair{1, 2}) {
		t.Errorf("EaseFunc = %+v, want {1 2}", got)
	}
}

func TestEaseScaled(t *testing.T) {
	tests := []struct {
		name          string
		time, maxTime float64
		expected      float64
	}{
		{"half way", 1, 2, 50},
		{"start", 0, 4, 0},
		{"done", 4, 4, 100},
		{"zero max time", 3, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EaseScaled(easing.Linear, 0.0, 100.0, tt.time, tt.maxTime)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("EaseScaled(%v, %v) = %v, want %v", tt.time, tt.maxTime, got, tt.expected)
			}
		})
	}
}
