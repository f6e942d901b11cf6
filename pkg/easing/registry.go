package easing

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrUnknownEasing is returned by Parse for names missing from the catalog.
	ErrUnknownEasing = errors.New("unknown easing function")

	// ErrMalformedBezier is returned by Parse for unreadable cubic-bezier() text.
	ErrMalformedBezier = errors.New("malformed cubic-bezier")
)

var catalog = map[string]Function{
	"linear": Linear,
	"step":   Step,

	"in_sine":     InSine,
	"out_sine":    OutSine,
	"in_out_sine": InOutSine,

	"in_quad":     InQuad,
	"out_quad":    OutQuad,
	"in_out_quad": InOutQuad,

	"in_cubic":     InCubic,
	"out_cubic":    OutCubic,
	"in_out_cubic": InOutCubic,

	"in_quart":     InQuart,
	"out_quart":    OutQuart,
	"in_out_quart": InOutQuart,

	"in_quint":     InQuint,
	"out_quint":    OutQuint,
	"in_out_quint": InOutQuint,

	"in_expo":     InExpo,
	"out_expo":    OutExpo,
	"in_out_expo": InOutExpo,

	"in_circ":     InCirc,
	"out_circ":    OutCirc,
	"in_out_circ": InOutCirc,

	"in_back":     InBack,
	"out_back":    OutBack,
	"in_out_back": InOutBack,

	"in_elastic":     InElastic,
	"out_elastic":    OutElastic,
	"in_out_elastic": InOutElastic,

	"in_bounce":     InBounce,
	"out_bounce":    OutBounce,
	"in_out_bounce": InOutBounce,

	"ease":        Ease,
	"ease_in":     EaseIn,
	"ease_out":    EaseOut,
	"ease_in_out": EaseInOut,
}

// Lookup returns the named curve. Names are case-insensitive and accept
// either '_' or '-' as separator ("ease-in-out" == "ease_in_out").
func Lookup(name string) (Function, bool) {
	fn, ok := catalog[normalize(name)]
	return fn, ok
}

// Names lists the catalog in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(catalog))
}

// Parse reads an easing from text: either a catalog name or
// "cubic-bezier(x1, y1, x2, y2)". An empty string means Linear.
func Parse(text string) (Function, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Linear, nil
	}

	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "cubic-bezier") || strings.HasPrefix(lower, "cubic_bezier") {
		return parseBezier(s)
	}

	fn, ok := Lookup(s)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEasing, text)
	}
	return fn, nil
}

func parseBezier(s string) (Function, error) {
	open := strings.Index(s, "(")
	if open < 0 || !strings.HasSuffix(s, ")") {
		return nil, fmt.Errorf("%w: %q", ErrMalformedBezier, s)
	}

	parts := strings.Split(s[open+1:len(s)-1], ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("%w: %q needs 4 numbers, got %d", ErrMalformedBezier, s, len(parts))
	}

	var p [4]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformedBezier, s, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %q: control point %d is not finite", ErrMalformedBezier, s, i+1)
		}
		p[i] = v
	}
	return NewCubicBezier(p[0], p[1], p[2], p[3]), nil
}

func normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
}
