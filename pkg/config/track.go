package config

import (
	"fmt"

	"github.com/decker502/keyframe/pkg/keyframe"
	"github.com/decker502/keyframe/pkg/vector"
)

// Track is a sequence built from a definition whose value type is only known
// at run time. Values come out as plain component lists (R, G, B for colors).
type Track interface {
	Name() string
	Kind() Kind
	Loop() bool

	AdvanceBy(delta float64) bool
	AdvanceTo(t float64) bool
	AdvanceAndWrap(delta float64) bool
	Reverse()

	Time() float64
	Progress() float64
	Duration() (float64, error)
	IsFinished() bool
	IsAtStart() bool
	Components() ([]float64, error)
}

type track[T any] struct {
	*keyframe.Sequence[T]
	cfg        *SequenceConfig
	components func(T) []float64
}

func (t *track[T]) Name() string { return t.cfg.Name }
func (t *track[T]) Kind() Kind   { return t.cfg.Kind }
func (t *track[T]) Loop() bool   { return t.cfg.Loop }

func (t *track[T]) Components() ([]float64, error) {
	v, err := t.Now()
	if err != nil {
		return nil, err
	}
	return t.components(v), nil
}

// Track builds the sequence for this definition according to its kind.
func (c *SequenceConfig) Track() (Track, error) {
	switch c.Kind {
	case KindScalar:
		seq, err := c.Scalar()
		if err != nil {
			return nil, err
		}
		return &track[float64]{seq, c, func(v float64) []float64 { return []float64{v} }}, nil
	case KindVec2:
		seq, err := c.Vec2()
		if err != nil {
			return nil, err
		}
		return &track[vector.Vec2]{seq, c, vector.Vec2.Components}, nil
	case KindVec3:
		seq, err := c.Vec3()
		if err != nil {
			return nil, err
		}
		return &track[vector.Vec3]{seq, c, vector.Vec3.Components}, nil
	case KindVec4:
		seq, err := c.Vec4()
		if err != nil {
			return nil, err
		}
		return &track[vector.Vec4]{seq, c, vector.Vec4.Components}, nil
	case KindColor:
		seq, err := c.Color()
		if err != nil {
			return nil, err
		}
		return &track[vector.Color]{seq, c, func(v vector.Color) []float64 {
			return []float64{v.R, v.G, v.B}
		}}, nil
	}
	return nil, fmt.Errorf("%w: sequence %q: unknown kind %q", ErrInvalidSequence, c.Name, c.Kind)
}

// Tracks builds every sequence in the file, in document order.
func (f *SequenceFile) Tracks() ([]Track, error) {
	tracks := make([]Track, 0, len(f.Sequences))
	for i := range f.Sequences {
		t, err := f.Sequences[i].Track()
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}
	return tracks, nil
}
