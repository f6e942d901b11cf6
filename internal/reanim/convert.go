package reanim

import (
	"fmt"

	"github.com/decker502/keyframe/pkg/config"
	"github.com/decker502/keyframe/pkg/easing"
	"github.com/decker502/keyframe/pkg/keyframe"
	"github.com/decker502/keyframe/pkg/tween"
	"github.com/decker502/keyframe/pkg/vector"
)

// Channel suffixes used when a track is exported as sequence definitions.
const (
	ChannelPosition = "position"
	ChannelScale    = "scale"
	ChannelSkew     = "skew"
	ChannelVisible  = "visible"
)

// FrameTime returns the time in seconds of frame i at the given rate.
func FrameTime(i, fps int) float64 {
	return float64(i) / float64(fps)
}

// Position returns the track's X/Y offsets as a linear sequence.
func (t *Track) Position(fps int) (*keyframe.Sequence[vector.Vec2], error) {
	return vec2Channel(t, fps, func(s State) vector.Vec2 { return vector.Vec2{X: s.X, Y: s.Y} })
}

// Scale returns the track's scale factors as a linear sequence.
func (t *Track) Scale(fps int) (*keyframe.Sequence[vector.Vec2], error) {
	return vec2Channel(t, fps, func(s State) vector.Vec2 { return vector.Vec2{X: s.ScaleX, Y: s.ScaleY} })
}

// Skew returns the track's skew angles in degrees as a linear sequence.
func (t *Track) Skew(fps int) (*keyframe.Sequence[vector.Vec2], error) {
	return vec2Channel(t, fps, func(s State) vector.Vec2 { return vector.Vec2{X: s.SkewX, Y: s.SkewY} })
}

// Visibility returns 1 for visible and 0 for hidden frames. Changes take
// effect exactly on their frame.
func (t *Track) Visibility(fps int) (*keyframe.Sequence[float64], error) {
	states := t.Resolve()
	frames := make([]keyframe.Keyframe[float64], 0, len(states))
	for _, i := range compact(len(states), func(a, b int) bool { return states[a].Visible == states[b].Visible }) {
		frames = append(frames, keyframe.New(visibleValue(states[i]), FrameTime(i, fps), easing.Step))
	}
	return keyframe.NewSequence(frames...)
}

func vec2Channel(t *Track, fps int, pick func(State) vector.Vec2) (*keyframe.Sequence[vector.Vec2], error) {
	states := t.Resolve()
	frames := make([]keyframe.Keyframe[vector.Vec2], 0, len(states))
	for _, i := range compact(len(states), func(a, b int) bool { return pick(states[a]) == pick(states[b]) }) {
		frames = append(frames, keyframe.At(pick(states[i]), FrameTime(i, fps)))
	}
	return keyframe.NewSequenceFunc(tween.BlenderFunc[vector.Vec2](), frames...)
}

// compact returns the frame indices worth keeping: every frame except those
// in the middle of a run of equal values. Linear playback of the kept frames
// reproduces the original frames exactly.
func compact(n int, equal func(a, b int) bool) []int {
	keep := make([]int, 0, n)
	for i := range n {
		if i == 0 || i == n-1 || !equal(i, i-1) || !equal(i, i+1) {
			keep = append(keep, i)
		}
	}
	return keep
}

func visibleValue(s State) float64 {
	if s.Visible {
		return 1
	}
	return 0
}

// SequenceFile exports the named part tracks, or every track with frames
// when names is empty, as sequence definitions. Each track yields a
// "<track>.position" sequence plus scale, skew and visibility sequences for
// channels that ever leave their defaults.
func (r *ReanimXML) SequenceFile(names ...string) (*config.SequenceFile, error) {
	tracks := make([]*Track, 0, len(r.Tracks))
	if len(names) == 0 {
		for i := range r.Tracks {
			if len(r.Tracks[i].Frames) > 0 {
				tracks = append(tracks, &r.Tracks[i])
			}
		}
	} else {
		for _, name := range names {
			t := r.Track(name)
			if t == nil {
				return nil, fmt.Errorf("track %q not found", name)
			}
			tracks = append(tracks, t)
		}
	}

	// Part names may repeat within a file; later ones get a numeric suffix.
	seen := make(map[string]int, len(tracks))
	file := &config.SequenceFile{Version: "1"}
	for _, t := range tracks {
		name := t.Name
		if n := seen[t.Name]; n > 0 {
			name = fmt.Sprintf("%s_%d", t.Name, n+1)
		}
		seen[t.Name]++
		file.Sequences = append(file.Sequences, t.sequenceConfigs(name, r.FPS)...)
	}
	if err := file.Validate(); err != nil {
		return nil, err
	}
	return file, nil
}

func (t *Track) sequenceConfigs(name string, fps int) []config.SequenceConfig {
	states := t.Resolve()

	var scaled, skewed, hidden bool
	for _, s := range states {
		scaled = scaled || s.ScaleX != 1 || s.ScaleY != 1
		skewed = skewed || s.SkewX != 0 || s.SkewY != 0
		hidden = hidden || !s.Visible
	}

	configs := []config.SequenceConfig{
		vec2Config(name+"."+ChannelPosition, states, fps, func(s State) (float64, float64) { return s.X, s.Y }),
	}
	if scaled {
		configs = append(configs, vec2Config(name+"."+ChannelScale, states, fps, func(s State) (float64, float64) { return s.ScaleX, s.ScaleY }))
	}
	if skewed {
		configs = append(configs, vec2Config(name+"."+ChannelSkew, states, fps, func(s State) (float64, float64) { return s.SkewX, s.SkewY }))
	}
	if hidden {
		visible := config.SequenceConfig{Name: name + "." + ChannelVisible, Kind: config.KindScalar}
		for _, i := range compact(len(states), func(a, b int) bool { return states[a].Visible == states[b].Visible }) {
			visible.Keyframes = append(visible.Keyframes, config.KeyframeConfig{
				Value:  config.Components{visibleValue(states[i])},
				Time:   FrameTime(i, fps),
				Easing: "step",
			})
		}
		configs = append(configs, visible)
	}
	return configs
}

func vec2Config(name string, states []State, fps int, pick func(State) (float64, float64)) config.SequenceConfig {
	cfg := config.SequenceConfig{Name: name, Kind: config.KindVec2}
	equal := func(a, b int) bool {
		ax, ay := pick(states[a])
		bx, by := pick(states[b])
		return ax == bx && ay == by
	}
	for _, i := range compact(len(states), equal) {
		x, y := pick(states[i])
		cfg.Keyframes = append(cfg.Keyframes, config.KeyframeConfig{
			Value: config.Components{x, y},
			Time:  FrameTime(i, fps),
		})
	}
	return cfg
}
