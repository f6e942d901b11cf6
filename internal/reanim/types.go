// Package reanim reads Reanim animation files, a frame-by-frame XML format
// exported from Flash, and converts their part tracks into keyframe
// sequences.
package reanim

// ReanimXML is the root of a Reanim file: a frame rate and a list of tracks.
type ReanimXML struct {
	FPS    int     `xml:"fps"`
	Tracks []Track `xml:"track"`
}

// Track is one named part ("head", "body") or animation range ("anim_idle").
type Track struct {
	Name   string  `xml:"name"`
	Frames []Frame `xml:"t"`
}

// Frame holds the fields written for one frame. Missing fields inherit the
// value of the previous frame.
type Frame struct {
	// FrameNum is -1 for hidden frames, 0 or more for visible ones.
	FrameNum *int `xml:"f,omitempty"`

	X      *float64 `xml:"x,omitempty"`
	Y      *float64 `xml:"y,omitempty"`
	ScaleX *float64 `xml:"sx,omitempty"`
	ScaleY *float64 `xml:"sy,omitempty"`

	// Skew angles are in degrees.
	SkewX *float64 `xml:"kx,omitempty"`
	SkewY *float64 `xml:"ky,omitempty"`

	ImagePath string `xml:"i,omitempty"`
}

// State is a frame with every inherited field filled in.
type State struct {
	X, Y           float64
	ScaleX, ScaleY float64
	SkewX, SkewY   float64
	Visible        bool
}

// defaultState applies before the first frame of a track.
var defaultState = State{ScaleX: 1, ScaleY: 1, Visible: true}

// Resolve expands the track into one fully specified State per frame.
func (t *Track) Resolve() []State {
	states := make([]State, len(t.Frames))
	cur := defaultState
	for i, f := range t.Frames {
		if f.FrameNum != nil {
			cur.Visible = *f.FrameNum >= 0
		}
		setIf(&cur.X, f.X)
		setIf(&cur.Y, f.Y)
		setIf(&cur.ScaleX, f.ScaleX)
		setIf(&cur.ScaleY, f.ScaleY)
		setIf(&cur.SkewX, f.SkewX)
		setIf(&cur.SkewY, f.SkewY)
		states[i] = cur
	}
	return states
}

func setIf(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
