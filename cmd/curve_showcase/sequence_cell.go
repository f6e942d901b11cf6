// cmd/curve_showcase/sequence_cell.go
// Cells that play a sequence loaded from a definition file.

package main

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/keyframe/pkg/config"
	"github.com/decker502/keyframe/pkg/store"
)

// finishedHold is how long a non-looping sequence rests on its last frame
// before starting over.
const finishedHold = 1.0

// SequenceCell plays one configured sequence. The whole timeline is sampled
// once up front so it can be drawn behind the live value.
type SequenceCell struct {
	track    config.Track
	samples  [][]float64
	minC     []float64
	maxC     []float64
	reversed bool
	held     float64
}

// NewSequenceCell builds the live track and a preview sampled at points
// evenly spaced instants.
func NewSequenceCell(cfg *config.SequenceConfig, points int) (*SequenceCell, error) {
	track, err := cfg.Track()
	if err != nil {
		return nil, err
	}
	preview, err := cfg.Track()
	if err != nil {
		return nil, err
	}

	duration, err := preview.Duration()
	if err != nil {
		return nil, fmt.Errorf("sequence %q: %w", cfg.Name, err)
	}
	preview.AdvanceTo(math.Inf(-1))
	start := preview.Time()

	dims := cfg.Kind.Dimensions()
	c := &SequenceCell{
		track:   track,
		samples: make([][]float64, points),
		minC:    make([]float64, dims),
		maxC:    make([]float64, dims),
	}
	for i := range dims {
		c.minC[i] = math.Inf(1)
		c.maxC[i] = math.Inf(-1)
	}

	for i := range points {
		preview.AdvanceTo(start + duration*float64(i)/float64(points-1))
		values, err := preview.Components()
		if err != nil {
			return nil, fmt.Errorf("sequence %q: %w", cfg.Name, err)
		}
		c.samples[i] = values
		for j, v := range values {
			c.minC[j] = math.Min(c.minC[j], v)
			c.maxC[j] = math.Max(c.maxC[j], v)
		}
	}
	return c, nil
}

func (c *SequenceCell) Name() string { return c.track.Name() }

func (c *SequenceCell) Info() string {
	values, err := c.track.Components()
	if err != nil {
		return err.Error()
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%.2f", v)
	}
	s := fmt.Sprintf("%s t=%.2f [%s]", c.track.Kind(), c.track.Time(), strings.Join(parts, " "))
	if c.reversed {
		s += " rev"
	}
	return s
}

func (c *SequenceCell) Update(dt float64) {
	if c.track.Loop() {
		c.track.AdvanceAndWrap(dt)
		return
	}

	if !c.track.IsFinished() {
		c.track.AdvanceBy(dt)
		return
	}
	c.held += dt
	if c.held >= finishedHold {
		c.held = 0
		c.track.AdvanceTo(math.Inf(-1))
	}
}

func (c *SequenceCell) Reverse() {
	c.track.Reverse()
	c.reversed = !c.reversed
	c.held = 0
}

// Snapshot captures the playback position for the store.
func (c *SequenceCell) Snapshot() store.Snapshot {
	return store.Snapshot{
		Name:     c.track.Name(),
		Time:     c.track.Time(),
		Reversed: c.reversed,
	}
}

// RestoreFrom moves the cell to its saved position, if one exists.
func (c *SequenceCell) RestoreFrom(ps *store.PlaybackStore) error {
	snap, err := ps.Load(c.track.Name())
	if errors.Is(err, store.ErrNoSnapshot) {
		return nil
	}
	if err != nil {
		return err
	}

	if snap.Reversed != c.reversed {
		c.Reverse()
	}
	_, err = ps.Restore(c.track.Name(), c.track)
	return err
}

// progressX is the current position along the preview, which is always
// sampled in forward order.
func (c *SequenceCell) progressX() float64 {
	p := c.track.Progress()
	if c.reversed {
		return 1 - p
	}
	return p
}

func (c *SequenceCell) Render(screen *ebiten.Image, x, y, w, h float64) {
	current, err := c.track.Components()
	if err != nil {
		log.Printf("[SequenceCell] %s: %v", c.track.Name(), err)
		return
	}

	switch c.track.Kind() {
	case config.KindScalar:
		c.renderScalar(screen, x, y, w, h, current)
	case config.KindVec2:
		c.renderPath(screen, x, y, w, h, current)
	case config.KindColor:
		c.renderSwatch(screen, x, y, w, h, current)
	default:
		c.renderBars(screen, x, y, w, h, current)
	}
}

func (c *SequenceCell) renderScalar(screen *ebiten.Image, x, y, w, h float64, current []float64) {
	values := make([]float64, len(c.samples))
	for i, s := range c.samples {
		values[i] = s[0]
	}
	area := newPlotArea(x, y, w, h, c.minC[0], c.maxC[0])
	area.guide(screen, c.minC[0])
	area.guide(screen, c.maxC[0])
	area.polyline(screen, values)
	area.marker(screen, c.progressX(), current[0])
}

// renderPath draws a 2D trajectory scaled to fit the cell, y pointing down.
func (c *SequenceCell) renderPath(screen *ebiten.Image, x, y, w, h float64, current []float64) {
	left, top := x+plotInset, y+plotInset
	width, height := w-2*plotInset, h-2*plotInset-captionHeight

	toScreen := func(p []float64) (float32, float32) {
		return float32(left + unit(p[0], c.minC[0], c.maxC[0])*width),
			float32(top + unit(p[1], c.minC[1], c.maxC[1])*height)
	}

	vector.StrokeRect(screen, float32(left), float32(top), float32(width), float32(height), 1, plotGuideColor, false)
	for i := 1; i < len(c.samples); i++ {
		x0, y0 := toScreen(c.samples[i-1])
		x1, y1 := toScreen(c.samples[i])
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, plotLineColor, true)
	}

	mx, my := toScreen(current)
	vector.DrawFilledRect(screen, mx-markerHalfSize, my-markerHalfSize, 2*markerHalfSize, 2*markerHalfSize, plotMarkerColor, false)
}

// renderSwatch fills the cell with the current color above a strip showing
// the whole gradient.
func (c *SequenceCell) renderSwatch(screen *ebiten.Image, x, y, w, h float64, current []float64) {
	left, top := x+plotInset, y+plotInset
	width, height := w-2*plotInset, h-2*plotInset-captionHeight
	strip := 14.0

	vector.DrawFilledRect(screen, float32(left), float32(top), float32(width), float32(height-strip-4), rgba(current), false)

	step := width / float64(len(c.samples))
	for i, s := range c.samples {
		vector.DrawFilledRect(screen,
			float32(left+float64(i)*step), float32(top+height-strip),
			float32(math.Ceil(step)), float32(strip),
			rgba(s), false)
	}

	mx := left + c.progressX()*width
	vector.StrokeLine(screen, float32(mx), float32(top+height-strip-2), float32(mx), float32(top+height), 2, color.Black, false)
}

// renderBars shows each component as a horizontal bar scaled to the range
// that component takes over the timeline.
func (c *SequenceCell) renderBars(screen *ebiten.Image, x, y, w, h float64, current []float64) {
	left, top := x+plotInset, y+plotInset
	width, height := w-2*plotInset, h-2*plotInset-captionHeight
	rowHeight := height / float64(len(current))

	for i, v := range current {
		ry := top + float64(i)*rowHeight
		vector.StrokeRect(screen, float32(left), float32(ry+2), float32(width), float32(rowHeight-4), 1, plotGuideColor, false)
		vector.DrawFilledRect(screen,
			float32(left), float32(ry+2),
			float32(unit(v, c.minC[i], c.maxC[i])*width), float32(rowHeight-4),
			plotLineColor, false)
	}
}

// unit maps v from [lo, hi] onto [0, 1]; a flat range maps to the middle.
func unit(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0.5
	}
	return (v - lo) / (hi - lo)
}

func rgba(c []float64) color.RGBA {
	ch := func(v float64) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	return color.RGBA{ch(c[0]), ch(c[1]), ch(c[2]), 255}
}
