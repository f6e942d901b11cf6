// cmd/curve_showcase/curve_cell.go
// Cells that plot one easing curve with a marker riding along it.

package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/keyframe/pkg/easing"
	"github.com/decker502/keyframe/pkg/keyframe"
)

// Cell is one tile of the showcase grid.
type Cell interface {
	Name() string
	Info() string
	Update(dt float64)
	Reverse()
	Render(screen *ebiten.Image, x, y, w, h float64)
}

var (
	plotLineColor   = color.RGBA{60, 90, 200, 255}
	plotGuideColor  = color.RGBA{200, 200, 200, 255}
	plotMarkerColor = color.RGBA{220, 60, 60, 255}
)

// plotInset is the margin around the plot area; the bottom keeps room for
// the caption drawn by the grid.
const (
	plotInset      = 10.0
	captionHeight  = 35.0
	markerHalfSize = 3.0
)

// CurveCell plays a 0 to 1 sequence eased by one curve, looping.
type CurveCell struct {
	name     string
	fn       easing.Function
	seq      *keyframe.Sequence[float64]
	points   []float64
	minY     float64
	maxY     float64
	reversed bool
}

// NewCurveCell samples fn at the given number of points and prepares a
// looping sequence lasting period seconds.
func NewCurveCell(name string, fn easing.Function, period float64, points int) (*CurveCell, error) {
	seq, err := keyframe.NewSequence(
		keyframe.At(0.0, 0),
		keyframe.New(1.0, period, fn),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build sequence for %s: %w", name, err)
	}

	c := &CurveCell{
		name:   name,
		fn:     fn,
		seq:    seq,
		points: make([]float64, points),
		minY:   0,
		maxY:   1,
	}
	for i := range c.points {
		y := fn.Eval(float64(i) / float64(points-1))
		c.points[i] = y
		c.minY = math.Min(c.minY, y)
		c.maxY = math.Max(c.maxY, y)
	}
	return c, nil
}

func (c *CurveCell) Name() string { return c.name }

// Info shows the position on the curve in its own x/y terms.
func (c *CurveCell) Info() string {
	s := fmt.Sprintf("x=%.2f y=%.3f", c.curveX(), c.value())
	if c.reversed {
		s += " rev"
	}
	return s
}

func (c *CurveCell) Update(dt float64) {
	c.seq.AdvanceAndWrap(dt)
}

func (c *CurveCell) Reverse() {
	c.seq.Reverse()
	c.reversed = !c.reversed
}

// curveX is the x of the marker on the plotted curve. A reversed sequence
// walks the same curve from right to left.
func (c *CurveCell) curveX() float64 {
	p := c.seq.Progress()
	if c.reversed {
		return 1 - p
	}
	return p
}

func (c *CurveCell) value() float64 {
	v, err := c.seq.Now()
	if err != nil {
		return 0
	}
	return v
}

func (c *CurveCell) Render(screen *ebiten.Image, x, y, w, h float64) {
	area := newPlotArea(x, y, w, h, c.minY, c.maxY)

	area.guide(screen, 0)
	area.guide(screen, 1)
	area.polyline(screen, c.points)
	area.marker(screen, c.curveX(), c.value())
}

// plotArea maps unit x and a value range onto a rectangle of the screen.
type plotArea struct {
	left, top, width, height float64
	minY, maxY               float64
}

func newPlotArea(x, y, w, h, minY, maxY float64) plotArea {
	if maxY <= minY {
		maxY = minY + 1
	}
	return plotArea{
		left:   x + plotInset,
		top:    y + plotInset,
		width:  w - 2*plotInset,
		height: h - 2*plotInset - captionHeight,
		minY:   minY,
		maxY:   maxY,
	}
}

// project returns screen coordinates for unit x and value v.
func (a plotArea) project(x, v float64) (float64, float64) {
	sx := a.left + x*a.width
	sy := a.top + a.height - (v-a.minY)/(a.maxY-a.minY)*a.height
	return sx, sy
}

func (a plotArea) guide(screen *ebiten.Image, v float64) {
	x0, y0 := a.project(0, v)
	x1, y1 := a.project(1, v)
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, plotGuideColor, false)
}

// polyline draws values spread evenly over x in [0, 1].
func (a plotArea) polyline(screen *ebiten.Image, values []float64) {
	if len(values) < 2 {
		return
	}
	n := float64(len(values) - 1)
	px, py := a.project(0, values[0])
	for i := 1; i < len(values); i++ {
		qx, qy := a.project(float64(i)/n, values[i])
		vector.StrokeLine(screen, float32(px), float32(py), float32(qx), float32(qy), 2, plotLineColor, true)
		px, py = qx, qy
	}
}

func (a plotArea) marker(screen *ebiten.Image, x, v float64) {
	sx, sy := a.project(x, v)
	vector.DrawFilledRect(
		screen,
		float32(sx-markerHalfSize),
		float32(sy-markerHalfSize),
		float32(2*markerHalfSize),
		float32(2*markerHalfSize),
		plotMarkerColor,
		false,
	)
}
