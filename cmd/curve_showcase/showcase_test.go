package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/keyframe/pkg/easing"
	"github.com/decker502/keyframe/pkg/store"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("curves: [linear]\n"))
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Global.Window.Width)
	assert.Equal(t, 60, cfg.Global.Playback.TPS)
	assert.Equal(t, 2.0, cfg.Global.Playback.Period)
	assert.Equal(t, 64, cfg.Global.Playback.Points)
	assert.Equal(t, 6, cfg.Global.Grid.Columns)
	assert.Equal(t, 24, cfg.CellsPerPage())
	assert.Equal(t, "keyframe_showcase", cfg.Global.Store.AppName)
	assert.False(t, cfg.Global.Store.Enabled)
}

func TestParseConfigErrors(t *testing.T) {
	_, err := ParseConfig([]byte("global: [nope"))
	assert.Error(t, err)

	_, err = ParseConfig([]byte("global: {playback: {points: 1}}"))
	assert.Error(t, err)

	_, err = ParseConfig([]byte("global: {playback: {speed: -1}}"))
	assert.Error(t, err)
}

func TestLoadShippedConfig(t *testing.T) {
	cfg, err := LoadConfig("config.yaml")
	require.NoError(t, err)
	assert.Empty(t, cfg.Curves)
	assert.True(t, cfg.Global.Store.Enabled)
}

func TestBuildCells(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
curves: [linear, out_bounce, "cubic-bezier(0.42, 0, 0.58, 1)"]
sequence_file: sequences.yaml
`))
	require.NoError(t, err)

	cells, err := buildCells(cfg)
	require.NoError(t, err)
	require.Len(t, cells, 3+4)

	assert.Equal(t, "linear", cells[0].Name())
	assert.Equal(t, "fade", cells[3].Name())
	assert.Equal(t, "scale3d", cells[6].Name())
	assert.IsType(t, &SequenceCell{}, cells[4])
}

func TestBuildCellsWholeCatalog(t *testing.T) {
	cfg, err := ParseConfig([]byte("{}"))
	require.NoError(t, err)

	cells, err := buildCells(cfg)
	require.NoError(t, err)
	assert.Len(t, cells, len(easing.Names()))
}

func TestBuildCellsUnknownCurve(t *testing.T) {
	cfg, err := ParseConfig([]byte("curves: [wobble]"))
	require.NoError(t, err)

	_, err = buildCells(cfg)
	assert.ErrorIs(t, err, easing.ErrUnknownEasing)
}

func TestCurveCellFollowsCurve(t *testing.T) {
	cell, err := NewCurveCell("in_quad", easing.InQuad, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.0625, 0.25, 0.5625, 1}, cell.points)

	cell.Update(1)
	assert.InDelta(t, 0.5, cell.curveX(), 1e-9)
	assert.InDelta(t, 0.25, cell.value(), 1e-9)

	// Reversed, the marker walks back along the same curve.
	cell.Reverse()
	assert.InDelta(t, 0.5, cell.curveX(), 1e-9)
	cell.Update(0.5)
	assert.InDelta(t, 0.25, cell.curveX(), 1e-9)
	assert.InDelta(t, 0.0625, cell.value(), 1e-6)
}

func TestCurveCellRangeCoversOvershoot(t *testing.T) {
	cell, err := NewCurveCell("in_back", easing.InBack, 1, 65)
	require.NoError(t, err)
	assert.Less(t, cell.minY, 0.0)
	assert.Equal(t, 1.0, cell.maxY)
}

func TestSequenceCellSnapshotRoundTrip(t *testing.T) {
	cfg, err := ParseConfig([]byte("curves: [linear]\nsequence_file: sequences.yaml\n"))
	require.NoError(t, err)
	cells, err := buildCells(cfg)
	require.NoError(t, err)

	orbit := cells[2].(*SequenceCell)
	require.Equal(t, "orbit", orbit.Name())
	orbit.Update(1.5)
	orbit.Reverse()

	ps := store.NewPlaybackStore(nil)
	require.NoError(t, ps.Save(orbit.Snapshot()))

	fresh, err := buildCells(cfg)
	require.NoError(t, err)
	restored := fresh[2].(*SequenceCell)
	require.NoError(t, restored.RestoreFrom(ps))

	assert.True(t, restored.reversed)
	assert.InDelta(t, orbit.track.Time(), restored.track.Time(), 1e-9)

	want, err := orbit.track.Components()
	require.NoError(t, err)
	got, err := restored.track.Components()
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, got, 1e-9)
}

func TestSequenceCellHoldsThenRestarts(t *testing.T) {
	cfg, err := ParseConfig([]byte("curves: [linear]\nsequence_file: sequences.yaml\n"))
	require.NoError(t, err)
	cells, err := buildCells(cfg)
	require.NoError(t, err)

	fade := cells[1].(*SequenceCell)
	fade.Update(5)
	assert.True(t, fade.track.IsFinished())

	fade.Update(finishedHold / 2)
	assert.True(t, fade.track.IsFinished())
	fade.Update(finishedHold / 2)
	assert.True(t, fade.track.IsAtStart())
}

func TestSequenceCellPreviewRange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seq.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`version: "1"
sequences:
  - name: ramp
    start: 0.5
    keyframes:
      - {value: -2, time: 0}
      - {value: 4, time: 1}
`), 0o644))

	cfg, err := ParseConfig([]byte("curves: [linear]\nsequence_file: " + path + "\n"))
	require.NoError(t, err)
	cells, err := buildCells(cfg)
	require.NoError(t, err)

	ramp := cells[1].(*SequenceCell)
	assert.Equal(t, -2.0, ramp.minC[0])
	assert.Equal(t, 4.0, ramp.maxC[0])
	assert.Equal(t, 0.5, ramp.track.Time(), "the live track keeps its start")
}

func TestGridLayoutSelection(t *testing.T) {
	cells := make([]Cell, 5)
	for i := range cells {
		c, err := NewCurveCell("linear", easing.Linear, 1, 2)
		require.NoError(t, err)
		cells[i] = c
	}
	grid := NewGridLayout(&GridConfig{Columns: 3, CellWidth: 100, CellHeight: 80, Padding: 10}, cells, 25)

	assert.Equal(t, -1, grid.GetSelectedIndex())
	assert.Nil(t, grid.GetCell(-1))

	grid.MoveSelection(1)
	assert.Equal(t, 0, grid.GetSelectedIndex(), "first move selects the first cell")
	grid.MoveSelection(-1)
	assert.Equal(t, 4, grid.GetSelectedIndex())
	grid.MoveSelection(3)
	assert.Equal(t, 2, grid.GetSelectedIndex())

	// Second row, second column.
	assert.Equal(t, 4, grid.GetCellAt(130, 25+90+10+5))
	assert.Equal(t, -1, grid.GetCellAt(5, 5))
}
