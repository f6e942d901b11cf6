package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSequenceFile(t *testing.T) {
	file, err := LoadSequenceFile("testdata/sequences.yaml")
	require.NoError(t, err)

	assert.Equal(t, "1", file.Version)
	require.Len(t, file.Sequences, 3)

	doc := file.Get("documented")
	require.NotNil(t, doc)
	assert.Equal(t, KindScalar, doc.Kind, "kind defaults to scalar")
	assert.Equal(t, "linear", doc.Keyframes[0].Easing, "easing defaults to linear")
	assert.Equal(t, Components{1.5}, doc.Keyframes[1].Value)

	slide := file.Get("slide")
	require.NotNil(t, slide)
	assert.True(t, slide.Loop)
	assert.Equal(t, Components{100, 50}, slide.Keyframes[1].Value)

	assert.Nil(t, file.Get("missing"))
}

func TestLoadSequenceFileMissing(t *testing.T) {
	_, err := LoadSequenceFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

// TestDocumentedScalarSequence plays the documented example from YAML.
func TestDocumentedScalarSequence(t *testing.T) {
	file, err := LoadSequenceFile("testdata/sequences.yaml")
	require.NoError(t, err)

	seq, err := file.Get("documented").Scalar()
	require.NoError(t, err)

	seq.AdvanceBy(0.65)
	v, err := seq.Now()
	require.NoError(t, err)
	assert.InDelta(t, 2.0, v, 1e-9)

	d, err := seq.Duration()
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)
}

func TestTracks(t *testing.T) {
	file, err := LoadSequenceFile("testdata/sequences.yaml")
	require.NoError(t, err)

	tracks, err := file.Tracks()
	require.NoError(t, err)
	require.Len(t, tracks, 3)

	slide := tracks[1]
	assert.Equal(t, "slide", slide.Name())
	assert.Equal(t, KindVec2, slide.Kind())
	slide.AdvanceTo(2)
	c, err := slide.Components()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{100, 50}, c, 1e-9)

	glow := tracks[2]
	assert.Equal(t, 0.5, glow.Time(), "start moves the playhead")
	c, err = glow.Components()
	require.NoError(t, err)
	require.Len(t, c, 3)
	assert.Greater(t, c[0], c[1])
	assert.Greater(t, c[2], c[1])
}

func TestKindMismatch(t *testing.T) {
	file, err := LoadSequenceFile("testdata/sequences.yaml")
	require.NoError(t, err)

	_, err = file.Get("slide").Scalar()
	assert.ErrorIs(t, err, ErrInvalidSequence)
}

func TestParseSequenceFileErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing name", `
sequences:
  - keyframes: [{value: 1, time: 0}]`},
		{"duplicate name", `
sequences:
  - name: a
  - name: a`},
		{"unknown kind", `
sequences:
  - name: a
    kind: quaternion`},
		{"negative time", `
sequences:
  - name: a
    keyframes: [{value: 1, time: -1}]`},
		{"wrong component count", `
sequences:
  - name: a
    kind: vec3
    keyframes: [{value: [1, 2], time: 0}]`},
		{"unknown easing", `
sequences:
  - name: a
    keyframes: [{value: 1, time: 0, easing: wobble}]`},
		{"bad bezier", `
sequences:
  - name: a
    keyframes: [{value: 1, time: 0, easing: "cubic-bezier(1, 2)"}]`},
		{"bad color", `
sequences:
  - name: a
    kind: color
    keyframes: [{color: red, time: 0}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSequenceFile([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidSequence)
		})
	}
}

func TestParseSequenceFileBadValue(t *testing.T) {
	_, err := ParseSequenceFile([]byte(`
sequences:
  - name: a
    keyframes: [{value: {x: 1}, time: 0}]`))
	assert.Error(t, err)
}

func TestKindIsCaseInsensitive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seq.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
version: "1"
sequences:
  - name: pos
    kind: VEC3
    keyframes:
      - {value: [0, 0, 0], time: 0}
      - {value: [3, 6, 9], time: 3, easing: Out-Quad}
`), 0o644))

	file, err := LoadSequenceFile(path)
	require.NoError(t, err)

	seq, err := file.Get("pos").Vec3()
	require.NoError(t, err)
	seq.AdvanceTo(1.5)
	v, err := seq.Now()
	require.NoError(t, err)
	assert.InDelta(t, 2.25, v.X, 1e-9)
	assert.InDelta(t, 6.75, v.Z, 1e-9)
}

func TestMarshalRoundTrip(t *testing.T) {
	file, err := LoadSequenceFile("testdata/sequences.yaml")
	require.NoError(t, err)

	data, err := file.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "value: 1.5\n", "single component written bare")
	assert.Contains(t, string(data), "value: [100, 50]\n", "vectors written as flow lists")

	again, err := ParseSequenceFile(data)
	require.NoError(t, err)
	assert.Equal(t, file, again)
}
