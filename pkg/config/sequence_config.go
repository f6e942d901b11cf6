package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/decker502/keyframe/pkg/easing"
	"github.com/decker502/keyframe/pkg/keyframe"
	"github.com/decker502/keyframe/pkg/tween"
	"github.com/decker502/keyframe/pkg/vector"
)

// ErrInvalidSequence wraps every validation failure of a sequence definition.
var ErrInvalidSequence = errors.New("invalid sequence definition")

// Kind selects the value type of a sequence definition.
type Kind string

const (
	KindScalar Kind = "scalar"
	KindVec2   Kind = "vec2"
	KindVec3   Kind = "vec3"
	KindVec4   Kind = "vec4"
	KindColor  Kind = "color"
)

// Dimensions returns how many components a value of this kind has.
func (k Kind) Dimensions() int {
	switch k {
	case KindScalar:
		return 1
	case KindVec2:
		return 2
	case KindVec3, KindColor:
		return 3
	case KindVec4:
		return 4
	}
	return 0
}

// SequenceFile is the root of a sequence definition document.
//
// Example:
//
//	version: "1"
//	sequences:
//	  - name: fade
//	    keyframes:
//	      - {value: 0.5, time: 0}
//	      - {value: 1.5, time: 0.3, easing: in_quad}
//	      - {value: 2.5, time: 1.0}
type SequenceFile struct {
	Version   string           `yaml:"version"`
	Sequences []SequenceConfig `yaml:"sequences"`
}

// SequenceConfig describes one named sequence.
type SequenceConfig struct {
	Name      string           `yaml:"name"`
	Kind      Kind             `yaml:"kind"`            // defaults to scalar
	Start     *float64         `yaml:"start,omitempty"` // initial playback time, nil = first keyframe
	Loop      bool             `yaml:"loop"`            // players wrap instead of stopping at the end
	Keyframes []KeyframeConfig `yaml:"keyframes"`
}

// KeyframeConfig describes one keyframe. Color sequences use Color instead of Value.
type KeyframeConfig struct {
	Value  Components `yaml:"value,omitempty"`
	Color  string     `yaml:"color,omitempty"`
	Time   float64    `yaml:"time"`
	Easing string     `yaml:"easing,omitempty"` // catalog name or cubic-bezier(...), defaults to linear
}

// Components is a list of numbers that may also be written as a bare scalar.
type Components []float64

// UnmarshalYAML accepts either `value: 1.5` or `value: [1, 2]`.
func (c *Components) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v float64
		if err := node.Decode(&v); err != nil {
			return err
		}
		*c = Components{v}
		return nil
	case yaml.SequenceNode:
		var vs []float64
		if err := node.Decode(&vs); err != nil {
			return err
		}
		*c = vs
		return nil
	}
	return fmt.Errorf("line %d: value must be a number or a list of numbers", node.Line)
}

// MarshalYAML writes a single component as a bare number and longer values
// as a flow list, the way definitions are usually written by hand.
func (c Components) MarshalYAML() (any, error) {
	if len(c) == 1 {
		return c[0], nil
	}
	var node yaml.Node
	if err := node.Encode([]float64(c)); err != nil {
		return nil, err
	}
	node.Style = yaml.FlowStyle
	return &node, nil
}

// Marshal encodes the document as YAML.
func (f *SequenceFile) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sequence file: %w", err)
	}
	return data, nil
}

// LoadSequenceFile loads a sequence definition file.
//
// Parameters:
//   - path: YAML file path, e.g. "data/sequences.yaml"
//
// Returns:
//   - *SequenceFile: the validated document with defaults filled in
//   - error: read, parse or validation failure
func LoadSequenceFile(path string) (*SequenceFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sequence file '%s': %w", path, err)
	}

	file, err := ParseSequenceFile(data)
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", path, err)
	}

	log.Printf("[SequenceConfig] Loaded %d sequences from %s (version=%s)",
		len(file.Sequences), path, file.Version)
	return file, nil
}

// ParseSequenceFile decodes and validates a sequence document.
func ParseSequenceFile(data []byte) (*SequenceFile, error) {
	var file SequenceFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse sequence file: %w", err)
	}

	if file.Version == "" {
		log.Printf("[SequenceConfig] Warning: sequence file has no version field")
	}

	// Defaults
	for i := range file.Sequences {
		seq := &file.Sequences[i]
		if seq.Kind == "" {
			seq.Kind = KindScalar
		}
		seq.Kind = Kind(strings.ToLower(string(seq.Kind)))
		for j := range seq.Keyframes {
			if seq.Keyframes[j].Easing == "" {
				seq.Keyframes[j].Easing = "linear"
			}
		}
	}

	if err := file.Validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

// Validate checks names, kinds, keyframe times, component counts and easings.
func (f *SequenceFile) Validate() error {
	seen := make(map[string]bool, len(f.Sequences))
	for i := range f.Sequences {
		seq := &f.Sequences[i]
		if seq.Name == "" {
			return fmt.Errorf("%w: sequence #%d has no name", ErrInvalidSequence, i)
		}
		if seen[seq.Name] {
			return fmt.Errorf("%w: duplicate sequence name %q", ErrInvalidSequence, seq.Name)
		}
		seen[seq.Name] = true

		if err := seq.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks a single sequence definition.
func (c *SequenceConfig) Validate() error {
	dims := c.Kind.Dimensions()
	if dims == 0 {
		return fmt.Errorf("%w: sequence %q: unknown kind %q", ErrInvalidSequence, c.Name, c.Kind)
	}

	for i, kf := range c.Keyframes {
		if kf.Time < 0 {
			return fmt.Errorf("%w: sequence %q keyframe %d: negative time %v", ErrInvalidSequence, c.Name, i, kf.Time)
		}
		if _, err := easing.Parse(kf.Easing); err != nil {
			return fmt.Errorf("%w: sequence %q keyframe %d: %v", ErrInvalidSequence, c.Name, i, err)
		}

		if c.Kind == KindColor {
			if _, err := vector.ParseHex(kf.Color); err != nil {
				return fmt.Errorf("%w: sequence %q keyframe %d: %v", ErrInvalidSequence, c.Name, i, err)
			}
			continue
		}
		if len(kf.Value) != dims {
			return fmt.Errorf("%w: sequence %q keyframe %d: %s needs %d components, got %d",
				ErrInvalidSequence, c.Name, i, c.Kind, dims, len(kf.Value))
		}
	}
	return nil
}

// Get returns the sequence with the given name, or nil.
func (f *SequenceFile) Get(name string) *SequenceConfig {
	for i := range f.Sequences {
		if f.Sequences[i].Name == name {
			return &f.Sequences[i]
		}
	}
	return nil
}

// Scalar builds a float64 sequence. The definition must be of kind scalar.
func (c *SequenceConfig) Scalar() (*keyframe.Sequence[float64], error) {
	if err := c.expectKind(KindScalar); err != nil {
		return nil, err
	}
	return build(c, tween.LerpFunc[float64](), func(kf KeyframeConfig) (float64, error) {
		return kf.Value[0], nil
	})
}

// Vec2 builds a vector.Vec2 sequence.
func (c *SequenceConfig) Vec2() (*keyframe.Sequence[vector.Vec2], error) {
	if err := c.expectKind(KindVec2); err != nil {
		return nil, err
	}
	return build(c, tween.BlenderFunc[vector.Vec2](), func(kf KeyframeConfig) (vector.Vec2, error) {
		return vector.Vec2From(kf.Value)
	})
}

// Vec3 builds a vector.Vec3 sequence.
func (c *SequenceConfig) Vec3() (*keyframe.Sequence[vector.Vec3], error) {
	if err := c.expectKind(KindVec3); err != nil {
		return nil, err
	}
	return build(c, tween.BlenderFunc[vector.Vec3](), func(kf KeyframeConfig) (vector.Vec3, error) {
		return vector.Vec3From(kf.Value)
	})
}

// Vec4 builds a vector.Vec4 sequence.
func (c *SequenceConfig) Vec4() (*keyframe.Sequence[vector.Vec4], error) {
	if err := c.expectKind(KindVec4); err != nil {
		return nil, err
	}
	return build(c, tween.BlenderFunc[vector.Vec4](), func(kf KeyframeConfig) (vector.Vec4, error) {
		return vector.Vec4From(kf.Value)
	})
}

// Color builds a vector.Color sequence.
func (c *SequenceConfig) Color() (*keyframe.Sequence[vector.Color], error) {
	if err := c.expectKind(KindColor); err != nil {
		return nil, err
	}
	return build(c, tween.BlenderFunc[vector.Color](), func(kf KeyframeConfig) (vector.Color, error) {
		return vector.ParseHex(kf.Color)
	})
}

func (c *SequenceConfig) expectKind(k Kind) error {
	if c.Kind != k {
		return fmt.Errorf("%w: sequence %q is %s, not %s", ErrInvalidSequence, c.Name, c.Kind, k)
	}
	return nil
}

func build[T any](c *SequenceConfig, blend tween.BlendFunc[T], value func(KeyframeConfig) (T, error)) (*keyframe.Sequence[T], error) {
	frames := make([]keyframe.Keyframe[T], 0, len(c.Keyframes))
	for i, kf := range c.Keyframes {
		v, err := value(kf)
		if err != nil {
			return nil, fmt.Errorf("%w: sequence %q keyframe %d: %v", ErrInvalidSequence, c.Name, i, err)
		}
		fn, err := easing.Parse(kf.Easing)
		if err != nil {
			return nil, fmt.Errorf("%w: sequence %q keyframe %d: %v", ErrInvalidSequence, c.Name, i, err)
		}
		frames = append(frames, keyframe.New(v, kf.Time, fn))
	}

	seq, err := keyframe.NewSequenceFunc(blend, frames...)
	if err != nil {
		return nil, fmt.Errorf("sequence %q: %w", c.Name, err)
	}
	if c.Start != nil {
		seq.AdvanceTo(*c.Start)
	}
	return seq, nil
}
