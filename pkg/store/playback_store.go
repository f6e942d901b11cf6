// Package store persists playback positions of named sequences so a viewer
// or tool can resume where it stopped.
package store

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ErrNoSnapshot is returned when no position was recorded for a sequence.
var ErrNoSnapshot = errors.New("no playback snapshot")

const playbackObject = "playback"

// Snapshot is the saved position of one sequence.
type Snapshot struct {
	Name     string  `yaml:"name"`
	Time     float64 `yaml:"time"`
	Reversed bool    `yaml:"reversed,omitempty"`
}

// Seeker is anything whose playback position can be set directly.
// *keyframe.Sequence and config.Track both satisfy it.
type Seeker interface {
	AdvanceTo(t float64) bool
}

// PlaybackStore keeps snapshots in memory and mirrors them to gdata when a
// manager is available.
type PlaybackStore struct {
	gdataManager *gdata.Manager // may be nil: memory only
	snapshots    map[string]Snapshot
}

// NewPlaybackStore creates a store on top of gdataManager, which may be nil.
func NewPlaybackStore(gdataManager *gdata.Manager) *PlaybackStore {
	return &PlaybackStore{
		gdataManager: gdataManager,
		snapshots:    make(map[string]Snapshot),
	}
}

// Persistent reports whether snapshots survive the process.
func (ps *PlaybackStore) Persistent() bool {
	return ps.gdataManager != nil
}

// Save records snap and writes it through to disk when persistent.
func (ps *PlaybackStore) Save(snap Snapshot) error {
	if snap.Name == "" {
		return fmt.Errorf("failed to save snapshot: empty sequence name")
	}
	ps.snapshots[snap.Name] = snap

	if ps.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot %q: %w", snap.Name, err)
	}
	if err := ps.gdataManager.SaveObjectProp(playbackObject, snap.Name, data); err != nil {
		return fmt.Errorf("failed to save snapshot %q: %w", snap.Name, err)
	}

	log.Printf("[PlaybackStore] Saved %s at t=%.3f", snap.Name, snap.Time)
	return nil
}

// Load returns the snapshot for name, reading it from disk if it is not
// already cached.
func (ps *PlaybackStore) Load(name string) (Snapshot, error) {
	if snap, ok := ps.snapshots[name]; ok {
		return snap, nil
	}
	if ps.gdataManager == nil || !ps.gdataManager.ObjectPropExists(playbackObject, name) {
		return Snapshot{}, fmt.Errorf("%w for %q", ErrNoSnapshot, name)
	}

	data, err := ps.gdataManager.LoadObjectProp(playbackObject, name)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to load snapshot %q: %w", name, err)
	}

	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("failed to unmarshal snapshot %q: %w", name, err)
	}
	if snap.Name == "" {
		snap.Name = name
	}

	ps.snapshots[name] = snap
	return snap, nil
}

// Restore moves target to the saved position of name. A missing snapshot
// leaves target untouched and returns ErrNoSnapshot.
func (ps *PlaybackStore) Restore(name string, target Seeker) (Snapshot, error) {
	snap, err := ps.Load(name)
	if err != nil {
		return Snapshot{}, err
	}
	target.AdvanceTo(snap.Time)
	log.Printf("[PlaybackStore] Restored %s to t=%.3f", name, snap.Time)
	return snap, nil
}

// Forget drops the in-memory copy of name. Persisted data is kept.
func (ps *PlaybackStore) Forget(name string) {
	delete(ps.snapshots, name)
}

// Names lists the sequences with a cached snapshot, sorted.
func (ps *PlaybackStore) Names() []string {
	names := make([]string, 0, len(ps.snapshots))
	for name := range ps.snapshots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
