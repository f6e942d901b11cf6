package reanim

import (
	"encoding/xml"
	"fmt"
	"os"
)

// ParseReanimFile reads and parses a Reanim file.
//
// Example:
//
//	r, err := ParseReanimFile("assets/reanim/PeaShooter.reanim")
//	if err != nil {
//	    log.Fatalf("Failed to parse reanim: %v", err)
//	}
//	fmt.Printf("Animation FPS: %d\n", r.FPS)
func ParseReanimFile(path string) (*ReanimXML, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reanim file '%s': %w", path, err)
	}

	r, err := ParseReanim(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML from '%s': %w", path, err)
	}
	return r, nil
}

// ParseReanim parses Reanim content. The format has no root element, so the
// content is wrapped in one before decoding.
func ParseReanim(data []byte) (*ReanimXML, error) {
	wrapped := make([]byte, 0, len(data)+len("<reanim></reanim>"))
	wrapped = append(wrapped, "<reanim>"...)
	wrapped = append(wrapped, data...)
	wrapped = append(wrapped, "</reanim>"...)

	var r ReanimXML
	if err := xml.Unmarshal(wrapped, &r); err != nil {
		return nil, err
	}
	if r.FPS <= 0 {
		return nil, fmt.Errorf("invalid fps %d", r.FPS)
	}
	return &r, nil
}

// Track returns the track with the given name, or nil.
func (r *ReanimXML) Track(name string) *Track {
	for i := range r.Tracks {
		if r.Tracks[i].Name == name {
			return &r.Tracks[i]
		}
	}
	return nil
}
