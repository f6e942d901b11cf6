// cmd/keyframe/main.go
// Command line tool for the easing catalog and keyframe sequences.
//
// Usage:
//   go run ./cmd/keyframe curves --samples 5
//   go run ./cmd/keyframe sample pkg/config/testdata/sequences.yaml

package main

import "github.com/decker502/keyframe/internal/cli"

func main() {
	cli.Execute()
}
