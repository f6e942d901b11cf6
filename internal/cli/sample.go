package cli

import (
	"fmt"
	"io"
	"strings"

	"charm.land/log/v2"
	"github.com/spf13/cobra"

	"github.com/decker502/keyframe/pkg/config"
)

// maxSampleRows stops runaway output from a tiny step on a long timeline.
const maxSampleRows = 100000

func init() {
	sampleCmd.Flags().StringP("name", "n", "", "Only sample the sequence with this name")
	sampleCmd.Flags().Float64P("step", "s", 0.1, "Time step between rows")
	sampleCmd.Flags().IntP("cycles", "c", 1, "Cycles to play for looping sequences")
}

var sampleCmd = &cobra.Command{
	Use:   "sample <file.yaml>",
	Short: "Print the values of keyframe sequences over time",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := cmd.Flags().GetString("name")
		if err != nil {
			return fmt.Errorf("failed to get name flag: %w", err)
		}
		step, err := cmd.Flags().GetFloat64("step")
		if err != nil {
			return fmt.Errorf("failed to get step flag: %w", err)
		}
		cycles, err := cmd.Flags().GetInt("cycles")
		if err != nil {
			return fmt.Errorf("failed to get cycles flag: %w", err)
		}
		if step <= 0 {
			return fmt.Errorf("--step must be positive, got %g", step)
		}
		if cycles < 1 {
			return fmt.Errorf("--cycles must be at least 1, got %d", cycles)
		}

		file, err := config.LoadSequenceFile(args[0])
		if err != nil {
			return err
		}

		var tracks []config.Track
		if name != "" {
			seq := file.Get(name)
			if seq == nil {
				return fmt.Errorf("sequence %q not found in %s", name, args[0])
			}
			t, err := seq.Track()
			if err != nil {
				return err
			}
			tracks = []config.Track{t}
		} else {
			tracks, err = file.Tracks()
			if err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		for i, t := range tracks {
			if i > 0 {
				fmt.Fprintln(out)
			}
			if err := sampleTrack(out, t, step, cycles); err != nil {
				return err
			}
		}
		return nil
	},
}

func sampleTrack(w io.Writer, t config.Track, step float64, cycles int) error {
	duration, err := t.Duration()
	if err != nil {
		return fmt.Errorf("sequence %q: %w", t.Name(), err)
	}
	log.Debug("sampling", "sequence", t.Name(), "kind", t.Kind(), "duration", duration, "loop", t.Loop())

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("# %s (%s, %gs)", t.Name(), t.Kind(), duration)))
	if err := writeRow(w, t); err != nil {
		return err
	}

	if duration <= 0 {
		return nil
	}

	wraps := 0
	for rows := 1; ; rows++ {
		if rows >= maxSampleRows {
			log.Warn("sample truncated", "sequence", t.Name(), "rows", rows)
			return nil
		}

		if t.Loop() {
			if t.AdvanceAndWrap(step) {
				wraps++
				if wraps >= cycles {
					return nil
				}
			}
		} else if t.AdvanceBy(step) {
			return writeRow(w, t)
		}

		if err := writeRow(w, t); err != nil {
			return err
		}
	}
}

func writeRow(w io.Writer, t config.Track) error {
	values, err := t.Components()
	if err != nil {
		return fmt.Errorf("sequence %q: %w", t.Name(), err)
	}

	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%.4f", v)
	}
	_, err = fmt.Fprintf(w, "%8.3f  %s\n", t.Time(), strings.Join(parts, " "))
	return err
}
