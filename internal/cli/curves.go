package cli

import (
	"fmt"
	"strings"

	"charm.land/log/v2"
	"github.com/spf13/cobra"

	"github.com/decker502/keyframe/pkg/easing"
)

func init() {
	curvesCmd.Flags().IntP("samples", "n", 0, "Print this many evenly spaced samples per curve (at least 2)")
}

var curvesCmd = &cobra.Command{
	Use:   "curves",
	Short: "List the easing catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		samples, err := cmd.Flags().GetInt("samples")
		if err != nil {
			return fmt.Errorf("failed to get samples flag: %w", err)
		}
		if samples == 1 || samples < 0 {
			return fmt.Errorf("--samples must be 0 or at least 2, got %d", samples)
		}

		names := easing.Names()
		log.Debug("listing curves", "count", len(names), "samples", samples)

		out := cmd.OutOrStdout()
		if samples == 0 {
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			return nil
		}

		xs := make([]string, samples)
		for i := range samples {
			xs[i] = fmt.Sprintf("%7.3f", sampleX(i, samples))
		}
		fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%-16s %s", "x", strings.Join(xs, " "))))

		for _, name := range names {
			fn, _ := easing.Lookup(name)
			fmt.Fprintf(out, "%-16s %s\n", name, formatSamples(fn, samples))
		}
		return nil
	},
}

func sampleX(i, n int) float64 {
	return float64(i) / float64(n-1)
}

func formatSamples(fn easing.Function, n int) string {
	ys := make([]string, n)
	for i := range n {
		ys[i] = fmt.Sprintf("%7.3f", fn.Eval(sampleX(i, n)))
	}
	return strings.Join(ys, " ")
}
