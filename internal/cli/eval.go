package cli

import (
	"fmt"
	"strconv"

	"charm.land/log/v2"
	"github.com/spf13/cobra"

	"github.com/decker502/keyframe/pkg/easing"
)

var evalCmd = &cobra.Command{
	Use:   "eval <easing> <x>...",
	Short: "Evaluate an easing curve at one or more points",
	Long: `Evaluate an easing curve by catalog name (see "keyframe curves") or as a CSS
timing function such as "cubic-bezier(0.42, 0, 0.58, 1)". Points outside [0, 1]
are evaluated as given.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fn, err := easing.Parse(args[0])
		if err != nil {
			return err
		}
		log.Debug("evaluating", "easing", args[0], "points", len(args)-1)

		out := cmd.OutOrStdout()
		for _, arg := range args[1:] {
			x, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return fmt.Errorf("failed to parse x %q: %w", arg, err)
			}
			fmt.Fprintf(out, "%g\t%.6f\n", x, fn.Eval(x))
		}
		return nil
	},
}
