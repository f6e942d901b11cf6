package cli

import (
	"fmt"
	"os"

	"charm.land/log/v2"
	"github.com/spf13/cobra"

	"github.com/decker502/keyframe/internal/reanim"
)

func init() {
	reanimCmd.Flags().StringSliceP("track", "t", nil, "Only export these tracks (repeatable)")
	reanimCmd.Flags().StringP("out", "o", "", "Write the definitions to this file instead of stdout")
}

var reanimCmd = &cobra.Command{
	Use:   "reanim <file.reanim>",
	Short: "Convert a Reanim animation into sequence definitions",
	Long: `Convert the part tracks of a Reanim file into sequence definitions that
"keyframe sample" and the showcase can play. Each part becomes a position
sequence, plus scale, skew and visibility sequences when the part uses them.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tracks, err := cmd.Flags().GetStringSlice("track")
		if err != nil {
			return fmt.Errorf("failed to get track flag: %w", err)
		}
		out, err := cmd.Flags().GetString("out")
		if err != nil {
			return fmt.Errorf("failed to get out flag: %w", err)
		}

		r, err := reanim.ParseReanimFile(args[0])
		if err != nil {
			return err
		}
		file, err := r.SequenceFile(tracks...)
		if err != nil {
			return fmt.Errorf("failed to convert %s: %w", args[0], err)
		}
		data, err := file.Marshal()
		if err != nil {
			return err
		}

		log.Info("converted reanim", "file", args[0], "fps", r.FPS, "sequences", len(file.Sequences))

		if out == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
		return nil
	},
}
