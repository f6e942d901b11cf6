// Package cli implements the keyframe command line tool.
package cli

import (
	"context"
	"os"

	"charm.land/lipgloss/v2"
	"charm.land/log/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

var headerStyle = lipgloss.NewStyle().Bold(true)

func init() {
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Debug logging")

	rootCmd.AddCommand(
		curvesCmd,
		evalCmd,
		sampleCmd,
		reanimCmd,
	)
}

var rootCmd = &cobra.Command{
	Use:   "keyframe",
	Short: "Inspect easing curves and keyframe sequences",
	Long:  "Inspect the easing catalog, evaluate curves and sample keyframe sequences defined in YAML.",
	Example: `
# List every easing curve
keyframe curves

# Print five samples of each curve
keyframe curves --samples 5

# Evaluate a CSS timing function
keyframe eval "cubic-bezier(0.25, 0.1, 0.25, 1)" 0 0.25 0.5 1

# Sample one sequence every 50ms
keyframe sample sequences.yaml --name slide --step 0.05

# Convert a Reanim animation and sample its head track
keyframe reanim PeaShooter.reanim --track head -o head.yaml
keyframe sample head.yaml
  `,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(cmd)
	},
}

func setupLogging(cmd *cobra.Command) {
	log.SetOutput(os.Stderr)
	if !term.IsTerminal(os.Stderr.Fd()) {
		log.SetColorProfile(colorprofile.NoTTY)
	}

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
