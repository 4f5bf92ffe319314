// Package cli provides the Cobra command structure for jlpp.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ftomassetti/javaparser/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	debug      bool
	configPath string
	color      string
	workDir    string
}

// NewRootCommand creates the root jlpp command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "jlpp",
		Short: "Print Java source while preserving its layout",
		Long: `jlpp parses Java source and prints it back, either exactly as it was
written (lexical preservation) or in a canonical layout.

It can verify that a code base survives the parse/print round trip, show
how the canonical layout differs from the source, and reformat files in
place.`,
		Example: rootExample,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if flags.debug {
				logging.SetLevel("debug")
			}
			switch flags.color {
			case "auto", "always", "never":
				return nil
			default:
				return fmt.Errorf("%w: --color must be auto, always or never, got %q", ErrInvalidUsage, flags.color)
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().StringVarP(&flags.workDir, "chdir", "C", "",
		"run as if started in this directory")

	rootCmd.AddGroup(commandGroups()...)
	for _, sub := range []struct {
		cmd   *cobra.Command
		group string
	}{
		{newRoundTripCommand(flags), groupCheck},
		{newDiffCommand(flags), groupCheck},
		{newPrintCommand(flags), groupRewrite},
		{newFormatCommand(flags), groupRewrite},
		{newInitCommand(flags), groupSetup},
		{newVersionCommand(info), groupSetup},
	} {
		sub.cmd.GroupID = sub.group
		rootCmd.AddCommand(sub.cmd)
	}

	installHelp(rootCmd, &flags.color)

	return rootCmd
}
