package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ftomassetti/javaparser/internal/logging"
	"github.com/ftomassetti/javaparser/pkg/config"
	"github.com/ftomassetti/javaparser/pkg/reporter"
	"github.com/ftomassetti/javaparser/pkg/runner"
)

type roundTripFlags struct {
	settingsFlags
	verbose bool
	summary bool
	format  string
	compact bool
}

func newRoundTripCommand(root *rootFlags) *cobra.Command {
	flags := &roundTripFlags{}

	cmd := &cobra.Command{
		Use:   "roundtrip [paths...]",
		Short: "Check that Java files print back unchanged",
		Long: `Parse every Java file under the given paths and check that printing the
unmodified tree reproduces the file byte for byte, for every node.

With --canonical, check instead that the canonical layout is stable:
printing, reparsing and printing again gives the same text.

Examples:
  jlpp roundtrip                   Check the current directory
  jlpp roundtrip src/ --summary    Check src/ and print a summary block
  jlpp roundtrip --canonical -j 4  Check canonical stability with 4 workers
  jlpp roundtrip -f json           Write results as JSON`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoundTrip(cmd, root, flags, args)
		},
	}

	flags.addRunFlags(cmd)
	cmd.Flags().BoolVar(&flags.canonical, "canonical", false, "check canonical output stability instead")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "list passing files too")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print a summary block instead of one line")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "output format: text, json, summary")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "write minified JSON")

	return cmd
}

func runRoundTrip(cmd *cobra.Command, root *rootFlags, flags *roundTripFlags, args []string) error {
	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	}
	if flags.summary && format == reporter.FormatText {
		format = reporter.FormatSummary
	}

	cfg, workDir, err := loadSettings(cmd, root, &flags.settingsFlags)
	if err != nil {
		return err
	}

	logger := logging.Default()
	checker := checkerFor(cfg)

	r := runner.New(checker)
	r.Logger = logger

	result, err := r.Run(commandContext(cmd), runOptions(cfg, workDir, args))
	if err != nil {
		return fmt.Errorf("roundtrip run failed: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:     cmd.OutOrStdout(),
		Format:     format,
		Color:      root.color,
		Verbose:    flags.verbose,
		Compact:    flags.compact,
		WorkingDir: workDir,
	})
	if err != nil {
		return err
	}
	if _, err := rep.Report(commandContext(cmd), result); err != nil {
		return err
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrCheckFailed
	}
	return nil
}

func checkerFor(cfg *config.Config) runner.Checker {
	if cfg.Canonical {
		return runner.IdempotenceChecker{Options: cfg.CanonicalOptions()}
	}
	return runner.RoundTripChecker{Options: cfg.LexicalOptions(nil)}
}

func runOptions(cfg *config.Config, workDir string, args []string) runner.Options {
	return runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
	}
}
