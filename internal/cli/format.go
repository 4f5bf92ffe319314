package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ftomassetti/javaparser/internal/logging"
	"github.com/ftomassetti/javaparser/internal/ui/pretty"
	"github.com/ftomassetti/javaparser/pkg/config"
	"github.com/ftomassetti/javaparser/pkg/fsutil"
	"github.com/ftomassetti/javaparser/pkg/runner"
)

// errNotFormatted is the finding of format --check.
var errNotFormatted = errors.New("not in canonical layout")

// errFormatted marks a file that format rewrote.
var errFormatted = errors.New("reformatted")

type formatFlags struct {
	settingsFlags
	check  bool
	backup bool
}

func newFormatCommand(root *rootFlags) *cobra.Command {
	flags := &formatFlags{}

	cmd := &cobra.Command{
		Use:   "format [paths...]",
		Short: "Rewrite Java files in canonical layout",
		Long: `Rewrite every Java file under the given paths in canonical layout.

Files are replaced atomically. A file that changed on disk while it was
being formatted is left alone and reported. With --check nothing is
written; files that would change are listed and the command fails.

Examples:
  jlpp format src/            Reformat src/ in place
  jlpp format --backup src/   Keep the originals as *.jlpp.orig
  jlpp format --check         List files that are not canonical`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, root, flags, args)
		},
	}

	flags.addPrinterFlags(cmd)
	flags.addRunFlags(cmd)
	cmd.Flags().BoolVar(&flags.check, "check", false, "list files that would change without writing them")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "keep each original file next to it with a .jlpp.orig suffix")

	return cmd
}

func runFormat(cmd *cobra.Command, root *rootFlags, flags *formatFlags, args []string) error {
	cfg, workDir, err := loadSettings(cmd, root, &flags.settingsFlags)
	if err != nil {
		return err
	}

	r := runner.New(formatChecker(cfg, flags))
	r.Logger = logging.Default()

	result, err := r.Run(commandContext(cmd), runOptions(cfg, workDir, args))
	if err != nil {
		return fmt.Errorf("format run failed: %w", err)
	}

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(root.color, out))

	var changed, broken int
	for _, outcome := range result.Failed() {
		name := displayPath(workDir, outcome.Path)

		var line string
		switch {
		case errors.Is(outcome.Error, errFormatted):
			changed++
			line = "formatted " + styles.FilePath.Render(name) + "\n"
		case errors.Is(outcome.Error, errNotFormatted):
			changed++
			line = "would reformat " + styles.FilePath.Render(name) + "\n"
		default:
			broken++
			line = styles.FormatOutcome(outcome, name)
		}
		if _, err := io.WriteString(out, line); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	logging.Default().Debug("format complete",
		logging.FieldFilesChecked, result.Stats.FilesChecked,
		"changed", changed,
		logging.FieldFilesFailed, broken,
	)

	if broken > 0 || (flags.check && changed > 0) {
		return ErrCheckFailed
	}
	return nil
}

func formatChecker(cfg *config.Config, flags *formatFlags) runner.Checker {
	return runner.CheckerFunc(func(ctx context.Context, path string, _ []byte) error {
		snap, err := fsutil.Read(ctx, path)
		if err != nil {
			return err
		}

		canonical, err := canonicalSource(ctx, cfg, path, snap.Content)
		if err != nil {
			return err
		}
		if canonical == string(snap.Content) {
			return nil
		}
		if flags.check {
			return errNotFormatted
		}

		written, err := fsutil.Replace(ctx, snap, []byte(canonical), fsutil.ReplaceOptions{Backup: flags.backup})
		if err != nil {
			return err
		}
		if written {
			return errFormatted
		}
		return nil
	})
}
