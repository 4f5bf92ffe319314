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
	"github.com/ftomassetti/javaparser/pkg/fix"
	"github.com/ftomassetti/javaparser/pkg/runner"
)

// layoutDiff is the finding of the diff checker: the file is not in
// canonical layout.
type layoutDiff struct {
	diff *fix.Diff
}

func (d *layoutDiff) Error() string {
	return fmt.Sprintf("canonical layout differs (+%d -%d)", d.diff.Additions, d.diff.Deletions)
}

type diffFlags struct {
	settingsFlags
	exitCode bool
}

func newDiffCommand(root *rootFlags) *cobra.Command {
	flags := &diffFlags{}

	cmd := &cobra.Command{
		Use:   "diff [paths...]",
		Short: "Show how the canonical layout differs from the source",
		Long: `Print a unified diff between each Java file and its canonical layout.

Files already in canonical layout produce no output. Files that do not
parse are reported and make the command fail.

Examples:
  jlpp diff src/                 Diff every file under src/
  jlpp diff --exit-code Main.java  Fail if Main.java is not canonical
  jlpp diff --indent tab          Compare against tab-indented output`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, root, flags, args)
		},
	}

	flags.addPrinterFlags(cmd)
	flags.addRunFlags(cmd)
	cmd.Flags().BoolVar(&flags.exitCode, "exit-code", false, "exit with status 1 when any file differs")

	return cmd
}

func runDiff(cmd *cobra.Command, root *rootFlags, flags *diffFlags, args []string) error {
	cfg, workDir, err := loadSettings(cmd, root, &flags.settingsFlags)
	if err != nil {
		return err
	}

	r := runner.New(diffChecker(cfg, workDir))
	r.Logger = logging.Default()

	result, err := r.Run(commandContext(cmd), runOptions(cfg, workDir, args))
	if err != nil {
		return fmt.Errorf("diff run failed: %w", err)
	}

	out := cmd.OutOrStdout()
	colorEnabled := pretty.IsColorEnabled(root.color, out)
	styles := pretty.NewStyles(colorEnabled)

	var differing, broken int
	for _, outcome := range result.Failed() {
		var text string
		var finding *layoutDiff
		if errors.As(outcome.Error, &finding) {
			differing++
			text = finding.diff.FullString()
			if colorEnabled {
				text = styles.DiffHeader.Render(finding.diff.GitHeader()) + "\n" + styles.FormatDiff(finding.diff)
			}
		} else {
			broken++
			text = styles.FormatOutcome(outcome, displayPath(workDir, outcome.Path))
		}
		if _, err := io.WriteString(out, text); err != nil {
			return fmt.Errorf("write diff: %w", err)
		}
	}

	logging.Default().Debug("diff complete",
		logging.FieldFilesChecked, result.Stats.FilesChecked,
		"differing", differing,
		logging.FieldFilesFailed, broken,
	)

	if broken > 0 || (flags.exitCode && differing > 0) {
		return ErrCheckFailed
	}
	return nil
}

func diffChecker(cfg *config.Config, workDir string) runner.Checker {
	return runner.CheckerFunc(func(ctx context.Context, path string, src []byte) error {
		canonical, err := canonicalSource(ctx, cfg, path, src)
		if err != nil {
			return err
		}
		name := displayPath(workDir, path)
		if diff := fix.GenerateNamedDiff(name, name, src, []byte(canonical)); diff.HasChanges() {
			return &layoutDiff{diff: diff}
		}
		return nil
	})
}
