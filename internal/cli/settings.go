package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ftomassetti/javaparser/internal/configloader"
	"github.com/ftomassetti/javaparser/internal/logging"
	"github.com/ftomassetti/javaparser/pkg/config"
)

// settingsFlags are the command-line overrides for config file settings.
type settingsFlags struct {
	indent           string
	eol              string
	noIndentInserted bool
	ignore           []string
	jobs             int
	canonical        bool
}

func (f *settingsFlags) addPrinterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.indent, "indent", "", `indentation for new text: "tab" or a number of spaces`)
	cmd.Flags().StringVar(&f.eol, "eol", "", "line break for new text: lf, crlf, cr")
	cmd.Flags().BoolVar(&f.noIndentInserted, "no-indent-inserted", false,
		"insert multi-line code without re-indenting it")
}

func (f *settingsFlags) addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().IntVarP(&f.jobs, "jobs", "j", 0, "number of files processed at once (0 = auto)")
}

// overrides returns the flags the user actually set.
func (f *settingsFlags) overrides(cmd *cobra.Command) (*configloader.Overrides, error) {
	o := &configloader.Overrides{}
	changed := cmd.Flags().Changed

	if changed("indent") {
		indent := configloader.ParseIndent(f.indent)
		o.Indent = &indent
	}
	if changed("eol") {
		eol, err := config.ParseEndOfLine(f.eol)
		if err != nil {
			return nil, fmt.Errorf("%w: --eol: %w", ErrInvalidUsage, err)
		}
		o.EndOfLine = &eol
	}
	if changed("no-indent-inserted") {
		inserted := !f.noIndentInserted
		o.IndentInserted = &inserted
	}
	if changed("ignore") {
		o.Ignore = f.ignore
	}
	if changed("jobs") {
		o.Jobs = &f.jobs
	}
	if changed("canonical") {
		o.Canonical = &f.canonical
	}
	return o, nil
}

// loadSettings resolves the working directory and the merged configuration.
func loadSettings(cmd *cobra.Command, root *rootFlags, flags *settingsFlags) (*config.Config, string, error) {
	workDir, err := resolveWorkDir(root.workDir)
	if err != nil {
		return nil, "", err
	}

	o, err := flags.overrides(cmd)
	if err != nil {
		return nil, "", err
	}

	ctx := commandContext(cmd)
	result, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: root.configPath,
		Flags:        o,
	})
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrConfig, err)
	}

	cfg := result.Config
	logger := logging.Default()
	if len(result.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldPaths, result.LoadedFrom)
	}
	logger.Debug("configuration resolved",
		logging.FieldWorkingDir, workDir,
		logging.FieldIndent, fmt.Sprintf("%q", cfg.Indent),
		logging.FieldEndOfLine, cfg.EndOfLine,
		logging.FieldJobs, cfg.Jobs,
	)

	return cfg, workDir, nil
}

func resolveWorkDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return abs, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// displayPath shortens path relative to workDir when it lies below it.
func displayPath(workDir, path string) string {
	rel, err := filepath.Rel(workDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.ToSlash(rel)
}
