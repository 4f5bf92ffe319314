package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ftomassetti/javaparser/internal/logging"
	"github.com/ftomassetti/javaparser/pkg/config"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

const defaultConfigFile = ".jlpp.yml"

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand(root *rootFlags) *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new jlpp configuration file",
		Long: `Create a new .jlpp.yml configuration file in the current directory.
Every setting is documented; by default they are commented out so the
built-in defaults stay in effect.

Examples:
  jlpp init                       Create .jlpp.yml with commented settings
  jlpp init --full                Write every setting with its default value
  jlpp init --output custom.yml   Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd.OutOrStdout(), root, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Write every setting uncommented")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultConfigFile, "Output file path")

	return cmd
}

func runInit(out io.Writer, root *rootFlags, flags *initFlags) error {
	logger := logging.Default()

	workDir, err := resolveWorkDir(root.workDir)
	if err != nil {
		return err
	}

	outputPath := flags.output
	if !filepath.IsAbs(outputPath) {
		outputPath = filepath.Join(workDir, outputPath)
	}

	if _, err := os.Stat(outputPath); err == nil {
		if !flags.force {
			return fmt.Errorf("%w: file %q already exists; use --force to overwrite", ErrInvalidUsage, flags.output)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, flags.output)
	}

	content := config.GenerateTemplate(config.NewConfig(), config.TemplateOptions{Full: flags.full})
	if err := os.WriteFile(outputPath, content, configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	if _, err := fmt.Fprintf(out, "created %s\n", displayPath(workDir, outputPath)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
