package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ftomassetti/javaparser/internal/logging"
	"github.com/ftomassetti/javaparser/pkg/config"
	"github.com/ftomassetti/javaparser/pkg/csm"
	"github.com/ftomassetti/javaparser/pkg/lexical"
	"github.com/ftomassetti/javaparser/pkg/parser"
)

const stdinPath = "-"

type printFlags struct {
	settingsFlags
	member bool
}

func newPrintCommand(root *rootFlags) *cobra.Command {
	flags := &printFlags{}

	cmd := &cobra.Command{
		Use:   "print <file|->",
		Short: "Parse a Java file and print it back",
		Long: `Parse a Java file and print it to standard output.

By default the lexical-preserving printer is used, so the output is the
input byte for byte. With --canonical the tree is printed in canonical
layout instead. Use "-" to read from standard input.

Examples:
  jlpp print src/Main.java              Print exactly as written
  jlpp print --canonical src/Main.java  Print in canonical layout
  echo 'int x = 1;' | jlpp print --member -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrint(cmd, root, flags, args[0])
		},
	}

	flags.addPrinterFlags(cmd)
	cmd.Flags().BoolVar(&flags.canonical, "canonical", false, "print in canonical layout")
	cmd.Flags().BoolVar(&flags.member, "member", false, "parse the input as a single class member")

	return cmd
}

func runPrint(cmd *cobra.Command, root *rootFlags, flags *printFlags, path string) error {
	cfg, workDir, err := loadSettings(cmd, root, &flags.settingsFlags)
	if err != nil {
		return err
	}

	var src []byte
	if path == stdinPath {
		src, err = io.ReadAll(cmd.InOrStdin())
	} else {
		if !filepath.IsAbs(path) {
			path = filepath.Join(workDir, path)
		}
		src, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	ctx := commandContext(cmd)
	parse := parser.Parse
	if flags.member {
		parse = parser.ParseMember
	}
	file, err := parse(ctx, path, src)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.Canonical {
		return csm.NewPrinter(cfg.CanonicalOptions()).Fprint(out, file.Root)
	}

	printer, err := lexical.SetupFile(file, cfg.LexicalOptions(logging.Default())...)
	if err != nil {
		return err
	}
	defer printer.Detach()

	return printer.Fprint(out, file.Root)
}

// canonicalSource parses src and returns it in canonical layout.
func canonicalSource(ctx context.Context, cfg *config.Config, path string, src []byte) (string, error) {
	file, err := parser.Parse(ctx, path, src)
	if err != nil {
		return "", err
	}
	text, err := csm.NewPrinter(cfg.CanonicalOptions()).Print(file.Root)
	if err != nil {
		return "", fmt.Errorf("print %s: %w", path, err)
	}
	return text, nil
}
