package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ftomassetti/javaparser/internal/configloader"
	"github.com/ftomassetti/javaparser/internal/ui/pretty"
)

// Command groups, in the order help lists them.
const (
	groupCheck   = "check"
	groupRewrite = "rewrite"
	groupSetup   = "setup"
)

func commandGroups() []*cobra.Group {
	return []*cobra.Group{
		{ID: groupCheck, Title: "Checking Java files:"},
		{ID: groupRewrite, Title: "Printing and rewriting:"},
		{ID: groupSetup, Title: "Setup:"},
	}
}

const rootExample = `  jlpp roundtrip src/main/java     Check that every file prints back unchanged
  jlpp diff Foo.java               Show Foo.java against its canonical layout
  jlpp format --check .            List files not in canonical layout
  cat Foo.java | jlpp print -      Print standard input back`

// helpRenderer writes help for any jlpp command. Color is decided when help
// is shown, after --color has been parsed.
type helpRenderer struct {
	color *string
}

func installHelp(root *cobra.Command, color *string) {
	h := &helpRenderer{color: color}

	root.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		if err := h.render(cmd.OutOrStdout(), cmd); err != nil {
			cmd.PrintErrln(err)
		}
	})
	root.SetUsageFunc(func(cmd *cobra.Command) error {
		return h.usage(cmd.OutOrStderr(), cmd, h.styles(cmd.OutOrStderr()))
	})
}

func (h *helpRenderer) styles(w io.Writer) *pretty.Styles {
	return pretty.NewStyles(pretty.IsColorEnabled(*h.color, w))
}

func (h *helpRenderer) render(w io.Writer, cmd *cobra.Command) error {
	styles := h.styles(w)

	var b strings.Builder
	if text := strings.TrimSpace(cmd.Long); text != "" {
		b.WriteString(text + "\n\n")
	} else if cmd.Short != "" {
		b.WriteString(cmd.Short + "\n\n")
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write help: %w", err)
	}

	return h.usage(w, cmd, styles)
}

func (h *helpRenderer) usage(w io.Writer, cmd *cobra.Command, styles *pretty.Styles) error {
	var b strings.Builder
	heading := func(title string) {
		b.WriteString("\n" + styles.SummaryTitle.Render(title) + "\n")
	}

	b.WriteString(styles.SummaryTitle.Render("Usage:") + "\n")
	if cmd.Runnable() {
		b.WriteString("  " + styles.FilePath.Render(cmd.UseLine()) + "\n")
	}
	if cmd.HasAvailableSubCommands() {
		b.WriteString("  " + styles.FilePath.Render(cmd.CommandPath()+" [command]") + "\n")
	}

	if cmd.HasExample() {
		heading("Examples:")
		b.WriteString(cmd.Example + "\n")
	}

	if cmd.HasAvailableSubCommands() {
		writeCommands(&b, cmd, styles, heading)
	}

	if cmd.HasAvailableLocalFlags() {
		heading("Flags:")
		b.WriteString(styleFlags(cmd.LocalFlags().FlagUsages(), styles))
	}
	if cmd.HasAvailableInheritedFlags() {
		heading("Global Flags:")
		b.WriteString(styleFlags(cmd.InheritedFlags().FlagUsages(), styles))
	}

	if !cmd.HasParent() {
		heading("Environment:")
		writeEnvironment(&b, styles)
		b.WriteString("\nSettings are read from .jlpp.yml, searched upward from the working\n" +
			"directory. Run " + styles.FilePath.Render("jlpp init") + " to create one.\n")
	}

	if cmd.HasAvailableSubCommands() {
		b.WriteString("\n" + styles.Dim.Render(
			fmt.Sprintf("Use %q for more information about a command.", cmd.CommandPath()+" [command] --help")) + "\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write usage: %w", err)
	}
	return nil
}

func writeCommands(b *strings.Builder, cmd *cobra.Command, styles *pretty.Styles, heading func(string)) {
	width := 0
	for _, sub := range cmd.Commands() {
		if sub.IsAvailableCommand() {
			width = max(width, len(sub.Name()))
		}
	}

	line := func(sub *cobra.Command) {
		name := sub.Name() + strings.Repeat(" ", width-len(sub.Name()))
		b.WriteString("  " + styles.FilePath.Render(name) + "  " + sub.Short + "\n")
	}

	for _, group := range cmd.Groups() {
		heading(group.Title)
		for _, sub := range cmd.Commands() {
			if sub.GroupID == group.ID && sub.IsAvailableCommand() {
				line(sub)
			}
		}
	}

	var rest []*cobra.Command
	for _, sub := range cmd.Commands() {
		if sub.GroupID == "" && sub.IsAvailableCommand() {
			rest = append(rest, sub)
		}
	}
	if len(rest) > 0 {
		heading("Additional Commands:")
		for _, sub := range rest {
			line(sub)
		}
	}
}

func writeEnvironment(b *strings.Builder, styles *pretty.Styles) {
	vars := configloader.ListEnvVars()
	names := make([]string, 0, len(vars))
	width := 0
	for name := range vars {
		names = append(names, name)
		width = max(width, len(name))
	}
	slices.Sort(names)

	for _, name := range names {
		padded := name + strings.Repeat(" ", width-len(name))
		b.WriteString("  " + styles.Location.Render(padded) + "  " + vars[name] + "\n")
	}
}

// styleFlags colors the flag names of pflag's usage block. Lines keep
// pflag's alignment; only the text before the description is styled.
func styleFlags(usages string, styles *pretty.Styles) string {
	var b strings.Builder
	for line := range strings.Lines(usages) {
		body := strings.TrimRight(line, "\n")
		trimmed := strings.TrimLeft(body, " ")
		indent := body[:len(body)-len(trimmed)]

		split := strings.Index(trimmed, "   ")
		if trimmed == "" || split < 0 {
			b.WriteString(line)
			continue
		}

		b.WriteString(indent + styles.Location.Render(trimmed[:split]) + trimmed[split:] + "\n")
	}
	return b.String()
}
