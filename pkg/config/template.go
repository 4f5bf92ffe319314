package config

import (
	"bytes"
	"fmt"
	"strconv"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full writes every setting uncommented with its current value.
	// Otherwise only the header is live and settings are commented out.
	Full bool
}

// GenerateTemplate creates a commented .jlpp.yml for cfg. A nil cfg means
// the defaults.
func GenerateTemplate(cfg *Config, opts TemplateOptions) []byte {
	if cfg == nil {
		cfg = NewConfig()
	}

	prefix := "# "
	if opts.Full {
		prefix = ""
	}

	var buf bytes.Buffer
	buf.WriteString("# jlpp configuration\n")
	buf.WriteString("# Settings apply to canonical output and to text inserted into preserved code.\n\n")

	buf.WriteString("# One level of indentation.\n")
	fmt.Fprintf(&buf, "%sindent: %s\n\n", prefix, strconv.Quote(cfg.Indent))

	buf.WriteString("# Line break for new text: lf, crlf or cr.\n")
	fmt.Fprintf(&buf, "%send_of_line: %s\n\n", prefix, cfg.EndOfLine)

	buf.WriteString("# Re-indent multi-line code inserted into existing text.\n")
	fmt.Fprintf(&buf, "%sindent_inserted: %t\n\n", prefix, cfg.IndentInserted)

	buf.WriteString("# File patterns to skip (glob patterns).\n")
	if len(cfg.Ignore) == 0 {
		buf.WriteString("# ignore:\n#   - \"build/**\"\n")
		return buf.Bytes()
	}
	fmt.Fprintf(&buf, "%signore:\n", prefix)
	for _, pattern := range cfg.Ignore {
		fmt.Fprintf(&buf, "%s  - %s\n", prefix, strconv.Quote(pattern))
	}

	return buf.Bytes()
}
