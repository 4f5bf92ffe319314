package config

import (
	"github.com/charmbracelet/log"

	"github.com/ftomassetti/javaparser/pkg/csm"
	"github.com/ftomassetti/javaparser/pkg/lexical"
)

// CanonicalOptions returns the canonical printer settings.
func (c *Config) CanonicalOptions() csm.Options {
	return csm.Options{Indent: c.Indent, EndOfLine: c.EndOfLine.Sequence()}
}

// LexicalOptions returns the lexical printer settings. A nil logger leaves
// the package default in place.
func (c *Config) LexicalOptions(logger *log.Logger) []lexical.Option {
	opts := []lexical.Option{
		lexical.WithIndent(c.Indent),
		lexical.WithEndOfLine(c.EndOfLine.Sequence()),
		lexical.WithInsertedIndent(c.IndentInserted),
	}
	if logger != nil {
		opts = append(opts, lexical.WithLogger(logger))
	}
	return opts
}
