// Package config defines the printer configuration shared by the jlpp command
// and the libraries it drives. These are plain data types; loading and
// merging live in internal/configloader.
package config

import (
	"fmt"
	"strings"
)

// EndOfLine names a line break sequence.
type EndOfLine string

const (
	EOLLF   EndOfLine = "lf"
	EOLCRLF EndOfLine = "crlf"
	EOLCR   EndOfLine = "cr"
)

// Sequence returns the characters written for the line break.
func (e EndOfLine) Sequence() string {
	switch e {
	case EOLCRLF:
		return "\r\n"
	case EOLCR:
		return "\r"
	default:
		return "\n"
	}
}

// IsValid reports whether e is a known line break.
func (e EndOfLine) IsValid() bool {
	switch e {
	case EOLLF, EOLCRLF, EOLCR:
		return true
	default:
		return false
	}
}

// ParseEndOfLine accepts a line break name, case-insensitively.
func ParseEndOfLine(s string) (EndOfLine, error) {
	eol := EndOfLine(strings.ToLower(strings.TrimSpace(s)))
	if !eol.IsValid() {
		return "", fmt.Errorf("invalid end of line %q: must be lf, crlf or cr", s)
	}
	return eol, nil
}

// Config is the root configuration structure for jlpp.
type Config struct {
	// Indent is one level of canonical indentation, spaces or tabs.
	Indent string `yaml:"indent"`

	// EndOfLine is the line break written for canonical and inserted text.
	EndOfLine EndOfLine `yaml:"end_of_line"`

	// IndentInserted re-indents multi-line text inserted into preserved code.
	IndentInserted bool `yaml:"indent_inserted"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `yaml:"ignore"`

	// CLI-level options (not persisted to config files).

	// Jobs is the number of files checked concurrently. 0 means GOMAXPROCS.
	Jobs int `yaml:"-"`

	// Canonical prints in canonical layout instead of preserving the source.
	Canonical bool `yaml:"-"`
}

// DefaultIndent is four spaces.
const DefaultIndent = "    "

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	return &Config{
		Indent:         DefaultIndent,
		EndOfLine:      EOLLF,
		IndentInserted: true,
		Ignore:         nil,
		Jobs:           0,
	}
}
