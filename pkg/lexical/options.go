package lexical

import (
	"github.com/charmbracelet/log"

	"github.com/ftomassetti/javaparser/internal/logging"
	"github.com/ftomassetti/javaparser/pkg/csm"
)

// Option configures a Printer.
type Option func(*settings)

type settings struct {
	indent         string
	endOfLine      string
	indentInserted bool
	registry       *csm.Registry
	logger         *log.Logger
}

func defaultSettings() settings {
	return settings{
		indent:         "    ",
		endOfLine:      "\n",
		indentInserted: true,
		registry:       csm.DefaultRegistry,
	}
}

// WithIndent sets the unit of indentation used for new text.
func WithIndent(indent string) Option {
	return func(s *settings) {
		if indent != "" {
			s.indent = indent
		}
	}
}

// WithEndOfLine sets the line break used for new text.
func WithEndOfLine(eol string) Option {
	return func(s *settings) {
		if eol != "" {
			s.endOfLine = eol
		}
	}
}

// WithInsertedIndent controls whether inserted multi-line children are
// re-indented to the column they are inserted at.
func WithInsertedIndent(enabled bool) Option {
	return func(s *settings) {
		s.indentInserted = enabled
	}
}

// WithRegistry replaces the concrete syntax descriptions.
func WithRegistry(registry *csm.Registry) Option {
	return func(s *settings) {
		if registry != nil {
			s.registry = registry
		}
	}
}

// WithLogger sets the logger for setup statistics and change handling.
func WithLogger(logger *log.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

func (s settings) log() *log.Logger {
	if s.logger != nil {
		return s.logger
	}
	return logging.Default()
}
