package configloader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ftomassetti/javaparser/pkg/config"
)

// ErrInvalidConfig marks configuration validation failures.
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidationError represents one configuration validation error.
type ValidationError struct {
	// Field is the name of the invalid setting.
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the problem.
	Message string

	// FilePath is the config file containing the error, if known.
	FilePath string
}

func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// Validate checks a resolved configuration. All problems are reported,
// joined.
func Validate(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	var errs []error

	if msg := checkIndent(cfg.Indent); msg != "" {
		errs = append(errs, &ValidationError{Field: "indent", Value: cfg.Indent, Message: msg})
	}
	if !cfg.EndOfLine.IsValid() {
		errs = append(errs, &ValidationError{
			Field:   "end_of_line",
			Value:   cfg.EndOfLine,
			Message: fmt.Sprintf("invalid end of line %q; must be one of: lf, crlf, cr", cfg.EndOfLine),
		})
	}
	if cfg.Jobs < 0 {
		errs = append(errs, &ValidationError{Field: "jobs", Value: cfg.Jobs, Message: "jobs must be >= 0 (0 means auto)"})
	}
	errs = append(errs, validateIgnorePatterns(cfg.Ignore)...)

	return errors.Join(errs...)
}

// ValidateFile checks the settings one config file sets, naming the file in
// every error.
func ValidateFile(o *Overrides, path string) error {
	cfg := o.Apply(config.NewConfig())

	err := Validate(cfg)
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		return err
	}
	for _, e := range joined.Unwrap() {
		var validationErr *ValidationError
		if errors.As(e, &validationErr) {
			validationErr.FilePath = path
		}
	}
	return err
}

func checkIndent(indent string) string {
	if indent == "" {
		return "indent must not be empty"
	}
	if strings.Trim(indent, " \t") != "" {
		return fmt.Sprintf("indent %q may contain only spaces and tabs", indent)
	}
	return ""
}

// validateIgnorePatterns checks that ignore patterns are valid globs.
func validateIgnorePatterns(patterns []string) []error {
	var errs []error
	for i, pattern := range patterns {
		if _, err := filepath.Match(pattern, ""); err != nil {
			errs = append(errs, &ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern: %v", err),
			})
		}
	}
	return errs
}
