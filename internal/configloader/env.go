package configloader

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ftomassetti/javaparser/pkg/config"
)

// envVarPrefix is the prefix for all jlpp environment variables.
const envVarPrefix = "JLPP_"

type envMapping struct {
	description string
	apply       func(o *Overrides, value, name string) error
}

//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"INDENT": {
		description: `One level of indentation; "tab" or a number of spaces is accepted`,
		apply: func(o *Overrides, value, _ string) error {
			indent := ParseIndent(value)
			o.Indent = &indent
			return nil
		},
	},
	"EOL": {
		description: "Line break for new text: lf, crlf or cr",
		apply: func(o *Overrides, value, name string) error {
			eol, err := config.ParseEndOfLine(value)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			o.EndOfLine = &eol
			return nil
		},
	},
	"INDENT_INSERTED": {
		description: "Re-indent inserted multi-line code: true or false",
		apply: func(o *Overrides, value, name string) error {
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", name, value)
			}
			o.IndentInserted = &b
			return nil
		},
	},
	"JOBS": {
		description: "Number of files checked concurrently (0 = auto)",
		apply: func(o *Overrides, value, name string) error {
			jobs, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid integer for %s: %q", name, value)
			}
			o.Jobs = &jobs
			return nil
		},
	},
	"IGNORE": {
		description: "Comma-separated list of ignore patterns",
		apply: func(o *Overrides, value, _ string) error {
			o.Ignore = parseSliceValue(value)
			return nil
		},
	},
}

// FromEnv reads JLPP_* variables through lookup. Empty values are ignored.
func FromEnv(lookup func(key string) (string, bool)) (*Overrides, error) {
	overrides := &Overrides{}

	for _, suffix := range sortedSuffixes() {
		name := envVarPrefix + suffix
		value, ok := lookup(name)
		if !ok || value == "" {
			continue
		}
		if err := envMappings[suffix].apply(overrides, value, name); err != nil {
			return nil, err
		}
	}

	return overrides, nil
}

// ParseIndent turns "tab", "tabs" or a space count into indentation.
// Anything else is used literally.
func ParseIndent(value string) string {
	switch strings.ToLower(value) {
	case "tab", "tabs":
		return "\t"
	}
	if n, err := strconv.Atoi(value); err == nil && n > 0 {
		return strings.Repeat(" ", n)
	}
	return value
}

// parseSliceValue splits a comma-separated list, trimming each element.
func parseSliceValue(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func sortedSuffixes() []string {
	suffixes := make([]string, 0, len(envMappings))
	for suffix := range envMappings {
		suffixes = append(suffixes, suffix)
	}
	sort.Strings(suffixes)
	return suffixes
}

// ListEnvVars returns every supported environment variable with its
// description.
func ListEnvVars() map[string]string {
	out := make(map[string]string, len(envMappings))
	for suffix, mapping := range envMappings {
		out[envVarPrefix+suffix] = mapping.description
	}
	return out
}
