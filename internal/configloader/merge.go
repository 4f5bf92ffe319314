package configloader

import (
	"github.com/ftomassetti/javaparser/pkg/config"
)

// Overrides is a partial configuration: nil fields leave the setting they
// would override alone. Config files, the environment and flags each
// produce one.
type Overrides struct {
	Indent         *string           `yaml:"indent"`
	EndOfLine      *config.EndOfLine `yaml:"end_of_line"`
	IndentInserted *bool             `yaml:"indent_inserted"`
	Ignore         []string          `yaml:"ignore"`

	Jobs      *int  `yaml:"-"`
	Canonical *bool `yaml:"-"`
}

// Apply returns a copy of base with the set fields of o applied.
// Slices replace the base slice entirely when non-nil.
func (o *Overrides) Apply(base *config.Config) *config.Config {
	result := base.Clone()
	if o == nil {
		return result
	}

	if o.Indent != nil {
		result.Indent = *o.Indent
	}
	if o.EndOfLine != nil {
		result.EndOfLine = *o.EndOfLine
	}
	if o.IndentInserted != nil {
		result.IndentInserted = *o.IndentInserted
	}
	if o.Ignore != nil {
		result.Ignore = append([]string(nil), o.Ignore...)
	}
	if o.Jobs != nil {
		result.Jobs = *o.Jobs
	}
	if o.Canonical != nil {
		result.Canonical = *o.Canonical
	}

	return result
}

// MergeAll applies overrides in order, later ones taking precedence.
func MergeAll(base *config.Config, layers ...*Overrides) *config.Config {
	result := base
	for _, layer := range layers {
		result = layer.Apply(result)
	}
	return result
}
