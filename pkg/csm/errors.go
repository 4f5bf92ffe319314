package csm

import (
	"errors"
	"fmt"

	"github.com/ftomassetti/javaparser/pkg/jast"
)

// ErrConfiguration marks a defect in a rendering description, as opposed to a
// problem with the data being rendered.
var ErrConfiguration = errors.New("csm configuration defect")

// ConfigError reports a missing or malformed rendering description.
type ConfigError struct {
	Kind   jast.NodeKind
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrConfiguration, e.Kind, e.Reason)
}

// Is makes errors.Is(err, ErrConfiguration) hold.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}
