package parser

import (
	"fmt"

	"github.com/ftomassetti/javaparser/pkg/jast"
)

// SyntaxError reports input the parser does not accept.
type SyntaxError struct {
	Path    string
	Offset  int
	Pos     jast.Position
	Message string
}

func (e *SyntaxError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Pos.Line, e.Pos.Column, e.Message)
}
