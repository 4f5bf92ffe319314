package lexical

import (
	"context"
	"fmt"

	"github.com/ftomassetti/javaparser/pkg/jast"
	"github.com/ftomassetti/javaparser/pkg/parser"
)

// RoundTripError reports a node whose printed text differs from its source.
type RoundTripError struct {
	Kind  jast.NodeKind
	Range jast.Range
	Want  string
	Got   string
}

func (e *RoundTripError) Error() string {
	return fmt.Sprintf("%s at [%d,%d) does not print back verbatim", e.Kind, e.Range.Start, e.Range.End)
}

// CheckRoundTrip parses src and verifies that, with no edits, every bound
// node prints exactly its source slice and that printing the reparsed output
// gives the same text again.
func CheckRoundTrip(ctx context.Context, path string, src []byte, opts ...Option) error {
	printed, err := printParsed(ctx, path, src, true, opts...)
	if err != nil {
		return err
	}

	again, err := printParsed(ctx, path, []byte(printed), false, opts...)
	if err != nil {
		return fmt.Errorf("reparse printed output: %w", err)
	}
	if again != printed {
		return &RoundTripError{Kind: jast.NodeCompilationUnit, Range: jast.Range{Start: 0, End: len(src)}, Want: printed, Got: again}
	}
	return nil
}

func printParsed(ctx context.Context, path string, src []byte, everyNode bool, opts ...Option) (string, error) {
	file, err := parser.Parse(ctx, path, src)
	if err != nil {
		return "", err
	}

	p, err := SetupFile(file, opts...)
	if err != nil {
		return "", err
	}
	defer p.Detach()

	if everyNode {
		err := jast.WalkText(file.Root, func(n *jast.Node) error {
			if !p.IsBound(n) {
				return nil
			}
			got, err := p.Print(n)
			if err != nil {
				return err
			}
			if want := string(src[n.Range.Start:n.Range.End]); got != want {
				return &RoundTripError{Kind: n.Kind, Range: n.Range, Want: want, Got: got}
			}
			return nil
		})
		if err != nil {
			return "", err
		}
	}

	return p.Print(file.Root)
}
