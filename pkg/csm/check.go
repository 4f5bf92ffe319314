package csm

import (
	"context"
	"fmt"

	"github.com/ftomassetti/javaparser/pkg/parser"
)

// IdempotenceError reports canonical output that changes when it is parsed
// and printed again.
type IdempotenceError struct {
	First  string
	Second string
}

func (e *IdempotenceError) Error() string {
	return "canonical output is not stable under reparsing"
}

// CheckIdempotent parses src, prints it canonically, and verifies that
// parsing and printing the result gives the same text. It returns the
// canonical text.
func CheckIdempotent(ctx context.Context, path string, src []byte, opts Options) (string, error) {
	printer := NewPrinter(opts)

	first, err := printSource(ctx, printer, path, src)
	if err != nil {
		return "", err
	}

	second, err := printSource(ctx, printer, path, []byte(first))
	if err != nil {
		return "", fmt.Errorf("reparse canonical output: %w", err)
	}
	if first != second {
		return "", &IdempotenceError{First: first, Second: second}
	}
	return first, nil
}

func printSource(ctx context.Context, printer *Printer, path string, src []byte) (string, error) {
	file, err := parser.Parse(ctx, path, src)
	if err != nil {
		return "", err
	}
	return printer.Print(file.Root)
}
