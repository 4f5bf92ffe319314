package runner

import (
	"context"

	"github.com/ftomassetti/javaparser/pkg/csm"
	"github.com/ftomassetti/javaparser/pkg/lexical"
)

// RoundTripChecker verifies that the lexical-preserving printer reproduces
// a file byte for byte.
type RoundTripChecker struct {
	Options []lexical.Option
}

// Name implements Checker.
func (RoundTripChecker) Name() string { return "roundtrip" }

// Check implements Checker.
func (c RoundTripChecker) Check(ctx context.Context, path string, src []byte) error {
	return lexical.CheckRoundTrip(ctx, path, src, c.Options...)
}

// IdempotenceChecker verifies that canonical printing is a fixed point.
type IdempotenceChecker struct {
	Options csm.Options
}

// Name implements Checker.
func (IdempotenceChecker) Name() string { return "canonical" }

// Check implements Checker.
func (c IdempotenceChecker) Check(ctx context.Context, path string, src []byte) error {
	_, err := csm.CheckIdempotent(ctx, path, src, c.Options)
	return err
}

// CheckerFunc adapts a function to Checker.
type CheckerFunc func(ctx context.Context, path string, src []byte) error

// Name implements Checker.
func (CheckerFunc) Name() string { return "func" }

// Check implements Checker.
func (f CheckerFunc) Check(ctx context.Context, path string, src []byte) error {
	return f(ctx, path, src)
}
