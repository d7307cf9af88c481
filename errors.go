package openhours

import (
	"errors"

	"github.com/roach88/openhours/internal/engine"
)

// InvalidExpressionError is the only error kind this package produces: a
// parse-time failure carrying the engine's structured diagnostic. All
// lexical, grammar and semantic failures collapse into it; queries on a
// successfully parsed Schedule never fail.
type InvalidExpressionError struct {
	Expression string
	Detail     *engine.ParseError
}

// Error renders the diagnostic as a multi-line message showing the
// offending source and the failure position.
func (e *InvalidExpressionError) Error() string {
	return "could not parse expression:\n" + e.Detail.Render()
}

func (e *InvalidExpressionError) Unwrap() error { return e.Detail }

// IsInvalidExpression reports whether err classifies as a parse failure.
// Uses errors.As to handle wrapped errors.
func IsInvalidExpression(err error) bool {
	var ie *InvalidExpressionError
	return errors.As(err, &ie)
}
