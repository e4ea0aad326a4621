package predicate

import "errors"

var (
	// ErrEmptyExpression is returned when compiling a blank expression.
	ErrEmptyExpression = errors.New("empty expression")

	// ErrInvalidExpression is returned when an expression does not compile.
	ErrInvalidExpression = errors.New("invalid expression")

	// ErrEvaluation is returned when an expression fails at evaluation time.
	ErrEvaluation = errors.New("expression evaluation failed")

	// ErrNotBoolean is returned when an expression yields a non-boolean value.
	ErrNotBoolean = errors.New("expression result is not a boolean")

	// ErrNotNumeric is returned by the number() function for non-numeric text.
	ErrNotNumeric = errors.New("text is not numeric")

	// ErrBadArgument is returned when a function receives the wrong arguments.
	ErrBadArgument = errors.New("bad function argument")

	// ErrEmptyRegion is returned by Phone for an empty region code.
	ErrEmptyRegion = errors.New("empty phone region")
)
