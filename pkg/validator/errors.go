package validator

import "errors"

// Configuration errors. A setter returning one of these leaves the engine unchanged.
var (
	// ErrUnknownClassification is returned for a classification outside the known set.
	ErrUnknownClassification = errors.New("unknown classification")

	// ErrInvalidRange is returned when a set maximum number would fall below a set minimum.
	ErrInvalidRange = errors.New("invalid number range")

	// ErrInvalidLength is returned for negative lengths or a maximum length below the minimum.
	ErrInvalidLength = errors.New("invalid length range")

	// ErrInvalidDigits is returned when the maximum decimal digit count is below -1.
	ErrInvalidDigits = errors.New("invalid decimal digit limit")

	// ErrInvalidSeparator is returned for an empty decimal separator or one
	// containing digits, signs, '%' or whitespace.
	ErrInvalidSeparator = errors.New("invalid decimal separator")

	// ErrEmptyPattern is returned when a blank custom pattern is supplied.
	ErrEmptyPattern = errors.New("empty custom pattern")

	// ErrInvalidPattern is returned when a custom pattern does not compile.
	ErrInvalidPattern = errors.New("invalid custom pattern")
)

// Evaluation errors.
var (
	// ErrParserMismatch means a text passed its pattern but could not be parsed
	// as a number. It indicates the pattern table and the parser disagree.
	ErrParserMismatch = errors.New("text matched numeric pattern but failed to parse")

	// ErrExternalPredicate wraps an error returned by the external predicate.
	ErrExternalPredicate = errors.New("external predicate failed")
)
