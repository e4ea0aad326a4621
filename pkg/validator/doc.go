// Package validator implements the validation engine behind a text-entry
// field: it decides whether the current text is acceptable for a typed
// classification and a set of limits, and normalizes decimal texts to a
// maximum number of fractional digits.
//
// # Architecture
//
// Each Classification (Custom, Integer, Decimal, DecimalRestrictive,
// Percent, String, Email, URL) is a row in a lookup table that names its
// pattern builder, the kind of limit it carries and whether Reformat may
// rewrite it. The compiled patterns live in an immutable PatternTable built
// from the decimal separator; changing the separator or the custom pattern
// swaps the table.
//
// Core building blocks:
//   - Engine       – owns the configuration and evaluates texts
//   - PatternTable – classification to compiled pattern mapping
//   - NumberRange  – optional min/max Bound pair for numeric texts
//   - LengthRange  – min/max character count for String texts, -1 unset
//   - Predicate    – optional external opinion ANDed into the verdict
//
// # Usage
//
//	e, err := validator.New(
//	    validator.WithClassification(validator.Decimal),
//	    validator.WithSeparator("."),
//	    validator.WithNumberRange(validator.NewBound(0), validator.NewBound(10)),
//	    validator.WithMaxDecimalDigits(2),
//	)
//	if err != nil {
//	    return err
//	}
//
//	res, err := e.Process("3.14159") // res.Text == "3.14", res.Valid == true
//
// # Error Handling
//
// Setters validate paired limits together: a maximum below the current
// minimum, a negative length or an uncompilable custom pattern returns a
// sentinel error (ErrInvalidRange, ErrInvalidLength, ErrInvalidPattern, ...)
// and leaves the engine unchanged. Evaluate returns an error only when the
// external predicate fails (ErrExternalPredicate) or when a text matched a
// numeric pattern but could not be parsed (ErrParserMismatch). Engines built
// WithStrictParsing panic in the latter case.
//
// # Concurrency
//
// An Engine is not safe for concurrent mutation. Evaluation only reads the
// configuration, so concurrent Evaluate calls are safe as long as nothing
// changes the engine and the external predicate is itself safe.
package validator
