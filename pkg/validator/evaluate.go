package validator

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/inputguard/pkg/logger"
)

// Result is the outcome of one Process cycle.
type Result struct {
	Valid       bool
	Text        string
	Reformatted bool
}

// Evaluate reports whether text is acceptable. The stages run in order and
// stop at the first failure:
//
//  1. empty text returns EmptyIsValid;
//  2. the whole text must match the classification pattern;
//  3. numeric texts must fall in the number range, String texts in the length range;
//  4. the external predicate, if any, must accept the text.
//
// A non-nil error always comes with a false verdict.
func (e *Engine) Evaluate(text string) (bool, error) {
	if text == "" {
		return e.emptyIsValid, nil
	}

	if !e.patterns.Match(e.classification, text) {
		return false, nil
	}

	ok, err := e.withinLimits(text)
	if err != nil || !ok {
		return false, err
	}

	if e.external == nil {
		return true, nil
	}
	ok, err = e.external(text)
	if err != nil {
		return false, errors.Join(ErrExternalPredicate, err)
	}
	return ok, nil
}

// Valid is Evaluate without the error. Any error counts as invalid.
func (e *Engine) Valid(text string) bool {
	ok, err := e.Evaluate(text)
	return ok && err == nil
}

// Reformat keeps at most MaxDecimalDigits fractional digits of a Decimal or
// DecimalRestrictive text and drops trailing fractional zeros. Digits are
// truncated, never rounded, so the integral part is never altered. Texts
// that do not qualify are returned unchanged.
func (e *Engine) Reformat(text string) string {
	if !e.classification.Reformattable() || e.maxDecimalDigits < 0 {
		return text
	}
	if !e.patterns.Match(e.classification, text) {
		return text
	}
	return truncateDecimal(text, e.patterns.Separator(), e.maxDecimalDigits)
}

// Process runs the text-changed cycle of an input field: evaluate, reformat
// a valid decimal text, then evaluate the reformatted text again. A
// reformatted text that no longer passes, e.g. truncated below the minimum
// number, is discarded and the valid input is kept.
func (e *Engine) Process(text string) (Result, error) {
	ok, err := e.Evaluate(text)
	if err != nil || !ok {
		return Result{Text: text}, err
	}

	formatted := e.Reformat(text)
	if formatted == text {
		return Result{Valid: true, Text: text}, nil
	}

	ok, err = e.Evaluate(formatted)
	if err != nil {
		return Result{Text: text}, err
	}
	if !ok {
		return Result{Valid: true, Text: text}, nil
	}
	return Result{Valid: true, Text: formatted, Reformatted: true}, nil
}

func (e *Engine) withinLimits(text string) (bool, error) {
	traits := classifications[e.classification]
	switch traits.limit {
	case limitNumber:
		v, err := e.parseNumber(strings.TrimSuffix(text, traits.suffix))
		if err != nil {
			return false, e.parserMismatch(text, err)
		}
		return e.numbers.Contains(v), nil
	case limitLength:
		return e.lengths.Contains(utf8.RuneCountInString(text)), nil
	default:
		return true, nil
	}
}

// parseNumber reads text written with the engine's decimal separator.
// Values too large for float64 parse as ±Inf and still compare correctly.
func (e *Engine) parseNumber(text string) (float64, error) {
	if sep := e.patterns.Separator(); sep != "." {
		text = strings.Replace(text, sep, ".", 1)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return v, nil
}

func (e *Engine) parserMismatch(text string, cause error) error {
	err := errors.Join(ErrParserMismatch, cause)
	if e.strict {
		panic(fmt.Errorf("validator: %s text %q: %w", e.classification, text, err))
	}
	e.log.Error("numeric text passed pattern but failed to parse",
		logger.Classification(e.classification),
		logger.Text(text),
		slog.String("separator", e.patterns.Separator()),
		logger.Error(err),
	)
	return err
}
