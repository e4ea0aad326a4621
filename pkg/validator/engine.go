package validator

import (
	"errors"
	"log/slog"

	"github.com/dmitrymomot/inputguard/pkg/locale"
	"github.com/dmitrymomot/inputguard/pkg/logger"
)

// Predicate contributes an additional opinion on a text. Its verdict is
// ANDed with the built-in checks; a returned error propagates to the caller.
type Predicate func(text string) (bool, error)

// Engine decides whether a text is acceptable for the active classification
// and limits. An Engine has a single owner: configuration must not change
// while an evaluation is in progress.
type Engine struct {
	classification   Classification
	patterns         *PatternTable
	numbers          NumberRange
	lengths          LengthRange
	maxDecimalDigits int
	emptyIsValid     bool
	external         Predicate
	strict           bool
	log              *slog.Logger
}

// Option configures an Engine created with New.
type Option func(*Engine) error

// WithClassification sets the active classification.
func WithClassification(c Classification) Option {
	return func(e *Engine) error { return e.SetClassification(c) }
}

// WithSeparator sets the decimal separator. The default comes from the process locale.
func WithSeparator(sep string) Option {
	return func(e *Engine) error { return e.SetSeparator(sep) }
}

func WithNumberRange(min, max Bound) Option {
	return func(e *Engine) error { return e.SetNumberRange(min, max) }
}

func WithLengthRange(min, max int) Option {
	return func(e *Engine) error { return e.SetLengthRange(min, max) }
}

func WithMaxDecimalDigits(n int) Option {
	return func(e *Engine) error { return e.SetMaxDecimalDigits(n) }
}

func WithEmptyIsValid(valid bool) Option {
	return func(e *Engine) error {
		e.SetEmptyIsValid(valid)
		return nil
	}
}

func WithCustomPattern(pattern string) Option {
	return func(e *Engine) error { return e.SetCustomPattern(pattern) }
}

// WithExternal installs an external predicate. Nil is ignored.
func WithExternal(p Predicate) Option {
	return func(e *Engine) error {
		if p != nil {
			e.SetExternal(p)
		}
		return nil
	}
}

// WithLogger sets the logger used to report rejected configuration and
// internal errors. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) error {
		if l != nil {
			e.log = l
		}
		return nil
	}
}

// WithStrictParsing makes Evaluate panic instead of returning ErrParserMismatch.
// Intended for tests and development builds.
func WithStrictParsing() Option {
	return func(e *Engine) error {
		e.strict = true
		return nil
	}
}

// New creates an Engine. Defaults: Custom classification with
// DefaultCustomPattern, the process locale separator, no limits, empty
// text invalid. Every failing option is reported in the joined error.
func New(opts ...Option) (*Engine, error) {
	patterns, err := NewPatternTable(locale.Default())
	if err != nil {
		// Locales with an exotic separator still get a usable engine.
		patterns, err = NewPatternTable(locale.FallbackSeparator)
		if err != nil {
			return nil, err
		}
	}

	e := &Engine{
		classification:   Custom,
		patterns:         patterns,
		lengths:          NoLengthLimit(),
		maxDecimalDigits: Unlimited,
		log:              logger.Discard(),
	}

	var errs []error
	for _, opt := range opts {
		if err := opt(e); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return e, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Engine {
	e, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Engine) Classification() Classification { return e.classification }

func (e *Engine) Separator() string { return e.patterns.Separator() }

func (e *Engine) Patterns() *PatternTable { return e.patterns }

func (e *Engine) CustomPattern() string { return e.patterns.CustomPattern() }

func (e *Engine) NumberRange() NumberRange { return e.numbers }

func (e *Engine) MinNumber() Bound { return e.numbers.Min }

func (e *Engine) MaxNumber() Bound { return e.numbers.Max }

func (e *Engine) LengthRange() LengthRange { return e.lengths }

func (e *Engine) MinLength() int { return e.lengths.Min }

func (e *Engine) MaxLength() int { return e.lengths.Max }

func (e *Engine) MaxDecimalDigits() int { return e.maxDecimalDigits }

func (e *Engine) EmptyIsValid() bool { return e.emptyIsValid }

// HasExternal reports whether an external predicate is installed.
func (e *Engine) HasExternal() bool { return e.external != nil }

func (e *Engine) SetClassification(c Classification) error {
	if !c.Valid() {
		return e.reject("classification", ErrUnknownClassification)
	}
	e.classification = c
	return nil
}

// SetSeparator rebuilds the numeric patterns for sep. The custom pattern is kept.
func (e *Engine) SetSeparator(sep string) error {
	next, err := e.patterns.WithSeparator(sep)
	if err != nil {
		return e.reject("separator", err)
	}
	e.patterns = next
	return nil
}

// SetNumberRange replaces both number bounds at once.
func (e *Engine) SetNumberRange(min, max Bound) error {
	r := NumberRange{Min: min, Max: max}
	if err := r.Validate(); err != nil {
		return e.reject("number_range", err)
	}
	e.numbers = r
	return nil
}

// SetMinNumber changes the lower bound. A set value above the current set
// maximum is rejected.
func (e *Engine) SetMinNumber(min Bound) error {
	return e.SetNumberRange(min, e.numbers.Max)
}

// SetMaxNumber changes the upper bound. A set value below the current set
// minimum is rejected.
func (e *Engine) SetMaxNumber(max Bound) error {
	return e.SetNumberRange(e.numbers.Min, max)
}

// SetLengthRange replaces both length bounds at once.
func (e *Engine) SetLengthRange(min, max int) error {
	r := LengthRange{Min: min, Max: max}
	if err := r.Validate(); err != nil {
		return e.reject("length_range", err)
	}
	e.lengths = r
	return nil
}

func (e *Engine) SetMinLength(min int) error {
	return e.SetLengthRange(min, e.lengths.Max)
}

func (e *Engine) SetMaxLength(max int) error {
	return e.SetLengthRange(e.lengths.Min, max)
}

// SetMaxDecimalDigits limits the fractional digits kept by Reformat.
// Unlimited (-1) disables reformatting.
func (e *Engine) SetMaxDecimalDigits(n int) error {
	if n < Unlimited {
		return e.reject("max_decimal_digits", ErrInvalidDigits)
	}
	e.maxDecimalDigits = n
	return nil
}

func (e *Engine) SetEmptyIsValid(valid bool) {
	e.emptyIsValid = valid
}

// SetCustomPattern replaces the pattern used by the Custom classification.
// Blank and non-compiling patterns are rejected and the previous pattern
// stays active. A valid pattern is accepted even if it never matches.
func (e *Engine) SetCustomPattern(pattern string) error {
	next, err := e.patterns.WithCustom(pattern)
	if err != nil {
		return e.reject("custom_pattern", err)
	}
	e.patterns = next
	return nil
}

// SetExternal installs p as the external predicate. Nil removes it.
func (e *Engine) SetExternal(p Predicate) {
	e.external = p
}

func (e *Engine) reject(setting string, err error) error {
	e.log.Debug("configuration change rejected",
		logger.Setting(setting),
		logger.Classification(e.classification),
		logger.Error(err),
	)
	return err
}
