package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/inputguard/pkg/locale"
	"github.com/dmitrymomot/inputguard/pkg/predicate"
	"github.com/dmitrymomot/inputguard/pkg/validator"
)

// Field is the declarative configuration of one validation engine.
type Field struct {
	Classification   string  `env:"CLASSIFICATION" envDefault:"custom" yaml:"classification" json:"classification" validate:"required,classification"`
	Separator        string  `env:"DECIMAL_SEPARATOR" yaml:"separator" json:"separator,omitempty" validate:"omitempty,max=4"`
	Locale           string  `env:"LOCALE" yaml:"locale" json:"locale,omitempty" validate:"omitempty,locale"`
	MinNumber        float64 `env:"MIN_NUMBER" envDefault:"NaN" yaml:"min_number" json:"-"`
	MaxNumber        float64 `env:"MAX_NUMBER" envDefault:"NaN" yaml:"max_number" json:"-"`
	MinLength        int     `env:"MIN_LENGTH" envDefault:"-1" yaml:"min_length" json:"min_length" validate:"gte=-1"`
	MaxLength        int     `env:"MAX_LENGTH" envDefault:"-1" yaml:"max_length" json:"max_length" validate:"gte=-1"`
	MaxDecimalDigits int     `env:"MAX_DECIMAL_DIGITS" envDefault:"-1" yaml:"max_decimal_digits" json:"max_decimal_digits" validate:"gte=-1"`
	EmptyIsValid     bool    `env:"EMPTY_IS_VALID" yaml:"empty_is_valid" json:"empty_is_valid"`
	CustomPattern    string  `env:"CUSTOM_PATTERN" yaml:"custom_pattern" json:"custom_pattern,omitempty"`
	Expression       string  `env:"EXPRESSION" yaml:"expression" json:"expression,omitempty"`
	PhoneRegion      string  `env:"PHONE_REGION" yaml:"phone_region" json:"phone_region,omitempty" validate:"omitempty,len=2,alpha"`
}

// DefaultField returns a Field with every limit unset.
func DefaultField() Field {
	return Field{
		Classification:   validator.Custom.String(),
		MinNumber:        math.NaN(),
		MaxNumber:        math.NaN(),
		MinLength:        validator.Unlimited,
		MaxLength:        validator.Unlimited,
		MaxDecimalDigits: validator.Unlimited,
	}
}

var validate = newStructValidator()

func newStructValidator() *playground.Validate {
	v := playground.New(playground.WithRequiredStructEnabled())
	_ = v.RegisterValidation("classification", func(fl playground.FieldLevel) bool {
		_, err := validator.ParseClassification(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("locale", func(fl playground.FieldLevel) bool {
		_, err := locale.Parse(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks the field values that can be checked without building an engine.
func (f Field) Validate() error {
	if err := validate.Struct(f); err != nil {
		return errors.Join(ErrInvalidField, err)
	}
	return nil
}

// DecimalSeparator resolves the separator: an explicit Separator wins, then
// the separator of Locale, then the process locale.
func (f Field) DecimalSeparator() (string, error) {
	if f.Separator != "" {
		return f.Separator, nil
	}
	if f.Locale != "" {
		tag, err := locale.Parse(f.Locale)
		if err != nil {
			return "", errors.Join(ErrInvalidField, err)
		}
		return locale.DecimalSeparator(tag), nil
	}
	return locale.Default(), nil
}

// Predicate builds the external predicate described by Expression and
// PhoneRegion. It returns nil when neither is set.
func (f Field) Predicate() (validator.Predicate, error) {
	sep, err := f.DecimalSeparator()
	if err != nil {
		return nil, err
	}

	var preds []validator.Predicate
	if f.Expression != "" {
		p, err := predicate.Expression(f.Expression, predicate.WithSeparator(sep))
		if err != nil {
			return nil, errors.Join(ErrInvalidField, err)
		}
		preds = append(preds, p)
	}
	if f.PhoneRegion != "" {
		p, err := predicate.Phone(f.PhoneRegion)
		if err != nil {
			return nil, errors.Join(ErrInvalidField, err)
		}
		preds = append(preds, p)
	}
	return predicate.All(preds...), nil
}

// Engine builds a validation engine from the field. Extra options are
// applied after the field's own settings.
func (f Field) Engine(opts ...validator.Option) (*validator.Engine, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	classification, err := validator.ParseClassification(f.Classification)
	if err != nil {
		return nil, errors.Join(ErrInvalidField, err)
	}
	sep, err := f.DecimalSeparator()
	if err != nil {
		return nil, err
	}
	external, err := f.Predicate()
	if err != nil {
		return nil, err
	}

	options := []validator.Option{
		validator.WithSeparator(sep),
		validator.WithClassification(classification),
		validator.WithNumberRange(validator.NewBound(f.MinNumber), validator.NewBound(f.MaxNumber)),
		validator.WithLengthRange(f.MinLength, f.MaxLength),
		validator.WithMaxDecimalDigits(f.MaxDecimalDigits),
		validator.WithEmptyIsValid(f.EmptyIsValid),
		validator.WithExternal(external),
	}
	if f.CustomPattern != "" {
		options = append(options, validator.WithCustomPattern(f.CustomPattern))
	}

	e, err := validator.New(append(options, opts...)...)
	if err != nil {
		return nil, errors.Join(ErrInvalidField, err)
	}
	return e, nil
}

// LogValue implements slog.LogValuer.
func (f Field) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("classification", f.Classification),
		slog.String("min_number", formatBound(f.MinNumber)),
		slog.String("max_number", formatBound(f.MaxNumber)),
		slog.Int("min_length", f.MinLength),
		slog.Int("max_length", f.MaxLength),
		slog.Int("max_decimal_digits", f.MaxDecimalDigits),
		slog.Bool("empty_is_valid", f.EmptyIsValid),
	)
}

func formatBound(v float64) string {
	return validator.NewBound(v).String()
}

// FieldFromEngine describes the current configuration of e. Predicates are
// not recoverable from an engine and are left empty.
func FieldFromEngine(e *validator.Engine) Field {
	f := Field{
		Classification:   e.Classification().String(),
		Separator:        e.Separator(),
		MinNumber:        e.MinNumber().Float(),
		MaxNumber:        e.MaxNumber().Float(),
		MinLength:        e.MinLength(),
		MaxLength:        e.MaxLength(),
		MaxDecimalDigits: e.MaxDecimalDigits(),
		EmptyIsValid:     e.EmptyIsValid(),
	}
	if p := e.CustomPattern(); p != validator.DefaultCustomPattern {
		f.CustomPattern = p
	}
	return f
}

func (f Field) String() string {
	return fmt.Sprintf("%s[number=%s..%s length=%d..%d digits=%d empty=%t]",
		f.Classification, formatBound(f.MinNumber), formatBound(f.MaxNumber),
		f.MinLength, f.MaxLength, f.MaxDecimalDigits, f.EmptyIsValid)
}
