package predicate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/Knetic/govaluate.v3"

	"github.com/dmitrymomot/inputguard/pkg/validator"
)

// ExpressionOption configures Expression.
type ExpressionOption func(*expressionConfig)

type expressionConfig struct {
	separator string
}

// WithSeparator sets the decimal separator understood by number(). Default ".".
func WithSeparator(sep string) ExpressionOption {
	return func(c *expressionConfig) {
		if sep != "" {
			c.separator = sep
		}
	}
}

// Expression compiles expr into a predicate. The expression sees the
// parameters text (string) and length (character count) and may call
//
//	len(s)          character count
//	trim(s)         s without surrounding whitespace
//	lower(s)        lower-cased s
//	upper(s)        upper-cased s
//	contains(s, t)  whether s contains t
//	number(s)       s parsed as a decimal number
//
// The expression must evaluate to a boolean.
func Expression(expr string, opts ...ExpressionOption) (validator.Predicate, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, ErrEmptyExpression
	}

	cfg := expressionConfig{separator: "."}
	for _, opt := range opts {
		opt(&cfg)
	}

	compiled, err := govaluate.NewEvaluableExpressionWithFunctions(expr, functions(cfg.separator))
	if err != nil {
		return nil, errors.Join(ErrInvalidExpression, err)
	}

	return func(text string) (bool, error) {
		result, err := compiled.Evaluate(map[string]interface{}{
			"text":   text,
			"length": float64(utf8.RuneCountInString(text)),
		})
		if err != nil {
			return false, errors.Join(ErrEvaluation, err)
		}
		ok, isBool := result.(bool)
		if !isBool {
			return false, fmt.Errorf("%w: got %T", ErrNotBoolean, result)
		}
		return ok, nil
	}, nil
}

func functions(sep string) map[string]govaluate.ExpressionFunction {
	return map[string]govaluate.ExpressionFunction{
		"len": stringFunc("len", func(s string) (interface{}, error) {
			return float64(utf8.RuneCountInString(s)), nil
		}),
		"trim": stringFunc("trim", func(s string) (interface{}, error) {
			return strings.TrimSpace(s), nil
		}),
		"lower": stringFunc("lower", func(s string) (interface{}, error) {
			return strings.ToLower(s), nil
		}),
		"upper": stringFunc("upper", func(s string) (interface{}, error) {
			return strings.ToUpper(s), nil
		}),
		"number": stringFunc("number", func(s string) (interface{}, error) {
			return parseNumber(strings.TrimSuffix(s, "%"), sep)
		}),
		"contains": func(args ...interface{}) (interface{}, error) {
			if len(args) != 2 {
				return nil, fmt.Errorf("%w: contains expects 2 arguments, got %d", ErrBadArgument, len(args))
			}
			s, ok1 := args[0].(string)
			sub, ok2 := args[1].(string)
			if !ok1 || !ok2 {
				return nil, fmt.Errorf("%w: contains expects strings", ErrBadArgument)
			}
			return strings.Contains(s, sub), nil
		},
	}
}

// stringFunc adapts a one-string-argument function to govaluate.
func stringFunc(name string, fn func(string) (interface{}, error)) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: %s expects 1 argument, got %d", ErrBadArgument, name, len(args))
		}
		s, ok := args[0].(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s expects a string, got %T", ErrBadArgument, name, args[0])
		}
		return fn(s)
	}
}

func parseNumber(s, sep string) (float64, error) {
	s = strings.TrimSpace(s)
	if sep != "." {
		if strings.Contains(s, ".") {
			return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s)
		}
		s = strings.Replace(s, sep, ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}
	return v, nil
}
