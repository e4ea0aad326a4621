package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Classification selects which pattern and which limit semantics apply to a text.
type Classification uint8

const (
	// Custom matches against a user-supplied pattern.
	Custom Classification = iota
	// Integer accepts an optionally signed run of digits.
	Integer
	// Decimal accepts "1", "1.", ".1" and "1.1" forms.
	Decimal
	// DecimalRestrictive accepts "1" and "1.1" forms only.
	DecimalRestrictive
	// Percent accepts a decimal number with an optional trailing '%'.
	Percent
	// String accepts any text containing at least one word character.
	String
	// Email accepts a single e-mail address.
	Email
	// URL accepts a single web address.
	URL

	classificationCount
)

type limitKind uint8

const (
	limitNone limitKind = iota
	limitNumber
	limitLength
)

// classificationTraits describes a Classification. Adding a classification
// means adding a row here.
type classificationTraits struct {
	name     string
	pattern  func(sep string) string
	limit    limitKind
	suffix   string
	reformat bool
}

var classifications = [classificationCount]classificationTraits{
	Custom: {
		name:    "custom",
		pattern: func(string) string { return DefaultCustomPattern },
	},
	Integer: {
		name:    "integer",
		pattern: func(string) string { return integerPattern },
		limit:   limitNumber,
	},
	Decimal: {
		name:     "decimal",
		pattern:  decimalPattern,
		limit:    limitNumber,
		reformat: true,
	},
	DecimalRestrictive: {
		name:     "decimal_restrictive",
		pattern:  restrictiveDecimalPattern,
		limit:    limitNumber,
		reformat: true,
	},
	Percent: {
		name:    "percent",
		pattern: percentPattern,
		limit:   limitNumber,
		suffix:  "%",
	},
	String: {
		name:    "string",
		pattern: func(string) string { return stringPattern },
		limit:   limitLength,
	},
	Email: {
		name:    "email",
		pattern: func(string) string { return emailPattern },
	},
	URL: {
		name:    "url",
		pattern: func(string) string { return urlPattern },
	},
}

// Classifications returns every known classification in declaration order.
func Classifications() []Classification {
	out := make([]Classification, 0, classificationCount)
	for c := Classification(0); c < classificationCount; c++ {
		out = append(out, c)
	}
	return out
}

// Valid reports whether c is a known classification.
func (c Classification) Valid() bool {
	return c < classificationCount
}

func (c Classification) String() string {
	if !c.Valid() {
		return fmt.Sprintf("classification(%d)", uint8(c))
	}
	return classifications[c].name
}

// IsNumeric reports whether texts of this classification are compared
// against the number range.
func (c Classification) IsNumeric() bool {
	return c.Valid() && classifications[c].limit == limitNumber
}

// Reformattable reports whether Reformat may rewrite texts of this classification.
func (c Classification) Reformattable() bool {
	return c.Valid() && classifications[c].reformat
}

// ParseClassification parses a classification name. Matching is
// case-insensitive and treats '-', '_' and ' ' as the same separator.
func ParseClassification(s string) (Classification, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	for c, t := range classifications {
		if t.name == norm {
			return Classification(c), nil
		}
	}
	return 0, errors.Join(ErrUnknownClassification, fmt.Errorf("%q", s))
}

func (c Classification) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, ErrUnknownClassification
	}
	return []byte(c.String()), nil
}

func (c *Classification) UnmarshalText(text []byte) error {
	parsed, err := ParseClassification(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
