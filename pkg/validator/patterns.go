package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/dmitrymomot/inputguard/pkg/cache"
)

// DefaultCustomPattern matches any non-empty single-line text. One trailing
// newline is tolerated.
const DefaultCustomPattern = `^.+\n?$`

const (
	integerPattern = `^[+-]?[0-9]+$`

	// Unicode-aware \w.
	word = `[\p{L}\p{N}_]`

	// At least one letter, digit or underscore anywhere in the text.
	stringPattern = `^[\s\S]*` + word + `[\s\S]*$`

	emailPattern = `^` + word + `+(?:[-+.]` + word + `+)*@` + word + `+(?:[-.]` + word + `+)*\.` + word + `+(?:[-.]` + word + `+)*$`

	urlPattern = `(?i)^(?:https?://|www\d{0,3}[.]|[a-z0-9.\-]+[.][a-z]{2,4}/)` +
		`(?:[^\s()<>]+|\((?:[^\s()<>]+|\([^\s()<>]+\))*\))+` +
		`(?:\((?:[^\s()<>]+|\([^\s()<>]+\))*\)|[^\s` + "`" + `!()\[\]{};:'".,<>?«»“”‘’])$`
)

// decimalBody accepts "1", "1.", "1.5" and ".5".
func decimalBody(sep string) string {
	q := regexp.QuoteMeta(sep)
	return fmt.Sprintf(`(?:[0-9]+(?:%[1]s[0-9]*)?|%[1]s[0-9]+)`, q)
}

func decimalPattern(sep string) string {
	return `^[+-]?` + decimalBody(sep) + `$`
}

// restrictiveDecimalPattern requires digits on both sides of the separator.
func restrictiveDecimalPattern(sep string) string {
	return fmt.Sprintf(`^[+-]?[0-9]+(?:%s[0-9]+)?$`, regexp.QuoteMeta(sep))
}

func percentPattern(sep string) string {
	return `^[+-]?` + decimalBody(sep) + `%?$`
}

// PatternTable maps every Classification to its compiled pattern.
// A table is immutable once built; WithCustom returns a modified copy.
type PatternTable struct {
	separator string
	custom    string
	patterns  [classificationCount]*regexp.Regexp
}

// Tables and custom patterns are shared between engines. Both are
// immutable once compiled.
var (
	tableCache  = cache.NewLRUCache[string, *PatternTable](16)
	customCache = cache.NewLRUCache[string, *regexp.Regexp](256)
)

// NewPatternTable returns the table for the given decimal separator.
// Tables are built once per separator and shared.
func NewPatternTable(separator string) (*PatternTable, error) {
	if err := validateSeparator(separator); err != nil {
		return nil, err
	}
	return tableCache.GetOrCreate(separator, func() (*PatternTable, error) {
		return buildPatternTable(separator)
	})
}

func buildPatternTable(separator string) (*PatternTable, error) {
	t := &PatternTable{separator: separator, custom: DefaultCustomPattern}
	for c, traits := range classifications {
		re, err := regexp.Compile(traits.pattern(separator))
		if err != nil {
			return nil, fmt.Errorf("compile %s pattern: %w", Classification(c), err)
		}
		t.patterns[c] = re
	}
	return t, nil
}

// Separator returns the decimal separator the numeric patterns were built from.
func (t *PatternTable) Separator() string {
	return t.separator
}

// CustomPattern returns the source of the pattern used for Custom.
func (t *PatternTable) CustomPattern() string {
	return t.custom
}

// Pattern returns the compiled pattern for c, or nil for an unknown classification.
func (t *PatternTable) Pattern(c Classification) *regexp.Regexp {
	if !c.Valid() {
		return nil
	}
	return t.patterns[c]
}

// Match reports whether text satisfies the pattern of c.
func (t *PatternTable) Match(c Classification, text string) bool {
	re := t.Pattern(c)
	return re != nil && re.MatchString(text)
}

// WithCustom returns a copy of the table using pattern for Custom.
func (t *PatternTable) WithCustom(pattern string) (*PatternTable, error) {
	re, err := compileCustomPattern(pattern)
	if err != nil {
		return nil, err
	}
	cp := *t
	cp.custom = pattern
	cp.patterns[Custom] = re
	return &cp, nil
}

// WithSeparator returns a table rebuilt for separator that keeps the current custom pattern.
func (t *PatternTable) WithSeparator(separator string) (*PatternTable, error) {
	shared, err := NewPatternTable(separator)
	if err != nil {
		return nil, err
	}
	next := *shared
	next.custom = t.custom
	next.patterns[Custom] = t.patterns[Custom]
	return &next, nil
}

// compileCustomPattern rejects blank patterns and patterns the regexp
// engine refuses to compile. Whether the pattern can match anything is not
// checked.
func compileCustomPattern(pattern string) (*regexp.Regexp, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, ErrEmptyPattern
	}
	re, err := customCache.GetOrCreate(pattern, func() (*regexp.Regexp, error) {
		return regexp.Compile(pattern)
	})
	if err != nil {
		return nil, errors.Join(ErrInvalidPattern, err)
	}
	return re, nil
}

// validateSeparator rejects separators that would collide with the numeric grammar.
func validateSeparator(sep string) error {
	if sep == "" {
		return ErrInvalidSeparator
	}
	for _, r := range sep {
		if unicode.IsDigit(r) || unicode.IsSpace(r) || strings.ContainsRune("+-%", r) {
			return errors.Join(ErrInvalidSeparator, fmt.Errorf("%q", sep))
		}
	}
	return nil
}
