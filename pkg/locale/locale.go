package locale

import (
	"errors"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FallbackSeparator is used when x/text renders a number without a visible separator.
const FallbackSeparator = "."

// envKeys are consulted in POSIX precedence order.
var envKeys = []string{"LC_ALL", "LC_NUMERIC", "LANG"}

var defaultSeparator = sync.OnceValue(func() string {
	return DecimalSeparator(FromEnvironment())
})

// Default returns the decimal separator of the process locale.
// The value is computed on first use and cached.
func Default() string {
	return defaultSeparator()
}

// FromEnvironment returns the language tag of the process locale.
func FromEnvironment() language.Tag {
	for _, key := range envKeys {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		tag, err := Parse(v)
		if err != nil {
			return language.English
		}
		return tag
	}
	return language.English
}

// Parse converts a BCP 47 tag or a POSIX locale name into a language tag.
// "C" and "POSIX" map to English.
func Parse(s string) (language.Tag, error) {
	s = normalize(s)
	if s == "" {
		return language.Und, ErrEmptyLocale
	}
	if s == "C" || s == "POSIX" {
		return language.English, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, errors.Join(ErrInvalidLocale, err)
	}
	return tag, nil
}

// normalize strips the POSIX codeset and modifier ("de_DE.UTF-8@euro" -> "de-DE").
func normalize(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '@'); i >= 0 {
		s = s[:i]
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	return strings.ReplaceAll(s, "_", "-")
}

// DecimalSeparator returns the symbol placed between the integral and the
// fractional digits of a decimal number for tag.
func DecimalSeparator(tag language.Tag) string {
	p := message.NewPrinter(tag)
	// 1.5 renders as digit, separator, digit in every supported locale.
	rendered := []rune(p.Sprint(number.Decimal(1.5, number.MinFractionDigits(1))))
	if len(rendered) < 3 {
		return FallbackSeparator
	}
	sep := strings.TrimSpace(string(rendered[1 : len(rendered)-1]))
	if sep == "" {
		return FallbackSeparator
	}
	return sep
}
