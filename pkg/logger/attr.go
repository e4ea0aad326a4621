package logger

import (
	"fmt"
	"log/slog"
	"unicode/utf8"
)

// maxTextLen caps logged input so a pasted document does not flood the log.
const maxTextLen = 64

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Field records the configured field (profile) name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Classification records a classification under the key "classification".
func Classification(c fmt.Stringer) slog.Attr {
	if c == nil {
		return slog.Attr{}
	}
	return slog.String("classification", c.String())
}

// Verdict records an evaluation result under the key "valid".
func Verdict(valid bool) slog.Attr {
	return slog.Bool("valid", valid)
}

// Setting records the name of a configuration setting under the key "setting".
func Setting(name string) slog.Attr {
	return slog.String("setting", name)
}

// Text records evaluated input under the key "text", truncated to a fixed
// number of characters.
func Text(s string) slog.Attr {
	if utf8.RuneCountInString(s) > maxTextLen {
		s = string([]rune(s)[:maxTextLen]) + "…"
	}
	return slog.String("text", s)
}
