package locale

import "errors"

var (
	// ErrEmptyLocale is returned when an empty locale string is parsed.
	ErrEmptyLocale = errors.New("empty locale")

	// ErrInvalidLocale is returned when a locale string is not a valid language tag.
	ErrInvalidLocale = errors.New("invalid locale")
)
