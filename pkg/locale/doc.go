// Package locale resolves the decimal separator used when reading numeric
// text typed by a user.
//
// The separator is the only piece of locale data the rest of the module
// consumes. It is derived from golang.org/x/text so that the rendering of
// a decimal number for a language tag decides what the user is expected to
// type ("1.5" for English, "1,5" for German).
//
// # Usage
//
//	sep := locale.Default()                        // from LC_ALL / LC_NUMERIC / LANG
//	sep = locale.DecimalSeparator(language.German) // ","
//
// Process locale values in POSIX form ("de_DE.UTF-8@euro") are normalized
// to BCP 47 before parsing. Values that cannot be parsed, and the "C" and
// "POSIX" locales, fall back to English.
package locale
