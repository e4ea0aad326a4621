// Package config loads inputguard configuration from the environment and
// from YAML profile files.
//
// Environment variables are read with github.com/caarlos0/env/v11 after an
// optional .env file has been loaded with github.com/joho/godotenv. Every
// variable carries the INPUTGUARD_ prefix.
//
// Two kinds of configuration exist:
//
//   - App   – process settings (log level and format, path of the profiles
//     file), loaded once per type with Load.
//   - Field – the declarative configuration of one validation engine:
//     classification, limits, separator or locale, custom pattern and
//     external predicates. Field.Engine turns it into a *validator.Engine.
//
// A profiles file names several fields:
//
//	fields:
//	  amount:
//	    classification: decimal
//	    min_number: 0
//	    max_number: 1000
//	    max_decimal_digits: 2
//	  nickname:
//	    classification: string
//	    min_length: 2
//	    max_length: 16
//	    expression: "!(lower(text) =~ '^admin')"
//
// Keys left out keep the DefaultField values: unset number bounds (NaN),
// unlimited lengths and decimal digits (-1).
//
// Field values are checked with github.com/go-playground/validator/v10
// before an engine is built; failures wrap ErrInvalidField.
package config
