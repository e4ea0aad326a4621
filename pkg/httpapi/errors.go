package httpapi

import "errors"

var (
	// ErrNoFields is returned by New when the profiles define no field.
	ErrNoFields = errors.New("no fields configured")

	// ErrBadRequest marks malformed request bodies.
	ErrBadRequest = errors.New("bad request")
)
