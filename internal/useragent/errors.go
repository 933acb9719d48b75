package useragent

import "errors"

// Failure taxonomy for catalog loading and generation. Callers match
// these with errors.Is; wrapped messages carry the specifics (offending
// path, index, or name).
var (
	// ErrNotFound indicates the catalog file does not exist.
	ErrNotFound = errors.New("catalog file not found")
	// ErrPermission indicates the catalog file exists but cannot be read.
	ErrPermission = errors.New("catalog file not readable")
	// ErrMalformed indicates the catalog failed to parse or failed the
	// structural schema checks.
	ErrMalformed = errors.New("malformed catalog")
	// ErrEmptyData indicates no feasible browser/OS combination remained
	// after filtering at generation time.
	ErrEmptyData = errors.New("no usable browser data")
	// ErrInvalidAgent indicates a synthesized string failed the
	// post-generation sanity checks.
	ErrInvalidAgent = errors.New("generated user agent failed validation")
)
