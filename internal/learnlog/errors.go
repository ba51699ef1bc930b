package learnlog

import "errors"

var (
	// ErrInvalidCategory indicates a category outside the closed set was
	// passed to a service or store operation. This is a programming error,
	// not a data error.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrUnknownCategory indicates an input file references a category
	// label that is not recognized. The whole load is rejected.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrMalformedRecord indicates a record in an input file cannot be
	// parsed even after default-filling optional fields. The whole load
	// is rejected.
	ErrMalformedRecord = errors.New("malformed record")
)
