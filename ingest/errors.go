package ingest

import "errors"

var (
	// ErrMalformedRecord is returned when a single raw record cannot be
	// normalized. Callers skip the record and continue.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrUnknownPayload is returned when a raw payload matches neither of
	// the supported source shapes.
	ErrUnknownPayload = errors.New("unknown payload shape")

	// ErrEmptyPayload is returned when a raw payload is empty or not JSON.
	ErrEmptyPayload = errors.New("empty or unparseable payload")
)
