package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	// At the search boundary it also reports an absent corpus or verse version.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input,
	// such as a blank search query.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown subtitle format, corpus or schema.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrSearchUnavailable indicates the backing store for a corpus is not configured.
	ErrSearchUnavailable = errors.New("search backend unavailable")

	// Ingestion Errors.

	// ErrIngestInProgress indicates an ingest run is already active in this process.
	ErrIngestInProgress = errors.New("ingest in progress")

	// ErrFetchFailed indicates subtitle content could not be retrieved.
	// The item is skipped and the run continues.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrConversionFailed indicates subtitle content could not be converted to text.
	// The item is skipped and the run continues.
	ErrConversionFailed = errors.New("conversion failed")

	// ErrPersistenceFailed indicates a store write or batch commit failed.
	// Single writes are skipped; batch commits abort the run.
	ErrPersistenceFailed = errors.New("persistence failed")
)
