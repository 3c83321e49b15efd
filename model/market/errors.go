package market

import "errors"

// Failure classes shared across the fetch, adapter and session layers.
// Call sites wrap these with fmt.Errorf("...: %w", ...) and classify with
// errors.Is.
var (
	// ErrFetchUnavailable means both the direct request and the relay
	// fallback failed.
	ErrFetchUnavailable = errors.New("fetch unavailable")

	// ErrMalformedResponse means an adapter could not extract the fields
	// it expects from an otherwise delivered response body.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrSymbolNotFound means no probed exchange has data for the symbol.
	ErrSymbolNotFound = errors.New("symbol not found")

	// ErrStream marks transport-level socket failures. Non-fatal: the
	// session keeps its history and may resubscribe.
	ErrStream = errors.New("stream error")

	// ErrStaleToken marks work superseded by a newer session operation.
	// Never surfaced to consumers; results carrying it are discarded.
	ErrStaleToken = errors.New("superseded session operation")
)
