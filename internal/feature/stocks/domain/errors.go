// Package domain defines domain-level errors for the stocks feature.
package domain

import (
	"errors"
	"fmt"
)

// Domain errors for the ingest pipeline.
// Adapters wrap these with fmt.Errorf("...: %w", ...) and callers test them with errors.Is.
var (
	// ErrTransport indicates that a remote source was unreachable or answered with a non-2xx status.
	ErrTransport = errors.New("transport error")

	// ErrParse indicates that a document was fetched but could not be decoded at all
	// (e.g. malformed JSON). Missing fields inside a valid document are not errors.
	ErrParse = errors.New("parse error")

	// ErrPresenceCheckFailed indicates that the mandatory price field was missing.
	// The symbol is discarded without fetching the remaining fragments.
	ErrPresenceCheckFailed = errors.New("unable to find stock details")

	// ErrPersistence indicates that writing to or reading from the storage target failed.
	ErrPersistence = errors.New("persistence error")

	// ErrNotFound indicates that no record is stored for the requested symbol.
	ErrNotFound = errors.New("stock record not found")
)

// TransportError describes a failed request to a remote source.
// It unwraps to ErrTransport.
type TransportError struct {
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transport error: GET %s: http %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("transport error: GET %s: %v", e.URL, e.Err)
}

// Unwrap は errors.Is(err, ErrTransport) と下位エラーの両方を満たすために使われます。
func (e *TransportError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTransport}
	}
	return []error{ErrTransport, e.Err}
}
