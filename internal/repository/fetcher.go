package repository

import (
	"context"
	"errors"
)

// ErrRemoteStatus indicates a remote server answered with a non-success
// HTTP status code.
var ErrRemoteStatus = errors.New("remote returned non-success status")

// ResourceFetcher defines the contract for reading raw bytes or text from
// a location, dispatching between local file I/O and remote HTTP based on
// the location's scheme. Implementations must be safe for concurrent use.
type ResourceFetcher interface {
	// Fetch reads the binary content at location.
	Fetch(ctx context.Context, location string) ([]byte, error)
	// FetchText reads the content at location as text.
	FetchText(ctx context.Context, location string) (string, error)
}
