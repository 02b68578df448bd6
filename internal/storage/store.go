// Package storage abstracts where uploads are staged and generated
// documents are committed, so the pipeline never names filesystem paths
// directly.
package storage

import (
	"context"
	"io"
)

// Store manages the lifecycle of staged uploads and committed outputs.
type Store interface {
	// Stage persists an incoming upload and returns the handle the pipeline
	// uses to address it for the rest of the request.
	Stage(ctx context.Context, r io.Reader, originalName string) (string, error)

	// Commit persists a generated document under the given name and returns
	// the URI it is addressable by. Committed documents are retained; their
	// cleanup is not the pipeline's concern.
	Commit(ctx context.Context, name string, data []byte) (string, error)

	// Release removes a staged upload. It must be safe to call when the
	// staged file is already gone.
	Release(ctx context.Context, stagedPath string)
}
