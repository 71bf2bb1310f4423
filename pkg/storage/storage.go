// Package storage provides the upload transport: a binary payload plus
// content type in, a publicly resolvable URL out. Two destinations are
// supported, S3 (or an S3-compatible endpoint) and a local directory.
package storage

import (
	"context"
	"io"
)

// Uploader stores a payload under key and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}
