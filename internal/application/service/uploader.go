package service

import (
	"context"
	"io"
)

// Uploader stores user-supplied images (avatar, project screenshots) and
// returns a public URL to save on the owning row.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
	Delete(ctx context.Context, publicID string) error
}
