package ports

import (
	"context"
	"io"
)

// ImageUploader uploads product/logo images straight to the image CDN and
// returns the hosted URL.
type ImageUploader interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}
