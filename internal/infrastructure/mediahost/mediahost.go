package mediahost

import (
	"context"
	"io"
)

// MediaHost persists uploaded images on an external host and returns the
// public URL to store in place of the file itself.
type MediaHost interface {
	Upload(ctx context.Context, filename string, file io.Reader) (url string, err error)
}
