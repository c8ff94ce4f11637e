package domain

import (
	"github.com/x-xyz/gosdk/base/ctx"
)

// Uri schemes a web resource can be read from
const (
	SchemeHttp  = "http"
	SchemeHttps = "https"
	SchemeIpfs  = "ipfs"
	SchemeData  = "data"
	SchemeAr    = "ar"
)

// WebResourceReaderRepository fetches the blob behind uri. Missing blobs return ErrNotFound.
type WebResourceReaderRepository interface {
	Get(c ctx.Ctx, uri string) ([]byte, error)
}

// WebResourceWriterRepository stores data under name and returns the uri it can be read from.
type WebResourceWriterRepository interface {
	Store(c ctx.Ctx, name string, data []byte, contentType string) (string, error)
}

// WebResourceUseCase picks a reader by uri scheme and stores through the configured writer.
type WebResourceUseCase interface {
	Get(c ctx.Ctx, uri string) ([]byte, error)
	// GetJson fails with ErrMalformedMetadata when the blob is not valid json
	GetJson(c ctx.Ctx, uri string) ([]byte, error)
	// Store fails with ErrNotImplemented when no writer is configured
	Store(c ctx.Ctx, name string, data []byte, contentType string) (string, error)
}
