package repository

import (
	"encoding/base64"
	"net/url"
	"strings"

	"golang.org/x/xerrors"

	"github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/domain"
)

const dataUriSchema = "data:"

type dataUriReaderRepo struct{}

func NewDataUriReaderRepo() domain.WebResourceReaderRepository {
	return &dataUriReaderRepo{}
}

// Get decodes data:[<mediatype>][;base64],<data>, on-chain svgs often come unpadded
func (r *dataUriReaderRepo) Get(c ctx.Ctx, uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, dataUriSchema) {
		return nil, xerrors.Errorf("invalid data uri: %w", domain.ErrUnsupportedSchema)
	}
	header, payload, ok := cut(strings.TrimPrefix(uri, dataUriSchema), ",")
	if !ok || len(payload) == 0 {
		return nil, xerrors.Errorf("no data part provided: %w", domain.ErrNotFound)
	}

	if !strings.HasSuffix(header, ";base64") {
		// plain text may be percent encoded
		if unescaped, err := url.PathUnescape(payload); err == nil {
			return []byte(unescaped), nil
		}
		return []byte(payload), nil
	}

	for _, enc := range []*base64.Encoding{base64.StdEncoding, base64.RawStdEncoding, base64.URLEncoding, base64.RawURLEncoding} {
		if data, err := enc.DecodeString(payload); err == nil {
			return data, nil
		}
	}
	c.WithField("header", header).Warn("invalid base64 data uri")
	return nil, xerrors.Errorf("invalid base64 data uri: %w", domain.ErrMalformedMetadata)
}

func cut(s, sep string) (string, string, bool) {
	if i := strings.Index(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):], true
	}
	return s, "", false
}
