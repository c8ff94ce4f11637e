package repository

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/domain"
)

const (
	arUriSchema      = "ar://"
	DefaultArGateway = "https://arweave.net/"
)

type arReaderRepo struct {
	http    *httpReaderRepo
	gateway string
}

// NewArReaderRepo reads ar:// uris through an arweave gateway
func NewArReaderRepo(client *http.Client, gateway string, timeout time.Duration) domain.WebResourceReaderRepository {
	if len(gateway) == 0 {
		gateway = DefaultArGateway
	}
	return &arReaderRepo{http: newHttpReader(client, timeout, nil), gateway: strings.TrimSuffix(gateway, "/") + "/"}
}

func (r *arReaderRepo) Get(c bCtx.Ctx, uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, arUriSchema) {
		return nil, xerrors.Errorf("invalid ar uri: %w", domain.ErrUnsupportedSchema)
	}
	return r.http.Get(c, r.gateway+strings.TrimPrefix(uri, arUriSchema))
}
