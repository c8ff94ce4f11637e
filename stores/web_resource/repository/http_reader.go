package repository

import (
	"io"
	"net/http"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/base/log"
	"github.com/x-xyz/gosdk/domain"
)

// metadata documents and token images, anything larger is rejected
var maxResourceSize int64 = 32 << 20

// httpReaderRepo GETs the url as is. The ar and ipfs gateway readers rewrite their uri and reuse it.
type httpReaderRepo struct {
	client     *http.Client
	ctxTimeout time.Duration
	headers    map[string]string
}

func NewHttpReaderRepo(client *http.Client, timeout time.Duration, headers map[string]string) domain.WebResourceReaderRepository {
	return newHttpReader(client, timeout, headers)
}

func newHttpReader(client *http.Client, timeout time.Duration, headers map[string]string) *httpReaderRepo {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpReaderRepo{client: client, ctxTimeout: timeout, headers: headers}
}

func (r *httpReaderRepo) Get(c bCtx.Ctx, url string) ([]byte, error) {
	ctx := c
	if r.ctxTimeout > 0 {
		var cancel func()
		ctx, cancel = bCtx.WithTimeout(c, r.ctxTimeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, xerrors.Errorf("%s: %w", err, domain.ErrUnsupportedSchema)
	}
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Warn("failed with request")
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, xerrors.Errorf("%s: %w", url, domain.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return nil, xerrors.Errorf("resp.StatusCode != 200: %d", resp.StatusCode)
	case resp.ContentLength > maxResourceSize:
		return nil, xerrors.Errorf("resource too large: %d bytes", resp.ContentLength)
	}

	body, err := readResource(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}
	return body, nil
}

func readResource(r io.Reader) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, maxResourceSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > maxResourceSize {
		return nil, xerrors.Errorf("resource too large: > %d bytes", maxResourceSize)
	}
	return body, nil
}
