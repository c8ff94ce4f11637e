package repository

import (
	"net/url"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/base/log"
	"github.com/x-xyz/gosdk/domain"
)

const immutableCacheControl = "public, max-age=31536000, immutable"

type CloudStorageWriterRepoCfg struct {
	Timeout    time.Duration
	Client     *storage.Client
	BucketName string
	// Url is the public base url objects are served from
	Url string
}

type cloudStorageWriterRepo struct {
	bucket     *storage.BucketHandle
	ctxTimeout time.Duration
	baseUrl    *url.URL
}

func NewCloudStorageWriterRepo(cfg *CloudStorageWriterRepoCfg) (domain.WebResourceWriterRepository, error) {
	baseUrl, err := url.Parse(cfg.Url)
	if err != nil {
		return nil, err
	}
	return &cloudStorageWriterRepo{
		bucket:     cfg.Client.Bucket(cfg.BucketName),
		ctxTimeout: cfg.Timeout,
		baseUrl:    baseUrl,
	}, nil
}

// Store writes name under the bucket. Names are content addressed, so objects are served as immutable.
func (r *cloudStorageWriterRepo) Store(c bCtx.Ctx, name string, body []byte, contentType string) (string, error) {
	name = strings.TrimPrefix(path.Clean("/"+name), "/")
	ref, err := url.Parse(name)
	if err != nil {
		c.WithFields(log.Fields{
			"name": name,
			"err":  err,
		}).Error("url.Parse failed")
		return "", xerrors.Errorf("invalid object name %s: %w", name, domain.ErrInvalidArgument)
	}
	if len(contentType) == 0 {
		contentType = mimetype.Detect(body).String()
	}

	ctx := c
	if r.ctxTimeout > 0 {
		var cancel func()
		ctx, cancel = bCtx.WithTimeout(c, r.ctxTimeout)
		defer cancel()
	}
	w := r.bucket.Object(name).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = immutableCacheControl
	if _, err := w.Write(body); err != nil {
		ctx.WithFields(log.Fields{
			"name": name,
			"err":  err,
		}).Error("w.Write failed")
		_ = w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		ctx.WithFields(log.Fields{
			"name": name,
			"err":  err,
		}).Error("w.Close failed")
		return "", err
	}
	return r.baseUrl.ResolveReference(ref).String(), nil
}
