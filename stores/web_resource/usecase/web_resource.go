package usecase

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/base/log"
	"github.com/x-xyz/gosdk/domain"
)

type WebResourceUseCaseCfg struct {
	HttpReader    domain.WebResourceReaderRepository
	IpfsReader    domain.WebResourceReaderRepository
	DataUriReader domain.WebResourceReaderRepository
	ArUriReader   domain.WebResourceReaderRepository
	// Writer is optional, Store fails with ErrNotImplemented without it
	Writer domain.WebResourceWriterRepository
}

type webResourceUseCase struct {
	httpReader    domain.WebResourceReaderRepository
	ipfsReader    domain.WebResourceReaderRepository
	dataUriReader domain.WebResourceReaderRepository
	arUriReader   domain.WebResourceReaderRepository
	writer        domain.WebResourceWriterRepository
}

func NewWebResourceUseCase(cfg *WebResourceUseCaseCfg) domain.WebResourceUseCase {
	return &webResourceUseCase{
		httpReader:    cfg.HttpReader,
		ipfsReader:    cfg.IpfsReader,
		dataUriReader: cfg.DataUriReader,
		arUriReader:   cfg.ArUriReader,
		writer:        cfg.Writer,
	}
}

func (u *webResourceUseCase) Get(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	return u.get(c, rawUrl)
}

func (u *webResourceUseCase) GetJson(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	data, err := u.get(c, rawUrl)
	if err != nil {
		return nil, err
	}
	if !json.Valid(data) {
		c.WithFields(log.Fields{
			"url": rawUrl,
		}).Error("invalid json")
		return nil, xerrors.Errorf("invalid json at %s: %w", rawUrl, domain.ErrMalformedMetadata)
	}

	return data, nil
}

func (u *webResourceUseCase) get(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	var (
		data   []byte
		err    error
		reader domain.WebResourceReaderRepository
		target = rawUrl
	)

	pUrl, err := url.Parse(rawUrl)
	if err != nil {
		c.WithFields(log.Fields{
			"url": rawUrl,
			"err": err,
		}).Error("failed to parse url")
		return nil, xerrors.Errorf("%s: %w", err, domain.ErrUnsupportedSchema)
	}

	switch pUrl.Scheme {
	case domain.SchemeHttps, domain.SchemeHttp:
		reader = u.httpReader
	case domain.SchemeIpfs:
		target = strings.TrimPrefix(rawUrl, "ipfs://")
		target = strings.TrimPrefix(target, "ipfs/") // early foundation's metadata bug
		reader = u.ipfsReader
	case domain.SchemeData:
		reader = u.dataUriReader
	case domain.SchemeAr:
		reader = u.arUriReader
	}
	if reader == nil {
		return nil, xerrors.Errorf("%s: %w", pUrl.Scheme, domain.ErrUnsupportedSchema)
	}

	data, err = reader.Get(c, target)
	if err == nil {
		return data, nil
	}

	if pUrl.Scheme == domain.SchemeHttps {
		ipfsUrl := getIpfsUrl(rawUrl)
		if len(ipfsUrl) > 0 {
			c.WithFields(log.Fields{
				"url":     rawUrl,
				"ipfsUrl": ipfsUrl,
			}).Info("falling back to ipfs")
			return u.get(c, ipfsUrl)
		}
	}

	c.WithFields(log.Fields{
		"schema": pUrl.Scheme,
		"url":    rawUrl,
		"err":    err,
	}).Error("failed to fetch")
	return nil, err
}

func (u *webResourceUseCase) Store(c bCtx.Ctx, name string, data []byte, contentType string) (string, error) {
	if u.writer == nil {
		return "", xerrors.Errorf("no storage writer configured: %w", domain.ErrNotImplemented)
	}
	uri, err := u.writer.Store(c, name, data, contentType)
	if err != nil {
		c.WithFields(log.Fields{
			"name": name,
			"err":  err,
		}).Error("writer.Store failed")
		return "", err
	}
	return uri, nil
}

func getIpfsUrl(url string) string {
	var (
		pinataPrefix     = "https://gateway.pinata.cloud/ipfs/"
		ipfsIoPrefix     = "https://ipfs.io/ipfs/"
		cloudflarePrefix = "https://cloudflare-ipfs.com/ipfs/"
		foundationPrefix = "https://ipfs.foundation.app/ipfs/"
		ipfsPrefix       = "ipfs://"
	)

	fixedPrefix := []string{pinataPrefix, ipfsIoPrefix, cloudflarePrefix, foundationPrefix}
	for _, p := range fixedPrefix {
		if strings.HasPrefix(url, p) {
			return strings.Replace(url, p, ipfsPrefix, 1)
		}
	}
	dedicatedPinataRegex := regexp.MustCompile(`^https://.*.mypinata.cloud/ipfs/`)
	if dedicatedPinataRegex.Match([]byte(url)) {
		return dedicatedPinataRegex.ReplaceAllLiteralString(url, ipfsPrefix)
	}
	return ""
}
