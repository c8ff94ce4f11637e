package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/base/log"
	"github.com/x-xyz/gosdk/domain"
)

const jsonContentType = "application/json"

type MetadataUseCaseCfg struct {
	WebResource domain.WebResourceUseCase
}

type metadataUseCase struct {
	webResource domain.WebResourceUseCase
}

func NewMetadataUseCase(cfg *MetadataUseCaseCfg) domain.MetadataUseCase {
	return &metadataUseCase{
		webResource: cfg.WebResource,
	}
}

func (u *metadataUseCase) Resolve(c bCtx.Ctx, uri string) (*domain.Metadata, error) {
	data, err := u.webResource.GetJson(c, uri)
	if err != nil {
		c.WithFields(log.Fields{
			"uri": uri,
			"err": err,
		}).Error("webResource.GetJson failed")
		return nil, err
	}

	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '{' {
		c.WithField("uri", uri).Error("metadata is not a json object")
		return nil, xerrors.Errorf("metadata at %s is not a json object: %w", uri, domain.ErrMalformedMetadata)
	}

	meta := &domain.Metadata{}
	if err := json.Unmarshal(data, meta); err != nil {
		c.WithFields(log.Fields{
			"uri": uri,
			"err": err,
		}).Error("json.Unmarshal failed")
		return nil, xerrors.Errorf("%s: %w", err, domain.ErrMalformedMetadata)
	}
	meta.Uri = uri
	return meta, nil
}

func (u *metadataUseCase) Publish(c bCtx.Ctx, meta *domain.Metadata, contract, publisher domain.Address) (string, error) {
	if meta == nil {
		return "", xerrors.Errorf("nil metadata: %w", domain.ErrInvalidArgument)
	}
	doc := *meta

	if len(doc.ImageData) > 0 {
		mime := mimetype.Detect(doc.ImageData)
		name := objectName(contract, publisher, doc.ImageData, mime.Extension())
		imageUri, err := u.webResource.Store(c, name, doc.ImageData, mime.String())
		if err != nil {
			c.WithFields(log.Fields{
				"name": name,
				"err":  err,
			}).Error("failed to upload image")
			return "", err
		}
		doc.Image = imageUri
	}

	data, err := json.Marshal(&doc)
	if err != nil {
		c.WithField("err", err).Error("json.Marshal failed")
		return "", err
	}
	name := objectName(contract, publisher, data, ".json")
	uri, err := u.webResource.Store(c, name, data, jsonContentType)
	if err != nil {
		c.WithFields(log.Fields{
			"name": name,
			"err":  err,
		}).Error("failed to upload metadata")
		return "", err
	}
	return uri, nil
}

func (u *metadataUseCase) PublishBatch(c bCtx.Ctx, metas []*domain.Metadata, contract, publisher domain.Address) ([]string, error) {
	uris := make([]string, 0, len(metas))
	for i, meta := range metas {
		uri, err := u.UploadOrExtractURI(c, meta, contract, publisher)
		if err != nil {
			c.WithFields(log.Fields{
				"index": i,
				"err":   err,
			}).Error("UploadOrExtractURI failed")
			return nil, err
		}
		uris = append(uris, uri)
	}
	return uris, nil
}

func (u *metadataUseCase) UploadOrExtractURI(c bCtx.Ctx, meta *domain.Metadata, contract, publisher domain.Address) (string, error) {
	if meta != nil && len(meta.Uri) > 0 {
		return meta.Uri, nil
	}
	return u.Publish(c, meta, contract, publisher)
}

// objectName is <contract>/<publisher>/<keccak256(data)><ext>
func objectName(contract, publisher domain.Address, data []byte, ext string) string {
	hash := crypto.Keccak256Hash(data).Hex()
	return path.Join(
		contract.ToLowerStr(),
		publisher.ToLowerStr(),
		fmt.Sprintf("%s%s", strings.TrimPrefix(hash, "0x"), ext),
	)
}
