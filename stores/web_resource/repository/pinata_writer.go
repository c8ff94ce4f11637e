package repository

import (
	"bytes"
	"encoding/json"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	bCtx "github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/base/log"
	"github.com/x-xyz/gosdk/domain"
	"github.com/x-xyz/gosdk/service/pinata"
)

type pinataWriterRepo struct {
	pinata pinata.Service
}

// NewPinataWriterRepo pins data through the pinata api, uris are ipfs://<cid>
func NewPinataWriterRepo(p pinata.Service) domain.WebResourceWriterRepository {
	return &pinataWriterRepo{pinata: p}
}

func (r *pinataWriterRepo) Store(c bCtx.Ctx, name string, data []byte, contentType string) (string, error) {
	opts := []pinata.PinOption{pinata.WithName(name)}
	if len(contentType) > 0 {
		opts = append(opts, pinata.WithKeyValue("contentType", contentType))
	}
	var (
		cid string
		err error
	)
	if strings.HasPrefix(contentType, "application/json") && json.Valid(data) {
		cid, err = r.pinata.PinJson(c, json.RawMessage(data), opts...)
	} else {
		filename := path.Base(name)
		if len(path.Ext(filename)) == 0 {
			filename += mimetype.Detect(data).Extension()
		}
		cid, err = r.pinata.Pin(c, bytes.NewReader(data), filename, opts...)
	}
	if err != nil {
		c.WithFields(log.Fields{
			"name": name,
			"err":  err,
		}).Error("pinata pin failed")
		return "", err
	}
	return ipfsPrefix + cid, nil
}
