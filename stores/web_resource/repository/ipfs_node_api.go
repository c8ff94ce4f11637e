package repository

import (
	"bytes"
	"strings"
	"time"

	ipfsapi "github.com/ipfs/go-ipfs-api"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/base/log"
	"github.com/x-xyz/gosdk/domain"
)

const ipfsPrefix = "ipfs://"

type ipfsNodeApiRepo struct {
	shell      *ipfsapi.Shell
	ctxTimeout time.Duration
}

func NewIpfsNodeApiReaderRepo(s *ipfsapi.Shell, timeout time.Duration) domain.WebResourceReaderRepository {
	return &ipfsNodeApiRepo{shell: s, ctxTimeout: timeout}
}

// NewIpfsNodeApiWriterRepo adds and pins data on the node, uris are ipfs://<cid>
func NewIpfsNodeApiWriterRepo(s *ipfsapi.Shell, timeout time.Duration) domain.WebResourceWriterRepository {
	return &ipfsNodeApiRepo{shell: s, ctxTimeout: timeout}
}

func (r *ipfsNodeApiRepo) Get(c bCtx.Ctx, cid string) ([]byte, error) {
	ctx := c
	if r.ctxTimeout > 0 {
		var cancel func()
		ctx, cancel = bCtx.WithTimeout(c, r.ctxTimeout)
		defer cancel()
	}
	resp, err := r.shell.Request("cat", cid).Send(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("shell.Request failed")
		return nil, err
	}
	defer resp.Close()
	if resp.Error != nil {
		ctx.WithFields(log.Fields{
			"cid":        cid,
			"resp.Error": resp.Error,
		}).Error("shell.Request failed")
		if strings.Contains(resp.Error.Message, "not found") {
			return nil, xerrors.Errorf("%s: %w", cid, domain.ErrNotFound)
		}
		return nil, resp.Error
	}
	data, err := readResource(resp.Output)
	if err != nil {
		ctx.WithFields(log.Fields{
			"cid": cid,
			"err": err,
		}).Error("failed to read output")
		return nil, err
	}
	return data, nil
}

// Store ignores name and contentType, the node addresses content by hash
func (r *ipfsNodeApiRepo) Store(c bCtx.Ctx, name string, data []byte, _ string) (string, error) {
	cid, err := r.shell.Add(bytes.NewReader(data), ipfsapi.Pin(true))
	if err != nil {
		c.WithFields(log.Fields{
			"name": name,
			"err":  err,
		}).Error("shell.Add failed")
		return "", err
	}
	return ipfsPrefix + cid, nil
}
