package repository

import (
	"net/http"
	"strings"
	"time"

	bCtx "github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/domain"
)

const DefaultIpfsGateway = "https://cloudflare-ipfs.com/ipfs/"

type ipfsGatewayReaderRepo struct {
	http    *httpReaderRepo
	gateway string
}

func NewIpfsGatewayReaderRepo(c *http.Client, gateway string, timeout time.Duration) domain.WebResourceReaderRepository {
	if len(gateway) == 0 {
		gateway = DefaultIpfsGateway
	}
	return &ipfsGatewayReaderRepo{
		http:    newHttpReader(c, timeout, nil),
		gateway: strings.TrimSuffix(gateway, "/") + "/",
	}
}

// Get takes a cid path, an ipfs:// prefix is tolerated
func (r *ipfsGatewayReaderRepo) Get(c bCtx.Ctx, cid string) ([]byte, error) {
	cid = strings.TrimPrefix(strings.TrimPrefix(cid, ipfsPrefix), "/")
	return r.http.Get(c, r.gateway+cid)
}
