package chain

import (
	"github.com/ethereum/go-ethereum/ethclient"

	bCtx "github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/base/ethereum"
	"github.com/x-xyz/gosdk/base/log"
	"github.com/x-xyz/gosdk/domain"
)

func Dial(ctx bCtx.Ctx, url string) (*ethclient.Client, error) {
	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"url": url,
		}).Error("failed to dial rpc")
		return nil, err
	}
	return client, nil
}

// NewClient limits in-flight requests to maxConcurrency when it is > 0
func NewClient(client *ethclient.Client, maxConcurrency int) domain.ChainClient {
	if maxConcurrency > 0 {
		return ethereum.NewTrottledClient(client, maxConcurrency)
	}
	return client
}
