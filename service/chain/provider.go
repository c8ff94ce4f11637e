package chain

import (
	"crypto/ecdsa"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/shopspring/decimal"

	bCtx "github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/base/ethereum"
	"github.com/x-xyz/gosdk/base/log"
	"github.com/x-xyz/gosdk/base/metrics"
	"github.com/x-xyz/gosdk/domain"
)

const (
	defaultTxTimeout    = 5 * time.Minute
	defaultPollInterval = 5 * time.Second
	firstPoll           = 500 * time.Millisecond
)

type ProviderCfg struct {
	Client domain.ChainClient
	// Signer is optional, state changing calls fail with domain.ErrNoSigner without it
	Signer *ecdsa.PrivateKey
	// MaxGasPriceGwei caps the suggested gas price, 0 means no cap
	MaxGasPriceGwei float64
	TxTimeout       time.Duration
	PollInterval    time.Duration
}

// Provider holds the rpc client, the optional signer and transaction options shared by every contract wrapper.
type Provider struct {
	client       domain.ChainClient
	maxGasPrice  *big.Int
	txTimeout    time.Duration
	pollInterval time.Duration
	metrics      metrics.Service

	mu      sync.RWMutex
	signer  *ecdsa.PrivateKey
	chainId *big.Int
}

func NewProvider(cfg *ProviderCfg) *Provider {
	p := &Provider{
		client:       cfg.Client,
		signer:       cfg.Signer,
		txTimeout:    cfg.TxTimeout,
		pollInterval: cfg.PollInterval,
		metrics:      metrics.New("chain"),
	}
	if cfg.MaxGasPriceGwei > 0 {
		p.maxGasPrice = decimal.NewFromFloat(cfg.MaxGasPriceGwei).Shift(9).BigInt()
	}
	if p.txTimeout <= 0 {
		p.txTimeout = defaultTxTimeout
	}
	if p.pollInterval <= 0 {
		p.pollInterval = defaultPollInterval
	}
	return p
}

func (p *Provider) Client() domain.ChainClient {
	return p.client
}

// SetSigner replaces the signer for every wrapper created by p. nil removes it.
func (p *Provider) SetSigner(key *ecdsa.PrivateKey) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.signer = key
}

func (p *Provider) Signer() (*ecdsa.PrivateKey, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.signer, p.signer != nil
}

func (p *Provider) SignerAddress() (domain.Address, bool) {
	key, ok := p.Signer()
	if !ok {
		return "", false
	}
	return domain.AddressFromCommon(ethereum.PubkeyToAddress(key)), true
}

// New implements domain.ContractFactory
func (p *Provider) New(address domain.Address, abi abi.ABI) domain.ContractWrapper {
	return &contractWrapper{
		provider: p,
		address:  address,
		contract: address.ToCommon(),
		abi:      abi,
	}
}

func (p *Provider) ChainID(ctx bCtx.Ctx) (*big.Int, error) {
	p.mu.RLock()
	id := p.chainId
	p.mu.RUnlock()
	if id != nil {
		return id, nil
	}
	id, err := p.client.ChainID(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.ChainID failed")
		return nil, err
	}
	p.mu.Lock()
	p.chainId = id
	p.mu.Unlock()
	return id, nil
}

// gasPrice returns the network suggestion capped by the configured maximum
func (p *Provider) gasPrice(ctx bCtx.Ctx) (*big.Int, error) {
	price, err := p.client.SuggestGasPrice(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.SuggestGasPrice failed")
		return nil, err
	}
	if p.maxGasPrice != nil && price.Cmp(p.maxGasPrice) > 0 {
		ctx.WithFields(log.Fields{
			"suggested": price.String(),
			"max":       p.maxGasPrice.String(),
		}).Info("gas price capped")
		return new(big.Int).Set(p.maxGasPrice), nil
	}
	return price, nil
}
