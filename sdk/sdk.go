package sdk

import (
	"net/http"
	"strings"
	"sync"

	"cloud.google.com/go/storage"
	ipfsapi "github.com/ipfs/go-ipfs-api"
	"golang.org/x/xerrors"
	"google.golang.org/api/option"

	bCtx "github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/base/ethereum"
	"github.com/x-xyz/gosdk/base/log"
	"github.com/x-xyz/gosdk/base/metrics"
	"github.com/x-xyz/gosdk/base/validator"
	"github.com/x-xyz/gosdk/domain"
	"github.com/x-xyz/gosdk/domain/collection"
	"github.com/x-xyz/gosdk/domain/edition"
	"github.com/x-xyz/gosdk/domain/market"
	"github.com/x-xyz/gosdk/domain/nft"
	"github.com/x-xyz/gosdk/domain/token"
	"github.com/x-xyz/gosdk/service/chain"
	"github.com/x-xyz/gosdk/service/ens"
	"github.com/x-xyz/gosdk/service/pinata"
	collectionUsecase "github.com/x-xyz/gosdk/stores/collection/usecase"
	editionUsecase "github.com/x-xyz/gosdk/stores/edition/usecase"
	marketUsecase "github.com/x-xyz/gosdk/stores/market/usecase"
	metadataUsecase "github.com/x-xyz/gosdk/stores/metadata/usecase"
	nftUsecase "github.com/x-xyz/gosdk/stores/nft/usecase"
	tokenUsecase "github.com/x-xyz/gosdk/stores/token/usecase"
	webresourceRepo "github.com/x-xyz/gosdk/stores/web_resource/repository"
	webresourceUsecase "github.com/x-xyz/gosdk/stores/web_resource/usecase"

	baseabi "github.com/x-xyz/gosdk/base/abi"
)

type ModuleKind string

const (
	ModuleNft        ModuleKind = "nft"
	ModuleEdition    ModuleKind = "edition"
	ModuleCollection ModuleKind = "collection"
	ModuleToken      ModuleKind = "token"
	ModuleMarket     ModuleKind = "market"
)

type moduleKey struct {
	kind    ModuleKind
	address domain.Address
}

type Cfg struct {
	Provider *chain.Provider
	Metadata domain.MetadataUseCase
	// ENS is optional, ResolveAddress only accepts hex addresses without it
	ENS            ens.Resolver
	FilterPriority market.FilterPriority
}

// SDK hands out one module per (kind, address). Modules share the provider, so a signer set
// through SetPrivateKey is seen by every module already handed out.
type SDK struct {
	provider       *chain.Provider
	metadata       domain.MetadataUseCase
	ens            ens.Resolver
	filterPriority market.FilterPriority

	mu      sync.Mutex
	modules map[moduleKey]interface{}
}

func New(cfg *Cfg) *SDK {
	return &SDK{
		provider:       cfg.Provider,
		metadata:       cfg.Metadata,
		ens:            cfg.ENS,
		filterPriority: cfg.FilterPriority,
		modules:        make(map[moduleKey]interface{}),
	}
}

// NewFromConfig dials the rpc node and wires storage, metadata and ens from cfg
func NewFromConfig(ctx bCtx.Ctx, cfg *Config) (*SDK, error) {
	if cfg.MetricsEnabled {
		if err := metrics.Init(cfg.DatadogHost, metrics.DefaultPort); err != nil {
			ctx.WithField("err", err).Error("metrics.Init failed")
			return nil, err
		}
	}

	ethClient, err := chain.Dial(ctx, cfg.RpcUrl)
	if err != nil {
		return nil, err
	}

	providerCfg := &chain.ProviderCfg{
		Client:          chain.NewClient(ethClient, cfg.RpcMaxConcurrency),
		MaxGasPriceGwei: cfg.MaxGasPriceGwei,
		TxTimeout:       cfg.TxTimeout,
		PollInterval:    cfg.PollInterval,
	}
	if len(cfg.PrivateKey) > 0 {
		key, err := ethereum.ParsePrivateKey(cfg.PrivateKey)
		if err != nil {
			ctx.WithField("err", err).Error("ethereum.ParsePrivateKey failed")
			return nil, xerrors.Errorf("invalid private key: %w", domain.ErrInvalidArgument)
		}
		providerCfg.Signer = key
	}

	webResource, err := newWebResourceUseCase(ctx, cfg)
	if err != nil {
		return nil, err
	}

	ctx.WithFields(log.Fields{
		"rpc.url":               cfg.RpcUrl,
		"rpc.maxConcurrency":    cfg.RpcMaxConcurrency,
		"gas.maxPriceGwei":      cfg.MaxGasPriceGwei,
		"tx.timeout":            cfg.TxTimeout,
		"ipfs.api":              cfg.IpfsApi,
		"ipfs.gateway":          cfg.IpfsGateway,
		"storage.writer":        cfg.StorageWriter,
		"market.filterPriority": cfg.FilterPriority,
		"signer":                providerCfg.Signer != nil,
	}).Info("config")

	return New(&Cfg{
		Provider:       chain.NewProvider(providerCfg),
		Metadata:       metadataUsecase.NewMetadataUseCase(&metadataUsecase.MetadataUseCaseCfg{WebResource: webResource}),
		ENS:            ens.New(ethClient),
		FilterPriority: cfg.FilterPriority,
	}), nil
}

func newWebResourceUseCase(ctx bCtx.Ctx, cfg *Config) (domain.WebResourceUseCase, error) {
	httpClient := &http.Client{}

	var shell *ipfsapi.Shell
	if len(cfg.IpfsApi) > 0 {
		shell = ipfsapi.NewShell(cfg.IpfsApi)
	}

	wrCfg := &webresourceUsecase.WebResourceUseCaseCfg{
		HttpReader:    webresourceRepo.NewHttpReaderRepo(httpClient, cfg.HttpTimeout, nil),
		DataUriReader: webresourceRepo.NewDataUriReaderRepo(),
		ArUriReader:   webresourceRepo.NewArReaderRepo(httpClient, "", cfg.HttpTimeout),
	}
	if shell != nil {
		wrCfg.IpfsReader = webresourceRepo.NewIpfsNodeApiReaderRepo(shell, cfg.IpfsTimeout)
	} else {
		wrCfg.IpfsReader = webresourceRepo.NewIpfsGatewayReaderRepo(httpClient, cfg.IpfsGateway, cfg.IpfsTimeout)
	}

	switch cfg.StorageWriter {
	case StorageWriterIpfs:
		if shell == nil {
			return nil, xerrors.Errorf("ipfs writer requires ipfs.api: %w", domain.ErrInvalidArgument)
		}
		wrCfg.Writer = webresourceRepo.NewIpfsNodeApiWriterRepo(shell, cfg.IpfsTimeout)
	case StorageWriterPinata:
		wrCfg.Writer = webresourceRepo.NewPinataWriterRepo(pinata.New(&pinata.Cfg{
			ApiKey:    cfg.PinataApiKey,
			ApiSecret: cfg.PinataApiSecret,
			Client:    httpClient,
		}))
	case StorageWriterGcs:
		var opts []option.ClientOption
		if len(cfg.CloudStorageCredentials) > 0 {
			opts = append(opts, option.WithCredentialsFile(cfg.CloudStorageCredentials))
		}
		storageClient, err := storage.NewClient(ctx, opts...)
		if err != nil {
			ctx.WithField("err", err).Error("storage.NewClient failed")
			return nil, err
		}
		w, err := webresourceRepo.NewCloudStorageWriterRepo(&webresourceRepo.CloudStorageWriterRepoCfg{
			Timeout:    cfg.CloudStorageTimeout,
			Client:     storageClient,
			BucketName: cfg.CloudStorageBucket,
			Url:        cfg.CloudStorageUrl,
		})
		if err != nil {
			ctx.WithField("err", err).Error("NewCloudStorageWriterRepo failed")
			return nil, err
		}
		wrCfg.Writer = w
	}

	return webresourceUsecase.NewWebResourceUseCase(wrCfg), nil
}

// SetPrivateKey replaces the signer of every module, an empty key removes it
func (s *SDK) SetPrivateKey(ctx bCtx.Ctx, hexKey string) error {
	if len(hexKey) == 0 {
		s.provider.SetSigner(nil)
		return nil
	}
	key, err := ethereum.ParsePrivateKey(hexKey)
	if err != nil {
		ctx.WithField("err", err).Error("ethereum.ParsePrivateKey failed")
		return xerrors.Errorf("invalid private key: %w", domain.ErrInvalidArgument)
	}
	s.provider.SetSigner(key)
	return nil
}

func (s *SDK) SignerAddress() (domain.Address, bool) {
	return s.provider.SignerAddress()
}

func (s *SDK) Metadata() domain.MetadataUseCase {
	return s.metadata
}

// ResolveAddress accepts a hex address or an ens name
func (s *SDK) ResolveAddress(ctx bCtx.Ctx, nameOrAddress string) (domain.Address, error) {
	if validator.IsValidAddress(nameOrAddress) {
		return domain.Address(nameOrAddress), nil
	}
	if s.ens == nil || !strings.Contains(nameOrAddress, ".") {
		return "", xerrors.Errorf("%s: %w", nameOrAddress, domain.ErrInvalidAddress)
	}
	addr, err := s.ens.Resolve(ctx, nameOrAddress)
	if err != nil {
		ctx.WithFields(log.Fields{
			"name": nameOrAddress,
			"err":  err,
		}).Error("ens.Resolve failed")
		return "", err
	}
	return addr, nil
}

// LookupName returns the primary ens name of address, empty when it has none
func (s *SDK) LookupName(ctx bCtx.Ctx, address domain.Address) (string, error) {
	if !validator.IsValidAddress(address.String()) {
		return "", xerrors.Errorf("%s: %w", address, domain.ErrInvalidAddress)
	}
	if s.ens == nil {
		return "", xerrors.Errorf("ens resolver: %w", domain.ErrNotImplemented)
	}
	name, err := s.ens.ReverseResolve(ctx, address)
	if err != nil {
		ctx.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("ens.ReverseResolve failed")
		return "", err
	}
	return name, nil
}

func (s *SDK) GetNftModule(address domain.Address) (nft.UseCase, error) {
	m, err := s.module(ModuleNft, address, func() interface{} {
		return nftUsecase.NewNftUseCase(&nftUsecase.NftUseCaseCfg{
			Contract: s.provider.New(address, baseabi.TokenERC721ABI),
			Metadata: s.metadata,
		})
	})
	if err != nil {
		return nil, err
	}
	return m.(nft.UseCase), nil
}

func (s *SDK) GetEditionModule(address domain.Address) (edition.UseCase, error) {
	m, err := s.module(ModuleEdition, address, func() interface{} {
		return editionUsecase.NewEditionUseCase(&editionUsecase.EditionUseCaseCfg{
			Contract: s.provider.New(address, baseabi.TokenERC1155ABI),
			Metadata: s.metadata,
		})
	})
	if err != nil {
		return nil, err
	}
	return m.(edition.UseCase), nil
}

func (s *SDK) GetCollectionModule(address domain.Address) (collection.UseCase, error) {
	m, err := s.module(ModuleCollection, address, func() interface{} {
		return collectionUsecase.NewCollectionUseCase(&collectionUsecase.CollectionUseCaseCfg{
			Contract: s.provider.New(address, baseabi.CollectionABI),
			Metadata: s.metadata,
		})
	})
	if err != nil {
		return nil, err
	}
	return m.(collection.UseCase), nil
}

func (s *SDK) GetTokenModule(address domain.Address) (token.UseCase, error) {
	m, err := s.module(ModuleToken, address, func() interface{} {
		return tokenUsecase.NewTokenUseCase(&tokenUsecase.TokenUseCaseCfg{
			Contract: s.provider.New(address, baseabi.TokenERC20ABI),
		})
	})
	if err != nil {
		return nil, err
	}
	return m.(token.UseCase), nil
}

func (s *SDK) GetMarketModule(address domain.Address) (market.UseCase, error) {
	m, err := s.module(ModuleMarket, address, func() interface{} {
		return marketUsecase.NewMarketUseCase(&marketUsecase.MarketUseCaseCfg{
			Contract:       s.provider.New(address, baseabi.MarketABI),
			Factory:        s.provider,
			FilterPriority: s.filterPriority,
		})
	})
	if err != nil {
		return nil, err
	}
	return m.(market.UseCase), nil
}

func (s *SDK) module(kind ModuleKind, address domain.Address, create func() interface{}) (interface{}, error) {
	if !validator.IsValidAddress(address.String()) {
		return nil, xerrors.Errorf("%s module at %s: %w", kind, address, domain.ErrInvalidAddress)
	}
	key := moduleKey{kind: kind, address: address.ToLower()}

	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.modules[key]; ok {
		return m, nil
	}
	m := create()
	s.modules[key] = m
	return m, nil
}
