package main

import (
	"errors"
	"math/big"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	bCtx "github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/base/log"
	"github.com/x-xyz/gosdk/domain"
	"github.com/x-xyz/gosdk/sdk"
)

var (
	configPath = pflag.StringP("config", "c", "infra/configs/nftcli/config.yaml", "config file")
	assetFlag  = pflag.String("asset", "", "listings: filter by asset contract")
	tokenFlag  = pflag.String("token-id", "", "listings: filter by token id, requires --asset")
	sellerFlag = pflag.String("seller", "", "listings: filter by seller")
)

func main() {
	ctx := bCtx.Background()

	debug := pflag.Bool("debug", false, "debug logging")
	rpc := pflag.String("rpc", "", "rpc url, overrides rpc.url")
	pflag.Usage = func() {
		usage(os.Stderr)
		pflag.PrintDefaults()
	}
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configPath)
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}
	if *debug {
		viper.Set("debug", true)
	}
	if len(*rpc) > 0 {
		viper.Set("rpc.url", *rpc)
	}

	cfg, err := sdk.ConfigFromViper(viper.GetViper())
	if err != nil {
		ctx.WithField("err", err).Panic("sdk.ConfigFromViper failed")
	}
	if err := log.Init(cfg.Debug); err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()
	ctx = bCtx.Background()

	s, err := sdk.NewFromConfig(ctx, cfg)
	if err != nil {
		ctx.WithField("err", err).Panic("sdk.NewFromConfig failed")
	}

	r := &runner{sdk: s, out: os.Stdout}
	if err := r.setFilter(ctx, *assetFlag, *tokenFlag, *sellerFlag); err != nil {
		ctx.WithField("err", err).Error("invalid filter")
		os.Exit(2)
	}
	if err := r.run(ctx, pflag.Args()); err != nil {
		if errors.Is(err, errUsage) {
			pflag.Usage()
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func (r *runner) setFilter(ctx bCtx.Ctx, asset, tokenId, seller string) error {
	if len(asset) > 0 {
		addr, err := r.address(ctx, asset)
		if err != nil {
			return err
		}
		r.filter.AssetContract = addr
	}
	if len(tokenId) > 0 {
		if len(asset) == 0 {
			return domain.ErrInvalidArgument
		}
		id, ok := new(big.Int).SetString(tokenId, 0)
		if !ok {
			return domain.ErrInvalidArgument
		}
		r.filter.TokenId = id
	}
	if len(seller) > 0 {
		addr, err := r.address(ctx, seller)
		if err != nil {
			return err
		}
		r.filter.Seller = addr
	}
	return nil
}
