package main

import (
	"encoding/json"
	"io"
	"math/big"
	"sort"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/domain"
	"github.com/x-xyz/gosdk/domain/market"
	"github.com/x-xyz/gosdk/domain/role"
	"github.com/x-xyz/gosdk/sdk"
)

var errUsage = xerrors.New("usage")

type command struct {
	args  string
	nargs int
	run   func(r *runner, ctx bCtx.Ctx, args []string) (interface{}, error)
}

var commands = map[string]command{
	"listing":  {args: "<market> <listingId>", nargs: 2, run: (*runner).listing},
	"listings": {args: "<market>", nargs: 1, run: (*runner).listings},
	"balance":  {args: "<token> [owner]", nargs: 1, run: (*runner).balance},
	"nft":      {args: "<contract> <tokenId>", nargs: 2, run: (*runner).nft},
	"roles":    {args: "<nft|edition|collection|token|market> <contract>", nargs: 2, run: (*runner).roles},
	"metadata": {args: "<uri>", nargs: 1, run: (*runner).metadata},
}

type runner struct {
	sdk    *sdk.SDK
	out    io.Writer
	filter market.Filter
}

func usage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	_, _ = io.WriteString(w, "usage: nftcli [flags] <command> [args]\n")
	for _, name := range names {
		_, _ = io.WriteString(w, "  "+name+" "+commands[name].args+"\n")
	}
}

func (r *runner) run(ctx bCtx.Ctx, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, ok := commands[args[0]]
	if !ok || len(args)-1 < cmd.nargs {
		return errUsage
	}
	res, err := cmd.run(r, ctx, args[1:])
	if err != nil {
		ctx.WithField("err", err).Error(args[0] + " failed")
		return err
	}
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func (r *runner) address(ctx bCtx.Ctx, nameOrAddress string) (domain.Address, error) {
	return r.sdk.ResolveAddress(ctx, nameOrAddress)
}

func parseId(s string) (*big.Int, error) {
	id, ok := new(big.Int).SetString(s, 0)
	if !ok || id.Sign() < 0 {
		return nil, xerrors.Errorf("invalid id %s: %w", s, domain.ErrInvalidArgument)
	}
	return id, nil
}

func (r *runner) marketModule(ctx bCtx.Ctx, nameOrAddress string) (market.UseCase, error) {
	addr, err := r.address(ctx, nameOrAddress)
	if err != nil {
		return nil, err
	}
	return r.sdk.GetMarketModule(addr)
}

func (r *runner) listing(ctx bCtx.Ctx, args []string) (interface{}, error) {
	id, err := parseId(args[1])
	if err != nil {
		return nil, err
	}
	m, err := r.marketModule(ctx, args[0])
	if err != nil {
		return nil, err
	}
	return m.Get(ctx, id)
}

func (r *runner) listings(ctx bCtx.Ctx, args []string) (interface{}, error) {
	m, err := r.marketModule(ctx, args[0])
	if err != nil {
		return nil, err
	}
	return m.GetAll(ctx, &r.filter)
}

func (r *runner) balance(ctx bCtx.Ctx, args []string) (interface{}, error) {
	addr, err := r.address(ctx, args[0])
	if err != nil {
		return nil, err
	}
	t, err := r.sdk.GetTokenModule(addr)
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		return t.Balance(ctx)
	}
	owner, err := r.address(ctx, args[1])
	if err != nil {
		return nil, err
	}
	return t.BalanceOf(ctx, owner)
}

func (r *runner) nft(ctx bCtx.Ctx, args []string) (interface{}, error) {
	id, err := parseId(args[1])
	if err != nil {
		return nil, err
	}
	addr, err := r.address(ctx, args[0])
	if err != nil {
		return nil, err
	}
	n, err := r.sdk.GetNftModule(addr)
	if err != nil {
		return nil, err
	}
	return n.Get(ctx, id)
}

func (r *runner) roles(ctx bCtx.Ctx, args []string) (interface{}, error) {
	addr, err := r.address(ctx, args[1])
	if err != nil {
		return nil, err
	}
	var m role.UseCase
	switch sdk.ModuleKind(args[0]) {
	case sdk.ModuleNft:
		m, err = r.sdk.GetNftModule(addr)
	case sdk.ModuleEdition:
		m, err = r.sdk.GetEditionModule(addr)
	case sdk.ModuleCollection:
		m, err = r.sdk.GetCollectionModule(addr)
	case sdk.ModuleToken:
		m, err = r.sdk.GetTokenModule(addr)
	case sdk.ModuleMarket:
		m, err = r.sdk.GetMarketModule(addr)
	default:
		return nil, xerrors.Errorf("unknown module %s: %w", args[0], domain.ErrInvalidArgument)
	}
	if err != nil {
		return nil, err
	}
	return m.GetAllRoleMembers(ctx)
}

func (r *runner) metadata(ctx bCtx.Ctx, args []string) (interface{}, error) {
	return r.sdk.Metadata().Resolve(ctx, args[0])
}
