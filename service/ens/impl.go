package ens

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	goens "github.com/wealdtech/go-ens/v3"
	"golang.org/x/xerrors"

	"github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/base/log"
	"github.com/x-xyz/gosdk/domain"
)

// Resolver maps ens names to addresses and back
type Resolver interface {
	// Resolve returns domain.ErrNotFound for unregistered names and names without an address record
	Resolve(ctx ctx.Ctx, name string) (domain.Address, error)
	// ReverseResolve returns an empty name when the address has no reverse record
	ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error)
}

type resolver struct {
	backend bind.ContractBackend
}

// New resolves against the ens registry reachable through backend
func New(backend bind.ContractBackend) Resolver {
	return &resolver{backend: backend}
}

func (r *resolver) Resolve(ctx ctx.Ctx, name string) (domain.Address, error) {
	normalised, err := goens.NormaliseDomain(name)
	if err != nil {
		return "", xerrors.Errorf("invalid ens name %s: %w", name, domain.ErrInvalidArgument)
	}
	addr, err := goens.Resolve(r.backend, normalised)
	switch fmt.Sprint(err) {
	case "unregistered name", "no address":
		return "", xerrors.Errorf("%s: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		ctx.WithFields(log.Fields{
			"name": name,
			"err":  err,
		}).Error("goens.Resolve failed")
		return "", err
	}
	res := domain.AddressFromCommon(addr)
	if res.IsZero() {
		return "", xerrors.Errorf("%s: %w", name, domain.ErrNotFound)
	}
	return res, nil
}

func (r *resolver) ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error) {
	name, err := goens.ReverseResolve(r.backend, address.ToCommon())
	if fmt.Sprint(err) == "not a resolver" {
		return "", nil
	}
	if err != nil {
		ctx.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("goens.ReverseResolve failed")
		return "", err
	}
	return name, nil
}
