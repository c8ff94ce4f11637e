package nft

import (
	"math/big"

	"github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/domain"
	"github.com/x-xyz/gosdk/domain/role"
)

// UseCase drives a TokenERC721 contract
type UseCase interface {
	role.UseCase

	Address() domain.Address
	AssetOps() domain.AssetOps

	Get(c ctx.Ctx, tokenId *big.Int) (*domain.Metadata, error)
	GetAll(c ctx.Ctx) ([]*domain.Metadata, error)
	GetOwned(c ctx.Ctx, owner domain.Address) ([]*domain.Metadata, error)
	OwnerOf(c ctx.Ctx, tokenId *big.Int) (domain.Address, error)
	TotalSupply(c ctx.Ctx) (*big.Int, error)
	BalanceOf(c ctx.Ctx, owner domain.Address) (*big.Int, error)
	Balance(c ctx.Ctx) (*big.Int, error)

	IsApproved(c ctx.Ctx, owner, operator domain.Address) (bool, error)
	SetApproval(c ctx.Ctx, operator domain.Address, approved bool) error
	Transfer(c ctx.Ctx, to domain.Address, tokenId *big.Int) error
	TransferFrom(c ctx.Ctx, from, to domain.Address, tokenId *big.Int) error

	Mint(c ctx.Ctx, meta *domain.Metadata) (*domain.Metadata, error)
	MintTo(c ctx.Ctx, to domain.Address, meta *domain.Metadata) (*domain.Metadata, error)
	MintBatch(c ctx.Ctx, metas []*domain.Metadata) ([]*domain.Metadata, error)
	MintBatchTo(c ctx.Ctx, to domain.Address, metas []*domain.Metadata) ([]*domain.Metadata, error)
	Burn(c ctx.Ctx, tokenId *big.Int) error

	SetRoyaltyBps(c ctx.Ctx, recipient domain.Address, bps uint64) error
}
