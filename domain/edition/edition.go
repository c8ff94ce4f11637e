package edition

import (
	"math/big"

	"github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/domain"
	"github.com/x-xyz/gosdk/domain/role"
)

type Edition struct {
	Metadata *domain.Metadata `json:"metadata"`
	Supply   *big.Int         `json:"supply"`
}

type MintArg struct {
	Metadata *domain.Metadata `validate:"required"`
	Supply   *big.Int         `validate:"required"`
}

// UseCase drives a TokenERC1155 contract
type UseCase interface {
	role.UseCase

	Address() domain.Address
	AssetOps() domain.AssetOps

	Get(c ctx.Ctx, tokenId *big.Int) (*Edition, error)
	GetAll(c ctx.Ctx) ([]*Edition, error)
	TotalSupply(c ctx.Ctx, tokenId *big.Int) (*big.Int, error)
	BalanceOf(c ctx.Ctx, owner domain.Address, tokenId *big.Int) (*big.Int, error)
	Balance(c ctx.Ctx, tokenId *big.Int) (*big.Int, error)

	IsApproved(c ctx.Ctx, owner, operator domain.Address) (bool, error)
	SetApproval(c ctx.Ctx, operator domain.Address, approved bool) error
	Transfer(c ctx.Ctx, to domain.Address, tokenId, amount *big.Int) error
	TransferFrom(c ctx.Ctx, from, to domain.Address, tokenId, amount *big.Int) error
	TransferBatchFrom(c ctx.Ctx, from, to domain.Address, tokenIds, amounts []*big.Int) error

	Mint(c ctx.Ctx, arg *MintArg) (*Edition, error)
	MintTo(c ctx.Ctx, to domain.Address, arg *MintArg) (*Edition, error)
	MintAdditionalSupply(c ctx.Ctx, tokenId, amount *big.Int) (*Edition, error)
	MintAdditionalSupplyTo(c ctx.Ctx, to domain.Address, tokenId, amount *big.Int) (*Edition, error)
	// MintBatch and MintBatchTo return domain.ErrNotImplemented
	MintBatch(c ctx.Ctx, args []*MintArg) ([]*Edition, error)
	MintBatchTo(c ctx.Ctx, to domain.Address, args []*MintArg) ([]*Edition, error)

	Burn(c ctx.Ctx, tokenId, amount *big.Int) error
	BurnBatch(c ctx.Ctx, tokenIds, amounts []*big.Int) error

	SetRoyaltyBps(c ctx.Ctx, recipient domain.Address, bps uint64) error
}
