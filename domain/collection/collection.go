package collection

import (
	"math/big"

	"github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/domain"
	"github.com/x-xyz/gosdk/domain/role"
)

type Collection struct {
	Id       *big.Int         `json:"id"`
	Metadata *domain.Metadata `json:"metadata"`
	Supply   *big.Int         `json:"supply"`
	Creator  domain.Address   `json:"creator"`
}

type CreateArg struct {
	Metadata *domain.Metadata `validate:"required"`
	Supply   *big.Int
}

type MintArg struct {
	TokenId *big.Int `validate:"required"`
	Amount  *big.Int `validate:"required"`
}

// UseCase drives an erc1155 collection contract with creator tracking
type UseCase interface {
	role.UseCase

	Address() domain.Address
	AssetOps() domain.AssetOps

	Get(c ctx.Ctx, tokenId *big.Int) (*Collection, error)
	GetAll(c ctx.Ctx) ([]*Collection, error)
	BalanceOf(c ctx.Ctx, owner domain.Address, tokenId *big.Int) (*big.Int, error)
	Balance(c ctx.Ctx, tokenId *big.Int) (*big.Int, error)

	IsApproved(c ctx.Ctx, owner, operator domain.Address) (bool, error)
	SetApproval(c ctx.Ctx, operator domain.Address, approved bool) error
	Transfer(c ctx.Ctx, to domain.Address, arg *MintArg) error
	TransferFrom(c ctx.Ctx, from, to domain.Address, arg *MintArg) error
	TransferBatchFrom(c ctx.Ctx, from, to domain.Address, args []*MintArg) error

	Create(c ctx.Ctx, meta *domain.Metadata) (*Collection, error)
	CreateBatch(c ctx.Ctx, metas []*domain.Metadata) ([]*Collection, error)
	CreateAndMint(c ctx.Ctx, arg *CreateArg) (*Collection, error)
	CreateAndMintBatch(c ctx.Ctx, args []*CreateArg) ([]*Collection, error)
	CreateWithErc20(c ctx.Ctx, tokenContract domain.Address, tokenAmount *big.Int, arg *CreateArg) (*Collection, error)
	CreateWithErc721(c ctx.Ctx, tokenContract domain.Address, tokenId *big.Int, meta *domain.Metadata) (*Collection, error)

	Mint(c ctx.Ctx, arg *MintArg) error
	MintTo(c ctx.Ctx, to domain.Address, arg *MintArg) error
	MintBatch(c ctx.Ctx, args []*MintArg) error
	MintBatchTo(c ctx.Ctx, to domain.Address, args []*MintArg) error

	Burn(c ctx.Ctx, arg *MintArg) error
	BurnFrom(c ctx.Ctx, account domain.Address, arg *MintArg) error
	BurnBatch(c ctx.Ctx, args []*MintArg) error
	BurnBatchFrom(c ctx.Ctx, account domain.Address, args []*MintArg) error

	SetRoyaltyBps(c ctx.Ctx, bps uint64) error
}
