package domain

import (
	"math/big"

	"github.com/x-xyz/gosdk/base/ctx"
)

// AssetOps is the approval surface the market needs from an asset contract.
type AssetOps interface {
	TokenType() TokenType
	// IsApproved reports whether operator may move tokenId on behalf of owner
	IsApproved(c ctx.Ctx, owner, operator Address, tokenId *big.Int) (bool, error)
	SetApproval(c ctx.Ctx, operator Address, approved bool) error
}
