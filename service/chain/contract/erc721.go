package contract

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	bCtx "github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/domain"
)

type Erc721 struct {
	w domain.ContractWrapper
}

func NewErc721(w domain.ContractWrapper) *Erc721 {
	return &Erc721{w: w}
}

func (e *Erc721) TokenType() domain.TokenType {
	return domain.TokenType721
}

// IsApproved accepts either an operator approval or a single token approval
func (e *Erc721) IsApproved(ctx bCtx.Ctx, owner, operator domain.Address, tokenId *big.Int) (bool, error) {
	res, err := e.w.Call(ctx, "isApprovedForAll", owner.ToCommon(), operator.ToCommon())
	if err != nil {
		ctx.WithField("err", err).Error("isApprovedForAll failed")
		return false, err
	}
	if res[0].(bool) || tokenId == nil {
		return res[0].(bool), nil
	}
	res, err = e.w.Call(ctx, "getApproved", tokenId)
	if err != nil {
		ctx.WithField("err", err).Error("getApproved failed")
		return false, err
	}
	return domain.AddressFromCommon(res[0].(common.Address)).Equals(operator), nil
}

func (e *Erc721) SetApproval(ctx bCtx.Ctx, operator domain.Address, approved bool) error {
	if _, err := e.w.SendTransaction(ctx, "setApprovalForAll", operator.ToCommon(), approved); err != nil {
		ctx.WithField("err", err).Error("setApprovalForAll failed")
		return err
	}
	return nil
}
