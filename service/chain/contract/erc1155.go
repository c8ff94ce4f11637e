package contract

import (
	"math/big"

	bCtx "github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/domain"
)

type Erc1155 struct {
	w domain.ContractWrapper
}

func NewErc1155(w domain.ContractWrapper) *Erc1155 {
	return &Erc1155{w: w}
}

func (e *Erc1155) TokenType() domain.TokenType {
	return domain.TokenType1155
}

// IsApproved only knows operator approvals, erc1155 has no per token approval
func (e *Erc1155) IsApproved(ctx bCtx.Ctx, owner, operator domain.Address, _ *big.Int) (bool, error) {
	res, err := e.w.Call(ctx, "isApprovedForAll", owner.ToCommon(), operator.ToCommon())
	if err != nil {
		ctx.WithField("err", err).Error("isApprovedForAll failed")
		return false, err
	}
	return res[0].(bool), nil
}

func (e *Erc1155) SetApproval(ctx bCtx.Ctx, operator domain.Address, approved bool) error {
	if _, err := e.w.SendTransaction(ctx, "setApprovalForAll", operator.ToCommon(), approved); err != nil {
		ctx.WithField("err", err).Error("setApprovalForAll failed")
		return err
	}
	return nil
}
