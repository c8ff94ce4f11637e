package contract

import (
	"math/big"

	bCtx "github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/domain"
)

// Erc20 is the allowance surface the market needs from a currency contract
type Erc20 struct {
	w domain.ContractWrapper
}

func NewErc20(w domain.ContractWrapper) *Erc20 {
	return &Erc20{w: w}
}

func (e *Erc20) Allowance(ctx bCtx.Ctx, owner, spender domain.Address) (*big.Int, error) {
	res, err := e.w.Call(ctx, "allowance", owner.ToCommon(), spender.ToCommon())
	if err != nil {
		ctx.WithField("err", err).Error("allowance failed")
		return nil, err
	}
	return res[0].(*big.Int), nil
}

func (e *Erc20) IncreaseAllowance(ctx bCtx.Ctx, spender domain.Address, amount *big.Int) error {
	if _, err := e.w.SendTransaction(ctx, "increaseAllowance", spender.ToCommon(), amount); err != nil {
		ctx.WithField("err", err).Error("increaseAllowance failed")
		return err
	}
	return nil
}
