package usecase

import (
	"math/big"

	bCtx "github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/base/log"
	"github.com/x-xyz/gosdk/domain"
	"github.com/x-xyz/gosdk/domain/role"
	"github.com/x-xyz/gosdk/domain/token"
	roleUsecase "github.com/x-xyz/gosdk/stores/role/usecase"
)

type TokenUseCaseCfg struct {
	Contract domain.ContractWrapper
}

type tokenUseCase struct {
	role.UseCase
	contract domain.ContractWrapper
}

func NewTokenUseCase(cfg *TokenUseCaseCfg) token.UseCase {
	return &tokenUseCase{
		UseCase:  roleUsecase.NewRoleUseCase(&roleUsecase.RoleUseCaseCfg{Contract: cfg.Contract, Roles: role.AssetRoles}),
		contract: cfg.Contract,
	}
}

func (u *tokenUseCase) Address() domain.Address {
	return u.contract.Address()
}

func (u *tokenUseCase) Get(c bCtx.Ctx) (*token.Currency, error) {
	name, err := u.contract.Call(c, "name")
	if err != nil {
		c.WithField("err", err).Error("name failed")
		return nil, err
	}
	symbol, err := u.contract.Call(c, "symbol")
	if err != nil {
		c.WithField("err", err).Error("symbol failed")
		return nil, err
	}
	decimals, err := u.contract.Call(c, "decimals")
	if err != nil {
		c.WithField("err", err).Error("decimals failed")
		return nil, err
	}
	return &token.Currency{
		Name:     name[0].(string),
		Symbol:   symbol[0].(string),
		Decimals: decimals[0].(uint8),
	}, nil
}

func (u *tokenUseCase) TotalSupply(c bCtx.Ctx) (*token.CurrencyValue, error) {
	return u.value(c, "totalSupply")
}

func (u *tokenUseCase) BalanceOf(c bCtx.Ctx, owner domain.Address) (*token.CurrencyValue, error) {
	return u.value(c, "balanceOf", owner.ToCommon())
}

func (u *tokenUseCase) Balance(c bCtx.Ctx) (*token.CurrencyValue, error) {
	signer, err := u.signer()
	if err != nil {
		return nil, err
	}
	return u.BalanceOf(c, signer)
}

func (u *tokenUseCase) Allowance(c bCtx.Ctx, spender domain.Address) (*token.CurrencyValue, error) {
	signer, err := u.signer()
	if err != nil {
		return nil, err
	}
	return u.AllowanceOf(c, signer, spender)
}

func (u *tokenUseCase) AllowanceOf(c bCtx.Ctx, owner, spender domain.Address) (*token.CurrencyValue, error) {
	return u.value(c, "allowance", owner.ToCommon(), spender.ToCommon())
}

func (u *tokenUseCase) SetAllowance(c bCtx.Ctx, spender domain.Address, amount *big.Int) error {
	return u.send(c, "approve", spender.ToCommon(), amount)
}

func (u *tokenUseCase) IncreaseAllowance(c bCtx.Ctx, spender domain.Address, amount *big.Int) error {
	return u.send(c, "increaseAllowance", spender.ToCommon(), amount)
}

func (u *tokenUseCase) Transfer(c bCtx.Ctx, to domain.Address, amount *big.Int) error {
	return u.send(c, "transfer", to.ToCommon(), amount)
}

func (u *tokenUseCase) TransferFrom(c bCtx.Ctx, from, to domain.Address, amount *big.Int) error {
	return u.send(c, "transferFrom", from.ToCommon(), to.ToCommon(), amount)
}

func (u *tokenUseCase) Mint(c bCtx.Ctx, amount *big.Int) error {
	signer, err := u.signer()
	if err != nil {
		return err
	}
	return u.MintTo(c, signer, amount)
}

func (u *tokenUseCase) MintTo(c bCtx.Ctx, to domain.Address, amount *big.Int) error {
	return u.send(c, "mintTo", to.ToCommon(), amount)
}

func (u *tokenUseCase) Burn(c bCtx.Ctx, amount *big.Int) error {
	return u.send(c, "burn", amount)
}

func (u *tokenUseCase) BurnFrom(c bCtx.Ctx, from domain.Address, amount *big.Int) error {
	return u.send(c, "burnFrom", from.ToCommon(), amount)
}

// value reads a uint256 and decorates it with the currency
func (u *tokenUseCase) value(c bCtx.Ctx, method string, args ...interface{}) (*token.CurrencyValue, error) {
	currency, err := u.Get(c)
	if err != nil {
		return nil, err
	}
	res, err := u.contract.Call(c, method, args...)
	if err != nil {
		c.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("contract.Call failed")
		return nil, err
	}
	return token.NewCurrencyValue(*currency, res[0].(*big.Int)), nil
}

func (u *tokenUseCase) send(c bCtx.Ctx, method string, args ...interface{}) error {
	if _, err := u.contract.SendTransaction(c, method, args...); err != nil {
		c.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("contract.SendTransaction failed")
		return err
	}
	return nil
}

func (u *tokenUseCase) signer() (domain.Address, error) {
	signer, ok := u.contract.SignerAddress()
	if !ok {
		return "", domain.ErrNoSigner
	}
	return signer, nil
}
