package token

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/domain"
	"github.com/x-xyz/gosdk/domain/role"
)

type Currency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}

type CurrencyValue struct {
	Currency
	Value        *big.Int `json:"value"`
	DisplayValue string   `json:"displayValue"`
}

func NewCurrencyValue(c Currency, value *big.Int) *CurrencyValue {
	return &CurrencyValue{
		Currency:     c,
		Value:        value,
		DisplayValue: decimal.NewFromBigInt(value, -int32(c.Decimals)).String(),
	}
}

// UseCase drives a TokenERC20 contract
type UseCase interface {
	role.UseCase

	Address() domain.Address

	Get(c ctx.Ctx) (*Currency, error)
	TotalSupply(c ctx.Ctx) (*CurrencyValue, error)
	BalanceOf(c ctx.Ctx, owner domain.Address) (*CurrencyValue, error)
	Balance(c ctx.Ctx) (*CurrencyValue, error)
	Allowance(c ctx.Ctx, spender domain.Address) (*CurrencyValue, error)
	AllowanceOf(c ctx.Ctx, owner, spender domain.Address) (*CurrencyValue, error)

	SetAllowance(c ctx.Ctx, spender domain.Address, amount *big.Int) error
	IncreaseAllowance(c ctx.Ctx, spender domain.Address, amount *big.Int) error
	Transfer(c ctx.Ctx, to domain.Address, amount *big.Int) error
	TransferFrom(c ctx.Ctx, from, to domain.Address, amount *big.Int) error
	Mint(c ctx.Ctx, amount *big.Int) error
	MintTo(c ctx.Ctx, to domain.Address, amount *big.Int) error
	Burn(c ctx.Ctx, amount *big.Int) error
	BurnFrom(c ctx.Ctx, from domain.Address, amount *big.Int) error
}
