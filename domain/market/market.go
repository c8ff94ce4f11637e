package market

import (
	"math/big"
	"time"

	"github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/domain"
	"github.com/x-xyz/gosdk/domain/role"
)

type Listing struct {
	Id             *big.Int         `json:"id"`
	Seller         domain.Address   `json:"seller"`
	AssetContract  domain.Address   `json:"assetContract"`
	TokenId        *big.Int         `json:"tokenId"`
	Quantity       *big.Int         `json:"quantity"`
	Currency       domain.Address   `json:"currency"`
	PricePerToken  *big.Int         `json:"pricePerToken"`
	TokensPerBuyer *big.Int         `json:"tokensPerBuyer"`
	SaleStart      time.Time        `json:"saleStart"`
	SaleEnd        time.Time        `json:"saleEnd"`
	TokenType      domain.TokenType `json:"tokenType"`
}

// IsNative reports whether the listing is priced in the chain's native coin
func (l *Listing) IsNative() bool {
	return l.Currency.IsZero()
}

// TotalPrice returns pricePerToken * quantity
func (l *Listing) TotalPrice(quantity *big.Int) *big.Int {
	return new(big.Int).Mul(l.PricePerToken, quantity)
}

type ListArg struct {
	AssetContract     domain.Address `validate:"required,address"`
	TokenId           *big.Int       `validate:"required"`
	Currency          domain.Address `validate:"omitempty,address"`
	PricePerToken     *big.Int       `validate:"required"`
	Quantity          *big.Int       `validate:"required"`
	TokensPerBuyer    *big.Int
	SecondsUntilStart *big.Int
	SecondsUntilEnd   *big.Int
}

// Filter selects listings, only one dimension is honoured, see FilterPriority
type Filter struct {
	AssetContract domain.Address
	TokenId       *big.Int
	Seller        domain.Address
}

func (f *Filter) IsEmpty() bool {
	return f == nil || (f.AssetContract.IsEmpty() && f.Seller.IsEmpty())
}

type FilterPriority string

const (
	AssetFirst  FilterPriority = "asset"
	SellerFirst FilterPriority = "seller"
)

// UseCase drives a marketplace contract
type UseCase interface {
	role.UseCase

	Address() domain.Address

	List(c ctx.Ctx, arg *ListArg) (*Listing, error)
	Unlist(c ctx.Ctx, listingId, quantity *big.Int) error
	UnlistAll(c ctx.Ctx, listingId *big.Int) error
	Buy(c ctx.Ctx, listingId, quantity *big.Int) error

	Get(c ctx.Ctx, listingId *big.Int) (*Listing, error)
	GetAll(c ctx.Ctx, filter *Filter) ([]*Listing, error)
	TotalListings(c ctx.Ctx) (*big.Int, error)

	SetMarketFeeBps(c ctx.Ctx, bps uint64) error
}
