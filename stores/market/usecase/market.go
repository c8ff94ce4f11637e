package usecase

import (
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"golang.org/x/xerrors"

	baseabi "github.com/x-xyz/gosdk/base/abi"
	bCtx "github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/base/log"
	"github.com/x-xyz/gosdk/base/validator"
	"github.com/x-xyz/gosdk/domain"
	"github.com/x-xyz/gosdk/domain/market"
	"github.com/x-xyz/gosdk/domain/role"
	"github.com/x-xyz/gosdk/service/chain/contract"
	roleUsecase "github.com/x-xyz/gosdk/stores/role/usecase"
)

const newListingEvent = "NewListing"

// MarketRoles are the roles the marketplace contract defines
var MarketRoles = []role.Role{role.Admin, role.Lister, role.Pauser}

// token type enum of the marketplace contract
const (
	listingTokenType1155 uint8 = 0
	listingTokenType721  uint8 = 1
)

type MarketUseCaseCfg struct {
	Contract domain.ContractWrapper
	// Factory wraps the asset and currency contracts a listing refers to
	Factory        domain.ContractFactory
	FilterPriority market.FilterPriority
}

type marketUseCase struct {
	role.UseCase
	contract       domain.ContractWrapper
	factory        domain.ContractFactory
	filterPriority market.FilterPriority

	// asset approval ops keyed by lower case asset address, the token type of
	// a deployed contract never changes
	assetsMu sync.Mutex
	assets   map[string]domain.AssetOps
}

func NewMarketUseCase(cfg *MarketUseCaseCfg) market.UseCase {
	priority := cfg.FilterPriority
	if priority != market.SellerFirst {
		priority = market.AssetFirst
	}
	return &marketUseCase{
		UseCase:        roleUsecase.NewRoleUseCase(&roleUsecase.RoleUseCaseCfg{Contract: cfg.Contract, Roles: MarketRoles}),
		contract:       cfg.Contract,
		factory:        cfg.Factory,
		filterPriority: priority,
		assets:         make(map[string]domain.AssetOps),
	}
}

func (u *marketUseCase) Address() domain.Address {
	return u.contract.Address()
}

// List approves the market as operator of the seller's assets when needed, then lists
func (u *marketUseCase) List(c bCtx.Ctx, arg *market.ListArg) (*market.Listing, error) {
	seller, err := u.signer()
	if err != nil {
		return nil, err
	}
	if arg == nil {
		return nil, xerrors.Errorf("nil list arg: %w", domain.ErrInvalidArgument)
	}
	if err := validator.Validate(arg); err != nil {
		return nil, err
	}
	c = bCtx.WithOperation(c, "market.list")

	ops, err := u.assetOps(c, arg.AssetContract)
	if err != nil {
		return nil, err
	}
	approved, err := ops.IsApproved(c, seller, u.Address(), arg.TokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"assetContract": arg.AssetContract,
			"err":           err,
		}).Error("assetOps.IsApproved failed")
		return nil, err
	}
	if !approved {
		c.WithField("assetContract", arg.AssetContract).Info("approving market as operator")
		if err := ops.SetApproval(c, u.Address(), true); err != nil {
			c.WithFields(log.Fields{
				"assetContract": arg.AssetContract,
				"err":           err,
			}).Error("assetOps.SetApproval failed")
			return nil, err
		}
	}

	currency := arg.Currency
	if currency.IsEmpty() {
		currency = domain.NativeCurrency
	}
	receipt, err := u.contract.SendTransaction(c, "list",
		arg.AssetContract.ToCommon(),
		arg.TokenId,
		currency.ToCommon(),
		arg.PricePerToken,
		arg.Quantity,
		orZero(arg.TokensPerBuyer),
		orZero(arg.SecondsUntilStart),
		orZero(arg.SecondsUntilEnd),
	)
	if err != nil {
		c.WithFields(log.Fields{
			"assetContract": arg.AssetContract,
			"tokenId":       arg.TokenId,
			"err":           err,
		}).Error("list failed")
		return nil, err
	}

	events, err := u.contract.ParseEvents(receipt, newListingEvent)
	if err != nil {
		c.WithField("err", err).Error("contract.ParseEvents failed")
		return nil, err
	}
	return u.Get(c, events[0]["listingId"].(*big.Int))
}

func (u *marketUseCase) Unlist(c bCtx.Ctx, listingId, quantity *big.Int) error {
	if _, err := u.contract.SendTransaction(c, "unlist", listingId, quantity); err != nil {
		c.WithFields(log.Fields{
			"listingId": listingId,
			"quantity":  quantity,
			"err":       err,
		}).Error("unlist failed")
		return err
	}
	return nil
}

func (u *marketUseCase) UnlistAll(c bCtx.Ctx, listingId *big.Int) error {
	listing, err := u.Get(c, listingId)
	if err != nil {
		return err
	}
	return u.Unlist(c, listingId, listing.Quantity)
}

// Buy pays native listings with the transaction value, erc20 listings through
// an allowance raised only when it does not cover the total price
func (u *marketUseCase) Buy(c bCtx.Ctx, listingId, quantity *big.Int) error {
	buyer, err := u.signer()
	if err != nil {
		return err
	}
	if quantity == nil || quantity.Sign() <= 0 {
		return xerrors.Errorf("quantity must be positive: %w", domain.ErrInvalidArgument)
	}
	c = bCtx.WithOperation(c, "market.buy")

	listing, err := u.Get(c, listingId)
	if err != nil {
		return err
	}
	total := listing.TotalPrice(quantity)

	if listing.IsNative() {
		if _, err := u.contract.SendTransactionWithValue(c, total, "buy", listingId, quantity); err != nil {
			c.WithFields(log.Fields{
				"listingId": listingId,
				"quantity":  quantity,
				"value":     total,
				"err":       err,
			}).Error("buy failed")
			return err
		}
		return nil
	}

	erc20 := contract.NewErc20(u.factory.New(listing.Currency, baseabi.TokenERC20ABI))
	allowance, err := erc20.Allowance(c, buyer, u.Address())
	if err != nil {
		return err
	}
	if allowance.Cmp(total) < 0 {
		c.WithFields(log.Fields{
			"currency":  listing.Currency,
			"allowance": allowance,
			"total":     total,
		}).Info("increasing allowance")
		if err := erc20.IncreaseAllowance(c, u.Address(), total); err != nil {
			return err
		}
	}
	if _, err := u.contract.SendTransaction(c, "buy", listingId, quantity); err != nil {
		c.WithFields(log.Fields{
			"listingId": listingId,
			"quantity":  quantity,
			"err":       err,
		}).Error("buy failed")
		return err
	}
	return nil
}

func (u *marketUseCase) Get(c bCtx.Ctx, listingId *big.Int) (*market.Listing, error) {
	res, err := u.contract.Call(c, "getListing", listingId)
	if err != nil {
		c.WithFields(log.Fields{
			"listingId": listingId,
			"err":       err,
		}).Error("getListing failed")
		return nil, err
	}
	l := abi.ConvertType(res[0], new(baseabi.MarketListing)).(*baseabi.MarketListing)
	return toListing(l), nil
}

// GetAll honours one filter dimension, which one wins is the configured FilterPriority
func (u *marketUseCase) GetAll(c bCtx.Ctx, filter *market.Filter) ([]*market.Listing, error) {
	var (
		method string
		args   []interface{}
	)
	switch {
	case filter.IsEmpty():
		method = "getAllListings"
	case !filter.Seller.IsEmpty() && (u.filterPriority == market.SellerFirst || filter.AssetContract.IsEmpty()):
		method, args = "getListingsBySeller", []interface{}{filter.Seller.ToCommon()}
	case filter.TokenId != nil:
		method, args = "getListingsByAsset", []interface{}{filter.AssetContract.ToCommon(), filter.TokenId}
	default:
		method, args = "getListingsByAssetContract", []interface{}{filter.AssetContract.ToCommon()}
	}

	res, err := u.contract.Call(c, method, args...)
	if err != nil {
		c.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("contract.Call failed")
		return nil, err
	}
	ls := *abi.ConvertType(res[0], new([]baseabi.MarketListing)).(*[]baseabi.MarketListing)
	listings := make([]*market.Listing, 0, len(ls))
	for i := range ls {
		listings = append(listings, toListing(&ls[i]))
	}
	return listings, nil
}

func (u *marketUseCase) TotalListings(c bCtx.Ctx) (*big.Int, error) {
	res, err := u.contract.Call(c, "totalListings")
	if err != nil {
		c.WithField("err", err).Error("totalListings failed")
		return nil, err
	}
	return res[0].(*big.Int), nil
}

func (u *marketUseCase) SetMarketFeeBps(c bCtx.Ctx, bps uint64) error {
	if bps > 10000 {
		return xerrors.Errorf("market fee bps %d > 10000: %w", bps, domain.ErrInvalidArgument)
	}
	if _, err := u.contract.SendTransaction(c, "setMarketFeeBps", new(big.Int).SetUint64(bps)); err != nil {
		c.WithFields(log.Fields{
			"bps": bps,
			"err": err,
		}).Error("setMarketFeeBps failed")
		return err
	}
	return nil
}

// assetOps probes the asset contract once and keeps the result
func (u *marketUseCase) assetOps(c bCtx.Ctx, asset domain.Address) (domain.AssetOps, error) {
	u.assetsMu.Lock()
	defer u.assetsMu.Unlock()
	if ops, ok := u.assets[asset.ToLowerStr()]; ok {
		return ops, nil
	}

	tokenType, err := contract.ProbeTokenType(c, u.factory.New(asset, baseabi.ERC165ABI))
	if err != nil {
		c.WithFields(log.Fields{
			"asset": asset,
			"err":   err,
		}).Error("contract.ProbeTokenType failed")
		return nil, err
	}
	ops, err := contract.NewAssetOps(u.factory, asset, tokenType)
	if err != nil {
		return nil, err
	}
	u.assets[asset.ToLowerStr()] = ops
	return ops, nil
}

func (u *marketUseCase) signer() (domain.Address, error) {
	signer, ok := u.contract.SignerAddress()
	if !ok {
		return "", domain.ErrNoSigner
	}
	return signer, nil
}

func toListing(l *baseabi.MarketListing) *market.Listing {
	tokenType := domain.TokenType1155
	if l.TokenType == listingTokenType721 {
		tokenType = domain.TokenType721
	}
	return &market.Listing{
		Id:             l.ListingId,
		Seller:         domain.AddressFromCommon(l.Seller),
		AssetContract:  domain.AddressFromCommon(l.AssetContract),
		TokenId:        l.TokenId,
		Quantity:       l.Quantity,
		Currency:       domain.AddressFromCommon(l.Currency),
		PricePerToken:  l.PricePerToken,
		TokensPerBuyer: l.TokensPerBuyer,
		SaleStart:      unixTime(l.SaleStart),
		SaleEnd:        unixTime(l.SaleEnd),
		TokenType:      tokenType,
	}
}

// unixTime returns the zero time for values beyond int64, the contract uses max uint256 for "no end"
func unixTime(v *big.Int) time.Time {
	if v == nil || !v.IsInt64() {
		return time.Time{}
	}
	return time.Unix(v.Int64(), 0).UTC()
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return big.NewInt(0)
	}
	return v
}
