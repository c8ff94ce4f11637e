package usecase

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	baseabi "github.com/x-xyz/gosdk/base/abi"
	bCtx "github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/base/log"
	"github.com/x-xyz/gosdk/domain"
	"github.com/x-xyz/gosdk/domain/market"
	"github.com/x-xyz/gosdk/domain/mocks"
	"github.com/x-xyz/gosdk/service/chain/contract"
)

var (
	marketAddress = domain.Address("0xDc64a140Aa3E981100a9becA4E685f962f0cF6C9")
	assetAddress  = domain.Address("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	currency      = domain.Address("0xCf7Ed3AccA5a467e9e704C703E8D87F634fB0Fc9")
	seller        = domain.Address("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	buyer         = domain.Address("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
)

type MarketTestSuite struct {
	suite.Suite
	ctx      bCtx.Ctx
	market   *mocks.ContractWrapper
	asset    *mocks.ContractWrapper
	currency *mocks.ContractWrapper
	factory  *mocks.ContractFactory
	useCase  market.UseCase
}

func (s *MarketTestSuite) SetupTest() {
	log.Nop()
	s.ctx = bCtx.Background()
	s.market = mocks.NewContractWrapper(s.T())
	s.asset = mocks.NewContractWrapper(s.T())
	s.currency = mocks.NewContractWrapper(s.T())
	s.factory = mocks.NewContractFactory(s.T())

	s.market.On("Address").Return(marketAddress).Maybe()
	s.asset.On("Address").Return(assetAddress).Maybe()
	s.factory.On("New", assetAddress, mock.Anything).Return(s.asset).Maybe()
	s.factory.On("New", currency, mock.Anything).Return(s.currency).Maybe()

	s.useCase = NewMarketUseCase(&MarketUseCaseCfg{Contract: s.market, Factory: s.factory})
}

func listingOf(id int64, currency domain.Address, price int64, quantity int64) baseabi.MarketListing {
	return baseabi.MarketListing{
		ListingId:      big.NewInt(id),
		Seller:         seller.ToCommon(),
		AssetContract:  assetAddress.ToCommon(),
		TokenId:        big.NewInt(1),
		Quantity:       big.NewInt(quantity),
		Currency:       currency.ToCommon(),
		PricePerToken:  big.NewInt(price),
		SaleStart:      big.NewInt(1650000000),
		SaleEnd:        new(big.Int).Set(domain.MaxUint256),
		TokensPerBuyer: big.NewInt(0),
		TokenType:      listingTokenType1155,
	}
}

func (s *MarketTestSuite) expectGetListing(l baseabi.MarketListing) {
	s.market.On("Call", mock.Anything, "getListing", l.ListingId).Return([]interface{}{l}, nil).Once()
}

func (s *MarketTestSuite) expectList(receipt *types.Receipt, listingId int64) {
	s.market.On("SendTransaction", mock.Anything, "list",
		assetAddress.ToCommon(), big.NewInt(1), common.Address{}, big.NewInt(100), big.NewInt(10),
		big.NewInt(0), big.NewInt(0), big.NewInt(0),
	).Return(receipt, nil).Once()
	s.market.On("ParseEvents", receipt, "NewListing").Return([]map[string]interface{}{
		{"listingId": big.NewInt(listingId)},
	}, nil).Once()
}

func listArg() *market.ListArg {
	return &market.ListArg{
		AssetContract: assetAddress,
		TokenId:       big.NewInt(1),
		PricePerToken: big.NewInt(100),
		Quantity:      big.NewInt(10),
	}
}

func (s *MarketTestSuite) TestListApprovesOnlyOnce() {
	receipt := &types.Receipt{Status: types.ReceiptStatusSuccessful}
	s.market.On("SignerAddress").Return(seller, true)

	// probed once, the kind is remembered for later listings
	s.asset.On("SupportsInterface", mock.Anything, contract.Erc721InterfaceId).Return(false, nil).Once()
	s.asset.On("SupportsInterface", mock.Anything, contract.Erc1155InterfaceId).Return(true, nil).Once()

	s.asset.On("Call", mock.Anything, "isApprovedForAll", seller.ToCommon(), marketAddress.ToCommon()).Return([]interface{}{false}, nil).Once()
	s.asset.On("SendTransaction", mock.Anything, "setApprovalForAll", marketAddress.ToCommon(), true).Return(nil, nil).Once()
	s.expectList(receipt, 0)
	s.expectGetListing(listingOf(0, domain.NativeCurrency, 100, 10))

	listing, err := s.useCase.List(s.ctx, listArg())
	s.NoError(err)
	s.Equal(big.NewInt(0), listing.Id)
	s.Equal(domain.TokenType1155, listing.TokenType)
	s.Equal(time.Unix(1650000000, 0).UTC(), listing.SaleStart)
	s.True(listing.SaleEnd.IsZero())
	s.True(listing.IsNative())

	s.asset.On("Call", mock.Anything, "isApprovedForAll", seller.ToCommon(), marketAddress.ToCommon()).Return([]interface{}{true}, nil).Once()
	s.expectList(receipt, 1)
	s.expectGetListing(listingOf(1, domain.NativeCurrency, 100, 10))

	listing, err = s.useCase.List(s.ctx, listArg())
	s.NoError(err)
	s.Equal(big.NewInt(1), listing.Id)
}

func (s *MarketTestSuite) TestListErc721TokenApproval() {
	receipt := &types.Receipt{Status: types.ReceiptStatusSuccessful}
	s.market.On("SignerAddress").Return(seller, true)

	s.asset.On("SupportsInterface", mock.Anything, contract.Erc721InterfaceId).Return(true, nil).Once()
	s.asset.On("Call", mock.Anything, "isApprovedForAll", seller.ToCommon(), marketAddress.ToCommon()).Return([]interface{}{false}, nil).Once()
	s.asset.On("Call", mock.Anything, "getApproved", big.NewInt(1)).Return([]interface{}{marketAddress.ToCommon()}, nil).Once()

	s.market.On("SendTransaction", mock.Anything, "list",
		assetAddress.ToCommon(), big.NewInt(1), common.Address{}, big.NewInt(100), big.NewInt(1),
		big.NewInt(0), big.NewInt(0), big.NewInt(0),
	).Return(receipt, nil).Once()
	s.market.On("ParseEvents", receipt, "NewListing").Return([]map[string]interface{}{
		{"listingId": big.NewInt(3)},
	}, nil).Once()
	l := listingOf(3, domain.NativeCurrency, 100, 1)
	l.TokenType = listingTokenType721
	s.expectGetListing(l)

	arg := listArg()
	arg.Quantity = big.NewInt(1)
	listing, err := s.useCase.List(s.ctx, arg)
	s.NoError(err)
	s.Equal(big.NewInt(3), listing.Id)
	s.Equal(domain.TokenType721, listing.TokenType)
	s.Equal(big.NewInt(1), listing.Quantity)

	s.asset.AssertNotCalled(s.T(), "SupportsInterface", mock.Anything, contract.Erc1155InterfaceId)
	s.asset.AssertNotCalled(s.T(), "SendTransaction", mock.Anything, "setApprovalForAll", marketAddress.ToCommon(), true)
}

func (s *MarketTestSuite) TestListUnsupportedAsset() {
	s.market.On("SignerAddress").Return(seller, true)
	s.asset.On("SupportsInterface", mock.Anything, contract.Erc721InterfaceId).Return(false, nil).Once()
	s.asset.On("SupportsInterface", mock.Anything, contract.Erc1155InterfaceId).Return(false, nil).Once()

	_, err := s.useCase.List(s.ctx, listArg())
	s.ErrorIs(err, domain.ErrUnsupportedAsset)
}

func (s *MarketTestSuite) TestListInvalidArg() {
	s.market.On("SignerAddress").Return(seller, true)
	arg := listArg()
	arg.AssetContract = "not an address"
	_, err := s.useCase.List(s.ctx, arg)
	s.ErrorIs(err, domain.ErrInvalidArgument)
}

func (s *MarketTestSuite) TestBuyNativeSendsOneTransaction() {
	s.market.On("SignerAddress").Return(buyer, true)
	s.expectGetListing(listingOf(7, domain.NativeCurrency, 100, 10))
	s.market.On("SendTransactionWithValue", mock.Anything, big.NewInt(300), "buy", big.NewInt(7), big.NewInt(3)).Return(nil, nil).Once()

	s.NoError(s.useCase.Buy(s.ctx, big.NewInt(7), big.NewInt(3)))
	s.market.AssertNotCalled(s.T(), "SendTransaction", mock.Anything, "buy", big.NewInt(7), big.NewInt(3))
	s.factory.AssertNotCalled(s.T(), "New", currency, mock.Anything)
}

func (s *MarketTestSuite) TestBuyErc20IncreasesAllowance() {
	s.market.On("SignerAddress").Return(buyer, true)
	s.expectGetListing(listingOf(2, currency, 100, 10))
	s.currency.On("Call", mock.Anything, "allowance", buyer.ToCommon(), marketAddress.ToCommon()).Return([]interface{}{big.NewInt(299)}, nil).Once()
	s.currency.On("SendTransaction", mock.Anything, "increaseAllowance", marketAddress.ToCommon(), big.NewInt(300)).Return(nil, nil).Once()
	s.market.On("SendTransaction", mock.Anything, "buy", big.NewInt(2), big.NewInt(3)).Return(nil, nil).Once()

	s.NoError(s.useCase.Buy(s.ctx, big.NewInt(2), big.NewInt(3)))
}

func (s *MarketTestSuite) TestBuyErc20SufficientAllowance() {
	s.market.On("SignerAddress").Return(buyer, true)
	s.expectGetListing(listingOf(2, currency, 100, 10))
	s.currency.On("Call", mock.Anything, "allowance", buyer.ToCommon(), marketAddress.ToCommon()).Return([]interface{}{big.NewInt(300)}, nil).Once()
	s.market.On("SendTransaction", mock.Anything, "buy", big.NewInt(2), big.NewInt(3)).Return(nil, nil).Once()

	s.NoError(s.useCase.Buy(s.ctx, big.NewInt(2), big.NewInt(3)))
	s.currency.AssertNotCalled(s.T(), "SendTransaction", mock.Anything, "increaseAllowance", marketAddress.ToCommon(), big.NewInt(300))
}

func (s *MarketTestSuite) TestBuyWithoutSigner() {
	s.market.On("SignerAddress").Return(domain.EmptyAddress, false)
	s.ErrorIs(s.useCase.Buy(s.ctx, big.NewInt(2), big.NewInt(3)), domain.ErrNoSigner)
	_, err := s.useCase.List(s.ctx, listArg())
	s.ErrorIs(err, domain.ErrNoSigner)
}

func (s *MarketTestSuite) TestUnlistAll() {
	s.expectGetListing(listingOf(4, domain.NativeCurrency, 100, 6))
	s.market.On("SendTransaction", mock.Anything, "unlist", big.NewInt(4), big.NewInt(6)).Return(nil, nil).Once()
	s.NoError(s.useCase.UnlistAll(s.ctx, big.NewInt(4)))
}

func (s *MarketTestSuite) TestGetAllFilterPriority() {
	all := []baseabi.MarketListing{listingOf(0, domain.NativeCurrency, 1, 1), listingOf(1, currency, 2, 2)}

	s.market.On("Call", mock.Anything, "getAllListings").Return([]interface{}{all}, nil).Once()
	listings, err := s.useCase.GetAll(s.ctx, nil)
	s.NoError(err)
	s.Len(listings, 2)
	s.Equal(big.NewInt(1), listings[1].Id)
	s.True(listings[1].Currency.Equals(currency))

	s.market.On("Call", mock.Anything, "getListingsByAssetContract", assetAddress.ToCommon()).Return([]interface{}{all[:1]}, nil).Once()
	listings, err = s.useCase.GetAll(s.ctx, &market.Filter{AssetContract: assetAddress, Seller: seller})
	s.NoError(err)
	s.Len(listings, 1)

	s.market.On("Call", mock.Anything, "getListingsByAsset", assetAddress.ToCommon(), big.NewInt(1)).Return([]interface{}{all[:1]}, nil).Once()
	_, err = s.useCase.GetAll(s.ctx, &market.Filter{AssetContract: assetAddress, TokenId: big.NewInt(1)})
	s.NoError(err)

	s.market.On("Call", mock.Anything, "getListingsBySeller", seller.ToCommon()).Return([]interface{}{all}, nil).Twice()
	_, err = s.useCase.GetAll(s.ctx, &market.Filter{Seller: seller})
	s.NoError(err)

	sellerFirst := NewMarketUseCase(&MarketUseCaseCfg{Contract: s.market, Factory: s.factory, FilterPriority: market.SellerFirst})
	_, err = sellerFirst.GetAll(s.ctx, &market.Filter{AssetContract: assetAddress, Seller: seller})
	s.NoError(err)
}

func (s *MarketTestSuite) TestSetMarketFeeBps() {
	s.market.On("SendTransaction", mock.Anything, "setMarketFeeBps", big.NewInt(250)).Return(nil, nil).Once()
	s.NoError(s.useCase.SetMarketFeeBps(s.ctx, 250))
	s.ErrorIs(s.useCase.SetMarketFeeBps(s.ctx, 10001), domain.ErrInvalidArgument)
}

func TestMarketTestSuite(t *testing.T) {
	suite.Run(t, new(MarketTestSuite))
}
