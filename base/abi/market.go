package abi

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// MarketABI is the called subset of the marketplace contract
var MarketABI abi.ABI

const listingTupleJson = `{"type":"%s","name":"%s","internalType":"struct Market.Listing","components":[` +
	`{"type":"uint256","name":"listingId"},{"type":"address","name":"seller"},{"type":"address","name":"assetContract"},` +
	`{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"quantity"},{"type":"address","name":"currency"},` +
	`{"type":"uint256","name":"pricePerToken"},{"type":"uint256","name":"saleStart"},{"type":"uint256","name":"saleEnd"},` +
	`{"type":"uint256","name":"tokensPerBuyer"},{"type":"uint8","name":"tokenType"}]}`

var marketJson = `{"type":"event","anonymous":false,"name":"NewListing","inputs":[{"type":"address","name":"assetContract","indexed":true},{"type":"address","name":"seller","indexed":true},{"type":"uint256","name":"listingId","indexed":true},` + tuple("listing") + `]},` +
	`{"type":"event","anonymous":false,"name":"NewSale","inputs":[{"type":"address","name":"assetContract","indexed":true},{"type":"address","name":"seller","indexed":true},{"type":"uint256","name":"listingId","indexed":true},{"type":"address","name":"buyer","indexed":false},{"type":"uint256","name":"quantity","indexed":false}]},` +
	`{"type":"function","name":"list","stateMutability":"nonpayable","inputs":[{"type":"address","name":"assetContract"},{"type":"uint256","name":"tokenId"},{"type":"address","name":"currency"},{"type":"uint256","name":"pricePerToken"},{"type":"uint256","name":"quantity"},{"type":"uint256","name":"tokensPerBuyer"},{"type":"uint256","name":"secondsUntilStart"},{"type":"uint256","name":"secondsUntilEnd"}],"outputs":[]},` +
	`{"type":"function","name":"unlist","stateMutability":"nonpayable","inputs":[{"type":"uint256","name":"listingId"},{"type":"uint256","name":"quantity"}],"outputs":[]},` +
	`{"type":"function","name":"buy","stateMutability":"payable","inputs":[{"type":"uint256","name":"listingId"},{"type":"uint256","name":"quantity"}],"outputs":[]},` +
	`{"type":"function","name":"setMarketFeeBps","stateMutability":"nonpayable","inputs":[{"type":"uint128","name":"feeBps"}],"outputs":[]},` +
	`{"type":"function","name":"totalListings","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256","name":""}]},` +
	`{"type":"function","name":"getListing","stateMutability":"view","inputs":[{"type":"uint256","name":"listingId"}],"outputs":[` + tuple("listing") + `]},` +
	`{"type":"function","name":"getAllListings","stateMutability":"view","inputs":[],"outputs":[` + tuples("listings") + `]},` +
	`{"type":"function","name":"getListingsByAsset","stateMutability":"view","inputs":[{"type":"address","name":"assetContract"},{"type":"uint256","name":"tokenId"}],"outputs":[` + tuples("listings") + `]},` +
	`{"type":"function","name":"getListingsByAssetContract","stateMutability":"view","inputs":[{"type":"address","name":"assetContract"}],"outputs":[` + tuples("listings") + `]},` +
	`{"type":"function","name":"getListingsBySeller","stateMutability":"view","inputs":[{"type":"address","name":"seller"}],"outputs":[` + tuples("listings") + `]}`

func init() {
	MarketABI = mustParse("market", marketJson, accessControlJson, supportsInterfaceJson)
}

func tuple(name string) string {
	return fmt.Sprintf(listingTupleJson, "tuple", name)
}

func tuples(name string) string {
	return fmt.Sprintf(listingTupleJson, "tuple[]", name)
}

// MarketListing mirrors the Market.Listing struct returned by the listing getters
type MarketListing struct {
	ListingId      *big.Int
	Seller         common.Address
	AssetContract  common.Address
	TokenId        *big.Int
	Quantity       *big.Int
	Currency       common.Address
	PricePerToken  *big.Int
	SaleStart      *big.Int
	SaleEnd        *big.Int
	TokensPerBuyer *big.Int
	TokenType      uint8
}
