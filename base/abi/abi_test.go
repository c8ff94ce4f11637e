package abi

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func TestEventSignatures(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		desc string
		sig  string
		id   func() common.Hash
	}{
		{
			desc: "erc721 minted",
			sig:  "TokensMinted(address,uint256,string)",
			id:   func() common.Hash { return TokenERC721ABI.Events["TokensMinted"].ID },
		},
		{
			desc: "erc1155 minted",
			sig:  "TokensMinted(address,uint256,string,uint256)",
			id:   func() common.Hash { return TokenERC1155ABI.Events["TokensMinted"].ID },
		},
		{
			desc: "native tokens",
			sig:  "NativeTokens(address,uint256[],string[],uint256[])",
			id:   func() common.Hash { return CollectionABI.Events["NativeTokens"].ID },
		},
		{
			desc: "new listing",
			sig:  "NewListing(address,address,uint256,(uint256,address,address,uint256,uint256,address,uint256,uint256,uint256,uint256,uint8))",
			id:   func() common.Hash { return MarketABI.Events["NewListing"].ID },
		},
	}
	for _, tt := range tests {
		req.Equal(crypto.Keccak256Hash([]byte(tt.sig)), tt.id(), tt.desc)
	}
}

func TestMethodSelectors(t *testing.T) {
	req := require.New(t)
	req.Equal([]byte{0x01, 0xff, 0xc9, 0xa7}, ERC165ABI.Methods["supportsInterface"].ID)
	req.Equal([]byte{0x2f, 0x2f, 0xf1, 0x5d}, AccessControlABI.Methods["grantRole"].ID)
	req.Equal([]byte{0x36, 0x56, 0x8a, 0xbe}, AccessControlABI.Methods["renounceRole"].ID)
	req.Equal([]byte{0xac, 0x96, 0x50, 0xd8}, TokenERC20ABI.Methods["multicall"].ID)

	for _, m := range []string{"list", "unlist", "buy", "getListing", "getAllListings", "getListingsBySeller"} {
		_, ok := MarketABI.Methods[m]
		req.True(ok, m)
	}
}
