package abi

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
)

// TokenERC1155ABI is the called subset of the TokenERC1155 edition contract
var TokenERC1155ABI abi.ABI

var tokenERC1155Json = `{"type":"event","anonymous":false,"name":"TokensMinted","inputs":[{"type":"address","name":"mintedTo","indexed":true},{"type":"uint256","name":"tokenIdMinted","indexed":true},{"type":"string","name":"uri","indexed":false},{"type":"uint256","name":"quantityMinted","indexed":false}]},` +
	`{"type":"function","name":"mintTo","stateMutability":"nonpayable","inputs":[{"type":"address","name":"to"},{"type":"uint256","name":"tokenId"},{"type":"string","name":"uri"},{"type":"uint256","name":"amount"}],"outputs":[]},` +
	`{"type":"function","name":"nextTokenIdToMint","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256","name":""}]},` +
	`{"type":"function","name":"setDefaultRoyaltyInfo","stateMutability":"nonpayable","inputs":[{"type":"address","name":"royaltyRecipient"},{"type":"uint256","name":"royaltyBps"}],"outputs":[]}`

func init() {
	TokenERC1155ABI = mustParse("token erc1155", tokenERC1155Json, erc1155CommonJson, approvalForAllJson, supportsInterfaceJson, multicallJson, accessControlJson)
}
