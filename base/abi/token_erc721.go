package abi

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
)

// TokenERC721ABI is the called subset of the TokenERC721 nft contract
var TokenERC721ABI abi.ABI

var tokenERC721Json = `{"type":"event","anonymous":false,"name":"TokensMinted","inputs":[{"type":"address","name":"mintedTo","indexed":true},{"type":"uint256","name":"tokenIdMinted","indexed":true},{"type":"string","name":"uri","indexed":false}]},` +
	`{"type":"function","name":"mintTo","stateMutability":"nonpayable","inputs":[{"type":"address","name":"to"},{"type":"string","name":"uri"}],"outputs":[{"type":"uint256","name":""}]},` +
	`{"type":"function","name":"burn","stateMutability":"nonpayable","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[]},` +
	`{"type":"function","name":"tokenURI","stateMutability":"view","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"string","name":""}]},` +
	`{"type":"function","name":"ownerOf","stateMutability":"view","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"address","name":""}]},` +
	`{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"type":"address","name":"owner"}],"outputs":[{"type":"uint256","name":""}]},` +
	`{"type":"function","name":"totalSupply","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256","name":""}]},` +
	`{"type":"function","name":"nextTokenIdToMint","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256","name":""}]},` +
	`{"type":"function","name":"tokenOfOwnerByIndex","stateMutability":"view","inputs":[{"type":"address","name":"owner"},{"type":"uint256","name":"index"}],"outputs":[{"type":"uint256","name":""}]},` +
	`{"type":"function","name":"getApproved","stateMutability":"view","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"address","name":""}]},` +
	`{"type":"function","name":"safeTransferFrom","stateMutability":"nonpayable","inputs":[{"type":"address","name":"from"},{"type":"address","name":"to"},{"type":"uint256","name":"tokenId"}],"outputs":[]},` +
	`{"type":"function","name":"setDefaultRoyaltyInfo","stateMutability":"nonpayable","inputs":[{"type":"address","name":"royaltyRecipient"},{"type":"uint256","name":"royaltyBps"}],"outputs":[]}`

func init() {
	TokenERC721ABI = mustParse("token erc721", tokenERC721Json, approvalForAllJson, supportsInterfaceJson, multicallJson, accessControlJson)
}
