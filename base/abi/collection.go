package abi

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
)

// CollectionABI is the called subset of the erc1155 collection contract with native token creation and wrapping
var CollectionABI abi.ABI

var collectionJson = `{"type":"event","anonymous":false,"name":"NativeTokens","inputs":[{"type":"address","name":"creator","indexed":true},{"type":"uint256[]","name":"tokenIds","indexed":false},{"type":"string[]","name":"tokenURIs","indexed":false},{"type":"uint256[]","name":"tokenSupplies","indexed":false}]},` +
	`{"type":"event","anonymous":false,"name":"ERC20WrappedToken","inputs":[{"type":"address","name":"creator","indexed":true},{"type":"address","name":"tokenContract","indexed":true},{"type":"uint256","name":"tokenAmount","indexed":false},{"type":"uint256","name":"shares","indexed":false},{"type":"uint256","name":"tokenId","indexed":false},{"type":"string","name":"tokenURI","indexed":false}]},` +
	`{"type":"event","anonymous":false,"name":"ERC721WrappedToken","inputs":[{"type":"address","name":"creator","indexed":true},{"type":"address","name":"tokenContract","indexed":true},{"type":"uint256","name":"tokenIdOfUnderlying","indexed":false},{"type":"uint256","name":"tokenId","indexed":false},{"type":"string","name":"tokenURI","indexed":false}]},` +
	`{"type":"function","name":"createNativeTokens","stateMutability":"nonpayable","inputs":[{"type":"address","name":"to"},{"type":"string[]","name":"nftURIs"},{"type":"uint256[]","name":"nftSupplies"},{"type":"bytes","name":"data"}],"outputs":[{"type":"uint256[]","name":"nftIds"}]},` +
	`{"type":"function","name":"wrapERC20","stateMutability":"nonpayable","inputs":[{"type":"address","name":"tokenContract"},{"type":"uint256","name":"tokenAmount"},{"type":"uint256","name":"numOfNftsToMint"},{"type":"string","name":"nftURI"}],"outputs":[]},` +
	`{"type":"function","name":"wrapERC721","stateMutability":"nonpayable","inputs":[{"type":"address","name":"nftContract"},{"type":"uint256","name":"tokenId"},{"type":"string","name":"nftURI"}],"outputs":[]},` +
	`{"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[{"type":"address","name":"to"},{"type":"uint256","name":"id"},{"type":"uint256","name":"amount"},{"type":"bytes","name":"data"}],"outputs":[]},` +
	`{"type":"function","name":"mintBatch","stateMutability":"nonpayable","inputs":[{"type":"address","name":"to"},{"type":"uint256[]","name":"ids"},{"type":"uint256[]","name":"amounts"},{"type":"bytes","name":"data"}],"outputs":[]},` +
	`{"type":"function","name":"creator","stateMutability":"view","inputs":[{"type":"uint256","name":"nftId"}],"outputs":[{"type":"address","name":""}]},` +
	`{"type":"function","name":"nextTokenId","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256","name":""}]},` +
	`{"type":"function","name":"setRoyaltyBps","stateMutability":"nonpayable","inputs":[{"type":"uint256","name":"royaltyBps"}],"outputs":[]}`

func init() {
	CollectionABI = mustParse("collection", collectionJson, erc1155CommonJson, approvalForAllJson, supportsInterfaceJson, multicallJson, accessControlJson)
}
