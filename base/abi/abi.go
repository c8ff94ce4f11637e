package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// shared fragments, every sdk contract is AccessControlEnumerable + ERC165 + Multicall
const (
	supportsInterfaceJson = `{"type":"function","name":"supportsInterface","stateMutability":"view","inputs":[{"type":"bytes4","name":"interfaceId"}],"outputs":[{"type":"bool","name":""}]}`

	multicallJson = `{"type":"function","name":"multicall","stateMutability":"nonpayable","inputs":[{"type":"bytes[]","name":"data"}],"outputs":[{"type":"bytes[]","name":"results"}]}`

	accessControlJson = `{"type":"function","name":"grantRole","stateMutability":"nonpayable","inputs":[{"type":"bytes32","name":"role"},{"type":"address","name":"account"}],"outputs":[]},` +
		`{"type":"function","name":"revokeRole","stateMutability":"nonpayable","inputs":[{"type":"bytes32","name":"role"},{"type":"address","name":"account"}],"outputs":[]},` +
		`{"type":"function","name":"renounceRole","stateMutability":"nonpayable","inputs":[{"type":"bytes32","name":"role"},{"type":"address","name":"account"}],"outputs":[]},` +
		`{"type":"function","name":"hasRole","stateMutability":"view","inputs":[{"type":"bytes32","name":"role"},{"type":"address","name":"account"}],"outputs":[{"type":"bool","name":""}]},` +
		`{"type":"function","name":"getRoleMemberCount","stateMutability":"view","inputs":[{"type":"bytes32","name":"role"}],"outputs":[{"type":"uint256","name":""}]},` +
		`{"type":"function","name":"getRoleMember","stateMutability":"view","inputs":[{"type":"bytes32","name":"role"},{"type":"uint256","name":"index"}],"outputs":[{"type":"address","name":""}]}`

	approvalForAllJson = `{"type":"function","name":"isApprovedForAll","stateMutability":"view","inputs":[{"type":"address","name":"account"},{"type":"address","name":"operator"}],"outputs":[{"type":"bool","name":""}]},` +
		`{"type":"function","name":"setApprovalForAll","stateMutability":"nonpayable","inputs":[{"type":"address","name":"operator"},{"type":"bool","name":"approved"}],"outputs":[]}`

	erc1155CommonJson = `{"type":"function","name":"uri","stateMutability":"view","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"string","name":""}]},` +
		`{"type":"function","name":"totalSupply","stateMutability":"view","inputs":[{"type":"uint256","name":"id"}],"outputs":[{"type":"uint256","name":""}]},` +
		`{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"type":"address","name":"account"},{"type":"uint256","name":"id"}],"outputs":[{"type":"uint256","name":""}]},` +
		`{"type":"function","name":"safeTransferFrom","stateMutability":"nonpayable","inputs":[{"type":"address","name":"from"},{"type":"address","name":"to"},{"type":"uint256","name":"id"},{"type":"uint256","name":"amount"},{"type":"bytes","name":"data"}],"outputs":[]},` +
		`{"type":"function","name":"safeBatchTransferFrom","stateMutability":"nonpayable","inputs":[{"type":"address","name":"from"},{"type":"address","name":"to"},{"type":"uint256[]","name":"ids"},{"type":"uint256[]","name":"amounts"},{"type":"bytes","name":"data"}],"outputs":[]},` +
		`{"type":"function","name":"burn","stateMutability":"nonpayable","inputs":[{"type":"address","name":"account"},{"type":"uint256","name":"id"},{"type":"uint256","name":"value"}],"outputs":[]},` +
		`{"type":"function","name":"burnBatch","stateMutability":"nonpayable","inputs":[{"type":"address","name":"account"},{"type":"uint256[]","name":"ids"},{"type":"uint256[]","name":"values"}],"outputs":[]}`
)

func mustParse(name string, fragments ...string) abi.ABI {
	_abi, err := abi.JSON(strings.NewReader("[" + strings.Join(fragments, ",") + "]"))
	if err != nil {
		panic("Failed to parse " + name + " abi: " + err.Error())
	}
	return _abi
}

var ERC165ABI abi.ABI

var AccessControlABI abi.ABI

func init() {
	ERC165ABI = mustParse("erc165", supportsInterfaceJson)
	AccessControlABI = mustParse("access control", accessControlJson)
}
