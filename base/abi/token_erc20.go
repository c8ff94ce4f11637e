package abi

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
)

// TokenERC20ABI is the called subset of the TokenERC20 currency contract
var TokenERC20ABI abi.ABI

var tokenERC20Json = `{"type":"function","name":"name","stateMutability":"view","inputs":[],"outputs":[{"type":"string","name":""}]},` +
	`{"type":"function","name":"symbol","stateMutability":"view","inputs":[],"outputs":[{"type":"string","name":""}]},` +
	`{"type":"function","name":"decimals","stateMutability":"view","inputs":[],"outputs":[{"type":"uint8","name":""}]},` +
	`{"type":"function","name":"totalSupply","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256","name":""}]},` +
	`{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"type":"address","name":"account"}],"outputs":[{"type":"uint256","name":""}]},` +
	`{"type":"function","name":"allowance","stateMutability":"view","inputs":[{"type":"address","name":"owner"},{"type":"address","name":"spender"}],"outputs":[{"type":"uint256","name":""}]},` +
	`{"type":"function","name":"approve","stateMutability":"nonpayable","inputs":[{"type":"address","name":"spender"},{"type":"uint256","name":"amount"}],"outputs":[{"type":"bool","name":""}]},` +
	`{"type":"function","name":"increaseAllowance","stateMutability":"nonpayable","inputs":[{"type":"address","name":"spender"},{"type":"uint256","name":"addedValue"}],"outputs":[{"type":"bool","name":""}]},` +
	`{"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"type":"address","name":"to"},{"type":"uint256","name":"amount"}],"outputs":[{"type":"bool","name":""}]},` +
	`{"type":"function","name":"transferFrom","stateMutability":"nonpayable","inputs":[{"type":"address","name":"from"},{"type":"address","name":"to"},{"type":"uint256","name":"amount"}],"outputs":[{"type":"bool","name":""}]},` +
	`{"type":"function","name":"mintTo","stateMutability":"nonpayable","inputs":[{"type":"address","name":"to"},{"type":"uint256","name":"amount"}],"outputs":[]},` +
	`{"type":"function","name":"burn","stateMutability":"nonpayable","inputs":[{"type":"uint256","name":"amount"}],"outputs":[]},` +
	`{"type":"function","name":"burnFrom","stateMutability":"nonpayable","inputs":[{"type":"address","name":"account"},{"type":"uint256","name":"amount"}],"outputs":[]}`

func init() {
	TokenERC20ABI = mustParse("token erc20", tokenERC20Json, multicallJson, accessControlJson)
}
