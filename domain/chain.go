package domain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/x-xyz/gosdk/base/ctx"
)

// ChainClient is the subset of ethclient.Client the sdk talks to
type ChainClient interface {
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// ContractWrapper binds one deployed contract address to its abi and the current signer.
type ContractWrapper interface {
	Address() Address
	ABI() abi.ABI

	// SignerAddress reports the signer address, ok is false when no signer is configured
	SignerAddress() (Address, bool)

	// Call runs a read-only eth_call and returns the unpacked outputs
	Call(ctx ctx.Ctx, method string, args ...interface{}) ([]interface{}, error)

	Encode(method string, args ...interface{}) ([]byte, error)

	SendTransaction(ctx ctx.Ctx, method string, args ...interface{}) (*types.Receipt, error)
	SendTransactionWithValue(ctx ctx.Ctx, value *big.Int, method string, args ...interface{}) (*types.Receipt, error)

	// MultiCall submits the encoded calls through the contract's multicall entry point in one transaction
	MultiCall(ctx ctx.Ctx, calls [][]byte) (*types.Receipt, error)

	// ParseEvents decodes every log of the receipt emitted by this contract for the event
	ParseEvents(receipt *types.Receipt, event string) ([]map[string]interface{}, error)

	SupportsInterface(ctx ctx.Ctx, interfaceId [4]byte) (bool, error)
}

// ContractFactory creates wrappers sharing the same provider and signer.
type ContractFactory interface {
	New(address Address, abi abi.ABI) ContractWrapper
}
