package domain

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
)

var (
	Big0 = big.NewInt(0)
	Big1 = big.NewInt(1)

	// MaxUint256 asks an edition contract to assign the next free token id.
	MaxUint256 = new(big.Int).Set(math.MaxBig256)
)

type TokenType int

const (
	TokenTypeUnknown TokenType = 0
	TokenType20      TokenType = 20
	TokenType721     TokenType = 721
	TokenType1155    TokenType = 1155
)

func (t TokenType) String() string {
	switch t {
	case TokenType20:
		return "erc20"
	case TokenType721:
		return "erc721"
	case TokenType1155:
		return "erc1155"
	}
	return "unknown"
}

type ChainId int64

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

// NativeCurrency marks a listing priced in the chain's native coin.
const NativeCurrency = EmptyAddress

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

// IsZero reports whether a is empty or the zero address.
func (a Address) IsZero() bool {
	return a.IsEmpty() || a.Equals(EmptyAddress)
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

func (a Address) ToCommon() common.Address {
	return common.HexToAddress(string(a))
}

func (a Address) String() string {
	return string(a)
}

func AddressFromCommon(a common.Address) Address {
	return Address(a.Hex())
}

type TxHash string
