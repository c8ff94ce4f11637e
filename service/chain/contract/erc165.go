package contract

import (
	"github.com/x-xyz/gosdk/base/abi"
	bCtx "github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/base/log"
	"github.com/x-xyz/gosdk/domain"
)

var (
	Erc721InterfaceId  = [4]byte{0x80, 0xac, 0x58, 0xcd}
	Erc1155InterfaceId = [4]byte{0xd9, 0xb6, 0x7a, 0x26}
)

// ProbeTokenType asks the contract which token standard it implements
func ProbeTokenType(ctx bCtx.Ctx, w domain.ContractWrapper) (domain.TokenType, error) {
	is721, err := w.SupportsInterface(ctx, Erc721InterfaceId)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"contract": w.Address(),
		}).Error("Supports721Interface failed")
		return domain.TokenTypeUnknown, err
	}
	if is721 {
		return domain.TokenType721, nil
	}
	is1155, err := w.SupportsInterface(ctx, Erc1155InterfaceId)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"contract": w.Address(),
		}).Error("Supports1155Interface failed")
		return domain.TokenTypeUnknown, err
	}
	if is1155 {
		return domain.TokenType1155, nil
	}
	return domain.TokenTypeUnknown, domain.ErrUnsupportedAsset
}

// NewAssetOps returns the approval ops for an asset contract of the given type
func NewAssetOps(factory domain.ContractFactory, address domain.Address, tokenType domain.TokenType) (domain.AssetOps, error) {
	switch tokenType {
	case domain.TokenType721:
		return NewErc721(factory.New(address, abi.TokenERC721ABI)), nil
	case domain.TokenType1155:
		return NewErc1155(factory.New(address, abi.TokenERC1155ABI)), nil
	}
	return nil, domain.ErrUnsupportedAsset
}
