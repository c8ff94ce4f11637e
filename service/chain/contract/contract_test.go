package contract

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/base/log"
	"github.com/x-xyz/gosdk/domain"
	"github.com/x-xyz/gosdk/domain/mocks"
)

var (
	owner  = domain.Address("0x1111111111111111111111111111111111111111")
	market = domain.Address("0x2222222222222222222222222222222222222222")
)

func TestProbeTokenType(t *testing.T) {
	log.Nop()
	req := require.New(t)
	ctx := bCtx.Background()

	tests := []struct {
		desc    string
		is721   bool
		is1155  bool
		err     error
		expType domain.TokenType
		expErr  error
	}{
		{desc: "erc721", is721: true, expType: domain.TokenType721},
		{desc: "erc1155", is1155: true, expType: domain.TokenType1155},
		{desc: "neither", expType: domain.TokenTypeUnknown, expErr: domain.ErrUnsupportedAsset},
		{desc: "rpc error", err: errors.New("boom"), expType: domain.TokenTypeUnknown},
	}
	for _, tt := range tests {
		w := mocks.NewContractWrapper(t)
		w.On("Address").Return(domain.Address("0x01")).Maybe()
		w.On("SupportsInterface", mock.Anything, Erc721InterfaceId).Return(tt.is721, tt.err).Once()
		if !tt.is721 && tt.err == nil {
			w.On("SupportsInterface", mock.Anything, Erc1155InterfaceId).Return(tt.is1155, nil).Once()
		}

		typ, err := ProbeTokenType(ctx, w)
		req.Equal(tt.expType, typ, tt.desc)
		switch {
		case tt.expErr != nil:
			req.ErrorIs(err, tt.expErr, tt.desc)
		case tt.err != nil:
			req.Equal(tt.err, err, tt.desc)
		default:
			req.NoError(err, tt.desc)
		}
	}
}

func TestErc721IsApproved(t *testing.T) {
	log.Nop()
	req := require.New(t)
	ctx := bCtx.Background()
	tokenId := big.NewInt(3)

	// operator approval short circuits
	w := mocks.NewContractWrapper(t)
	w.On("Call", mock.Anything, "isApprovedForAll", owner.ToCommon(), market.ToCommon()).Return([]interface{}{true}, nil).Once()
	ok, err := NewErc721(w).IsApproved(ctx, owner, market, tokenId)
	req.NoError(err)
	req.True(ok)

	// token approval, case insensitive
	w = mocks.NewContractWrapper(t)
	w.On("Call", mock.Anything, "isApprovedForAll", owner.ToCommon(), market.ToCommon()).Return([]interface{}{false}, nil).Once()
	w.On("Call", mock.Anything, "getApproved", tokenId).Return([]interface{}{market.ToCommon()}, nil).Once()
	ok, err = NewErc721(w).IsApproved(ctx, owner, market, tokenId)
	req.NoError(err)
	req.True(ok)

	// approved someone else
	w = mocks.NewContractWrapper(t)
	w.On("Call", mock.Anything, "isApprovedForAll", owner.ToCommon(), market.ToCommon()).Return([]interface{}{false}, nil).Once()
	w.On("Call", mock.Anything, "getApproved", tokenId).Return([]interface{}{common.HexToAddress("0x03")}, nil).Once()
	ok, err = NewErc721(w).IsApproved(ctx, owner, market, tokenId)
	req.NoError(err)
	req.False(ok)
}

func TestErc1155Approval(t *testing.T) {
	log.Nop()
	req := require.New(t)
	ctx := bCtx.Background()

	w := mocks.NewContractWrapper(t)
	w.On("Call", mock.Anything, "isApprovedForAll", owner.ToCommon(), market.ToCommon()).Return([]interface{}{false}, nil).Once()
	w.On("SendTransaction", mock.Anything, "setApprovalForAll", market.ToCommon(), true).Return(nil, nil).Once()

	ops := NewErc1155(w)
	req.Equal(domain.TokenType1155, ops.TokenType())
	ok, err := ops.IsApproved(ctx, owner, market, big.NewInt(1))
	req.NoError(err)
	req.False(ok)
	req.NoError(ops.SetApproval(ctx, market, true))
}

func TestErc20Allowance(t *testing.T) {
	log.Nop()
	req := require.New(t)
	ctx := bCtx.Background()

	w := mocks.NewContractWrapper(t)
	w.On("Call", mock.Anything, "allowance", owner.ToCommon(), market.ToCommon()).Return([]interface{}{big.NewInt(50)}, nil).Once()
	w.On("SendTransaction", mock.Anything, "increaseAllowance", market.ToCommon(), big.NewInt(300)).Return(nil, domain.ErrNoSigner).Once()

	erc20 := NewErc20(w)
	allowance, err := erc20.Allowance(ctx, owner, market)
	req.NoError(err)
	req.Equal(big.NewInt(50), allowance)
	req.ErrorIs(erc20.IncreaseAllowance(ctx, market, big.NewInt(300)), domain.ErrNoSigner)
}

func TestNewAssetOps(t *testing.T) {
	req := require.New(t)
	f := mocks.NewContractFactory(t)
	f.On("New", market, mock.Anything).Return(mocks.NewContractWrapper(t)).Twice()

	ops, err := NewAssetOps(f, market, domain.TokenType721)
	req.NoError(err)
	req.Equal(domain.TokenType721, ops.TokenType())

	ops, err = NewAssetOps(f, market, domain.TokenType1155)
	req.NoError(err)
	req.Equal(domain.TokenType1155, ops.TokenType())

	_, err = NewAssetOps(f, market, domain.TokenType20)
	req.ErrorIs(err, domain.ErrUnsupportedAsset)
}
