package chain

import (
	"errors"
	"math/big"
	"testing"
	"time"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	baseabi "github.com/x-xyz/gosdk/base/abi"
	bCtx "github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/base/ethereum"
	"github.com/x-xyz/gosdk/base/log"
	"github.com/x-xyz/gosdk/domain"
	"github.com/x-xyz/gosdk/domain/mocks"
)

var (
	contractAddr = domain.Address("0x939ae6A4C8dfDBB1f7085189574F0A938013952A")
	gwei         = big.NewInt(1000000000)
)

type WrapperTestSuite struct {
	suite.Suite

	ctx    bCtx.Ctx
	client *mocks.ChainClient
}

func (s *WrapperTestSuite) SetupSuite() {
	log.Nop()
	s.ctx = bCtx.Background()
}

func (s *WrapperTestSuite) SetupTest() {
	s.client = mocks.NewChainClient(s.T())
}

func (s *WrapperTestSuite) newProvider(withSigner bool) *Provider {
	cfg := &ProviderCfg{
		Client:          s.client,
		MaxGasPriceGwei: 100,
		TxTimeout:       50 * time.Millisecond,
		PollInterval:    5 * time.Millisecond,
	}
	if withSigner {
		key, _, err := ethereum.GenerateKey()
		s.Require().NoError(err)
		cfg.Signer = key
	}
	return NewProvider(cfg)
}

func (s *WrapperTestSuite) expectUntilBroadcast(sent **types.Transaction) {
	s.client.On("PendingNonceAt", mock.Anything, mock.Anything).Return(uint64(7), nil).Once()
	s.client.On("SuggestGasPrice", mock.Anything).Return(new(big.Int).Mul(big.NewInt(200), gwei), nil).Once()
	s.client.On("EstimateGas", mock.Anything, mock.Anything).Return(uint64(90000), nil).Once()
	s.client.On("ChainID", mock.Anything).Return(big.NewInt(137), nil).Once()
	s.client.On("SendTransaction", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		*sent = args.Get(1).(*types.Transaction)
	}).Return(nil).Once()
}

func (s *WrapperTestSuite) TestSendTransactionNoSigner() {
	w := s.newProvider(false).New(contractAddr, baseabi.TokenERC721ABI)

	_, err := w.SendTransaction(s.ctx, "burn", big.NewInt(1))
	s.ErrorIs(err, domain.ErrNoSigner)

	_, err = w.MultiCall(s.ctx, [][]byte{{0x01}})
	s.ErrorIs(err, domain.ErrNoSigner)
	// mocks.NewChainClient asserts no rpc call was made
}

func (s *WrapperTestSuite) TestSendTransaction() {
	p := s.newProvider(true)
	w := p.New(contractAddr, baseabi.TokenERC721ABI)
	signer, ok := w.SignerAddress()
	s.True(ok)

	var sent *types.Transaction
	s.expectUntilBroadcast(&sent)
	s.client.On("TransactionReceipt", mock.Anything, mock.Anything).Return(nil, goethereum.NotFound).Once()
	s.client.On("TransactionReceipt", mock.Anything, mock.Anything).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil).Once()

	receipt, err := w.SendTransaction(s.ctx, "burn", big.NewInt(1))
	s.NoError(err)
	s.Equal(types.ReceiptStatusSuccessful, receipt.Status)

	s.Require().NotNil(sent)
	s.Equal(uint64(7), sent.Nonce())
	s.Equal(uint64(90000), sent.Gas())
	s.Equal(0, sent.GasPrice().Cmp(new(big.Int).Mul(big.NewInt(100), gwei)), "gas price capped")
	s.Equal(contractAddr.ToCommon(), *sent.To())

	from, err := types.Sender(types.LatestSignerForChainID(big.NewInt(137)), sent)
	s.NoError(err)
	s.Equal(signer.ToCommon(), from)

	expData, err := baseabi.TokenERC721ABI.Pack("burn", big.NewInt(1))
	s.NoError(err)
	s.Equal(expData, sent.Data())
}

func (s *WrapperTestSuite) TestSendTransactionEstimateRevert() {
	w := s.newProvider(true).New(contractAddr, baseabi.TokenERC721ABI)

	s.client.On("PendingNonceAt", mock.Anything, mock.Anything).Return(uint64(0), nil).Once()
	s.client.On("SuggestGasPrice", mock.Anything).Return(gwei, nil).Once()
	s.client.On("EstimateGas", mock.Anything, mock.Anything).Return(uint64(0), errors.New("execution reverted: not owner")).Once()

	_, err := w.SendTransaction(s.ctx, "burn", big.NewInt(1))
	s.ErrorIs(err, domain.ErrTransactionFailed)
	var txErr *domain.TransactionError
	s.True(errors.As(err, &txErr))
	s.Equal("execution reverted: not owner", txErr.Reason)
	s.Equal("burn", txErr.Method)
}

func (s *WrapperTestSuite) TestSendTransactionReverted() {
	w := s.newProvider(true).New(contractAddr, baseabi.TokenERC721ABI)

	var sent *types.Transaction
	s.expectUntilBroadcast(&sent)
	s.client.On("TransactionReceipt", mock.Anything, mock.Anything).Return(&types.Receipt{Status: types.ReceiptStatusFailed}, nil).Once()

	_, err := w.SendTransaction(s.ctx, "burn", big.NewInt(1))
	s.ErrorIs(err, domain.ErrTransactionFailed)
	var txErr *domain.TransactionError
	s.True(errors.As(err, &txErr))
	s.Equal(domain.TxHash(sent.Hash().Hex()), txErr.TxHash)
}

func (s *WrapperTestSuite) TestSendTransactionTimeout() {
	w := s.newProvider(true).New(contractAddr, baseabi.TokenERC721ABI)

	var sent *types.Transaction
	s.expectUntilBroadcast(&sent)
	s.client.On("TransactionReceipt", mock.Anything, mock.Anything).Return(nil, goethereum.NotFound)

	_, err := w.SendTransaction(s.ctx, "burn", big.NewInt(1))
	s.ErrorIs(err, domain.ErrTimeout)
	s.Contains(err.Error(), sent.Hash().Hex())
}

func (s *WrapperTestSuite) TestSendTransactionWithValue() {
	w := s.newProvider(true).New(contractAddr, baseabi.MarketABI)

	var sent *types.Transaction
	s.expectUntilBroadcast(&sent)
	s.client.On("TransactionReceipt", mock.Anything, mock.Anything).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil).Once()

	_, err := w.SendTransactionWithValue(s.ctx, big.NewInt(300), "buy", big.NewInt(7), big.NewInt(3))
	s.NoError(err)
	s.Equal(big.NewInt(300), sent.Value())
}

func (s *WrapperTestSuite) TestSetSigner() {
	p := s.newProvider(false)
	w := p.New(contractAddr, baseabi.TokenERC721ABI)
	_, ok := w.SignerAddress()
	s.False(ok)

	key, pub, err := ethereum.GenerateKey()
	s.NoError(err)
	p.SetSigner(key)
	addr, ok := w.SignerAddress()
	s.True(ok)
	s.Equal(crypto.PubkeyToAddress(*pub), addr.ToCommon())
}

func (s *WrapperTestSuite) TestCall() {
	w := s.newProvider(false).New(contractAddr, baseabi.TokenERC721ABI)

	out, err := baseabi.TokenERC721ABI.Methods["tokenURI"].Outputs.Pack("ipfs://cid/0")
	s.NoError(err)
	s.client.On("CallContract", mock.Anything, mock.MatchedBy(func(msg goethereum.CallMsg) bool {
		return *msg.To == contractAddr.ToCommon()
	}), (*big.Int)(nil)).Return(out, nil).Once()

	res, err := w.Call(s.ctx, "tokenURI", big.NewInt(0))
	s.NoError(err)
	s.Equal("ipfs://cid/0", res[0].(string))
}

func (s *WrapperTestSuite) TestSupportsInterface() {
	w := s.newProvider(false).New(contractAddr, baseabi.TokenERC20ABI)
	yes, err := abi.Arguments{{Type: mustType("bool")}}.Pack(true)
	s.NoError(err)

	s.client.On("CallContract", mock.Anything, mock.Anything, mock.Anything).Return(yes, nil).Once()
	ok, err := w.SupportsInterface(s.ctx, [4]byte{0x80, 0xac, 0x58, 0xcd})
	s.NoError(err)
	s.True(ok)

	s.client.On("CallContract", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("execution reverted")).Once()
	ok, err = w.SupportsInterface(s.ctx, [4]byte{0x80, 0xac, 0x58, 0xcd})
	s.NoError(err)
	s.False(ok)

	s.client.On("CallContract", mock.Anything, mock.Anything, mock.Anything).Return([]byte{}, nil).Once()
	ok, err = w.SupportsInterface(s.ctx, [4]byte{0xd9, 0xb6, 0x7a, 0x26})
	s.NoError(err)
	s.False(ok)
}

func (s *WrapperTestSuite) TestParseEvents() {
	w := s.newProvider(false).New(contractAddr, baseabi.TokenERC721ABI)
	ev := baseabi.TokenERC721ABI.Events["TokensMinted"]
	to := common.HexToAddress("0x939ae6a4c8dfdbb1f7085189574f0a938013952b")
	data, err := ev.Inputs.NonIndexed().Pack("ipfs://cid/5")
	s.NoError(err)

	receipt := &types.Receipt{Logs: []*types.Log{
		{
			// other contract, ignored
			Address: common.HexToAddress("0x01"),
			Topics:  []common.Hash{ev.ID, common.BytesToHash(to.Bytes()), common.BigToHash(big.NewInt(9))},
			Data:    data,
		},
		{
			Address: contractAddr.ToCommon(),
			Topics:  []common.Hash{ev.ID, common.BytesToHash(to.Bytes()), common.BigToHash(big.NewInt(5))},
			Data:    data,
		},
	}}

	events, err := w.ParseEvents(receipt, "TokensMinted")
	s.NoError(err)
	s.Len(events, 1)
	s.Equal(to, events[0]["mintedTo"])
	s.Equal(big.NewInt(5), events[0]["tokenIdMinted"])
	s.Equal("ipfs://cid/5", events[0]["uri"])

	_, err = w.ParseEvents(&types.Receipt{}, "TokensMinted")
	s.ErrorIs(err, domain.ErrEventNotFound)
}

func mustType(t string) abi.Type {
	typ, err := abi.NewType(t, "", nil)
	if err != nil {
		panic(err)
	}
	return typ
}

func TestWrapperTestSuite(t *testing.T) {
	suite.Run(t, new(WrapperTestSuite))
}
