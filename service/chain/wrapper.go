package chain

import (
	"crypto/ecdsa"
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"

	baseabi "github.com/x-xyz/gosdk/base/abi"
	"github.com/x-xyz/gosdk/base/backoff"
	bCtx "github.com/x-xyz/gosdk/base/ctx"
	baseeth "github.com/x-xyz/gosdk/base/ethereum"
	"github.com/x-xyz/gosdk/base/log"
	"github.com/x-xyz/gosdk/domain"
)

type contractWrapper struct {
	provider *Provider
	address  domain.Address
	contract common.Address
	abi      abi.ABI
}

func (w *contractWrapper) Address() domain.Address {
	return w.address
}

func (w *contractWrapper) ABI() abi.ABI {
	return w.abi
}

func (w *contractWrapper) SignerAddress() (domain.Address, bool) {
	return w.provider.SignerAddress()
}

func (w *contractWrapper) Encode(method string, args ...interface{}) ([]byte, error) {
	return w.abi.Pack(method, args...)
}

func (w *contractWrapper) Call(ctx bCtx.Ctx, method string, args ...interface{}) ([]interface{}, error) {
	data, err := w.abi.Pack(method, args...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"method": method,
		}).Error("abi.Pack failed")
		return nil, err
	}
	out, err := w.callContract(ctx, method, data)
	if err != nil {
		return nil, err
	}
	res, err := w.abi.Unpack(method, out)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"method": method,
		}).Error("abi.Unpack failed")
		return nil, err
	}
	return res, nil
}

func (w *contractWrapper) callContract(ctx bCtx.Ctx, method string, data []byte) ([]byte, error) {
	msg := ethereum.CallMsg{To: &w.contract, Data: data}
	if from, ok := w.SignerAddress(); ok {
		msg.From = from.ToCommon()
	}
	out, err := w.provider.client.CallContract(ctx, msg, nil)
	if err != nil {
		w.provider.metrics.BumpSum("call.err", 1, "method", method)
		ctx.WithFields(log.Fields{
			"err":      err,
			"method":   method,
			"contract": w.address,
		}).Error("client.CallContract failed")
		return nil, err
	}
	return out, nil
}

// SupportsInterface runs the erc165 probe. Contracts without erc165 report false.
func (w *contractWrapper) SupportsInterface(ctx bCtx.Ctx, interfaceId [4]byte) (bool, error) {
	method := "supportsInterface"
	data, err := baseabi.ERC165ABI.Pack(method, interfaceId)
	if err != nil {
		return false, err
	}
	out, err := w.callContract(ctx, method, data)
	if err != nil {
		if isRevert(err) {
			return false, nil
		}
		return false, err
	}
	if len(out) == 0 {
		return false, nil
	}
	res, err := baseabi.ERC165ABI.Unpack(method, out)
	if err != nil {
		return false, err
	}
	return res[0].(bool), nil
}

func (w *contractWrapper) SendTransaction(ctx bCtx.Ctx, method string, args ...interface{}) (*types.Receipt, error) {
	return w.SendTransactionWithValue(ctx, nil, method, args...)
}

func (w *contractWrapper) MultiCall(ctx bCtx.Ctx, calls [][]byte) (*types.Receipt, error) {
	return w.SendTransaction(ctx, "multicall", calls)
}

// SendTransactionWithValue signs and broadcasts one transaction, then waits for its receipt.
func (w *contractWrapper) SendTransactionWithValue(ctx bCtx.Ctx, value *big.Int, method string, args ...interface{}) (*types.Receipt, error) {
	key, ok := w.provider.Signer()
	if !ok {
		return nil, domain.ErrNoSigner
	}
	defer w.provider.metrics.BumpTime("tx.latency", "method", method).End()

	receipt, err := w.send(ctx, key, value, method, args...)
	if err != nil {
		w.provider.metrics.BumpSum("tx.err", 1, "method", method)
		return nil, err
	}
	return receipt, nil
}

func (w *contractWrapper) send(ctx bCtx.Ctx, key *ecdsa.PrivateKey, value *big.Int, method string, args ...interface{}) (*types.Receipt, error) {
	p := w.provider
	from := baseeth.PubkeyToAddress(key)
	ctx = bCtx.WithValues(ctx, map[string]interface{}{
		"method":   method,
		"contract": w.address,
	})

	nonce, err := p.client.PendingNonceAt(ctx, from)
	if err != nil {
		ctx.WithField("err", err).Error("client.PendingNonceAt failed")
		return nil, err
	}
	data, err := w.abi.Pack(method, args...)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Pack failed")
		return nil, err
	}
	gasPrice, err := p.gasPrice(ctx)
	if err != nil {
		return nil, err
	}
	if value == nil {
		value = new(big.Int)
	}
	gas, err := p.client.EstimateGas(ctx, ethereum.CallMsg{
		From:     from,
		To:       &w.contract,
		GasPrice: gasPrice,
		Value:    value,
		Data:     data,
	})
	if err != nil {
		// estimation runs the call, a failure here is a revert
		ctx.WithField("err", err).Error("client.EstimateGas failed")
		return nil, &domain.TransactionError{Method: method, Reason: err.Error(), Err: err}
	}
	chainId, err := p.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas,
		To:       &w.contract,
		Value:    value,
		Data:     data,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainId), key)
	if err != nil {
		ctx.WithField("err", err).Error("types.SignTx failed")
		return nil, err
	}
	hash := domain.TxHash(signed.Hash().Hex())
	if err := p.client.SendTransaction(ctx, signed); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"txHash": hash,
		}).Error("client.SendTransaction failed")
		return nil, &domain.TransactionError{TxHash: hash, Method: method, Reason: err.Error(), Err: err}
	}
	p.metrics.BumpSum("tx.sent", 1, "method", method)
	ctx.WithFields(log.Fields{
		"txHash": hash,
		"nonce":  nonce,
		"gas":    gas,
	}).Info("transaction sent")

	receipt, err := w.waitMined(ctx, signed.Hash())
	if err != nil {
		return nil, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		ctx.WithField("txHash", hash).Error("transaction reverted")
		return nil, &domain.TransactionError{TxHash: hash, Method: method, Reason: "execution reverted"}
	}
	return receipt, nil
}

// waitMined polls for the receipt until it shows up, TxTimeout passes or ctx is done
func (w *contractWrapper) waitMined(c bCtx.Ctx, hash common.Hash) (*types.Receipt, error) {
	p := w.provider
	ctx, cancel := bCtx.WithTimeout(c, p.txTimeout)
	defer cancel()

	b := backoff.NewExponential(firstPoll, p.pollInterval)
	for {
		receipt, err := p.client.TransactionReceipt(ctx, hash)
		if err == nil && receipt != nil {
			return receipt, nil
		}
		if err != nil && !errors.Is(err, ethereum.NotFound) && ctx.Err() == nil {
			ctx.WithFields(log.Fields{
				"err":    err,
				"txHash": hash.Hex(),
			}).Warn("client.TransactionReceipt failed, retrying")
		}
		if err := b.Backoff(ctx); err != nil {
			if c.Err() != nil {
				return nil, xerrors.Errorf("waiting for %s: %w", hash.Hex(), c.Err())
			}
			ctx.WithFields(log.Fields{
				"txHash": hash.Hex(),
				"polls":  b.Count(),
			}).Error("timed out waiting for transaction")
			return nil, xerrors.Errorf("%s: %w", hash.Hex(), domain.ErrTimeout)
		}
	}
}

// ParseEvents decodes every log of receipt emitted by this contract for event
func (w *contractWrapper) ParseEvents(receipt *types.Receipt, event string) ([]map[string]interface{}, error) {
	ev, ok := w.abi.Events[event]
	if !ok {
		return nil, xerrors.Errorf("%s not in abi: %w", event, domain.ErrEventNotFound)
	}
	var indexed abi.Arguments
	for _, arg := range ev.Inputs {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}

	res := []map[string]interface{}{}
	for _, l := range receipt.Logs {
		if l.Address != w.contract || len(l.Topics) == 0 || l.Topics[0] != ev.ID {
			continue
		}
		out := map[string]interface{}{}
		if nonIndexed := ev.Inputs.NonIndexed(); len(nonIndexed) > 0 {
			if err := nonIndexed.UnpackIntoMap(out, l.Data); err != nil {
				return nil, xerrors.Errorf("unpack %s: %w", event, err)
			}
		}
		if err := abi.ParseTopicsIntoMap(out, indexed, l.Topics[1:]); err != nil {
			return nil, xerrors.Errorf("parse %s topics: %w", event, err)
		}
		res = append(res, out)
	}
	if len(res) == 0 {
		return nil, xerrors.Errorf("%s in %s: %w", event, receipt.TxHash.Hex(), domain.ErrEventNotFound)
	}
	return res, nil
}

func isRevert(err error) bool {
	return strings.Contains(err.Error(), "execution reverted")
}
