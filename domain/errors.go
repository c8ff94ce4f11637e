package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSigner is returned by every state-changing call made without a signing account
	ErrNoSigner = errors.New("no signer configured")
	// ErrTransactionFailed matches every *TransactionError
	ErrTransactionFailed = errors.New("transaction failed")
	// ErrTimeout is returned when inclusion was not observed in time.
	// Resubmit with a fresh nonce, never the same signed tx.
	ErrTimeout = errors.New("timed out waiting for transaction")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrMalformedMetadata will throw if a blob is not a metadata json object
	ErrMalformedMetadata = errors.New("malformed metadata")
	ErrNotImplemented    = errors.New("not implemented")

	ErrInvalidArgument   = errors.New("invalid argument")
	ErrUnsupportedSchema = errors.New("Unsupported schema")
	ErrUnsupportedAsset  = errors.New("asset contract is neither erc721 nor erc1155")
	ErrEventNotFound     = errors.New("event not found in receipt")
	ErrInvalidAddress    = errors.New("Invalid address")
)

// TransactionError carries the reason a transaction was rejected or reverted.
type TransactionError struct {
	TxHash TxHash
	Method string
	Reason string
	Err    error
}

func (e *TransactionError) Error() string {
	msg := fmt.Sprintf("transaction %s failed", e.Method)
	if len(e.TxHash) > 0 {
		msg += fmt.Sprintf(" (hash: %s)", e.TxHash)
	}
	if len(e.Reason) > 0 {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *TransactionError) Is(target error) bool {
	return target == ErrTransactionFailed
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}
