package types

import (
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

type DispatchError int

const (
	ErrNil DispatchError = iota // no error
	ErrGeneric
	ErrNotEnoughBalance
	ErrSubmitTx
)

func (e DispatchError) String() string {
	switch e {
	case ErrNil:
		return ""
	case ErrNotEnoughBalance:
		return "Insufficient funds for gas"
	case ErrSubmitTx:
		return "Failed to submit transaction"
	default:
		return "Transaction could not be sent"
	}
}

type DispatchedTxRequest struct {
	ChainID int64
	From    common.Address
	Tx      *ethtypes.Transaction
}

type DispatchedTxResult struct {
	Success bool
	Err     DispatchError
	ChainID int64
	TxHash  common.Hash
}

func NewDispatchTxError(request *DispatchedTxRequest, err DispatchError) *DispatchedTxResult {
	return &DispatchedTxResult{
		ChainID: request.ChainID,
		TxHash:  request.Tx.Hash(),
		Success: false,
		Err:     err,
	}
}

func NewDispatchTxSuccess(request *DispatchedTxRequest) *DispatchedTxResult {
	return &DispatchedTxResult{
		ChainID: request.ChainID,
		TxHash:  request.Tx.Hash(),
		Success: true,
		Err:     ErrNil,
	}
}
