package eth

import (
	"context"
	"math/big"
	"strings"

	"github.com/clawdcat/mintboard/internal/domain/blockchain/types"
	"github.com/clawdcat/mintboard/pkg/xcontext"
)

type EthDispatcher struct {
	client EthClient
}

func NewEthDispatcher(client EthClient) *EthDispatcher {
	return &EthDispatcher{client: client}
}

func (d *EthDispatcher) Dispatch(ctx context.Context, request *types.DispatchedTxRequest) *types.DispatchedTxResult {
	tx := request.Tx

	// Check the balance to see if we have enough native token.
	balance, err := d.client.BalanceAt(ctx, request.From, nil)
	if err != nil || balance == nil {
		xcontext.Logger(ctx).Errorf("Cannot get balance for account %s: %v", request.From, err)
		return types.NewDispatchTxError(request, types.ErrGeneric)
	}

	minimum := new(big.Int).Mul(tx.GasPrice(), new(big.Int).SetUint64(tx.Gas()))
	minimum = minimum.Add(minimum, tx.Value())
	if minimum.Cmp(balance) > 0 {
		xcontext.Logger(ctx).Errorf("Balance smaller than minimum required for this transaction, "+
			"from = %s, balance = %s, minimum = %s, chain = %d",
			request.From, balance, minimum, request.ChainID)
		return types.NewDispatchTxError(request, types.ErrNotEnoughBalance)
	}

	err = d.client.SendTransaction(ctx, tx)
	if err == nil {
		xcontext.Logger(ctx).Infof("Tx is dispatched successfully for chain %d from %s txHash = %s",
			request.ChainID, request.From, tx.Hash())
		return types.NewDispatchTxSuccess(request)
	}

	if strings.Contains(err.Error(), "already known") {
		// The node has already seen this tx. Ethereum does not return error code
		// in its JSON RPC, so we have to rely on string matching.
		return types.NewDispatchTxSuccess(request)
	}

	xcontext.Logger(ctx).Errorf("Failed to dispatch tx: %v", err)
	return types.NewDispatchTxError(request, types.ErrSubmitTx)
}
