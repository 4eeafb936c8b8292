package eth

import (
	"context"
	"errors"
	"time"

	"github.com/clawdcat/mintboard/internal/domain/blockchain/types"
	"github.com/clawdcat/mintboard/pkg/xcontext"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

type ReceiptWaiter struct {
	client       EthClient
	pollInterval time.Duration
	timeout      time.Duration
}

func NewReceiptWaiter(client EthClient, pollInterval, timeout time.Duration) *ReceiptWaiter {
	return &ReceiptWaiter{
		client:       client,
		pollInterval: pollInterval,
		timeout:      timeout,
	}
}

// WaitForReceipt polls for the receipt of hash until it is mined or the
// timeout elapses. An error is only returned when ctx itself is done.
func (w *ReceiptWaiter) WaitForReceipt(ctx context.Context, hash common.Hash) (types.TrackResult, error) {
	waitCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		rpcCtx, rpcCancel := context.WithTimeout(waitCtx, RpcTimeOut)
		receipt, err := w.client.TransactionReceipt(rpcCtx, hash)
		rpcCancel()

		if err == nil && receipt != nil {
			if receipt.Status == ethtypes.ReceiptStatusSuccessful {
				return types.TrackResultConfirmed, nil
			}

			xcontext.Logger(ctx).Warnf("Tx %s was reverted in block %s", hash, receipt.BlockNumber)
			return types.TrackResultFailure, nil
		}

		if err != nil && !errors.Is(err, ethereum.NotFound) {
			xcontext.Logger(ctx).Warnf("Cannot get receipt for tx hash %s: %v", hash, err)
		}

		select {
		case <-waitCtx.Done():
			if ctx.Err() != nil {
				return types.TrackResultUnknown, ctx.Err()
			}

			xcontext.Logger(ctx).Errorf("Timed out waiting for receipt of tx %s", hash)
			return types.TrackResultTimeout, nil

		case <-ticker.C:
		}
	}
}
