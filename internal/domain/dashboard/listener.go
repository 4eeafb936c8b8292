package dashboard

import (
	"context"
	"errors"
	"strconv"

	"github.com/clawdcat/mintboard/internal/common"
	"github.com/clawdcat/mintboard/internal/domain/blockchain/types"
	"github.com/clawdcat/mintboard/internal/domain/mintform"
	"github.com/clawdcat/mintboard/internal/domain/wallet"
	"github.com/clawdcat/mintboard/internal/entity"
	"github.com/clawdcat/mintboard/pkg/xcontext"
	"github.com/clawdcat/mintboard/pkg/xredis"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// trackedTx is the value stored under common.RedisKeyTrackedTx until the
// receipt is known.
type trackedTx struct {
	Account  string `json:"account"`
	Contract string `json:"contract"`
	Amount   string `json:"amount"`
}

type mintListener struct {
	dashboard *dashboard
	account   wallet.Account
}

func (l *mintListener) OnSubmitted(ctx context.Context, req mintform.WriteRequest, hash ethcommon.Hash) {
	d := l.dashboard
	chainID := l.account.ChainID
	common.PromCounters[common.MintSubmittedTotal].WithLabelValues(chainLabel(chainID)).Inc()

	err := d.mintTxRepo.Create(ctx, &entity.MintTransaction{
		Base:     entity.Base{ID: uuid.NewString()},
		ChainID:  chainID,
		TxHash:   hash.Hex(),
		Contract: req.Contract.Hex(),
		Account:  l.account.Address.Hex(),
		Amount:   req.Amount.String(),
		Status:   entity.MintTransactionPending,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create mint transaction %s: %v", hash.Hex(), err)
	}

	err = d.trackedTx.SetObj(ctx, common.RedisKeyTrackedTx(chainID, hash), trackedTx{
		Account:  l.account.Address.Hex(),
		Contract: req.Contract.Hex(),
		Amount:   req.Amount.String(),
	}, 0)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot track tx %s: %v", hash.Hex(), err)
	}
}

func (l *mintListener) OnResolved(ctx context.Context, hash ethcommon.Hash, result types.TrackResult) {
	l.dashboard.resolve(ctx, l.account.ChainID, hash, result)
}

func (l *mintListener) OnWriteFailed(ctx context.Context, req mintform.WriteRequest, err error) {
	common.PromCounters[common.MintFailedTotal].
		WithLabelValues(chainLabel(l.account.ChainID), "write").Inc()
}

// resolve records the receipt result. A timed out tx stays tracked so the
// next ResumeTracked can settle it.
func (d *dashboard) resolve(ctx context.Context, chainID int64, hash ethcommon.Hash, result types.TrackResult) {
	var status entity.MintTransactionStatus
	switch result {
	case types.TrackResultConfirmed:
		common.PromCounters[common.MintConfirmedTotal].WithLabelValues(chainLabel(chainID)).Inc()
		status = entity.MintTransactionSuccess
	case types.TrackResultFailure:
		common.PromCounters[common.MintFailedTotal].WithLabelValues(chainLabel(chainID), "reverted").Inc()
		status = entity.MintTransactionFailure
	case types.TrackResultTimeout:
		common.PromCounters[common.MintFailedTotal].WithLabelValues(chainLabel(chainID), "timeout").Inc()
		return
	default:
		return
	}

	if err := d.mintTxRepo.UpdateStatusByTxHash(ctx, chainID, hash.Hex(), status); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update status of tx %s: %v", hash.Hex(), err)
		return
	}

	if err := d.trackedTx.Del(ctx, common.RedisKeyTrackedTx(chainID, hash)); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot untrack tx %s: %v", hash.Hex(), err)
	}
}

func (d *dashboard) ResumeTracked(ctx context.Context) error {
	keys, err := d.trackedTx.Keys(ctx, common.RedisPatternTrackedTx())
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot list tracked txs: %v", err)
		return err
	}

	for _, key := range keys {
		chainID, hash, err := common.FromRedisKeyTrackedTx(key)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Drop invalid tracked tx key: %v", err)
			if err := d.trackedTx.Del(ctx, key); err != nil {
				xcontext.Logger(ctx).Errorf("Cannot delete key %s: %v", key, err)
			}
			continue
		}

		var tx trackedTx
		if err := d.trackedTx.GetObj(ctx, key, &tx); err != nil {
			if errors.Is(err, xredis.ErrNotFound) {
				continue
			}

			xcontext.Logger(ctx).Warnf("Cannot read tracked tx %s: %v", hash.Hex(), err)
		}

		gateway := d.gateways.Gateway(chainID)
		if gateway == nil {
			xcontext.Logger(ctx).Warnf("No gateway for tracked tx %s on chain %d", hash.Hex(), chainID)
			continue
		}

		result, err := gateway.WaitForReceipt(ctx, hash)
		if err != nil {
			return err
		}

		xcontext.Logger(ctx).Infof("Tracked tx %s of %s resolved: %s", hash.Hex(), tx.Account, result)
		d.resolve(ctx, chainID, hash, result)
	}

	return nil
}

func chainLabel(chainID int64) string {
	return strconv.FormatInt(chainID, 10)
}
