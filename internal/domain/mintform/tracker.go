package mintform

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"sync"

	"github.com/clawdcat/mintboard/internal/domain/blockchain"
	"github.com/clawdcat/mintboard/internal/domain/blockchain/types"
	"github.com/clawdcat/mintboard/pkg/xcontext"
	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrTransactionFailed   = errors.New("Transaction failed")
	ErrConfirmationTimeout = errors.New("Transaction confirmation timed out")
)

// Listener observes the lifecycle of the writes driven by a Tracker.
type Listener interface {
	OnSubmitted(ctx context.Context, req WriteRequest, hash common.Hash)
	OnResolved(ctx context.Context, hash common.Hash, result types.TrackResult)
	OnWriteFailed(ctx context.Context, req WriteRequest, err error)
}

type TrackerOptions struct {
	Writer   blockchain.TokenWriter
	Waiter   blockchain.ReceiptWaiter
	Signer   *ecdsa.PrivateKey
	Listener Listener

	// Apply receives every flag change, in order.
	Apply func(Flags)
}

// Tracker sends mint transactions and waits for their receipts in the
// background.
type Tracker struct {
	opts TrackerOptions

	// writeCtx is not cancelled by Close. A mint that reached the writer is
	// always recorded, even when the session unmounts meanwhile.
	writeCtx context.Context

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewTracker(ctx context.Context, opts TrackerOptions) *Tracker {
	waitCtx, cancel := context.WithCancel(ctx)
	return &Tracker{opts: opts, writeCtx: ctx, ctx: waitCtx, cancel: cancel}
}

func (t *Tracker) Write(req WriteRequest) {
	if t.ctx.Err() != nil {
		return
	}

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		t.run(req)
	}()
}

func (t *Tracker) run(req WriteRequest) {
	writeCtx := t.writeCtx

	t.apply(Flags{WritePending: true})

	hash, err := t.opts.Writer.Mint(writeCtx, t.opts.Signer, req.Contract, req.Amount)
	if err != nil {
		xcontext.Logger(writeCtx).Warnf("Mint write failed: %v", err)
		if t.opts.Listener != nil {
			t.opts.Listener.OnWriteFailed(writeCtx, req, err)
		}

		t.apply(Flags{WriteErr: err})
		return
	}

	if t.opts.Listener != nil {
		t.opts.Listener.OnSubmitted(writeCtx, req, hash)
	}

	t.apply(Flags{Confirming: true, Hash: hash})

	ctx := t.ctx
	result, err := t.opts.Waiter.WaitForReceipt(ctx, hash)
	if err != nil {
		// Closed while waiting; the hash stays tracked for the next start.
		xcontext.Logger(ctx).Infof("Stopped waiting for tx %s: %v", hash, err)
		return
	}

	if t.opts.Listener != nil {
		t.opts.Listener.OnResolved(writeCtx, hash, result)
	}

	switch result {
	case types.TrackResultConfirmed:
		t.apply(Flags{Confirmed: true, Hash: hash})
	case types.TrackResultTimeout:
		t.apply(Flags{WriteErr: ErrConfirmationTimeout, Hash: hash})
	default:
		t.apply(Flags{WriteErr: ErrTransactionFailed, Hash: hash})
	}
}

func (t *Tracker) apply(flags Flags) {
	if t.ctx.Err() != nil || t.opts.Apply == nil {
		return
	}

	t.opts.Apply(flags)
}

// Close cancels in-flight receipt waits and blocks until they return. Writes
// already started run to completion.
func (t *Tracker) Close() {
	t.cancel()
	t.wg.Wait()
}

// Wait blocks until every started write has finished.
func (t *Tracker) Wait() {
	t.wg.Wait()
}
