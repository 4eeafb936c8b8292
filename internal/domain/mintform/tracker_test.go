package mintform

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/clawdcat/mintboard/internal/domain/blockchain/types"
	"github.com/clawdcat/mintboard/mocks"
	"github.com/clawdcat/mintboard/pkg/ethutil"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordListener struct {
	mutex     sync.Mutex
	submitted []common.Hash
	resolved  []types.TrackResult
	failed    []error
}

func (l *recordListener) OnSubmitted(_ context.Context, _ WriteRequest, hash common.Hash) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.submitted = append(l.submitted, hash)
}

func (l *recordListener) OnResolved(_ context.Context, _ common.Hash, result types.TrackResult) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.resolved = append(l.resolved, result)
}

func (l *recordListener) OnWriteFailed(_ context.Context, _ WriteRequest, err error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.failed = append(l.failed, err)
}

func newTestTracker(t *testing.T, gateway *mocks.Gateway) (*Tracker, *[]Flags, *recordListener) {
	key, err := ethutil.GeneratePrivateKey([]byte("secret"), nil)
	require.NoError(t, err)

	var flags []Flags
	listener := &recordListener{}
	tracker := NewTracker(context.Background(), TrackerOptions{
		Writer:   gateway,
		Waiter:   gateway,
		Signer:   key,
		Listener: listener,
		Apply:    func(f Flags) { flags = append(flags, f) },
	})

	return tracker, &flags, listener
}

func Test_Tracker_Confirmed(t *testing.T) {
	hash := common.HexToHash("0xaa")
	amount := big.NewInt(100)

	gateway := &mocks.Gateway{}
	gateway.On("Mint", mock.Anything, mock.Anything, testContract, amount).Return(hash, nil).Once()
	gateway.On("WaitForReceipt", mock.Anything, hash).Return(types.TrackResultConfirmed, nil).Once()

	tracker, flags, listener := newTestTracker(t, gateway)
	tracker.Write(WriteRequest{Contract: testContract, Amount: amount})
	tracker.Wait()

	require.Equal(t, []Flags{
		{WritePending: true},
		{Confirming: true, Hash: hash},
		{Confirmed: true, Hash: hash},
	}, *flags)
	require.Equal(t, []common.Hash{hash}, listener.submitted)
	require.Equal(t, []types.TrackResult{types.TrackResultConfirmed}, listener.resolved)
	gateway.AssertExpectations(t)
}

func Test_Tracker_WriteError(t *testing.T) {
	writeErr := errors.New("insufficient funds for gas * price + value")

	gateway := &mocks.Gateway{}
	gateway.On("Mint", mock.Anything, mock.Anything, testContract, mock.Anything).Return(nil, writeErr).Once()

	tracker, flags, listener := newTestTracker(t, gateway)
	tracker.Write(WriteRequest{Contract: testContract, Amount: big.NewInt(1)})
	tracker.Wait()

	require.Equal(t, []Flags{{WritePending: true}, {WriteErr: writeErr}}, *flags)
	require.Equal(t, []error{writeErr}, listener.failed)
	gateway.AssertNotCalled(t, "WaitForReceipt", mock.Anything, mock.Anything)
}

func Test_Tracker_ReceiptFailures(t *testing.T) {
	testCases := []struct {
		name   string
		result types.TrackResult
		err    error
	}{
		{name: "reverted", result: types.TrackResultFailure, err: ErrTransactionFailed},
		{name: "timeout", result: types.TrackResultTimeout, err: ErrConfirmationTimeout},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			hash := common.HexToHash("0xbb")
			gateway := &mocks.Gateway{}
			gateway.On("Mint", mock.Anything, mock.Anything, testContract, mock.Anything).Return(hash, nil)
			gateway.On("WaitForReceipt", mock.Anything, hash).Return(tc.result, nil)

			tracker, flags, _ := newTestTracker(t, gateway)
			tracker.Write(WriteRequest{Contract: testContract, Amount: big.NewInt(1)})
			tracker.Wait()

			require.Len(t, *flags, 3)
			require.Equal(t, Flags{WriteErr: tc.err, Hash: hash}, (*flags)[2])
		})
	}
}

func Test_Tracker_DrivesForm(t *testing.T) {
	hash := common.HexToHash("0xcc")
	gateway := &mocks.Gateway{}
	gateway.On("Mint", mock.Anything, mock.Anything, testContract, big.NewInt(2_000_000)).Return(hash, nil)
	gateway.On("WaitForReceipt", mock.Anything, hash).Return(types.TrackResultConfirmed, nil)

	fx := newFormFixture()
	key, err := ethutil.GeneratePrivateKey([]byte("secret"), nil)
	require.NoError(t, err)

	tracker := NewTracker(context.Background(), TrackerOptions{
		Writer: gateway,
		Waiter: gateway,
		Signer: key,
		Apply:  fx.form.Apply,
	})
	fx.form.opts.Writer = tracker

	fx.form.SetAmount("2")
	require.True(t, fx.form.Submit(context.Background(), decimalsOf(6), &testContract))
	tracker.Wait()

	require.Equal(t, StatusSuccess, fx.form.View().Status)
	require.Equal(t, 1, fx.refetch)
}

func Test_Tracker_Closed(t *testing.T) {
	gateway := &mocks.Gateway{}

	tracker, flags, _ := newTestTracker(t, gateway)
	tracker.Close()
	tracker.Write(WriteRequest{Contract: testContract, Amount: big.NewInt(1)})
	tracker.Wait()

	require.Empty(t, *flags)
	gateway.AssertNotCalled(t, "Mint", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func Test_Tracker_CloseDuringWrite(t *testing.T) {
	hash := common.HexToHash("0xdd")
	started := make(chan struct{})
	release := make(chan struct{})

	var mintCtxErr, waitCtxErr error
	gateway := &mocks.Gateway{}
	gateway.On("Mint", mock.Anything, mock.Anything, testContract, mock.Anything).
		Run(func(args mock.Arguments) {
			close(started)
			<-release
			mintCtxErr = args.Get(0).(context.Context).Err()
		}).
		Return(hash, nil).Once()
	gateway.On("WaitForReceipt", mock.Anything, hash).
		Run(func(args mock.Arguments) {
			waitCtxErr = args.Get(0).(context.Context).Err()
		}).
		Return(nil, context.Canceled).Once()

	tracker, flags, listener := newTestTracker(t, gateway)
	tracker.Write(WriteRequest{Contract: testContract, Amount: big.NewInt(1)})
	<-started

	closed := make(chan struct{})
	go func() {
		tracker.Close()
		close(closed)
	}()

	require.Eventually(t, func() bool { return tracker.ctx.Err() != nil }, time.Second, time.Millisecond)
	close(release)
	<-closed

	require.NoError(t, mintCtxErr)
	require.ErrorIs(t, waitCtxErr, context.Canceled)
	require.Equal(t, []common.Hash{hash}, listener.submitted)
	require.Empty(t, listener.resolved)
	require.Equal(t, []Flags{{WritePending: true}}, *flags)
	gateway.AssertExpectations(t)
}
