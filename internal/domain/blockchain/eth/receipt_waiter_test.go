package eth

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/clawdcat/mintboard/internal/domain/blockchain/types"
	"github.com/clawdcat/mintboard/mocks"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testHash = common.HexToHash("0x1234")

func Test_WaitForReceipt_Confirmed(t *testing.T) {
	client := &mocks.EthClient{}
	client.On("TransactionReceipt", mock.Anything, testHash).Return(nil, ethereum.NotFound).Once()
	client.On("TransactionReceipt", mock.Anything, testHash).Return(&ethtypes.Receipt{
		Status:      ethtypes.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(10),
	}, nil).Once()

	waiter := NewReceiptWaiter(client, time.Millisecond, time.Second)
	result, err := waiter.WaitForReceipt(context.Background(), testHash)

	require.NoError(t, err)
	require.Equal(t, types.TrackResultConfirmed, result)
	client.AssertNumberOfCalls(t, "TransactionReceipt", 2)
}

func Test_WaitForReceipt_Reverted(t *testing.T) {
	client := &mocks.EthClient{}
	client.On("TransactionReceipt", mock.Anything, testHash).Return(&ethtypes.Receipt{
		Status:      ethtypes.ReceiptStatusFailed,
		BlockNumber: big.NewInt(10),
	}, nil)

	waiter := NewReceiptWaiter(client, time.Millisecond, time.Second)
	result, err := waiter.WaitForReceipt(context.Background(), testHash)

	require.NoError(t, err)
	require.Equal(t, types.TrackResultFailure, result)
}

func Test_WaitForReceipt_Timeout(t *testing.T) {
	client := &mocks.EthClient{}
	client.On("TransactionReceipt", mock.Anything, testHash).Return(nil, ethereum.NotFound)

	waiter := NewReceiptWaiter(client, 5*time.Millisecond, 30*time.Millisecond)
	result, err := waiter.WaitForReceipt(context.Background(), testHash)

	require.NoError(t, err)
	require.Equal(t, types.TrackResultTimeout, result)
}

func Test_WaitForReceipt_Cancelled(t *testing.T) {
	client := &mocks.EthClient{}
	client.On("TransactionReceipt", mock.Anything, testHash).Return(nil, ethereum.NotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	waiter := NewReceiptWaiter(client, 5*time.Millisecond, time.Minute)
	result, err := waiter.WaitForReceipt(ctx, testHash)

	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, types.TrackResultUnknown, result)
}
