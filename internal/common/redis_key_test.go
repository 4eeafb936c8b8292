package common

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestRedisKeyTrackedTx(t *testing.T) {
	hash := common.HexToHash("0xabc")
	key := RedisKeyTrackedTx(8453, hash)

	chainID, got, err := FromRedisKeyTrackedTx(key)
	require.NoError(t, err)
	require.Equal(t, int64(8453), chainID)
	require.Equal(t, hash, got)

	_, _, err = FromRedisKeyTrackedTx("mintboard:trackedtx:abc")
	require.Error(t, err)
}
