package common

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

const redisKeyTrackedTxPrefix = "mintboard:trackedtx"

func RedisKeyTrackedTx(chainID int64, hash common.Hash) string {
	return fmt.Sprintf("%s:%d:%s", redisKeyTrackedTxPrefix, chainID, hash.Hex())
}

func RedisPatternTrackedTx() string {
	return redisKeyTrackedTxPrefix + ":*"
}

func FromRedisKeyTrackedTx(key string) (int64, common.Hash, error) {
	parts := strings.Split(strings.TrimPrefix(key, redisKeyTrackedTxPrefix+":"), ":")
	if len(parts) != 2 {
		return 0, common.Hash{}, fmt.Errorf("invalid tracked tx key %s", key)
	}

	chainID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, common.Hash{}, fmt.Errorf("invalid chain id in key %s: %w", key, err)
	}

	return chainID, common.HexToHash(parts[1]), nil
}
