package blockchain

import (
	"context"
	"crypto/ecdsa"
	"math/big"

	"github.com/clawdcat/mintboard/internal/domain/blockchain/types"
	"github.com/ethereum/go-ethereum/common"
)

// This is an interface for all dispatcher that sends transactions to different blockchain.
type Dispatcher interface {
	Dispatch(ctx context.Context, request *types.DispatchedTxRequest) *types.DispatchedTxResult
}

type TokenReader interface {
	TokenInfo(ctx context.Context, token common.Address) (types.TokenInfo, error)
	Decimals(ctx context.Context, token common.Address) (uint8, error)
	Symbol(ctx context.Context, token common.Address) (string, error)
	TotalSupply(ctx context.Context, token common.Address) (*big.Int, error)
	BalanceOf(ctx context.Context, token, account common.Address) (*big.Int, error)
}

type TokenWriter interface {
	// Mint signs and submits a mint(amount) call from signer. The returned hash
	// is only known to be accepted by the node, not mined.
	Mint(ctx context.Context, signer *ecdsa.PrivateKey, token common.Address, amount *big.Int) (common.Hash, error)
}

type ReceiptWaiter interface {
	WaitForReceipt(ctx context.Context, hash common.Hash) (types.TrackResult, error)
}

type Resolver interface {
	Resolve(chainID int64) common.Address
}

// Gateway is everything the dashboard needs from one chain.
type Gateway interface {
	TokenReader
	TokenWriter
	ReceiptWaiter
}

type GatewayProvider interface {
	Gateway(chainID int64) Gateway
}
