package blockchain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"

	"github.com/clawdcat/mintboard/internal/domain/blockchain/eth"
	"github.com/clawdcat/mintboard/internal/domain/blockchain/types"
	"github.com/clawdcat/mintboard/pkg/xcontext"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// ChainGateway serves token reads and mints for a single chain.
type ChainGateway struct {
	chainID    int64
	client     eth.EthClient
	dispatcher Dispatcher
	waiter     ReceiptWaiter
}

func NewChainGateway(client eth.EthClient, dispatcher Dispatcher, waiter ReceiptWaiter) *ChainGateway {
	return &ChainGateway{
		chainID:    client.ChainID(),
		client:     client,
		dispatcher: dispatcher,
		waiter:     waiter,
	}
}

func (g *ChainGateway) TokenInfo(ctx context.Context, token common.Address) (types.TokenInfo, error) {
	return g.client.TokenInfo(ctx, token)
}

func (g *ChainGateway) Decimals(ctx context.Context, token common.Address) (uint8, error) {
	return g.client.ERC20Decimals(ctx, token)
}

func (g *ChainGateway) Symbol(ctx context.Context, token common.Address) (string, error) {
	return g.client.ERC20Symbol(ctx, token)
}

func (g *ChainGateway) TotalSupply(ctx context.Context, token common.Address) (*big.Int, error) {
	return g.client.ERC20TotalSupply(ctx, token)
}

func (g *ChainGateway) BalanceOf(ctx context.Context, token, account common.Address) (*big.Int, error) {
	return g.client.ERC20BalanceOf(ctx, token, account)
}

func (g *ChainGateway) Mint(
	ctx context.Context, signer *ecdsa.PrivateKey, token common.Address, amount *big.Int,
) (common.Hash, error) {
	tx, err := g.client.GetSignedMintTx(ctx, signer, token, amount)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot build mint tx on chain %d: %v", g.chainID, err)
		return common.Hash{}, err
	}

	result := g.dispatcher.Dispatch(ctx, &types.DispatchedTxRequest{
		ChainID: g.chainID,
		From:    crypto.PubkeyToAddress(signer.PublicKey),
		Tx:      tx,
	})
	if !result.Success {
		return common.Hash{}, errors.New(result.Err.String())
	}

	return result.TxHash, nil
}

func (g *ChainGateway) WaitForReceipt(ctx context.Context, hash common.Hash) (types.TrackResult, error) {
	return g.waiter.WaitForReceipt(ctx, hash)
}
