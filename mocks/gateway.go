package mocks

import (
	"context"
	"crypto/ecdsa"
	"math/big"

	"github.com/clawdcat/mintboard/internal/domain/blockchain/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
)

type Gateway struct {
	mock.Mock
}

func (g *Gateway) TokenInfo(arg1 context.Context, arg2 common.Address) (types.TokenInfo, error) {
	args := g.Called(arg1, arg2)

	if args.Get(0) == nil {
		return types.TokenInfo{}, args.Error(1)
	}
	return args.Get(0).(types.TokenInfo), args.Error(1)
}

func (g *Gateway) Decimals(arg1 context.Context, arg2 common.Address) (uint8, error) {
	args := g.Called(arg1, arg2)

	if args.Get(0) == nil {
		return 0, args.Error(1)
	}
	return args.Get(0).(uint8), args.Error(1)
}

func (g *Gateway) Symbol(arg1 context.Context, arg2 common.Address) (string, error) {
	args := g.Called(arg1, arg2)
	return args.String(0), args.Error(1)
}

func (g *Gateway) TotalSupply(arg1 context.Context, arg2 common.Address) (*big.Int, error) {
	args := g.Called(arg1, arg2)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (g *Gateway) BalanceOf(arg1 context.Context, arg2, arg3 common.Address) (*big.Int, error) {
	args := g.Called(arg1, arg2, arg3)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (g *Gateway) Mint(arg1 context.Context, arg2 *ecdsa.PrivateKey, arg3 common.Address, arg4 *big.Int) (common.Hash, error) {
	args := g.Called(arg1, arg2, arg3, arg4)

	if args.Get(0) == nil {
		return common.Hash{}, args.Error(1)
	}
	return args.Get(0).(common.Hash), args.Error(1)
}

func (g *Gateway) WaitForReceipt(arg1 context.Context, arg2 common.Hash) (types.TrackResult, error) {
	args := g.Called(arg1, arg2)

	if args.Get(0) == nil {
		return types.TrackResultUnknown, args.Error(1)
	}
	return args.Get(0).(types.TrackResult), args.Error(1)
}
