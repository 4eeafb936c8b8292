package testutil

import (
	"context"

	"github.com/clawdcat/mintboard/internal/entity"
	"github.com/clawdcat/mintboard/pkg/xcontext"
)

const (
	FixtureAccount = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

var (
	MintTx1 = &entity.MintTransaction{
		Base:     entity.Base{ID: "mint1"},
		ChainID:  8453,
		TxHash:   "0x00000000000000000000000000000000000000000000000000000000000000a1",
		Contract: "0x1111111111111111111111111111111111111111",
		Account:  FixtureAccount,
		Amount:   "1000000000000000000",
		Status:   entity.MintTransactionSuccess,
	}

	MintTx2 = &entity.MintTransaction{
		Base:     entity.Base{ID: "mint2"},
		ChainID:  8453,
		TxHash:   "0x00000000000000000000000000000000000000000000000000000000000000a2",
		Contract: "0x1111111111111111111111111111111111111111",
		Account:  FixtureAccount,
		Amount:   "2000000000000000000",
		Status:   entity.MintTransactionPending,
	}

	MintTransactions = []*entity.MintTransaction{MintTx1, MintTx2}
)

func CreateFixtureDb(ctx context.Context) {
	InsertMintTransactions(ctx)
}

func InsertMintTransactions(ctx context.Context) {
	for _, tx := range MintTransactions {
		// Copy so callers cannot see the timestamps set by gorm.
		record := *tx
		if err := xcontext.DB(ctx).Create(&record).Error; err != nil {
			panic(err)
		}
	}
}
