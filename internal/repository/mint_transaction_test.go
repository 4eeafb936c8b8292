package repository

import (
	"testing"

	"github.com/clawdcat/mintboard/internal/entity"
	"github.com/clawdcat/mintboard/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_mintTransactionRepository_Create(t *testing.T) {
	ctx := testutil.MockContext()
	repo := NewMintTransactionRepository()

	tx := &entity.MintTransaction{
		Base:     entity.Base{ID: "new"},
		ChainID:  1,
		TxHash:   "0xabc",
		Contract: "0x2222222222222222222222222222222222222222",
		Account:  testutil.FixtureAccount,
		Amount:   "5",
		Status:   entity.MintTransactionPending,
	}
	require.NoError(t, repo.Create(ctx, tx))

	got, err := repo.GetByTxHash(ctx, 1, "0xabc")
	require.NoError(t, err)
	require.Equal(t, "new", got.ID)
	require.Equal(t, entity.MintTransactionPending, got.Status)

	// The same hash on another chain is a different record.
	_, err = repo.GetByTxHash(ctx, 8453, "0xabc")
	require.Error(t, err)

	// Chain and hash are unique together.
	dup := *tx
	dup.ID = "dup"
	require.Error(t, repo.Create(ctx, &dup))
}

func Test_mintTransactionRepository_UpdateStatusByTxHash(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	repo := NewMintTransactionRepository()

	err := repo.UpdateStatusByTxHash(ctx, testutil.MintTx2.ChainID, testutil.MintTx2.TxHash, entity.MintTransactionFailure)
	require.NoError(t, err)

	got, err := repo.GetByTxHash(ctx, testutil.MintTx2.ChainID, testutil.MintTx2.TxHash)
	require.NoError(t, err)
	require.Equal(t, entity.MintTransactionFailure, got.Status)

	got, err = repo.GetByTxHash(ctx, testutil.MintTx1.ChainID, testutil.MintTx1.TxHash)
	require.NoError(t, err)
	require.Equal(t, entity.MintTransactionSuccess, got.Status)
}

func Test_mintTransactionRepository_GetListByAccount(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	repo := NewMintTransactionRepository()

	list, err := repo.GetListByAccount(ctx, testutil.FixtureAccount, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)

	list, err = repo.GetListByAccount(ctx, testutil.FixtureAccount, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)

	list, err = repo.GetListByAccount(ctx, "0xnobody", 10)
	require.NoError(t, err)
	require.Empty(t, list)
}
