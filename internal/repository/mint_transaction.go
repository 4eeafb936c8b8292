package repository

import (
	"context"

	"github.com/clawdcat/mintboard/internal/entity"
	"github.com/clawdcat/mintboard/pkg/xcontext"
)

type MintTransactionRepository interface {
	Create(ctx context.Context, e *entity.MintTransaction) error
	UpdateStatusByTxHash(ctx context.Context, chainID int64, txHash string, status entity.MintTransactionStatus) error
	GetByTxHash(ctx context.Context, chainID int64, txHash string) (*entity.MintTransaction, error)
	GetListByAccount(ctx context.Context, account string, limit int) ([]entity.MintTransaction, error)
}

type mintTransactionRepository struct{}

func NewMintTransactionRepository() *mintTransactionRepository {
	return &mintTransactionRepository{}
}

func (r *mintTransactionRepository) Create(ctx context.Context, e *entity.MintTransaction) error {
	return xcontext.DB(ctx).Create(e).Error
}

func (r *mintTransactionRepository) UpdateStatusByTxHash(
	ctx context.Context, chainID int64, txHash string, status entity.MintTransactionStatus,
) error {
	return xcontext.DB(ctx).Model(&entity.MintTransaction{}).
		Where("chain_id = ? AND tx_hash = ?", chainID, txHash).
		Update("status", status).Error
}

func (r *mintTransactionRepository) GetByTxHash(
	ctx context.Context, chainID int64, txHash string,
) (*entity.MintTransaction, error) {
	var result entity.MintTransaction
	if err := xcontext.DB(ctx).Take(&result, "chain_id = ? AND tx_hash = ?", chainID, txHash).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *mintTransactionRepository) GetListByAccount(
	ctx context.Context, account string, limit int,
) ([]entity.MintTransaction, error) {
	var result []entity.MintTransaction
	if err := xcontext.DB(ctx).
		Where("account = ?", account).
		Order("created_at DESC").
		Limit(limit).
		Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}
