package repository

import (
	"context"

	"gorm.io/gorm"

	"furima_dev_v1_202608/internal/model"
)

// TransactionEvidenceRepository 交易凭证仓储接口
type TransactionEvidenceRepository interface {
	GetByItemID(ctx context.Context, itemID int64) (*model.TransactionEvidence, error)
	WithTx(tx *gorm.DB) TransactionEvidenceRepository
}

type transactionEvidenceRepo struct {
	db *gorm.DB
}

// NewTransactionEvidenceRepository 创建交易凭证仓储
func NewTransactionEvidenceRepository(db *gorm.DB) TransactionEvidenceRepository {
	return &transactionEvidenceRepo{db: db}
}

func (r *transactionEvidenceRepo) GetByItemID(ctx context.Context, itemID int64) (*model.TransactionEvidence, error) {
	var evidence model.TransactionEvidence
	err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		First(&evidence).Error
	if err != nil {
		return nil, err
	}
	return &evidence, nil
}

func (r *transactionEvidenceRepo) WithTx(tx *gorm.DB) TransactionEvidenceRepository {
	return &transactionEvidenceRepo{db: tx}
}
