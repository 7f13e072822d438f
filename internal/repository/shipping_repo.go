package repository

import (
	"context"

	"gorm.io/gorm"

	"furima_dev_v1_202608/internal/model"
)

// ShippingRepository 配送仓储接口
type ShippingRepository interface {
	GetByTransactionEvidenceID(ctx context.Context, evidenceID int64) (*model.Shipping, error)

	// 后台刷新任务用：取出尚未送达的配送记录
	ListByStatuses(ctx context.Context, statuses []string, limit int) ([]model.Shipping, error)
	UpdateStatus(ctx context.Context, evidenceID int64, status string) error

	WithTx(tx *gorm.DB) ShippingRepository
}

type shippingRepo struct {
	db *gorm.DB
}

// NewShippingRepository 创建配送仓储
func NewShippingRepository(db *gorm.DB) ShippingRepository {
	return &shippingRepo{db: db}
}

func (r *shippingRepo) GetByTransactionEvidenceID(ctx context.Context, evidenceID int64) (*model.Shipping, error) {
	var shipping model.Shipping
	err := r.db.WithContext(ctx).
		Where("transaction_evidence_id = ?", evidenceID).
		First(&shipping).Error
	if err != nil {
		return nil, err
	}
	return &shipping, nil
}

func (r *shippingRepo) ListByStatuses(ctx context.Context, statuses []string, limit int) ([]model.Shipping, error) {
	var shippings []model.Shipping
	err := r.db.WithContext(ctx).
		Where("status IN ?", statuses).
		Order("updated_at ASC").
		Limit(limit).
		Find(&shippings).Error
	return shippings, err
}

func (r *shippingRepo) UpdateStatus(ctx context.Context, evidenceID int64, status string) error {
	return r.db.WithContext(ctx).
		Model(&model.Shipping{}).
		Where("transaction_evidence_id = ?", evidenceID).
		Update("status", status).Error
}

func (r *shippingRepo) WithTx(tx *gorm.DB) ShippingRepository {
	return &shippingRepo{db: tx}
}
