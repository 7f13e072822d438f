package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"furima_dev_v1_202608/internal/model"
)

// ConfigRepository 运行时配置仓储接口
type ConfigRepository interface {
	GetValByName(ctx context.Context, name string) (string, error)
	Upsert(ctx context.Context, name, val string) error
	WithTx(tx *gorm.DB) ConfigRepository
}

type configRepo struct {
	db *gorm.DB
}

// NewConfigRepository 创建配置仓储
func NewConfigRepository(db *gorm.DB) ConfigRepository {
	return &configRepo{db: db}
}

func (r *configRepo) GetValByName(ctx context.Context, name string) (string, error) {
	var config model.Config
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&config).Error
	if err != nil {
		return "", err
	}
	return config.Val, nil
}

func (r *configRepo) Upsert(ctx context.Context, name, val string) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"val"}),
	}).Create(&model.Config{Name: name, Val: val}).Error
}

func (r *configRepo) WithTx(tx *gorm.DB) ConfigRepository {
	return &configRepo{db: tx}
}
