package repository

import (
	"context"

	"gorm.io/gorm"

	"furima_dev_v1_202608/internal/model"
)

// CategoryRepository 类目仓储接口
type CategoryRepository interface {
	GetByID(ctx context.Context, id int) (*model.Category, error)
	ListIDsByParentID(ctx context.Context, parentID int) ([]int, error)
	WithTx(tx *gorm.DB) CategoryRepository
}

type categoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepository 创建类目仓储
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) GetByID(ctx context.Context, id int) (*model.Category, error) {
	var category model.Category
	err := r.db.WithContext(ctx).First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) ListIDsByParentID(ctx context.Context, parentID int) ([]int, error) {
	var ids []int
	err := r.db.WithContext(ctx).
		Model(&model.Category{}).
		Where("parent_id = ?", parentID).
		Order("id ASC").
		Pluck("id", &ids).Error
	return ids, err
}

func (r *categoryRepo) WithTx(tx *gorm.DB) CategoryRepository {
	return &categoryRepo{db: tx}
}
