package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"furima_dev_v1_202608/internal/model"
)

// ==================== 游标 ====================

// ItemCursor keyset 分页游标，取值来自上一页最后一条记录
type ItemCursor struct {
	ItemID    int64
	CreatedAt time.Time
}

// ==================== 接口定义 ====================

// ItemRepository 商品仓储接口
type ItemRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Item, error)

	// 列表查询，均按 (created_at DESC, id DESC) 排序，limit 由调用方控制（通常取每页条数 +1 判断 has_next）
	ListLatest(ctx context.Context, statuses []string, cursor *ItemCursor, limit int) ([]model.Item, error)
	ListLatestByCategories(ctx context.Context, statuses []string, categoryIDs []int, cursor *ItemCursor, limit int) ([]model.Item, error)
	ListLatestByUser(ctx context.Context, userID int64, statuses []string, cursor *ItemCursor, limit int) ([]model.Item, error)

	// 事务
	WithTx(tx *gorm.DB) ItemRepository
}

// ==================== 仓储实现 ====================

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository 创建商品仓储
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	var item model.Item
	err := r.db.WithContext(ctx).First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// applyCursor 拼接复合游标条件。created_at 只有秒级精度，同秒内必须再按 id
// 截断，否则翻页会漏行或重复
func applyCursor(query *gorm.DB, cursor *ItemCursor) *gorm.DB {
	if cursor == nil {
		return query
	}
	return query.Where(
		"created_at < ? OR (created_at <= ? AND id < ?)",
		cursor.CreatedAt, cursor.CreatedAt, cursor.ItemID,
	)
}

func (r *itemRepo) ListLatest(ctx context.Context, statuses []string, cursor *ItemCursor, limit int) ([]model.Item, error) {
	var items []model.Item
	query := r.db.WithContext(ctx).
		Where("status IN ?", statuses)
	query = applyCursor(query, cursor)
	err := query.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *itemRepo) ListLatestByCategories(ctx context.Context, statuses []string, categoryIDs []int, cursor *ItemCursor, limit int) ([]model.Item, error) {
	var items []model.Item
	query := r.db.WithContext(ctx).
		Where("status IN ?", statuses).
		Where("category_id IN ?", categoryIDs)
	query = applyCursor(query, cursor)
	err := query.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *itemRepo) ListLatestByUser(ctx context.Context, userID int64, statuses []string, cursor *ItemCursor, limit int) ([]model.Item, error) {
	var items []model.Item
	query := r.db.WithContext(ctx).
		Where("(seller_id = ? OR buyer_id = ?)", userID, userID).
		Where("status IN ?", statuses)
	query = applyCursor(query, cursor)
	err := query.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *itemRepo) WithTx(tx *gorm.DB) ItemRepository {
	return &itemRepo{db: tx}
}
