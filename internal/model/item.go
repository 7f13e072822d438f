package model

import "time"

// ==================== 商品状态常量 ====================

// ItemStatus 商品状态
const (
	ItemStatusOnSale  = "on_sale"  // 出售中
	ItemStatusTrading = "trading"  // 交易中
	ItemStatusSoldOut = "sold_out" // 已售出
	ItemStatusStop    = "stop"     // 已下架
	ItemStatusCancel  = "cancel"   // 已取消
)

// 商品价格上下限
const (
	ItemMinPrice = 100
	ItemMaxPrice = 1_000_000
)

// ==================== Item 商品 ====================

// Item 商品表
// buyer_id = 0 表示尚无买家；status 进入 trading/sold_out 之后 buyer_id 才有意义
type Item struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	SellerID    int64  `gorm:"index;not null"`
	BuyerID     int64  `gorm:"index;not null;default:0"`
	Status      string `gorm:"size:16;not null;index:idx_items_status_created,priority:1"`
	Name        string `gorm:"size:191;not null"`
	Price       int    `gorm:"not null"`
	Description string `gorm:"type:text;not null"`
	ImageName   string `gorm:"size:191;not null"`
	CategoryID  int    `gorm:"index;not null"`

	// keyset 分页依赖 (status, created_at, id) 索引
	CreatedAt time.Time `gorm:"index:idx_items_status_created,priority:2"`
	UpdatedAt time.Time
}

func (Item) TableName() string { return "items" }
