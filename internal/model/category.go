package model

// ==================== Category 类目 ====================

// Category 类目表
// parent_id = 0 表示根类目；现有数据最多两层，但解析逻辑不依赖这一约定
type Category struct {
	ID           int    `gorm:"primaryKey"`
	ParentID     int    `gorm:"index;not null;default:0"`
	CategoryName string `gorm:"size:128;not null"`
}

func (Category) TableName() string { return "categories" }
