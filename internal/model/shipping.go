package model

import "time"

// ==================== 配送状态常量 ====================

const (
	ShippingStatusInitial    = "initial"     // 已创建
	ShippingStatusWaitPickup = "wait_pickup" // 待揽收
	ShippingStatusShipping   = "shipping"    // 配送中
	ShippingStatusDone       = "done"        // 已送达
)

// ==================== Shipping 配送 ====================

// Shipping 配送表，与 TransactionEvidence 一对一
// status 只是本地缓存，权威状态以配送服务的实时应答为准，
// 由 task.ShippingStatusSyncTask 定期回填
type Shipping struct {
	TransactionEvidenceID int64  `gorm:"primaryKey"`
	Status                string `gorm:"size:16;not null;index"`
	ItemName              string `gorm:"size:191;not null"`
	ItemID                int64  `gorm:"index;not null"`
	ReserveID             string `gorm:"size:64;not null"`
	ReserveTime           int64  `gorm:"not null"`
	ToAddress             string `gorm:"size:191;not null"`
	ToName                string `gorm:"size:128;not null"`
	FromAddress           string `gorm:"size:191;not null"`
	FromName              string `gorm:"size:128;not null"`
	ImgBinary             []byte
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (Shipping) TableName() string { return "shippings" }
