package model

import "time"

// ==================== 交易凭证状态常量 ====================

const (
	TransactionEvidenceStatusWaitShipping = "wait_shipping" // 待发货
	TransactionEvidenceStatusWaitDone     = "wait_done"     // 待确认
	TransactionEvidenceStatusDone         = "done"          // 已完成
)

// ==================== TransactionEvidence 交易凭证 ====================

// TransactionEvidence 交易凭证表
// 商品进入交易后生成，与 Item 一对一。item_* 字段是成交时刻的快照，
// 之后商品被编辑也不会回写
type TransactionEvidence struct {
	ID                 int64  `gorm:"primaryKey;autoIncrement"`
	SellerID           int64  `gorm:"index;not null"`
	BuyerID            int64  `gorm:"index;not null"`
	Status             string `gorm:"size:16;not null"`
	ItemID             int64  `gorm:"uniqueIndex;not null"`
	ItemName           string `gorm:"size:191;not null"`
	ItemPrice          int    `gorm:"not null"`
	ItemDescription    string `gorm:"type:text;not null"`
	ItemCategoryID     int    `gorm:"not null"`
	ItemRootCategoryID int    `gorm:"not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (TransactionEvidence) TableName() string { return "transaction_evidences" }
