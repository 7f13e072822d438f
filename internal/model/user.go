package model

import "time"

// ==================== User 用户 ====================

// User 用户表
// HashedPassword 与 Address 绝不允许对外输出，对外一律走 dto.UserSimple 投影
type User struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	AccountName    string `gorm:"size:128;uniqueIndex;not null"`
	HashedPassword []byte `gorm:"not null"`
	Address        string `gorm:"size:191"` // 仅交易对手可见，响应层负责隐藏
	NumSellItems   int    `gorm:"not null;default:0"`
	LastBump       time.Time
	CreatedAt      time.Time
}

func (User) TableName() string { return "users" }
