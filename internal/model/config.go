package model

// ==================== 运行时配置 ====================

// 配置键
const (
	ConfigNamePaymentServiceURL  = "payment_service_url"
	ConfigNameShipmentServiceURL = "shipment_service_url"
)

// 外部服务地址缺省值
const (
	DefaultPaymentServiceURL  = "http://localhost:5555"
	DefaultShipmentServiceURL = "http://localhost:7000"
)

// Config 运行时配置表（name → val），核心读路径只读不写，
// 写入来自 /initialize
type Config struct {
	Name string `gorm:"primaryKey;size:64"`
	Val  string `gorm:"size:255;not null"`
}

func (Config) TableName() string { return "configs" }
