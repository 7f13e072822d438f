package service

import "errors"

// ==================== 服务层错误 ====================

// 错误消息会原样出现在 {"error": "..."} 响应体里，属于前端契约，不要改动
var (
	// 入参类错误 → 400
	ErrCategoryNotFound = errors.New("category not found")
	ErrNotRootCategory  = errors.New("not a root category")

	// 数据缺失类错误 → 404
	ErrItemNotFound     = errors.New("item not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrShippingNotFound = errors.New("shippings not found")
	// 类目 feed / 商品详情里关联数据缺失统一按 404 处理
	ErrItemDataNotFound = errors.New("item data not found")

	// 配送服务 → 500，不在客户端内部重试
	ErrShipmentServiceUnavailable = errors.New("failed to request to shipment service")
	ErrShipmentServiceFailed      = errors.New("shipment service returns error")
)
