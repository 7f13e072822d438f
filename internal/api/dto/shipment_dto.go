package dto

// ShipmentStatusReq 配送服务状态查询请求体
type ShipmentStatusReq struct {
	ReserveID string `json:"reserve_id"`
}

// ShipmentStatusRes 配送服务状态查询应答
type ShipmentStatusRes struct {
	Status      string `json:"status"`
	ReserveTime int64  `json:"reserve_time"`
}
