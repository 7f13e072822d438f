package dto

// ReqInitialize /initialize 请求体
type ReqInitialize struct {
	PaymentServiceURL  string `json:"payment_service_url"`
	ShipmentServiceURL string `json:"shipment_service_url"`
}

// ResInitialize /initialize 响应
type ResInitialize struct {
	Campaign int    `json:"campaign"`
	Language string `json:"language"`
}
