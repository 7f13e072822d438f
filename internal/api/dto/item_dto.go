package dto

import "time"

// ==================== 列表项 ====================

// ItemSimple 新着列表里的商品
type ItemSimple struct {
	ID         int64      `json:"id"`
	SellerID   int64      `json:"seller_id"`
	Seller     UserSimple `json:"seller"`
	Status     string     `json:"status"`
	Name       string     `json:"name"`
	Price      int        `json:"price"`
	ImageURL   string     `json:"image_url"`
	CategoryID int        `json:"category_id"`
	Category   Category   `json:"category"`
	CreatedAt  int64      `json:"created_at"`
}

// ItemDetail 商品详情 / 交易历史里的商品
// buyer 与 transaction/shipping 字段只对交易双方出现
type ItemDetail struct {
	ID                        int64       `json:"id"`
	SellerID                  int64       `json:"seller_id"`
	Seller                    UserSimple  `json:"seller"`
	BuyerID                   *int64      `json:"buyer_id,omitempty"`
	Buyer                     *UserSimple `json:"buyer,omitempty"`
	Status                    string      `json:"status"`
	Name                      string      `json:"name"`
	Price                     int         `json:"price"`
	Description               string      `json:"description"`
	ImageURL                  string      `json:"image_url"`
	CategoryID                int         `json:"category_id"`
	Category                  Category    `json:"category"`
	TransactionEvidenceID     *int64      `json:"transaction_evidence_id,omitempty"`
	TransactionEvidenceStatus *string     `json:"transaction_evidence_status,omitempty"`
	ShippingStatus            *string     `json:"shipping_status,omitempty"`
	CreatedAt                 time.Time   `json:"created_at"`
}

// ==================== 响应 ====================

// ResNewItems 新着列表响应，root_category_* 仅类目 feed 返回
type ResNewItems struct {
	RootCategoryID   int          `json:"root_category_id,omitempty"`
	RootCategoryName string       `json:"root_category_name,omitempty"`
	HasNext          bool         `json:"has_next"`
	Items            []ItemSimple `json:"items"`
}

// ResTransactions 交易历史响应
type ResTransactions struct {
	HasNext bool         `json:"has_next"`
	Items   []ItemDetail `json:"items"`
}
