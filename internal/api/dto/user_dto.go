package dto

// UserSimple 用户公开投影，绝不包含密码散列与住址
type UserSimple struct {
	ID           int64  `json:"id"`
	AccountName  string `json:"account_name"`
	NumSellItems int    `json:"num_sell_items"`
}
