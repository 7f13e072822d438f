package dto

// Category 类目响应
// parent_category_name 仅在非根类目时出现
type Category struct {
	ID                 int    `json:"id"`
	ParentID           int    `json:"parent_id"`
	CategoryName       string `json:"category_name"`
	ParentCategoryName string `json:"parent_category_name,omitempty"`
}
