package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"furima_dev_v1_202608/internal/middleware"
	"furima_dev_v1_202608/internal/service"
)

// ItemController 商品 feed / 商品详情
type ItemController struct {
	itemService        *service.ItemService
	transactionService *service.TransactionService
}

// NewItemController 创建商品控制器
func NewItemController(
	itemService *service.ItemService,
	transactionService *service.TransactionService,
) *ItemController {
	return &ItemController{
		itemService:        itemService,
		transactionService: transactionService,
	}
}

// ==================== 新着列表 ====================

// GetNewItems 全局新着商品列表
// @Summary 新着商品（全局）
// @Tags Item
// @Param item_id query int false "游标：上一页最后一件商品 id"
// @Param created_at query int false "游标：上一页最后一件商品的 created_at（unix 秒）"
// @Success 200 {object} dto.ResNewItems
// @Router /new_items.json [get]
func (ctrl *ItemController) GetNewItems(c *gin.Context) {
	cursor, errMsg := parseItemCursor(c)
	if errMsg != "" {
		outputError(c, 400, errMsg)
		return
	}

	res, err := ctrl.itemService.GetNewItems(c.Request.Context(), cursor)
	if err != nil {
		// 全局 feed 的关联数据缺失也按存储错误处理，不降级
		outputError(c, 500, "db error")
		return
	}

	c.JSON(200, res)
}

// GetNewCategoryItems 按根类目的新着商品列表
// @Summary 新着商品（按根类目）
// @Tags Item
// @Param root_category_id path string true "根类目 id（形如 1.json）"
// @Param item_id query int false "游标：上一页最后一件商品 id"
// @Param created_at query int false "游标：上一页最后一件商品的 created_at（unix 秒）"
// @Success 200 {object} dto.ResNewItems
// @Router /new_items/{root_category_id} [get]
func (ctrl *ItemController) GetNewCategoryItems(c *gin.Context) {
	rootCategoryID, ok := parseJSONSuffixParam(c.Param("root_category_id"))
	if !ok {
		outputError(c, 400, "incorrect category id")
		return
	}

	cursor, errMsg := parseItemCursor(c)
	if errMsg != "" {
		outputError(c, 400, errMsg)
		return
	}

	res, err := ctrl.itemService.GetNewCategoryItems(c.Request.Context(), int(rootCategoryID), cursor)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound),
			errors.Is(err, service.ErrNotRootCategory):
			outputError(c, 400, err.Error())
		case errors.Is(err, service.ErrItemDataNotFound):
			outputError(c, 404, service.ErrItemDataNotFound.Error())
		default:
			outputError(c, 500, "db error")
		}
		return
	}

	c.JSON(200, res)
}

// ==================== 商品详情 ====================

// GetItem 商品详情（需要会话）
// @Summary 商品详情
// @Tags Item
// @Param item_id path string true "商品 id（形如 1.json）"
// @Success 200 {object} dto.ItemDetail
// @Router /items/{item_id} [get]
func (ctrl *ItemController) GetItem(c *gin.Context) {
	itemID, ok := parseJSONSuffixParam(c.Param("item_id"))
	if !ok {
		outputError(c, 400, "incorrect item id")
		return
	}

	userID := middleware.CurrentUserID(c)

	detail, err := ctrl.transactionService.GetItem(c.Request.Context(), itemID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound),
			errors.Is(err, service.ErrUserNotFound),
			errors.Is(err, service.ErrShippingNotFound),
			errors.Is(err, service.ErrItemDataNotFound),
			errors.Is(err, service.ErrCategoryNotFound):
			outputError(c, 404, err.Error())
		default:
			outputError(c, 500, "db error")
		}
		return
	}

	c.JSON(200, detail)
}
