package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"furima_dev_v1_202608/internal/middleware"
	"furima_dev_v1_202608/internal/service"
)

// TransactionController 交易历史
type TransactionController struct {
	transactionService *service.TransactionService
	userService        *service.UserService
}

// NewTransactionController 创建交易控制器
func NewTransactionController(
	transactionService *service.TransactionService,
	userService *service.UserService,
) *TransactionController {
	return &TransactionController{
		transactionService: transactionService,
		userService:        userService,
	}
}

// GetTransactions 当前用户的交易历史（需要会话）
// @Summary 交易历史
// @Tags Transaction
// @Param item_id query int false "游标：上一页最后一件商品 id"
// @Param created_at query int false "游标：上一页最后一件商品的 created_at（unix 秒）"
// @Success 200 {object} dto.ResTransactions
// @Router /users/transactions.json [get]
func (ctrl *TransactionController) GetTransactions(c *gin.Context) {
	ctx := c.Request.Context()

	// 会话里的用户必须真实存在
	user, err := ctrl.userService.GetUserByID(ctx, middleware.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			outputError(c, 404, "user not found")
			return
		}
		outputError(c, 500, "db error")
		return
	}

	cursor, errMsg := parseItemCursor(c)
	if errMsg != "" {
		outputError(c, 400, errMsg)
		return
	}

	res, err := ctrl.transactionService.GetTransactions(ctx, user.ID, cursor)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrShippingNotFound):
			outputError(c, 404, service.ErrShippingNotFound.Error())
		case isUpstreamError(err):
			outputError(c, 500, "failed to request to shipment service")
		default:
			outputError(c, 500, "db error")
		}
		return
	}

	c.JSON(200, res)
}
