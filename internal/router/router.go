package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"furima_dev_v1_202608/internal/controller"
	"furima_dev_v1_202608/internal/middleware"

	_ "furima_dev_v1_202608/docs"
)

// Controllers 控制器集合
type Controllers struct {
	System      *controller.SystemController
	Item        *controller.ItemController
	Transaction *controller.TransactionController
}

// SetupRouter 注册所有路由
// 路径与查询参数名是前端契约，不可改动
func SetupRouter(ctls *Controllers, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(logger))

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 系统
	r.POST("/initialize", ctls.System.PostInitialize)

	// 新着 feed（无需会话）
	r.GET("/new_items.json", ctls.Item.GetNewItems)
	// :root_category_id 形如 "1.json"，控制器内解析
	r.GET("/new_items/:root_category_id", ctls.Item.GetNewCategoryItems)

	// 需要会话的读取
	authed := r.Group("", middleware.SessionAuth())
	{
		authed.GET("/users/transactions.json", ctls.Transaction.GetTransactions)
		// :item_id 形如 "1.json"
		authed.GET("/items/:item_id", ctls.Item.GetItem)
	}

	return r
}
