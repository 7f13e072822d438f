package controller

import (
	"github.com/gin-gonic/gin"

	"furima_dev_v1_202608/internal/api/dto"
	"furima_dev_v1_202608/internal/service"
)

// SystemController 系统接口
type SystemController struct {
	systemService *service.SystemService
}

// NewSystemController 创建系统控制器
func NewSystemController(systemService *service.SystemService) *SystemController {
	return &SystemController{systemService: systemService}
}

// PostInitialize 写入外部服务地址
// @Summary 初始化运行时配置
// @Tags System
// @Param body body dto.ReqInitialize true "外部服务地址"
// @Success 200 {object} dto.ResInitialize
// @Router /initialize [post]
func (ctrl *SystemController) PostInitialize(c *gin.Context) {
	var req dto.ReqInitialize
	if err := c.ShouldBindJSON(&req); err != nil {
		outputError(c, 400, "json decode error")
		return
	}

	if err := ctrl.systemService.Initialize(c.Request.Context(), &req); err != nil {
		outputError(c, 500, "db error")
		return
	}

	c.JSON(200, dto.ResInitialize{
		Campaign: 0,
		Language: "Go",
	})
}
