package controller

import (
	"errors"
	"regexp"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"furima_dev_v1_202608/internal/repository"
	"furima_dev_v1_202608/internal/service"
)

// 路径里的 "123.json" 形式参数
var jsonPathParamRe = regexp.MustCompile(`^(.+)\.json$`)

// outputError 错误响应体固定为 {"error": msg}，前端契约
func outputError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// parseJSONSuffixParam 解析 ".json" 结尾的路径参数为整数
func parseJSONSuffixParam(raw string) (int64, bool) {
	m := jsonPathParamRe.FindStringSubmatch(raw)
	if m == nil {
		return 0, false
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parseItemCursor 解析 item_id / created_at 游标参数
// 两个参数都带才构成游标；首页两者皆空。解析失败的 errMsg 同样是前端契约
func parseItemCursor(c *gin.Context) (*repository.ItemCursor, string) {
	itemIDStr := c.Query("item_id")
	createdAtStr := c.Query("created_at")
	if itemIDStr == "" && createdAtStr == "" {
		return nil, ""
	}

	itemID, err := strconv.ParseInt(itemIDStr, 10, 64)
	if err != nil || itemID <= 0 {
		return nil, "item_id param error"
	}
	createdAt, err := strconv.ParseInt(createdAtStr, 10, 64)
	if err != nil || createdAt <= 0 {
		return nil, "created_at param error"
	}

	return &repository.ItemCursor{
		ItemID:    itemID,
		CreatedAt: time.Unix(createdAt, 0),
	}, ""
}

// isUpstreamError 配送服务相关错误
func isUpstreamError(err error) bool {
	return errors.Is(err, service.ErrShipmentServiceUnavailable) ||
		errors.Is(err, service.ErrShipmentServiceFailed)
}
