package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"furima_dev_v1_202608/internal/api/dto"
	"furima_dev_v1_202608/internal/model"
	"furima_dev_v1_202608/internal/repository"
)

// 配送服务要求固定 UA 与固定令牌
const (
	shipmentAPIUserAgent = "furima-webapp"
	shipmentAPIToken     = "Bearer 84hkw1m92x537qwpo6zn-41j8c2vbnd3kqwsxtf7y"
)

// ==================== ShipmentService 配送服务客户端 ====================

// ShipmentService 外部配送服务客户端
// 状态查询是实时轮询，失败直接上抛，不在这里做重试
type ShipmentService struct {
	configRepo repository.ConfigRepository
	client     *resty.Client
}

// NewShipmentService 创建配送服务客户端
func NewShipmentService(configRepo repository.ConfigRepository) *ShipmentService {
	client := resty.New().
		SetTimeout(10 * time.Second).
		// 配送服务的 /status 是带 JSON body 的 GET
		SetAllowGetMethodPayload(true)
	return &ShipmentService{
		configRepo: configRepo,
		client:     client,
	}
}

// WithTx 返回配置读取绑定到事务的副本，聚合视图在快照事务内调用时使用
func (s *ShipmentService) WithTx(tx *gorm.DB) *ShipmentService {
	return &ShipmentService{
		configRepo: s.configRepo.WithTx(tx),
		client:     s.client,
	}
}

// getShipmentServiceURL 解析配送服务地址
// TODO: 线上配置一直写在 payment_service_url 这个 key 下，换成
// shipment_service_url 之前要先确认生产数据已迁移
func (s *ShipmentService) getShipmentServiceURL(ctx context.Context) string {
	val, err := s.configRepo.GetValByName(ctx, model.ConfigNamePaymentServiceURL)
	if err != nil {
		return model.DefaultShipmentServiceURL
	}
	return val
}

// Status 查询实时配送状态
func (s *ShipmentService) Status(ctx context.Context, reserveID string) (*dto.ShipmentStatusRes, error) {
	url := s.getShipmentServiceURL(ctx) + "/status"

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("User-Agent", shipmentAPIUserAgent).
		SetHeader("Authorization", shipmentAPIToken).
		SetHeader("Content-Type", "application/json").
		SetBody(&dto.ShipmentStatusReq{ReserveID: reserveID}).
		Get(url)
	if err != nil {
		zap.L().Warn("配送服务请求失败", zap.String("url", url), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrShipmentServiceUnavailable, err)
	}
	if resp.StatusCode() != http.StatusOK {
		zap.L().Warn("配送服务返回异常状态码",
			zap.String("url", url), zap.Int("status_code", resp.StatusCode()))
		return nil, fmt.Errorf("%w: status=%d", ErrShipmentServiceFailed, resp.StatusCode())
	}

	var res dto.ShipmentStatusRes
	if err := json.Unmarshal(resp.Body(), &res); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShipmentServiceFailed, err)
	}
	return &res, nil
}
