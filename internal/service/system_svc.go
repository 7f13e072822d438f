package service

import (
	"context"

	"furima_dev_v1_202608/internal/api/dto"
	"furima_dev_v1_202608/internal/model"
	"furima_dev_v1_202608/internal/repository"
)

// ==================== SystemService 系统服务 ====================

// SystemService /initialize 等系统级操作
type SystemService struct {
	configRepo repository.ConfigRepository
}

// NewSystemService 创建系统服务
func NewSystemService(configRepo repository.ConfigRepository) *SystemService {
	return &SystemService{configRepo: configRepo}
}

// Initialize 写入外部服务地址
func (s *SystemService) Initialize(ctx context.Context, req *dto.ReqInitialize) error {
	if err := s.configRepo.Upsert(ctx, model.ConfigNamePaymentServiceURL, req.PaymentServiceURL); err != nil {
		return err
	}
	return s.configRepo.Upsert(ctx, model.ConfigNameShipmentServiceURL, req.ShipmentServiceURL)
}
