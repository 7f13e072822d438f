package task

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"furima_dev_v1_202608/internal/model"
	"furima_dev_v1_202608/internal/repository"
	"furima_dev_v1_202608/internal/service"
)

// ==================== ShippingStatusSyncTask 配送状态回填任务 ====================

// ShippingStatusSyncTask 定期向配送服务查询未送达的配送单，
// 把实时状态回填到本地 shippings.status 缓存
type ShippingStatusSyncTask struct {
	shippingRepo repository.ShippingRepository
	shipmentSvc  *service.ShipmentService
	cron         *cron.Cron

	batchSize        int
	concurrencyLimit int
}

// NewShippingStatusSyncTask 创建配送状态回填任务
func NewShippingStatusSyncTask(
	shippingRepo repository.ShippingRepository,
	shipmentSvc *service.ShipmentService,
) *ShippingStatusSyncTask {
	return &ShippingStatusSyncTask{
		shippingRepo:     shippingRepo,
		shipmentSvc:      shipmentSvc,
		cron:             cron.New(cron.WithSeconds()),
		batchSize:        100,
		concurrencyLimit: 10,
	}
}

// Start 启动定时任务（每10分钟）
func (t *ShippingStatusSyncTask) Start() {
	_, err := t.cron.AddFunc("0 0/10 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		t.refreshJob(ctx)
	})
	if err != nil {
		zap.L().Fatal("无法启动配送状态回填任务", zap.Error(err))
	}

	t.cron.Start()
	zap.L().Info("配送状态回填任务已启动")
}

// Stop 停止定时任务
func (t *ShippingStatusSyncTask) Stop() {
	t.cron.Stop()
	zap.L().Info("配送状态回填任务已停止")
}

// refreshJob 刷新一批未送达配送单
func (t *ShippingStatusSyncTask) refreshJob(ctx context.Context) {
	shippings, err := t.shippingRepo.ListByStatuses(ctx, []string{
		model.ShippingStatusInitial,
		model.ShippingStatusWaitPickup,
		model.ShippingStatusShipping,
	}, t.batchSize)
	if err != nil {
		zap.L().Error("获取未送达配送单失败", zap.Error(err))
		return
	}
	if len(shippings) == 0 {
		return
	}

	zap.L().Info("开始回填配送状态", zap.Int("count", len(shippings)))

	sem := make(chan struct{}, t.concurrencyLimit)
	var wg sync.WaitGroup
	var updated, failed int32

	for i := range shippings {
		select {
		case <-ctx.Done():
			wg.Wait()
			zap.L().Warn("配送状态回填超时中断")
			return
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(shipping *model.Shipping) {
			defer wg.Done()
			defer func() { <-sem }()

			ssr, err := t.shipmentSvc.Status(ctx, shipping.ReserveID)
			if err != nil {
				atomic.AddInt32(&failed, 1)
				zap.L().Warn("查询配送状态失败",
					zap.Int64("transaction_evidence_id", shipping.TransactionEvidenceID),
					zap.Error(err))
				return
			}
			if ssr.Status == shipping.Status {
				return
			}
			if err := t.shippingRepo.UpdateStatus(ctx, shipping.TransactionEvidenceID, ssr.Status); err != nil {
				atomic.AddInt32(&failed, 1)
				zap.L().Error("回填配送状态失败",
					zap.Int64("transaction_evidence_id", shipping.TransactionEvidenceID),
					zap.Error(err))
				return
			}
			atomic.AddInt32(&updated, 1)
		}(&shippings[i])
	}

	wg.Wait()
	zap.L().Info("配送状态回填完成",
		zap.Int32("updated", updated), zap.Int32("failed", failed))
}
