package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"furima_dev_v1_202608/internal/api/dto"
	"furima_dev_v1_202608/internal/model"
	"furima_dev_v1_202608/internal/repository"
)

// ==================== TransactionService 交易聚合服务 ====================

// TransactionService 交易历史 / 商品详情聚合
// 历史视图在单个事务快照内完成全部读取，保证列表与每件商品的
// 凭证、配送数据相互一致
type TransactionService struct {
	db           *gorm.DB
	itemRepo     repository.ItemRepository
	evidenceRepo repository.TransactionEvidenceRepository
	shippingRepo repository.ShippingRepository
	userSvc      *UserService
	categorySvc  *CategoryService
	shipmentSvc  *ShipmentService
}

// NewTransactionService 创建交易聚合服务
func NewTransactionService(
	db *gorm.DB,
	itemRepo repository.ItemRepository,
	evidenceRepo repository.TransactionEvidenceRepository,
	shippingRepo repository.ShippingRepository,
	userSvc *UserService,
	categorySvc *CategoryService,
	shipmentSvc *ShipmentService,
) *TransactionService {
	return &TransactionService{
		db:           db,
		itemRepo:     itemRepo,
		evidenceRepo: evidenceRepo,
		shippingRepo: shippingRepo,
		userSvc:      userSvc,
		categorySvc:  categorySvc,
		shipmentSvc:  shipmentSvc,
	}
}

// 交易历史覆盖的商品状态
var transactionStatuses = []string{
	model.ItemStatusOnSale,
	model.ItemStatusTrading,
	model.ItemStatusSoldOut,
	model.ItemStatusCancel,
	model.ItemStatusStop,
}

// buildItemDetail 组装基础详情（卖家、类目、可选买家）
func buildItemDetail(
	ctx context.Context,
	item *model.Item,
	userSvc *UserService,
	categorySvc *CategoryService,
) (*dto.ItemDetail, error) {
	seller, err := userSvc.GetUserSimpleByID(ctx, item.SellerID)
	if err != nil {
		return nil, err
	}
	category, err := categorySvc.GetCategoryByID(ctx, item.CategoryID)
	if err != nil {
		return nil, err
	}
	return &dto.ItemDetail{
		ID:          item.ID,
		SellerID:    item.SellerID,
		Seller:      seller,
		Status:      item.Status,
		Name:        item.Name,
		Price:       item.Price,
		Description: item.Description,
		ImageURL:    getImageURL(item.ImageName),
		CategoryID:  item.CategoryID,
		Category:    *category,
		CreatedAt:   item.CreatedAt,
	}, nil
}

// GetTransactions 当前用户的交易历史
// 整个读取跑在一个事务里；配送服务的实时查询也在事务内发起，
// 外部服务变慢会拖住连接，这是有意接受的耦合
func (s *TransactionService) GetTransactions(ctx context.Context, userID int64, cursor *repository.ItemCursor) (*dto.ResTransactions, error) {
	var res *dto.ResTransactions

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		itemRepo := s.itemRepo.WithTx(tx)
		evidenceRepo := s.evidenceRepo.WithTx(tx)
		shippingRepo := s.shippingRepo.WithTx(tx)
		userSvc := s.userSvc.WithTx(tx)
		categorySvc := s.categorySvc.WithTx(tx)
		shipmentSvc := s.shipmentSvc.WithTx(tx)

		items, err := itemRepo.ListLatestByUser(ctx, userID, transactionStatuses, cursor, transactionsPerPage+1)
		if err != nil {
			return err
		}

		itemDetails := make([]dto.ItemDetail, 0, len(items))
		for i := range items {
			item := &items[i]
			detail, err := buildItemDetail(ctx, item, userSvc, categorySvc)
			if err != nil {
				return err
			}

			if item.BuyerID != 0 {
				buyer, err := userSvc.GetUserSimpleByID(ctx, item.BuyerID)
				if err != nil {
					return err
				}
				buyerID := item.BuyerID
				detail.BuyerID = &buyerID
				detail.Buyer = &buyer
			}

			evidence, err := evidenceRepo.GetByItemID(ctx, item.ID)
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				// 尚未进入交易，正常情况，凭证/配送字段留空
			case err != nil:
				return err
			default:
				shipping, err := shippingRepo.GetByTransactionEvidenceID(ctx, evidence.ID)
				if err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						// 有凭证必须有配送记录，缺失属于数据完整性问题
						return ErrShippingNotFound
					}
					return err
				}
				ssr, err := shipmentSvc.Status(ctx, shipping.ReserveID)
				if err != nil {
					return err
				}
				evidenceID := evidence.ID
				evidenceStatus := evidence.Status
				detail.TransactionEvidenceID = &evidenceID
				detail.TransactionEvidenceStatus = &evidenceStatus
				detail.ShippingStatus = &ssr.Status
			}

			itemDetails = append(itemDetails, *detail)
		}

		hasNext := false
		if len(itemDetails) > transactionsPerPage {
			hasNext = true
			itemDetails = itemDetails[:transactionsPerPage]
		}

		res = &dto.ResTransactions{
			HasNext: hasNext,
			Items:   itemDetails,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// GetItem 商品详情
// 买家与凭证/配送字段只对交易双方展示；这里返回的是本地缓存的配送状态，
// 不做实时查询。凭证查询异常在本入口按 404 处理，与历史视图不统一是既有行为
func (s *TransactionService) GetItem(ctx context.Context, itemID int64, currentUserID int64) (*dto.ItemDetail, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	detail, err := buildItemDetail(ctx, item, s.userSvc, s.categorySvc)
	if err != nil {
		return nil, err
	}

	isCounterpart := currentUserID == item.SellerID || currentUserID == item.BuyerID
	if !isCounterpart || item.BuyerID == 0 {
		return detail, nil
	}

	buyer, err := s.userSvc.GetUserSimpleByID(ctx, item.BuyerID)
	if err != nil {
		return nil, err
	}
	buyerID := item.BuyerID
	detail.BuyerID = &buyerID
	detail.Buyer = &buyer

	evidence, err := s.evidenceRepo.GetByItemID(ctx, item.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// buyer_id 已置位但凭证还没落库的窗口期，按无交易返回
			return detail, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrItemDataNotFound, err)
	}

	shipping, err := s.shippingRepo.GetByTransactionEvidenceID(ctx, evidence.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShippingNotFound
		}
		return nil, err
	}

	evidenceID := evidence.ID
	evidenceStatus := evidence.Status
	shippingStatus := shipping.Status
	detail.TransactionEvidenceID = &evidenceID
	detail.TransactionEvidenceStatus = &evidenceStatus
	detail.ShippingStatus = &shippingStatus

	return detail, nil
}
