package service

import (
	"context"
	"fmt"

	"furima_dev_v1_202608/internal/api/dto"
	"furima_dev_v1_202608/internal/model"
	"furima_dev_v1_202608/internal/repository"
)

// 每页条数，前端按此分页渲染
const (
	itemsPerPage        = 48
	transactionsPerPage = 10
)

// getImageURL 商品图片地址
func getImageURL(imageName string) string {
	return "/upload/" + imageName
}

// ==================== ItemService 商品 feed 服务 ====================

// ItemService 新着商品 feed（全局 / 按根类目）
type ItemService struct {
	itemRepo    repository.ItemRepository
	userSvc     *UserService
	categorySvc *CategoryService
}

// NewItemService 创建商品 feed 服务
func NewItemService(
	itemRepo repository.ItemRepository,
	userSvc *UserService,
	categorySvc *CategoryService,
) *ItemService {
	return &ItemService{
		itemRepo:    itemRepo,
		userSvc:     userSvc,
		categorySvc: categorySvc,
	}
}

// toItemSimple 补全卖家投影与类目
func (s *ItemService) toItemSimple(ctx context.Context, item *model.Item) (dto.ItemSimple, error) {
	seller, err := s.userSvc.GetUserSimpleByID(ctx, item.SellerID)
	if err != nil {
		return dto.ItemSimple{}, err
	}
	category, err := s.categorySvc.GetCategoryByID(ctx, item.CategoryID)
	if err != nil {
		return dto.ItemSimple{}, err
	}
	return dto.ItemSimple{
		ID:         item.ID,
		SellerID:   item.SellerID,
		Seller:     seller,
		Status:     item.Status,
		Name:       item.Name,
		Price:      item.Price,
		ImageURL:   getImageURL(item.ImageName),
		CategoryID: item.CategoryID,
		Category:   *category,
		CreatedAt:  item.CreatedAt.Unix(),
	}, nil
}

// GetNewItems 全局新着列表
// 多取一条判断 has_next，省掉 count 查询
func (s *ItemService) GetNewItems(ctx context.Context, cursor *repository.ItemCursor) (*dto.ResNewItems, error) {
	items, err := s.itemRepo.ListLatest(
		ctx,
		[]string{model.ItemStatusOnSale, model.ItemStatusSoldOut},
		cursor,
		itemsPerPage+1,
	)
	if err != nil {
		return nil, err
	}

	itemSimples := make([]dto.ItemSimple, 0, len(items))
	for i := range items {
		simple, err := s.toItemSimple(ctx, &items[i])
		if err != nil {
			return nil, err
		}
		itemSimples = append(itemSimples, simple)
	}

	hasNext := false
	if len(itemSimples) > itemsPerPage {
		hasNext = true
		itemSimples = itemSimples[:itemsPerPage]
	}

	return &dto.ResNewItems{
		HasNext: hasNext,
		Items:   itemSimples,
	}, nil
}

// GetNewCategoryItems 按根类目的新着列表
// 先校验并展开根类目，再套用与全局一致的游标过滤
func (s *ItemService) GetNewCategoryItems(ctx context.Context, rootCategoryID int, cursor *repository.ItemCursor) (*dto.ResNewItems, error) {
	root, categoryIDs, err := s.categorySvc.ExpandRootCategory(ctx, rootCategoryID)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.ListLatestByCategories(
		ctx,
		[]string{model.ItemStatusOnSale, model.ItemStatusSoldOut},
		categoryIDs,
		cursor,
		itemsPerPage+1,
	)
	if err != nil {
		return nil, err
	}

	itemSimples := make([]dto.ItemSimple, 0, len(items))
	for i := range items {
		simple, err := s.toItemSimple(ctx, &items[i])
		if err != nil {
			// 类目范围内查出的行卖家/类目缺失属于数据完整性问题，按 404 处理
			return nil, fmt.Errorf("%w: %v", ErrItemDataNotFound, err)
		}
		itemSimples = append(itemSimples, simple)
	}

	hasNext := false
	if len(itemSimples) > itemsPerPage {
		hasNext = true
		itemSimples = itemSimples[:itemsPerPage]
	}

	return &dto.ResNewItems{
		RootCategoryID:   root.ID,
		RootCategoryName: root.CategoryName,
		HasNext:          hasNext,
		Items:            itemSimples,
	}, nil
}
