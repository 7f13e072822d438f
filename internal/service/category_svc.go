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

// 类目树按约定最多两层，这里仍按通用链路回溯，并设上限防御脏数据成环
const maxCategoryDepth = 8

// ==================== CategoryService 类目服务 ====================

// CategoryService 类目解析服务
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService 创建类目服务
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// WithTx 返回绑定到事务的副本
func (s *CategoryService) WithTx(tx *gorm.DB) *CategoryService {
	return &CategoryService{categoryRepo: s.categoryRepo.WithTx(tx)}
}

// GetCategoryByID 解析类目，非根类目时补上直接父类目名
func (s *CategoryService) GetCategoryByID(ctx context.Context, id int) (*dto.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	resp := &dto.Category{
		ID:           category.ID,
		ParentID:     category.ParentID,
		CategoryName: category.CategoryName,
	}

	// 沿 parent_id 回溯到根。parent_category_name 只取直接父级；
	// 祖先缺失不视为错误，保持字段为空
	current := category
	for depth := 0; current.ParentID != 0; depth++ {
		if depth >= maxCategoryDepth {
			return nil, fmt.Errorf("category %d: parent chain deeper than %d", id, maxCategoryDepth)
		}
		parent, err := s.categoryRepo.GetByID(ctx, current.ParentID)
		if err != nil {
			break
		}
		if depth == 0 {
			resp.ParentCategoryName = parent.CategoryName
		}
		current = parent
	}

	return resp, nil
}

// ExpandRootCategory 校验根类目并展开为子类目 id 集合，类目 feed 的入口
func (s *CategoryService) ExpandRootCategory(ctx context.Context, rootCategoryID int) (*model.Category, []int, error) {
	root, err := s.categoryRepo.GetByID(ctx, rootCategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrCategoryNotFound
		}
		return nil, nil, err
	}
	if root.ParentID != 0 {
		return nil, nil, ErrNotRootCategory
	}

	childIDs, err := s.categoryRepo.ListIDsByParentID(ctx, root.ID)
	if err != nil {
		return nil, nil, err
	}
	return root, childIDs, nil
}
