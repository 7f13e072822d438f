package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"furima_dev_v1_202608/internal/api/dto"
	"furima_dev_v1_202608/internal/model"
	"furima_dev_v1_202608/internal/repository"
)

// ==================== UserService 用户服务 ====================

// UserService 用户查询与公开投影
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService 创建用户服务
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// WithTx 返回绑定到事务的副本
func (s *UserService) WithTx(tx *gorm.DB) *UserService {
	return &UserService{userRepo: s.userRepo.WithTx(tx)}
}

// ToUserSimple 公开投影，纯映射无副作用
func (s *UserService) ToUserSimple(user *model.User) dto.UserSimple {
	return dto.UserSimple{
		ID:           user.ID,
		AccountName:  user.AccountName,
		NumSellItems: user.NumSellItems,
	}
}

// GetUserSimpleByID 按 id 查询并投影
func (s *UserService) GetUserSimpleByID(ctx context.Context, id int64) (dto.UserSimple, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserSimple{}, ErrUserNotFound
		}
		return dto.UserSimple{}, err
	}
	return s.ToUserSimple(user), nil
}

// GetUserByID 按 id 查询完整记录（鉴权后的当前用户）
func (s *UserService) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
