package repository

import (
	"context"

	"gorm.io/gorm"

	"furima_dev_v1_202608/internal/model"
)

// UserRepository 用户仓储接口
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	WithTx(tx *gorm.DB) UserRepository
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓储
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) WithTx(tx *gorm.DB) UserRepository {
	return &userRepo{db: tx}
}
