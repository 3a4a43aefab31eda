// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	models "vintique/internal/api/auth/models"
	basesvc "vintique/internal/api/base/service"
	"vintique/internal/common"
	"vintique/internal/global"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// FindByToken tìm người dùng theo token xác thực mới nhất
func (s *UserService) FindByToken(ctx context.Context, token string) (models.User, error) {
	return s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"token": token}, nil)
}
