// Package marketsvc - service mã giảm giá (Voucher).
package marketsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "vintique/internal/api/base/service"
	models "vintique/internal/api/market/models"
	"vintique/internal/common"
	"vintique/internal/global"
)

// VoucherService là cấu trúc chứa các phương thức liên quan đến voucher
type VoucherService struct {
	*basesvc.BaseServiceMongoImpl[models.Voucher]
}

// NewVoucherService tạo mới VoucherService
func NewVoucherService() (*VoucherService, error) {
	voucherCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Vouchers)
	if !exist {
		return nil, fmt.Errorf("failed to get vouchers collection: %v", common.ErrNotFound)
	}

	return &VoucherService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Voucher](voucherCollection),
	}, nil
}

// FindActiveUnexpired lấy tối đa limit voucher đang active và chưa hết hạn,
// voucher sắp hết hạn xếp trước. now là UnixMilli tại thời điểm truy vấn.
func (s *VoucherService) FindActiveUnexpired(ctx context.Context, now int64, limit int64) ([]models.Voucher, error) {
	filter := bson.M{
		"status":     models.VoucherStatusActive,
		"expiryDate": bson.M{"$gt": now},
	}
	opts := options.Find().SetSort(bson.M{"expiryDate": 1}).SetLimit(limit)
	return s.BaseServiceMongoImpl.Find(ctx, filter, opts)
}
