// Package marketsvc - service tin đăng (Listing).
package marketsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "vintique/internal/api/base/service"
	models "vintique/internal/api/market/models"
	"vintique/internal/common"
	"vintique/internal/global"
)

// ListingService là cấu trúc chứa các phương thức liên quan đến tin đăng
type ListingService struct {
	*basesvc.BaseServiceMongoImpl[models.Listing]
}

// NewListingService tạo mới ListingService
func NewListingService() (*ListingService, error) {
	listingCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Listings)
	if !exist {
		return nil, fmt.Errorf("failed to get listings collection: %v", common.ErrNotFound)
	}

	return &ListingService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Listing](listingCollection),
	}, nil
}

// FindBySeller lấy danh sách tin đăng của một người bán, mới nhất trước
func (s *ListingService) FindBySeller(ctx context.Context, sellerID primitive.ObjectID) ([]models.Listing, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	return s.BaseServiceMongoImpl.Find(ctx, bson.M{"sellerId": sellerID}, opts)
}
