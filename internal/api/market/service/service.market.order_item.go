// Package marketsvc - service dòng hàng trong đơn (OrderItem).
package marketsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basesvc "vintique/internal/api/base/service"
	models "vintique/internal/api/market/models"
	"vintique/internal/common"
	"vintique/internal/global"
)

// OrderItemDetail kết quả aggregate một dòng hàng kèm thông tin listing.
// Title và MainImage rỗng nếu listing đã bị xóa (lookup không khớp).
type OrderItemDetail struct {
	ListingID primitive.ObjectID `bson:"listingId"`
	Title     string             `bson:"title"`
	MainImage string             `bson:"mainImage"`
	Quantity  int                `bson:"quantity"`
	Price     float64            `bson:"price"`
}

// OrderItemService là cấu trúc chứa các phương thức liên quan đến dòng hàng
type OrderItemService struct {
	*basesvc.BaseServiceMongoImpl[models.OrderItem]
}

// NewOrderItemService tạo mới OrderItemService
func NewOrderItemService() (*OrderItemService, error) {
	orderItemCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.OrderItems)
	if !exist {
		return nil, fmt.Errorf("failed to get order_items collection: %v", common.ErrNotFound)
	}

	return &OrderItemService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.OrderItem](orderItemCollection),
	}, nil
}

// FindItemsWithListings lấy các dòng hàng của một đơn kèm title và ảnh đại diện
// của listing (join market_listings).
func (s *OrderItemService) FindItemsWithListings(ctx context.Context, orderID primitive.ObjectID) ([]OrderItemDetail, error) {
	pipe := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"orderId": orderID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Listings,
			"localField":   "listingId",
			"foreignField": "_id",
			"as":           "listing",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$listing", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$project", Value: bson.M{
			"listingId": 1,
			"title":     "$listing.title",
			"mainImage": "$listing.mainImage",
			"quantity":  1,
			"price":     1,
		}}},
	}

	cursor, err := s.Collection().Aggregate(ctx, pipe)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var items []OrderItemDetail
	if err := cursor.All(ctx, &items); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return items, nil
}
