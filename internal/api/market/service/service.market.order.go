// Package marketsvc - service đơn hàng (Order).
package marketsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "vintique/internal/api/base/service"
	models "vintique/internal/api/market/models"
	"vintique/internal/common"
	"vintique/internal/global"
)

// PendingSale kết quả aggregate một lượt bán chưa hoàn tất của người bán.
// BuyerEmail được join từ auth_users để hiển thị trong chatbot.
type PendingSale struct {
	OrderID      primitive.ObjectID `bson:"orderId"`
	Status       string             `bson:"status"`
	CreatedAt    int64              `bson:"createdAt"`
	ListingTitle string             `bson:"listingTitle"`
	Quantity     int                `bson:"quantity"`
	Price        float64            `bson:"price"`
	BuyerEmail   string             `bson:"buyerEmail"`
}

// OrderService là cấu trúc chứa các phương thức liên quan đến đơn hàng
type OrderService struct {
	*basesvc.BaseServiceMongoImpl[models.Order]
}

// NewOrderService tạo mới OrderService
func NewOrderService() (*OrderService, error) {
	orderCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get orders collection: %v", common.ErrNotFound)
	}

	return &OrderService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Order](orderCollection),
	}, nil
}

// FindLatestByBuyer lấy đơn hàng được tạo gần nhất của người mua.
// Trả về common.ErrNotFound (đã convert) nếu người mua chưa có đơn nào.
func (s *OrderService) FindLatestByBuyer(ctx context.Context, buyerID primitive.ObjectID) (models.Order, error) {
	opts := options.FindOne().SetSort(bson.M{"createdAt": -1})
	return s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"buyerId": buyerID}, opts)
}

// FindPendingSales lấy các lượt bán chưa hoàn tất của một người bán, mới nhất trước.
// Join: orders → order_items → listings (lọc theo sellerId) → users (email người mua).
func (s *OrderService) FindPendingSales(ctx context.Context, sellerID primitive.ObjectID) ([]PendingSale, error) {
	pipe := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": bson.M{"$ne": models.OrderStatusCompleted}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.OrderItems,
			"localField":   "_id",
			"foreignField": "orderId",
			"as":           "items",
		}}},
		{{Key: "$unwind", Value: "$items"}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Listings,
			"localField":   "items.listingId",
			"foreignField": "_id",
			"as":           "listing",
		}}},
		{{Key: "$unwind", Value: "$listing"}},
		{{Key: "$match", Value: bson.M{"listing.sellerId": sellerID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Users,
			"localField":   "buyerId",
			"foreignField": "_id",
			"as":           "buyer",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$buyer", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$sort", Value: bson.M{"createdAt": -1}}},
		{{Key: "$project", Value: bson.M{
			"orderId":      "$_id",
			"status":       1,
			"createdAt":    1,
			"listingTitle": "$listing.title",
			"quantity":     "$items.quantity",
			"price":        "$items.price",
			"buyerEmail":   "$buyer.email",
		}}},
	}

	cursor, err := s.Collection().Aggregate(ctx, pipe)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var sales []PendingSale
	if err := cursor.All(ctx, &sales); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return sales, nil
}
