// Package models - model dòng hàng trong đơn (OrderItem) thuộc domain market.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem định nghĩa một dòng hàng thuộc đơn hàng.
// Price là giá tại thời điểm đặt hàng (listing có thể đổi giá sau đó).
type OrderItem struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OrderID   primitive.ObjectID `json:"orderId" bson:"orderId" index:"single:1"`
	ListingID primitive.ObjectID `json:"listingId" bson:"listingId" index:"single:1"`
	Quantity  int                `json:"quantity" bson:"quantity"`
	Price     float64            `json:"price" bson:"price"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
