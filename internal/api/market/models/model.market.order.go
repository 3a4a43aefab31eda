// Package models - model đơn hàng (Order) thuộc domain market.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái đơn hàng.
const (
	OrderStatusPending   = "pending"
	OrderStatusShipped   = "shipped"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order định nghĩa mô hình đơn hàng của người mua.
// CreatedAt đánh index giảm dần vì các truy vấn chatbot luôn lấy đơn mới nhất trước.
type Order struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	BuyerID   primitive.ObjectID `json:"buyerId" bson:"buyerId" index:"compound:buyer_created"`
	Status    string             `json:"status" bson:"status" index:"single:1"`
	Total     float64            `json:"total" bson:"total"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt" index:"compound:buyer_created"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
