// Package models - model tin đăng bán hàng (Listing) thuộc domain market.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Listing định nghĩa mô hình tin đăng bán hàng second-hand.
// MainImage là ảnh đại diện của tin đăng, dùng khi render đơn hàng trong chatbot.
type Listing struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SellerID    primitive.ObjectID `json:"sellerId" bson:"sellerId" index:"single:1"`
	Title       string             `json:"title" bson:"title" index:"text"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	MainImage   string             `json:"mainImage" bson:"mainImage"`
	Price       float64            `json:"price" bson:"price"`
	Status      string             `json:"status" bson:"status" index:"single:1"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
