// Package models - model mã giảm giá (Voucher) thuộc domain market.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các loại giảm giá của voucher.
const (
	VoucherDiscountPercentage = "percentage"
	VoucherDiscountFixed      = "fixed"
)

// Các trạng thái voucher.
const (
	VoucherStatusActive   = "active"
	VoucherStatusInactive = "inactive"
)

// Voucher định nghĩa mô hình mã giảm giá.
// ExpiryDate là UnixMilli, đánh index tăng dần để lấy voucher sắp hết hạn trước.
type Voucher struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Code          string             `json:"code" bson:"code" index:"unique"`
	DiscountType  string             `json:"discountType" bson:"discountType"`
	DiscountValue float64            `json:"discountValue" bson:"discountValue"`
	ExpiryDate    int64              `json:"expiryDate" bson:"expiryDate" index:"single:1"`
	Status        string             `json:"status" bson:"status" index:"single:1"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`
}
