// Package marketdto - dữ liệu đầu vào cho các API của domain market.
package marketdto

// ListingCreateInput dữ liệu đầu vào khi tạo tin đăng
type ListingCreateInput struct {
	SellerID    string  `json:"sellerId" validate:"required"`
	Title       string  `json:"title" validate:"required,no_xss"`
	Description string  `json:"description,omitempty" validate:"omitempty,no_xss"`
	MainImage   string  `json:"mainImage,omitempty"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Status      string  `json:"status,omitempty"`
}

// ListingUpdateInput dữ liệu đầu vào khi cập nhật tin đăng
type ListingUpdateInput struct {
	Title       string   `json:"title,omitempty" validate:"omitempty,no_xss"`
	Description string   `json:"description,omitempty" validate:"omitempty,no_xss"`
	MainImage   string   `json:"mainImage,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Status      string   `json:"status,omitempty"`
}

// OrderCreateInput dữ liệu đầu vào khi tạo đơn hàng
type OrderCreateInput struct {
	BuyerID string  `json:"buyerId" validate:"required"`
	Status  string  `json:"status,omitempty"`
	Total   float64 `json:"total" validate:"gte=0"`
}

// OrderUpdateInput dữ liệu đầu vào khi cập nhật đơn hàng
type OrderUpdateInput struct {
	Status string   `json:"status,omitempty"`
	Total  *float64 `json:"total,omitempty" validate:"omitempty,gte=0"`
}

// OrderItemCreateInput dữ liệu đầu vào khi tạo dòng hàng
type OrderItemCreateInput struct {
	OrderID   string  `json:"orderId" validate:"required"`
	ListingID string  `json:"listingId" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	Price     float64 `json:"price" validate:"required,gt=0"`
}

// OrderItemUpdateInput dữ liệu đầu vào khi cập nhật dòng hàng
type OrderItemUpdateInput struct {
	Quantity *int     `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	Price    *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
}

// VoucherCreateInput dữ liệu đầu vào khi tạo voucher
type VoucherCreateInput struct {
	Code          string  `json:"code" validate:"required,no_xss"`
	DiscountType  string  `json:"discountType" validate:"required,oneof=percentage fixed"`
	DiscountValue float64 `json:"discountValue" validate:"required,gt=0"`
	ExpiryDate    int64   `json:"expiryDate" validate:"required"`
	Status        string  `json:"status,omitempty"`
}

// VoucherUpdateInput dữ liệu đầu vào khi cập nhật voucher
type VoucherUpdateInput struct {
	DiscountType  string   `json:"discountType,omitempty" validate:"omitempty,oneof=percentage fixed"`
	DiscountValue *float64 `json:"discountValue,omitempty" validate:"omitempty,gt=0"`
	ExpiryDate    *int64   `json:"expiryDate,omitempty"`
	Status        string   `json:"status,omitempty"`
}
