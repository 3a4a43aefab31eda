// Package router đăng ký các route thuộc domain market: listings, orders, vouchers.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	markethdl "vintique/internal/api/market/handler"
	apirouter "vintique/internal/api/router"
)

// Register đăng ký tất cả route market lên v1.
// Các collection market chỉ mở đọc qua API; ghi dữ liệu thuộc về flow marketplace bên ngoài.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	listingHandler, err := markethdl.NewListingHandler()
	if err != nil {
		return fmt.Errorf("tạo ListingHandler: %w", err)
	}
	orderHandler, err := markethdl.NewOrderHandler()
	if err != nil {
		return fmt.Errorf("tạo OrderHandler: %w", err)
	}
	orderItemHandler, err := markethdl.NewOrderItemHandler()
	if err != nil {
		return fmt.Errorf("tạo OrderItemHandler: %w", err)
	}
	voucherHandler, err := markethdl.NewVoucherHandler()
	if err != nil {
		return fmt.Errorf("tạo VoucherHandler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/market/listings", listingHandler, apirouter.ReadOnlyConfig)
	r.RegisterCRUDRoutes(v1, "/market/orders", orderHandler, apirouter.ReadOnlyConfig)
	r.RegisterCRUDRoutes(v1, "/market/order-items", orderItemHandler, apirouter.ReadOnlyConfig)
	r.RegisterCRUDRoutes(v1, "/market/vouchers", voucherHandler, apirouter.ReadOnlyConfig)

	return nil
}
