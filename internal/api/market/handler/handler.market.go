// Package markethdl - handler CRUD cho domain market.
package markethdl

import (
	"fmt"

	basehdl "vintique/internal/api/base/handler"
	marketdto "vintique/internal/api/market/dto"
	models "vintique/internal/api/market/models"
	marketsvc "vintique/internal/api/market/service"
)

// ListingHandler xử lý các request liên quan đến tin đăng
type ListingHandler struct {
	*basehdl.BaseHandler[models.Listing, marketdto.ListingCreateInput, marketdto.ListingUpdateInput]
	ListingService *marketsvc.ListingService
}

// NewListingHandler tạo mới ListingHandler
func NewListingHandler() (*ListingHandler, error) {
	listingService, err := marketsvc.NewListingService()
	if err != nil {
		return nil, fmt.Errorf("failed to create listing service: %v", err)
	}

	hdl := &ListingHandler{
		ListingService: listingService,
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[models.Listing, marketdto.ListingCreateInput, marketdto.ListingUpdateInput](listingService.BaseServiceMongoImpl)

	return hdl, nil
}

// OrderHandler xử lý các request liên quan đến đơn hàng
type OrderHandler struct {
	*basehdl.BaseHandler[models.Order, marketdto.OrderCreateInput, marketdto.OrderUpdateInput]
	OrderService *marketsvc.OrderService
}

// NewOrderHandler tạo mới OrderHandler
func NewOrderHandler() (*OrderHandler, error) {
	orderService, err := marketsvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}

	hdl := &OrderHandler{
		OrderService: orderService,
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[models.Order, marketdto.OrderCreateInput, marketdto.OrderUpdateInput](orderService.BaseServiceMongoImpl)

	return hdl, nil
}

// OrderItemHandler xử lý các request liên quan đến dòng hàng
type OrderItemHandler struct {
	*basehdl.BaseHandler[models.OrderItem, marketdto.OrderItemCreateInput, marketdto.OrderItemUpdateInput]
	OrderItemService *marketsvc.OrderItemService
}

// NewOrderItemHandler tạo mới OrderItemHandler
func NewOrderItemHandler() (*OrderItemHandler, error) {
	orderItemService, err := marketsvc.NewOrderItemService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order item service: %v", err)
	}

	hdl := &OrderItemHandler{
		OrderItemService: orderItemService,
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[models.OrderItem, marketdto.OrderItemCreateInput, marketdto.OrderItemUpdateInput](orderItemService.BaseServiceMongoImpl)

	return hdl, nil
}

// VoucherHandler xử lý các request liên quan đến voucher
type VoucherHandler struct {
	*basehdl.BaseHandler[models.Voucher, marketdto.VoucherCreateInput, marketdto.VoucherUpdateInput]
	VoucherService *marketsvc.VoucherService
}

// NewVoucherHandler tạo mới VoucherHandler
func NewVoucherHandler() (*VoucherHandler, error) {
	voucherService, err := marketsvc.NewVoucherService()
	if err != nil {
		return nil, fmt.Errorf("failed to create voucher service: %v", err)
	}

	hdl := &VoucherHandler{
		VoucherService: voucherService,
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[models.Voucher, marketdto.VoucherCreateInput, marketdto.VoucherUpdateInput](voucherService.BaseServiceMongoImpl)

	return hdl, nil
}
