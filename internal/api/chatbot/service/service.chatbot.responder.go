// Package chatbotsvc - Data-Backed Responder: dựng reply từ dữ liệu marketplace.
package chatbotsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	marketmodels "vintique/internal/api/market/models"
	marketsvc "vintique/internal/api/market/service"
	"vintique/internal/common"
	"vintique/internal/logger"
)

// Các reply cố định của Data-Backed Responder.
// Lỗi truy vấn là soft failure: người dùng luôn nhận msgDataUnavailable với HTTP 200,
// chi tiết lỗi chỉ đi vào log cho operator.
const (
	msgNoOrders        = "You haven't placed any orders yet. Once you do, I can track them for you!"
	msgNoPendingSales  = "Great news - you have no pending sales. Everything is all done! 🎉"
	msgNoVouchers      = "There are no active vouchers right now. Check back soon!"
	msgDataUnavailable = "Sorry, I couldn't look that up right now. Please try again in a moment."
)

// Số voucher tối đa hiển thị trong một reply.
const maxVouchersShown = 5

// Các finder hẹp mà responder cần từ tầng market. Service thật thỏa mãn
// các interface này; test thay bằng finder giả để dựng snapshot dữ liệu.
type orderFinder interface {
	FindLatestByBuyer(ctx context.Context, buyerID primitive.ObjectID) (marketmodels.Order, error)
	FindPendingSales(ctx context.Context, sellerID primitive.ObjectID) ([]marketsvc.PendingSale, error)
}

type orderItemFinder interface {
	FindItemsWithListings(ctx context.Context, orderID primitive.ObjectID) ([]marketsvc.OrderItemDetail, error)
}

type voucherFinder interface {
	FindActiveUnexpired(ctx context.Context, now int64, limit int64) ([]marketmodels.Voucher, error)
}

// DataResponder dựng reply cho các intent cần dữ liệu hiện hành
// (order_tracking, sales_summary, vouchers).
type DataResponder struct {
	orders     orderFinder
	orderItems orderItemFinder
	vouchers   voucherFinder
}

// NewDataResponder tạo mới DataResponder với các service market cần thiết
func NewDataResponder() (*DataResponder, error) {
	orderService, err := marketsvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}
	orderItemService, err := marketsvc.NewOrderItemService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order item service: %v", err)
	}
	voucherService, err := marketsvc.NewVoucherService()
	if err != nil {
		return nil, fmt.Errorf("failed to create voucher service: %v", err)
	}

	return &DataResponder{
		orders:     orderService,
		orderItems: orderItemService,
		vouchers:   voucherService,
	}, nil
}

// failureKind phân loại lỗi truy vấn cho log operator.
// Người dùng cuối chỉ thấy một apology chung, nhưng operator cần phân biệt
// timeout với lỗi truy vấn/kết nối để xử lý đúng hướng.
func failureKind(err error) string {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		if customErr.Code == common.ErrCodeDatabaseConnection {
			if errors.Is(err, common.ErrMongoTimeout) {
				return "query_timeout"
			}
			return "db_connection"
		}
	}
	return "db_error"
}

// logSoftFailure log một soft failure với đủ ngữ cảnh cho operator
func logSoftFailure(intent string, userID primitive.ObjectID, err error) {
	logger.GetErrorLogger().WithFields(logrus.Fields{
		"intent":  intent,
		"user_id": userID.Hex(),
		"failure": failureKind(err),
		"error":   err.Error(),
	}).Error("Chatbot data query failed, returning apology reply")
}

// OrderTracking dựng reply về đơn hàng gần nhất của người dùng.
// Trả về reply và ảnh đại diện của item đầu tiên (rỗng nếu không có).
// Mọi lỗi truy vấn đều soft-fail thành msgDataUnavailable.
func (r *DataResponder) OrderTracking(ctx context.Context, userID primitive.ObjectID) (string, string) {
	order, err := r.orders.FindLatestByBuyer(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return msgNoOrders, ""
		}
		logSoftFailure(IntentOrderTracking, userID, err)
		return msgDataUnavailable, ""
	}

	items, err := r.orderItems.FindItemsWithListings(ctx, order.ID)
	if err != nil {
		logSoftFailure(IntentOrderTracking, userID, err)
		return msgDataUnavailable, ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Order #%s is currently: %s\n", order.ID.Hex(), order.Status))
	sb.WriteString("Placed on: " + formatDate(order.CreatedAt))
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("\n%s (x%d) - %s", item.Title, item.Quantity, formatMoney(item.Price)))
	}

	image := ""
	if len(items) > 0 {
		image = normalizeImagePath(items[0].MainImage)
	}
	return sb.String(), image
}

// SalesSummary dựng reply tổng hợp các lượt bán chưa hoàn tất của người bán.
// Không có lượt bán nào → reply chúc mừng cố định.
func (r *DataResponder) SalesSummary(ctx context.Context, sellerID primitive.ObjectID) string {
	sales, err := r.orders.FindPendingSales(ctx, sellerID)
	if err != nil {
		logSoftFailure(IntentSalesSummary, sellerID, err)
		return msgDataUnavailable
	}

	if len(sales) == 0 {
		return msgNoPendingSales
	}

	// Aggregate trả về một dòng cho mỗi item; đếm số đơn phải dedupe theo OrderID
	seen := make(map[primitive.ObjectID]struct{}, len(sales))
	for _, sale := range sales {
		seen[sale.OrderID] = struct{}{}
	}

	// Chi tiết chỉ hiển thị cho lượt bán mới nhất
	latest := sales[0]
	return fmt.Sprintf(
		"You have %d pending sale(s).\nMost recent: Order #%s - %s (x%d) for %s, sold to %s, status: %s.",
		len(seen),
		latest.OrderID.Hex(),
		latest.ListingTitle,
		latest.Quantity,
		formatMoney(latest.Price),
		latest.BuyerEmail,
		latest.Status,
	)
}

// Vouchers dựng reply liệt kê các voucher đang active, sắp hết hạn trước.
func (r *DataResponder) Vouchers(ctx context.Context, userID primitive.ObjectID, now int64) string {
	vouchers, err := r.vouchers.FindActiveUnexpired(ctx, now, maxVouchersShown)
	if err != nil {
		logSoftFailure(IntentVouchers, userID, err)
		return msgDataUnavailable
	}

	if len(vouchers) == 0 {
		return msgNoVouchers
	}

	lines := make([]string, 0, len(vouchers)+1)
	lines = append(lines, "Here are the active vouchers:")
	for _, v := range vouchers {
		var discount string
		if v.DiscountType == marketmodels.VoucherDiscountPercentage {
			discount = formatPercent(v.DiscountValue) + " off"
		} else {
			discount = formatMoney(v.DiscountValue) + " off"
		}
		lines = append(lines, fmt.Sprintf("🎟️ %s - %s (expires %s)", v.Code, discount, formatDate(v.ExpiryDate)))
	}
	return strings.Join(lines, "\n")
}
