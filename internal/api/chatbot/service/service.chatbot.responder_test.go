// Package chatbotsvc - Test phân loại soft failure cho log operator.
package chatbotsvc

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	marketmodels "vintique/internal/api/market/models"
	marketsvc "vintique/internal/api/market/service"
	"vintique/internal/common"
)

func TestFailureKind_Timeout(t *testing.T) {
	if got := failureKind(common.ErrMongoTimeout); got != "query_timeout" {
		t.Errorf("timeout phải phân loại thành query_timeout, nhận được: %s", got)
	}
}

func TestFailureKind_Connection(t *testing.T) {
	if got := failureKind(common.ErrMongoConnection); got != "db_connection" {
		t.Errorf("lỗi kết nối phải phân loại thành db_connection, nhận được: %s", got)
	}
}

func TestFailureKind_QueryError(t *testing.T) {
	if got := failureKind(common.ErrMongoQuery); got != "db_error" {
		t.Errorf("lỗi truy vấn phải phân loại thành db_error, nhận được: %s", got)
	}
}

func TestFailureKind_UnknownError(t *testing.T) {
	if got := failureKind(errors.New("boom")); got != "db_error" {
		t.Errorf("lỗi không xác định phải phân loại thành db_error, nhận được: %s", got)
	}
}

// Các finder giả cho phép dựng snapshot dữ liệu market mà không cần MongoDB.
type fakeOrderFinder struct {
	latest    marketmodels.Order
	latestErr error
	sales     []marketsvc.PendingSale
	salesErr  error
}

func (f *fakeOrderFinder) FindLatestByBuyer(_ context.Context, _ primitive.ObjectID) (marketmodels.Order, error) {
	return f.latest, f.latestErr
}

func (f *fakeOrderFinder) FindPendingSales(_ context.Context, _ primitive.ObjectID) ([]marketsvc.PendingSale, error) {
	return f.sales, f.salesErr
}

type fakeOrderItemFinder struct {
	items []marketsvc.OrderItemDetail
	err   error
}

func (f *fakeOrderItemFinder) FindItemsWithListings(_ context.Context, _ primitive.ObjectID) ([]marketsvc.OrderItemDetail, error) {
	return f.items, f.err
}

type fakeVoucherFinder struct {
	vouchers []marketmodels.Voucher
	err      error
}

func (f *fakeVoucherFinder) FindActiveUnexpired(_ context.Context, _ int64, _ int64) ([]marketmodels.Voucher, error) {
	return f.vouchers, f.err
}

func mustObjectID(t *testing.T, hex string) primitive.ObjectID {
	t.Helper()
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		t.Fatalf("ObjectID không hợp lệ %s: %v", hex, err)
	}
	return id
}

func TestOrderTracking_NoOrders(t *testing.T) {
	r := &DataResponder{
		orders:     &fakeOrderFinder{latestErr: common.ErrNotFound},
		orderItems: &fakeOrderItemFinder{},
	}

	reply, image := r.OrderTracking(context.Background(), primitive.NewObjectID())
	if reply != msgNoOrders {
		t.Errorf("chưa có đơn hàng phải trả về đúng chuỗi cố định, nhận được: %q", reply)
	}
	if image != "" {
		t.Errorf("chưa có đơn hàng thì không có ảnh, nhận được: %q", image)
	}
}

func TestOrderTracking_QueryErrorSoftFails(t *testing.T) {
	r := &DataResponder{
		orders:     &fakeOrderFinder{latestErr: common.ErrMongoTimeout},
		orderItems: &fakeOrderItemFinder{},
	}

	reply, image := r.OrderTracking(context.Background(), primitive.NewObjectID())
	if reply != msgDataUnavailable {
		t.Errorf("lỗi truy vấn phải soft-fail thành apology, nhận được: %q", reply)
	}
	if image != "" {
		t.Errorf("soft-fail thì không có ảnh, nhận được: %q", image)
	}
}

func TestOrderTracking_ItemQueryErrorSoftFails(t *testing.T) {
	r := &DataResponder{
		orders:     &fakeOrderFinder{latest: marketmodels.Order{ID: primitive.NewObjectID(), Status: "pending"}},
		orderItems: &fakeOrderItemFinder{err: common.ErrMongoQuery},
	}

	reply, _ := r.OrderTracking(context.Background(), primitive.NewObjectID())
	if reply != msgDataUnavailable {
		t.Errorf("lỗi truy vấn dòng hàng phải soft-fail thành apology, nhận được: %q", reply)
	}
}

func TestOrderTracking_FormatsOrderAndImage(t *testing.T) {
	orderID := mustObjectID(t, "64a000000000000000000001")
	placedAt := time.Date(2024, 3, 15, 10, 30, 0, 0, time.Local).UnixMilli()

	r := &DataResponder{
		orders: &fakeOrderFinder{latest: marketmodels.Order{
			ID:        orderID,
			Status:    marketmodels.OrderStatusShipped,
			CreatedAt: placedAt,
		}},
		orderItems: &fakeOrderItemFinder{items: []marketsvc.OrderItemDetail{
			{Title: "Vintage Lamp", MainImage: "images/lamp.jpg", Quantity: 2, Price: 25},
			{Title: "Linen Scarf", MainImage: "/images/scarf.jpg", Quantity: 1, Price: 12.5},
		}},
	}

	reply, image := r.OrderTracking(context.Background(), primitive.NewObjectID())

	want := "Order #" + orderID.Hex() + " is currently: " + marketmodels.OrderStatusShipped + "\n" +
		"Placed on: 15/03/2024\n" +
		"Vintage Lamp (x2) - $25.00\n" +
		"Linen Scarf (x1) - $12.50"
	if reply != want {
		t.Errorf("reply không đúng định dạng.\nmuốn:  %q\nnhận được: %q", want, reply)
	}
	if image != "/images/lamp.jpg" {
		t.Errorf("ảnh phải là ảnh của item đầu tiên với '/' đứng đầu, nhận được: %q", image)
	}
}

func TestSalesSummary_NoPendingSales(t *testing.T) {
	r := &DataResponder{orders: &fakeOrderFinder{sales: []marketsvc.PendingSale{}}}

	reply := r.SalesSummary(context.Background(), primitive.NewObjectID())
	if reply != msgNoPendingSales {
		t.Errorf("không có lượt bán chờ phải trả về chuỗi chúc mừng cố định, nhận được: %q", reply)
	}
}

func TestSalesSummary_QueryErrorSoftFails(t *testing.T) {
	r := &DataResponder{orders: &fakeOrderFinder{salesErr: common.ErrMongoConnection}}

	reply := r.SalesSummary(context.Background(), primitive.NewObjectID())
	if reply != msgDataUnavailable {
		t.Errorf("lỗi truy vấn phải soft-fail thành apology, nhận được: %q", reply)
	}
}

func TestSalesSummary_CountsOrdersNotItemRows(t *testing.T) {
	orderA := mustObjectID(t, "64a000000000000000000010")
	orderB := mustObjectID(t, "64a000000000000000000011")

	// Một đơn có hai item sinh ra hai dòng aggregate - vẫn đếm là một lượt bán
	r := &DataResponder{orders: &fakeOrderFinder{sales: []marketsvc.PendingSale{
		{OrderID: orderA, Status: "pending", ListingTitle: "Vintage Lamp", Quantity: 1, Price: 25, BuyerEmail: "buyer@example.com"},
		{OrderID: orderA, Status: "pending", ListingTitle: "Linen Scarf", Quantity: 2, Price: 12.5, BuyerEmail: "buyer@example.com"},
		{OrderID: orderB, Status: "shipped", ListingTitle: "Clay Pot", Quantity: 1, Price: 8, BuyerEmail: "other@example.com"},
	}}}

	reply := r.SalesSummary(context.Background(), primitive.NewObjectID())

	if !strings.HasPrefix(reply, "You have 2 pending sale(s).") {
		t.Errorf("ba dòng item của hai đơn phải đếm là 2 lượt bán, nhận được: %q", reply)
	}
	if !strings.Contains(reply, "Order #"+orderA.Hex()) {
		t.Errorf("chi tiết phải thuộc lượt bán mới nhất (dòng đầu), nhận được: %q", reply)
	}
	if !strings.Contains(reply, "Vintage Lamp (x1) for $25.00, sold to buyer@example.com, status: pending.") {
		t.Errorf("chi tiết item-level không đúng định dạng, nhận được: %q", reply)
	}
}

func TestVouchers_NoActiveVouchers(t *testing.T) {
	r := &DataResponder{vouchers: &fakeVoucherFinder{vouchers: []marketmodels.Voucher{}}}

	reply := r.Vouchers(context.Background(), primitive.NewObjectID(), time.Now().UnixMilli())
	if reply != msgNoVouchers {
		t.Errorf("không có voucher phải trả về đúng chuỗi cố định, nhận được: %q", reply)
	}
}

func TestVouchers_QueryErrorSoftFails(t *testing.T) {
	r := &DataResponder{vouchers: &fakeVoucherFinder{err: common.ErrMongoQuery}}

	reply := r.Vouchers(context.Background(), primitive.NewObjectID(), time.Now().UnixMilli())
	if reply != msgDataUnavailable {
		t.Errorf("lỗi truy vấn phải soft-fail thành apology, nhận được: %q", reply)
	}
}

func TestVouchers_FormatsPercentageAndFixed(t *testing.T) {
	expiry := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local).UnixMilli()

	r := &DataResponder{vouchers: &fakeVoucherFinder{vouchers: []marketmodels.Voucher{
		{Code: "GREEN10", DiscountType: marketmodels.VoucherDiscountPercentage, DiscountValue: 10, ExpiryDate: expiry},
		{Code: "SAVE5", DiscountType: marketmodels.VoucherDiscountFixed, DiscountValue: 5, ExpiryDate: expiry},
	}}}

	reply := r.Vouchers(context.Background(), primitive.NewObjectID(), time.Now().UnixMilli())

	want := "Here are the active vouchers:\n" +
		"🎟️ GREEN10 - 10% off (expires 15/03/2024)\n" +
		"🎟️ SAVE5 - $5.00 off (expires 15/03/2024)"
	if reply != want {
		t.Errorf("danh sách voucher không đúng định dạng.\nmuốn:  %q\nnhận được: %q", want, reply)
	}
}
