// Package basehdl - Test normalize/validate filter và parse sort map.
package basehdl

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vintique/internal/common"
)

type testModel struct {
	Name string `json:"name" bson:"name"`
}

func newTestHandler() *BaseHandler[testModel, testModel, testModel] {
	return NewBaseHandler[testModel, testModel, testModel](nil)
}

func TestNormalizeFilter_ObjectIDFields(t *testing.T) {
	h := newTestHandler()
	hex := "6761a0ffcbf62dba0fb094cb"

	filter := h.normalizeFilter(map[string]interface{}{
		"buyerId": hex,
		"name":    hex, // không phải trường *Id, giữ nguyên string
	})

	if _, ok := filter["buyerId"].(primitive.ObjectID); !ok {
		t.Errorf("trường buyerId phải được convert sang ObjectID, nhận được: %T", filter["buyerId"])
	}
	if _, ok := filter["name"].(string); !ok {
		t.Errorf("trường name phải giữ nguyên string, nhận được: %T", filter["name"])
	}
}

func TestNormalizeFilter_NestedOperator(t *testing.T) {
	h := newTestHandler()
	hex := "6761a0ffcbf62dba0fb094cb"

	filter := h.normalizeFilter(map[string]interface{}{
		"orderId": map[string]interface{}{
			"$in": []interface{}{hex},
		},
	})

	inner, ok := filter["orderId"].(map[string]interface{})
	if !ok {
		t.Fatalf("operator map phải được giữ cấu trúc, nhận được: %T", filter["orderId"])
	}
	arr, ok := inner["$in"].([]interface{})
	if !ok || len(arr) != 1 {
		t.Fatalf("mảng $in phải được giữ, nhận được: %v", inner["$in"])
	}
	if _, ok := arr[0].(primitive.ObjectID); !ok {
		t.Errorf("giá trị trong $in của trường *Id phải được convert sang ObjectID, nhận được: %T", arr[0])
	}
}

func TestValidateFilter_DeniedField(t *testing.T) {
	h := newTestHandler()
	err := h.validateFilter(map[string]interface{}{"password": "x"})
	if err == nil {
		t.Fatal("filter trên trường password phải bị từ chối")
	}
	var customErr *common.Error
	if !errors.As(err, &customErr) {
		t.Fatalf("lỗi phải là *common.Error, nhận được: %T", err)
	}
	if customErr.StatusCode != common.StatusBadRequest {
		t.Errorf("status code phải là 400, nhận được: %d", customErr.StatusCode)
	}
}

func TestValidateFilter_DisallowedOperator(t *testing.T) {
	h := newTestHandler()
	err := h.validateFilter(map[string]interface{}{
		"name": map[string]interface{}{"$where": "1"},
	})
	if err == nil {
		t.Error("toán tử $where phải bị từ chối")
	}
}

func TestValidateFilter_AllowedOperator(t *testing.T) {
	h := newTestHandler()
	err := h.validateFilter(map[string]interface{}{
		"price": map[string]interface{}{"$gte": 10},
	})
	if err != nil {
		t.Errorf("toán tử $gte phải được phép, nhận được lỗi: %v", err)
	}
}

func TestParseSortMap(t *testing.T) {
	// JSON number decode thành float64
	sortBson := parseSortMap(map[string]interface{}{
		"createdAt": float64(-1),
		"invalid":   float64(5), // ngoài {1, -1}, bị bỏ qua
		"text":      "asc",      // không phải số, bị bỏ qua
	})

	if len(sortBson) != 1 {
		t.Fatalf("chỉ giá trị 1/-1 được giữ, nhận được %d phần tử", len(sortBson))
	}
	if sortBson[0].Key != "createdAt" || sortBson[0].Value != -1 {
		t.Errorf("sort entry không khớp: %+v", sortBson[0])
	}
}
