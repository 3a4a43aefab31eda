// Package utility chứa các hàm tiện ích dùng chung cho service layer.
package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ToMap chuyển struct sang map[string]interface{} thông qua BSON round-trip.
// Field nào có tag bson sẽ giữ đúng tên field trong map.
func ToMap(s interface{}) (map[string]interface{}, error) {
	raw, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bson marshal failed: %w", err)
	}

	var result map[string]interface{}
	if err := bson.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("bson unmarshal failed: %w", err)
	}

	return result, nil
}
