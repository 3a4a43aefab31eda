package chatbotsvc

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// formatMoney render giá trị tiền tệ với đúng 2 chữ số thập phân.
func formatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// formatPercent render phần trăm giảm giá, bỏ số 0 thừa (10.0 → "10%").
func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// formatDate render UnixMilli thành ngày dạng dd/mm/yyyy, không lộ timestamp thô.
func formatDate(unixMilli int64) string {
	return time.UnixMilli(unixMilli).Format("02/01/2006")
}

// normalizeImagePath chuẩn hóa đường dẫn ảnh để luôn bắt đầu bằng '/'.
// Trả về chuỗi rỗng nếu không có ảnh.
func normalizeImagePath(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}
