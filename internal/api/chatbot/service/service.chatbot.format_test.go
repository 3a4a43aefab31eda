// Package chatbotsvc - Test các helper format tiền tệ, phần trăm, ngày, đường dẫn ảnh.
package chatbotsvc

import (
	"testing"
	"time"
)

func TestFormatMoney_TwoDecimals(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{12.5, "$12.50"},
		{12, "$12.00"},
		{0.999, "$1.00"},
		{0, "$0.00"},
		{1234.567, "$1234.57"},
	}
	for _, tc := range cases {
		if got := formatMoney(tc.in); got != tc.want {
			t.Errorf("formatMoney(%v) = %q, muốn %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatPercent_NoTrailingZeros(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{10, "10%"},
		{12.5, "12.5%"},
		{0.25, "0.25%"},
	}
	for _, tc := range cases {
		if got := formatPercent(tc.in); got != tc.want {
			t.Errorf("formatPercent(%v) = %q, muốn %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDate_HumanReadable(t *testing.T) {
	ms := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local).UnixMilli()
	if got := formatDate(ms); got != "15/03/2024" {
		t.Errorf("formatDate = %q, muốn 15/03/2024", got)
	}
}

func TestNormalizeImagePath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/uploads/a.jpg", "/uploads/a.jpg"},
		{"uploads/a.jpg", "/uploads/a.jpg"},
	}
	for _, tc := range cases {
		if got := normalizeImagePath(tc.in); got != tc.want {
			t.Errorf("normalizeImagePath(%q) = %q, muốn %q", tc.in, got, tc.want)
		}
	}

	// Idempotent: chuẩn hóa hai lần cho kết quả như một lần
	if got := normalizeImagePath(normalizeImagePath("a.jpg")); got != "/a.jpg" {
		t.Errorf("normalizeImagePath phải idempotent, nhận được: %q", got)
	}
}
