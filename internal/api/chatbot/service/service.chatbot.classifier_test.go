// Package chatbotsvc - Test bảng luật phân loại intent: thứ tự ưu tiên, first-match.
package chatbotsvc

import (
	"strings"
	"testing"
)

func TestClassify_NoMatchReturnsDefault(t *testing.T) {
	c := NewClassifier()
	result := c.Classify("xyzzy quux")
	if result.Intent != IntentDefault {
		t.Errorf("message vô nghĩa phải ra intent default, nhận được: %s", result.Intent)
	}
	if result.Reply != "" {
		t.Errorf("intent default không được có reply tĩnh, nhận được: %q", result.Reply)
	}
}

func TestClassify_HelpWinsOverSellingHelp(t *testing.T) {
	// "help" đứng trước luật selling trong bảng, nên message chứa cả hai
	// keyword phải ra intent help
	c := NewClassifier()
	result := c.Classify("can you help me sell an item")
	if result.Intent != IntentHelp {
		t.Errorf("message chứa cả 'help' và 'sell' phải ra help (luật đứng trước thắng), nhận được: %s", result.Intent)
	}
}

func TestClassify_OrderWinsOverSales(t *testing.T) {
	c := NewClassifier()
	result := c.Classify("track my orders please")
	if result.Intent != IntentOrderTracking {
		t.Errorf("'track my orders' phải ra order_tracking, nhận được: %s", result.Intent)
	}
	if result.Reply != "" {
		t.Errorf("order_tracking là intent data-backed, reply tĩnh phải rỗng")
	}
}

func TestClassify_MySalesIsSalesSummary(t *testing.T) {
	c := NewClassifier()
	result := c.Classify("my sales")
	if result.Intent != IntentSalesSummary {
		t.Errorf("'my sales' phải ra sales_summary, nhận được: %s", result.Intent)
	}
	if result.Reply != "" {
		t.Errorf("sales_summary là intent data-backed, reply tĩnh phải rỗng")
	}
}

func TestClassify_GreetingHasQuickReplies(t *testing.T) {
	c := NewClassifier()
	result := c.Classify("hello")
	if result.Intent != IntentGreeting {
		t.Fatalf("'hello' phải ra greeting, nhận được: %s", result.Intent)
	}
	if result.Reply == "" {
		t.Error("greeting phải có reply tĩnh")
	}
	if len(result.QuickReplies) == 0 {
		t.Error("greeting phải có quick replies gợi ý")
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	c := NewClassifier()
	result := c.Classify("HELLO THERE")
	if result.Intent != IntentGreeting {
		t.Errorf("phân loại phải lower-case nội bộ, 'HELLO THERE' nhận được: %s", result.Intent)
	}
}

func TestClassify_FirstMatchShortCircuits(t *testing.T) {
	// Message chứa keyword của greeting lẫn order_tracking: greeting đứng trước thắng
	c := NewClassifier()
	result := c.Classify("hi, where is my order?")
	if result.Intent != IntentGreeting {
		t.Errorf("luật khớp đầu tiên phải thắng, nhận được: %s", result.Intent)
	}
}

func TestClassify_GreenTipsUsesInjectedRand(t *testing.T) {
	// Inject nguồn ngẫu nhiên cố định để test deterministic
	for want := 0; want < len(greenTips); want++ {
		idx := want
		c := NewClassifierWithRand(func(n int) int {
			if n != len(greenTips) {
				t.Errorf("pick phải được gọi với n=%d, nhận được n=%d", len(greenTips), n)
			}
			return idx
		})
		result := c.Classify("give me a green tip")
		if result.Intent != IntentGreenTips {
			t.Fatalf("'green tip' phải ra green_tips, nhận được: %s", result.Intent)
		}
		if result.Reply != greenTips[want] {
			t.Errorf("tip chọn theo index %d không khớp: %q", want, result.Reply)
		}
	}
}

func TestClassify_PromoJoinsActivePromotions(t *testing.T) {
	c := NewClassifier()
	result := c.Classify("any deals today?")
	if result.Intent != IntentPromo {
		t.Fatalf("'deals' phải ra promo, nhận được: %s", result.Intent)
	}
	want := strings.Join(activePromotions, "\n")
	if result.Reply != want {
		t.Errorf("promo phải nối tất cả khuyến mãi bằng newline, nhận được: %q", result.Reply)
	}
}

func TestClassify_RefundReturnStatic(t *testing.T) {
	c := NewClassifier()
	result := c.Classify("how do refunds work")
	if result.Intent != IntentRefundReturn {
		t.Fatalf("'refunds' phải ra refund_return, nhận được: %s", result.Intent)
	}
	if result.Reply == "" {
		t.Error("refund_return phải có reply tĩnh")
	}
}

func TestClassify_WordBoundary(t *testing.T) {
	// "this" chứa "hi" nhưng không phải từ riêng, không được khớp greeting
	c := NewClassifier()
	result := c.Classify("this thing")
	if result.Intent == IntentGreeting {
		t.Error("keyword phải khớp theo word boundary, 'this' không được ra greeting")
	}
}

func TestClassify_Vouchers(t *testing.T) {
	c := NewClassifier()
	result := c.Classify("do you have any vouchers?")
	if result.Intent != IntentVouchers {
		t.Errorf("'vouchers' phải ra vouchers, nhận được: %s", result.Intent)
	}
}
