// Package chatbotsvc - classifier intent theo luật cho chatbot.
package chatbotsvc

import (
	"math/rand"
	"regexp"
	"strings"
)

// Intent các loại intent mà classifier có thể resolve.
// IntentDefault nghĩa là không luật nào khớp, message được chuyển cho fallback responder.
const (
	IntentGreeting      = "greeting"
	IntentHelp          = "help"
	IntentSellingHelp   = "selling_help"
	IntentOrderTracking = "order_tracking"
	IntentSalesSummary  = "sales_summary"
	IntentVouchers      = "vouchers"
	IntentRefundReturn  = "refund_return"
	IntentGreenTips     = "green_tips"
	IntentPromo         = "promo"
	IntentDefault       = "default"
)

// ClassificationResult kết quả phân loại một message.
// Reply rỗng nghĩa là caller phải tự dựng reply (intent cần dữ liệu hoặc fallback).
type ClassificationResult struct {
	Intent       string
	Reply        string
	QuickReplies []string
}

// intentRule một luật phân loại: pattern khớp → build kết quả.
// Các luật được duyệt theo đúng thứ tự khai báo, luật khớp đầu tiên thắng.
type intentRule struct {
	pattern *regexp.Regexp
	build   func(c *Classifier) ClassificationResult
}

// Danh sách tips sống xanh, chọn ngẫu nhiên mỗi lần hỏi.
var greenTips = []string{
	"Wash clothes in cold water - it saves energy and keeps second-hand fabrics lasting longer!",
	"Before buying new, check Vintique first. Every reused item keeps one more out of landfill.",
	"Repair beats replace: a simple stitch or new button can give a garment years more life.",
	"Donate or list items you no longer use instead of throwing them away.",
	"Choose quality over quantity - well-made pre-loved pieces outlast fast fashion.",
}

// Danh sách khuyến mãi đang chạy. Rỗng → trả về msgNoPromotions.
var activePromotions = []string{
	"🌿 Green Week: free shipping on all orders over $30!",
	"✨ New seller bonus: zero listing fees for your first 5 items.",
}

const msgNoPromotions = "There are no promotions running at the moment. Check back soon!"

// Classifier phân loại message theo bảng luật có thứ tự ưu tiên cố định.
// pick là nguồn ngẫu nhiên có thể inject để test deterministic.
type Classifier struct {
	rules []intentRule
	pick  func(n int) int
}

// NewClassifier tạo classifier với nguồn ngẫu nhiên mặc định.
func NewClassifier() *Classifier {
	return NewClassifierWithRand(rand.Intn)
}

// NewClassifierWithRand tạo classifier với nguồn ngẫu nhiên tùy ý (dùng cho test).
func NewClassifierWithRand(pick func(n int) int) *Classifier {
	c := &Classifier{pick: pick}

	// Thứ tự luật là thiết kế chịu tải: luật đứng trước thắng khi message
	// chứa keyword của nhiều intent. "help" đứng trước các luật keyword chung,
	// "order" đứng trước "sales" dù cả hai đều có thể khớp "orders".
	c.rules = []intentRule{
		{
			pattern: regexp.MustCompile(`\b(hi|hello|hey|good morning|good afternoon|good evening)\b`),
			build: func(c *Classifier) ClassificationResult {
				return ClassificationResult{
					Intent: IntentGreeting,
					Reply:  "Hi there! 👋 Welcome to Vintique. How can I help you today?",
					QuickReplies: []string{
						"Track my order",
						"Show me vouchers",
						"Give me a green tip",
					},
				}
			},
		},
		{
			pattern: regexp.MustCompile(`\bhelp\b`),
			build: func(c *Classifier) ClassificationResult {
				return ClassificationResult{
					Intent: IntentHelp,
					Reply: "I can help you with:\n" +
						"• Tracking your latest order\n" +
						"• Checking your pending sales\n" +
						"• Finding active vouchers\n" +
						"• Refund and return policy\n" +
						"• Tips for sustainable shopping",
					QuickReplies: []string{
						"Track my order",
						"My sales",
						"Show me vouchers",
					},
				}
			},
		},
		{
			pattern: regexp.MustCompile(`\b(sell|selling|list an item|listing|how to list)\b`),
			build: func(c *Classifier) ClassificationResult {
				return ClassificationResult{
					Intent: IntentSellingHelp,
					Reply: "Selling on Vintique is easy! Tap \"Sell an item\", add clear photos, " +
						"write an honest description, set your price and publish. " +
						"Buyers love detailed photos of any wear or flaws.",
				}
			},
		},
		{
			pattern: regexp.MustCompile(`\b(order|orders|track|tracking|delivery|shipping|shipped)\b`),
			build: func(c *Classifier) ClassificationResult {
				// Reply rỗng: Data-Backed Responder dựng reply từ đơn hàng thật
				return ClassificationResult{Intent: IntentOrderTracking}
			},
		},
		{
			pattern: regexp.MustCompile(`\b(sales|sale|sold)\b`),
			build: func(c *Classifier) ClassificationResult {
				return ClassificationResult{Intent: IntentSalesSummary}
			},
		},
		{
			pattern: regexp.MustCompile(`\b(voucher|vouchers|coupon|coupons|discount|discounts|promo code)\b`),
			build: func(c *Classifier) ClassificationResult {
				return ClassificationResult{Intent: IntentVouchers}
			},
		},
		{
			pattern: regexp.MustCompile(`\b(refund|refunds|return|returns|exchange)\b`),
			build: func(c *Classifier) ClassificationResult {
				return ClassificationResult{
					Intent: IntentRefundReturn,
					Reply: "You can request a refund or return within 7 days of delivery, " +
						"as long as the item is in the condition it arrived in. " +
						"Open the order in your account and tap \"Request return\" to start.",
				}
			},
		},
		{
			pattern: regexp.MustCompile(`\b(green|eco|sustainable|sustainability|environment|tip|tips)\b`),
			build: func(c *Classifier) ClassificationResult {
				return ClassificationResult{
					Intent: IntentGreenTips,
					Reply:  greenTips[c.pick(len(greenTips))],
				}
			},
		},
		{
			pattern: regexp.MustCompile(`\b(promotion|promotions|promo|deal|deals|offer|offers)\b`),
			build: func(c *Classifier) ClassificationResult {
				reply := msgNoPromotions
				if len(activePromotions) > 0 {
					reply = strings.Join(activePromotions, "\n")
				}
				return ClassificationResult{Intent: IntentPromo, Reply: reply}
			},
		},
	}

	return c
}

// Classify phân loại một message thô thành intent + reply tĩnh (nếu có).
// Hàm thuần: không side effect, lower-case nội bộ, luật khớp đầu tiên thắng.
func (c *Classifier) Classify(text string) ClassificationResult {
	normalized := strings.ToLower(text)
	for _, rule := range c.rules {
		if rule.pattern.MatchString(normalized) {
			return rule.build(c)
		}
	}
	// Không luật nào khớp: fallback responder sẽ xử lý
	return ClassificationResult{Intent: IntentDefault}
}
