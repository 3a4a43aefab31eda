// Package models - model message hội thoại (ChatbotMessage) thuộc domain chatbot.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatbotMessage một lượt message trong hội thoại với chatbot.
// IsFromUser đánh dấu nguồn gốc message; message do bot trả lời mang intent
// đã resolve để phục vụ audit/analytics.
type ChatbotMessage struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID     primitive.ObjectID `json:"userId" bson:"userId" index:"compound:user_created"`
	Text       string             `json:"text" bson:"text"`
	IsFromUser bool               `json:"isFromUser" bson:"isFromUser"`
	Intent     string             `json:"intent,omitempty" bson:"intent,omitempty"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt" index:"compound:user_created"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}
