// Package chatbotsvc - Conversation Log: lưu và đọc lịch sử hội thoại.
package chatbotsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "vintique/internal/api/base/service"
	models "vintique/internal/api/chatbot/models"
	"vintique/internal/common"
	"vintique/internal/global"
)

// MessageService là cấu trúc chứa các phương thức liên quan đến log hội thoại
type MessageService struct {
	*basesvc.BaseServiceMongoImpl[models.ChatbotMessage]
}

// NewMessageService tạo mới MessageService
func NewMessageService() (*MessageService, error) {
	messageCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ChatbotMessages)
	if !exist {
		return nil, fmt.Errorf("failed to get chatbot_messages collection: %v", common.ErrNotFound)
	}

	return &MessageService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ChatbotMessage](messageCollection),
	}, nil
}

// Append ghi một message vào log hội thoại.
// intent chỉ có nghĩa với message do bot trả lời (isFromUser=false), truyền rỗng nếu không có.
func (s *MessageService) Append(ctx context.Context, userID primitive.ObjectID, text string, isFromUser bool, intent string) error {
	message := models.ChatbotMessage{
		UserID:     userID,
		Text:       text,
		IsFromUser: isFromUser,
		Intent:     intent,
	}
	_, err := s.BaseServiceMongoImpl.InsertOne(ctx, message)
	return err
}

// History lấy tối đa limit message gần nhất của một user, TRẢ VỀ theo thứ tự
// thời gian tăng dần. Truy vấn chạy mới-nhất-trước để giới hạn chi phí đọc,
// sau đó đảo lại trước khi trả về.
func (s *MessageService) History(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.ChatbotMessage, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit)
	messages, err := s.BaseServiceMongoImpl.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	return reverseMessages(messages), nil
}

// reverseMessages đảo một slice message mới-nhất-trước thành cũ-nhất-trước.
// Hàm thuần, không sửa slice đầu vào.
func reverseMessages(messages []models.ChatbotMessage) []models.ChatbotMessage {
	reversed := make([]models.ChatbotMessage, len(messages))
	for i, m := range messages {
		reversed[len(messages)-1-i] = m
	}
	return reversed
}
