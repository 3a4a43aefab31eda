// Package chatbothdl - handler HTTP cho domain chatbot.
package chatbothdl

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "vintique/internal/api/base/handler"
	chatbotdto "vintique/internal/api/chatbot/dto"
	chatbotsvc "vintique/internal/api/chatbot/service"
	"vintique/internal/common"
	"vintique/internal/global"
	"vintique/internal/logger"
)

// ChatbotHandler xử lý các request gửi message và đọc lịch sử hội thoại
type ChatbotHandler struct {
	classifier *chatbotsvc.Classifier
	responder  *chatbotsvc.DataResponder
	fallback   *chatbotsvc.FallbackResponder
	messages   *chatbotsvc.MessageService
}

// NewChatbotHandler tạo mới ChatbotHandler
func NewChatbotHandler() (*ChatbotHandler, error) {
	responder, err := chatbotsvc.NewDataResponder()
	if err != nil {
		return nil, fmt.Errorf("failed to create data responder: %v", err)
	}
	messageService, err := chatbotsvc.NewMessageService()
	if err != nil {
		return nil, fmt.Errorf("failed to create message service: %v", err)
	}

	return &ChatbotHandler{
		classifier: chatbotsvc.NewClassifier(),
		responder:  responder,
		fallback:   chatbotsvc.NewFallbackResponder(global.ServerConfig),
		messages:   messageService,
	}, nil
}

// currentUserID lấy user id đã xác thực từ context (do AuthMiddleware set)
func currentUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return primitive.NilObjectID, common.ErrTokenMissing
	}
	userID, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}
	return userID, nil
}

// appendLog ghi một message vào log hội thoại (fire-and-forget).
// Lỗi ghi log không làm fail request - reply đã được tính xong.
func (h *ChatbotHandler) appendLog(ctx context.Context, userID primitive.ObjectID, text string, isFromUser bool, intent string) {
	if err := h.messages.Append(ctx, userID, text, isFromUser, intent); err != nil {
		logger.GetAppLogger().WithFields(logrus.Fields{
			"user_id": userID.Hex(),
			"intent":  intent,
			"error":   err.Error(),
		}).Warn("Failed to append chatbot message to conversation log")
	}
}

// HandleSend xử lý POST /chatbot/send: phân loại message, dựng reply và ghi log.
// Các lỗi truy vấn/provider là soft failure (HTTP 200 với apology); chỉ panic
// ngoài dự kiến mới trả về 500.
func (h *ChatbotHandler) HandleSend(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		userID, err := currentUserID(c)
		if err != nil {
			// Chưa xác thực: không ghi gì vào log hội thoại
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		input := new(chatbotdto.SendMessageInput)
		if err := c.Bind().Body(input); err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"Body request không hợp lệ",
				common.StatusBadRequest,
				err,
			))
			return nil
		}
		if err := global.Validate.Struct(input); err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				common.MsgValidationError,
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		ctx := c.Context()
		result := h.classifier.Classify(input.Message)

		// Bước 1: tính reply (trước), bước 2: ghi log (sau) - tách bạch để
		// log không xen giữa việc dựng response.
		reply := chatbotdto.ChatReply{
			Reply:        result.Reply,
			QuickReplies: result.QuickReplies,
		}
		switch result.Intent {
		case chatbotsvc.IntentOrderTracking:
			reply.Reply, reply.Image = h.responder.OrderTracking(ctx, userID)
		case chatbotsvc.IntentSalesSummary:
			reply.Reply = h.responder.SalesSummary(ctx, userID)
		case chatbotsvc.IntentVouchers:
			reply.Reply = h.responder.Vouchers(ctx, userID, time.Now().UnixMilli())
		case chatbotsvc.IntentDefault:
			reply.Reply = h.fallback.Complete(ctx, input.Message)
		}

		h.appendLog(ctx, userID, input.Message, true, result.Intent)
		h.appendLog(ctx, userID, reply.Reply, false, result.Intent)

		basehdl.HandleResponse(c, reply, nil)
		return nil
	})
}

// HandleHistory xử lý GET /chatbot/history: trả về tối đa N message gần nhất
// theo thứ tự thời gian tăng dần.
func (h *ChatbotHandler) HandleHistory(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		userID, err := currentUserID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		limit := int64(global.ServerConfig.ChatHistoryLimit)
		messages, err := h.messages.History(c.Context(), userID, limit)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		entries := make([]chatbotdto.HistoryEntry, 0, len(messages))
		for _, m := range messages {
			entries = append(entries, chatbotdto.HistoryEntry{
				Message:    m.Text,
				IsFromUser: m.IsFromUser,
			})
		}

		basehdl.HandleResponse(c, entries, nil)
		return nil
	})
}
