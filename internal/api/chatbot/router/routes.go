// Package router đăng ký các route thuộc domain chatbot: send, history.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	chatbothdl "vintique/internal/api/chatbot/handler"
	"vintique/internal/api/middleware"
	apirouter "vintique/internal/api/router"
)

// Register đăng ký tất cả route chatbot lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	chatbotHandler, err := chatbothdl.NewChatbotHandler()
	if err != nil {
		return fmt.Errorf("tạo ChatbotHandler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()
	middlewares := []fiber.Handler{authMiddleware}

	// POST /chatbot/send — gửi message, nhận reply (+ quick replies / ảnh nếu có)
	apirouter.RegisterRouteWithMiddleware(v1, "/chatbot", "POST", "/send", middlewares, chatbotHandler.HandleSend)

	// GET /chatbot/history — lịch sử hội thoại, cũ nhất trước, tối đa N message
	apirouter.RegisterRouteWithMiddleware(v1, "/chatbot", "GET", "/history", middlewares, chatbotHandler.HandleHistory)

	return nil
}
