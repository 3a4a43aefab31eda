package middleware

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	authsvc "vintique/internal/api/auth/service"
	"vintique/internal/common"
	"vintique/internal/global"
	"vintique/internal/logger"
	"vintique/internal/utility"
)

// AuthManager quản lý xác thực người dùng
type AuthManager struct {
	UserCRUD *authsvc.UserService
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager (private constructor)
func newAuthManager() (*AuthManager, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	return &AuthManager{UserCRUD: userService}, nil
}

// AuthMiddleware middleware xác thực cho Fiber.
// Xác thực chữ ký JWT trước, sau đó đối chiếu token với user trong database.
// Request không hợp lệ bị chặn tại đây, KHÔNG có side effect nào được ghi xuống DB.
func AuthMiddleware() fiber.Handler {
	// Sử dụng singleton instance của AuthManager
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			// Chỉ log khi thiếu token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		token := parts[1]

		// Xác thực chữ ký và hạn của JWT trước khi chạm vào database
		if _, err := utility.ParseToken(global.ServerConfig.JwtSecret, token); err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Invalid JWT signature")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Tìm user có token (token mới nhất, được cập nhật mỗi lần login)
		user, err := authManager.UserCRUD.FindByToken(context.Background(), token)
		if err != nil {
			// Chỉ log khi không tìm thấy token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Token not found in database")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Kiểm tra user có bị block không
		if user.IsBlock {
			logger.GetAuditLogger().WithFields(logrus.Fields{
				"user_id":    user.ID.Hex(),
				"path":       c.Path(),
				"block_note": user.BlockNote,
			}).Warn("Blocked account attempted access")
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthCredentials,
				"Tài khoản đã bị khóa: "+user.BlockNote,
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		// Lưu thông tin user vào context
		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", user)

		return c.Next()
	}
}
