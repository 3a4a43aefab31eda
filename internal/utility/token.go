package utility

import (
	"github.com/dgrijalva/jwt-go"

	models "vintique/internal/api/auth/models"
)

// CreateToken tạo JWT token cho người dùng
// Parameters:
//   - secret: Secret key dùng để ký token
//   - userID: ID của người dùng (hex string)
//   - timeStr: Thời điểm tạo token (hex string)
//   - randomNumber: Số ngẫu nhiên để tránh trùng token
//
// Returns:
//   - map[string]string: Map chứa token đã ký ("token")
//   - error: Lỗi nếu có
func CreateToken(secret string, userID string, timeStr string, randomNumber string) (map[string]string, error) {
	claims := models.JwtToken{
		UserID:       userID,
		Time:         timeStr,
		RandomNumber: randomNumber,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}

	return map[string]string{"token": signed}, nil
}

// ParseToken xác thực chữ ký và giải mã JWT token
// Parameters:
//   - secret: Secret key đã dùng để ký token
//   - tokenString: Token cần giải mã
//
// Returns:
//   - *models.JwtToken: Claims đã giải mã nếu token hợp lệ
//   - error: Lỗi nếu token không hợp lệ hoặc sai chữ ký
func ParseToken(secret string, tokenString string) (*models.JwtToken, error) {
	claims := new(models.JwtToken)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		// Chỉ chấp nhận HMAC, tránh tấn công đổi thuật toán ký
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}
	return claims, nil
}
