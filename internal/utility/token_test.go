// Package utility - Test tạo và xác thực JWT token.
package utility

import (
	"testing"
)

func TestCreateAndParseToken_RoundTrip(t *testing.T) {
	secret := "test-secret"
	tokenMap, err := CreateToken(secret, "6761a0ffcbf62dba0fb094cb", "1a2b3c", "42")
	if err != nil {
		t.Fatalf("CreateToken lỗi: %v", err)
	}
	signed := tokenMap["token"]
	if signed == "" {
		t.Fatal("CreateToken phải trả về token đã ký")
	}

	claims, err := ParseToken(secret, signed)
	if err != nil {
		t.Fatalf("ParseToken lỗi với token hợp lệ: %v", err)
	}
	if claims.UserID != "6761a0ffcbf62dba0fb094cb" {
		t.Errorf("userId trong claims không khớp: %s", claims.UserID)
	}
	if claims.RandomNumber != "42" {
		t.Errorf("randomNumber trong claims không khớp: %s", claims.RandomNumber)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	tokenMap, err := CreateToken("secret-a", "user-1", "1a2b3c", "7")
	if err != nil {
		t.Fatalf("CreateToken lỗi: %v", err)
	}

	if _, err := ParseToken("secret-b", tokenMap["token"]); err == nil {
		t.Error("ParseToken phải từ chối token ký bằng secret khác")
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, err := ParseToken("secret", "not-a-jwt"); err == nil {
		t.Error("ParseToken phải từ chối chuỗi không phải JWT")
	}
}
