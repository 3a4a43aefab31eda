// Package common - Test mô hình lỗi và convert lỗi MongoDB.
package common

import (
	"context"
	"errors"
	"testing"
)

func TestNewError_Fields(t *testing.T) {
	cause := errors.New("gốc")
	err := NewError(ErrCodeDatabaseQuery, "lỗi thử", StatusInternalServerError, cause).(*Error)

	if err.Code != ErrCodeDatabaseQuery {
		t.Errorf("Code không khớp: %v", err.Code)
	}
	if err.StatusCode != StatusInternalServerError {
		t.Errorf("StatusCode không khớp: %d", err.StatusCode)
	}
	if err.Error() == "" {
		t.Error("Error() không được rỗng")
	}
}

func TestError_IsMatchesSameCode(t *testing.T) {
	err := NewError(ErrCodeDatabaseQuery, "một", StatusInternalServerError, nil)
	if !errors.Is(err, ErrMongoQuery) {
		t.Error("hai lỗi cùng ErrorCode phải khớp qua errors.Is")
	}
	if errors.Is(err, ErrMongoConnection) {
		t.Error("lỗi khác ErrorCode không được khớp qua errors.Is")
	}
}

func TestConvertMongoError_NotFoundPassthrough(t *testing.T) {
	// ErrNotFound là sentinel của service layer, convert phải giữ nguyên
	got := ConvertMongoError(ErrNotFound)
	if !errors.Is(got, ErrNotFound) {
		t.Errorf("ErrNotFound phải đi qua nguyên vẹn, nhận được: %v", got)
	}
}

func TestConvertMongoError_Nil(t *testing.T) {
	if got := ConvertMongoError(nil); got != nil {
		t.Errorf("convert nil phải trả về nil, nhận được: %v", got)
	}
}

func TestConvertMongoError_DeadlineExceeded(t *testing.T) {
	got := ConvertMongoError(context.DeadlineExceeded)
	var customErr *Error
	if !errors.As(got, &customErr) {
		t.Fatalf("convert phải trả về *common.Error, nhận được: %T", got)
	}
	if !errors.Is(got, ErrMongoTimeout) {
		t.Errorf("deadline exceeded phải convert thành ErrMongoTimeout, nhận được: %v", got)
	}
}
