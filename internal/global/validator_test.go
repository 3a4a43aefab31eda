package global

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleInput struct {
	Message string `validate:"required,max=20,no_xss"`
}

func TestValidateNoXSS(t *testing.T) {
	InitValidator()

	t.Run("Chuỗi an toàn phải hợp lệ", func(t *testing.T) {
		err := Validate.Struct(sampleInput{Message: "hello vintique"})
		assert.NoError(t, err, "Chuỗi an toàn không được báo lỗi")
	})

	t.Run("Chuỗi chứa script phải bị từ chối", func(t *testing.T) {
		err := Validate.Struct(sampleInput{Message: "<script>x()"})
		assert.Error(t, err, "Chuỗi chứa <script phải bị từ chối")
	})

	t.Run("Chuỗi chứa javascript: phải bị từ chối", func(t *testing.T) {
		err := Validate.Struct(sampleInput{Message: "JavaScript:alert"})
		assert.Error(t, err, "Pattern không phân biệt hoa thường")
	})

	t.Run("Chuỗi rỗng vi phạm required", func(t *testing.T) {
		err := Validate.Struct(sampleInput{Message: ""})
		assert.Error(t, err)
	})
}
