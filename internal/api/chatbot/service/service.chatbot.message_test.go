// Package chatbotsvc - Test đảo thứ tự message của conversation log.
package chatbotsvc

import (
	"strconv"
	"testing"

	models "vintique/internal/api/chatbot/models"
)

// newestFirst dựng slice message mới-nhất-trước, createdAt giảm dần.
func newestFirst(n int) []models.ChatbotMessage {
	messages := make([]models.ChatbotMessage, n)
	for i := 0; i < n; i++ {
		messages[i] = models.ChatbotMessage{
			Text:      "msg-" + strconv.Itoa(n-i),
			CreatedAt: int64((n - i) * 1000),
		}
	}
	return messages
}

func TestReverseMessages_OldestFirst(t *testing.T) {
	messages := newestFirst(10)
	reversed := reverseMessages(messages)

	if len(reversed) != 10 {
		t.Fatalf("độ dài sau đảo phải giữ nguyên, nhận được: %d", len(reversed))
	}
	for i := 1; i < len(reversed); i++ {
		if reversed[i].CreatedAt < reversed[i-1].CreatedAt {
			t.Fatalf("sau đảo phải tăng dần theo createdAt, vị trí %d: %d < %d",
				i, reversed[i].CreatedAt, reversed[i-1].CreatedAt)
		}
	}
	if reversed[0].Text != "msg-1" {
		t.Errorf("message cũ nhất phải đứng đầu, nhận được: %s", reversed[0].Text)
	}
	if reversed[9].Text != "msg-10" {
		t.Errorf("message mới nhất phải đứng cuối, nhận được: %s", reversed[9].Text)
	}
}

func TestReverseMessages_DoesNotMutateInput(t *testing.T) {
	messages := newestFirst(3)
	first := messages[0].Text
	_ = reverseMessages(messages)
	if messages[0].Text != first {
		t.Error("reverseMessages không được sửa slice đầu vào")
	}
}

func TestReverseMessages_Empty(t *testing.T) {
	if got := reverseMessages(nil); len(got) != 0 {
		t.Errorf("đảo slice rỗng phải ra rỗng, nhận được %d phần tử", len(got))
	}
}
