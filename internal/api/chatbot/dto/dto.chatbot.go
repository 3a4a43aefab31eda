// Package chatbotdto - dữ liệu vào/ra cho các API của domain chatbot.
package chatbotdto

// SendMessageInput dữ liệu đầu vào khi gửi message cho chatbot
type SendMessageInput struct {
	Message string `json:"message" validate:"required,max=2000"`
}

// ChatReply dữ liệu trả về sau khi chatbot xử lý một message.
// QuickReplies là các gợi ý follow-up, Image là ảnh kèm theo (nếu có).
type ChatReply struct {
	Reply        string   `json:"reply"`
	QuickReplies []string `json:"quickReplies,omitempty"`
	Image        string   `json:"image,omitempty"`
}

// HistoryEntry một lượt message trong lịch sử hội thoại trả về cho client
type HistoryEntry struct {
	Message    string `json:"message"`
	IsFromUser bool   `json:"isFromUser"`
}
