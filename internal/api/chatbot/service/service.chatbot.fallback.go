// Package chatbotsvc - Fallback Responder: ủy quyền cho completion service khi
// không luật intent nào khớp.
package chatbotsvc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/sirupsen/logrus"

	"vintique/config"
	"vintique/internal/common"
	"vintique/internal/logger"
)

// System prompt cố định cho fallback responder.
const fallbackSystemPrompt = "You are Vintique's friendly, sustainability-focused shopping assistant. " +
	"Keep answers concise and helpful. Encourage reuse and second-hand shopping where relevant."

// Reply cố định khi provider lỗi hoặc timeout. Lỗi provider KHÔNG BAO GIỜ lộ ra
// cho người dùng cuối - đây cũng là soft failure.
const msgFallbackUnavailable = "Sorry, I'm temporarily unavailable. Please try again in a moment!"

// completionFunc là call tạo completion; test thay bằng hàm giả.
type completionFunc func(ctx context.Context, params openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)

// FallbackResponder gọi completion service với system prompt, giới hạn output
// và temperature cố định.
type FallbackResponder struct {
	create      completionFunc
	model       string
	maxTokens   int64
	temperature float64
	timeout     time.Duration
}

// NewFallbackResponder tạo mới FallbackResponder từ cấu hình server
func NewFallbackResponder(cfg *config.Configuration) *FallbackResponder {
	client := openai.NewClient(option.WithAPIKey(cfg.OpenAIAPIKey))
	return &FallbackResponder{
		create:      client.Chat.Completions.New,
		model:       cfg.OpenAIModel,
		maxTokens:   int64(cfg.OpenAIMaxTokens),
		temperature: cfg.OpenAITemperature,
		timeout:     time.Duration(cfg.OpenAITimeout) * time.Second,
	}
}

// Complete sinh reply cho một message không khớp luật nào.
// Call provider có timeout riêng; lỗi hoặc hết giờ → msgFallbackUnavailable.
// Reply thành công được trim whitespace trước khi trả về.
func (f *FallbackResponder) Complete(ctx context.Context, text string) string {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	completion, err := f.create(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(f.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(fallbackSystemPrompt),
			openai.UserMessage(text),
		},
		MaxTokens:   openai.Int(f.maxTokens),
		Temperature: openai.Float(f.temperature),
	})
	if err != nil {
		logger.GetErrorLogger().WithFields(logrus.Fields{
			"intent":  IntentDefault,
			"failure": "provider_error",
			"error":   fmt.Errorf("%w: %v", common.ErrProviderUnavailable, err).Error(),
		}).Error("Completion provider call failed, returning apology reply")
		return msgFallbackUnavailable
	}

	if len(completion.Choices) == 0 {
		logger.GetErrorLogger().WithFields(logrus.Fields{
			"intent":  IntentDefault,
			"failure": "provider_error",
			"error":   common.ErrProviderUnavailable.Error(),
		}).Error("Completion provider returned no choices")
		return msgFallbackUnavailable
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content)
}
