// Package chatbotsvc - Test mapping lỗi provider → apology của fallback responder.
package chatbotsvc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

func newTestFallback(create completionFunc) *FallbackResponder {
	return &FallbackResponder{
		create:      create,
		model:       "gpt-4o-mini",
		maxTokens:   150,
		temperature: 0.7,
		timeout:     5 * time.Second,
	}
}

func TestComplete_ProviderErrorReturnsApology(t *testing.T) {
	f := newTestFallback(func(_ context.Context, _ openai.ChatCompletionNewParams, _ ...option.RequestOption) (*openai.ChatCompletion, error) {
		return nil, errors.New("connection refused")
	})

	reply := f.Complete(context.Background(), "what is vintique?")
	if reply != msgFallbackUnavailable {
		t.Errorf("lỗi provider phải trả về apology cố định, nhận được: %q", reply)
	}
}

func TestComplete_EmptyChoicesReturnsApology(t *testing.T) {
	f := newTestFallback(func(_ context.Context, _ openai.ChatCompletionNewParams, _ ...option.RequestOption) (*openai.ChatCompletion, error) {
		return &openai.ChatCompletion{}, nil
	})

	reply := f.Complete(context.Background(), "hello?")
	if reply != msgFallbackUnavailable {
		t.Errorf("completion không có choice phải trả về apology cố định, nhận được: %q", reply)
	}
}

func TestComplete_TrimsReply(t *testing.T) {
	f := newTestFallback(func(_ context.Context, _ openai.ChatCompletionNewParams, _ ...option.RequestOption) (*openai.ChatCompletion, error) {
		return &openai.ChatCompletion{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: "  We sell pre-loved treasures!  \n"}},
			},
		}, nil
	})

	reply := f.Complete(context.Background(), "what do you sell?")
	if reply != "We sell pre-loved treasures!" {
		t.Errorf("reply thành công phải được trim whitespace, nhận được: %q", reply)
	}
}

func TestComplete_AppliesCallTimeout(t *testing.T) {
	var gotDeadline bool
	f := newTestFallback(func(ctx context.Context, _ openai.ChatCompletionNewParams, _ ...option.RequestOption) (*openai.ChatCompletion, error) {
		_, gotDeadline = ctx.Deadline()
		return nil, context.DeadlineExceeded
	})

	reply := f.Complete(context.Background(), "slow question")
	if !gotDeadline {
		t.Error("call provider phải có deadline riêng trên context")
	}
	if reply != msgFallbackUnavailable {
		t.Errorf("timeout phải trả về apology cố định, nhận được: %q", reply)
	}
}
