package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ark"
	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// ChatModelGenerator 通过 eino 的 ChatModel 组件生成文本
type ChatModelGenerator struct {
	chatModel einomodel.BaseChatModel
}

// NewChatModelGenerator 包装任意 eino ChatModel
func NewChatModelGenerator(chatModel einomodel.BaseChatModel) *ChatModelGenerator {
	return &ChatModelGenerator{chatModel: chatModel}
}

// ArkSettings 火山方舟模型配置
type ArkSettings struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// NewArkGenerator 创建基于 eino-ext ark ChatModel 的生成器
func NewArkGenerator(ctx context.Context, s ArkSettings) (*ChatModelGenerator, error) {
	cfg := &ark.ChatModelConfig{
		APIKey:     s.APIKey,
		Region:     "cn-beijing",
		HTTPClient: &http.Client{Timeout: s.Timeout},
		Model:      s.Model,
	}
	if s.BaseURL != "" {
		cfg.BaseURL = s.BaseURL
	}
	chatModel, err := ark.NewChatModel(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}
	return NewChatModelGenerator(chatModel), nil
}

func (g *ChatModelGenerator) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	messages := []*schema.Message{schema.UserMessage(prompt)}
	res, err := g.chatModel.Generate(ctx, messages,
		einomodel.WithMaxTokens(maxTokens),
		einomodel.WithTemperature(DefaultTemperature),
		einomodel.WithTopP(DefaultTopP),
	)
	if err != nil {
		return "", fmt.Errorf("chat model generate: %w", err)
	}
	if res == nil {
		return "", nil
	}
	return strings.TrimSpace(res.Content), nil
}

var _ Generator = (*ChatModelGenerator)(nil)
