package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAISettings OpenAI 兼容接口配置
type OpenAISettings struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// OpenAIGenerator 基于官方 openai-go SDK（chat completions）实现 Generator
type OpenAIGenerator struct {
	Model  string
	client openai.Client
}

func NewOpenAIGenerator(s OpenAISettings) (*OpenAIGenerator, error) {
	if s.APIKey == "" {
		return nil, errors.New("openai api key missing")
	}
	if s.Model == "" {
		return nil, errors.New("openai model is required")
	}
	opts := []option.RequestOption{
		option.WithAPIKey(s.APIKey),
		option.WithHTTPClient(&http.Client{Timeout: s.Timeout}),
	}
	if s.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(s.BaseURL))
	}
	return &OpenAIGenerator{Model: s.Model, client: openai.NewClient(opts...)}, nil
}

func (o *OpenAIGenerator) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(o.Model),
		Messages:    []openai.ChatCompletionMessageParamUnion{openai.UserMessage(prompt)},
		MaxTokens:   openai.Int(int64(maxTokens)),
		Temperature: openai.Float(DefaultTemperature),
		TopP:        openai.Float(DefaultTopP),
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

var _ Generator = (*OpenAIGenerator)(nil)
