package llm

import (
	"context"
	"strings"
)

// MockRule 提示词包含 Contains 时返回 Reply
type MockRule struct {
	Contains string
	Reply    string
}

// Mock 一个确定性的占位实现，便于本地调试，不调用外部模型。
type Mock struct {
	Rules    []MockRule
	Fallback string
}

func (m Mock) Generate(_ context.Context, prompt string, _ int) (string, error) {
	for _, r := range m.Rules {
		if strings.Contains(prompt, r.Contains) {
			return r.Reply, nil
		}
	}
	return m.Fallback, nil
}
