package llm

import (
	"context"
	"fmt"
	"sync"
)

// Call 记录一次生成调用
type Call struct {
	Prompt    string
	MaxTokens int
}

// Sequence 按顺序返回预设回复的脚本化生成器，记录每次调用。
// FailAt 为 1 起始的调用序号，命中时返回 Err；0 表示不失败。
type Sequence struct {
	Replies []string
	FailAt  int
	Err     error

	mu    sync.Mutex
	calls []Call
}

// NewSequence 创建脚本化生成器
func NewSequence(replies ...string) *Sequence {
	return &Sequence{Replies: replies}
}

func (s *Sequence) Generate(_ context.Context, prompt string, maxTokens int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, Call{Prompt: prompt, MaxTokens: maxTokens})
	n := len(s.calls)
	if s.FailAt > 0 && n == s.FailAt {
		if s.Err != nil {
			return "", s.Err
		}
		return "", fmt.Errorf("scripted failure at call %d", n)
	}
	if n > len(s.Replies) {
		return "", fmt.Errorf("no scripted reply for call %d", n)
	}
	return s.Replies[n-1], nil
}

// Calls 返回已记录的调用副本
func (s *Sequence) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}
