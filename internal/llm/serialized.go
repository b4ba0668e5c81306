package llm

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"
)

// SerializedGenerator 限制对共享模型实例的并发访问
type SerializedGenerator struct {
	next Generator
	sem  *semaphore.Weighted
}

// Serialized 包装 g，同时最多 n 个调用进入；n < 1 时按 1 处理
func Serialized(g Generator, n int) *SerializedGenerator {
	if n < 1 {
		n = 1
	}
	return &SerializedGenerator{next: g, sem: semaphore.NewWeighted(int64(n))}
}

func (s *SerializedGenerator) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("wait for generator: %w", err)
	}
	defer s.sem.Release(1)
	return s.next.Generate(ctx, prompt, maxTokens)
}
