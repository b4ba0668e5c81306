// Package llm 定义流水线依赖的文本生成能力以及几种后端实现。
package llm

import "context"

// 采样参数，与原始 granite 推理设置保持一致
const (
	DefaultTemperature = 0.7
	DefaultTopP        = 0.9
)

// Generator 根据提示词和 token 上限生成文本，只返回去掉首尾空白的续写内容。
// 模型回复为空时返回 ""，只有传输或接口失败才返回错误。
type Generator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// GeneratorFunc 函数适配器
type GeneratorFunc func(ctx context.Context, prompt string, maxTokens int) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	return f(ctx, prompt, maxTokens)
}
