package llm

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"storyforge/internal/config"
)

// New 按配置创建生成器，并用信号量包装以串行化对共享后端的访问。
// rules 仅在 mock 后端下使用。
func New(ctx context.Context, cfg *config.Config, rules ...MockRule) (Generator, error) {
	var (
		g   Generator
		err error
	)
	lc := cfg.LLM
	switch lc.Provider {
	case config.ProviderArk:
		g, err = NewArkGenerator(ctx, ArkSettings{
			APIKey:  lc.ArkAPIKey,
			Model:   lc.ArkModel,
			BaseURL: lc.ArkBaseURL,
			Timeout: lc.Timeout,
		})
	case config.ProviderOpenAI:
		g, err = NewOpenAIGenerator(OpenAISettings{
			APIKey:  lc.OpenAIAPIKey,
			Model:   lc.OpenAIModel,
			BaseURL: lc.OpenAIBaseURL,
			Timeout: lc.Timeout,
		})
	case config.ProviderLocal:
		g = NewLocalClient(lc.LocalURL, lc.LocalModel, cfg.UseGPU, lc.Timeout)
	case config.ProviderMock:
		g = Mock{Rules: rules}
	default:
		return nil, fmt.Errorf("unknown llm provider: %q", lc.Provider)
	}
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"provider":       lc.Provider,
		"use_gpu":        cfg.UseGPU,
		"max_concurrent": lc.MaxConcurrent,
	}).Info("text generator ready")
	return Serialized(g, lc.MaxConcurrent), nil
}
