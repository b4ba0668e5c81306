package story

import (
	"context"
	"fmt"
	"strings"

	"storyforge/internal/llm"
	"storyforge/internal/model"
)

// Stage 接收上一阶段的状态，返回追加了本阶段字段的新状态
type Stage = func(ctx context.Context, s model.StoryState) (model.StoryState, error)

// SelectGenre 生成题材和基调并解析带标签的回复
func SelectGenre(gen llm.Generator) Stage {
	return func(ctx context.Context, s model.StoryState) (model.StoryState, error) {
		resp, err := gen.Generate(ctx, genrePrompt(s), GenreMaxTokens)
		if err != nil {
			return model.StoryState{}, fmt.Errorf("select genre: %w", err)
		}
		genre, tone := ParseGenreTone(resp)
		return s.WithGenreTone(genre, tone), nil
	}
}

// GenerateOutline 根据创意、题材和基调生成剧情大纲
func GenerateOutline(gen llm.Generator) Stage {
	return func(ctx context.Context, s model.StoryState) (model.StoryState, error) {
		resp, err := gen.Generate(ctx, outlinePrompt(s), OutlineMaxTokens)
		if err != nil {
			return model.StoryState{}, fmt.Errorf("generate outline: %w", err)
		}
		return s.WithOutline(strings.TrimSpace(resp)), nil
	}
}

// GenerateScene 生成故事转折点的散文体场景
func GenerateScene(gen llm.Generator) Stage {
	return func(ctx context.Context, s model.StoryState) (model.StoryState, error) {
		resp, err := gen.Generate(ctx, scenePrompt(s), SceneMaxTokens)
		if err != nil {
			return model.StoryState{}, fmt.Errorf("generate scene: %w", err)
		}
		return s.WithScene(strings.TrimSpace(resp)), nil
	}
}

// WriteDialogue 把场景改写为剧本对白
func WriteDialogue(gen llm.Generator) Stage {
	return func(ctx context.Context, s model.StoryState) (model.StoryState, error) {
		resp, err := gen.Generate(ctx, dialoguePrompt(s), DialogueMaxTokens)
		if err != nil {
			return model.StoryState{}, fmt.Errorf("write dialogue: %w", err)
		}
		return s.WithDialogue(strings.TrimSpace(resp)), nil
	}
}
