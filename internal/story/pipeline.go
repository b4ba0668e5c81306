package story

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"

	"storyforge/internal/llm"
	"storyforge/internal/model"
)

const graphName = "story_pipeline"

// StageError 记录失败的阶段
type StageError struct {
	Stage string
	Index int
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %d (%s): %v", e.Index, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

type stageDef struct {
	key   string
	label string
	fn    Stage
}

// Option 流水线配置项
type Option func(*options)

type options struct {
	observers []Observer
}

// WithObserver 注册每个阶段结束后调用的观察者
func WithObserver(o Observer) Option {
	return func(opts *options) {
		opts.observers = append(opts.observers, o)
	}
}

// Pipeline 依次执行题材、大纲、场景、对白四个阶段
type Pipeline struct {
	runnable compose.Runnable[model.StoryState, model.StoryState]
	keys     []string
}

// NewPipeline 编译一次四阶段的图，返回值可并发调用 Run
func NewPipeline(ctx context.Context, gen llm.Generator, opts ...Option) (*Pipeline, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	defs := []stageDef{
		{key: "select_genre", label: "Select Genre", fn: SelectGenre(gen)},
		{key: "generate_outline", label: "Generate Outline", fn: GenerateOutline(gen)},
		{key: "generate_scene", label: "Generate Scene", fn: GenerateScene(gen)},
		{key: "write_dialogue", label: "Write Dialogue", fn: WriteDialogue(gen)},
	}

	g := compose.NewGraph[model.StoryState, model.StoryState]()
	prev := compose.START
	keys := make([]string, 0, len(defs))
	for i, d := range defs {
		fn := recordFailure(WithProgress(d.fn, d.label, i+1, len(defs), o.observers...), d.label, i+1)
		if err := g.AddLambdaNode(d.key, compose.InvokableLambda[model.StoryState, model.StoryState](fn)); err != nil {
			return nil, fmt.Errorf("add node %s: %w", d.key, err)
		}
		if err := g.AddEdge(prev, d.key); err != nil {
			return nil, fmt.Errorf("add edge %s -> %s: %w", prev, d.key, err)
		}
		prev = d.key
		keys = append(keys, d.key)
	}
	if err := g.AddEdge(prev, compose.END); err != nil {
		return nil, fmt.Errorf("add edge %s -> end: %w", prev, err)
	}

	r, err := g.Compile(ctx, compose.WithGraphName(graphName))
	if err != nil {
		return nil, fmt.Errorf("failed to compile graph: %w", err)
	}
	return &Pipeline{runnable: r, keys: keys}, nil
}

// Stages 按执行顺序返回节点名
func (p *Pipeline) Stages() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Run 为 userInput 执行所有阶段，任一阶段失败则整次执行失败，不返回部分结果
func (p *Pipeline) Run(ctx context.Context, userInput string) (model.StoryState, error) {
	var failed *StageError
	ctx = context.WithValue(ctx, failureKey{}, &failed)

	out, err := p.runnable.Invoke(ctx, model.NewStoryState(userInput))
	if err != nil {
		if failed != nil {
			return model.StoryState{}, failed
		}
		return model.StoryState{}, fmt.Errorf("graph invocation failed: %w", err)
	}
	return out, nil
}

type failureKey struct{}

// recordFailure 记录本次执行的第一个阶段错误，Run 直接返回它而不是图的包装错误
func recordFailure(fn Stage, label string, index int) Stage {
	return func(ctx context.Context, s model.StoryState) (model.StoryState, error) {
		out, err := fn(ctx, s)
		if err != nil {
			stageErr := &StageError{Stage: label, Index: index, Err: err}
			if slot, ok := ctx.Value(failureKey{}).(**StageError); ok && *slot == nil {
				*slot = stageErr
			}
			return out, stageErr
		}
		return out, nil
	}
}
