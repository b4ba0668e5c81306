package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"storyforge/internal/config"
	"storyforge/internal/llm"
	"storyforge/internal/server"
	"storyforge/internal/story"
	"storyforge/internal/telemetry"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "storyforge",
		Short:        "把一个故事创意生成题材、大纲、关键场景和剧本对白",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML 配置文件路径（可选）")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "启动 HTTP 服务 (POST /generate-story)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}
	generate := &cobra.Command{
		Use:   "generate <idea>",
		Short: "执行一次流水线并输出 JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), configPath, args[0], cmd.OutOrStdout())
		},
	}

	root.AddCommand(serve, generate)
	// 不带子命令时默认启动服务
	root.RunE = serve.RunE
	return root
}

// setup 加载配置、初始化日志和追踪，并编译故事流水线
func setup(ctx context.Context, configPath string) (*config.Config, *story.Pipeline, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}
	logCloser, err := config.InitLogging(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	shutdownTracing, err := telemetry.Setup("storyforge", cfg.OTelStdout)
	if err != nil {
		logCloser.Close()
		return nil, nil, nil, err
	}
	cleanup := func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logrus.WithError(err).Warn("tracer shutdown failed")
		}
		logCloser.Close()
	}

	gen, err := llm.New(ctx, cfg, story.MockRules()...)
	if err != nil {
		cleanup()
		return nil, nil, nil, fmt.Errorf("初始化文本生成器失败: %w", err)
	}
	pipeline, err := story.NewPipeline(ctx, gen)
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	return cfg, pipeline, cleanup, nil
}

func runServe(parent context.Context, configPath string) error {
	if parent == nil {
		parent = context.Background()
	}
	// 等待中断信号
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, pipeline, cleanup, err := setup(ctx, configPath)
	if err != nil {
		return err
	}
	defer cleanup()

	router := server.NewRouter(cfg, pipeline)
	return server.Run(ctx, cfg.Addr(), router, cfg.HTTP.ShutdownTimeout)
}

// runGenerate 执行一次流水线，把 JSON 结果写入 w
func runGenerate(ctx context.Context, configPath, idea string, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if idea == "" {
		return errors.New(server.MissingInputMessage)
	}

	_, pipeline, cleanup, err := setup(ctx, configPath)
	if err != nil {
		return err
	}
	defer cleanup()

	state, err := pipeline.Run(ctx, idea)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(state.Response())
}
