package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	ProviderArk    = "ark"
	ProviderOpenAI = "openai"
	ProviderLocal  = "local"
	ProviderMock   = "mock"
)

// Config 进程启动时读取一次的配置
type Config struct {
	Port     int    `yaml:"port"`
	UseGPU   bool   `yaml:"use_gpu"`
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`

	LLM  LLMConfig  `yaml:"llm"`
	HTTP HTTPConfig `yaml:"http"`

	OTelStdout bool `yaml:"otel_stdout"`
}

// LLMConfig 文本生成后端配置
type LLMConfig struct {
	Provider      string        `yaml:"provider"`
	Timeout       time.Duration `yaml:"timeout"`
	MaxConcurrent int           `yaml:"max_concurrent"`

	ArkAPIKey  string `yaml:"ark_api_key"`
	ArkModel   string `yaml:"ark_model"`
	ArkBaseURL string `yaml:"ark_base_url"`

	OpenAIAPIKey  string `yaml:"openai_api_key"`
	OpenAIModel   string `yaml:"openai_model"`
	OpenAIBaseURL string `yaml:"openai_base_url"`

	LocalURL   string `yaml:"local_url"`
	LocalModel string `yaml:"local_model"`
}

// HTTPConfig HTTP 服务配置
type HTTPConfig struct {
	CORSOrigins     []string      `yaml:"cors_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Port:     8000,
		LogLevel: "info",
		LLM: LLMConfig{
			Timeout:       120 * time.Second,
			MaxConcurrent: 1,
			ArkModel:      "ep-20250220181854-c8s82",
			OpenAIModel:   "gpt-4o-mini",
			LocalURL:      "http://127.0.0.1:8080",
			LocalModel:    "ibm-granite/granite-4.0-tiny-preview",
		},
		HTTP: HTTPConfig{
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

// Load 依次应用默认值、YAML 配置文件（path 为空时跳过）和环境变量
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.resolveProvider()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := lookup("PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Port = port
	}
	if v, ok := lookup("USE_GPU"); ok {
		c.UseGPU = strings.ToLower(v) == "true" || v == "1"
	}
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.LogFile, "LOG_FILE")
	if v, ok := lookup("OTEL_STDOUT"); ok {
		c.OTelStdout = strings.ToLower(v) == "true" || v == "1"
	}

	setString(&c.LLM.Provider, "LLM_PROVIDER")
	if v, ok := lookup("LLM_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid LLM_TIMEOUT %q: %w", v, err)
		}
		c.LLM.Timeout = d
	}
	if v, ok := lookup("LLM_MAX_CONCURRENT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid LLM_MAX_CONCURRENT %q: %w", v, err)
		}
		c.LLM.MaxConcurrent = n
	}
	setString(&c.LLM.ArkAPIKey, "ARK_API_KEY")
	setString(&c.LLM.ArkModel, "ARK_MODEL")
	setString(&c.LLM.ArkBaseURL, "ARK_BASE_URL")
	setString(&c.LLM.OpenAIAPIKey, "OPENAI_API_KEY")
	setString(&c.LLM.OpenAIModel, "OPENAI_MODEL")
	setString(&c.LLM.OpenAIBaseURL, "OPENAI_BASE_URL")
	setString(&c.LLM.LocalURL, "LOCAL_LLM_URL")
	setString(&c.LLM.LocalModel, "LOCAL_LLM_MODEL")

	// 兼容 ARK_MOCK=1/true
	if v, ok := lookup("ARK_MOCK"); ok && (strings.ToLower(v) == "true" || v == "1") {
		c.LLM.Provider = ProviderMock
	}

	if v, ok := lookup("CORS_ORIGINS"); ok {
		c.HTTP.CORSOrigins = nil
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				c.HTTP.CORSOrigins = append(c.HTTP.CORSOrigins, o)
			}
		}
	}
	return nil
}

// resolveProvider 未显式指定后端时，有 ARK_API_KEY 用 ark，否则用 mock
func (c *Config) resolveProvider() {
	c.LLM.Provider = strings.ToLower(strings.TrimSpace(c.LLM.Provider))
	if c.LLM.Provider != "" {
		return
	}
	if c.LLM.ArkAPIKey != "" {
		c.LLM.Provider = ProviderArk
		return
	}
	c.LLM.Provider = ProviderMock
}

// Validate 校验配置
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	if c.LLM.MaxConcurrent < 1 {
		return fmt.Errorf("llm max_concurrent must be >= 1, got %d", c.LLM.MaxConcurrent)
	}
	switch c.LLM.Provider {
	case ProviderArk:
		if c.LLM.ArkAPIKey == "" {
			return fmt.Errorf("provider %s requires ARK_API_KEY", ProviderArk)
		}
	case ProviderOpenAI:
		if c.LLM.OpenAIAPIKey == "" {
			return fmt.Errorf("provider %s requires OPENAI_API_KEY", ProviderOpenAI)
		}
	case ProviderLocal:
		if c.LLM.LocalURL == "" {
			return fmt.Errorf("provider %s requires LOCAL_LLM_URL", ProviderLocal)
		}
	case ProviderMock:
	default:
		return fmt.Errorf("unknown llm provider: %q", c.LLM.Provider)
	}
	return nil
}

// Addr 监听地址
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func setString(dst *string, key string) {
	if v, ok := lookup(key); ok {
		*dst = v
	}
}
