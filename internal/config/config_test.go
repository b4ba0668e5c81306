package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"PORT", "USE_GPU", "LOG_LEVEL", "LOG_FILE", "OTEL_STDOUT", "LLM_PROVIDER", "LLM_TIMEOUT",
	"LLM_MAX_CONCURRENT", "ARK_API_KEY", "ARK_MODEL", "ARK_BASE_URL", "ARK_MOCK", "OPENAI_API_KEY",
	"OPENAI_MODEL", "OPENAI_BASE_URL", "LOCAL_LLM_URL", "LOCAL_LLM_MODEL", "CORS_ORIGINS",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Port)
	assert.False(t, cfg.UseGPU)
	assert.Equal(t, ProviderMock, cfg.LLM.Provider)
	assert.Equal(t, 1, cfg.LLM.MaxConcurrent)
	assert.Equal(t, 120*time.Second, cfg.LLM.Timeout)
	assert.Empty(t, cfg.HTTP.CORSOrigins)
	assert.Equal(t, ":8000", cfg.Addr())
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9001")
	t.Setenv("USE_GPU", "TRUE")
	t.Setenv("ARK_API_KEY", "ark-key")
	t.Setenv("LLM_TIMEOUT", "45s")
	t.Setenv("LLM_MAX_CONCURRENT", "3")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test ,")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9001, cfg.Port)
	assert.True(t, cfg.UseGPU)
	assert.Equal(t, ProviderArk, cfg.LLM.Provider)
	assert.Equal(t, 45*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 3, cfg.LLM.MaxConcurrent)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.HTTP.CORSOrigins)
}

func TestArkMockForcesMock(t *testing.T) {
	clearEnv(t)
	t.Setenv("ARK_API_KEY", "ark-key")
	t.Setenv("ARK_MOCK", "1")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ProviderMock, cfg.LLM.Provider)
}

func TestLoadYAMLThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "storyforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 7000
use_gpu: true
llm:
  provider: LOCAL
  local_url: http://gpu-box:8080
  max_concurrent: 2
http:
  cors_origins: ["http://ui.test"]
`), 0o600))
	t.Setenv("PORT", "7100")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7100, cfg.Port)
	assert.True(t, cfg.UseGPU)
	assert.Equal(t, ProviderLocal, cfg.LLM.Provider)
	assert.Equal(t, "http://gpu-box:8080", cfg.LLM.LocalURL)
	assert.Equal(t, 2, cfg.LLM.MaxConcurrent)
	assert.Equal(t, []string{"http://ui.test"}, cfg.HTTP.CORSOrigins)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "bad port", env: map[string]string{"PORT": "eighty"}},
		{name: "port out of range", env: map[string]string{"PORT": "70000"}},
		{name: "bad timeout", env: map[string]string{"LLM_TIMEOUT": "soon"}},
		{name: "zero concurrency", env: map[string]string{"LLM_MAX_CONCURRENT": "0"}},
		{name: "unknown provider", env: map[string]string{"LLM_PROVIDER": "carrier-pigeon"}},
		{name: "openai without key", env: map[string]string{"LLM_PROVIDER": "openai"}},
		{name: "ark without key", env: map[string]string{"LLM_PROVIDER": "ark"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestInitLogging(t *testing.T) {
	defer logrus.SetOutput(os.Stderr)

	cfg := Default()
	cfg.LogLevel = "debug"
	cfg.LogFile = filepath.Join(t.TempDir(), "app.log")

	closer, err := InitLogging(cfg)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	logrus.Info("hello file")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "hello file")

	cfg.LogLevel = "loud"
	_, err = InitLogging(cfg)
	assert.Error(t, err)
}
