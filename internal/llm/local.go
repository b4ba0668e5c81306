package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const completionsPath = "/v1/chat/completions"

// LocalClient 自托管推理服务（OpenAI 兼容 chat completions）客户端
type LocalClient struct {
	BaseURL    string
	Model      string
	UseGPU     bool
	HTTPClient *http.Client
}

// NewLocalClient 创建本地推理客户端
func NewLocalClient(baseURL, model string, useGPU bool, timeout time.Duration) *LocalClient {
	return &LocalClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Model:      model,
		UseGPU:     useGPU,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Device 计算设备提示
func (c *LocalClient) Device() string {
	if c.UseGPU {
		return "gpu"
	}
	return "cpu"
}

func (c *LocalClient) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	reqBody := map[string]any{
		"model":       c.Model,
		"messages":    []map[string]any{{"role": "user", "content": prompt}},
		"max_tokens":  maxTokens,
		"temperature": DefaultTemperature,
		"top_p":       DefaultTopP,
	}
	var resp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
			Text string `json:"text"`
		} `json:"choices"`
	}
	if err := c.postJSON(ctx, completionsPath, reqBody, &resp); err != nil {
		return "", err
	}
	var content string
	if len(resp.Choices) > 0 {
		content = resp.Choices[0].Message.Content
		if content == "" {
			content = resp.Choices[0].Text
		}
	}
	return strings.TrimSpace(content), nil
}

func (c *LocalClient) postJSON(ctx context.Context, path string, body any, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Compute-Device", c.Device())
	logrus.WithFields(logrus.Fields{
		"url":    req.URL.String(),
		"device": c.Device(),
		"bytes":  len(b),
	}).Debug("local completion request")

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	bodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("http %d: %s", res.StatusCode, string(bodyBytes))
	}
	return json.Unmarshal(bodyBytes, out)
}

var _ Generator = (*LocalClient)(nil)
