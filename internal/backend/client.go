package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/uptimevalidator/internal/domain"
	"github.com/hamed0406/uptimevalidator/internal/monitor"
)

// Client calls a remote validation service. It satisfies monitor.Backend.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
	Logger  *zap.Logger
}

var _ monitor.Backend = (*Client)(nil)

func New(baseURL, apiKey string, timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: timeout},
		Logger:  log,
	}
}

type validateReq struct {
	Type domain.MonitorType `json:"type"`
	Data map[string]any     `json:"data"`
}

func (c *Client) ValidateMonitorData(ctx context.Context, t domain.MonitorType, data map[string]any) (monitor.BackendResult, error) {
	out, err := c.post(ctx, t, data)
	if err != nil {
		c.Logger.Warn("backend_validate_error",
			zap.String("base_url", c.BaseURL),
			zap.String("type", string(t)),
			zap.Error(err),
		)
	}
	return out, err
}

func (c *Client) post(ctx context.Context, t domain.MonitorType, data map[string]any) (monitor.BackendResult, error) {
	var out monitor.BackendResult
	body, err := json.Marshal(validateReq{Type: t, Data: data})
	if err != nil {
		return out, fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/validate/monitor", bytes.NewReader(body))
	if err != nil {
		return out, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("X-API-Key", c.APIKey)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return out, fmt.Errorf("backend returned %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}
