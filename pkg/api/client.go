package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"iotdef.xyz/agro-dashboard-service/pkg/common"
	"iotdef.xyz/agro-dashboard-service/pkg/models"
)

const (
	DefaultBaseURL = "http://localhost:3001/api"

	HeaderRequestID = "X-Request-ID"

	PathDump                = "/dump"
	PathZones               = "/zonas-riego"
	PathZonesFunctioning    = "/zonas-riego/funcionando"
	PathZonesNotFunctioning = "/zonas-riego/no-funcionando"
)

// ZonesByStatusPath is the endpoint listing the zones in one status.
func ZonesByStatusPath(status string) string {
	return "/zonas-riego/estado/" + url.PathEscape(status)
}

type IClient interface {
	Get(ctx context.Context, path string, out any) error
	GetDump(ctx context.Context) (models.Dump, error)
	GetZones(ctx context.Context, path string) ([]models.ZoneRaw, error)
}

// Client issues GET requests against the dashboard backend and decodes the
// JSON answer. It never retries.
type Client struct {
	BaseURL  string
	HTTP     *http.Client
	Limiters *RateLimiterStore
}

func NewClient(baseURL string, timeout time.Duration, limiters *RateLimiterStore) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		HTTP:     &http.Client{Timeout: timeout},
		Limiters: limiters,
	}
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	requestID := uuid.NewString()
	logger := common.GetLoggerWith(
		common.LoggerNameFetchClient,
		zap.String("request_id", requestID),
		zap.String("path", path),
	)

	if err := c.Limiters.Wait(ctx, path); err != nil {
		logger.Warn("Request throttled", zap.Error(err))
		return fmt.Errorf("throttle %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, requestID)

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		logger.Error("Request failed", zap.Error(err))
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		reqErr := newRequestError(resp.StatusCode, strings.TrimSpace(string(body)))
		logger.Error("Backend returned error status",
			zap.Int("status", resp.StatusCode),
			zap.String("message", reqErr.Message),
		)
		return reqErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logger.Error("Decoding response failed", zap.Error(err))
		return fmt.Errorf("decode %s: %w", path, err)
	}

	logger.Debug("Request done", zap.Duration("elapsed", time.Since(start)))
	return nil
}

func (c *Client) GetDump(ctx context.Context) (models.Dump, error) {
	var dump models.Dump
	err := c.Get(ctx, PathDump, &dump)
	return dump, err
}

func (c *Client) GetZones(ctx context.Context, path string) ([]models.ZoneRaw, error) {
	var zones []models.ZoneRaw
	if err := c.Get(ctx, path, &zones); err != nil {
		return nil, err
	}
	return zones, nil
}
