package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"sarb_ai/internal/usecase/interfaces"
)

const (
	defaultBaseURL        = "https://powderblue-jaguar-171084.hostingersite.com/public/api/v1"
	defaultTimeoutSeconds = 10
)

// Client talks to the SARB marketplace data provider.
//
// Supported env vars:
//   - PROVIDER_BASE_URL (default: the hosted SARB API)
//   - PROVIDER_API_TOKEN (Bearer token; requests go out unauthenticated when empty)
//   - PROVIDER_TIMEOUT_SECONDS (default: 10)
//
// List endpoints wrap their payload in {"result": {"data": [...]}}; the
// average-price endpoint returns {"result": {...}}. The client unwraps the
// envelope and hands back raw JSON; decoding into records belongs to the
// snapshot mapping layer.

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

var _ interfaces.IProviderClient = (*Client)(nil)

func NewClientFromEnv() *Client {
	timeout := defaultTimeoutSeconds
	if v := os.Getenv("PROVIDER_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}
	return &Client{
		baseURL: getenvDefault("PROVIDER_BASE_URL", defaultBaseURL),
		token:   os.Getenv("PROVIDER_API_TOKEN"),
		http:    &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

func NewClient(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeoutSeconds * time.Second}
	}
	return &Client{baseURL: baseURL, token: token, http: httpClient}
}

func (c *Client) FetchCars(ctx context.Context) (json.RawMessage, error) {
	return c.getList(ctx, "/car")
}

func (c *Client) FetchUsers(ctx context.Context) (json.RawMessage, error) {
	return c.getList(ctx, "/user")
}

func (c *Client) FetchBookings(ctx context.Context) (json.RawMessage, error) {
	return c.getList(ctx, "/booking")
}

func (c *Client) FetchAveragePrices(ctx context.Context) (json.RawMessage, error) {
	body, err := c.get(ctx, "/car/average-price")
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		log.Printf("[provider][client] average-price envelope decode failed err=%v", err)
		return nil, err
	}
	return envelope.Result, nil
}

func (c *Client) getList(ctx context.Context, path string) (json.RawMessage, error) {
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Result struct {
			Data json.RawMessage `json:"data"`
		} `json:"result"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		log.Printf("[provider][client] list envelope decode failed path=%s err=%v", path, err)
		return nil, err
	}
	return envelope.Result.Data, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[provider][client] request failed path=%s err=%v", path, err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[provider][client] unexpected status path=%s status=%d", path, resp.StatusCode)
		return nil, fmt.Errorf("provider returned status %d for %s", resp.StatusCode, path)
	}
	return io.ReadAll(resp.Body)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
