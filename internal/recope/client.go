// Package recope consumes the RECOPE open-data API. The upstream is treated
// as best-effort: transport errors, non-2xx responses and malformed JSON all
// surface as "no data", never as request failures.
package recope

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"datavision/internal/cache"
)

const (
	requestTimeout = 10 * time.Second
	cacheTTL       = 5 * time.Minute
	cacheKeyPrefix = "recope:"
	userAgent      = "DataVision/1.0"
)

// Period is one reporting window of the international price series.
type Period struct {
	From string `json:"desde"`
	To   string `json:"hasta"`
}

// Material is one fuel product with its price per period.
type Material struct {
	ID      string    `json:"id"`
	Product string    `json:"nomprod"`
	Prices  []float64 `json:"precios"`
}

// InternationalPrices is the upstream precio-internacional payload.
type InternationalPrices struct {
	Periods   []Period   `json:"periodos"`
	Materials []Material `json:"materiales"`
}

// SalePrice is one row of the consumer or plant price listings. Upstream
// serves every numeric field as a string; they are passed through untouched.
type SalePrice struct {
	Date          string `json:"fecha"`
	Type          string `json:"tipo"`
	Tax           string `json:"impuesto"`
	PriceNoTax    string `json:"precsinimp"`
	UpdatedAt     string `json:"fechaupd"`
	ID            string `json:"id"`
	TotalPrice    string `json:"preciototal"`
	Product       string `json:"nomprod"`
	AverageMargin string `json:"margenpromedio"`
}

// Client fetches price data from the RECOPE open-data API, caching responses
// in redis so dashboard refreshes do not hammer the upstream.
type Client struct {
	http    *http.Client
	baseURL string
	cache   *cache.Client
	logger  *slog.Logger
}

// New creates a client for the given base URL.
func New(baseURL string, cacheClient *cache.Client, logger *slog.Logger) *Client {
	return &Client{
		http:    &http.Client{Timeout: requestTimeout},
		baseURL: baseURL,
		cache:   cacheClient,
		logger:  logger,
	}
}

// InternationalPrices fetches the international price history, optionally
// bounded by a start/end date range. Returns nil when the upstream has no data.
func (c *Client) InternationalPrices(ctx context.Context, start, end string) *InternationalPrices {
	path := "/precio-internacional"
	if start != "" && end != "" {
		q := url.Values{}
		q.Set("inicio", start)
		q.Set("fin", end)
		path += "?" + q.Encode()
	}

	var out InternationalPrices
	if !c.getJSON(ctx, path, &out) {
		return nil
	}
	return &out
}

// ConsumerPrices fetches current consumer-level sale prices.
func (c *Client) ConsumerPrices(ctx context.Context) []SalePrice {
	var out []SalePrice
	if !c.getJSON(ctx, "/ventas/precio/consumidor", &out) {
		return nil
	}
	return out
}

// PlantPrices fetches current plant-level sale prices.
func (c *Client) PlantPrices(ctx context.Context) []SalePrice {
	var out []SalePrice
	if !c.getJSON(ctx, "/ventas/precio/plantel", &out) {
		return nil
	}
	return out
}

// getJSON fetches path into out, consulting the cache first. It reports false
// on any failure after logging it.
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) bool {
	key := cacheKeyPrefix + path
	if data, _ := c.cache.Get(ctx, key); data != nil {
		if err := json.Unmarshal(data, out); err == nil {
			return true
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		c.logger.Warn("recope request build failed", "path", path, "error", err)
		return false
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("recope fetch failed", "path", path, "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("recope fetch non-2xx", "path", path, "status", resp.StatusCode)
		return false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Warn("recope read failed", "path", path, "error", err)
		return false
	}
	if err := json.Unmarshal(body, out); err != nil {
		c.logger.Warn("recope malformed json", "path", path, "error", err)
		return false
	}

	_ = c.cache.Set(ctx, key, body, cacheTTL)
	return true
}
