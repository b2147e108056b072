package fdc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/labelforge/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client handles communication with the USDA FoodData Central API. It is
// used only by the delivery layer to prefill raw nutrient amounts for a
// known FDC ID; the validation core never talks to it.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a FoodData Central API client.
func NewClient(apiKey, baseURL string) *Client {
	// FDC allows 1000 requests per hour per key: 1000/3600 ≈ 0.278 req/sec.
	limiter := rate.NewLimiter(rate.Limit(0.278), 10)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// SetDebug toggles request logging.
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// GetFoodDetails retrieves a full food record by FDC ID. Transient
// failures are retried up to 3 times with linear backoff.
func (c *Client) GetFoodDetails(ctx context.Context, fdcID string) (*domain.FDCFood, error) {
	endpoint := fmt.Sprintf("%s/v1/food/%s", c.baseURL, url.PathEscape(fdcID))
	params := url.Values{}
	params.Add("api_key", c.apiKey)
	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			if c.debug {
				log.Printf("[FDC] Request error (attempt %d): %v", attempt, err)
			}
			lastErr = err
			time.Sleep(backoff(attempt))
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			return nil, domain.ErrFoodNotFound
		}
		if resp.StatusCode != http.StatusOK {
			if c.debug {
				log.Printf("[FDC] API error (attempt %d) - Status: %d, Body: %s", attempt, resp.StatusCode, string(body))
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrFDCAPIFailure, resp.StatusCode)
			time.Sleep(backoff(attempt))
			continue
		}

		var food domain.FDCFood
		if err := json.Unmarshal(body, &food); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		if c.debug {
			log.Printf("[FDC] Resolved %s: %q (%d nutrients)", fdcID, food.Description, len(food.Nutrients))
		}
		return &food, nil
	}

	return nil, lastErr
}

// doRequest executes an HTTP GET request with proper headers.
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "LabelForge/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFDCAPIFailure, err)
	}
	return resp, nil
}

// backoff returns the sleep before the next retry attempt.
func backoff(attempt int) time.Duration {
	return time.Duration(attempt) * 500 * time.Millisecond
}
