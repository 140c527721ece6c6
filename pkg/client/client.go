// Package client is a Go client for the GHS label search HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rjsky311/GHS-label-quick-search/pkg/errors"
	"github.com/rjsky311/GHS-label-quick-search/pkg/types/ghs"
)

const Version = "1.2.0"

// Logger defines the logging interface used by the Client
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Debugf(format string, args ...interface{}) {}
func (noopLogger) Infof(format string, args ...interface{})  {}
func (noopLogger) Errorf(format string, args ...interface{}) {}

// Client talks to a GHS label search server.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	userAgent    string
	logger       Logger
	retryMax     int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
}

// APIError represents an error response from the API
type APIError struct {
	StatusCode int    `json:"status_code"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	RequestID  string `json:"request_id"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ghs: %s (HTTP %d): %s [request_id=%s]", e.Code, e.StatusCode, e.Message, e.RequestID)
}

func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode < 600
}

// NewClient creates a client for the server at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.InvalidParam("client: base URL is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidParam, "client: invalid base URL")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.InvalidParam("client: base URL scheme must be http or https")
	}

	c := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		httpClient:   &http.Client{Timeout: 5 * time.Minute},
		userAgent:    fmt.Sprintf("ghsq-go-client/%s", Version),
		logger:       noopLogger{},
		retryMax:     3,
		retryWaitMin: 500 * time.Millisecond,
		retryWaitMax: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ---------------------------------------------------------------------------
// API operations
// ---------------------------------------------------------------------------

// Search resolves up to ghs.MaxBatchSize CAS numbers in one request.
func (c *Client) Search(ctx context.Context, casNumbers []string) ([]ghs.Result, error) {
	var out []ghs.Result
	err := c.post(ctx, "/api/search", ghs.SearchRequest{CASNumbers: casNumbers}, &out)
	return out, err
}

// SearchOne resolves one query; the server accepts a CAS number or a name.
func (c *Client) SearchOne(ctx context.Context, query string) (ghs.Result, error) {
	var out ghs.Result
	err := c.get(ctx, "/api/search/"+url.PathEscape(query), &out)
	return out, err
}

// SearchByName lists dictionary entries matching query.
func (c *Client) SearchByName(ctx context.Context, query string) ([]ghs.NameMatch, error) {
	var out ghs.NameSearchResponse
	if err := c.get(ctx, "/api/search-by-name/"+url.PathEscape(query), &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// Pictograms fetches the pictogram reference table keyed by code.
func (c *Client) Pictograms(ctx context.Context) (map[string]ghs.Pictogram, error) {
	var out map[string]ghs.Pictogram
	err := c.get(ctx, "/api/ghs-pictograms", &out)
	return out, err
}

// Health calls the health endpoint.
func (c *Client) Health(ctx context.Context) (ghs.HealthResponse, error) {
	var out ghs.HealthResponse
	err := c.get(ctx, "/api/health", &out)
	return out, err
}

// Export renders results on the server as format ("xlsx" or "csv") and
// copies the file to w.
func (c *Client) Export(ctx context.Context, format string, results []ghs.Result, w io.Writer) error {
	body, err := c.do(ctx, http.MethodPost, "/api/export/"+url.PathEscape(format), ghs.ExportRequest{Results: results, Format: format})
	if err != nil {
		return err
	}
	_, err = w.Write(body)
	return err
}

// ---------------------------------------------------------------------------
// Transport
// ---------------------------------------------------------------------------

func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, result)
}

func (c *Client) post(ctx context.Context, path string, body interface{}, result interface{}) error {
	return c.doJSON(ctx, http.MethodPost, path, body, result)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	respBody, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return errors.Wrap(err, errors.ErrCodeSerialization, "client: failed to decode response")
		}
	}
	return nil
}

// do performs an HTTP request with retry logic and returns the raw body of a
// successful response.
func (c *Client) do(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	fullURL := c.baseURL + path

	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeSerialization, "client: failed to encode request")
		}
	}

	var lastErr error
	for attempt := 0; attempt <= c.retryMax; attempt++ {
		if attempt > 0 {
			backoff := c.calculateBackoff(attempt)
			c.logger.Debugf("Retry attempt %d after %v", attempt, backoff)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		var bodyReader io.Reader
		if payload != nil {
			bodyReader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInvalidParam, "client: failed to create request")
		}

		requestID := uuid.New().String()
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("X-Request-ID", requestID)

		start := time.Now()
		resp, err := c.httpClient.Do(req)
		duration := time.Since(start)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.logger.Errorf("Request failed: %v", err)
			lastErr = err
			continue
		}

		c.logger.Debugf("%s %s %d (%v)", method, path, resp.StatusCode, duration)

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeServiceUnavailable, "client: failed to read response")
		}

		if resp.StatusCode == http.StatusTooManyRequests && attempt < c.retryMax {
			if seconds, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil {
				c.logger.Infof("Rate limited, retrying after %d seconds", seconds)
				select {
				case <-time.After(time.Duration(seconds) * time.Second):
				case <-ctx.Done():
					return nil, ctx.Err()
				}
			}
		}

		if resp.StatusCode >= 400 {
			apiErr := &APIError{StatusCode: resp.StatusCode, RequestID: requestID}
			var errResp ghs.ErrorResponse
			if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
				apiErr.Code = errResp.Code
				apiErr.Message = errResp.Message
			} else {
				apiErr.Message = string(respBody)
			}
			lastErr = apiErr
			if shouldRetry(resp.StatusCode) {
				continue
			}
			return nil, apiErr
		}
		return respBody, nil
	}
	return nil, lastErr
}

// shouldRetry reports whether a response status is worth another attempt.
func shouldRetry(status int) bool {
	return status == http.StatusTooManyRequests || (status >= 500 && status < 600)
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.retryWaitMin * time.Duration(1<<uint(attempt-1))
	if backoff > c.retryWaitMax {
		backoff = c.retryWaitMax
	}
	if backoff < 4 {
		return backoff
	}
	return backoff + time.Duration(rand.Int63n(int64(backoff/4)))
}
