package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agrocraft-dev/agrocraft-go/internal/logger"
	"github.com/agrocraft-dev/agrocraft-go/pkg/client/api"
)

const defaultTimeout = 30 * time.Second

// BaseClient is the single point of HTTP egress for the AgroCraft API. It
// holds the base URL and default headers, and normalizes every failure into
// an *api.Error before it reaches a caller.
type BaseClient struct {
	BaseURL    string
	HTTPClient *http.Client
	UserID     string

	log *zap.Logger
}

// Option configures a BaseClient.
type Option func(*BaseClient)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *BaseClient) {
		c.HTTPClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *BaseClient) {
		c.HTTPClient = hc
	}
}

// WithUserID sets a default user ID applied when a call site passes none.
func WithUserID(userID string) Option {
	return func(c *BaseClient) {
		c.UserID = userID
	}
}

// WithLogger replaces the default logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *BaseClient) {
		c.log = log
	}
}

// NewBaseClient creates a client rooted at the given base URL.
func NewBaseClient(baseURL string, opts ...Option) *BaseClient {
	c := &BaseClient{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: defaultTimeout},
		log:        logger.Get(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetUserIDOrDefault returns userID if set, else the client default.
func (c *BaseClient) GetUserIDOrDefault(userID string) string {
	if userID != "" {
		return userID
	}
	return c.UserID
}

// Get issues a GET request.
func (c *BaseClient) Get(ctx context.Context, path string) (*http.Response, error) {
	return c.doJSON(ctx, http.MethodGet, path, nil)
}

// Post issues a POST request with an optional JSON body.
func (c *BaseClient) Post(ctx context.Context, path string, body interface{}) (*http.Response, error) {
	return c.doJSON(ctx, http.MethodPost, path, body)
}

// Put issues a PUT request with an optional JSON body.
func (c *BaseClient) Put(ctx context.Context, path string, body interface{}) (*http.Response, error) {
	return c.doJSON(ctx, http.MethodPut, path, body)
}

// Delete issues a DELETE request.
func (c *BaseClient) Delete(ctx context.Context, path string) (*http.Response, error) {
	return c.doJSON(ctx, http.MethodDelete, path, nil)
}

// PostForm issues a POST request with a multipart/form-data body. The
// content type carries the encoder's boundary; it is never forced to JSON.
func (c *BaseClient) PostForm(ctx context.Context, path string, form *Form) (*http.Response, error) {
	return c.doForm(ctx, http.MethodPost, path, form)
}

// PutForm issues a PUT request with a multipart/form-data body.
func (c *BaseClient) PutForm(ctx context.Context, path string, form *Form) (*http.Response, error) {
	return c.doForm(ctx, http.MethodPut, path, form)
}

func (c *BaseClient) doJSON(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, api.NewUnexpectedError(fmt.Errorf("failed to encode request body: %w", err))
		}
		reader = bytes.NewReader(data)
	}
	return c.do(ctx, method, path, "application/json", reader)
}

func (c *BaseClient) doForm(ctx context.Context, method, path string, form *Form) (*http.Response, error) {
	contentType, body, err := form.encode()
	if err != nil {
		return nil, api.NewUnexpectedError(fmt.Errorf("failed to encode form: %w", err))
	}
	return c.do(ctx, method, path, contentType, body)
}

func (c *BaseClient) do(ctx context.Context, method, path, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, api.NewUnexpectedError(fmt.Errorf("failed to create request: %w", err))
	}
	if body != nil || method == http.MethodPost || method == http.MethodPut {
		req.Header.Set("Content-Type", contentType)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.log.Error("request failed without a response",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return nil, api.NewNetworkError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		message, cause := extractErrorMessage(resp.Body)
		c.log.Warn("server rejected request",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Int("status", resp.StatusCode),
			zap.String("message", message),
		)
		return nil, api.NewApplicationError(resp.StatusCode, message, cause)
	}

	return resp, nil
}

// extractErrorMessage pulls the message field out of a structured error body.
// Returns an empty message when the body is missing or not in the expected
// shape, which makes the normalized error fall back to a generic message.
func extractErrorMessage(body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", err
	}
	return payload.Message, nil
}

// DecodeResponse decodes a successful response body into result and closes
// it. A nil result drains and closes the body without decoding.
func DecodeResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()
	if result == nil {
		_, err := io.Copy(io.Discard, resp.Body)
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return api.NewUnexpectedError(fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}
