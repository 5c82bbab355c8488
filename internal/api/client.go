package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ahmedgamal1254/lms-portal/internal/model"
)

// envelope is the response shape every endpoint uses:
// { success, message, data: {...}, errors: {field: message} }.
type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

// TokenSource supplies the bearer token for outgoing requests.
type TokenSource interface {
	Token() string
}

// Client is the single pre-configured HTTP client every repository goes
// through. It attaches the bearer token, a request id and the interface
// language, and unwraps the JSON envelope.
type Client struct {
	baseURL  string
	language string
	http     *http.Client
	tokens   TokenSource
	logger   *zap.Logger
}

func NewClient(baseURL, language string, timeout time.Duration, tokens TokenSource, logger *zap.Logger) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		language: language,
		http:     &http.Client{Timeout: timeout},
		tokens:   tokens,
		logger:   logger,
	}
}

// Get issues a GET and decodes the envelope data into out (out may be nil).
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, nil, bytes.NewReader(encoded), "application/json", out)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}
	return c.do(ctx, http.MethodPut, path, nil, bytes.NewReader(encoded), "application/json", out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, "", nil)
}

// Upload is a file part for multipart requests (chat attachments).
type Upload struct {
	Field    string
	FileName string
	Content  io.Reader
}

// PostMultipart issues a POST with form fields plus an optional file part.
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, upload *Upload, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("write form field %s: %w", key, err)
		}
	}
	if upload != nil {
		part, err := writer.CreateFormFile(upload.Field, upload.FileName)
		if err != nil {
			return fmt.Errorf("create form file: %w", err)
		}
		if _, err := io.Copy(part, upload.Content); err != nil {
			return fmt.Errorf("copy upload content: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	return c.do(ctx, http.MethodPost, path, nil, &buf, writer.FormDataContentType(), out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", c.language)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("Request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("Request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(started)))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			return &Error{Status: resp.StatusCode, Message: "unexpected response format"}
		}
	}

	if len(env.Errors) > 0 {
		return &ValidationError{Message: env.Message, Fields: env.Errors}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		return &Error{Status: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}
	return nil
}

// GetPage fetches one page of a collection. Every list endpoint wraps the
// items under its own key next to the pagination fields, so the collection
// name has to be passed in.
func GetPage[T any](ctx context.Context, c *Client, path, collection string, params *Params) (model.Page[T], error) {
	var page model.Page[T]

	var data json.RawMessage
	if err := c.Get(ctx, path, params.Values(), &data); err != nil {
		return page, err
	}

	if err := json.Unmarshal(data, &page.Meta); err != nil {
		return page, fmt.Errorf("decode page meta: %w", err)
	}

	var byKey map[string]json.RawMessage
	if err := json.Unmarshal(data, &byKey); err != nil {
		return page, fmt.Errorf("decode page body: %w", err)
	}
	itemsRaw, ok := byKey[collection]
	if !ok {
		return page, fmt.Errorf("collection %q missing from response", collection)
	}
	if err := json.Unmarshal(itemsRaw, &page.Items); err != nil {
		return page, fmt.Errorf("decode %s items: %w", collection, err)
	}

	return page, nil
}
