// Package api is the HTTP client for the rental marketplace REST API. It
// normalizes the wire shapes (camelCase payloads, string-or-number money)
// into domain types at the boundary and maps response statuses onto the
// shared error taxonomy. Nothing here retries: every failure is terminal for
// the user action that caused it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"rentkart-storefront/internal/domain"
	"rentkart-storefront/internal/logger"
)

// fallbackMessage is shown when the server rejects a request without a
// usable message field.
const fallbackMessage = "something went wrong, please try again"

// TokenSource supplies the bearer token for outgoing requests. An empty
// token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

type errorPayload struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %v", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	logger.APICall(method, path)
	resp, err := c.http.Do(req)
	if err != nil {
		logger.APIResult(method, path, 0, err)
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		io.Copy(io.Discard, resp.Body)
		logger.APIResult(method, path, resp.StatusCode, domain.ErrAuthRequired)
		return domain.ErrAuthRequired
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := fallbackMessage
		var payload errorPayload
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Message != "" {
			message = payload.Message
		}
		serverErr := &domain.ServerError{StatusCode: resp.StatusCode, Message: message}
		logger.APIResult(method, path, resp.StatusCode, serverErr)
		return serverErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			logger.APIResult(method, path, resp.StatusCode, err)
			return fmt.Errorf("failed to decode response: %v", err)
		}
	} else {
		io.Copy(io.Discard, resp.Body)
	}
	logger.APIResult(method, path, resp.StatusCode, nil)
	return nil
}
