package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kikuu-commerce/storefront/internal/core/domain"
	"github.com/kikuu-commerce/storefront/internal/core/port"
)

const defaultTimeout = 10 * time.Second

// Client is the single point of HTTP egress. Every call is single-attempt:
// no retry, no backoff, no caching, no deduplication. The access token is
// read from the token source per request, so a refreshed token takes effect
// immediately.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  port.TokenSource
}

var _ port.Gateway = (*Client)(nil)

type Opt func(*Client)

func TimeoutOpt(d time.Duration) Opt {
	return func(c *Client) { c.httpc.Timeout = d }
}

func HTTPClientOpt(h *http.Client) Opt {
	return func(c *Client) { c.httpc = h }
}

func New(baseURL string, tokens port.TokenSource, opts ...Opt) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: defaultTimeout},
		tokens:  tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(
	ctx context.Context,
	method, path string,
	query url.Values,
	body, out any,
) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if tok := c.tokens.AccessToken(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.apiError(resp, req.Header.Get("X-Request-ID"))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

func (c *Client) apiError(resp *http.Response, requestID string) error {
	const op = "rest.Client"
	log := slog.With("op", op)

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var payload struct {
		Detail  string `json:"detail"`
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	detail := ""
	if err := json.Unmarshal(raw, &payload); err == nil {
		switch {
		case payload.Detail != "":
			detail = payload.Detail
		case payload.Error != "":
			detail = payload.Error
		case payload.Message != "":
			detail = payload.Message
		}
	}
	if detail == "" {
		detail = strings.TrimSpace(string(raw))
	}

	log.Warn("backend error",
		"status", resp.StatusCode, "requestID", requestID)

	apiErr := &domain.APIError{Status: resp.StatusCode, Detail: detail}
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %w", domain.ErrUnauthorized, apiErr)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", domain.ErrNotFound, apiErr)
	}
	return apiErr
}
