// Package classifier adapts an external text-classification endpoint that
// scores free text on a star-rating-like scale. The endpoint is a black
// box: every failure is absorbed into a neutral label.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/kikuu-commerce/storefront/internal/core/domain"
	"github.com/kikuu-commerce/storefront/internal/core/port"
)

const defaultTimeout = 15 * time.Second

type Client struct {
	endpoint string
	httpc    *http.Client
}

var _ port.Classifier = (*Client)(nil)

type Opt func(*Client)

func TimeoutOpt(d time.Duration) Opt {
	return func(c *Client) { c.httpc.Timeout = d }
}

func New(endpoint string, opts ...Opt) *Client {
	c := &Client{
		endpoint: endpoint,
		httpc:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify maps text to a sentiment bucket. Empty input short-circuits to
// neutral without touching the endpoint; any failure also yields neutral
// and never propagates.
func (c *Client) Classify(ctx context.Context, text string) domain.Sentiment {
	const op = "classifier.Client.Classify"
	log := slog.With("op", op)

	if strings.TrimSpace(text) == "" {
		return domain.SentimentNeutral
	}

	stars, err := c.classify(ctx, text)
	if err != nil {
		log.Warn("classification failed, falling back to neutral", "err", err)
		return domain.SentimentNeutral
	}
	return domain.SentimentFromStars(stars)
}

type classification struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func (c *Client) classify(ctx context.Context, text string) (int, error) {
	body, err := json.Marshal(struct {
		Inputs string `json:"inputs"`
	}{text})
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.endpoint, bytes.NewReader(body),
	)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("endpoint responded %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, err
	}

	top, err := topResult(raw)
	if err != nil {
		return 0, err
	}
	return starsFromLabel(top.Label)
}

// topResult handles both response shapes the pipeline produces: a flat
// result list and a list nested per input.
func topResult(raw []byte) (classification, error) {
	var flat []classification
	if err := json.Unmarshal(raw, &flat); err == nil && len(flat) > 0 {
		return flat[0], nil
	}

	var nested [][]classification
	if err := json.Unmarshal(raw, &nested); err == nil &&
		len(nested) > 0 && len(nested[0]) > 0 {
		return nested[0][0], nil
	}

	return classification{}, fmt.Errorf("no classification result in %q", raw)
}

// starsFromLabel parses the leading star count from labels like "5 stars".
func starsFromLabel(label string) (int, error) {
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty label")
	}
	stars, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("unexpected label %q: %w", label, err)
	}
	return stars, nil
}
