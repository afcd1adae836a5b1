package deploy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// ErrThrottled means a deploy was requested too soon after the last one.
var ErrThrottled = errors.New("deploy hook throttled")

// Hook posts to the hosting provider's deploy hook. At most one request is
// sent per minGap.
type Hook struct {
	url     string
	secret  string
	client  *http.Client
	limiter *rate.Limiter
}

func NewHook(url, secret string, minGap time.Duration) *Hook {
	return &Hook{
		url:     url,
		secret:  secret,
		client:  &http.Client{Timeout: 15 * time.Second},
		limiter: rate.NewLimiter(rate.Every(minGap), 1),
	}
}

type hookRequest struct {
	Secret string `json:"secret,omitempty"`
}

func (h *Hook) Trigger(ctx context.Context) error {
	if !h.limiter.Allow() {
		return ErrThrottled
	}

	body, err := json.Marshal(hookRequest{Secret: h.secret})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build deploy request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("post deploy hook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("deploy hook status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}
	return nil
}
