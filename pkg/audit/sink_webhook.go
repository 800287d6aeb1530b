package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/promptward/promptward/pkg/httputil"
)

// WebhookSink posts events to an external endpoint. It is the delivery
// channel behind block_notify: the upstream operator gets pinged when a
// critical message was stopped.
type WebhookSink struct {
	url string
	// NotifyOnly restricts delivery to events whose action is
	// block_notify; all other events are acknowledged silently.
	NotifyOnly bool
}

// NewWebhookSink builds a sink posting JSON events to url.
func NewWebhookSink(url string) *WebhookSink {
	return &WebhookSink{url: url, NotifyOnly: true}
}

func (s *WebhookSink) Name() string { return "webhook" }

func (s *WebhookSink) Deliver(ctx context.Context, event Event) error {
	if s.NotifyOnly && event.Action != "block_notify" {
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httputil.Client(httputil.TierMedium).Do(req)
	if err != nil {
		return err
	}
	defer httputil.DrainAndClose(resp.Body)

	if resp.StatusCode >= 300 {
		body, _ := httputil.ReadResponseBody(resp.Body, 512)
		return fmt.Errorf("webhook status %d: %s", resp.StatusCode, body)
	}
	return nil
}

func (s *WebhookSink) Close() error { return nil }
