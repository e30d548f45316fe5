package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const gatewayTimeout = 10 * time.Second

// GatewayTransport sends replies to the external WhatsApp gateway
// process over HTTP.
type GatewayTransport struct {
	baseURL string
	client  *http.Client
}

func NewGatewayTransport(baseURL string) *GatewayTransport {
	return &GatewayTransport{
		baseURL: baseURL,
		client:  &http.Client{Timeout: gatewayTimeout},
	}
}

type textPayload struct {
	To   string `json:"to"`
	Text string `json:"text"`
}

type mediaPayload struct {
	To       string `json:"to"`
	ImageURL string `json:"image_url"`
	Caption  string `json:"caption"`
}

func (t *GatewayTransport) SendText(ctx context.Context, to, text string) error {
	return t.post(ctx, "/send/text", textPayload{To: to, Text: text})
}

func (t *GatewayTransport) SendMedia(ctx context.Context, to, imageURL, caption string) error {
	return t.post(ctx, "/send/media", mediaPayload{To: to, ImageURL: imageURL, Caption: caption})
}

func (t *GatewayTransport) post(ctx context.Context, path string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode gateway payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", t.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach whatsapp gateway: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("whatsapp gateway returned status %d", resp.StatusCode)
	}
	return nil
}
