package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGatewayTransportSendText(t *testing.T) {
	var got textPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/send/text" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("Failed to decode payload: %v", err)
		}
	}))
	defer server.Close()

	transport := NewGatewayTransport(server.URL)
	if err := transport.SendText(context.Background(), "123@s.whatsapp.net", "hello"); err != nil {
		t.Fatalf("SendText failed: %v", err)
	}
	if got.To != "123@s.whatsapp.net" || got.Text != "hello" {
		t.Errorf("Gateway received %+v", got)
	}
}

func TestGatewayTransportSendMedia(t *testing.T) {
	var got mediaPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/send/media" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("Failed to decode payload: %v", err)
		}
	}))
	defer server.Close()

	transport := NewGatewayTransport(server.URL)
	if err := transport.SendMedia(context.Background(), "123@s.whatsapp.net", "https://example.com/a.jpg", "caption"); err != nil {
		t.Fatalf("SendMedia failed: %v", err)
	}
	if got.ImageURL != "https://example.com/a.jpg" || got.Caption != "caption" {
		t.Errorf("Gateway received %+v", got)
	}
}

func TestGatewayTransportErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	transport := NewGatewayTransport(server.URL)
	if err := transport.SendText(context.Background(), "u", "hi"); err == nil {
		t.Error("Expected error for a 502 from the gateway")
	}
}
