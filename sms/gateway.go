package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Gateway is the external SMS provider. One call delivers the whole batch.
type Gateway interface {
	Send(ctx context.Context, phoneNumbers []string, message string) (json.RawMessage, error)
}

type sendRequest struct {
	Data sendRequestData `json:"data"`
}

type sendRequestData struct {
	SenderID     string   `json:"sender_id"`
	Message      string   `json:"message"`
	PhoneNumbers []string `json:"phone_numbers"`
}

// HTTPGateway posts message batches to a ujumbe-style messaging endpoint.
type HTTPGateway struct {
	BaseURL  string
	APIKey   string
	SenderID string
	Client   *http.Client
}

func NewHTTPGatewayFromEnv() *HTTPGateway {
	baseURL := os.Getenv("SMS_GATEWAY_URL")
	if baseURL == "" {
		baseURL = "https://ujumbe.co.ke/api/messaging"
	}

	return &HTTPGateway{
		BaseURL:  baseURL,
		APIKey:   os.Getenv("SMS_API_KEY"),
		SenderID: os.Getenv("SMS_SENDER_ID"),
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *HTTPGateway) Send(ctx context.Context, phoneNumbers []string, message string) (json.RawMessage, error) {
	payload := sendRequest{
		Data: sendRequestData{
			SenderID:     g.SenderID,
			Message:      message,
			PhoneNumbers: phoneNumbers,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode gateway request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.BaseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	ack, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gateway response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, string(ack))
	}

	return json.RawMessage(ack), nil
}
