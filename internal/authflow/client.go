package authflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const clientTimeout = 15 * time.Second

// GatewayError is a send-otp/verify-otp call that came back with an error
// status: malformed input as judged by the gateway, or a provider failure it
// passed through. Distinct from a denied code, which is a normal result.
type GatewayError struct {
	Status  int
	Message string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway error (status %d): %s", e.Status, e.Message)
}

// GatewayClient is the HTTP/JSON client for the OTP gateway's two operations.
type GatewayClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewGatewayClient(baseURL string) *GatewayClient {
	return &GatewayClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: clientTimeout},
	}
}

type gatewayResponse struct {
	Success bool   `json:"success"`
	Sid     string `json:"sid"`
	Error   string `json:"error"`
}

// SendOTP asks the gateway to text a code to the phone. Returns the
// verification SID.
func (c *GatewayClient) SendOTP(ctx context.Context, phone string) (string, error) {
	out, err := c.post(ctx, "/send-otp", map[string]string{"phone": phone})
	if err != nil {
		return "", err
	}
	return out.Sid, nil
}

// VerifyOTP submits the code. A denied code is (false, nil); errors mean the
// gateway or provider failed and the verdict is unknown.
func (c *GatewayClient) VerifyOTP(ctx context.Context, phone, code string) (bool, error) {
	out, err := c.post(ctx, "/verify-otp", map[string]string{"phone": phone, "code": code})
	if err != nil {
		return false, err
	}
	return out.Success, nil
}

func (c *GatewayClient) post(ctx context.Context, path string, payload map[string]string) (*gatewayResponse, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out gatewayResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("parse gateway response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := out.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &GatewayError{Status: resp.StatusCode, Message: msg}
	}
	return &out, nil
}
