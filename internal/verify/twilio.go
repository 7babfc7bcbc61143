package verify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://verify.twilio.com"
	defaultTimeout = 15 * time.Second

	// Every login phone is an Indian mobile number; the country code is fixed
	// and prepended here, never entered by the user.
	countryCode = "+91"

	smsChannel = "sms"

	dryRunSID  = "VE00000000000000000000000000000000"
	dryRunCode = "123456"
)

// ProviderError is any failure reported by (or on the way to) the verification
// provider. The message is passed through opaquely; provider-specific error
// codes are not interpreted here.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string { return e.Message }

// Client calls the Twilio Verify REST API. A zero AccountSID (or DryRun)
// switches to dry-run mode: no HTTP call is made, sends are logged and the
// fixed code 123456 is approved on check.
type Client struct {
	AccountSID string
	AuthToken  string
	ServiceSID string
	BaseURL    string
	DryRun     bool
	HTTPClient *http.Client

	log *zap.SugaredLogger
}

func NewClient(accountSID, authToken, serviceSID string, dryRun bool, log *zap.SugaredLogger) *Client {
	return &Client{
		AccountSID: accountSID,
		AuthToken:  authToken,
		ServiceSID: serviceSID,
		BaseURL:    defaultBaseURL,
		DryRun:     dryRun,
		HTTPClient: &http.Client{Timeout: defaultTimeout},
		log:        log,
	}
}

func (c *Client) dryRun() bool {
	return c.DryRun || c.AccountSID == ""
}

type verificationResponse struct {
	Sid    string `json:"sid"`
	Status string `json:"status"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// StartVerification asks the provider to text an OTP to the phone over the sms
// channel. phone must already be 10 digits; the country code is prefixed here.
// Returns the provider's verification SID.
func (c *Client) StartVerification(ctx context.Context, phone string) (string, error) {
	if c.dryRun() {
		c.log.Infof("[verify][dry-run] send to=%s%s channel=%s", countryCode, phone, smsChannel)
		return dryRunSID, nil
	}

	form := url.Values{
		"To":      {countryCode + phone},
		"Channel": {smsChannel},
	}
	endpoint := fmt.Sprintf("%s/v2/Services/%s/Verifications", c.BaseURL, c.ServiceSID)

	var out verificationResponse
	if err := c.post(ctx, endpoint, form, &out); err != nil {
		return "", err
	}
	return out.Sid, nil
}

// CheckVerification submits the code the user typed. Returns true only when
// the provider reports the verification as approved; a wrong or expired code
// is a plain false, not an error.
func (c *Client) CheckVerification(ctx context.Context, phone, code string) (bool, error) {
	if c.dryRun() {
		approved := code == dryRunCode
		c.log.Infof("[verify][dry-run] check to=%s%s approved=%v", countryCode, phone, approved)
		return approved, nil
	}

	form := url.Values{
		"To":   {countryCode + phone},
		"Code": {code},
	}
	endpoint := fmt.Sprintf("%s/v2/Services/%s/VerificationCheck", c.BaseURL, c.ServiceSID)

	var out verificationResponse
	if err := c.post(ctx, endpoint, form, &out); err != nil {
		return false, err
	}
	return out.Status == "approved", nil
}

// post performs one authenticated form POST and decodes the JSON response.
// Any failure, transport or provider-side, comes back as a *ProviderError; no
// retries happen at this layer.
func (c *Client) post(ctx context.Context, endpoint string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return &ProviderError{Message: err.Error()}
	}
	req.SetBasicAuth(c.AccountSID, c.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &ProviderError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr errorResponse
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
			return &ProviderError{Message: apiErr.Message}
		}
		return &ProviderError{Message: fmt.Sprintf("verify request failed status=%d", resp.StatusCode)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &ProviderError{Message: fmt.Sprintf("parse verify response: %v", err)}
	}
	return nil
}
