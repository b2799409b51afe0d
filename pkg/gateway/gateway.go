package gateway

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Gateway abstracts the external payment provider. CreateOrder registers a
// payable amount with the provider and returns its opaque order reference;
// VerifySignature checks a payment confirmation against the provider's
// HMAC scheme.
type Gateway interface {
	CreateOrder(amountMinorUnits int64, currency, receipt string) (string, error)
	VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool
}

// Client talks to the real payment provider over HTTP with basic auth.
type Client struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a gateway client.
func NewClient(keyID, keySecret, baseURL string) *Client {
	return &Client{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type createOrderRequest struct {
	Amount         int64  `json:"amount"` // minor units
	Currency       string `json:"currency"`
	Receipt        string `json:"receipt"`
	PaymentCapture int    `json:"payment_capture"`
}

type createOrderResponse struct {
	ID string `json:"id"`
}

// CreateOrder registers an order with the provider and returns its reference.
func (c *Client) CreateOrder(amountMinorUnits int64, currency, receipt string) (string, error) {
	payload, err := json.Marshal(createOrderRequest{
		Amount:         amountMinorUnits,
		Currency:       currency,
		Receipt:        receipt,
		PaymentCapture: 1,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal gateway order request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/v1/orders", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gateway order create failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("gateway order create returned status %d", resp.StatusCode)
	}

	var body createOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode gateway response: %w", err)
	}
	if body.ID == "" {
		return "", fmt.Errorf("gateway response missing order id")
	}
	return body.ID, nil
}

// VerifySignature checks the confirmation signature: HMAC-SHA256 of
// "<orderID>|<paymentID>" keyed with the API secret, hex encoded.
func (c *Client) VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// Mock is a deterministic stand-in for environments without gateway
// credentials. It never performs network I/O and accepts any signature.
type Mock struct{}

// CreateOrder fabricates a gateway-looking order reference.
func (Mock) CreateOrder(amountMinorUnits int64, currency, receipt string) (string, error) {
	ref := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return "order_mock_" + ref, nil
}

// VerifySignature accepts anything; mock mode has no cryptographic checking.
func (Mock) VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool {
	return true
}

// IsMockKey reports whether a configured key id is a placeholder, in which
// case the mock gateway is used instead of the real provider.
func IsMockKey(keyID string) bool {
	return strings.HasPrefix(keyID, "mock_") ||
		strings.Contains(strings.ToUpper(keyID), "YOUR") ||
		len(keyID) < 5
}
