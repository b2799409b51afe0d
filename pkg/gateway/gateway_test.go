package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestClientVerifySignature(t *testing.T) {
	client := NewClient("key", "s3cret", "https://gateway.invalid")

	good := sign("s3cret", "order_1", "pay_1")
	assert.True(t, client.VerifySignature("order_1", "pay_1", good))

	assert.False(t, client.VerifySignature("order_1", "pay_1", "deadbeef"))
	assert.False(t, client.VerifySignature("order_2", "pay_1", good))
	wrongKey := sign("other", "order_1", "pay_1")
	assert.False(t, client.VerifySignature("order_1", "pay_1", wrongKey))
}

func TestClientCreateOrder(t *testing.T) {
	var gotAuthUser, gotAuthPass string
	var gotBody createOrderRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/orders", r.URL.Path)
		gotAuthUser, gotAuthPass, _ = r.BasicAuth()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]string{"id": "order_xyz"})
	}))
	defer server.Close()

	client := NewClient("key", "secret", server.URL)
	id, err := client.CreateOrder(49999, "INR", "order_abc")
	require.NoError(t, err)

	assert.Equal(t, "order_xyz", id)
	assert.Equal(t, "key", gotAuthUser)
	assert.Equal(t, "secret", gotAuthPass)
	assert.Equal(t, int64(49999), gotBody.Amount)
	assert.Equal(t, "INR", gotBody.Currency)
	assert.Equal(t, "order_abc", gotBody.Receipt)
	assert.Equal(t, 1, gotBody.PaymentCapture)
}

func TestClientCreateOrder_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"auth failed"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient("key", "wrong", server.URL)
	_, err := client.CreateOrder(100, "INR", "r")
	assert.Error(t, err)
}

func TestClientCreateOrder_MissingID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient("key", "secret", server.URL)
	_, err := client.CreateOrder(100, "INR", "r")
	assert.Error(t, err)
}

func TestMockGateway(t *testing.T) {
	mock := Mock{}

	id, err := mock.CreateOrder(100, "INR", "r")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "order_mock_"))
	assert.Len(t, id, len("order_mock_")+8)

	other, err := mock.CreateOrder(100, "INR", "r")
	require.NoError(t, err)
	assert.NotEqual(t, id, other)

	assert.True(t, mock.VerifySignature("anything", "goes", "here"))
}

func TestIsMockKey(t *testing.T) {
	cases := []struct {
		keyID string
		want  bool
	}{
		{"mock_key", true},
		{"YOUR_KEY_ID", true},
		{"rzp_your_key_here", true},
		{"abc", true},
		{"", true},
		{"rzp_live_abc123", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsMockKey(tc.keyID), tc.keyID)
	}
}
