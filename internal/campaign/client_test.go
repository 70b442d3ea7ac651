package campaign

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second)
}

func writeEnvelope(w http.ResponseWriter, httpStatus, status int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func TestListCampaigns(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/campaign/list-campaigns", r.URL.Path)
		writeEnvelope(w, 200, 200, "ok", []map[string]interface{}{
			{
				"_id":              "c1",
				"category":         "Zakat",
				"title":            map[string]string{"en": "Zakat Fund", "ml": "സകാത്ത്"},
				"collected_amount": 12500,
				"status":           "active",
				"approval_status":  "approved",
			},
		})
	})

	campaigns, err := client.List(context.Background())
	require.NoError(t, err)
	require.Len(t, campaigns, 1)
	assert.Equal(t, "c1", campaigns[0].ID)
	assert.Equal(t, "Zakat Fund", campaigns[0].Title.EN)
	assert.Equal(t, 12500.0, campaigns[0].CollectedAmount)
	assert.True(t, campaigns[0].Visible())
}

func TestGetCampaignNotFound(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 404, 404, "Campaign not found", nil)
	})

	_, err := client.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServerFailureEnvelope(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 200, 500, "something broke upstream", nil)
	})

	_, err := client.List(context.Background())
	require.ErrorIs(t, err, ErrServer)
	// The upstream message is surfaced to the user.
	assert.Contains(t, err.Error(), "something broke upstream")
}

func TestUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(url, time.Second)
	_, err := client.List(context.Background())
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestMalformedPayload(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 200, 200, "ok", "not-a-campaign-list")
	})

	_, err := client.List(context.Background())
	assert.ErrorIs(t, err, ErrServer)
}

func TestCreateDonationOrder(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/donation/outside-app-donation", r.URL.Path)

		var req OrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "c1", req.Campaign)
		assert.Equal(t, 1020.0, req.Amount)
		assert.Equal(t, "INR", req.Currency)
		assert.Equal(t, "ref-42", req.ReferredBy)

		writeEnvelope(w, 200, 200, "ok", map[string]string{
			"_id":        "don-1",
			"payment_id": "order_xyz",
		})
	})

	order, err := client.CreateDonationOrder(context.Background(), OrderRequest{
		Campaign:   "c1",
		Amount:     1020,
		Currency:   "INR",
		Gateway:    "razorpay",
		ReferredBy: "ref-42",
	})
	require.NoError(t, err)
	assert.Equal(t, "don-1", order.DonationID)
	assert.Equal(t, "order_xyz", order.PaymentID)
}

func TestVerifyPayment(t *testing.T) {
	var got VerifyRequest
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/donation/verify-payment", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeEnvelope(w, 200, 200, "verified", nil)
	})

	err := client.VerifyPayment(context.Background(), VerifyRequest{
		RazorpayOrderID:   "order_xyz",
		RazorpayPaymentID: "pay_abc",
		RazorpaySignature: "sig",
		DonationID:        "don-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "don-1", got.DonationID)
}
