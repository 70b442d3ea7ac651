package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/TTJ-s/qr-annujoom/internal/campaign"
	"github.com/TTJ-s/qr-annujoom/internal/checkout"
	"github.com/TTJ-s/qr-annujoom/internal/i18n"
	"github.com/TTJ-s/qr-annujoom/internal/model"
	"github.com/TTJ-s/qr-annujoom/internal/payment"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testSession replaces the cookie middleware with a fixed session and
// language for the request.
func testSession(lang i18n.Language) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(sessionCtxKey, "sess-test")
		c.Set(languageCtxKey, lang)
		c.Next()
	}
}

const backendList = `{
	"status": 200,
	"message": "ok",
	"data": [
		{
			"_id": "c1",
			"category": "Zakat",
			"title": {"en": "Zakat Fund", "ml": "സകാത്ത് ഫണ്ട്"},
			"description": {"en": "Give zakat"},
			"collected_amount": 1000,
			"status": "active",
			"approval_status": "approved"
		},
		{
			"_id": "c2",
			"category": "General Campaign",
			"title": {"en": "Masjid Renovation"},
			"description": {"en": "Rebuild the prayer hall"},
			"collected_amount": 25000,
			"target_amount": 100000,
			"target_date": "2026-03-15T00:00:00Z",
			"status": "active",
			"approval_status": "approved"
		}
	]
}`

func newCampaignRouter(t *testing.T, upstream http.HandlerFunc, lang i18n.Language) *gin.Engine {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	h := NewCampaignHandler(campaign.NewClient(srv.URL, 2*time.Second))
	r := gin.New()
	r.Use(testSession(lang))
	r.GET("/api/v1/campaigns", h.GetCategories)
	r.GET("/api/v1/campaigns/general", h.GetGeneral)
	r.GET("/api/v1/campaigns/:id", h.GetCampaign)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestGetCategories(t *testing.T) {
	r := newCampaignRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(backendList))
	}, i18n.English)

	w, resp := doJSON(t, r, http.MethodGet, "/api/v1/campaigns", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, resp.Success)

	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var cards []CategoryCard
	require.NoError(t, json.Unmarshal(raw, &cards))
	require.Len(t, cards, 2)
	assert.Equal(t, "c1", cards[0].CampaignID)
	assert.Equal(t, "Zakat", cards[0].Category)
	// The backend has no cover image, so the card falls back to artwork.
	assert.NotEmpty(t, cards[0].Image)
}

func TestGetGeneralSingleRedirect(t *testing.T) {
	r := newCampaignRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(backendList))
	}, i18n.English)

	w, resp := doJSON(t, r, http.MethodGet, "/api/v1/campaigns/general", "")
	require.Equal(t, http.StatusOK, w.Code)

	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var general GeneralCampaignsResponse
	require.NoError(t, json.Unmarshal(raw, &general))
	// Exactly one general campaign is live, so the caller is redirected.
	assert.Equal(t, "/campaign/c2", general.RedirectTo)
	assert.Empty(t, general.Campaigns)
}

func TestGetCampaignNotFoundLocalised(t *testing.T) {
	r := newCampaignRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status":404,"message":"Campaign not found","data":null}`))
	}, i18n.Malayalam)

	w, resp := doJSON(t, r, http.MethodGet, "/api/v1/campaigns/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, i18n.MsgCampaignNotFound.ML, resp.Message)
}

func TestGetCampaignUpstreamDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	h := NewCampaignHandler(campaign.NewClient(srv.URL, time.Second))
	r := gin.New()
	r.Use(testSession(i18n.English))
	r.GET("/api/v1/campaigns/:id", h.GetCampaign)

	w, resp := doJSON(t, r, http.MethodGet, "/api/v1/campaigns/c1", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.False(t, resp.Success)
}

// Checkout handler fakes. Only what Quote needs.

type staticCampaigns struct{ c *model.Campaign }

func (s staticCampaigns) Get(context.Context, string) (*model.Campaign, error) { return s.c, nil }

type noOrders struct{ calls int }

func (n *noOrders) CreateDonationOrder(context.Context, campaign.OrderRequest) (*campaign.OrderResult, error) {
	n.calls++
	return &campaign.OrderResult{DonationID: "don-1", PaymentID: "order_1"}, nil
}

type noVerifier struct{}

func (noVerifier) VerifyPayment(context.Context, campaign.VerifyRequest) error { return nil }

type noReferrals struct{}

func (noReferrals) ReferredBy(context.Context, string) (string, error) { return "", nil }
func (noReferrals) ClearReferral(context.Context, string) error        { return nil }

type noDonations struct{}

func (noDonations) RecordOrder(context.Context, *model.Donation) error { return nil }
func (noDonations) MarkVerified(context.Context, string, string, string) (*model.Donation, error) {
	return nil, nil
}
func (noDonations) MarkFailed(context.Context, string) error { return nil }
func (noDonations) FindByOrderID(context.Context, string) (*model.Donation, error) {
	return nil, checkout.ErrUnknownOrder
}

func newCheckoutRouter(t *testing.T, lang i18n.Language) (*gin.Engine, *noOrders) {
	t.Helper()
	orders := &noOrders{}
	ctrl := checkout.NewController(
		checkout.Options{RequireContact: true},
		staticCampaigns{c: &model.Campaign{
			ID:             "c1",
			Category:       model.CategoryZakat,
			Title:          i18n.LocalizedText{EN: "Zakat Fund"},
			Status:         model.CampaignStatusActive,
			ApprovalStatus: model.ApprovalStatusApproved,
		}},
		orders,
		noVerifier{},
		payment.Registry{
			payment.MethodRazorpay: payment.NewRazorpay("rzp_test_key", "secret"),
			payment.MethodMswipe:   payment.NewMswipe(),
		},
		noReferrals{},
		noDonations{},
	)

	h := NewCheckoutHandler(ctrl)
	r := gin.New()
	r.Use(testSession(lang))
	r.POST("/api/v1/checkout/quote", h.Quote)
	r.POST("/api/v1/checkout/cancel", h.Cancel)
	return r, orders
}

func TestQuoteReturnsBothMethods(t *testing.T) {
	r, orders := newCheckoutRouter(t, i18n.English)

	body := `{"campaign_id":"c1","amount":1000,"name":"Fathima","phone":"9876543210","email":"f@example.com"}`
	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/checkout/quote", body)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, resp.Success)

	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var quote QuoteResponse
	require.NoError(t, json.Unmarshal(raw, &quote))
	assert.Equal(t, 1020.0, quote.Quotes[payment.MethodRazorpay].Total)
	assert.Equal(t, 1000.0, quote.Quotes[payment.MethodMswipe].Total)
	// Quoting never creates an order.
	assert.Zero(t, orders.calls)
}

func TestQuoteInvalidPhoneLocalised(t *testing.T) {
	r, orders := newCheckoutRouter(t, i18n.Malayalam)

	body := `{"campaign_id":"c1","amount":1000,"name":"Fathima","phone":"12345","email":"f@example.com"}`
	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/checkout/quote", body)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, i18n.MsgInvalidPhone.ML, resp.Message)
	assert.Zero(t, orders.calls)
}

func TestCancelKeepsFormOnClient(t *testing.T) {
	r, _ := newCheckoutRouter(t, i18n.English)

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/checkout/cancel", "{}")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, i18n.MsgPaymentCancelled.EN, resp.Message)
}
