package campaign

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/TTJ-s/qr-annujoom/internal/model"
	"github.com/go-resty/resty/v2"
)

// Typed failures of the campaign data source.
var (
	ErrNotFound    = errors.New("campaign not found")
	ErrUnreachable = errors.New("unable to reach server")
	ErrServer      = errors.New("server error")
)

// Client talks to the campaign backend. All calls share one request timeout.
type Client struct {
	http *resty.Client
}

// NewClient builds a client for the given backend base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Content-Type", "application/json"),
	}
}

// envelope is the backend's uniform response shape.
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do runs one request and decodes the success payload into out.
func (c *Client) do(ctx context.Context, out interface{}, call func(r *resty.Request) (*resty.Response, error)) error {
	var env envelope
	req := c.http.R().SetContext(ctx).SetResult(&env).SetError(&env)

	resp, err := call(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	if resp.IsError() || env.Status != http.StatusOK {
		msg := env.Message
		if msg == "" {
			msg = resp.Status()
		}
		if resp.StatusCode() == http.StatusNotFound {
			return fmt.Errorf("%w: %s", ErrNotFound, msg)
		}
		return fmt.Errorf("%w: %s", ErrServer, msg)
	}

	if out != nil {
		if len(env.Data) == 0 || string(env.Data) == "null" {
			return fmt.Errorf("%w: empty response payload", ErrServer)
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%w: malformed response payload: %v", ErrServer, err)
		}
	}
	return nil
}

// List fetches every campaign known to the backend.
func (c *Client) List(ctx context.Context) ([]model.Campaign, error) {
	var campaigns []model.Campaign
	err := c.do(ctx, &campaigns, func(r *resty.Request) (*resty.Response, error) {
		return r.Get("/campaign/list-campaigns")
	})
	if err != nil {
		return nil, err
	}
	return campaigns, nil
}

// Get fetches one campaign by id, ErrNotFound when it does not exist.
func (c *Client) Get(ctx context.Context, id string) (*model.Campaign, error) {
	var campaign model.Campaign
	err := c.do(ctx, &campaign, func(r *resty.Request) (*resty.Response, error) {
		return r.Get("/campaign/single-campaign/" + id)
	})
	if err != nil {
		return nil, err
	}
	if campaign.ID == "" {
		return nil, ErrNotFound
	}
	return &campaign, nil
}

// OutsideUser is the donor identity attached to an order.
type OutsideUser struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// OrderRequest creates a donation plus a gateway order on the backend.
// Amount is the total payable, fee already applied.
type OrderRequest struct {
	Campaign    string       `json:"campaign"`
	Amount      float64      `json:"amount"`
	Currency    string       `json:"currency"`
	Gateway     string       `json:"gateway"`
	OutsideUser *OutsideUser `json:"outside_user,omitempty"`
	ReferredBy  string       `json:"referred_by,omitempty"`
}

// OrderResult carries the backend's identifiers for the new donation.
// PaymentID is the provider order id the widget opens with; PaymentURL is
// the hosted page for redirect gateways.
type OrderResult struct {
	DonationID string `json:"_id"`
	PaymentID  string `json:"payment_id"`
	PaymentURL string `json:"payment_url"`
}

// CreateDonationOrder registers a donation and creates the gateway order.
func (c *Client) CreateDonationOrder(ctx context.Context, order OrderRequest) (*OrderResult, error) {
	var result OrderResult
	err := c.do(ctx, &result, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(order).Post("/donation/outside-app-donation")
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// VerifyRequest confirms a completed gateway payment against a donation.
type VerifyRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	DonationID        string `json:"donation_id"`
}

// VerifyPayment asks the backend to verify the gateway transaction.
func (c *Client) VerifyPayment(ctx context.Context, verify VerifyRequest) error {
	return c.do(ctx, nil, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(verify).Post("/donation/verify-payment")
	})
}
