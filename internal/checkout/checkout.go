// Package checkout drives a donation attempt from form submission through
// gateway payment and verification. Each attempt is one Flow; nothing is
// retried automatically, every retry is a fresh submission.
package checkout

import (
	"context"

	"github.com/TTJ-s/qr-annujoom/internal/campaign"
	"github.com/TTJ-s/qr-annujoom/internal/i18n"
	"github.com/TTJ-s/qr-annujoom/internal/model"
)

// State is the attempt's position in the checkout lifecycle.
type State string

const (
	StateIdle            State = "idle"
	StateValidating      State = "validating"
	StateMethodSelection State = "method_selection"
	StateCreatingOrder   State = "creating_order"
	StateAwaitingGateway State = "awaiting_gateway"
	StateVerifying       State = "verifying"
	StateCompleted       State = "completed"
	StateFailed          State = "failed"
)

// Form is the donor's input for one attempt.
type Form struct {
	CampaignID string `json:"campaign_id"`
	Amount     int64  `json:"amount"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	// AddName marks that the donor chose to attach their name in the
	// simple flow variant.
	AddName bool `json:"add_name"`
}

func (f Form) empty() bool {
	return f.Amount == 0 && f.Name == "" && f.Phone == "" && f.Email == ""
}

// Options selects the flow variant.
type Options struct {
	// RequireContact makes name, phone and email mandatory. When false only
	// the amount is required, name only when the donor opted in.
	RequireContact bool
	Currency       string
}

// FlowError is a user-recoverable checkout failure carrying the bilingual
// message the UI shows.
type FlowError struct {
	Field   string
	Message i18n.LocalizedText
	Err     error
}

func (e *FlowError) Error() string {
	if e.Err != nil {
		return e.Message.EN + ": " + e.Err.Error()
	}
	return e.Message.EN
}

func (e *FlowError) Unwrap() error {
	return e.Err
}

// CampaignSource fetches campaign state; detail pages always reload from it.
type CampaignSource interface {
	Get(ctx context.Context, id string) (*model.Campaign, error)
}

// OrderCreator creates the donation order on the backend.
type OrderCreator interface {
	CreateDonationOrder(ctx context.Context, order campaign.OrderRequest) (*campaign.OrderResult, error)
}

// Verifier confirms a completed gateway payment.
type Verifier interface {
	VerifyPayment(ctx context.Context, verify campaign.VerifyRequest) error
}

// ReferralStore is the persisted referral code captured from the route path.
type ReferralStore interface {
	ReferredBy(ctx context.Context, sessionID string) (string, error)
	ClearReferral(ctx context.Context, sessionID string) error
}

// DonationRecorder keeps the local donation ledger in step with the attempt.
type DonationRecorder interface {
	RecordOrder(ctx context.Context, d *model.Donation) error
	MarkVerified(ctx context.Context, orderID, paymentID, signature string) (*model.Donation, error)
	MarkFailed(ctx context.Context, orderID string) error
	FindByOrderID(ctx context.Context, orderID string) (*model.Donation, error)
}
