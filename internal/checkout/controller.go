package checkout

import (
	"context"
	"errors"

	"github.com/TTJ-s/qr-annujoom/internal/campaign"
	"github.com/TTJ-s/qr-annujoom/internal/i18n"
	"github.com/TTJ-s/qr-annujoom/internal/logger"
	"github.com/TTJ-s/qr-annujoom/internal/model"
	"github.com/TTJ-s/qr-annujoom/internal/payment"
)

// Controller wires the checkout collaborators and spawns per-attempt flows.
type Controller struct {
	opts      Options
	campaigns CampaignSource
	orders    OrderCreator
	verifier  Verifier
	gateways  payment.Registry
	referrals ReferralStore
	donations DonationRecorder
}

// NewController builds the checkout controller.
func NewController(
	opts Options,
	campaigns CampaignSource,
	orders OrderCreator,
	verifier Verifier,
	gateways payment.Registry,
	referrals ReferralStore,
	donations DonationRecorder,
) *Controller {
	if opts.Currency == "" {
		opts.Currency = "INR"
	}
	return &Controller{
		opts:      opts,
		campaigns: campaigns,
		orders:    orders,
		verifier:  verifier,
		gateways:  gateways,
		referrals: referrals,
		donations: donations,
	}
}

// NewFlow starts a fresh attempt for the given browser session.
func (c *Controller) NewFlow(sessionID string) *Flow {
	return &Flow{ctrl: c, state: StateIdle, sessionID: sessionID}
}

// Quotes returns the fee breakdown per enabled gateway for method selection.
func (c *Controller) Quotes(amount int64) map[payment.Method]payment.Quote {
	quotes := make(map[payment.Method]payment.Quote, len(c.gateways))
	for method, gw := range c.gateways {
		quotes[method] = gw.Quote(float64(amount))
	}
	return quotes
}

// ErrUnknownOrder means a gateway callback referenced no recorded donation.
var ErrUnknownOrder = errors.New("checkout: no donation recorded for order")

// Complete applies a gateway result that arrives in a later request than the
// one that created the order: it reloads the attempt from the donation
// ledger, verifies, and settles the record. Returns the campaign id so the
// caller can reload totals.
func (c *Controller) Complete(ctx context.Context, sessionID string, result payment.Result) (string, error) {
	if result.Kind != payment.ResultSuccess {
		// Cancelled or failed in the widget; the order stays open for the
		// reconcile job in case the provider captured it anyway.
		return "", &FlowError{Message: i18n.MsgPaymentCancelled}
	}

	donation, err := c.donations.FindByOrderID(ctx, result.OrderID)
	if err != nil {
		return "", ErrUnknownOrder
	}
	if donation.Status == model.DonationStatusVerified {
		// Duplicate callback; already settled.
		return donation.CampaignID, nil
	}

	gw, err := c.gateways.Get(payment.Method(donation.Gateway))
	if err != nil {
		return "", &FlowError{Message: i18n.MsgVerificationFailed, Err: err}
	}
	if !gw.VerifySignature(result.OrderID, result.PaymentID, result.Signature) {
		return "", &FlowError{Message: i18n.MsgVerificationFailed}
	}

	err = c.verifier.VerifyPayment(ctx, campaign.VerifyRequest{
		RazorpayOrderID:   result.OrderID,
		RazorpayPaymentID: result.PaymentID,
		RazorpaySignature: result.Signature,
		DonationID:        donation.UpstreamID,
	})
	if err != nil {
		return "", &FlowError{Message: i18n.MsgVerificationFailed, Err: err}
	}

	if _, err := c.donations.MarkVerified(ctx, result.OrderID, result.PaymentID, result.Signature); err != nil {
		logger.Error("Failed to mark donation verified for order %s: %v", result.OrderID, err)
	}
	if sessionID != "" {
		if err := c.referrals.ClearReferral(ctx, sessionID); err != nil {
			logger.Warn("Failed to clear referral for session %s: %v", sessionID, err)
		}
	}
	return donation.CampaignID, nil
}
