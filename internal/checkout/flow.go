package checkout

import (
	"context"
	"errors"

	"github.com/TTJ-s/qr-annujoom/internal/campaign"
	"github.com/TTJ-s/qr-annujoom/internal/i18n"
	"github.com/TTJ-s/qr-annujoom/internal/logger"
	"github.com/TTJ-s/qr-annujoom/internal/model"
	"github.com/TTJ-s/qr-annujoom/internal/payment"
	"github.com/TTJ-s/qr-annujoom/internal/validate"
)

// ErrBadState means a transition was driven out of order.
var ErrBadState = errors.New("checkout: transition not allowed in current state")

// Flow is one donation attempt's state machine.
type Flow struct {
	ctrl  *Controller
	state State

	sessionID string
	form      Form
	campaign  *model.Campaign
	method    payment.Method
	quote     payment.Quote
	order     *campaign.OrderResult
	handle    *Handle
}

// State reports the attempt's current lifecycle position.
func (f *Flow) State() State {
	return f.state
}

// Quote reports the fee breakdown once a method has been chosen.
func (f *Flow) Quote() payment.Quote {
	return f.quote
}

// Order reports the created order once past CreatingOrder.
func (f *Flow) Order() *campaign.OrderResult {
	return f.order
}

// Submit validates the form and moves the attempt to method selection.
// An all-empty form short-circuits to the generic message; otherwise fields
// are checked independently and the first failure wins. Validation never
// reaches order creation.
func (f *Flow) Submit(ctx context.Context, form Form) error {
	if f.state != StateIdle {
		return ErrBadState
	}
	f.state = StateValidating

	if form.empty() {
		f.state = StateIdle
		return &FlowError{Message: i18n.MsgFillRequiredFields}
	}

	if err := f.validateForm(form); err != nil {
		f.state = StateIdle
		return err
	}

	c, err := f.ctrl.campaigns.Get(ctx, form.CampaignID)
	if err != nil {
		f.state = StateIdle
		if errors.Is(err, campaign.ErrNotFound) {
			return &FlowError{Message: i18n.MsgCampaignNotFound, Err: err}
		}
		return &FlowError{Message: i18n.MsgPaymentFailed, Err: err}
	}
	if c.TargetReached() {
		f.state = StateIdle
		return &FlowError{Message: i18n.MsgTargetReached}
	}

	f.form = form
	f.campaign = c
	f.state = StateMethodSelection
	return nil
}

func (f *Flow) validateForm(form Form) error {
	if err := validate.Amount(form.Amount); err != nil {
		return fieldError(err)
	}
	if f.ctrl.opts.RequireContact {
		if err := validate.Name(form.Name); err != nil {
			return fieldError(err)
		}
		if err := validate.Phone(form.Phone); err != nil {
			return fieldError(err)
		}
		if err := validate.Email(form.Email); err != nil {
			return fieldError(err)
		}
		return nil
	}
	if form.AddName {
		if err := validate.Name(form.Name); err != nil {
			return fieldError(err)
		}
	}
	return nil
}

func fieldError(err error) error {
	var fe *validate.FieldError
	if errors.As(err, &fe) {
		return &FlowError{Field: string(fe.Field), Message: fe.Message, Err: err}
	}
	return err
}

// Choose picks the gateway, creates the order and hands back the gateway
// continuation. An order-creation failure surfaces the backend message and
// returns the attempt to method selection with the form intact.
func (f *Flow) Choose(ctx context.Context, method payment.Method) (*payment.Invocation, error) {
	if f.state != StateMethodSelection {
		return nil, ErrBadState
	}

	gw, err := f.ctrl.gateways.Get(method)
	if err != nil {
		return nil, &FlowError{Message: i18n.MsgPaymentFailed, Err: err}
	}

	f.state = StateCreatingOrder
	f.method = method
	f.quote = gw.Quote(float64(f.form.Amount))

	referredBy := ""
	if f.sessionID != "" {
		if ref, err := f.ctrl.referrals.ReferredBy(ctx, f.sessionID); err == nil {
			referredBy = ref
		}
	}

	order, err := f.ctrl.orders.CreateDonationOrder(ctx, f.orderRequest(referredBy))
	if err != nil {
		f.state = StateMethodSelection
		return nil, &FlowError{Message: i18n.MsgPaymentFailed, Err: err}
	}
	f.order = order

	if err := f.ctrl.donations.RecordOrder(ctx, f.donationRecord(referredBy)); err != nil {
		// The backend order exists; the reconcile job settles the gap.
		logger.Error("Failed to record donation for order %s: %v", order.PaymentID, err)
	}

	invocation, err := gw.Invoke(payment.InvokeParams{
		Order:         order,
		Quote:         f.quote,
		Currency:      f.ctrl.opts.Currency,
		CampaignTitle: f.campaign.Title,
		Donor: payment.Prefill{
			Name:  f.form.Name,
			Phone: f.form.Phone,
			Email: f.form.Email,
		},
	})
	if err != nil {
		// No way to continue the payment: fatal for this attempt.
		f.state = StateFailed
		return nil, &FlowError{Message: i18n.MsgPaymentFailed, Err: err}
	}

	f.handle = NewHandle()
	f.state = StateAwaitingGateway
	return invocation, nil
}

// orderRequest assembles the creation payload. Amount is the quoted total:
// the fee is already applied, exactly once.
func (f *Flow) orderRequest(referredBy string) campaign.OrderRequest {
	req := campaign.OrderRequest{
		Campaign:   f.form.CampaignID,
		Amount:     f.quote.Total,
		Currency:   f.ctrl.opts.Currency,
		Gateway:    string(f.method),
		ReferredBy: referredBy,
	}
	if f.ctrl.opts.RequireContact {
		req.OutsideUser = &campaign.OutsideUser{
			Name:  f.form.Name,
			Phone: f.form.Phone,
			Email: f.form.Email,
		}
	} else if f.form.AddName {
		req.OutsideUser = &campaign.OutsideUser{Name: f.form.Name}
	}
	return req
}

func (f *Flow) donationRecord(referredBy string) *model.Donation {
	return &model.Donation{
		CampaignID: f.form.CampaignID,
		Amount:     f.quote.Amount,
		Fee:        f.quote.Fee,
		Total:      f.quote.Total,
		Currency:   f.ctrl.opts.Currency,
		Gateway:    string(f.method),
		DonorName:  f.form.Name,
		DonorPhone: f.form.Phone,
		DonorEmail: f.form.Email,
		ReferredBy: referredBy,
		UpstreamID: f.order.DonationID,
		OrderID:    f.order.PaymentID,
		Status:     model.DonationStatusOrderCreated,
	}
}

// Resolve applies the gateway's completion event. A success is verified with
// the donation's own identifier; verification failure keeps the form so the
// donor does not retype. A cancellation returns the attempt to idle, form
// preserved. Results arriving after Abandon are dropped.
func (f *Flow) Resolve(ctx context.Context, result payment.Result) error {
	if f.state != StateAwaitingGateway {
		return ErrBadState
	}
	if f.handle != nil && !f.handle.Deliver(result) {
		logger.Warn("Dropping gateway result for abandoned checkout, order %s", result.OrderID)
		return nil
	}

	if result.Kind != payment.ResultSuccess {
		f.state = StateIdle
		return &FlowError{Message: i18n.MsgPaymentCancelled}
	}

	f.state = StateVerifying

	gw, err := f.ctrl.gateways.Get(f.method)
	if err != nil {
		f.state = StateFailed
		return &FlowError{Message: i18n.MsgVerificationFailed, Err: err}
	}
	if !gw.VerifySignature(result.OrderID, result.PaymentID, result.Signature) {
		f.state = StateFailed
		return &FlowError{Message: i18n.MsgVerificationFailed}
	}

	err = f.ctrl.verifier.VerifyPayment(ctx, campaign.VerifyRequest{
		RazorpayOrderID:   result.OrderID,
		RazorpayPaymentID: result.PaymentID,
		RazorpaySignature: result.Signature,
		DonationID:        f.order.DonationID,
	})
	if err != nil {
		f.state = StateFailed
		return &FlowError{Message: i18n.MsgVerificationFailed, Err: err}
	}

	if _, err := f.ctrl.donations.MarkVerified(ctx, result.OrderID, result.PaymentID, result.Signature); err != nil {
		logger.Error("Failed to mark donation verified for order %s: %v", result.OrderID, err)
	}
	if f.sessionID != "" {
		if err := f.ctrl.referrals.ClearReferral(ctx, f.sessionID); err != nil {
			logger.Warn("Failed to clear referral for session %s: %v", f.sessionID, err)
		}
	}

	// Reload the campaign so the caller shows current totals.
	if c, err := f.ctrl.campaigns.Get(ctx, f.form.CampaignID); err == nil {
		f.campaign = c
	}

	f.form = Form{}
	f.state = StateCompleted
	return nil
}

// Campaign is the campaign as last loaded, refreshed after completion.
func (f *Flow) Campaign() *model.Campaign {
	return f.campaign
}

// Abandon tears the attempt down; late gateway results are dropped.
func (f *Flow) Abandon() {
	if f.handle != nil {
		f.handle.Cancel()
	}
}
