// Package payment models the two supported gateways: the Razorpay checkout
// widget (2% convenience fee) and the Mswipe hosted redirect (fee-free).
package payment

import (
	"fmt"
	"math"

	"github.com/TTJ-s/qr-annujoom/internal/campaign"
	"github.com/TTJ-s/qr-annujoom/internal/i18n"
)

// Method selects a payment gateway.
type Method string

const (
	MethodRazorpay Method = "razorpay"
	MethodMswipe   Method = "mswipe"
)

// ParseMethod validates a gateway name from the request.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodRazorpay, MethodMswipe:
		return Method(s), nil
	default:
		return "", fmt.Errorf("unknown payment method %q", s)
	}
}

// razorpayFeeRate is the convenience fee charged on widget payments.
const razorpayFeeRate = 0.02

// Quote is the fee breakdown for one donation. The fee is applied here and
// nowhere else: both the order payload and the widget carry Total.
type Quote struct {
	Amount float64 `json:"amount"`
	Fee    float64 `json:"fee"`
	Total  float64 `json:"total"`
}

// QuoteFor computes the convenience fee and total payable for a method.
func QuoteFor(amount float64, method Method) Quote {
	fee := 0.0
	if method == MethodRazorpay {
		fee = round2(amount * razorpayFeeRate)
	}
	return Quote{
		Amount: amount,
		Fee:    fee,
		Total:  round2(amount + fee),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Prefill is the donor contact the widget opens with.
type Prefill struct {
	Name  string `json:"name"`
	Phone string `json:"contact,omitempty"`
	Email string `json:"email,omitempty"`
}

// WidgetOptions is everything the browser needs to open the checkout widget.
type WidgetOptions struct {
	Key         string  `json:"key"`
	AmountPaise int64   `json:"amount"`
	Currency    string  `json:"currency"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	OrderID     string  `json:"order_id"`
	Prefill     Prefill `json:"prefill"`
	ThemeColor  string  `json:"theme_color"`
}

// Invocation tells the caller how to continue the payment: open a widget or
// navigate to a hosted page.
type Invocation struct {
	Widget      *WidgetOptions `json:"widget,omitempty"`
	RedirectURL string         `json:"redirect_url,omitempty"`
}

// InvokeParams is the already-created order plus donor context.
type InvokeParams struct {
	Order         *campaign.OrderResult
	Quote         Quote
	Currency      string
	CampaignTitle i18n.LocalizedText
	Donor         Prefill
}

// Gateway is one payment provider.
type Gateway interface {
	Method() Method
	// Quote computes the fee breakdown for this gateway.
	Quote(amount float64) Quote
	// Invoke turns a created order into a widget or redirect continuation.
	Invoke(params InvokeParams) (*Invocation, error)
	// VerifySignature checks the provider's transaction signature locally.
	// Redirect gateways have no signature and always pass.
	VerifySignature(orderID, paymentID, signature string) bool
}

// Registry holds the configured gateways by method.
type Registry map[Method]Gateway

// Get looks up a configured gateway.
func (r Registry) Get(method Method) (Gateway, error) {
	g, ok := r[method]
	if !ok {
		return nil, fmt.Errorf("payment method %q is not enabled", method)
	}
	return g, nil
}
