package payment

import (
	"fmt"
	"math"

	"github.com/TTJ-s/qr-annujoom/internal/i18n"
	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
)

const razorpayTheme = "#e11d48"

// RazorpayGateway opens the Razorpay checkout widget and verifies its
// callback signatures with the merchant secret.
type RazorpayGateway struct {
	keyID  string
	secret string
	client *razorpay.Client
}

// NewRazorpay builds the widget gateway from the merchant credentials.
func NewRazorpay(keyID, secret string) *RazorpayGateway {
	return &RazorpayGateway{
		keyID:  keyID,
		secret: secret,
		client: razorpay.NewClient(keyID, secret),
	}
}

func (g *RazorpayGateway) Method() Method {
	return MethodRazorpay
}

func (g *RazorpayGateway) Quote(amount float64) Quote {
	return QuoteFor(amount, MethodRazorpay)
}

// Invoke builds the checkout widget options for the created order. The
// widget opens with the quoted total, never a re-derived amount.
func (g *RazorpayGateway) Invoke(params InvokeParams) (*Invocation, error) {
	if params.Order.PaymentID == "" {
		return nil, fmt.Errorf("order has no razorpay order id")
	}
	return &Invocation{
		Widget: &WidgetOptions{
			Key:         g.keyID,
			AmountPaise: int64(math.Round(params.Quote.Total * 100)),
			Currency:    params.Currency,
			Name:        "Donation",
			Description: i18n.Resolve(params.CampaignTitle, i18n.English),
			OrderID:     params.Order.PaymentID,
			Prefill:     params.Donor,
			ThemeColor:  razorpayTheme,
		},
	}, nil
}

// VerifySignature checks the HMAC the widget callback carries before the
// backend verification round-trip.
func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	if orderID == "" || paymentID == "" || signature == "" {
		return false
	}
	return utils.VerifyPaymentSignature(map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}, signature, g.secret)
}

// CapturedPayment looks up a captured payment for an order, used by the
// reconcile job to settle donations whose callback never arrived.
func (g *RazorpayGateway) CapturedPayment(orderID string) (string, bool, error) {
	body, err := g.client.Order.Payments(orderID, nil, nil)
	if err != nil {
		return "", false, fmt.Errorf("fetch payments for order %s: %w", orderID, err)
	}
	items, ok := body["items"].([]interface{})
	if !ok {
		return "", false, nil
	}
	for _, raw := range items {
		item, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		if status, _ := item["status"].(string); status == "captured" {
			id, _ := item["id"].(string)
			return id, id != "", nil
		}
	}
	return "", false, nil
}
