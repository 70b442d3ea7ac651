package payment

import "errors"

// ErrNoPaymentURL means order creation did not return a hosted payment page,
// which is fatal for a redirect attempt.
var ErrNoPaymentURL = errors.New("order creation returned no payment url")

// MswipeGateway is the fee-free redirect gateway. The backend creates the
// hosted payment page; this side only forwards the donor to it.
type MswipeGateway struct{}

func NewMswipe() *MswipeGateway {
	return &MswipeGateway{}
}

func (g *MswipeGateway) Method() Method {
	return MethodMswipe
}

func (g *MswipeGateway) Quote(amount float64) Quote {
	return QuoteFor(amount, MethodMswipe)
}

func (g *MswipeGateway) Invoke(params InvokeParams) (*Invocation, error) {
	if params.Order.PaymentURL == "" {
		return nil, ErrNoPaymentURL
	}
	return &Invocation{RedirectURL: params.Order.PaymentURL}, nil
}

// VerifySignature always passes: the hosted flow has no client-side
// signature, the backend confirmation is authoritative.
func (g *MswipeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return true
}
