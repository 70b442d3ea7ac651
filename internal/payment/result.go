package payment

// ResultKind tags the outcome the gateway eventually reports.
type ResultKind string

const (
	ResultSuccess   ResultKind = "success"
	ResultCancelled ResultKind = "cancelled"
	ResultFailed    ResultKind = "failed"
)

// Result is the gateway's completion event. Transaction identifiers are set
// only on success.
type Result struct {
	Kind      ResultKind `json:"kind"`
	OrderID   string     `json:"razorpay_order_id,omitempty"`
	PaymentID string     `json:"razorpay_payment_id,omitempty"`
	Signature string     `json:"razorpay_signature,omitempty"`
}
