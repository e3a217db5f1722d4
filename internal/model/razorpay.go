package model

// RazorpayWebhookEvent is the envelope Razorpay posts to the webhook
// endpoint. Only the fields the service dispatches on are modeled; unknown
// event types carry payloads this struct simply leaves zeroed.
type RazorpayWebhookEvent struct {
	Entity    string          `json:"entity"`
	AccountID string          `json:"account_id"`
	Event     string          `json:"event"`
	CreatedAt int64           `json:"created_at"`
	Payload   RazorpayPayload `json:"payload"`
}

type RazorpayPayload struct {
	Payment RazorpayPaymentWrapper `json:"payment"`
}

type RazorpayPaymentWrapper struct {
	Entity RazorpayPaymentEntity `json:"entity"`
}

type RazorpayPaymentEntity struct {
	ID          string            `json:"id"`
	OrderID     string            `json:"order_id"`
	Status      string            `json:"status"`
	Amount      int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Method      string            `json:"method"`
	Email       string            `json:"email"`
	Contact     string            `json:"contact"`
	ErrorCode   string            `json:"error_code"`
	ErrorReason string            `json:"error_reason"`
	Notes       map[string]string `json:"notes"`
}
