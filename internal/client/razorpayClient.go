package client

import (
	"context"
	"fmt"

	"lawsite-api/internal/config"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
)

// RazorpayClient wraps the gateway SDK behind an interface so services can
// be tested without hitting the Razorpay API.
type RazorpayClient interface {
	// CreateOrder registers an order with the gateway. amount is in the
	// currency's smallest unit (paise for INR). Returns the gateway order id.
	CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]interface{}) (string, error)
	// VerifyWebhookSignature checks the HMAC-SHA256 hex signature over the
	// raw, unparsed body bytes.
	VerifyWebhookSignature(body []byte, signature string) bool
	// VerifyPaymentSignature checks the checkout-callback signature over
	// razorpay_order_id|razorpay_payment_id.
	VerifyPaymentSignature(razorpayOrderID, paymentID, signature string) bool
	KeyID() string
}

type razorpayClientImpl struct {
	client        *razorpay.Client
	keyID         string
	webhookSecret string
	keySecret     string
}

func NewRazorpayClient(cfg *config.Razorpay) RazorpayClient {
	return &razorpayClientImpl{
		client:        razorpay.NewClient(cfg.KeyID, cfg.KeySecret),
		keyID:         cfg.KeyID,
		webhookSecret: cfg.WebhookSecret,
		keySecret:     cfg.KeySecret,
	}
}

func (c *razorpayClientImpl) CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]interface{}) (string, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
		"notes":    notes,
	}

	body, err := c.client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("razorpay create order: %w", err)
	}

	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return "", fmt.Errorf("razorpay create order: response missing id")
	}
	return orderID, nil
}

func (c *razorpayClientImpl) VerifyWebhookSignature(body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	return utils.VerifyWebhookSignature(string(body), signature, c.webhookSecret)
}

func (c *razorpayClientImpl) VerifyPaymentSignature(razorpayOrderID, paymentID, signature string) bool {
	if signature == "" {
		return false
	}
	params := map[string]interface{}{
		"razorpay_order_id":   razorpayOrderID,
		"razorpay_payment_id": paymentID,
	}
	return utils.VerifyPaymentSignature(params, signature, c.keySecret)
}

func (c *razorpayClientImpl) KeyID() string { return c.keyID }
