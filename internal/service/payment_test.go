package service

import (
	"context"
	"crypto/hmac"
	"fmt"
	"testing"

	"lawsite-api/internal/apperr"
	"lawsite-api/internal/dto"
	"lawsite-api/internal/model"
	"lawsite-api/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	testWebhookSecret = "test-webhook-secret"
	testKeySecret     = "test-key-secret"
)

// stubGateway verifies signatures with the same HMAC scheme as the real
// client but never talks to the gateway.
type stubGateway struct {
	orderID  string
	orderErr error
}

func (g *stubGateway) CreateOrder(_ context.Context, _ int64, _, _ string, _ map[string]interface{}) (string, error) {
	return g.orderID, g.orderErr
}

func (g *stubGateway) VerifyWebhookSignature(body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	expected := signBody(testWebhookSecret, body)
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (g *stubGateway) VerifyPaymentSignature(razorpayOrderID, paymentID, signature string) bool {
	if signature == "" {
		return false
	}
	expected := signBody(testKeySecret, []byte(razorpayOrderID+"|"+paymentID))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (g *stubGateway) KeyID() string { return "rzp_test_key" }

type paymentFixture struct {
	db      *gorm.DB
	svc     PaymentService
	orders  repository.OrderRepository
	gateway *stubGateway
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	db := newTestDB(t)
	gateway := &stubGateway{orderID: "order_test123"}
	orders := repository.NewOrderRepository(db)
	svc := NewPaymentService(
		gateway,
		repository.NewTemplateRepository(db),
		orders,
		repository.NewWebhookEventRepository(db),
	)
	return &paymentFixture{db: db, svc: svc, orders: orders, gateway: gateway}
}

func (f *paymentFixture) seedOrder(t *testing.T, receiptID string) *model.Order {
	t.Helper()
	order := &model.Order{
		ReceiptID:       receiptID,
		TemplateID:      1,
		CustomerName:    "A Client",
		CustomerEmail:   "client@example.com",
		Amount:          decimal.NewFromInt(499),
		Currency:        "INR",
		PaymentStatus:   model.PaymentPending,
		Status:          model.OrderPending,
		RazorpayOrderID: "order_test123",
	}
	require.NoError(t, f.orders.Create(context.Background(), order))
	return order
}

func capturedEvent(receiptID, paymentID string) []byte {
	return []byte(fmt.Sprintf(
		`{"entity":"event","event":"payment.captured","payload":{"payment":{"entity":{"id":%q,"order_id":"order_test123","status":"captured","notes":{"orderId":%q}}}}}`,
		paymentID, receiptID,
	))
}

func failedEvent(receiptID string) []byte {
	return []byte(fmt.Sprintf(
		`{"entity":"event","event":"payment.failed","payload":{"payment":{"entity":{"id":"pay_failed","order_id":"order_test123","status":"failed","notes":{"orderId":%q}}}}}`,
		receiptID,
	))
}

func TestHandleWebhookSignatureGate(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()
	f.seedOrder(t, "rcpt-1")

	body := capturedEvent("rcpt-1", "pay_123")

	t.Run("missing signature rejected", func(t *testing.T) {
		err := f.svc.HandleWebhook(ctx, body, "", "evt_0")
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("tampered body rejected", func(t *testing.T) {
		sig := signBody(testWebhookSecret, body)
		tampered := append([]byte{}, body...)
		tampered[0] ^= 0x01
		err := f.svc.HandleWebhook(ctx, tampered, sig, "evt_1")
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("tampered signature rejected", func(t *testing.T) {
		sig := []byte(signBody(testWebhookSecret, body))
		sig[0] ^= 0x01
		err := f.svc.HandleWebhook(ctx, body, string(sig), "evt_2")
		require.Error(t, err)
	})

	// rejection means no state was touched
	order, err := f.orders.FindByReceiptID(ctx, "rcpt-1")
	require.NoError(t, err)
	assert.Equal(t, model.PaymentPending, order.PaymentStatus)

	t.Run("valid signature accepted", func(t *testing.T) {
		require.NoError(t, f.svc.HandleWebhook(ctx, body, signBody(testWebhookSecret, body), "evt_3"))
	})
}

func TestHandleWebhookCapturedIsIdempotent(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()
	f.seedOrder(t, "rcpt-2")

	body := capturedEvent("rcpt-2", "pay_abc")
	sig := signBody(testWebhookSecret, body)

	require.NoError(t, f.svc.HandleWebhook(ctx, body, sig, "evt_a"))
	// gateway redelivery with a fresh event id
	require.NoError(t, f.svc.HandleWebhook(ctx, body, sig, "evt_b"))
	// and an exact duplicate delivery
	require.NoError(t, f.svc.HandleWebhook(ctx, body, sig, "evt_a"))

	order, err := f.orders.FindByReceiptID(ctx, "rcpt-2")
	require.NoError(t, err)
	assert.Equal(t, model.PaymentCompleted, order.PaymentStatus)
	assert.Equal(t, model.OrderConfirmed, order.Status)
	assert.Equal(t, "pay_abc", order.RazorpayPaymentID)
	assert.Equal(t, "pay_abc", order.PaymentID)
}

func TestHandleWebhookFailureDoesNotRegressCompleted(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()
	f.seedOrder(t, "rcpt-3")

	captured := capturedEvent("rcpt-3", "pay_xyz")
	require.NoError(t, f.svc.HandleWebhook(ctx, captured, signBody(testWebhookSecret, captured), "evt_c"))

	failed := failedEvent("rcpt-3")
	require.NoError(t, f.svc.HandleWebhook(ctx, failed, signBody(testWebhookSecret, failed), "evt_d"))

	order, err := f.orders.FindByReceiptID(ctx, "rcpt-3")
	require.NoError(t, err)
	assert.Equal(t, model.PaymentCompleted, order.PaymentStatus)
	assert.Equal(t, model.OrderConfirmed, order.Status)
}

func TestHandleWebhookFailedMarksPendingOrder(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()
	f.seedOrder(t, "rcpt-4")

	failed := failedEvent("rcpt-4")
	require.NoError(t, f.svc.HandleWebhook(ctx, failed, signBody(testWebhookSecret, failed), "evt_e"))

	order, err := f.orders.FindByReceiptID(ctx, "rcpt-4")
	require.NoError(t, err)
	assert.Equal(t, model.PaymentFailed, order.PaymentStatus)
	// failure does not confirm
	assert.Equal(t, model.OrderPending, order.Status)
}

func TestHandleWebhookToleratesUnmodeledInput(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	t.Run("unknown event acked", func(t *testing.T) {
		body := []byte(`{"event":"refund.created","payload":{}}`)
		require.NoError(t, f.svc.HandleWebhook(ctx, body, signBody(testWebhookSecret, body), "evt_f"))
	})

	t.Run("captured without order note acked", func(t *testing.T) {
		body := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_1","notes":{}}}}}`)
		require.NoError(t, f.svc.HandleWebhook(ctx, body, signBody(testWebhookSecret, body), "evt_g"))
	})

	t.Run("captured for unknown order acked", func(t *testing.T) {
		body := capturedEvent("no-such-order", "pay_2")
		require.NoError(t, f.svc.HandleWebhook(ctx, body, signBody(testWebhookSecret, body), "evt_h"))
	})

	t.Run("verified but malformed payload rejected", func(t *testing.T) {
		body := []byte(`{"event":`)
		err := f.svc.HandleWebhook(ctx, body, signBody(testWebhookSecret, body), "evt_i")
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})
}

func TestCheckout(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	templates := repository.NewTemplateRepository(f.db)
	published := &model.Template{
		Title:    "Employment Contract",
		Price:    decimal.NewFromFloat(499.50),
		Currency: "INR",
		Status:   model.ContentPublished,
	}
	require.NoError(t, templates.Create(ctx, published))
	draft := &model.Template{
		Title:    "Draft NDA",
		Price:    decimal.NewFromInt(99),
		Currency: "INR",
		Status:   model.ContentDraft,
	}
	require.NoError(t, templates.Create(ctx, draft))

	t.Run("creates pending order", func(t *testing.T) {
		resp, err := f.svc.Checkout(ctx, &dto.CheckoutRequest{
			TemplateID:    published.ID,
			CustomerName:  "A Client",
			CustomerEmail: "client@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "order_test123", resp.RazorpayOrderID)
		assert.Equal(t, "499.50", resp.Amount)
		assert.Equal(t, "rzp_test_key", resp.KeyID)
		require.NotEmpty(t, resp.ReceiptID)

		order, err := f.orders.FindByReceiptID(ctx, resp.ReceiptID)
		require.NoError(t, err)
		assert.Equal(t, model.PaymentPending, order.PaymentStatus)
		assert.Equal(t, published.ID, order.TemplateID)
	})

	t.Run("draft template not purchasable", func(t *testing.T) {
		_, err := f.svc.Checkout(ctx, &dto.CheckoutRequest{
			TemplateID:    draft.ID,
			CustomerName:  "A Client",
			CustomerEmail: "client@example.com",
		})
		require.Error(t, err)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		_, err := f.svc.Checkout(ctx, &dto.CheckoutRequest{TemplateID: published.ID})
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})
}

func TestVerifyPayment(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()
	f.seedOrder(t, "rcpt-5")

	goodSig := signBody(testKeySecret, []byte("order_test123|pay_cb"))

	t.Run("bad signature leaves order pending", func(t *testing.T) {
		err := f.svc.VerifyPayment(ctx, "rcpt-5", "order_test123", "pay_cb", "bogus")
		require.Error(t, err)
		assert.Equal(t, apperr.KindAuth, apperr.KindOf(err))

		order, err := f.orders.FindByReceiptID(ctx, "rcpt-5")
		require.NoError(t, err)
		assert.Equal(t, model.PaymentPending, order.PaymentStatus)
	})

	t.Run("order mismatch rejected", func(t *testing.T) {
		err := f.svc.VerifyPayment(ctx, "rcpt-5", "order_other", "pay_cb", goodSig)
		require.Error(t, err)
	})

	t.Run("valid signature completes order", func(t *testing.T) {
		require.NoError(t, f.svc.VerifyPayment(ctx, "rcpt-5", "order_test123", "pay_cb", goodSig))

		order, err := f.orders.FindByReceiptID(ctx, "rcpt-5")
		require.NoError(t, err)
		assert.Equal(t, model.PaymentCompleted, order.PaymentStatus)
		assert.Equal(t, "pay_cb", order.RazorpayPaymentID)
	})

	t.Run("unknown order not found", func(t *testing.T) {
		err := f.svc.VerifyPayment(ctx, "rcpt-missing", "order_test123", "pay_cb", goodSig)
		require.Error(t, err)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}
