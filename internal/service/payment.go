package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"lawsite-api/internal/apperr"
	"lawsite-api/internal/client"
	"lawsite-api/internal/dto"
	"lawsite-api/internal/model"
	"lawsite-api/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Razorpay event types the service acts on. Anything else is acked and
// ignored so new gateway event types don't start bouncing deliveries.
const (
	eventPaymentCaptured = "payment.captured"
	eventPaymentFailed   = "payment.failed"
)

var paiseFactor = decimal.NewFromInt(100)

type PaymentService interface {
	Checkout(ctx context.Context, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	// HandleWebhook verifies the signature over the raw body before any
	// parsing, dedupes on the gateway event id, then applies the matching
	// order transition.
	HandleWebhook(ctx context.Context, rawBody []byte, signature, eventID string) error
	// VerifyPayment checks the browser-callback signature and applies the
	// captured transition.
	VerifyPayment(ctx context.Context, receiptID, razorpayOrderID, razorpayPaymentID, signature string) error
}

type paymentServiceImpl struct {
	gateway          client.RazorpayClient
	templateRepo     repository.TemplateRepository
	orderRepo        repository.OrderRepository
	webhookEventRepo repository.WebhookEventRepository
}

func NewPaymentService(
	gateway client.RazorpayClient,
	templateRepo repository.TemplateRepository,
	orderRepo repository.OrderRepository,
	webhookEventRepo repository.WebhookEventRepository,
) PaymentService {
	return &paymentServiceImpl{
		gateway:          gateway,
		templateRepo:     templateRepo,
		orderRepo:        orderRepo,
		webhookEventRepo: webhookEventRepo,
	}
}

func (s *paymentServiceImpl) Checkout(ctx context.Context, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if req.TemplateID == 0 || req.CustomerName == "" || req.CustomerEmail == "" {
		return nil, apperr.Validationf("templateId, customerName and customerEmail are required")
	}

	template, err := s.templateRepo.GetPublished(ctx, req.TemplateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("template not found")
		}
		return nil, err
	}
	if !template.Price.IsPositive() {
		return nil, apperr.Validationf("template is not purchasable")
	}

	receiptID := uuid.NewString()
	amountPaise := template.Price.Mul(paiseFactor).IntPart()

	razorpayOrderID, err := s.gateway.CreateOrder(ctx, amountPaise, template.Currency, receiptID, map[string]interface{}{
		"orderId":    receiptID,
		"templateId": template.ID,
	})
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		ReceiptID:       receiptID,
		TemplateID:      template.ID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		Amount:          template.Price,
		Currency:        template.Currency,
		PaymentStatus:   model.PaymentPending,
		Status:          model.OrderPending,
		RazorpayOrderID: razorpayOrderID,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return &dto.CheckoutResponse{
		OrderID:         order.ID,
		ReceiptID:       receiptID,
		RazorpayOrderID: razorpayOrderID,
		Amount:          template.Price.StringFixed(2),
		Currency:        template.Currency,
		KeyID:           s.gateway.KeyID(),
	}, nil
}

func (s *paymentServiceImpl) HandleWebhook(ctx context.Context, rawBody []byte, signature, eventID string) error {
	// Verification runs over the raw bytes. Parsing first would let a
	// lenient parser accept a re-serialized payload under a signature
	// computed for different bytes.
	if !s.gateway.VerifyWebhookSignature(rawBody, signature) {
		return apperr.Validationf("invalid webhook signature")
	}

	if eventID != "" {
		seen, err := s.webhookEventRepo.Exists(ctx, eventID)
		if err != nil {
			return err
		}
		if seen {
			return nil
		}
	}

	var event model.RazorpayWebhookEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		return apperr.Validationf("malformed webhook payload")
	}

	switch event.Event {
	case eventPaymentCaptured:
		if err := s.applyCaptured(ctx, &event); err != nil {
			return err
		}
	case eventPaymentFailed:
		if err := s.applyFailed(ctx, &event); err != nil {
			return err
		}
	default:
		log.Printf("webhook: ignoring event %q", event.Event)
	}

	if eventID != "" {
		if err := s.webhookEventRepo.MarkProcessed(ctx, eventID, event.Event, rawBody); err != nil {
			return err
		}
	}
	return nil
}

func (s *paymentServiceImpl) applyCaptured(ctx context.Context, event *model.RazorpayWebhookEvent) error {
	payment := event.Payload.Payment.Entity
	receiptID := payment.Notes["orderId"]
	if receiptID == "" {
		// Payments not originating from our checkout carry no order
		// reference; acknowledge without acting.
		log.Printf("webhook: payment.captured without orderId note, payment %s", payment.ID)
		return nil
	}

	applied, err := s.orderRepo.MarkCaptured(ctx, receiptID, payment.ID)
	if err != nil {
		return err
	}
	if !applied {
		// Unknown order or one already in a terminal state. Either way the
		// delivery is acked; the guarded update keeps completed orders from
		// regressing and makes redelivery a no-op.
		log.Printf("webhook: payment.captured not applied for order %s", receiptID)
	}
	return nil
}

func (s *paymentServiceImpl) applyFailed(ctx context.Context, event *model.RazorpayWebhookEvent) error {
	payment := event.Payload.Payment.Entity
	receiptID := payment.Notes["orderId"]
	if receiptID == "" {
		return nil
	}

	applied, err := s.orderRepo.MarkFailed(ctx, receiptID)
	if err != nil {
		return err
	}
	if !applied {
		log.Printf("webhook: payment.failed not applied for order %s", receiptID)
	}
	return nil
}

func (s *paymentServiceImpl) VerifyPayment(ctx context.Context, receiptID, razorpayOrderID, razorpayPaymentID, signature string) error {
	if receiptID == "" || razorpayOrderID == "" || razorpayPaymentID == "" || signature == "" {
		return apperr.Validationf("missing payment verification parameters")
	}

	order, err := s.orderRepo.FindByReceiptID(ctx, receiptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("order not found")
		}
		return err
	}
	if order.RazorpayOrderID != razorpayOrderID {
		return apperr.Validationf("order mismatch")
	}

	if !s.gateway.VerifyPaymentSignature(razorpayOrderID, razorpayPaymentID, signature) {
		return apperr.Authf("payment verification failed")
	}

	if _, err := s.orderRepo.MarkCaptured(ctx, receiptID, razorpayPaymentID); err != nil {
		return err
	}
	return nil
}
