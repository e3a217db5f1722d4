package handler

import (
	"io"
	"net/http"
	"net/url"

	"lawsite-api/internal/apperr"
	"lawsite-api/internal/dto"
	"lawsite-api/internal/service"

	"github.com/labstack/echo/v4"
)

// Razorpay webhook headers.
const (
	headerWebhookSignature = "X-Razorpay-Signature"
	headerWebhookEventID   = "X-Razorpay-Event-Id"
)

type PaymentHandler struct {
	paymentService service.PaymentService
	baseURL        string
}

func NewPaymentHandler(paymentService service.PaymentService, baseURL string) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		baseURL:        baseURL,
	}
}

func (h *PaymentHandler) Checkout(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}

	resp, err := h.paymentService.Checkout(ctx, &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resp)
}

// Webhook passes the raw body straight to the service; signature
// verification happens there, before any parsing.
func (h *PaymentHandler) Webhook(c echo.Context) error {
	ctx := c.Request().Context()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return apperr.Validationf("failed to read body")
	}

	signature := c.Request().Header.Get(headerWebhookSignature)
	eventID := c.Request().Header.Get(headerWebhookEventID)

	if err := h.paymentService.HandleWebhook(ctx, body, signature, eventID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Callback is the stateless redirector for the gateway's browser return.
// It reads and writes nothing; it only routes the query parameters.
func (h *PaymentHandler) Callback(c echo.Context) error {
	q := c.Request().URL.Query()

	orderID := q.Get("orderId")
	paymentID := q.Get("razorpay_payment_id")

	if paymentID == "" {
		target := h.baseURL + "/payment-error"
		if orderID != "" {
			target += "?orderId=" + url.QueryEscape(orderID)
		}
		return c.Redirect(http.StatusFound, target)
	}

	if orderID != "" && q.Get("razorpay_order_id") != "" && q.Get("razorpay_signature") != "" {
		return c.Redirect(http.StatusTemporaryRedirect, "/api/payment/verify?"+c.Request().URL.RawQuery)
	}

	return c.Redirect(http.StatusFound, h.baseURL+"/payment-error?reason=verification_failed")
}

func (h *PaymentHandler) Verify(c echo.Context) error {
	ctx := c.Request().Context()
	q := c.Request().URL.Query()

	orderID := q.Get("orderId")
	err := h.paymentService.VerifyPayment(ctx,
		orderID,
		q.Get("razorpay_order_id"),
		q.Get("razorpay_payment_id"),
		q.Get("razorpay_signature"),
	)
	if err != nil {
		target := h.baseURL + "/payment-error?reason=verification_failed"
		if orderID != "" {
			target += "&orderId=" + url.QueryEscape(orderID)
		}
		return c.Redirect(http.StatusFound, target)
	}

	return c.Redirect(http.StatusFound, h.baseURL+"/payment-success?orderId="+url.QueryEscape(orderID))
}
