package repository

import (
	"context"
	"time"

	"lawsite-api/internal/model"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByReceiptID(ctx context.Context, receiptID string) (*model.Order, error)
	// MarkCaptured applies pending → completed/confirmed and records the
	// gateway payment id. The WHERE on payment_status makes completed and
	// failed terminal: a redelivered capture or a late failure event
	// matches zero rows. Returns whether a row transitioned.
	MarkCaptured(ctx context.Context, receiptID, razorpayPaymentID string) (bool, error)
	// MarkFailed applies pending → failed under the same guard.
	MarkFailed(ctx context.Context, receiptID string) (bool, error)
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{db: db}
}

func (r *orderRepoImpl) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepoImpl) FindByReceiptID(ctx context.Context, receiptID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Where("receipt_id = ?", receiptID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepoImpl) MarkCaptured(ctx context.Context, receiptID, razorpayPaymentID string) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("receipt_id = ? AND payment_status = ?", receiptID, model.PaymentPending).
		Updates(map[string]interface{}{
			"payment_status":      model.PaymentCompleted,
			"status":              model.OrderConfirmed,
			"razorpay_payment_id": razorpayPaymentID,
			"payment_id":          razorpayPaymentID,
			"updated_at":          time.Now(),
		})
	return result.RowsAffected > 0, result.Error
}

func (r *orderRepoImpl) MarkFailed(ctx context.Context, receiptID string) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("receipt_id = ? AND payment_status = ?", receiptID, model.PaymentPending).
		Updates(map[string]interface{}{
			"payment_status": model.PaymentFailed,
			"updated_at":     time.Now(),
		})
	return result.RowsAffected > 0, result.Error
}
