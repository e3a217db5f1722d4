package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Admin roles.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super-admin"
)

// Content lifecycle. A single tagged state instead of independent
// isActive/isDeleted/isDraft flags; public reads only ever see published.
const (
	ContentDraft     = "draft"
	ContentPublished = "published"
	ContentDeleted   = "deleted"
)

// Order payment states. pending is the only non-terminal state; transitions
// out of it happen exclusively through the webhook/verify flow.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"

	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
)

type Admin struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Email       string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password    string     `gorm:"size:100;not null" json:"-"`
	Name        string     `gorm:"size:100;not null" json:"name"`
	Role        string     `gorm:"size:32;not null;default:'admin'" json:"role"`
	IsActive    bool       `gorm:"not null;default:true" json:"isActive"`
	Permissions []string   `gorm:"serializer:json" json:"permissions"`
	LastLogin   *time.Time `json:"lastLogin"`
	CreatedBy   *uint      `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// BootstrapLock is a singleton sentinel: inserting its fixed primary key in
// the same transaction as the first admin turns the check-then-act bootstrap
// into a store-level compare-and-swap. A second bootstrap attempt conflicts
// on the key no matter what email it carries.
type BootstrapLock struct {
	ID        uint `gorm:"primaryKey;autoIncrement:false"`
	AdminID   uint
	CreatedAt time.Time
}

const BootstrapLockID = 1

type Template struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Title        string          `gorm:"size:255;not null" json:"title"`
	Description  string          `gorm:"type:text" json:"description"`
	Category     string          `gorm:"size:64;index" json:"category"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Currency     string          `gorm:"size:8;not null;default:'INR'" json:"currency"`
	FileURL      string          `gorm:"size:512" json:"fileUrl"`
	PreviewURL   string          `gorm:"size:512" json:"previewUrl"`
	Status       string          `gorm:"size:16;index;not null;default:'draft'" json:"status"`
	DisplayOrder int             `gorm:"not null;default:0" json:"displayOrder"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

type Blog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Slug        string    `gorm:"size:255;uniqueIndex" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	Content     string    `gorm:"type:text" json:"content"`
	Author      string    `gorm:"size:100" json:"author"`
	Category    string    `gorm:"size:64;index" json:"category"`
	Tags        []string  `gorm:"serializer:json" json:"tags"`
	CoverImage  string    `gorm:"size:512" json:"coverImage"`
	Status      string    `gorm:"size:16;index;not null;default:'draft'" json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type GalleryItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	Category     string    `gorm:"size:64;index" json:"category"`
	ImageURL     string    `gorm:"size:512;not null" json:"imageUrl"`
	Status       string    `gorm:"size:16;index;not null;default:'draft'" json:"status"`
	DisplayOrder int       `gorm:"not null;default:0" json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// GalleryBlog is a gallery entry with an attached write-up, published on the
// gallery pages rather than the main blog.
type GalleryBlog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Slug        string    `gorm:"size:255;uniqueIndex" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	Content     string    `gorm:"type:text" json:"content"`
	Category    string    `gorm:"size:64;index" json:"category"`
	Tags        []string  `gorm:"serializer:json" json:"tags"`
	CoverImage  string    `gorm:"size:512" json:"coverImage"`
	Status      string    `gorm:"size:16;index;not null;default:'draft'" json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ThoughtLeadershipPhoto struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:255" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	Category     string    `gorm:"size:64;index" json:"category"`
	ImageURL     string    `gorm:"size:512;not null" json:"imageUrl"`
	Status       string    `gorm:"size:16;index;not null;default:'draft'" json:"status"`
	DisplayOrder int       `gorm:"not null;default:0" json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Order struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ReceiptID     string `gorm:"size:64;uniqueIndex;not null" json:"receiptId"`
	TemplateID    uint   `gorm:"index;not null" json:"templateId"`
	CustomerName  string `gorm:"size:100;not null" json:"customerName"`
	CustomerEmail string `gorm:"size:255;not null" json:"customerEmail"`
	CustomerPhone string `gorm:"size:32" json:"customerPhone"`

	Amount   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Currency string          `gorm:"size:8;not null;default:'INR'" json:"currency"`

	PaymentStatus     string `gorm:"size:16;index;not null;default:'pending'" json:"paymentStatus"`
	Status            string `gorm:"size:16;index;not null;default:'pending'" json:"status"`
	RazorpayOrderID   string `gorm:"size:64;index" json:"razorpayOrderId"`
	RazorpayPaymentID string `gorm:"size:64" json:"razorpayPaymentId"`
	PaymentID         string `gorm:"size:64" json:"paymentId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WebhookEvent records gateway event ids that have already been applied, so
// redelivered webhooks ack without reapplying. The raw payload is kept for
// audit.
type WebhookEvent struct {
	EventID     string         `gorm:"primaryKey;size:128;not null"`
	EventType   string         `gorm:"size:64;index"`
	Payload     datatypes.JSON `gorm:"type:json"`
	ProcessedAt time.Time
	CreatedAt   time.Time
}

// All lists every model for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&Admin{},
		&BootstrapLock{},
		&Template{},
		&Blog{},
		&GalleryItem{},
		&GalleryBlog{},
		&ThoughtLeadershipPhoto{},
		&Order{},
		&WebhookEvent{},
	}
}
