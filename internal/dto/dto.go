package dto

const (
	defaultLimit = 10
	maxLimit     = 100
)

// ListQuery is the shared query shape for public content listings.
type ListQuery struct {
	Category string `query:"category"`
	Search   string `query:"search"`
	Page     int    `query:"page"`
	Limit    int    `query:"limit"`
}

// Normalize clamps paging params to sane values.
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}
	if q.Limit > maxLimit {
		q.Limit = maxLimit
	}
}

func (q *ListQuery) Offset() int { return (q.Page - 1) * q.Limit }

// Pagination is returned by every list endpoint.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

func NewPagination(page, limit int, total int64) Pagination {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

type ListResponse struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

type BootstrapRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	Admin interface{} `json:"admin"`
}

type CreateAdminRequest struct {
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

type CheckoutRequest struct {
	TemplateID    uint   `json:"templateId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
}

type CheckoutResponse struct {
	OrderID         uint   `json:"orderId"`
	ReceiptID       string `json:"receiptId"`
	RazorpayOrderID string `json:"razorpayOrderId"`
	Amount          string `json:"amount"`
	Currency        string `json:"currency"`
	KeyID           string `json:"keyId"`
}
