package constants

// Order status constants.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Payment status constants.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// Address type constants.
const (
	AddressTypeHome   = "home"
	AddressTypeOffice = "office"
)

// Catalog sort keys accepted by the public listing. Anything else
// falls back to newest-first.
const (
	SortKeyCreatedAt   = "createdAt"
	SortKeyPrice       = "price"
	SortKeyRating      = "rating"
	SortKeyReviewCount = "reviewCount"
)

// Pagination defaults for the public catalog.
const (
	DefaultPage  = 1
	DefaultLimit = 12
	MaxLimit     = 100
)

// Inventory thresholds for admin analytics.
const (
	LowStockThreshold = 10
)

// Captcha scene names.
const (
	CaptchaSceneAdminLogin = "admin_login"
)

// Async task type names.
const (
	TaskTypeSendOTPSMS    = "sms:send_otp"
	TaskTypeOrderNotify   = "order:notify_placed"
	TaskQueueNameDefault  = "default"
	TaskQueueNameCritical = "critical"
)

// ValidOrderStatuses lists every accepted order status.
var ValidOrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// ValidPaymentStatuses lists every accepted payment status.
var ValidPaymentStatuses = []string{
	PaymentStatusPending,
	PaymentStatusPaid,
	PaymentStatusFailed,
}

// IsValidOrderStatus reports whether s is an accepted order status.
func IsValidOrderStatus(s string) bool {
	for _, v := range ValidOrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsValidPaymentStatus reports whether s is an accepted payment status.
func IsValidPaymentStatus(s string) bool {
	for _, v := range ValidPaymentStatuses {
		if v == s {
			return true
		}
	}
	return false
}
