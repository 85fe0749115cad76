package domain

import "time"

type CouponDiscountType string

const (
	DiscountTypePercentage  CouponDiscountType = "PERCENTAGE"
	DiscountTypeFixedAmount CouponDiscountType = "FIXED_AMOUNT"
)

// Coupon is read-only from the client's perspective. The server is the sole
// authority on usage counts and on the discount amount itself; the client
// performs eligibility pre-checks only.
type Coupon struct {
	ID                  string             `json:"id"`
	Code                string             `json:"code"`
	DiscountType        CouponDiscountType `json:"discount_type"`
	DiscountValue       int64              `json:"discount_value"` // percent for PERCENTAGE, paise for FIXED_AMOUNT
	MinOrderCents       *int64             `json:"min_order_cents,omitempty"`
	MaxUsageCount       *int               `json:"max_usage_count,omitempty"`
	CurrentUsageCount   int                `json:"current_usage_count"`
	ExpiresAt           *time.Time         `json:"expires_at,omitempty"`
	IsWelcomeCoupon     bool               `json:"is_welcome_coupon"`
	UserID              *string            `json:"user_id,omitempty"` // nil means globally available
	IsApplicable        bool               `json:"is_applicable"`
	NotApplicableReason string             `json:"not_applicable_reason,omitempty"`
}

// MeetsMinimum reports whether an order total satisfies the coupon's minimum
// order amount, and how far short it is when it does not.
func (c Coupon) MeetsMinimum(orderCents int64) (ok bool, shortCents int64) {
	if c.MinOrderCents == nil || orderCents >= *c.MinOrderCents {
		return true, 0
	}
	return false, *c.MinOrderCents - orderCents
}
