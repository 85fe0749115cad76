package api

import (
	"context"
	"net/http"

	"rentkart-storefront/internal/domain"
)

// AvailableCoupons lists the coupons the server considers visible to the
// current user. Server-side applicability flags are passed through untouched.
func (c *Client) AvailableCoupons(ctx context.Context) ([]domain.Coupon, error) {
	var payload availableCouponsPayload
	if err := c.do(ctx, http.MethodGet, "/coupons/available", nil, &payload); err != nil {
		return nil, err
	}
	coupons := make([]domain.Coupon, 0, len(payload.Coupons))
	for _, cp := range payload.Coupons {
		coupons = append(coupons, cp.toDomain())
	}
	return coupons, nil
}

// ValidateCoupon asks the server to validate a code against an order amount.
// The server owns the discount computation; the returned discount is used
// as-is and never recomputed client-side.
func (c *Client) ValidateCoupon(ctx context.Context, code string, orderCents int64) (domain.Coupon, int64, error) {
	req := validateCouponRequest{Code: code, OrderAmount: Amount(orderCents)}
	var payload validateCouponResponse
	if err := c.do(ctx, http.MethodPost, "/coupons/validate", req, &payload); err != nil {
		return domain.Coupon{}, 0, err
	}
	return payload.Coupon.toDomain(), payload.DiscountAmount.Cents(), nil
}

// ApplyCoupon attaches a validated coupon to the current cart/order.
func (c *Client) ApplyCoupon(ctx context.Context, couponID string) error {
	return c.do(ctx, http.MethodPost, "/coupons/apply", applyCouponRequest{CouponID: couponID}, nil)
}
