package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"context"

	"rentkart-storefront/internal/domain"
	"rentkart-storefront/internal/logger"
)

// AppliedCoupon is the single active coupon slot. DiscountCents is the
// server-computed discount and is never recomputed client-side.
type AppliedCoupon struct {
	Coupon        domain.Coupon
	DiscountCents int64
}

// AvailableCoupon pairs a server-listed coupon with the client-side
// minimum-order cross-check for display.
type AvailableCoupon struct {
	domain.Coupon
	MeetsMinimum     bool
	AmountShortCents int64
}

// Coupons fetches eligible coupons and applies at most one of them to the
// order. Eligibility pre-checks run client-side; discount arithmetic is the
// server's alone.
type Coupons struct {
	api  CouponAPI
	auth Authenticator

	mu        sync.Mutex
	available []domain.Coupon
	applied   *AppliedCoupon
}

func NewCoupons(couponAPI CouponAPI, auth Authenticator) *Coupons {
	return &Coupons{api: couponAPI, auth: auth}
}

func (c *Coupons) Strategy() Strategy { return StrategyPessimistic }

// Refresh re-fetches the coupons the server lists for this user.
func (c *Coupons) Refresh(ctx context.Context) error {
	if !c.auth.Authenticated() {
		return domain.ErrAuthRequired
	}
	coupons, err := c.api.AvailableCoupons(ctx)
	if err != nil {
		logger.Error("Coupon list fetch failed", "error", err)
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.available = coupons
	return nil
}

func (c *Coupons) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.available)
}

// ForOrder annotates the cached coupon list with the minimum-order
// cross-check against an order total. A coupon short of its minimum carries
// the exact shortfall for display.
func (c *Coupons) ForOrder(orderCents int64) []AvailableCoupon {
	c.mu.Lock()
	defer c.mu.Unlock()
	annotated := make([]AvailableCoupon, 0, len(c.available))
	for _, coupon := range c.available {
		ok, short := coupon.MeetsMinimum(orderCents)
		annotated = append(annotated, AvailableCoupon{
			Coupon:           coupon,
			MeetsMinimum:     ok,
			AmountShortCents: short,
		})
	}
	return annotated
}

// Validate pre-checks a code locally, then asks the server to validate it
// against the order amount. The returned discount is the server's figure.
func (c *Coupons) Validate(ctx context.Context, code string, orderCents int64) (AppliedCoupon, error) {
	if !c.auth.Authenticated() {
		return AppliedCoupon{}, domain.ErrAuthRequired
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return AppliedCoupon{}, domain.ErrEmptyCouponCode
	}
	if orderCents <= 0 {
		return AppliedCoupon{}, domain.ErrEmptyOrder
	}

	// When the coupon is already cached, the minimum-order shortfall is
	// reportable without a round trip.
	c.mu.Lock()
	for _, cached := range c.available {
		if cached.Code == code {
			if ok, short := cached.MeetsMinimum(orderCents); !ok {
				c.mu.Unlock()
				return AppliedCoupon{}, fmt.Errorf("%w: add %d more", domain.ErrCouponBelowMin, short)
			}
			break
		}
	}
	c.mu.Unlock()

	coupon, discountCents, err := c.api.ValidateCoupon(ctx, code, orderCents)
	if err != nil {
		var serverErr *domain.ServerError
		if errors.As(err, &serverErr) && serverErr.StatusCode >= 400 && serverErr.StatusCode < 500 {
			return AppliedCoupon{}, fmt.Errorf("%w: %s", domain.ErrInvalidOrExpired, serverErr.Message)
		}
		return AppliedCoupon{}, err
	}
	return AppliedCoupon{Coupon: coupon, DiscountCents: discountCents}, nil
}

// Apply validates the code and attaches it to the order, replacing any
// previously applied coupon (single slot).
func (c *Coupons) Apply(ctx context.Context, code string, orderCents int64) (AppliedCoupon, error) {
	applied, err := c.Validate(ctx, code, orderCents)
	if err != nil {
		return AppliedCoupon{}, err
	}
	if err := c.api.ApplyCoupon(ctx, applied.Coupon.ID); err != nil {
		return AppliedCoupon{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.applied = &applied
	return applied, nil
}

// Remove clears the applied slot: empty code, zero discount.
func (c *Coupons) Remove() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.applied = nil
}

// Applied returns the active coupon, if any.
func (c *Coupons) Applied() (AppliedCoupon, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.applied == nil {
		return AppliedCoupon{}, false
	}
	return *c.applied, true
}

// DiscountCents is the active discount, zero when no coupon is applied.
func (c *Coupons) DiscountCents() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.applied == nil {
		return 0
	}
	return c.applied.DiscountCents
}
