package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rentkart-storefront/internal/domain"
)

func welcomeCoupon() domain.Coupon {
	minOrder := int64(50000) // ₹500
	return domain.Coupon{
		ID:              "c1",
		Code:            "WELCOME-ABC123",
		DiscountType:    domain.DiscountTypePercentage,
		DiscountValue:   10,
		MinOrderCents:   &minOrder,
		IsWelcomeCoupon: true,
		IsApplicable:    true,
	}
}

func TestCoupons_Validate_Prechecks(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty code rejected before any network call", func(t *testing.T) {
		couponAPI := new(MockCouponAPI)
		coupons := NewCoupons(couponAPI, &MockAuth{authed: true})
		_, err := coupons.Validate(ctx, "   ", 100000)
		assert.ErrorIs(t, err, domain.ErrEmptyCouponCode)
		couponAPI.AssertNotCalled(t, "ValidateCoupon", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Zero-amount order rejected before any network call", func(t *testing.T) {
		couponAPI := new(MockCouponAPI)
		coupons := NewCoupons(couponAPI, &MockAuth{authed: true})
		_, err := coupons.Validate(ctx, "WELCOME-ABC123", 0)
		assert.ErrorIs(t, err, domain.ErrEmptyOrder)
		couponAPI.AssertNotCalled(t, "ValidateCoupon", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Requires authentication", func(t *testing.T) {
		couponAPI := new(MockCouponAPI)
		coupons := NewCoupons(couponAPI, &MockAuth{authed: false})
		_, err := coupons.Validate(ctx, "WELCOME-ABC123", 100000)
		assert.ErrorIs(t, err, domain.ErrAuthRequired)
	})

	t.Run("Cached coupon below minimum rejected locally", func(t *testing.T) {
		couponAPI := new(MockCouponAPI)
		coupons := NewCoupons(couponAPI, &MockAuth{authed: true})
		couponAPI.On("AvailableCoupons", ctx).Return([]domain.Coupon{welcomeCoupon()}, nil)
		assert.NoError(t, coupons.Refresh(ctx))

		// ₹300 against a ₹500 minimum.
		_, err := coupons.Validate(ctx, "welcome-abc123", 30000)
		assert.ErrorIs(t, err, domain.ErrCouponBelowMin)
		couponAPI.AssertNotCalled(t, "ValidateCoupon", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCoupons_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("Server discount passed through untouched", func(t *testing.T) {
		couponAPI := new(MockCouponAPI)
		coupons := NewCoupons(couponAPI, &MockAuth{authed: true})
		couponAPI.On("ValidateCoupon", ctx, "WELCOME-ABC123", int64(200000)).
			Return(welcomeCoupon(), int64(20000), nil)

		applied, err := coupons.Validate(ctx, "welcome-abc123", 200000)
		assert.NoError(t, err)
		assert.Equal(t, "WELCOME-ABC123", applied.Coupon.Code)
		assert.Equal(t, int64(20000), applied.DiscountCents)
	})

	t.Run("4xx maps to invalid-or-expired", func(t *testing.T) {
		couponAPI := new(MockCouponAPI)
		coupons := NewCoupons(couponAPI, &MockAuth{authed: true})
		couponAPI.On("ValidateCoupon", ctx, "BOGUS", int64(200000)).
			Return(domain.Coupon{}, int64(0), &domain.ServerError{StatusCode: 400, Message: "invalid coupon code"})

		_, err := coupons.Validate(ctx, "bogus", 200000)
		assert.ErrorIs(t, err, domain.ErrInvalidOrExpired)
		assert.Contains(t, err.Error(), "invalid coupon code")
	})

	t.Run("5xx surfaces as server rejection", func(t *testing.T) {
		couponAPI := new(MockCouponAPI)
		coupons := NewCoupons(couponAPI, &MockAuth{authed: true})
		couponAPI.On("ValidateCoupon", ctx, "WELCOME-ABC123", int64(200000)).
			Return(domain.Coupon{}, int64(0), &domain.ServerError{StatusCode: 502, Message: "bad gateway"})

		_, err := coupons.Validate(ctx, "WELCOME-ABC123", 200000)
		assert.NotErrorIs(t, err, domain.ErrInvalidOrExpired)
		assert.True(t, domain.IsServerRejection(err))
	})
}

func TestCoupons_ApplyAndRemove(t *testing.T) {
	ctx := context.Background()
	couponAPI := new(MockCouponAPI)
	coupons := NewCoupons(couponAPI, &MockAuth{authed: true})

	couponAPI.On("ValidateCoupon", ctx, "WELCOME-ABC123", int64(200000)).
		Return(welcomeCoupon(), int64(20000), nil)
	couponAPI.On("ApplyCoupon", ctx, "c1").Return(nil)

	applied, err := coupons.Apply(ctx, "WELCOME-ABC123", 200000)
	assert.NoError(t, err)
	assert.Equal(t, int64(20000), applied.DiscountCents)
	assert.Equal(t, int64(20000), coupons.DiscountCents())

	// Single slot: a second coupon replaces the first.
	flat := domain.Coupon{ID: "c2", Code: "FLAT200", DiscountType: domain.DiscountTypeFixedAmount, DiscountValue: 20000}
	couponAPI.On("ValidateCoupon", ctx, "FLAT200", int64(200000)).Return(flat, int64(20000), nil)
	couponAPI.On("ApplyCoupon", ctx, "c2").Return(nil)
	_, err = coupons.Apply(ctx, "FLAT200", 200000)
	assert.NoError(t, err)
	current, ok := coupons.Applied()
	assert.True(t, ok)
	assert.Equal(t, "FLAT200", current.Coupon.Code)

	// Removal clears the slot: no code, zero discount.
	coupons.Remove()
	_, ok = coupons.Applied()
	assert.False(t, ok)
	assert.Equal(t, int64(0), coupons.DiscountCents())
}

func TestCoupons_ForOrder(t *testing.T) {
	ctx := context.Background()
	couponAPI := new(MockCouponAPI)
	coupons := NewCoupons(couponAPI, &MockAuth{authed: true})
	couponAPI.On("AvailableCoupons", ctx).Return([]domain.Coupon{welcomeCoupon()}, nil)
	assert.NoError(t, coupons.Refresh(ctx))

	t.Run("Short of minimum carries the exact shortfall", func(t *testing.T) {
		annotated := coupons.ForOrder(30000) // ₹300 vs ₹500 minimum
		assert.Len(t, annotated, 1)
		assert.False(t, annotated[0].MeetsMinimum)
		assert.Equal(t, int64(20000), annotated[0].AmountShortCents) // ₹200 short
	})

	t.Run("At or above minimum", func(t *testing.T) {
		annotated := coupons.ForOrder(50000)
		assert.True(t, annotated[0].MeetsMinimum)
		assert.Equal(t, int64(0), annotated[0].AmountShortCents)
	})
}
