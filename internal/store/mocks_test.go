package store

import (
	"context"

	"github.com/stretchr/testify/mock"

	"rentkart-storefront/internal/api"
	"rentkart-storefront/internal/domain"
)

type MockCartAPI struct {
	mock.Mock
}

func (m *MockCartAPI) FetchCart(ctx context.Context) ([]domain.CartLine, error) {
	args := m.Called(ctx)
	if lines := args.Get(0); lines != nil {
		return lines.([]domain.CartLine), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCartAPI) AddCartItem(ctx context.Context, req api.AddCartItemRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockCartAPI) RemoveCartItem(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCartAPI) ClearCart(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockCouponAPI struct {
	mock.Mock
}

func (m *MockCouponAPI) AvailableCoupons(ctx context.Context) ([]domain.Coupon, error) {
	args := m.Called(ctx)
	if coupons := args.Get(0); coupons != nil {
		return coupons.([]domain.Coupon), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCouponAPI) ValidateCoupon(ctx context.Context, code string, orderCents int64) (domain.Coupon, int64, error) {
	args := m.Called(ctx, code, orderCents)
	return args.Get(0).(domain.Coupon), args.Get(1).(int64), args.Error(2)
}

func (m *MockCouponAPI) ApplyCoupon(ctx context.Context, couponID string) error {
	return m.Called(ctx, couponID).Error(0)
}

type MockWishlistAPI struct {
	mock.Mock
}

func (m *MockWishlistAPI) FetchWishlist(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if products := args.Get(0); products != nil {
		return products.([]domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockWishlistAPI) AddWishlistItem(ctx context.Context, productID string) error {
	return m.Called(ctx, productID).Error(0)
}

func (m *MockWishlistAPI) RemoveWishlistItem(ctx context.Context, productID string) error {
	return m.Called(ctx, productID).Error(0)
}

func (m *MockWishlistAPI) ClearWishlist(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockWishlistAPI) CheckWishlist(ctx context.Context, productID string) (bool, error) {
	args := m.Called(ctx, productID)
	return args.Bool(0), args.Error(1)
}

type MockAuth struct {
	authed bool
}

func (m *MockAuth) Authenticated() bool { return m.authed }
