// Package store holds the client-side state that mirrors the server's cart,
// coupon and wishlist resources. There are no package-level singletons: a
// Store is constructed explicitly and injected, and reads return copies.
//
// Each collection declares its reconciliation strategy up front. The cart is
// pessimistic: the server mutates first and local state is rebuilt from a
// full re-fetch. The wishlist is optimistic: local state mutates first and
// the exact pre-mutation snapshot is restored when the server refuses.
package store

import (
	"context"
	"time"

	"rentkart-storefront/internal/api"
	"rentkart-storefront/internal/domain"
)

type Strategy string

const (
	StrategyPessimistic Strategy = "pessimistic"
	StrategyOptimistic  Strategy = "optimistic"
)

// SyncedCollection is a local mirror of a remote collection.
type SyncedCollection interface {
	Strategy() Strategy
	Refresh(ctx context.Context) error
	Len() int
}

// Authenticator reports whether a usable credential is present, letting
// synchronizers fail auth-gated actions before any network call.
type Authenticator interface {
	Authenticated() bool
}

// CartAPI is the slice of the marketplace API the cart depends on.
type CartAPI interface {
	FetchCart(ctx context.Context) ([]domain.CartLine, error)
	AddCartItem(ctx context.Context, req api.AddCartItemRequest) error
	RemoveCartItem(ctx context.Context, id string) error
	ClearCart(ctx context.Context) error
}

// CouponAPI is the slice of the marketplace API the coupon applier depends on.
type CouponAPI interface {
	AvailableCoupons(ctx context.Context) ([]domain.Coupon, error)
	ValidateCoupon(ctx context.Context, code string, orderCents int64) (domain.Coupon, int64, error)
	ApplyCoupon(ctx context.Context, couponID string) error
}

// WishlistAPI is the slice of the marketplace API the wishlist depends on.
type WishlistAPI interface {
	FetchWishlist(ctx context.Context) ([]domain.Product, error)
	AddWishlistItem(ctx context.Context, productID string) error
	RemoveWishlistItem(ctx context.Context, productID string) error
	ClearWishlist(ctx context.Context) error
	CheckWishlist(ctx context.Context, productID string) (bool, error)
}

// Store aggregates the synchronized collections for one storefront session.
type Store struct {
	Cart     *Cart
	Coupons  *Coupons
	Wishlist *Wishlist
}

func New(client *api.Client, auth Authenticator) *Store {
	return &Store{
		Cart:     NewCart(client, auth),
		Coupons:  NewCoupons(client, auth),
		Wishlist: NewWishlist(client),
	}
}

// RefreshAll re-fetches every collection. Used for the initial sync at
// startup; individual failures are logged by each collection and do not stop
// the rest.
func (s *Store) RefreshAll(ctx context.Context) {
	refreshCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	_ = s.Cart.Refresh(refreshCtx)
	_ = s.Coupons.Refresh(refreshCtx)
	_ = s.Wishlist.Refresh(refreshCtx)
}
