package store

import (
	"context"
	"errors"
	"sync"

	"rentkart-storefront/internal/domain"
	"rentkart-storefront/internal/logger"
)

// Wishlist is a fully optimistic product set: every mutation applies locally
// first, then issues the network call, restoring the exact pre-mutation
// snapshot when the server refuses.
//
// A 401 is not an error here: the wishlist degrades to local-only mode so an
// unauthenticated visitor keeps a client-side wishlist that simply never
// persists.
type Wishlist struct {
	api WishlistAPI

	mu        sync.Mutex
	products  []domain.Product
	localOnly bool
}

func NewWishlist(wishlistAPI WishlistAPI) *Wishlist {
	return &Wishlist{api: wishlistAPI}
}

func (w *Wishlist) Strategy() Strategy { return StrategyOptimistic }

// Refresh replaces the local set with the server's. In local-only mode it is
// a no-op; a 401 switches local-only mode on and keeps the local set.
func (w *Wishlist) Refresh(ctx context.Context) error {
	w.mu.Lock()
	if w.localOnly {
		w.mu.Unlock()
		return nil
	}
	w.mu.Unlock()

	products, err := w.api.FetchWishlist(ctx)
	if errors.Is(err, domain.ErrAuthRequired) {
		w.mu.Lock()
		w.localOnly = true
		w.mu.Unlock()
		logger.Debug("Wishlist switched to local-only mode")
		return nil
	}
	if err != nil {
		logger.Error("Wishlist fetch failed", "error", err)
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.products = products
	return nil
}

// Resync leaves local-only mode (after a sign-in) and re-fetches.
func (w *Wishlist) Resync(ctx context.Context) error {
	w.mu.Lock()
	w.localOnly = false
	w.mu.Unlock()
	return w.Refresh(ctx)
}

// LocalOnly reports whether mutations are currently client-side only.
func (w *Wishlist) LocalOnly() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.localOnly
}

// Add inserts a product optimistically. Duplicates are ignored.
func (w *Wishlist) Add(ctx context.Context, product domain.Product) error {
	w.mu.Lock()
	if w.contains(product.ID) {
		w.mu.Unlock()
		return nil
	}
	snapshot := w.snapshot()
	w.products = append(w.products, product)
	localOnly := w.localOnly
	w.mu.Unlock()

	if localOnly {
		return nil
	}
	return w.reconcile(w.api.AddWishlistItem(ctx, product.ID), snapshot)
}

// Remove drops a product optimistically. Removing an absent product is a
// no-op.
func (w *Wishlist) Remove(ctx context.Context, productID string) error {
	w.mu.Lock()
	if !w.contains(productID) {
		w.mu.Unlock()
		return nil
	}
	snapshot := w.snapshot()
	kept := w.products[:0]
	for _, p := range w.products {
		if p.ID != productID {
			kept = append(kept, p)
		}
	}
	w.products = kept
	localOnly := w.localOnly
	w.mu.Unlock()

	if localOnly {
		return nil
	}
	return w.reconcile(w.api.RemoveWishlistItem(ctx, productID), snapshot)
}

// Toggle adds the product if absent, removes it if present. Returns whether
// the product ended up in the wishlist.
func (w *Wishlist) Toggle(ctx context.Context, product domain.Product) (bool, error) {
	if w.Contains(product.ID) {
		return false, w.Remove(ctx, product.ID)
	}
	return true, w.Add(ctx, product)
}

// Clear empties the set optimistically.
func (w *Wishlist) Clear(ctx context.Context) error {
	w.mu.Lock()
	snapshot := w.snapshot()
	w.products = nil
	localOnly := w.localOnly
	w.mu.Unlock()

	if localOnly {
		return nil
	}
	return w.reconcile(w.api.ClearWishlist(ctx), snapshot)
}

// reconcile keeps the optimistic state on success, downgrades to local-only
// on 401, and restores the snapshot on any other failure.
func (w *Wishlist) reconcile(err error, snapshot []domain.Product) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrAuthRequired) {
		w.mu.Lock()
		w.localOnly = true
		w.mu.Unlock()
		logger.Debug("Wishlist switched to local-only mode")
		return nil
	}
	w.mu.Lock()
	w.products = snapshot
	w.mu.Unlock()
	return err
}

// Contains reports membership by product id.
func (w *Wishlist) Contains(productID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.contains(productID)
}

// Products returns a copy of the wishlist contents.
func (w *Wishlist) Products() []domain.Product {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshot()
}

func (w *Wishlist) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.products)
}

func (w *Wishlist) contains(productID string) bool {
	for _, p := range w.products {
		if p.ID == productID {
			return true
		}
	}
	return false
}

func (w *Wishlist) snapshot() []domain.Product {
	snapshot := make([]domain.Product, len(w.products))
	copy(snapshot, w.products)
	return snapshot
}
