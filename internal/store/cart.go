package store

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"rentkart-storefront/internal/api"
	"rentkart-storefront/internal/domain"
	"rentkart-storefront/internal/logger"
	"rentkart-storefront/internal/pricing"
)

// Cart mirrors the authoritative server cart. Every successful mutation is
// followed by a full re-fetch, so the local copy is only ever a cache of the
// last server response (last-fetch-wins).
type Cart struct {
	api  CartAPI
	auth Authenticator

	mu    sync.Mutex
	lines []domain.CartLine

	group singleflight.Group
}

func NewCart(cartAPI CartAPI, auth Authenticator) *Cart {
	return &Cart{api: cartAPI, auth: auth}
}

func (c *Cart) Strategy() Strategy { return StrategyPessimistic }

// Refresh replaces local state wholesale with the server cart. Overlapping
// calls share a single fetch. On failure the local cart is left empty rather
// than stale.
func (c *Cart) Refresh(ctx context.Context) error {
	_, err, _ := c.group.Do("fetch", func() (any, error) {
		lines, err := c.api.FetchCart(ctx)
		c.mu.Lock()
		defer c.mu.Unlock()
		if err != nil {
			logger.Error("Cart fetch failed, resetting local cart", "error", err)
			c.lines = nil
			return nil, err
		}
		c.lines = lines
		return nil, nil
	})
	return err
}

// AddItem validates preconditions locally, posts the new line, then
// reconciles through a full refresh. There is no optimistic insert: a
// rejected add leaves the cart unchanged.
//
// The line's rental period is the resolver's delivery→pickup range; the
// duration bucket selects the unit price and plays no part in date math.
func (c *Cart) AddItem(ctx context.Context, product domain.Product, quantity int, sel domain.RentalSelection) error {
	if !c.auth.Authenticated() {
		return domain.ErrAuthRequired
	}
	if sel.DeliveryDate.IsZero() || sel.PickupDate.IsZero() {
		return &domain.ValidationError{Field: "rental_dates", Reason: "select delivery and pickup dates first"}
	}
	if quantity < 1 {
		return &domain.ValidationError{Field: "quantity", Reason: "must be at least 1"}
	}
	if quantity > product.QuantityOnHand {
		return &domain.ValidationError{Field: "quantity", Reason: fmt.Sprintf("only %d in stock", product.QuantityOnHand)}
	}
	if _, err := pricing.PriceFor(product, sel.Bucket); err != nil {
		return err
	}

	req := api.NewAddCartItemRequest(product.ID, quantity, sel.Bucket, sel.DeliveryDate, sel.PickupDate)
	if err := c.api.AddCartItem(ctx, req); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// RemoveItem deletes a line on the server and only then drops it locally.
// A failed delete leaves local state untouched.
func (c *Cart) RemoveItem(ctx context.Context, id string) error {
	if err := c.api.RemoveCartItem(ctx, id); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.lines[:0]
	for _, line := range c.lines {
		if line.ID != id {
			kept = append(kept, line)
		}
	}
	c.lines = kept
	return nil
}

// UpdateItem changes a line's quantity by re-posting the line (the server
// replaces a line with the same product and rental period) and refreshing.
// Local state is never edited without a server round trip.
func (c *Cart) UpdateItem(ctx context.Context, id string, quantity int) error {
	c.mu.Lock()
	var found *domain.CartLine
	for i := range c.lines {
		if c.lines[i].ID == id {
			line := c.lines[i]
			found = &line
			break
		}
	}
	c.mu.Unlock()

	if found == nil {
		return &domain.ValidationError{Field: "id", Reason: "no such cart line"}
	}
	if quantity < 1 {
		return &domain.ValidationError{Field: "quantity", Reason: "must be at least 1"}
	}
	if found.StockQty > 0 && quantity > found.StockQty {
		return &domain.ValidationError{Field: "quantity", Reason: fmt.Sprintf("only %d in stock", found.StockQty)}
	}

	req := api.NewAddCartItemRequest(found.ProductID, quantity, found.Bucket, found.RentalStart, found.RentalEnd)
	if err := c.api.AddCartItem(ctx, req); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// Clear empties the server cart, then the local copy.
func (c *Cart) Clear(ctx context.Context) error {
	if err := c.api.ClearCart(ctx); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
	return nil
}

// Lines returns a copy of the cached cart lines.
func (c *Cart) Lines() []domain.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	lines := make([]domain.CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// TotalCents is the sum of all line totals.
func (c *Cart) TotalCents() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total int64
	for _, line := range c.lines {
		total += line.TotalCents
	}
	return total
}
