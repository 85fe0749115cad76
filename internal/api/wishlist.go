package api

import (
	"context"
	"net/http"

	"rentkart-storefront/internal/domain"
)

type addWishlistItemRequest struct {
	ProductID string `json:"productId"`
}

// FetchWishlist returns the server-side wishlist as a product set.
func (c *Client) FetchWishlist(ctx context.Context) ([]domain.Product, error) {
	var payload wishlistPayload
	if err := c.do(ctx, http.MethodGet, "/wishlist", nil, &payload); err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, len(payload.Items))
	for _, item := range payload.Items {
		products = append(products, item.Product.toDomain())
	}
	return products, nil
}

// AddWishlistItem adds a product; the server deduplicates by product id.
func (c *Client) AddWishlistItem(ctx context.Context, productID string) error {
	return c.do(ctx, http.MethodPost, "/wishlist/items", addWishlistItemRequest{ProductID: productID}, nil)
}

// RemoveWishlistItem removes a product by id.
func (c *Client) RemoveWishlistItem(ctx context.Context, productID string) error {
	return c.do(ctx, http.MethodDelete, "/wishlist/items/"+productID, nil, nil)
}

// ClearWishlist empties the wishlist.
func (c *Client) ClearWishlist(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/wishlist", nil, nil)
}

// CheckWishlist asks the server whether a product is wishlisted.
func (c *Client) CheckWishlist(ctx context.Context, productID string) (bool, error) {
	var payload wishlistCheckPayload
	if err := c.do(ctx, http.MethodGet, "/wishlist/check/"+productID, nil, &payload); err != nil {
		return false, err
	}
	return payload.InWishlist, nil
}
