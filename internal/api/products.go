package api

import (
	"context"
	"net/http"

	"rentkart-storefront/internal/domain"
)

// Products lists the rentable catalog, normalizing pricing entries and
// inventory into domain products.
func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var payload productsPayload
	if err := c.do(ctx, http.MethodGet, "/products", nil, &payload); err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, len(payload.Products))
	for _, p := range payload.Products {
		products = append(products, p.toDomain())
	}
	return products, nil
}
