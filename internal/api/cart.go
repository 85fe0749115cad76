package api

import (
	"context"
	"net/http"
	"time"

	"rentkart-storefront/internal/domain"
)

// AddCartItemRequest is the POST /cart/items body. The server derives the
// unit price from the product's configured rate for the duration type; the
// client never sends a price.
type AddCartItemRequest struct {
	ProductID    string    `json:"productId"`
	Quantity     int       `json:"quantity"`
	DurationType string    `json:"durationType"`
	RentalStart  time.Time `json:"rentalStart"`
	RentalEnd    time.Time `json:"rentalEnd"`
}

// NewAddCartItemRequest builds the wire request from domain values.
func NewAddCartItemRequest(productID string, quantity int, bucket domain.DurationBucket, start, end time.Time) AddCartItemRequest {
	return AddCartItemRequest{
		ProductID:    productID,
		Quantity:     quantity,
		DurationType: bucketToWire(bucket),
		RentalStart:  start,
		RentalEnd:    end,
	}
}

// FetchCart retrieves the authoritative cart and flattens it into CartLines.
func (c *Client) FetchCart(ctx context.Context) ([]domain.CartLine, error) {
	var payload cartPayload
	if err := c.do(ctx, http.MethodGet, "/cart", nil, &payload); err != nil {
		return nil, err
	}
	lines := make([]domain.CartLine, 0, len(payload.Items))
	for _, item := range payload.Items {
		lines = append(lines, item.toDomain())
	}
	return lines, nil
}

// AddCartItem adds or replaces a line on the server cart. The caller is
// expected to re-fetch afterwards; the response body is not relied upon.
func (c *Client) AddCartItem(ctx context.Context, req AddCartItemRequest) error {
	return c.do(ctx, http.MethodPost, "/cart/items", req, nil)
}

// RemoveCartItem deletes a single line by its server-assigned id.
func (c *Client) RemoveCartItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/cart/items/"+id, nil, nil)
}

// ClearCart deletes every line.
func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/cart", nil, nil)
}
