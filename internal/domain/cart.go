package domain

import "time"

// CartLine is one rentable product in the cart. The server owns the
// authoritative cart; a local copy is stale after any mutation until the next
// full fetch.
type CartLine struct {
	ID             string         `json:"id"`
	ProductID      string         `json:"product_id"`
	ProductName    string         `json:"product_name"`
	Quantity       int            `json:"quantity"`
	StockQty       int            `json:"stock_qty"`
	Bucket         DurationBucket `json:"duration_bucket"`
	UnitPriceCents int64          `json:"unit_price_cents"`
	RentalStart    time.Time      `json:"rental_start"`
	RentalEnd      time.Time      `json:"rental_end"`
	TotalCents     int64          `json:"total_cents"`
}

// RentalSelection is the renter's chosen delivery/pickup range and pricing
// bucket. PickupDate is strictly after DeliveryDate.
type RentalSelection struct {
	DeliveryDate time.Time      `json:"delivery_date"`
	PickupDate   time.Time      `json:"pickup_date"`
	Bucket       DurationBucket `json:"duration_bucket"`
}
