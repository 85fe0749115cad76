package pricing

import (
	"fmt"

	"rentkart-storefront/internal/domain"
)

// PriceFor returns the product's rate for the selected duration bucket in
// paise. A zero/unset rate means the bucket is not offered and yields
// domain.ErrDurationUnavailable.
func PriceFor(p domain.Product, bucket domain.DurationBucket) (int64, error) {
	rate := p.RateFor(bucket)
	if rate <= 0 {
		return 0, domain.ErrDurationUnavailable
	}
	return rate, nil
}

// AvailableBuckets returns the buckets the product actually offers, in
// hourly/daily/weekly order. Buckets with a zero rate are excluded.
func AvailableBuckets(p domain.Product) []domain.DurationBucket {
	var buckets []domain.DurationBucket
	for _, b := range []domain.DurationBucket{domain.BucketHourly, domain.BucketDaily, domain.BucketWeekly} {
		if p.RateFor(b) > 0 {
			buckets = append(buckets, b)
		}
	}
	return buckets
}

// LineTotal computes the cart line total for a product, bucket and quantity.
// Quantity must be a positive integer.
func LineTotal(p domain.Product, bucket domain.DurationBucket, quantity int) (int64, error) {
	if quantity < 1 {
		return 0, fmt.Errorf("quantity must be at least 1, got %d", quantity)
	}
	rate, err := PriceFor(p, bucket)
	if err != nil {
		return 0, err
	}
	return rate * int64(quantity), nil
}

// DiscountForDays returns the achievable discount tier, in percent, for a
// rental length in days. The tier is informational only and is never
// subtracted from a cart total.
func DiscountForDays(days int) int {
	switch {
	case days >= 7:
		return 12
	case days >= 5:
		return 8
	case days >= 3:
		return 5
	default:
		return 0
	}
}
