package domain

// DurationBucket is a pricing tier a product may offer. A product offers a
// bucket only when the matching rate is nonzero.
type DurationBucket string

const (
	BucketHourly DurationBucket = "hourly"
	BucketDaily  DurationBucket = "daily"
	BucketWeekly DurationBucket = "weekly"
)

type Product struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Category          string `json:"category"`
	VendorID          string `json:"vendor_id"`
	PricePerHourCents int64  `json:"price_per_hour_cents"`
	PricePerDayCents  int64  `json:"price_per_day_cents"`
	PricePerWeekCents int64  `json:"price_per_week_cents"`
	QuantityOnHand    int    `json:"quantity_on_hand"`
}

// RateFor returns the configured rate for a bucket. Zero means the bucket is
// not offered for this product.
func (p Product) RateFor(bucket DurationBucket) int64 {
	switch bucket {
	case BucketHourly:
		return p.PricePerHourCents
	case BucketDaily:
		return p.PricePerDayCents
	case BucketWeekly:
		return p.PricePerWeekCents
	default:
		return 0
	}
}
