package pricing

import (
	"testing"

	"rentkart-storefront/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestPriceFor(t *testing.T) {
	product := domain.Product{
		ID:                "p1",
		Name:              "Excavator",
		PricePerHourCents: 50000,  // ₹500.00
		PricePerDayCents:  100000, // ₹1000.00
		PricePerWeekCents: 0,      // weekly not offered
	}

	t.Run("Configured rate returned exactly", func(t *testing.T) {
		rate, err := PriceFor(product, domain.BucketHourly)
		assert.NoError(t, err)
		assert.Equal(t, int64(50000), rate)

		rate, err = PriceFor(product, domain.BucketDaily)
		assert.NoError(t, err)
		assert.Equal(t, int64(100000), rate)
	})

	t.Run("Zero rate is unavailable", func(t *testing.T) {
		_, err := PriceFor(product, domain.BucketWeekly)
		assert.ErrorIs(t, err, domain.ErrDurationUnavailable)
	})

	t.Run("Unknown bucket is unavailable", func(t *testing.T) {
		_, err := PriceFor(product, domain.DurationBucket("monthly"))
		assert.ErrorIs(t, err, domain.ErrDurationUnavailable)
	})
}

func TestAvailableBuckets(t *testing.T) {
	t.Run("Excludes zero-rate buckets", func(t *testing.T) {
		product := domain.Product{PricePerDayCents: 100000}
		assert.Equal(t, []domain.DurationBucket{domain.BucketDaily}, AvailableBuckets(product))
	})

	t.Run("All buckets offered", func(t *testing.T) {
		product := domain.Product{PricePerHourCents: 1, PricePerDayCents: 2, PricePerWeekCents: 3}
		assert.Len(t, AvailableBuckets(product), 3)
	})

	t.Run("Nothing offered", func(t *testing.T) {
		assert.Empty(t, AvailableBuckets(domain.Product{}))
	})
}

func TestLineTotal(t *testing.T) {
	product := domain.Product{PricePerDayCents: 100000}

	t.Run("Rate times quantity", func(t *testing.T) {
		// Day rate ₹1000, quantity 2 → ₹2000.
		total, err := LineTotal(product, domain.BucketDaily, 2)
		assert.NoError(t, err)
		assert.Equal(t, int64(200000), total)
	})

	t.Run("Quantity must be positive", func(t *testing.T) {
		_, err := LineTotal(product, domain.BucketDaily, 0)
		assert.Error(t, err)
		_, err = LineTotal(product, domain.BucketDaily, -1)
		assert.Error(t, err)
	})

	t.Run("Unavailable bucket rejected", func(t *testing.T) {
		_, err := LineTotal(product, domain.BucketWeekly, 1)
		assert.ErrorIs(t, err, domain.ErrDurationUnavailable)
	})
}

func TestDiscountForDays(t *testing.T) {
	tests := []struct {
		days     int
		expected int
	}{
		{0, 0},
		{1, 0},
		{2, 0},
		{3, 5},
		{4, 5},
		{5, 8},
		{6, 8},
		{7, 12},
		{10, 12},
		{365, 12},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, DiscountForDays(tt.days), "days=%d", tt.days)
	}

	t.Run("Monotonically non-decreasing", func(t *testing.T) {
		prev := 0
		for days := 0; days <= 30; days++ {
			tier := DiscountForDays(days)
			assert.GreaterOrEqual(t, tier, prev)
			assert.Contains(t, []int{0, 5, 8, 12}, tier)
			prev = tier
		}
	})
}
