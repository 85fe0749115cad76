package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rentkart-storefront/internal/domain"
)

func fixedNow() time.Time {
	return time.Date(2024, 2, 1, 10, 30, 0, 0, time.UTC)
}

func day(d int) time.Time {
	return time.Date(2024, 2, d, 0, 0, 0, 0, time.UTC)
}

func TestSelectDelivery(t *testing.T) {
	t.Run("Focus advances to pickup", func(t *testing.T) {
		r := NewResolverAt(fixedNow)
		assert.Equal(t, FieldDelivery, r.ActiveField())
		assert.True(t, r.SelectDelivery(day(10)))
		assert.Equal(t, FieldPickup, r.ActiveField())
	})

	t.Run("Past date rejected", func(t *testing.T) {
		r := NewResolverAt(fixedNow)
		assert.False(t, r.SelectDelivery(day(1).AddDate(0, 0, -1)))
		_, set := r.Delivery()
		assert.False(t, set)
	})

	t.Run("Today at midnight allowed", func(t *testing.T) {
		r := NewResolverAt(fixedNow)
		assert.True(t, r.SelectDelivery(day(1)))
	})

	t.Run("Pickup auto-advances when overtaken", func(t *testing.T) {
		r := NewResolverAt(fixedNow)
		r.SelectDelivery(day(10))
		assert.True(t, r.SelectPickup(day(12)))

		// New delivery past the pickup: pickup becomes delivery + 1 day.
		assert.True(t, r.SelectDelivery(day(15)))
		pickup, _ := r.Pickup()
		assert.Equal(t, day(16), pickup)
	})

	t.Run("Pickup equal to new delivery also advances", func(t *testing.T) {
		r := NewResolverAt(fixedNow)
		r.SelectDelivery(day(10))
		r.SelectPickup(day(12))
		assert.True(t, r.SelectDelivery(day(12)))
		pickup, _ := r.Pickup()
		assert.Equal(t, day(13), pickup)
	})

	t.Run("Pickup strictly after new delivery is kept", func(t *testing.T) {
		r := NewResolverAt(fixedNow)
		r.SelectDelivery(day(10))
		r.SelectPickup(day(20))
		r.SelectDelivery(day(12))
		pickup, _ := r.Pickup()
		assert.Equal(t, day(20), pickup)
	})
}

func TestSelectPickup(t *testing.T) {
	t.Run("Rejected without delivery date", func(t *testing.T) {
		r := NewResolverAt(fixedNow)
		assert.False(t, r.SelectPickup(day(12)))
	})

	t.Run("Must be strictly after delivery", func(t *testing.T) {
		r := NewResolverAt(fixedNow)
		r.SelectDelivery(day(10))
		assert.False(t, r.SelectPickup(day(10)))
		assert.False(t, r.SelectPickup(day(9)))

		// Ignored selection leaves state untouched.
		_, set := r.Pickup()
		assert.False(t, set)

		assert.True(t, r.SelectPickup(day(11)))
	})
}

func TestDisabledDatePolicies(t *testing.T) {
	r := NewResolverAt(fixedNow)
	assert.True(t, r.DeliveryDisabled(time.Date(2024, 1, 31, 23, 0, 0, 0, time.UTC)))
	assert.False(t, r.DeliveryDisabled(day(1)))
	assert.False(t, r.DeliveryDisabled(day(20)))

	// Before a delivery date exists, every pickup date is disabled.
	assert.True(t, r.PickupDisabled(day(20)))

	r.SelectDelivery(day(10))
	assert.True(t, r.PickupDisabled(day(9)))
	assert.True(t, r.PickupDisabled(day(10)))
	assert.False(t, r.PickupDisabled(day(11)))
}

func TestRentalDays(t *testing.T) {
	t.Run("Zero when dates unset", func(t *testing.T) {
		r := NewResolverAt(fixedNow)
		assert.Equal(t, 0, r.RentalDays())
		r.SelectDelivery(day(10))
		assert.Equal(t, 0, r.RentalDays())
	})

	t.Run("Whole days", func(t *testing.T) {
		r := NewResolverAt(fixedNow)
		r.SelectDelivery(day(10))
		r.SelectPickup(day(13))
		assert.Equal(t, 3, r.RentalDays())
		assert.Equal(t, "03", r.FormatRentalDays())
	})

	t.Run("Partial day rounds up", func(t *testing.T) {
		r := NewResolverAt(fixedNow)
		r.SelectDelivery(day(10))
		r.SelectPickup(day(13).Add(6 * time.Hour))
		assert.Equal(t, 4, r.RentalDays())
	})

	t.Run("Minimum one day", func(t *testing.T) {
		r := NewResolverAt(fixedNow)
		r.SelectDelivery(day(10))
		r.SelectPickup(day(10).Add(2 * time.Hour))
		assert.Equal(t, 1, r.RentalDays())
		assert.Equal(t, "01", r.FormatRentalDays())
	})
}

func TestChargeablePeriod(t *testing.T) {
	t.Run("Empty until both dates set", func(t *testing.T) {
		r := NewResolverAt(fixedNow)
		assert.Equal(t, "", r.ChargeablePeriod())
		r.SelectDelivery(day(10))
		assert.Equal(t, "", r.ChargeablePeriod())
	})

	t.Run("Formatted with ordinals", func(t *testing.T) {
		r := NewResolverAt(fixedNow)
		r.SelectDelivery(day(10))
		r.SelectPickup(day(13))
		assert.Equal(t, "10th Feb – 13th Feb", r.ChargeablePeriod())
	})

	t.Run("Ordinal suffixes", func(t *testing.T) {
		r := NewResolverAt(fixedNow)
		r.SelectDelivery(day(1))
		r.SelectPickup(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, "1st Feb – 2nd Mar", r.ChargeablePeriod())

		r.SelectPickup(time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, "1st Feb – 3rd Mar", r.ChargeablePeriod())

		r.SelectPickup(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, "1st Feb – 11th Mar", r.ChargeablePeriod())

		r.SelectPickup(time.Date(2024, 3, 21, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, "1st Feb – 21st Mar", r.ChargeablePeriod())
	})
}

func TestSelection(t *testing.T) {
	t.Run("Requires both dates", func(t *testing.T) {
		r := NewResolverAt(fixedNow)
		_, err := r.Selection(domain.BucketDaily)
		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("Carries dates and bucket", func(t *testing.T) {
		r := NewResolverAt(fixedNow)
		r.SelectDelivery(day(10))
		r.SelectPickup(day(13))
		sel, err := r.Selection(domain.BucketDaily)
		assert.NoError(t, err)
		assert.Equal(t, day(10), sel.DeliveryDate)
		assert.Equal(t, day(13), sel.PickupDate)
		assert.Equal(t, domain.BucketDaily, sel.Bucket)
	})
}
