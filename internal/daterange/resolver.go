// Package daterange resolves the delivery/pickup date pair a renter selects
// through a two-step calendar picker, and derives the rental day count and
// chargeable period shown alongside it.
package daterange

import (
	"fmt"
	"time"

	"rentkart-storefront/internal/domain"
)

// Field identifies which date the next calendar interaction affects.
type Field string

const (
	FieldDelivery Field = "delivery"
	FieldPickup   Field = "pickup"
)

// Resolver holds the picker state. Selecting a delivery date auto-advances
// focus to the pickup date; a pickup date is only ever strictly after the
// delivery date.
type Resolver struct {
	delivery time.Time
	pickup   time.Time
	active   Field
	now      func() time.Time
}

func NewResolver() *Resolver {
	return &Resolver{active: FieldDelivery, now: time.Now}
}

// NewResolverAt pins "today" for the disabled-date policy. Used by tests.
func NewResolverAt(now func() time.Time) *Resolver {
	return &Resolver{active: FieldDelivery, now: now}
}

// ActiveField returns which date the next selection affects.
func (r *Resolver) ActiveField() Field { return r.active }

// Delivery returns the selected delivery date, if set.
func (r *Resolver) Delivery() (time.Time, bool) { return r.delivery, !r.delivery.IsZero() }

// Pickup returns the selected pickup date, if set.
func (r *Resolver) Pickup() (time.Time, bool) { return r.pickup, !r.pickup.IsZero() }

// SelectDelivery sets a new delivery date and moves focus to the pickup date.
// If the existing pickup date is no longer strictly after the new delivery
// date it is advanced to delivery + 1 day. Dates the disabled-date policy
// excludes are rejected.
func (r *Resolver) SelectDelivery(d time.Time) bool {
	if r.DeliveryDisabled(d) {
		return false
	}
	r.delivery = d
	if !r.pickup.IsZero() && !r.pickup.After(d) {
		r.pickup = d.AddDate(0, 0, 1)
	}
	r.active = FieldPickup
	return true
}

// SelectPickup sets the pickup date. A date not strictly after the current
// delivery date is ignored; the return value reports whether the selection
// was accepted so callers may surface the rejection.
func (r *Resolver) SelectPickup(p time.Time) bool {
	if r.delivery.IsZero() || !p.After(r.delivery) {
		return false
	}
	r.pickup = p
	return true
}

// DeliveryDisabled reports whether d is excluded from delivery selection:
// anything strictly before today at local midnight.
func (r *Resolver) DeliveryDisabled(d time.Time) bool {
	now := r.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return d.Before(midnight)
}

// PickupDisabled reports whether p is excluded from pickup selection:
// anything on or before the active delivery date.
func (r *Resolver) PickupDisabled(p time.Time) bool {
	return r.delivery.IsZero() || !p.After(r.delivery)
}

// RentalDays returns ceil((pickup − delivery) / 24h). Zero when either date
// is unset; at least 1 otherwise.
func (r *Resolver) RentalDays() int {
	if r.delivery.IsZero() || r.pickup.IsZero() {
		return 0
	}
	span := r.pickup.Sub(r.delivery)
	days := int(span / (24 * time.Hour))
	if span%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// FormatRentalDays renders the day count zero-padded to two digits.
func (r *Resolver) FormatRentalDays() string {
	return fmt.Sprintf("%02d", r.RentalDays())
}

// ChargeablePeriod renders the delivery→pickup span for display, e.g.
// "10th Feb – 13th Feb". Empty when either date is unset.
func (r *Resolver) ChargeablePeriod() string {
	if r.delivery.IsZero() || r.pickup.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s – %s", formatDay(r.delivery), formatDay(r.pickup))
}

// Selection returns the completed rental selection for a pricing bucket.
func (r *Resolver) Selection(bucket domain.DurationBucket) (domain.RentalSelection, error) {
	if r.delivery.IsZero() || r.pickup.IsZero() {
		return domain.RentalSelection{}, &domain.ValidationError{Field: "rental_dates", Reason: "both delivery and pickup dates must be selected"}
	}
	return domain.RentalSelection{
		DeliveryDate: r.delivery,
		PickupDate:   r.pickup,
		Bucket:       bucket,
	}, nil
}

func formatDay(t time.Time) string {
	return fmt.Sprintf("%d%s %s", t.Day(), ordinal(t.Day()), t.Format("Jan"))
}

func ordinal(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
