package api

import (
	"strconv"
	"strings"
	"time"

	"rentkart-storefront/internal/domain"
)

// Wire pricing entry types as the API sends them.
const (
	durationTypeHour = "HOUR"
	durationTypeDay  = "DAY"
	durationTypeWeek = "WEEK"
)

func bucketFromWire(durationType string) domain.DurationBucket {
	switch strings.ToUpper(durationType) {
	case durationTypeHour:
		return domain.BucketHourly
	case durationTypeDay:
		return domain.BucketDaily
	case durationTypeWeek:
		return domain.BucketWeekly
	default:
		return ""
	}
}

func bucketToWire(bucket domain.DurationBucket) string {
	switch bucket {
	case domain.BucketHourly:
		return durationTypeHour
	case domain.BucketDaily:
		return durationTypeDay
	case domain.BucketWeekly:
		return durationTypeWeek
	default:
		return ""
	}
}

type pricingEntry struct {
	Type  string `json:"type"`
	Price Amount `json:"price"`
}

type inventoryPayload struct {
	TotalQty int `json:"totalQty"`
}

type productPayload struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Category  string           `json:"category"`
	VendorID  string           `json:"vendorId"`
	Pricing   []pricingEntry   `json:"pricing"`
	Inventory inventoryPayload `json:"inventory"`
}

func (p productPayload) toDomain() domain.Product {
	product := domain.Product{
		ID:             p.ID,
		Name:           p.Name,
		Category:       p.Category,
		VendorID:       p.VendorID,
		QuantityOnHand: p.Inventory.TotalQty,
	}
	for _, entry := range p.Pricing {
		switch bucketFromWire(entry.Type) {
		case domain.BucketHourly:
			product.PricePerHourCents = entry.Price.Cents()
		case domain.BucketDaily:
			product.PricePerDayCents = entry.Price.Cents()
		case domain.BucketWeekly:
			product.PricePerWeekCents = entry.Price.Cents()
		}
	}
	return product
}

type cartLinePayload struct {
	ID           string         `json:"id"`
	Product      productPayload `json:"product"`
	Quantity     int            `json:"quantity"`
	DurationType string         `json:"durationType"`
	UnitPrice    Amount         `json:"unitPrice"`
	TotalPrice   Amount         `json:"totalPrice"`
	RentalStart  time.Time      `json:"rentalStart"`
	RentalEnd    time.Time      `json:"rentalEnd"`
}

// toDomain flattens the nested product/pricing/inventory shape into a
// CartLine.
func (l cartLinePayload) toDomain() domain.CartLine {
	return domain.CartLine{
		ID:             l.ID,
		ProductID:      l.Product.ID,
		ProductName:    l.Product.Name,
		Quantity:       l.Quantity,
		StockQty:       l.Product.Inventory.TotalQty,
		Bucket:         bucketFromWire(l.DurationType),
		UnitPriceCents: l.UnitPrice.Cents(),
		RentalStart:    l.RentalStart,
		RentalEnd:      l.RentalEnd,
		TotalCents:     l.TotalPrice.Cents(),
	}
}

type cartPayload struct {
	Items []cartLinePayload `json:"items"`
}

type couponPayload struct {
	ID                  string     `json:"id"`
	Code                string     `json:"code"`
	DiscountType        string     `json:"discountType"`
	DiscountValue       string     `json:"discountValue"`
	MinOrderAmount      *Amount    `json:"minOrderAmount"`
	MaxUsageCount       *int       `json:"maxUsageCount"`
	CurrentUsageCount   int        `json:"currentUsageCount"`
	ExpiryDate          *time.Time `json:"expiryDate"`
	IsWelcomeCoupon     bool       `json:"isWelcomeCoupon"`
	UserID              *string    `json:"userId"`
	IsApplicable        bool       `json:"isApplicable"`
	NotApplicableReason string     `json:"notApplicableReason"`
}

func (c couponPayload) toDomain() domain.Coupon {
	coupon := domain.Coupon{
		ID:                  c.ID,
		Code:                strings.ToUpper(strings.TrimSpace(c.Code)),
		DiscountType:        domain.CouponDiscountType(c.DiscountType),
		CurrentUsageCount:   c.CurrentUsageCount,
		MaxUsageCount:       c.MaxUsageCount,
		ExpiresAt:           c.ExpiryDate,
		IsWelcomeCoupon:     c.IsWelcomeCoupon,
		UserID:              c.UserID,
		IsApplicable:        c.IsApplicable,
		NotApplicableReason: c.NotApplicableReason,
	}
	if c.MinOrderAmount != nil {
		min := c.MinOrderAmount.Cents()
		coupon.MinOrderCents = &min
	}
	// A fixed discount is money; a percentage is a bare integer percent.
	if coupon.DiscountType == domain.DiscountTypeFixedAmount {
		if cents, err := ParseAmount(c.DiscountValue); err == nil {
			coupon.DiscountValue = cents
		}
	} else if percent, err := strconv.ParseFloat(c.DiscountValue, 64); err == nil {
		coupon.DiscountValue = int64(percent)
	}
	return coupon
}

type availableCouponsPayload struct {
	Coupons []couponPayload `json:"coupons"`
}

type validateCouponRequest struct {
	Code        string `json:"code"`
	OrderAmount Amount `json:"orderAmount"`
}

type validateCouponResponse struct {
	Coupon         couponPayload `json:"coupon"`
	DiscountAmount Amount        `json:"discountAmount"`
}

type applyCouponRequest struct {
	CouponID string `json:"couponId"`
}

type wishlistItemPayload struct {
	ID      string         `json:"id"`
	Product productPayload `json:"product"`
}

type wishlistPayload struct {
	Items []wishlistItemPayload `json:"items"`
}

type wishlistCheckPayload struct {
	InWishlist bool `json:"inWishlist"`
}

type productsPayload struct {
	Products []productPayload `json:"products"`
}
