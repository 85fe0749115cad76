package scheduler

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentkart-storefront/internal/api"
	"rentkart-storefront/internal/config"
	"rentkart-storefront/internal/domain"
	"rentkart-storefront/internal/security"
	"rentkart-storefront/internal/store"
	"rentkart-storefront/internal/stubapi"
)

func newTestStore(t *testing.T) (*store.Store, *api.Client) {
	t.Helper()
	server := stubapi.NewServer()
	server.SeedProduct(domain.Product{
		ID:               "p1",
		Name:             "Mini Excavator",
		PricePerDayCents: 100000,
		QuantityOnHand:   2,
	})
	server.SeedCoupon(domain.Coupon{
		ID:            "c1",
		Code:          "FLAT200",
		DiscountType:  domain.DiscountTypeFixedAmount,
		DiscountValue: 20000,
	})
	ts := httptest.NewServer(server)
	t.Cleanup(ts.Close)

	tokens := security.NewTokenStore()
	tokens.SetToken("user-1")
	client := api.NewClient(ts.URL, 5*time.Second, tokens)
	return store.New(client, tokens), client
}

func testSpecs() config.SchedulerConfig {
	return config.SchedulerConfig{
		CartRefresh:   "0 */5 * * * *",
		CouponRefresh: "0 */15 * * * *",
	}
}

func TestScheduler_RefreshJobs(t *testing.T) {
	ctx := context.Background()
	st, client := newTestStore(t)
	s := NewScheduler(testSpecs(), st)

	start := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	req := api.NewAddCartItemRequest("p1", 1, domain.BucketDaily, start, start.AddDate(0, 0, 3))
	require.NoError(t, client.AddCartItem(ctx, req))

	// The jobs pull server state into the local mirrors.
	s.refreshCart()
	assert.Equal(t, 1, st.Cart.Len())
	assert.Equal(t, int64(100000), st.Cart.TotalCents())

	s.refreshCoupons()
	assert.Equal(t, 1, st.Coupons.Len())
}

func TestScheduler_StartStop(t *testing.T) {
	st, _ := newTestStore(t)
	s := NewScheduler(testSpecs(), st)

	assert.True(t, s.IsRunning())
	s.Start()
	s.Stop()
}

func TestScheduler_InvalidSpecs(t *testing.T) {
	st, _ := newTestStore(t)
	s := NewScheduler(config.SchedulerConfig{
		CartRefresh:   "not a cron spec",
		CouponRefresh: "also not one",
	}, st)

	// Bad specs are logged and skipped, leaving no registered jobs.
	assert.False(t, s.IsRunning())
}
