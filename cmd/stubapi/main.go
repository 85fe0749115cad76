package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"

	"rentkart-storefront/internal/config"
	"rentkart-storefront/internal/domain"
	"rentkart-storefront/internal/logger"
	"rentkart-storefront/internal/stubapi"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting stub marketplace API...", "address", cfg.GetServerAddress())

	server := stubapi.NewServer()
	seedDemoData(server)

	// Sweep expired coupons on the configured schedule
	c := cron.New(cron.WithLocation(time.UTC), cron.WithSeconds())
	if _, err := c.AddFunc(cfg.Scheduler.CouponExpirySweep, func() {
		server.SweepExpiredCoupons()
	}); err != nil {
		logger.Error("Failed to register coupon expiry sweep", "error", err)
	}
	c.Start()
	defer func() { <-c.Stop().Done() }()

	if err := http.ListenAndServe(cfg.GetServerAddress(), server); err != nil {
		logger.Error("Server stopped", "error", err)
		log.Fatalf("Server stopped: %v", err)
	}
}

// seedDemoData loads a small catalog and a couple of coupons so a frontend
// can be pointed at the stub straight away.
func seedDemoData(server *stubapi.Server) {
	server.SeedProduct(domain.Product{
		ID:                "prod-excavator",
		Name:              "Mini Excavator",
		Category:          "Earthmoving",
		VendorID:          "vendor-1",
		PricePerHourCents: 50000,
		PricePerDayCents:  100000,
		PricePerWeekCents: 550000,
		QuantityOnHand:    3,
	})
	server.SeedProduct(domain.Product{
		ID:               "prod-scaffold",
		Name:             "Scaffolding Tower",
		Category:         "Access",
		VendorID:         "vendor-1",
		PricePerDayCents: 40000,
		QuantityOnHand:   12,
	})
	server.SeedProduct(domain.Product{
		ID:                "prod-generator",
		Name:              "Diesel Generator 5kVA",
		Category:          "Power",
		VendorID:          "vendor-2",
		PricePerHourCents: 15000,
		PricePerDayCents:  60000,
		QuantityOnHand:    5,
	})

	minOrder := int64(50000) // ₹500
	maxUsage := 1
	expiry := time.Now().AddDate(0, 1, 0)
	server.SeedCoupon(domain.Coupon{
		ID:              "coupon-welcome",
		Code:            "WELCOME-ABC123",
		DiscountType:    domain.DiscountTypePercentage,
		DiscountValue:   10,
		MinOrderCents:   &minOrder,
		MaxUsageCount:   &maxUsage,
		ExpiresAt:       &expiry,
		IsWelcomeCoupon: true,
	})
	server.SeedCoupon(domain.Coupon{
		ID:            "coupon-flat200",
		Code:          "FLAT200",
		DiscountType:  domain.DiscountTypeFixedAmount,
		DiscountValue: 20000,
	})

	logger.Info("Seeded demo catalog", "products", 3, "coupons", 2)
}
