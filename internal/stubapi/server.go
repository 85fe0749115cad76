// Package stubapi is an in-memory implementation of the marketplace REST
// surface the storefront core consumes. It backs the API client tests and
// the cmd/stubapi development server; the production backend it stands in
// for lives outside this repository.
package stubapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"rentkart-storefront/internal/domain"
	"rentkart-storefront/internal/logger"
)

type cartLine struct {
	ID             string
	ProductID      string
	Quantity       int
	DurationType   string
	UnitPriceCents int64
	RentalStart    time.Time
	RentalEnd      time.Time
}

type coupon struct {
	domain.Coupon
	Active bool
}

// Server holds all marketplace state in memory, keyed by bearer token. Any
// non-empty token identifies a user; there is no real session handling here.
type Server struct {
	mu        sync.Mutex
	router    *mux.Router
	products  map[string]domain.Product
	carts     map[string][]cartLine
	wishlists map[string][]string
	coupons   []*coupon
	applied   map[string]string
	now       func() time.Time
}

func NewServer() *Server {
	s := &Server{
		products:  make(map[string]domain.Product),
		carts:     make(map[string][]cartLine),
		wishlists: make(map[string][]string),
		applied:   make(map[string]string),
		now:       time.Now,
	}

	r := mux.NewRouter()
	r.HandleFunc("/products", s.handleListProducts).Methods(http.MethodGet)

	r.HandleFunc("/cart", s.handleGetCart).Methods(http.MethodGet)
	r.HandleFunc("/cart/items", s.handleAddCartItem).Methods(http.MethodPost)
	r.HandleFunc("/cart/items/{id}", s.handleRemoveCartItem).Methods(http.MethodDelete)
	r.HandleFunc("/cart", s.handleClearCart).Methods(http.MethodDelete)

	r.HandleFunc("/coupons/available", s.handleAvailableCoupons).Methods(http.MethodGet)
	r.HandleFunc("/coupons/validate", s.handleValidateCoupon).Methods(http.MethodPost)
	r.HandleFunc("/coupons/apply", s.handleApplyCoupon).Methods(http.MethodPost)

	r.HandleFunc("/wishlist", s.handleGetWishlist).Methods(http.MethodGet)
	r.HandleFunc("/wishlist/items", s.handleAddWishlistItem).Methods(http.MethodPost)
	r.HandleFunc("/wishlist/items/{id}", s.handleRemoveWishlistItem).Methods(http.MethodDelete)
	r.HandleFunc("/wishlist/clear", s.handleClearWishlist).Methods(http.MethodDelete)
	r.HandleFunc("/wishlist", s.handleClearWishlist).Methods(http.MethodDelete)
	r.HandleFunc("/wishlist/check/{id}", s.handleCheckWishlist).Methods(http.MethodGet)

	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// SetNow pins the clock for expiry checks. Used by tests.
func (s *Server) SetNow(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// SeedProduct registers a product in the catalog.
func (s *Server) SeedProduct(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

// SeedCoupon registers an active coupon.
func (s *Server) SeedCoupon(c domain.Coupon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	s.coupons = append(s.coupons, &coupon{Coupon: c, Active: true})
}

// SweepExpiredCoupons deactivates every coupon past its expiry date and
// returns how many were flipped. Wired to a cron job in cmd/stubapi.
func (s *Server) SweepExpiredCoupons() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	swept := 0
	for _, c := range s.coupons {
		if c.Active && c.ExpiresAt != nil && c.ExpiresAt.Before(s.now()) {
			c.Active = false
			swept++
		}
	}
	if swept > 0 {
		logger.Info("Deactivated expired coupons", "count", swept)
	}
	return swept
}

// requireUser resolves the calling user from the bearer token. Writes a 401
// and returns false when the request is unauthenticated.
func (s *Server) requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		writeError(w, http.StatusUnauthorized, "login required")
		return "", false
	}
	return token, true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// formatMoney renders paise as the decimal strings the real API uses.
func formatMoney(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
