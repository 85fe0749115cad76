package stubapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"rentkart-storefront/internal/domain"
)

func (s *Server) cartJSON(user string) map[string]any {
	items := make([]map[string]any, 0, len(s.carts[user]))
	for _, line := range s.carts[user] {
		items = append(items, map[string]any{
			"id":           line.ID,
			"product":      productJSON(s.products[line.ProductID]),
			"quantity":     line.Quantity,
			"durationType": line.DurationType,
			"unitPrice":    formatMoney(line.UnitPriceCents),
			"totalPrice":   formatMoney(line.UnitPriceCents * int64(line.Quantity)),
			"rentalStart":  line.RentalStart.Format(time.RFC3339),
			"rentalEnd":    line.RentalEnd.Format(time.RFC3339),
		})
	}
	return map[string]any{"items": items}
}

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.cartJSON(user))
}

type addCartItemBody struct {
	ProductID    string    `json:"productId"`
	Quantity     int       `json:"quantity"`
	DurationType string    `json:"durationType"`
	RentalStart  time.Time `json:"rentalStart"`
	RentalEnd    time.Time `json:"rentalEnd"`
}

func rateForDurationType(p domain.Product, durationType string) int64 {
	switch durationType {
	case "HOUR":
		return p.PricePerHourCents
	case "DAY":
		return p.PricePerDayCents
	case "WEEK":
		return p.PricePerWeekCents
	default:
		return 0
	}
}

func (s *Server) handleAddCartItem(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	var body addCartItemBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product, exists := s.products[body.ProductID]
	if !exists {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	if body.Quantity < 1 {
		writeError(w, http.StatusBadRequest, "quantity must be at least 1")
		return
	}
	if body.Quantity > product.QuantityOnHand {
		writeError(w, http.StatusConflict, "requested quantity exceeds available stock")
		return
	}
	rate := rateForDurationType(product, body.DurationType)
	if rate <= 0 {
		writeError(w, http.StatusBadRequest, "selected duration is not offered for this product")
		return
	}
	if body.RentalStart.IsZero() || body.RentalEnd.IsZero() || !body.RentalEnd.After(body.RentalStart) {
		writeError(w, http.StatusBadRequest, "invalid rental period")
		return
	}

	// Same product over the same period replaces the existing line; this is
	// what lets clients push quantity updates through the add endpoint.
	lines := s.carts[user]
	replaced := false
	for i := range lines {
		if lines[i].ProductID == body.ProductID &&
			lines[i].DurationType == body.DurationType &&
			lines[i].RentalStart.Equal(body.RentalStart) &&
			lines[i].RentalEnd.Equal(body.RentalEnd) {
			lines[i].Quantity = body.Quantity
			lines[i].UnitPriceCents = rate
			replaced = true
			break
		}
	}
	if !replaced {
		lines = append(lines, cartLine{
			ID:             uuid.NewString(),
			ProductID:      body.ProductID,
			Quantity:       body.Quantity,
			DurationType:   body.DurationType,
			UnitPriceCents: rate,
			RentalStart:    body.RentalStart,
			RentalEnd:      body.RentalEnd,
		})
	}
	s.carts[user] = lines

	writeJSON(w, http.StatusCreated, s.cartJSON(user))
}

func (s *Server) handleRemoveCartItem(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	id := mux.Vars(r)["id"]

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[user]
	for i := range lines {
		if lines[i].ID == id {
			s.carts[user] = append(lines[:i], lines[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, "cart item not found")
}

func (s *Server) handleClearCart(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, user)
	delete(s.applied, user)
	w.WriteHeader(http.StatusNoContent)
}
