package stubapi

import (
	"net/http"
	"sort"

	"rentkart-storefront/internal/domain"
)

func productJSON(p domain.Product) map[string]any {
	pricing := []map[string]any{}
	if p.PricePerHourCents > 0 {
		pricing = append(pricing, map[string]any{"type": "HOUR", "price": formatMoney(p.PricePerHourCents)})
	}
	if p.PricePerDayCents > 0 {
		pricing = append(pricing, map[string]any{"type": "DAY", "price": formatMoney(p.PricePerDayCents)})
	}
	if p.PricePerWeekCents > 0 {
		pricing = append(pricing, map[string]any{"type": "WEEK", "price": formatMoney(p.PricePerWeekCents)})
	}
	return map[string]any{
		"id":        p.ID,
		"name":      p.Name,
		"category":  p.Category,
		"vendorId":  p.VendorID,
		"pricing":   pricing,
		"inventory": map[string]any{"totalQty": p.QuantityOnHand},
	}
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.products))
	for id := range s.products {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	products := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		products = append(products, productJSON(s.products[id]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": products})
}
