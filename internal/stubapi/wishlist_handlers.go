package stubapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

func (s *Server) handleGetWishlist(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := []map[string]any{}
	for _, productID := range s.wishlists[user] {
		if product, exists := s.products[productID]; exists {
			items = append(items, map[string]any{
				"id":      productID,
				"product": productJSON(product),
			})
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

type addWishlistItemBody struct {
	ProductID string `json:"productId"`
}

func (s *Server) handleAddWishlistItem(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	var body addWishlistItemBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[body.ProductID]; !exists {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	for _, id := range s.wishlists[user] {
		if id == body.ProductID {
			// Already wishlisted; membership is a set.
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	s.wishlists[user] = append(s.wishlists[user], body.ProductID)
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) handleRemoveWishlistItem(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	productID := mux.Vars(r)["id"]

	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.wishlists[user]
	for i, id := range ids {
		if id == productID {
			s.wishlists[user] = append(ids[:i], ids[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, "product not in wishlist")
}

func (s *Server) handleClearWishlist(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.wishlists, user)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCheckWishlist(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	productID := mux.Vars(r)["id"]

	s.mu.Lock()
	defer s.mu.Unlock()

	inWishlist := false
	for _, id := range s.wishlists[user] {
		if id == productID {
			inWishlist = true
			break
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"inWishlist": inWishlist})
}
