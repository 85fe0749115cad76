package stubapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"
)

func (s *Server) couponJSON(c *coupon, applicable bool, reason string) map[string]any {
	payload := map[string]any{
		"id":                  c.ID,
		"code":                c.Code,
		"discountType":        string(c.DiscountType),
		"currentUsageCount":   c.CurrentUsageCount,
		"isWelcomeCoupon":     c.IsWelcomeCoupon,
		"isApplicable":        applicable,
		"notApplicableReason": reason,
	}
	if c.DiscountType == "FIXED_AMOUNT" {
		payload["discountValue"] = formatMoney(c.DiscountValue)
	} else {
		payload["discountValue"] = strconv.FormatInt(c.DiscountValue, 10)
	}
	if c.MinOrderCents != nil {
		payload["minOrderAmount"] = formatMoney(*c.MinOrderCents)
	}
	if c.MaxUsageCount != nil {
		payload["maxUsageCount"] = *c.MaxUsageCount
	}
	if c.ExpiresAt != nil {
		payload["expiryDate"] = c.ExpiresAt.Format(time.RFC3339)
	}
	if c.UserID != nil {
		payload["userId"] = *c.UserID
	}
	return payload
}

// ineligibility returns the reason a coupon cannot be used right now,
// independent of any order amount. Empty means eligible.
func (s *Server) ineligibility(c *coupon) string {
	if !c.Active {
		return "coupon is no longer active"
	}
	if c.ExpiresAt != nil && c.ExpiresAt.Before(s.now()) {
		return "coupon has expired"
	}
	if c.MaxUsageCount != nil && c.CurrentUsageCount >= *c.MaxUsageCount {
		return "coupon usage limit reached"
	}
	return ""
}

func (s *Server) visibleTo(c *coupon, user string) bool {
	return c.UserID == nil || *c.UserID == user
}

func (s *Server) handleAvailableCoupons(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	coupons := []map[string]any{}
	for _, c := range s.coupons {
		if !c.Active || !s.visibleTo(c, user) {
			continue
		}
		reason := s.ineligibility(c)
		coupons = append(coupons, s.couponJSON(c, reason == "", reason))
	}
	writeJSON(w, http.StatusOK, map[string]any{"coupons": coupons})
}

type validateCouponBody struct {
	Code        string `json:"code"`
	OrderAmount string `json:"orderAmount"`
}

func (s *Server) handleValidateCoupon(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	var body validateCouponBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	orderCents, err := parseMoney(body.OrderAmount)
	if err != nil || orderCents <= 0 {
		writeError(w, http.StatusBadRequest, "order amount required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	code := strings.ToUpper(strings.TrimSpace(body.Code))
	var found *coupon
	for _, c := range s.coupons {
		if c.Code == code && s.visibleTo(c, user) {
			found = c
			break
		}
	}
	if found == nil || !found.Active {
		writeError(w, http.StatusBadRequest, "invalid coupon code")
		return
	}
	if reason := s.ineligibility(found); reason != "" {
		writeError(w, http.StatusBadRequest, reason)
		return
	}
	if found.MinOrderCents != nil && orderCents < *found.MinOrderCents {
		writeError(w, http.StatusBadRequest, "order amount is below the coupon minimum")
		return
	}

	var discountCents int64
	if found.DiscountType == "PERCENTAGE" {
		// Round half up to whole paise.
		discountCents = (orderCents*found.DiscountValue + 50) / 100
	} else {
		discountCents = found.DiscountValue
		if discountCents > orderCents {
			discountCents = orderCents
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"coupon":         s.couponJSON(found, true, ""),
		"discountAmount": formatMoney(discountCents),
	})
}

type applyCouponBody struct {
	CouponID string `json:"couponId"`
}

func (s *Server) handleApplyCoupon(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	var body applyCouponBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var found *coupon
	for _, c := range s.coupons {
		if c.ID == body.CouponID && s.visibleTo(c, user) {
			found = c
			break
		}
	}
	if found == nil {
		writeError(w, http.StatusBadRequest, "invalid coupon")
		return
	}
	if reason := s.ineligibility(found); reason != "" {
		writeError(w, http.StatusBadRequest, reason)
		return
	}

	// One coupon per cart: applying a different one releases the previous.
	if prevID, had := s.applied[user]; had && prevID != found.ID {
		for _, c := range s.coupons {
			if c.ID == prevID && c.CurrentUsageCount > 0 {
				c.CurrentUsageCount--
			}
		}
	}
	if s.applied[user] != found.ID {
		found.CurrentUsageCount++
		s.applied[user] = found.ID
	}
	w.WriteHeader(http.StatusNoContent)
}

// parseMoney accepts the decimal strings clients send for order amounts,
// rounding half up at the second decimal like the client does.
func parseMoney(s string) (int64, error) {
	s = strings.TrimSpace(s)
	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, err
	}
	cents := whole * 100
	if fracPart != "" {
		padded := fracPart + "00"
		cents += int64(padded[0]-'0')*10 + int64(padded[1]-'0')
		if len(fracPart) > 2 && padded[2] >= '5' {
			cents++
		}
	}
	return cents, nil
}
