package api

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amount is a monetary value in paise. The marketplace API encodes amounts
// inconsistently as JSON numbers or decimal strings; Amount accepts both and
// is the single place where rounding happens: round half up at the second
// decimal. Totals are stored in paise exactly; only display formatting
// rounds further.
type Amount int64

func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*a = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		*a = 0
		return nil
	}
	cents, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = Amount(cents)
	return nil
}

// MarshalJSON emits a quoted decimal string, e.g. "1234.50".
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + FormatAmount(int64(a)) + `"`), nil
}

// Cents returns the value in paise.
func (a Amount) Cents() int64 { return int64(a) }

// ParseAmount converts a decimal string into paise, rounding half up at the
// second decimal. Exponent forms ("1.5e3"), which are valid JSON numbers, go
// through a float parse; plain decimals stay on integer math.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, "eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q: %v", s, err)
		}
		return int64(math.Round(f * 100)), nil
	}
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	if intPart == "" {
		intPart = "0"
	}

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %v", s, err)
	}

	cents := whole * 100
	if fracPart != "" {
		for _, r := range fracPart {
			if r < '0' || r > '9' {
				return 0, fmt.Errorf("invalid amount %q", s)
			}
		}
		padded := fracPart + "00"
		cents += int64(padded[0]-'0')*10 + int64(padded[1]-'0')
		if len(fracPart) > 2 && padded[2] >= '5' {
			cents++
		}
	}

	if neg {
		cents = -cents
	}
	return cents, nil
}

// FormatAmount renders paise as a plain decimal string with two places.
func FormatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// FormatINR renders paise for display: rounded half up to whole rupees with
// Indian digit grouping, e.g. ₹1,23,456.
func FormatINR(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	rupees := (cents + 50) / 100
	return sign + "₹" + groupIndian(strconv.FormatInt(rupees, 10))
}

// groupIndian inserts commas in the Indian numbering style: the last three
// digits form one group, every preceding pair another.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(append(groups, tail), ",")
}
