package seed

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
)

// Cents is a fixed-point money amount in hundredths. It travels to and from
// NUMERIC(12,2) columns as a decimal string, so sums computed in the database
// compare exactly against sums computed here.
type Cents int64

// Value implements driver.Valuer; the driver sends the decimal string and the
// database casts it to NUMERIC without rounding.
func (c Cents) Value() (driver.Value, error) {
	return c.String(), nil
}

func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Mul scales the amount by an integer quantity.
func (c Cents) Mul(n int) Cents {
	return c * Cents(n)
}

// ParseCents reads a decimal string as produced by the database. Fractions
// longer than two digits are rejected rather than rounded.
func ParseCents(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty decimal value")
	}
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("decimal value %q has more than two fraction digits", s)
	}
	for len(frac) < 2 {
		frac += "0"
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid decimal value %q: %w", s, err)
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid decimal value %q: %w", s, err)
	}

	v := w*100 + f
	if neg {
		v = -v
	}
	return Cents(v), nil
}
