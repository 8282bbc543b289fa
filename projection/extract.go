package projection

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Present treats the empty string as a missing key.
func Present(s string) (string, bool) {
	return s, s != ""
}

func Deref(p *string) (string, bool) {
	if p == nil || *p == "" {
		return "", false
	}
	return *p, true
}

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"}

// ParseDate accepts the store's date and timestamp formats; anything else is missing.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func ParseDatePtr(p *string) (time.Time, bool) {
	if p == nil {
		return time.Time{}, false
	}
	return ParseDate(*p)
}

func DecimalValue(d decimal.Decimal) (float64, bool) {
	return d.InexactFloat64(), true
}

func NullDecimalValue(d decimal.NullDecimal) (float64, bool) {
	if !d.Valid {
		return 0, false
	}
	return d.Decimal.InexactFloat64(), true
}

// IDString renders a foreign key for equality filters; nil is "".
func IDString(p *int64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatInt(*p, 10)
}
