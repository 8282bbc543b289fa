// Package mappers holds the display formatting shared by the table renderers.
package mappers

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney prints an amount with two decimals and thousands separators.
func FormatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")
	var sb strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}
	out := sb.String() + "." + frac
	if neg {
		return "-" + out
	}
	return out
}

// FormatNullMoney prints "" for a missing amount.
func FormatNullMoney(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return FormatMoney(d.Decimal)
}

func FormatDate(p *string) string {
	return Optional(p)
}

// Optional prints "" for a nil string.
func Optional(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func FormatPercent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}

func FormatConfidence(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(int(*p*100+0.5)) + "%"
}

// Humanize turns an enum value like "in_progress" into "In progress".
func Humanize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "_", " ")
	return strings.ToUpper(s[:1]) + s[1:]
}

// NameFor resolves a foreign key against a lookup map, falling back to the id.
func NameFor(names map[int64]string, id *int64) string {
	if id == nil {
		return ""
	}
	if name, ok := names[*id]; ok {
		return name
	}
	return "#" + strconv.FormatInt(*id, 10)
}
