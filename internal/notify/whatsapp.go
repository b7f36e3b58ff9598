// Package notify sipariş bildirim linkini oluşturur ve linki bildirimcilere iletir.
// WhatsApp API'sine hiçbir istek atılmaz, sadece wa.me linki üretilir.
package notify

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"siparis-backend/internal/models"
)

const (
	DefaultBaseURL  = "https://wa.me"
	DefaultCurrency = "₹"
)

type LinkBuilder struct {
	BaseURL  string
	Currency string
}

func NewLinkBuilder(baseURL, currency string) LinkBuilder {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	return LinkBuilder{BaseURL: strings.TrimRight(baseURL, "/"), Currency: currency}
}

// OrderMessage mesaj gövdesi:
//
//	New Order from Table 5
//
//	Pizza x2 - ₹200
//
//	Total: ₹440
func (b LinkBuilder) OrderMessage(o models.Order) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "New Order from Table %d\n\n", o.TableNumber)

	for i, item := range o.Items {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%s x%d - %s%s", item.Name, item.Quantity, b.Currency, formatAmount(item.Price))
	}

	fmt.Fprintf(&sb, "\n\nTotal: %s%s", b.Currency, formatAmount(o.Total))
	return sb.String()
}

// OrderLink ayar yoksa veya whatsappNumber'da rakam yoksa link üretmez.
// wa.me yalnızca rakam kabul eder, "+90 555 ..." gibi yazımlar temizlenir.
func (b LinkBuilder) OrderLink(o models.Order, s *models.Settings) (string, bool) {
	if s == nil {
		return "", false
	}
	number := digitsOnly(s.WhatsappNumber)
	if number == "" {
		return "", false
	}
	return fmt.Sprintf("%s/%s?text=%s", b.BaseURL, number, encodeURIComponent(b.OrderMessage(o))), true
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// 200 -> "200", 12.5 -> "12.5", 1e21 -> "1e+21", 1e-7 -> "1e-7"
func formatAmount(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	abs := math.Abs(v)
	if abs == 0 || (abs < 1e21 && abs >= 1e-6) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	// Go üssü en az iki haneye tamamlar (1e-07), baştaki sıfırlar atılır
	mant, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
	return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}

// Boşluk %20 olarak kodlanır, '+' değil
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
