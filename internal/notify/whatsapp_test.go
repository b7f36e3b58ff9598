package notify

import (
	"net/url"
	"strings"
	"testing"

	"siparis-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pizzaOrder() models.Order {
	return models.Order{
		TableNumber: 5,
		Items:       []models.OrderItem{{Name: "Pizza", Price: 200, Quantity: 2}},
		Subtotal:    400,
		Tax:         40,
		Total:       440,
	}
}

func decodeText(t *testing.T, link string) string {
	t.Helper()
	u, err := url.Parse(link)
	require.NoError(t, err)
	return u.Query().Get("text")
}

func TestOrderLinkPizzaExample(t *testing.T) {
	b := NewLinkBuilder("", "")
	settings := models.DefaultSettings()

	link, ok := b.OrderLink(pizzaOrder(), &settings)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/911234567890?text="))

	text := decodeText(t, link)
	assert.Equal(t, "New Order from Table 5\n\nPizza x2 - ₹200\n\nTotal: ₹440", text)
	assert.Contains(t, text, "Pizza x2 - ₹200")
	assert.Contains(t, text, "Total: ₹440")
}

func TestOrderLinkEncodesLikeURIComponent(t *testing.T) {
	b := NewLinkBuilder("https://wa.me/", "$")
	s := &models.Settings{WhatsappNumber: "905551112233"}
	o := models.Order{
		TableNumber: 12,
		Items: []models.OrderItem{
			{Name: "Mac & Cheese", Price: 12.5, Quantity: 1},
			{Name: "Cola", Price: 3, Quantity: 3},
		},
		Total: 21.5,
	}

	link, ok := b.OrderLink(o, s)
	require.True(t, ok)

	query := strings.SplitN(link, "?text=", 2)[1]
	assert.NotContains(t, query, "+")
	assert.NotContains(t, query, " ")
	assert.Contains(t, query, "Mac%20%26%20Cheese")
	assert.Contains(t, query, "%0A")
	assert.True(t, strings.HasPrefix(link, "https://wa.me/905551112233?text="))

	// Kalemler eklenme sırasıyla, satır satır
	assert.Equal(t,
		"New Order from Table 12\n\nMac & Cheese x1 - $12.5\nCola x3 - $3\n\nTotal: $21.5",
		decodeText(t, link))
}

func TestOrderLinkWithoutNumber(t *testing.T) {
	b := NewLinkBuilder("", "")

	_, ok := b.OrderLink(pizzaOrder(), nil)
	assert.False(t, ok)

	_, ok = b.OrderLink(pizzaOrder(), &models.Settings{RestaurantName: "X"})
	assert.False(t, ok)
}

func TestOrderMessageWithoutItems(t *testing.T) {
	b := NewLinkBuilder("", "₺")
	msg := b.OrderMessage(models.Order{TableNumber: 1, Total: 0})
	assert.Equal(t, "New Order from Table 1\n\n\n\nTotal: ₺0", msg)
}

func TestOrderLinkKeepsOnlyDigitsOfNumber(t *testing.T) {
	b := NewLinkBuilder("", "")

	link, ok := b.OrderLink(pizzaOrder(), &models.Settings{WhatsappNumber: "+90 555 111"})
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/90555111?text="), link)

	link, ok = b.OrderLink(pizzaOrder(), &models.Settings{WhatsappNumber: "90/../admin?x=1#"})
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/901?text="), link)

	_, ok = b.OrderLink(pizzaOrder(), &models.Settings{WhatsappNumber: "yok"})
	assert.False(t, ok)
}

func TestFormatAmount(t *testing.T) {
	cases := map[float64]string{
		0:       "0",
		200:     "200",
		12.5:    "12.5",
		-3.25:   "-3.25",
		0.1:     "0.1",
		1e20:    "100000000000000000000",
		1e21:    "1e+21",
		1.5e22:  "1.5e+22",
		-2e21:   "-2e+21",
		0.00001: "0.00001",
		1e-7:    "1e-7",
		2.5e-10: "2.5e-10",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatAmount(in), "%v", in)
	}
}
