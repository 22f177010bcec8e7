package normalize_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/pos_printer/internal/normalize"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestOrder_CanonicalFields(t *testing.T) {
	t.Parallel()

	raw := []byte(`{
		"id": "abc123",
		"items": [{
			"name": " Burger ",
			"quantity": 2,
			"unit_price": 5.5,
			"options": [{"name": "Cheese", "price": 1}],
			"note": "no onion"
		}],
		"total_amount": 13,
		"payment_method": "card"
	}`)

	o, err := normalize.Order(raw)
	require.NoError(t, err)
	require.Equal(t, "abc123", o.ID)
	require.Equal(t, "card", o.PaymentMethod)
	require.True(t, o.TotalAmount.Equal(dec("13")))
	require.Len(t, o.Items, 1)

	it := o.Items[0]
	require.Equal(t, "Burger", it.Name)
	require.Equal(t, 2, it.Quantity)
	require.True(t, it.UnitPrice.Equal(dec("5.5")))
	require.Equal(t, "no onion", it.Note)
	require.Len(t, it.Options, 1)
	require.Equal(t, "Cheese", it.Options[0].Name)
	require.True(t, it.Options[0].Price.Equal(dec("1")))
}

func TestOrder_Aliases(t *testing.T) {
	t.Parallel()

	raw := []byte(`{
		"_id": 987654,
		"items": [{
			"name": "Tea",
			"quantity": "3",
			"price": "0,35",
			"extras": ["Honey", {"name": "Lemon", "price": "0.10"}],
			"observation": "hot"
		}],
		"total": "1.35",
		"paymentMethod": "pix"
	}`)

	o, err := normalize.Order(raw)
	require.NoError(t, err)
	require.Equal(t, "987654", o.ID)
	require.Equal(t, "pix", o.PaymentMethod)
	require.True(t, o.TotalAmount.Equal(dec("1.35")))

	it := o.Items[0]
	require.Equal(t, 3, it.Quantity)
	require.True(t, it.UnitPrice.Equal(dec("0.35")))
	require.Equal(t, "hot", it.Note)
	require.Len(t, it.Options, 2)
	require.Equal(t, "Honey", it.Options[0].Name)
	require.True(t, it.Options[0].Price.IsZero())
	require.True(t, it.Options[1].Price.Equal(dec("0.10")))
}

func TestOrder_KeepsPrecision(t *testing.T) {
	t.Parallel()

	o, err := normalize.Order([]byte(`{"items":[{"name":"x","quantity":1,"unitPrice":0.1}],"totalAmount":0.30000000000000004}`))
	require.NoError(t, err)
	require.Equal(t, "0.1", o.Items[0].UnitPrice.String())
	require.Equal(t, "0.30000000000000004", o.TotalAmount.String())
}

func TestOrder_MissingItemsIsNotAParseError(t *testing.T) {
	t.Parallel()

	o, err := normalize.Order([]byte(`{"id":"x"}`))
	require.NoError(t, err)
	require.Empty(t, o.Items)
	require.True(t, o.TotalAmount.IsZero())
}

func TestOrder_Malformed(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"not json":         `{"id":`,
		"array root":       `[1,2]`,
		"string root":      `"order"`,
		"items not array":  `{"items":{"name":"x"}}`,
		"item not object":  `{"items":["x"]}`,
		"fractional qty":   `{"items":[{"name":"x","quantity":1.5}]}`,
		"bad price string": `{"items":[{"name":"x","quantity":1,"price":"abc"}]}`,
		"bool total":       `{"items":[],"total":true}`,
		"numeric option":   `{"items":[{"name":"x","quantity":1,"options":[5]}]}`,
		"bad option price": `{"items":[{"name":"x","quantity":1,"options":[{"name":"y","price":"?"}]}]}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := normalize.Order([]byte(raw))
			require.True(t, errors.Is(err, normalize.ErrMalformed), "err=%v", err)
		})
	}
}
