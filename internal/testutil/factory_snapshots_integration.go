//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/pos_printer/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeSnapshot — мини-генератор валидного снимка заказа.
func MakeSnapshot(opts ...func(*domain.OrderSnapshot)) *domain.OrderSnapshot {
	o := &domain.OrderSnapshot{
		ID: "ord-" + UniqSuffix(),
		Items: []domain.OrderLine{
			{
				Name:      "Burger",
				Quantity:  2,
				UnitPrice: decimal.RequireFromString("5.50"),
				Options:   []domain.Option{{Name: "Cheese", Price: decimal.NewFromInt(1)}},
				Note:      "no onion",
			},
		},
		TotalAmount:   decimal.RequireFromString("13.00"),
		PaymentMethod: "card",
	}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

func WithID(id string) func(*domain.OrderSnapshot) {
	return func(o *domain.OrderSnapshot) { o.ID = id }
}

func WithItems(n int) func(*domain.OrderSnapshot) {
	return func(o *domain.OrderSnapshot) {
		o.Items = make([]domain.OrderLine, 0, n)
		for i := 0; i < n; i++ {
			o.Items = append(o.Items, domain.OrderLine{
				Name:      "Item " + UniqSuffix(),
				Quantity:  i + 1,
				UnitPrice: decimal.NewFromInt(int64(10 * (i + 1))),
			})
		}
	}
}
