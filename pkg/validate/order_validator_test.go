package validate_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/pos_printer/internal/domain"
	"github.com/Gunvolt24/pos_printer/pkg/validate"
)

func validOrder() *domain.OrderSnapshot {
	return &domain.OrderSnapshot{
		ID: "order-1",
		Items: []domain.OrderLine{
			{
				Name:      "Burger",
				Quantity:  2,
				UnitPrice: decimal.RequireFromString("5.50"),
				Options:   []domain.Option{{Name: "Cheese", Price: decimal.NewFromInt(1)}},
			},
		},
		TotalAmount: decimal.RequireFromString("13.00"),
	}
}

func TestOrderValidator_Validate(t *testing.T) {
	v := validate.NewOrderValidator()
	ctx := context.Background()

	t.Run("valid order", func(t *testing.T) {
		if err := v.Validate(ctx, validOrder()); err != nil {
			t.Fatalf("expected valid order, got: %v", err)
		}
	})

	t.Run("missing id and negative total are not errors", func(t *testing.T) {
		o := validOrder()
		o.ID = ""
		o.TotalAmount = decimal.NewFromInt(-5)
		if err := v.Validate(ctx, o); err != nil {
			t.Fatalf("expected valid order, got: %v", err)
		}
	})

	type testCase struct {
		name      string
		makeOrder func() *domain.OrderSnapshot
		msg       string
	}

	cases := []testCase{
		{
			name:      "nil order",
			makeOrder: func() *domain.OrderSnapshot { return nil },
			msg:       "заказ не может быть nil",
		},
		{
			name: "nil items",
			makeOrder: func() *domain.OrderSnapshot {
				o := validOrder()
				o.Items = nil
				return o
			},
			msg: "items не должен быть пустым",
		},
		{
			name: "empty items",
			makeOrder: func() *domain.OrderSnapshot {
				o := validOrder()
				o.Items = []domain.OrderLine{}
				return o
			},
			msg: "items не должен быть пустым",
		},
		{
			name: "empty item.name",
			makeOrder: func() *domain.OrderSnapshot {
				o := validOrder()
				o.Items[0].Name = ""
				return o
			},
			msg: "items[0].name обязателен",
		},
		{
			name: "zero quantity",
			makeOrder: func() *domain.OrderSnapshot {
				o := validOrder()
				o.Items[0].Quantity = 0
				return o
			},
			msg: "items[0].quantity должен быть больше нуля",
		},
		{
			name: "empty option name",
			makeOrder: func() *domain.OrderSnapshot {
				o := validOrder()
				o.Items[0].Options[0].Name = ""
				return o
			},
			msg: "items[0].options[0].name обязателен",
		},
		{
			name: "negative unit price",
			makeOrder: func() *domain.OrderSnapshot {
				o := validOrder()
				o.Items[0].UnitPrice = decimal.NewFromInt(-1)
				return o
			},
			msg: "items[0].unit_price должен быть неотрицательным",
		},
		{
			name: "negative option price",
			makeOrder: func() *domain.OrderSnapshot {
				o := validOrder()
				o.Items[0].Options[0].Price = decimal.RequireFromString("-0.01")
				return o
			},
			msg: "items[0].options[0].price должен быть неотрицательным",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(ctx, tc.makeOrder())
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !errors.Is(err, validate.ErrInvalidOrder) {
				t.Errorf("expected ErrInvalidOrder, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.msg) {
				t.Errorf("expected error message to contain %q, got %q", tc.msg, err.Error())
			}
		})
	}
}
