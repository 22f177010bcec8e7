package validate

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/pos_printer/internal/domain"
	"github.com/Gunvolt24/pos_printer/internal/normalize"
	"github.com/Gunvolt24/pos_printer/internal/ports"
)

// ValidateOrderFromJSON — разбор «свободного» JSON заказа и валидация снимка.
// Любая проблема входа — ErrInvalidOrder.
func ValidateOrderFromJSON(ctx context.Context, validator ports.OrderValidator, raw []byte) (*domain.OrderSnapshot, error) {
	order, err := normalize.Order(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOrder, err)
	}
	if err := validator.Validate(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}
