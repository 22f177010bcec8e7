package ports

import (
	"context"

	"github.com/Gunvolt24/pos_printer/internal/domain"
)

// OrderValidator — проверка снимка перед вёрсткой; ошибка оборачивает validate.ErrInvalidOrder.
type OrderValidator interface {
	Validate(ctx context.Context, order *domain.OrderSnapshot) error
}
