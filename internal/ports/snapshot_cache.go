package ports

import (
	"context"

	"github.com/Gunvolt24/pos_printer/internal/domain"
)

// SnapshotCache — кэш недавно напечатанных заказов (для повторной печати).
// Требования к реализации: потокобезопасность; доступ по ключу не хуже O(1); возврат копий.
type SnapshotCache interface {
	// Get — вернуть снимок по ID; (order, true) при попадании, (nil, false) при промахе/истечении.
	Get(ctx context.Context, orderID string) (*domain.OrderSnapshot, bool)

	// Set — сохранить/обновить снимок в кэше.
	Set(ctx context.Context, order *domain.OrderSnapshot) error

	// WarmUp — массовая загрузка кэша (например, при старте).
	WarmUp(ctx context.Context, orders []*domain.OrderSnapshot) error
}
