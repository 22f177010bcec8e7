package ports

import (
	"context"
	"time"

	"github.com/Gunvolt24/pos_printer/internal/domain"
)

// JournalEntry — запись о попытке печати.
type JournalEntry struct {
	OrderID   string
	Role      domain.Role
	Printed   bool
	PrintedAt time.Time
	Snapshot  *domain.OrderSnapshot
}

// PrintJournal — журнал попыток печати (вне ядра; опционален).
type PrintJournal interface {
	Record(ctx context.Context, entry *JournalEntry) error
	// LastSnapshot — последний успешно напечатанный снимок заказа; (nil, nil), если записи нет.
	LastSnapshot(ctx context.Context, orderID string) (*domain.OrderSnapshot, error)
	// LastN — последние n успешно напечатанных снимков (для прогрева кэша).
	LastN(ctx context.Context, n int) ([]*domain.OrderSnapshot, error)
}
