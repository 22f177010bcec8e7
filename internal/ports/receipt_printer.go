package ports

import (
	"context"

	"github.com/Gunvolt24/pos_printer/internal/domain"
)

// ReceiptPrinter — входной контракт печати для транспорта.
type ReceiptPrinter interface {
	PrintKitchenReceipt(ctx context.Context, order *domain.OrderSnapshot) bool
	PrintCashierReceipt(ctx context.Context, order *domain.OrderSnapshot) bool
	TestPrint(ctx context.Context, role domain.Role) bool
	Reprint(ctx context.Context, role domain.Role, orderID string) (bool, error)
	Printers() []domain.PrinterProfile
	// RecentSnapshots — последние успешно напечатанные заказы (от новых к старым).
	RecentSnapshots(ctx context.Context, limit int) ([]*domain.OrderSnapshot, error)
}
