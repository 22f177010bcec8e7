package ports

import "github.com/Gunvolt24/pos_printer/internal/domain"

// PrinterRegistry — статическая карта роль → профиль принтера.
// Только чтение; безопасна для конкурентного доступа.
type PrinterRegistry interface {
	Profile(role domain.Role) (domain.PrinterProfile, bool)
	All() []domain.PrinterProfile
}
