// Пакет registry — статическое соответствие роль → профиль принтера.
package registry

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/Gunvolt24/pos_printer/internal/domain"
	"github.com/Gunvolt24/pos_printer/internal/ports"
)

var ErrInvalidProfile = errors.New("invalid printer profile")

// StaticRegistry — профили загружаются один раз и дальше только читаются.
type StaticRegistry struct {
	byRole map[domain.Role]domain.PrinterProfile
}

// New — проверяет профили и требует ровно один профиль на каждую роль.
func New(profiles ...domain.PrinterProfile) (*StaticRegistry, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	byRole := make(map[domain.Role]domain.PrinterProfile, len(profiles))
	for _, p := range profiles {
		if err := v.Struct(p); err != nil {
			return nil, fmt.Errorf("%w: role=%q: %v", ErrInvalidProfile, p.Role, err)
		}
		if _, dup := byRole[p.Role]; dup {
			return nil, fmt.Errorf("%w: duplicate role %q", ErrInvalidProfile, p.Role)
		}
		byRole[p.Role] = p
	}
	for _, r := range domain.Roles {
		if _, ok := byRole[r]; !ok {
			return nil, fmt.Errorf("%w: no profile for role %q", ErrInvalidProfile, r)
		}
	}
	return &StaticRegistry{byRole: byRole}, nil
}

func (r *StaticRegistry) Profile(role domain.Role) (domain.PrinterProfile, bool) {
	p, ok := r.byRole[role]
	return p, ok
}

// All — профили в порядке domain.Roles.
func (r *StaticRegistry) All() []domain.PrinterProfile {
	out := make([]domain.PrinterProfile, 0, len(r.byRole))
	for _, role := range domain.Roles {
		if p, ok := r.byRole[role]; ok {
			out = append(out, p)
		}
	}
	return out
}

var _ ports.PrinterRegistry = (*StaticRegistry)(nil)
