package usecase

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/Gunvolt24/pos_printer/internal/domain"
	"github.com/Gunvolt24/pos_printer/internal/normalize"
	"github.com/Gunvolt24/pos_printer/pkg/validate"
)

type orderEvent struct {
	roles []domain.Role
	order *domain.OrderSnapshot
}

// decodeOrderEvent — {"role": "...", "order": {...}}; без поля order весь объект считается заказом.
func decodeOrderEvent(raw []byte) (*orderEvent, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: event is not valid json", validate.ErrInvalidOrder)
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: event must be an object", validate.ErrInvalidOrder)
	}

	ev := &orderEvent{roles: domain.Roles}
	if r := root.Get("role"); r.Exists() && r.String() != "" {
		role, err := domain.ParseRole(r.String())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", validate.ErrInvalidOrder, err)
		}
		ev.roles = []domain.Role{role}
	}

	node := root
	if o := root.Get("order"); o.Exists() {
		node = o
	}
	order, err := normalize.FromResult(node)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", validate.ErrInvalidOrder, err)
	}
	ev.order = order
	return ev, nil
}
