package domain

import "github.com/shopspring/decimal"

// Option — дополнительная опция позиции (соус, сыр и т.п.).
type Option struct {
	Name  string          `json:"name"  validate:"required"`
	Price decimal.Decimal `json:"price"`
}

// OrderLine — позиция заказа.
type OrderLine struct {
	Name      string          `json:"name"       validate:"required"`
	Quantity  int             `json:"quantity"   validate:"gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Options   []Option        `json:"options,omitempty" validate:"dive"`
	Note      string          `json:"note,omitempty"`
}

// LineTotal — unitPrice*quantity + sum(options)*quantity, без округления.
func (l *OrderLine) LineTotal() decimal.Decimal {
	qty := decimal.NewFromInt(int64(l.Quantity))
	sum := decimal.Zero
	for i := range l.Options {
		sum = sum.Add(l.Options[i].Price)
	}
	return l.UnitPrice.Mul(qty).Add(sum.Mul(qty))
}

// OrderSnapshot — срез заказа на время одного вызова печати.
// Ядро печати его не меняет и не сохраняет.
type OrderSnapshot struct {
	ID            string          `json:"id"`
	Items         []OrderLine     `json:"items"          validate:"required,min=1,dive"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod string          `json:"payment_method,omitempty"`
}

// Clone — глубокая копия снимка (items и options).
func (o *OrderSnapshot) Clone() *OrderSnapshot {
	if o == nil {
		return nil
	}
	cp := *o
	if o.Items != nil {
		cp.Items = make([]OrderLine, len(o.Items))
		for i := range o.Items {
			cp.Items[i] = o.Items[i]
			if o.Items[i].Options != nil {
				cp.Items[i].Options = append([]Option(nil), o.Items[i].Options...)
			}
		}
	}
	return &cp
}
