// Пакет normalize — приведение «свободного» JSON заказа к строгому OrderSnapshot.
// Разбор, а не валидация: бизнес-проверки делает pkg/validate при сборке чека.
package normalize

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"

	"github.com/Gunvolt24/pos_printer/internal/domain"
)

// ErrMalformed — вход не JSON-объект или поле имеет негодный тип.
var ErrMalformed = errors.New("malformed order payload")

var (
	idKeys      = []string{"id", "_id", "orderId", "order_id"}
	itemsKeys   = []string{"items", "lines"}
	priceKeys   = []string{"unitPrice", "unit_price", "price"}
	optionsKeys = []string{"options", "extras"}
	noteKeys    = []string{"note", "notes", "observation"}
	totalKeys   = []string{"totalAmount", "total_amount", "total"}
	paymentKeys = []string{"paymentMethod", "payment_method", "payment"}
)

// Order — разбирает сырое тело заказа. Отсутствующие items остаются пустыми:
// отказ печати из-за этого решает сборщик чека.
func Order(raw []byte) (*domain.OrderSnapshot, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: not a valid json", ErrMalformed)
	}
	root := gjson.ParseBytes(raw)
	return FromResult(root)
}

// FromResult — то же, что Order, для уже разобранного узла (например, поля события).
func FromResult(root gjson.Result) (*domain.OrderSnapshot, error) {
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: expected object, got %s", ErrMalformed, root.Type)
	}

	o := &domain.OrderSnapshot{
		ID:            str(first(root, idKeys)),
		PaymentMethod: strings.TrimSpace(str(first(root, paymentKeys))),
	}

	total, err := money(first(root, totalKeys), "total")
	if err != nil {
		return nil, err
	}
	o.TotalAmount = total

	items := first(root, itemsKeys)
	if items.Exists() && items.Type != gjson.Null && !items.IsArray() {
		return nil, fmt.Errorf("%w: items must be an array", ErrMalformed)
	}

	var itemErr error
	items.ForEach(func(key, value gjson.Result) bool {
		line, err := orderLine(value, int(key.Int()))
		if err != nil {
			itemErr = err
			return false
		}
		o.Items = append(o.Items, line)
		return true
	})
	if itemErr != nil {
		return nil, itemErr
	}
	return o, nil
}

func orderLine(v gjson.Result, idx int) (domain.OrderLine, error) {
	if !v.IsObject() {
		return domain.OrderLine{}, fmt.Errorf("%w: items[%d] must be an object", ErrMalformed, idx)
	}

	qty, err := quantity(v.Get("quantity"), idx)
	if err != nil {
		return domain.OrderLine{}, err
	}
	price, err := money(first(v, priceKeys), fmt.Sprintf("items[%d].price", idx))
	if err != nil {
		return domain.OrderLine{}, err
	}

	line := domain.OrderLine{
		Name:      strings.TrimSpace(v.Get("name").String()),
		Quantity:  qty,
		UnitPrice: price,
		Note:      strings.TrimSpace(str(first(v, noteKeys))),
	}

	opts := first(v, optionsKeys)
	for j, ov := range opts.Array() {
		opt, err := option(ov, idx, j)
		if err != nil {
			return domain.OrderLine{}, err
		}
		line.Options = append(line.Options, opt)
	}
	return line, nil
}

// option — {"name","price"} или просто строка-название.
func option(v gjson.Result, idx, j int) (domain.Option, error) {
	switch {
	case v.Type == gjson.String:
		return domain.Option{Name: strings.TrimSpace(v.Str)}, nil
	case v.IsObject():
		price, err := money(v.Get("price"), fmt.Sprintf("items[%d].options[%d].price", idx, j))
		if err != nil {
			return domain.Option{}, err
		}
		return domain.Option{Name: strings.TrimSpace(v.Get("name").String()), Price: price}, nil
	default:
		return domain.Option{}, fmt.Errorf("%w: items[%d].options[%d] must be a string or object", ErrMalformed, idx, j)
	}
}

// money — число или числовая строка; отсутствие → 0.
func money(v gjson.Result, field string) (decimal.Decimal, error) {
	switch v.Type {
	case gjson.Null:
		return decimal.Zero, nil
	case gjson.Number:
		d, err := decimal.NewFromString(v.Raw)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %s: %v", ErrMalformed, field, err)
		}
		return d, nil
	case gjson.String:
		s := strings.TrimSpace(v.Str)
		if s == "" {
			return decimal.Zero, nil
		}
		d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %s=%q is not a number", ErrMalformed, field, v.Str)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %s must be a number", ErrMalformed, field)
	}
}

// quantity — целое число (в том числе строкой); дробное — ошибка.
func quantity(v gjson.Result, idx int) (int, error) {
	d, err := money(v, fmt.Sprintf("items[%d].quantity", idx))
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() || d.Abs().GreaterThan(decimal.NewFromInt(math.MaxInt32)) {
		return 0, fmt.Errorf("%w: items[%d].quantity=%s is not a whole number", ErrMalformed, idx, d.String())
	}
	return int(d.IntPart()), nil
}

func first(v gjson.Result, keys []string) gjson.Result {
	for _, k := range keys {
		if r := v.Get(k); r.Exists() {
			return r
		}
	}
	return gjson.Result{}
}

// str — строка или число как строка (id бывает числом).
func str(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return v.Str
	case gjson.Number:
		return v.Raw
	default:
		return ""
	}
}
