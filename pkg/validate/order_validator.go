package validate

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Gunvolt24/pos_printer/internal/domain"
	"github.com/Gunvolt24/pos_printer/internal/ports"
)

// Проверка, что OrderValidator удовлетворяет интерфейсу OrderValidator.
var _ ports.OrderValidator = (*OrderValidator)(nil)

// ErrInvalidOrder — базовая (sentinel error) ошибка валидации.
var ErrInvalidOrder = errors.New("order validation failed")

// OrderValidator — валидация снимка заказа перед печатью.
type OrderValidator struct {
	v *validator.Validate
}

// NewOrderValidator — конструктор OrderValidator.
// Возвращает ErrInvalidOrder (с обёрнутой причиной) при любой проблеме.
func NewOrderValidator() *OrderValidator {
	return &OrderValidator{v: newStructValidator()}
}

// newStructValidator — validator с именами полей из json-тегов (items[0].name вместо Items[0].Name).
func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate — проверяет корректность снимка заказа.
func (v *OrderValidator) Validate(_ context.Context, order *domain.OrderSnapshot) error {
	if order == nil {
		return fmt.Errorf("%w: заказ не может быть nil", ErrInvalidOrder)
	}
	if err := v.v.Struct(order); err != nil {
		return translate(err)
	}
	return validateMoney(order)
}

// translate — первая ошибка validator'а в человекочитаемом виде.
func translate(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidOrder, err)
	}

	fe := fieldErrs[0]
	field := fieldPath(fe.Namespace())

	switch fe.Tag() {
	case "required":
		if fe.Kind() == reflect.Slice {
			return fmt.Errorf("%w: %s не должен быть пустым", ErrInvalidOrder, field)
		}
		return fmt.Errorf("%w: %s обязателен", ErrInvalidOrder, field)
	case "min":
		return fmt.Errorf("%w: %s не должен быть пустым", ErrInvalidOrder, field)
	case "gt":
		return fmt.Errorf("%w: %s должен быть больше нуля", ErrInvalidOrder, field)
	default:
		return fmt.Errorf("%w: %s некорректен (%s)", ErrInvalidOrder, field, fe.Tag())
	}
}

// fieldPath — убирает имя корневой структуры из namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// validateMoney — денежные поля не могут быть отрицательными.
// totalAmount не проверяется: отрицательный итог печатается как 0.00.
func validateMoney(order *domain.OrderSnapshot) error {
	for i := range order.Items {
		item := &order.Items[i]
		if item.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: items[%d].unit_price должен быть неотрицательным", ErrInvalidOrder, i)
		}
		for j := range item.Options {
			if item.Options[j].Price.IsNegative() {
				return fmt.Errorf("%w: items[%d].options[%d].price должен быть неотрицательным", ErrInvalidOrder, i, j)
			}
		}
	}
	return nil
}
