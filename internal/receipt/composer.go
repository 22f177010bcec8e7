// Пакет receipt — сборка кухонного тикета и кассового чека из снимка заказа.
package receipt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/pos_printer/internal/domain"
	"github.com/Gunvolt24/pos_printer/internal/layout"
	"github.com/Gunvolt24/pos_printer/internal/ports"
)

// ErrInvalidProfile — профиль с нулевой/отрицательной шириной.
var ErrInvalidProfile = errors.New("invalid printer profile")

const (
	kitchenIDLen         = 4
	kitchenIDPlaceholder = "????"
	cashierIDLen         = 6
	cashierIDPlaceholder = "??????"

	optionIndent = "   "
	noteIndent   = "    "
)

// Settings — тексты и формат чека.
type Settings struct {
	StoreName    string
	Subtitle     string
	KitchenTitle string
	Currency     string
	TimeFormat   string
	Location     *time.Location
	ThankYou     []string
}

// DefaultSettings — значения по умолчанию.
func DefaultSettings() Settings {
	return Settings{
		StoreName:    "POS",
		Subtitle:     "Sales Receipt",
		KitchenTitle: "KITCHEN TICKET",
		Currency:     "EUR",
		TimeFormat:   "02.01.2006 15:04",
		Location:     time.Local,
		ThankYou:     []string{"Thank you for your visit!", "See you soon!"},
	}
}

// Composer — сборщик документов печати. Без изменяемого состояния.
type Composer struct {
	settings  Settings
	validator ports.OrderValidator
	now       func() time.Time
}

// NewComposer — конструктор; now == nil → time.Now.
func NewComposer(settings Settings, validator ports.OrderValidator, now func() time.Time) *Composer {
	if now == nil {
		now = time.Now
	}
	if settings.Location == nil {
		settings.Location = time.Local
	}
	return &Composer{settings: settings, validator: validator, now: now}
}

func (c *Composer) check(ctx context.Context, order *domain.OrderSnapshot, profile domain.PrinterProfile) error {
	if profile.WidthColumns < 1 {
		return fmt.Errorf("%w: width_columns=%d", ErrInvalidProfile, profile.WidthColumns)
	}
	return c.validator.Validate(ctx, order)
}

func (c *Composer) timestamp() string {
	return c.now().In(c.settings.Location).Format(c.settings.TimeFormat)
}

// Kitchen — тикет для кухни: без цен, с опциями и примечаниями.
func (c *Composer) Kitchen(ctx context.Context, order *domain.OrderSnapshot, profile domain.PrinterProfile) (*domain.Document, error) {
	if err := c.check(ctx, order, profile); err != nil {
		return nil, err
	}
	w := profile.WidthColumns
	doc := &domain.Document{}

	doc.Align(domain.AlignCenter).Bold(true).
		Lines(layout.Wrap(w, c.settings.KitchenTitle)...).
		Bold(false).Align(domain.AlignLeft)

	doc.Lines(layout.Wrap(w, "Order #"+ShortID(order.ID, kitchenIDLen, kitchenIDPlaceholder))...)
	doc.Lines(layout.Wrap(w, "Time: "+c.timestamp())...)
	doc.Text(layout.Heavy(w))

	for i := range order.Items {
		item := &order.Items[i]

		doc.Bold(true).
			Lines(layout.Wrap(w, fmt.Sprintf("[ ] %dx %s", item.Quantity, item.Name))...).
			Bold(false)
		for _, opt := range item.Options {
			doc.Lines(layout.WrapIndent(w, optionIndent, "+ "+opt.Name)...)
		}
		if note := strings.TrimSpace(item.Note); note != "" {
			doc.Invert(true).
				Lines(layout.WrapIndent(w, noteIndent, "NOTE: "+note)...).
				Invert(false)
		}
		doc.Feed(1)
	}

	doc.Text(layout.Heavy(w)).Feed(2).Cut()
	return doc, nil
}

// Cashier — чек покупателя с ценами, итогом и способом оплаты.
func (c *Composer) Cashier(ctx context.Context, order *domain.OrderSnapshot, profile domain.PrinterProfile) (*domain.Document, error) {
	if err := c.check(ctx, order, profile); err != nil {
		return nil, err
	}
	w := profile.WidthColumns
	doc := &domain.Document{}

	doc.Raw(printerReset)

	doc.Align(domain.AlignCenter).Bold(true).
		Lines(layout.Wrap(w, c.settings.StoreName)...).
		Bold(false).
		Lines(layout.Wrap(w, c.settings.Subtitle)...).
		Align(domain.AlignLeft).
		Text(layout.Heavy(w))

	doc.Lines(layout.Wrap(w, "Order #"+ShortID(order.ID, cashierIDLen, cashierIDPlaceholder))...)
	doc.Lines(layout.Wrap(w, "Date: "+c.timestamp())...)
	doc.Text(layout.Heavy(w))

	for i := range order.Items {
		item := &order.Items[i]
		left := fmt.Sprintf("%dx %s", item.Quantity, item.Name)
		doc.Lines(layout.Pair(w, left, c.money(item.LineTotal()))...)
		for _, opt := range item.Options {
			line := fmt.Sprintf("+ %s (%s)", opt.Name, opt.Price.StringFixed(2))
			doc.Lines(layout.WrapIndent(w, optionIndent, line)...)
		}
	}

	doc.Text(layout.Light(w))

	total := order.TotalAmount
	if total.IsNegative() {
		total = decimal.Zero
	}
	doc.Bold(true).Lines(rightAligned(w, "TOTAL: "+c.money(total))...).Bold(false)

	if pm := strings.TrimSpace(order.PaymentMethod); pm != "" {
		doc.Lines(rightAligned(w, "Payment: "+PaymentDisplayName(pm))...)
	}

	doc.Feed(1).Align(domain.AlignCenter)
	for _, line := range c.settings.ThankYou {
		doc.Lines(layout.Wrap(w, line)...)
	}
	doc.Align(domain.AlignLeft).Text(layout.Heavy(w)).Feed(4).Cut()
	return doc, nil
}

// money — 2 знака после запятой + валюта. Округление только здесь.
func (c *Composer) money(d decimal.Decimal) string {
	s := d.StringFixed(2)
	if c.settings.Currency != "" {
		s += " " + c.settings.Currency
	}
	return s
}

// rightAligned — строка, прижатая вправо; если шире сетки — переносится, каждая часть прижата вправо.
func rightAligned(w int, s string) []string {
	if layout.Len(s) <= w {
		return []string{layout.Right(w, s)}
	}
	lines := layout.Wrap(w, s)
	for i := range lines {
		lines[i] = layout.Right(w, lines[i])
	}
	return lines
}

// ShortID — последние n символов id или заглушка, если id короче n.
func ShortID(id string, n int, placeholder string) string {
	r := []rune(strings.TrimSpace(id))
	if len(r) < n {
		return placeholder
	}
	return string(r[len(r)-n:])
}
