package receipt

import (
	"fmt"
	"strings"

	"github.com/Gunvolt24/pos_printer/internal/domain"
	"github.com/Gunvolt24/pos_printer/internal/escpos"
	"github.com/Gunvolt24/pos_printer/internal/layout"
)

// printerReset — сброс принтера в известное состояние перед кассовым чеком.
var printerReset = escpos.ResetSequence

var paymentNames = map[string]string{
	"cash":     "Cash",
	"card":     "Card",
	"credit":   "Credit card",
	"debit":    "Debit card",
	"voucher":  "Voucher",
	"transfer": "Bank transfer",
	"pix":      "PIX",
}

// PaymentDisplayName — человекочитаемое имя способа оплаты; неизвестное — в верхнем регистре.
func PaymentDisplayName(method string) string {
	key := strings.ToLower(strings.TrimSpace(method))
	if name, ok := paymentNames[key]; ok {
		return name
	}
	return strings.ToUpper(strings.TrimSpace(method))
}

// TestPage — пробная страница: параметры профиля, линейка ширины, образцы стилей и кодовой страницы.
func (c *Composer) TestPage(profile domain.PrinterProfile) (*domain.Document, error) {
	if profile.WidthColumns < 1 {
		return nil, fmt.Errorf("%w: width_columns=%d", ErrInvalidProfile, profile.WidthColumns)
	}
	w := profile.WidthColumns
	doc := &domain.Document{}

	doc.Raw(printerReset)
	doc.Align(domain.AlignCenter).Bold(true).
		Lines(layout.Wrap(w, "PRINTER TEST")...).
		Bold(false).Align(domain.AlignLeft).
		Text(layout.Heavy(w))

	doc.Lines(layout.Wrap(w, "Role: "+string(profile.Role))...)
	doc.Lines(layout.Wrap(w, "Device: "+profile.DeviceName)...)
	doc.Lines(layout.Wrap(w, "Type: "+string(profile.DeviceType))...)
	doc.Lines(layout.Wrap(w, "Charset: "+string(profile.CharacterSet))...)
	doc.Lines(layout.Wrap(w, fmt.Sprintf("Width: %d", w))...)
	doc.Lines(layout.Wrap(w, "Time: "+c.timestamp())...)
	doc.Text(layout.Light(w))

	doc.Text(ruler(w))
	doc.Bold(true).Lines(layout.Wrap(w, "Bold")...).Bold(false)
	doc.Invert(true).Lines(layout.Wrap(w, "Inverted")...).Invert(false)
	doc.Lines(layout.Wrap(w, "áéíóú àèç ñ äöü €")...)
	doc.Lines(layout.Pair(w, "Left", "Right")...)

	doc.Text(layout.Heavy(w)).Feed(4).Cut()
	return doc, nil
}

// ruler — 1234567890123... ровно w символов.
func ruler(w int) string {
	var b strings.Builder
	for i := 1; i <= w; i++ {
		b.WriteByte(byte('0' + i%10))
	}
	return b.String()
}
