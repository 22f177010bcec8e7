// Пакет escpos — сериализация примитивов печати в байты команд термопринтера.
package escpos

import (
	"bytes"
	"context"
	"strings"

	"github.com/Gunvolt24/pos_printer/internal/domain"
	"github.com/Gunvolt24/pos_printer/internal/ports"
	"github.com/Gunvolt24/pos_printer/pkg/metrics"
)

// Encoder — кодировщик документа под семейство и кодовую страницу профиля.
// Без состояния; безопасен для конкурентного использования.
type Encoder struct {
	log ports.Logger
}

func NewEncoder(log ports.Logger) *Encoder { return &Encoder{log: log} }

// Encode — буфер для профиля.
// Неизвестное семейство или кодовая страница — не ошибка: подставляется значение по умолчанию.
func (e *Encoder) Encode(ctx context.Context, profile domain.PrinterProfile, doc *domain.Document) []byte {
	fam, known := lookupFamily(domain.DeviceType(strings.ToLower(string(profile.DeviceType))))
	if !known {
		metrics.EncoderFallbacks.WithLabelValues("device_type").Inc()
		e.log.Warnf(ctx, "unknown device type=%q printer=%s, fallback to %s", profile.DeviceType, profile.DeviceName, fam.name)
	}
	cs, cm, knownCS := lookupCharset(profile.CharacterSet)
	if !knownCS {
		metrics.EncoderFallbacks.WithLabelValues("character_set").Inc()
		e.log.Warnf(ctx, "unknown character set=%q printer=%s, fallback to %s", profile.CharacterSet, profile.DeviceName, cs)
	}

	codePage := fam.codePage(fam.codePages[cs])

	buf := make([]byte, 0, 64+len(doc.Commands)*profile.WidthColumns)
	buf = append(buf, ResetSequence...)
	buf = append(buf, codePage...)

	for _, c := range doc.Commands {
		switch c.Kind {
		case domain.CmdText:
			buf = appendEncoded(buf, cm, c.Text)
			buf = append(buf, lf)
		case domain.CmdBold:
			buf = append(buf, fam.bold(c.On)...)
		case domain.CmdInvert:
			buf = append(buf, fam.invert(c.On)...)
		case domain.CmdAlign:
			buf = append(buf, fam.align(c.Align)...)
		case domain.CmdRaw:
			buf = append(buf, c.Raw...)
			// ESC @ возвращает принтер к странице по умолчанию, текст дальше идёт в странице профиля
			if bytes.Contains(c.Raw, ResetSequence) {
				buf = append(buf, codePage...)
			}
		case domain.CmdFeed:
			for i := 0; i < c.Lines; i++ {
				buf = append(buf, lf)
			}
		case domain.CmdCut:
			buf = append(buf, fam.cut...)
		}
	}
	return buf
}
