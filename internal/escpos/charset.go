package escpos

import (
	"golang.org/x/text/encoding/charmap"

	"github.com/Gunvolt24/pos_printer/internal/domain"
)

// DefaultCharacterSet — кодовая страница для нераспознанных значений.
const DefaultCharacterSet = domain.CharsetPC437USA

const unsupportedRune = '?'

var charmaps = map[domain.CharacterSet]*charmap.Charmap{
	domain.CharsetPC437USA:        charmap.CodePage437,
	domain.CharsetPC852Latin2:     charmap.CodePage852,
	domain.CharsetPC858Euro:       charmap.CodePage858,
	domain.CharsetPC860Portuguese: charmap.CodePage860,
	domain.CharsetPC865Nordic:     charmap.CodePage865,
	domain.CharsetPC866Cyrillic2:  charmap.CodePage866,
	domain.CharsetWPC1251Cyrillic: charmap.Windows1251,
	domain.CharsetWPC1252:         charmap.Windows1252,
}

// lookupCharset — (набор, таблица, true) для известной страницы; иначе страница по умолчанию и false.
func lookupCharset(cs domain.CharacterSet) (domain.CharacterSet, *charmap.Charmap, bool) {
	if cm, ok := charmaps[cs]; ok {
		return cs, cm, true
	}
	return DefaultCharacterSet, charmaps[DefaultCharacterSet], false
}

// appendEncoded — текст в байты кодовой страницы; непредставимые символы → '?'.
// Управляющие символы (< 0x20) тоже заменяются, чтобы текст не мог подменить команду.
func appendEncoded(dst []byte, cm *charmap.Charmap, s string) []byte {
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			dst = append(dst, unsupportedRune)
			continue
		}
		b, ok := cm.EncodeRune(r)
		if !ok {
			b = unsupportedRune
		}
		dst = append(dst, b)
	}
	return dst
}
