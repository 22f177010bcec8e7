package escpos

import "github.com/Gunvolt24/pos_printer/internal/domain"

const (
	esc = 0x1B
	gs  = 0x1D
	lf  = 0x0A
)

// ResetSequence — ESC @: перевод принтера в исходное состояние (одинаково для всех семейств).
var ResetSequence = []byte{esc, '@'}

// family — таблица команд одного семейства принтеров.
type family struct {
	name     domain.DeviceType
	bold     func(on bool) []byte
	invert   func(on bool) []byte
	align    func(a domain.Alignment) []byte
	codePage func(n byte) []byte
	cut      []byte
	// номера кодовых страниц в нумерации семейства
	codePages map[domain.CharacterSet]byte
}

func onOff(on bool) byte {
	if on {
		return 1
	}
	return 0
}

// epsonFamily — ESC/POS.
var epsonFamily = family{
	name:     domain.DeviceEpson,
	bold:     func(on bool) []byte { return []byte{esc, 'E', onOff(on)} },
	invert:   func(on bool) []byte { return []byte{gs, 'B', onOff(on)} },
	align:    func(a domain.Alignment) []byte { return []byte{esc, 'a', byte(a)} },
	codePage: func(n byte) []byte { return []byte{esc, 't', n} },
	cut:      []byte{gs, 'V', 'A', 0x00},
	codePages: map[domain.CharacterSet]byte{
		domain.CharsetPC437USA:        0,
		domain.CharsetPC860Portuguese: 3,
		domain.CharsetPC865Nordic:     5,
		domain.CharsetWPC1252:         16,
		domain.CharsetPC866Cyrillic2:  17,
		domain.CharsetPC852Latin2:     18,
		domain.CharsetPC858Euro:       19,
		domain.CharsetWPC1251Cyrillic: 46,
	},
}

// starFamily — Star Line Mode.
var starFamily = family{
	name: domain.DeviceStar,
	bold: func(on bool) []byte {
		if on {
			return []byte{esc, 'E'}
		}
		return []byte{esc, 'F'}
	},
	invert: func(on bool) []byte {
		if on {
			return []byte{esc, '4'}
		}
		return []byte{esc, '5'}
	},
	align:    func(a domain.Alignment) []byte { return []byte{esc, gs, 'a', byte(a)} },
	codePage: func(n byte) []byte { return []byte{esc, gs, 't', n} },
	cut:      []byte{esc, 'd', 0x02},
	codePages: map[domain.CharacterSet]byte{
		domain.CharsetPC437USA:        1,
		domain.CharsetPC858Euro:       4,
		domain.CharsetPC852Latin2:     5,
		domain.CharsetPC860Portuguese: 6,
		domain.CharsetPC865Nordic:     9,
		domain.CharsetPC866Cyrillic2:  10,
		domain.CharsetWPC1252:         32,
		domain.CharsetWPC1251Cyrillic: 34,
	},
}

var families = map[domain.DeviceType]*family{
	domain.DeviceEpson: &epsonFamily,
	domain.DeviceStar:  &starFamily,
}

// DefaultDeviceType — семейство по умолчанию для нераспознанных типов.
const DefaultDeviceType = domain.DeviceEpson

// lookupFamily — (семейство, true) для известного типа; иначе семейство по умолчанию и false.
func lookupFamily(t domain.DeviceType) (*family, bool) {
	if f, ok := families[t]; ok {
		return f, true
	}
	return families[DefaultDeviceType], false
}
