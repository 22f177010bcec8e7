package domain

import (
	"fmt"
	"strings"
)

// Role — логическая роль принтера (куда уходит чек).
type Role string

const (
	RoleKitchen Role = "kitchen"
	RoleCashier Role = "cashier"
)

// Roles — все поддерживаемые роли в порядке печати.
var Roles = []Role{RoleKitchen, RoleCashier}

// ParseRole — разбор роли без учёта регистра.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleKitchen:
		return RoleKitchen, nil
	case RoleCashier:
		return RoleCashier, nil
	default:
		return "", fmt.Errorf("unknown printer role %q", s)
	}
}

// DeviceType — семейство команд принтера.
type DeviceType string

const (
	DeviceEpson   DeviceType = "epson"
	DeviceStar    DeviceType = "star"
	DeviceTanca   DeviceType = "tanca"
	DeviceDaruma  DeviceType = "daruma"
	DeviceBrother DeviceType = "brother"
	DeviceCustom  DeviceType = "custom"
)

// CharacterSet — кодовая страница принтера.
type CharacterSet string

const (
	CharsetPC437USA        CharacterSet = "PC437_USA"
	CharsetPC852Latin2     CharacterSet = "PC852_LATIN2"
	CharsetPC858Euro       CharacterSet = "PC858_EURO"
	CharsetPC860Portuguese CharacterSet = "PC860_PORTUGUESE"
	CharsetPC865Nordic     CharacterSet = "PC865_NORDIC"
	CharsetPC866Cyrillic2  CharacterSet = "PC866_CYRILLIC2"
	CharsetWPC1251Cyrillic CharacterSet = "WPC1251_CYRILLIC"
	CharsetWPC1252         CharacterSet = "WPC1252"
)

// PrinterProfile — неизменяемое описание принтера для роли.
// Загружается один раз из конфигурации и разделяется всеми вызовами.
type PrinterProfile struct {
	Role         Role         `json:"role"          validate:"required,oneof=kitchen cashier"`
	DeviceType   DeviceType   `json:"device_type"   validate:"required"`
	DeviceName   string       `json:"device_name"   validate:"required"`
	CharacterSet CharacterSet `json:"character_set" validate:"required"`
	WidthColumns int          `json:"width_columns" validate:"gte=1,lte=256"`
}

// PrintJob — буфер для конкретного профиля; живёт ровно один вызов.
type PrintJob struct {
	Profile PrinterProfile
	Buffer  []byte
}
