package app

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Gunvolt24/pos_printer/config"
	"github.com/Gunvolt24/pos_printer/internal/dispatch"
	"github.com/Gunvolt24/pos_printer/internal/domain"
	"github.com/Gunvolt24/pos_printer/internal/ports"
	"github.com/Gunvolt24/pos_printer/internal/receipt"
	"github.com/Gunvolt24/pos_printer/internal/registry"
)

const (
	DispatchSpool  = "spool"
	DispatchDevice = "device"
)

func profile(role domain.Role, p config.Printer) domain.PrinterProfile {
	return domain.PrinterProfile{
		Role:         role,
		DeviceType:   domain.DeviceType(strings.ToLower(strings.TrimSpace(p.DeviceType))),
		DeviceName:   strings.TrimSpace(p.DeviceName),
		CharacterSet: domain.CharacterSet(strings.ToUpper(strings.TrimSpace(p.CharacterSet))),
		WidthColumns: p.WidthColumns,
	}
}

// NewRegistry — реестр профилей из секции Printers.
func NewRegistry(cfg *config.Config) (*registry.StaticRegistry, error) {
	return registry.New(
		profile(domain.RoleKitchen, cfg.Printers.Kitchen),
		profile(domain.RoleCashier, cfg.Printers.Cashier),
	)
}

// ReceiptSettings — тексты чека поверх значений по умолчанию.
func ReceiptSettings(cfg *config.Config) (receipt.Settings, error) {
	s := receipt.DefaultSettings()
	r := cfg.Receipt
	if r.StoreName != "" {
		s.StoreName = r.StoreName
	}
	if r.Subtitle != "" {
		s.Subtitle = r.Subtitle
	}
	if r.KitchenTitle != "" {
		s.KitchenTitle = r.KitchenTitle
	}
	if len(r.ThankYou) > 0 {
		s.ThankYou = slices.Clone(r.ThankYou)
	}
	if r.Currency != "" {
		s.Currency = r.Currency
	}
	if r.TimeFormat != "" {
		s.TimeFormat = r.TimeFormat
	}
	if tz := strings.TrimSpace(r.Timezone); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return receipt.Settings{}, fmt.Errorf("receipt timezone %q: %w", tz, err)
		}
		s.Location = loc
	}
	return s, nil
}

// NewSender — транспорт до принтера по Dispatch.Mode.
func NewSender(cfg *config.Config, log ports.Logger) (ports.Sender, error) {
	d := cfg.Dispatch
	switch strings.ToLower(strings.TrimSpace(d.Mode)) {
	case "", DispatchSpool:
		return dispatch.NewSpoolSender(dispatch.SpoolConfig{
			Command:       d.SpoolCommand,
			Args:          d.SpoolArgs,
			SuccessMarker: d.SuccessMarker,
			TempDir:       d.TempDir,
		}, log), nil
	case DispatchDevice:
		return dispatch.NewDeviceSender(d.DevicePath, log), nil
	default:
		return nil, fmt.Errorf("unknown dispatch mode %q", d.Mode)
	}
}
