package dispatch

import (
	"context"
	"os"
	"strings"

	"github.com/Gunvolt24/pos_printer/internal/ports"
)

// DefaultDevicePathTemplate — путь к устройству; {printer} заменяется именем принтера.
const DefaultDevicePathTemplate = "/dev/usb/{printer}"

// DeviceSender — запись буфера напрямую в файл устройства, без спулера.
type DeviceSender struct {
	pathTemplate string
	log          ports.Logger
}

func NewDeviceSender(pathTemplate string, log ports.Logger) *DeviceSender {
	if pathTemplate == "" {
		pathTemplate = DefaultDevicePathTemplate
	}
	return &DeviceSender{pathTemplate: pathTemplate, log: log}
}

// Send — успех только если записан весь буфер и устройство закрылось без ошибки.
func (d *DeviceSender) Send(ctx context.Context, buf []byte, deviceName string) bool {
	if err := ctx.Err(); err != nil {
		d.log.Warnf(ctx, "device: %q: %v", deviceName, err)
		return false
	}
	path := strings.ReplaceAll(d.pathTemplate, placeholderPrinter, deviceName)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		d.log.Errorf(ctx, "device: open %s: %v", path, err)
		return false
	}

	n, err := f.Write(buf)
	closeErr := f.Close()
	switch {
	case err != nil:
		d.log.Errorf(ctx, "device: write %s: %v", path, err)
		return false
	case n != len(buf):
		d.log.Errorf(ctx, "device: short write %s: %d/%d", path, n, len(buf))
		return false
	case closeErr != nil:
		d.log.Errorf(ctx, "device: close %s: %v", path, closeErr)
		return false
	}
	return true
}

var _ ports.Sender = (*DeviceSender)(nil)
