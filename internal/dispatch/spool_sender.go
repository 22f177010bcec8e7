// Пакет dispatch — доставка готового буфера до принтера.
package dispatch

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/Gunvolt24/pos_printer/internal/ports"
)

const (
	placeholderPrinter = "{printer}"
	placeholderFile    = "{file}"

	DefaultSpoolCommand  = "lp"
	DefaultSuccessMarker = "request id is"
)

// DefaultSpoolArgs — аргументы lp для «сырой» печати.
var DefaultSpoolArgs = []string{"-d", placeholderPrinter, "-o", "raw", placeholderFile}

// SpoolConfig — настройки отправки через системный спулер.
type SpoolConfig struct {
	Command       string
	Args          []string
	SuccessMarker string
	TempDir       string
}

// SpoolSender — отправка через временный файл и внешнюю команду (lp).
type SpoolSender struct {
	cfg SpoolConfig
	log ports.Logger
}

// NewSpoolSender — конструктор; пустые поля заменяются значениями по умолчанию.
func NewSpoolSender(cfg SpoolConfig, log ports.Logger) *SpoolSender {
	if cfg.Command == "" {
		cfg.Command = DefaultSpoolCommand
	}
	if len(cfg.Args) == 0 {
		cfg.Args = DefaultSpoolArgs
	}
	if cfg.SuccessMarker == "" {
		cfg.SuccessMarker = DefaultSuccessMarker
	}
	return &SpoolSender{cfg: cfg, log: log}
}

// Send — пишет буфер во временный файл, запускает команду и удаляет файл при любом исходе.
func (s *SpoolSender) Send(ctx context.Context, buf []byte, deviceName string) bool {
	path, err := s.writeTemp(buf)
	if err != nil {
		s.log.Errorf(ctx, "spool: temp file: %v", err)
		return false
	}
	defer func() {
		if rmErr := os.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
			s.log.Warnf(ctx, "spool: remove %s: %v", path, rmErr)
		}
	}()

	cmd := exec.CommandContext(ctx, s.cfg.Command, s.args(deviceName, path)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		s.log.Errorf(ctx, "spool: %s failed for %q: %v; stderr=%q", s.cfg.Command, deviceName, err, strings.TrimSpace(stderr.String()))
		return false
	}
	if !strings.Contains(stdout.String(), s.cfg.SuccessMarker) {
		s.log.Warnf(ctx, "spool: no confirmation from %s for %q: stdout=%q stderr=%q",
			s.cfg.Command, deviceName, strings.TrimSpace(stdout.String()), strings.TrimSpace(stderr.String()))
		return false
	}

	s.log.Infof(ctx, "spool: job accepted for %q: %s", deviceName, strings.TrimSpace(stdout.String()))
	return true
}

func (s *SpoolSender) writeTemp(buf []byte) (string, error) {
	f, err := os.CreateTemp(s.cfg.TempDir, fmt.Sprintf("pos-job-%d-*.bin", time.Now().UnixNano()))
	if err != nil {
		return "", err
	}
	path := f.Name()

	if _, err := f.Write(buf); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("close: %w", err)
	}
	return path, nil
}

func (s *SpoolSender) args(deviceName, path string) []string {
	out := make([]string, len(s.cfg.Args))
	for i, a := range s.cfg.Args {
		a = strings.ReplaceAll(a, placeholderPrinter, deviceName)
		out[i] = strings.ReplaceAll(a, placeholderFile, path)
	}
	return out
}

var _ ports.Sender = (*SpoolSender)(nil)
