package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/Gunvolt24/pos_printer/config"
	"github.com/Gunvolt24/pos_printer/internal/app"
	"github.com/Gunvolt24/pos_printer/internal/dispatch"
	"github.com/Gunvolt24/pos_printer/internal/domain"
	"github.com/Gunvolt24/pos_printer/internal/escpos"
	"github.com/Gunvolt24/pos_printer/internal/normalize"
	"github.com/Gunvolt24/pos_printer/internal/receipt"
	"github.com/Gunvolt24/pos_printer/pkg/logger"
	"github.com/Gunvolt24/pos_printer/pkg/validate"
)

// CLI: рендер чека заказа в байты принтера (предпросмотр) или печать через настроенный транспорт.
func main() {
	inputPath := flag.String("in", "", "order JSON file; empty — stdin (ignored for -role test)")
	roleStr := flag.String("role", "kitchen", "kitchen|cashier|test")
	testRole := flag.String("test-role", "kitchen", "printer role for -role test")
	outPath := flag.String("out", "-", "output file for the rendered buffer; - — stdout")
	send := flag.Bool("send", false, "dispatch the buffer through the configured sender instead of writing it")
	flag.Parse()

	_ = godotenv.Load(".env.local")

	if err := run(*inputPath, *roleStr, *testRole, *outPath, *send); err != nil {
		fmt.Fprintf(os.Stderr, "render-receipt: %v\n", err)
		os.Exit(1)
	}
}

func run(inputPath, roleStr, testRole, outPath string, send bool) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logg, cleanup, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return err
	}
	defer func() { _ = cleanup() }()

	reg, err := app.NewRegistry(&cfg)
	if err != nil {
		return err
	}
	settings, err := app.ReceiptSettings(&cfg)
	if err != nil {
		return err
	}
	composer := receipt.NewComposer(settings, validate.NewOrderValidator(), nil)

	doc, profile, err := compose(ctx, composer, reg.Profile, inputPath, roleStr, testRole)
	if err != nil {
		return err
	}
	buf := escpos.NewEncoder(logg).Encode(ctx, profile, doc)

	if send {
		sender, err := app.NewSender(&cfg, logg)
		if err != nil {
			return err
		}
		job := domain.PrintJob{Profile: profile, Buffer: buf}
		if !dispatch.NewDispatcher(sender, logg).Dispatch(ctx, job) {
			return fmt.Errorf("printer %s did not confirm the job", profile.DeviceName)
		}
		fmt.Fprintf(os.Stderr, "sent %d bytes to %s\n", len(buf), profile.DeviceName)
		return nil
	}

	return writeOut(outPath, buf)
}

func compose(
	ctx context.Context,
	composer *receipt.Composer,
	lookup func(domain.Role) (domain.PrinterProfile, bool),
	inputPath, roleStr, testRole string,
) (*domain.Document, domain.PrinterProfile, error) {
	if roleStr == "test" {
		role, err := domain.ParseRole(testRole)
		if err != nil {
			return nil, domain.PrinterProfile{}, err
		}
		profile, _ := lookup(role)
		doc, err := composer.TestPage(profile)
		return doc, profile, err
	}

	role, err := domain.ParseRole(roleStr)
	if err != nil {
		return nil, domain.PrinterProfile{}, err
	}
	profile, _ := lookup(role)

	raw, err := readIn(inputPath)
	if err != nil {
		return nil, profile, err
	}
	order, err := normalize.Order(raw)
	if err != nil {
		return nil, profile, err
	}

	var doc *domain.Document
	if role == domain.RoleKitchen {
		doc, err = composer.Kitchen(ctx, order, profile)
	} else {
		doc, err = composer.Cashier(ctx, order, profile)
	}
	return doc, profile, err
}

func readIn(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOut(path string, buf []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(buf)
		return err
	}
	return os.WriteFile(path, buf, 0o600)
}
