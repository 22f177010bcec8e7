package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Gunvolt24/pos_printer/pkg/validate"
)

// CLI-приложение для проверки снимков заказов: на stdout — нормализованные снимки.
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	flag.Parse()

	ctx := context.Background()
	orderValidator := validate.NewOrderValidator()

	format := validate.InputFormat(*formatStr)
	path := *inputPath

	// stdin вариант: считаем, что jsonl
	if path == "" {
		path = "/dev/stdin"
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
	}

	summary, err := validate.ValidateFile(ctx, orderValidator, path, format, os.Stdout)
	for _, p := range summary.Problems {
		fmt.Fprintf(os.Stderr, "#%d: %v\n", p.Position, p.Err)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "validation ok (%s)\n", summary)
}
