package validate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/Gunvolt24/pos_printer/internal/ports"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// Problem — невалидная запись: номер строки (JSONL) или индекс в массиве (JSON, с 1).
type Problem struct {
	Position int
	Err      error
}

// Summary — итог проверки файла; невалидные записи перечислены в Problems.
type Summary struct {
	Valid    int
	Invalid  int
	Problems []Problem
}

func (s Summary) String() string {
	return fmt.Sprintf("%d valid / %d invalid", s.Valid, s.Invalid)
}

func (s *Summary) reject(pos int, err error) {
	s.Invalid++
	s.Problems = append(s.Problems, Problem{Position: pos, Err: err})
}

// DetectFormat — формат по расширению; всё, кроме .jsonl, считается JSON.
func DetectFormat(filePath string) InputFormat {
	if strings.EqualFold(filepath.Ext(filePath), ".jsonl") {
		return FormatJSONL
	}
	return FormatJSON
}

// ValidateFile — проверяет файл со снимками заказов и пишет канонические снимки
// (по одному JSON на строку) в writer. JSON — один объект или массив объектов.
// Ошибка возвращается, если файл не читается или не валиден ни один заказ одиночного JSON.
func ValidateFile(ctx context.Context, validator ports.OrderValidator, filePath string, format InputFormat, ow io.Writer) (Summary, error) {
	if format == FormatAuto {
		format = DetectFormat(filePath)
	}
	if format != FormatJSON && format != FormatJSONL {
		return Summary{}, fmt.Errorf("unsupported format: %s", format)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return Summary{}, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	if format == FormatJSONL {
		return ValidateJSONLStream(ctx, validator, file, ow)
	}

	raw, err := io.ReadAll(file)
	if err != nil {
		return Summary{}, fmt.Errorf("read file: %w", err)
	}
	return validateJSONDocument(ctx, validator, raw, ow)
}

func validateJSONDocument(ctx context.Context, validator ports.OrderValidator, raw []byte, ow io.Writer) (Summary, error) {
	var sum Summary
	enc := json.NewEncoder(ow)

	root := gjson.ParseBytes(raw)
	if !gjson.ValidBytes(raw) || !root.IsArray() {
		order, err := ValidateOrderFromJSON(ctx, validator, raw)
		if err != nil {
			sum.reject(1, err)
			return sum, err
		}
		if err := enc.Encode(order); err != nil {
			return sum, fmt.Errorf("write json: %w", err)
		}
		sum.Valid++
		return sum, nil
	}

	for i, el := range root.Array() {
		order, err := ValidateOrderFromJSON(ctx, validator, []byte(el.Raw))
		if err != nil {
			sum.reject(i+1, err)
			continue
		}
		if err := enc.Encode(order); err != nil {
			return sum, fmt.Errorf("write json: %w", err)
		}
		sum.Valid++
	}
	return sum, nil
}
