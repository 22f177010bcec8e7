package validate

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/pos_printer/internal/ports"
)

const maxJSONLLine = 10 * 1024 * 1024

// ValidateJSONLStream — читает JSONL, проверяет каждую строку и пишет канонический снимок
// одной строкой на каждую валидную запись. Пустые строки пропускаются,
// невалидные попадают в Summary.Problems с номером строки.
func ValidateJSONLStream(ctx context.Context, validator ports.OrderValidator, ir io.Reader, ow io.Writer) (Summary, error) {
	var sum Summary
	enc := json.NewEncoder(ow)

	scanner := bufio.NewScanner(ir)
	scanner.Buffer(make([]byte, 0, 64*1024), maxJSONLLine)

	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		order, err := ValidateOrderFromJSON(ctx, validator, line)
		if err != nil {
			sum.reject(lineNo, err)
			continue
		}
		if err := enc.Encode(order); err != nil {
			return sum, fmt.Errorf("write line %d: %w", lineNo, err)
		}
		sum.Valid++
	}
	if err := scanner.Err(); err != nil {
		return sum, fmt.Errorf("scan: %w", err)
	}
	return sum, nil
}
