package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/pos_printer/internal/domain"
	"github.com/Gunvolt24/pos_printer/internal/ports"
)

// Проверка, что PrintJournal удовлетворяет интерфейсу PrintJournal.
var _ ports.PrintJournal = (*PrintJournal)(nil)

// PrintJournal — журнал попыток печати на Postgres (pgxpool).
// Снимок заказа хранится как jsonb: таблица только для перепечатки и разбора инцидентов.
type PrintJournal struct {
	pool *pgxpool.Pool
}

// NewPrintJournal - конструктор PrintJournal.
func NewPrintJournal(pool *pgxpool.Pool) *PrintJournal { return &PrintJournal{pool: pool} }

// Record — добавляет запись (append-only).
func (r *PrintJournal) Record(ctx context.Context, entry *ports.JournalEntry) error {
	if entry == nil || entry.Snapshot == nil {
		return errors.New("journal entry or snapshot is empty")
	}
	orderID := strings.TrimSpace(entry.OrderID)
	if orderID == "" {
		return errors.New("order_id is required")
	}

	snapshot, err := json.Marshal(entry.Snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	printedAt := entry.PrintedAt
	if printedAt.IsZero() {
		printedAt = time.Now()
	}

	if _, err := r.pool.Exec(ctx, `
		INSERT INTO print_journal (order_id, role, printed, printed_at, snapshot)
		VALUES ($1, $2, $3, $4, $5)
	`, orderID, string(entry.Role), entry.Printed, printedAt.UTC(), snapshot); err != nil {
		return fmt.Errorf("insert journal entry: %w", err)
	}
	return nil
}

// LastSnapshot — последний успешно напечатанный снимок. Если не нашли, возвращает (nil, nil).
func (r *PrintJournal) LastSnapshot(ctx context.Context, orderID string) (*domain.OrderSnapshot, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx, `
		SELECT snapshot
		FROM print_journal
		WHERE order_id = $1 AND printed
		ORDER BY printed_at DESC, id DESC
		LIMIT 1
	`, strings.TrimSpace(orderID)).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select snapshot: %w", err)
	}
	return decodeSnapshot(raw)
}

// LastN — последние n различных заказов, от новых к старым.
func (r *PrintJournal) LastN(ctx context.Context, n int) ([]*domain.OrderSnapshot, error) {
	if n <= 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT snapshot FROM (
			SELECT DISTINCT ON (order_id) order_id, snapshot, printed_at, id
			FROM print_journal
			WHERE printed
			ORDER BY order_id, printed_at DESC, id DESC
		) last
		ORDER BY printed_at DESC, id DESC
		LIMIT $1
	`, n)
	if err != nil {
		return nil, fmt.Errorf("select last snapshots: %w", err)
	}
	defer rows.Close()

	out := make([]*domain.OrderSnapshot, 0, n)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		snap, err := decodeSnapshot(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

func decodeSnapshot(raw []byte) (*domain.OrderSnapshot, error) {
	var snap domain.OrderSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}
