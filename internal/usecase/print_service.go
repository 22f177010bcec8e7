package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Gunvolt24/pos_printer/internal/dispatch"
	"github.com/Gunvolt24/pos_printer/internal/domain"
	"github.com/Gunvolt24/pos_printer/internal/escpos"
	"github.com/Gunvolt24/pos_printer/internal/ports"
	"github.com/Gunvolt24/pos_printer/internal/receipt"
	"github.com/Gunvolt24/pos_printer/pkg/ctxmeta"
	"github.com/Gunvolt24/pos_printer/pkg/metrics"
)

var (
	// ErrPrintFailed — принтер не подтвердил хотя бы одно задание.
	ErrPrintFailed = errors.New("print failed")
	// ErrSnapshotNotFound — для перепечатки нет сохранённого снимка.
	ErrSnapshotNotFound = errors.New("order snapshot not found")
)

// Проверка, что PrintService удовлетворяет входному порту транспорта.
var _ ports.ReceiptPrinter = (*PrintService)(nil)

// PrintService — конвейер печати: сборка документа → кодирование → отправка.
// Между вызовами хранит только снимки для перепечатки (кэш/журнал, оба опциональны).
type PrintService struct {
	registry   ports.PrinterRegistry
	composer   *receipt.Composer
	encoder    *escpos.Encoder
	dispatcher *dispatch.Dispatcher
	validator  ports.OrderValidator
	cache      ports.SnapshotCache // может быть nil
	journal    ports.PrintJournal  // может быть nil
	log        ports.Logger
	tracer     trace.Tracer
	now        func() time.Time
}

// NewPrintService — DI-конструктор.
func NewPrintService(
	registry ports.PrinterRegistry,
	composer *receipt.Composer,
	encoder *escpos.Encoder,
	dispatcher *dispatch.Dispatcher,
	validator ports.OrderValidator,
	cache ports.SnapshotCache,
	journal ports.PrintJournal,
	log ports.Logger,
) *PrintService {
	return &PrintService{
		registry:   registry,
		composer:   composer,
		encoder:    encoder,
		dispatcher: dispatcher,
		validator:  validator,
		cache:      cache,
		journal:    journal,
		log:        log,
		tracer:     otel.Tracer("pos_printer/usecase"),
		now:        time.Now,
	}
}

func (s *PrintService) PrintKitchenReceipt(ctx context.Context, order *domain.OrderSnapshot) bool {
	return s.printOrder(ctx, domain.RoleKitchen, order)
}

func (s *PrintService) PrintCashierReceipt(ctx context.Context, order *domain.OrderSnapshot) bool {
	return s.printOrder(ctx, domain.RoleCashier, order)
}

// TestPrint — пробная страница на принтер запрошенной роли.
func (s *PrintService) TestPrint(ctx context.Context, role domain.Role) (ok bool) {
	ctx, span := s.tracer.Start(ctx, "print.test", trace.WithAttributes(attribute.String("print.role", string(role))))
	defer func() { endSpan(span, ok) }()
	defer s.recoverTo(ctx, role, &ok)

	profile, found := s.registry.Profile(role)
	if !found {
		s.log.Warnf(ctx, "test print: no printer configured for role=%s", role)
		return false
	}

	doc, err := s.composer.TestPage(profile)
	if err != nil {
		metrics.ComposeFailures.WithLabelValues(string(role)).Inc()
		s.log.Warnf(ctx, "test print: compose failed role=%s err=%v", role, err)
		return false
	}
	return s.encodeAndDispatch(ctx, profile, doc)
}

// Reprint — повторная печать последнего успешно напечатанного снимка заказа.
// Ищет сначала в кэше, затем в журнале; ErrSnapshotNotFound, если снимка нет.
func (s *PrintService) Reprint(ctx context.Context, role domain.Role, orderID string) (bool, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return false, ErrSnapshotNotFound
	}

	snap, err := s.lookupSnapshot(ctx, orderID)
	if err != nil {
		return false, err
	}
	if snap == nil {
		return false, ErrSnapshotNotFound
	}

	s.log.Infof(ctx, "reprint order=%s role=%s", orderID, role)
	return s.printOrder(ctx, role, snap), nil
}

func (s *PrintService) Printers() []domain.PrinterProfile {
	return s.registry.All()
}

// RecentSnapshots — последние напечатанные заказы из журнала; без журнала — пустой список.
func (s *PrintService) RecentSnapshots(ctx context.Context, limit int) ([]*domain.OrderSnapshot, error) {
	if s.journal == nil || limit <= 0 {
		return []*domain.OrderSnapshot{}, nil
	}
	list, err := s.journal.LastN(ctx, limit)
	if err != nil {
		s.log.Errorf(ctx, "journal.LastN failed n=%d err=%v", limit, err)
		return nil, err
	}
	return list, nil
}

// HandleOrderEvent — событие из Kafka: {"role": "...", "order": {...}}.
// Без роли печатаются оба чека (сначала кухня). Если заданы only, печатаются только
// эти роли из события: так повтор после частичного сбоя не дублирует уже напечатанный чек.
// Невалидный вход → validate.ErrInvalidOrder, неподтверждённая печать → *PrintFailedError
// (errors.Is(err, ErrPrintFailed) == true).
func (s *PrintService) HandleOrderEvent(ctx context.Context, raw []byte, only ...domain.Role) error {
	ev, err := decodeOrderEvent(raw)
	if err != nil {
		s.log.Warnf(ctx, "invalid print event: %v", err)
		return err
	}
	if err := s.validator.Validate(ctx, ev.order); err != nil {
		s.log.Warnf(ctx, "invalid order in print event id=%s: %v", ev.order.ID, err)
		return err
	}

	var failed []domain.Role
	for _, role := range ev.roles {
		if len(only) > 0 && !slices.Contains(only, role) {
			continue
		}
		if !s.printOrder(ctx, role, ev.order) {
			failed = append(failed, role)
		}
	}
	if len(failed) > 0 {
		return &PrintFailedError{OrderID: ev.order.ID, Roles: failed}
	}
	return nil
}

// PrintFailedError — роли, чеки которых принтер не подтвердил.
type PrintFailedError struct {
	OrderID string
	Roles   []domain.Role
}

func (e *PrintFailedError) Error() string {
	roles := make([]string, len(e.Roles))
	for i, r := range e.Roles {
		roles[i] = string(r)
	}
	return fmt.Sprintf("%v: order=%s roles=%s", ErrPrintFailed, e.OrderID, strings.Join(roles, ","))
}

func (e *PrintFailedError) Unwrap() error { return ErrPrintFailed }

// FailedRoles — роли для повторной печати.
func (e *PrintFailedError) FailedRoles() []domain.Role { return e.Roles }

// WarmUpCache — прогрев кэша перепечатки последними N снимками из журнала.
// Если журнала нет или n <= 0, прогрев не выполняется (но это не ошибка).
func (s *PrintService) WarmUpCache(ctx context.Context, n int) error {
	if s.journal == nil || s.cache == nil || n <= 0 {
		s.log.Warnf(ctx, "cache warm-up skipped (n=%d, journal=%t)", n, s.journal != nil)
		return nil
	}

	start := time.Now()
	list, err := s.journal.LastN(ctx, n)
	if err != nil {
		s.log.Errorf(ctx, "journal.LastN failed n=%d err=%v", n, err)
		return err
	}
	if warmUpErr := s.cache.WarmUp(ctx, list); warmUpErr != nil {
		s.log.Warnf(ctx, "cache.WarmUp failed err=%v", warmUpErr)
	}
	s.log.Infof(ctx, "cache warmed with %d snapshots in %s", len(list), time.Since(start))
	return nil
}

// ------вспомогательные функции------

// printOrder — Composing → Encoding → Dispatching → {Succeeded, Failed}.
func (s *PrintService) printOrder(ctx context.Context, role domain.Role, order *domain.OrderSnapshot) (ok bool) {
	orderID := ""
	if order != nil {
		orderID = order.ID
	}
	ctx = ctxmeta.WithRole(ctxmeta.WithOrderID(ctx, orderID), string(role))
	ctx, span := s.tracer.Start(ctx, "print."+string(role), trace.WithAttributes(
		attribute.String("print.role", string(role)),
		attribute.String("order.id", orderID),
	))
	defer func() { endSpan(span, ok) }()
	defer s.recoverTo(ctx, role, &ok)

	profile, found := s.registry.Profile(role)
	if !found {
		s.log.Warnf(ctx, "no printer configured for role=%s", role)
		return false
	}

	span.AddEvent("composing")
	var (
		doc *domain.Document
		err error
	)
	switch role {
	case domain.RoleKitchen:
		doc, err = s.composer.Kitchen(ctx, order, profile)
	case domain.RoleCashier:
		doc, err = s.composer.Cashier(ctx, order, profile)
	default:
		err = fmt.Errorf("unsupported role %q", role)
	}
	if err != nil {
		metrics.ComposeFailures.WithLabelValues(string(role)).Inc()
		span.RecordError(err)
		s.log.Warnf(ctx, "compose failed order=%s role=%s err=%v", orderID, role, err)
		return false
	}

	ok = s.encodeAndDispatch(ctx, profile, doc)
	s.remember(ctx, role, order, ok)
	if ok {
		s.log.Infof(ctx, "printed order=%s role=%s device=%q", orderID, role, profile.DeviceName)
	}
	return ok
}

func (s *PrintService) encodeAndDispatch(ctx context.Context, profile domain.PrinterProfile, doc *domain.Document) bool {
	span := trace.SpanFromContext(ctx)

	span.AddEvent("encoding")
	buf := s.encoder.Encode(ctx, profile, doc)

	span.AddEvent("dispatching", trace.WithAttributes(attribute.Int("print.bytes", len(buf))))
	return s.dispatcher.Dispatch(ctx, domain.PrintJob{Profile: profile, Buffer: buf})
}

// remember — кэш и журнал. Их сбои только логируются и не меняют результат печати.
func (s *PrintService) remember(ctx context.Context, role domain.Role, order *domain.OrderSnapshot, printed bool) {
	if order == nil || strings.TrimSpace(order.ID) == "" {
		return
	}
	if printed && s.cache != nil {
		if err := s.cache.Set(ctx, order); err != nil {
			s.log.Warnf(ctx, "cache.Set failed order=%s err=%v", order.ID, err)
		}
	}
	if s.journal != nil {
		entry := &ports.JournalEntry{
			OrderID:   order.ID,
			Role:      role,
			Printed:   printed,
			PrintedAt: s.now(),
			Snapshot:  order.Clone(),
		}
		if err := s.journal.Record(ctx, entry); err != nil {
			s.log.Warnf(ctx, "journal.Record failed order=%s role=%s err=%v", order.ID, role, err)
		}
	}
}

func (s *PrintService) lookupSnapshot(ctx context.Context, orderID string) (*domain.OrderSnapshot, error) {
	if s.cache != nil {
		if snap, hit := s.cache.Get(ctx, orderID); hit {
			return snap, nil
		}
	}
	if s.journal == nil {
		return nil, nil
	}
	snap, err := s.journal.LastSnapshot(ctx, orderID)
	if err != nil {
		s.log.Errorf(ctx, "journal.LastSnapshot failed order=%s err=%v", orderID, err)
		return nil, fmt.Errorf("journal lookup: %w", err)
	}
	if snap != nil && s.cache != nil {
		if setErr := s.cache.Set(ctx, snap); setErr != nil {
			s.log.Warnf(ctx, "cache.Set failed order=%s err=%v", orderID, setErr)
		}
	}
	return snap, nil
}

// recoverTo — паника внутри конвейера превращается в false.
func (s *PrintService) recoverTo(ctx context.Context, role domain.Role, ok *bool) {
	if r := recover(); r != nil {
		s.log.Errorf(ctx, "print pipeline panic role=%s: %v", role, r)
		*ok = false
	}
}

func endSpan(span trace.Span, ok bool) {
	span.SetAttributes(attribute.Bool("print.succeeded", ok))
	if !ok {
		span.SetStatus(codes.Error, "print failed")
	}
	span.End()
}
