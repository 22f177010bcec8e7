package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/pos_printer/config"
	cachemem "github.com/Gunvolt24/pos_printer/internal/cache/memory"
	"github.com/Gunvolt24/pos_printer/internal/dispatch"
	"github.com/Gunvolt24/pos_printer/internal/escpos"
	"github.com/Gunvolt24/pos_printer/internal/kafka"
	"github.com/Gunvolt24/pos_printer/internal/ports"
	"github.com/Gunvolt24/pos_printer/internal/receipt"
	"github.com/Gunvolt24/pos_printer/internal/repo/postgres"
	rest "github.com/Gunvolt24/pos_printer/internal/transport/http"
	"github.com/Gunvolt24/pos_printer/internal/usecase"
	"github.com/Gunvolt24/pos_printer/migrations"
	"github.com/Gunvolt24/pos_printer/pkg/logger"
	"github.com/Gunvolt24/pos_printer/pkg/metrics"
	"github.com/Gunvolt24/pos_printer/pkg/telemetry"
	"github.com/Gunvolt24/pos_printer/pkg/validate"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, consumer).
type App struct {
	Logger          ports.Logger          // логгер
	HTTPServer      *http.Server          // HTTP-сервер
	KafkaConsumer   ports.MessageConsumer // консьюмер событий печати; nil — Kafka выключена
	gracefulTimeout time.Duration         // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// NewPrintService — ядро печати без внешних хранилищ (CLI, тесты).
func NewPrintService(cfg *config.Config, cache ports.SnapshotCache, journal ports.PrintJournal, log ports.Logger) (*usecase.PrintService, error) {
	reg, err := NewRegistry(cfg)
	if err != nil {
		return nil, err
	}
	settings, err := ReceiptSettings(cfg)
	if err != nil {
		return nil, err
	}
	sender, err := NewSender(cfg, log)
	if err != nil {
		return nil, err
	}

	v := validate.NewOrderValidator()
	return usecase.NewPrintService(
		reg,
		receipt.NewComposer(settings, v, nil),
		escpos.NewEncoder(log),
		dispatch.NewDispatcher(sender, log),
		v,
		cache,
		journal,
		log,
	), nil
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}
	fail := func(err error) (*App, Cleanup, error) {
		cleanup()
		return nil, func() {}, err
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	if cfg.Tracing.Enabled {
		shutdownTrace, tErr := telemetry.SetupTracing(ctx, telemetry.Config{
			ServiceName: cfg.Tracing.ServiceName,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRatio: cfg.Tracing.SampleRatio,
		})
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			cleanups = append(cleanups, func() {
				if terr := shutdownTrace(context.Background()); terr != nil {
					logg.Warnf(ctx, "shutdown tracing: %v", terr)
				}
			})
		}
	}

	// Журнал печати в Postgres — опционален.
	var journal ports.PrintJournal
	if dsn := strings.TrimSpace(cfg.Postgres.DSN); dsn != "" {
		if cfg.Postgres.AutoMigrate {
			applied, mErr := migrations.Up(ctx, dsn)
			if mErr != nil {
				return fail(mErr)
			}
			logg.Infof(ctx, "journal migrations applied: %d", applied)
		}
		pool, pErr := postgres.NewPool(ctx, dsn, cfg.Postgres.MaxConns)
		if pErr != nil {
			return fail(pErr)
		}
		cleanups = append(cleanups, pool.Close)
		journal = postgres.NewPrintJournal(pool)
	} else {
		logg.Warnf(ctx, "postgres DSN is empty: print journal disabled")
	}

	snapshotCache := cachemem.NewLRUCacheTTL(cfg.Cache.Capacity, cfg.Cache.TTL)

	printService, err := NewPrintService(cfg, snapshotCache, journal, logg)
	if err != nil {
		return fail(err)
	}
	for _, p := range printService.Printers() {
		logg.Infof(ctx, "printer role=%s type=%s device=%s charset=%s width=%d",
			p.Role, p.DeviceType, p.DeviceName, p.CharacterSet, p.WidthColumns)
	}

	// Прогрев кэша перепечатки
	if n := cfg.Cache.WarmUpN; n > 0 {
		if err := printService.WarmUpCache(ctx, n); err != nil {
			logg.Warnf(ctx, "warm-up cache failed: %v", err)
		}
	}

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(printService, logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewRouter(httpHandler, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Консьюмер Kafka — только если включён.
	if cfg.Kafka.Enabled {
		app.KafkaConsumer = kafka.NewConsumer(&kafka.ConsumerConfig{
			Brokers:        cfg.Kafka.Brokers,
			GroupID:        cfg.Kafka.GroupID,
			Topic:          cfg.Kafka.Topic,
			StartOffset:    cfg.Kafka.StartOffset,
			ProcessTimeout: cfg.Kafka.ProcessTimeout,
			RetryInitial:   cfg.Kafka.RetryInitial,
			RetryMax:       cfg.Kafka.RetryMax,
		}, printService, logg)
		consumer := app.KafkaConsumer
		cleanups = append(cleanups, func() {
			if err := consumer.Close(); err != nil {
				logg.Warnf(ctx, "kafka consumer close error: %v", err)
			}
		})
	} else {
		logg.Infof(ctx, "kafka consumer disabled")
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер и консьюмера; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	// Запуск консьюмера.
	if a.KafkaConsumer != nil {
		go func() {
			a.Logger.Infof(ctx, "kafka consumer starting")
			if err := a.KafkaConsumer.Run(ctx); err != nil {
				errCh <- err
			}
		}()
	}

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера: дожидаемся печати, уже начатой обработчиками.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	// Остановка Kafka-консьюмера
	if a.KafkaConsumer != nil {
		if err := a.KafkaConsumer.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
