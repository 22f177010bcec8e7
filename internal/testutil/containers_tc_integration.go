//go:build integration

package testutil

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/redpanda"
	"github.com/testcontainers/testcontainers-go/wait"

	pgrepo "github.com/Gunvolt24/pos_printer/internal/repo/postgres"
	"github.com/Gunvolt24/pos_printer/migrations"
)

const (
	postgresImage = "postgres:16-alpine"
	redpandaImage = "docker.redpanda.com/redpandadata/redpanda:v23.3.8"
)

var tcLogger = log.New(os.Stdout, "[tc] ", log.LstdFlags)

// lifecycle — по строке лога на каждый этап жизни контейнера.
func lifecycle(l *log.Logger) tc.ContainerLifecycleHooks {
	stage := func(name string) tc.ContainerHook {
		return func(_ context.Context, c tc.Container) error {
			id := c.GetContainerID()
			if len(id) > 12 {
				id = id[:12]
			}
			l.Printf("%s id=%s", name, id)
			return nil
		}
	}
	return tc.ContainerLifecycleHooks{
		PreCreates: []tc.ContainerRequestHook{
			func(_ context.Context, req tc.ContainerRequest) error {
				l.Printf("create image=%s", req.Image)
				return nil
			},
		},
		PostStarts:     []tc.ContainerHook{stage("started")},
		PostReadies:    []tc.ContainerHook{stage("ready")},
		PostTerminates: []tc.ContainerHook{stage("terminated")},
	}
}

// PGContainer — Postgres с применённой схемой журнала.
type PGContainer struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	DSN       string
}

// StartPostgresTC — поднимает Postgres, применяет миграции и открывает пул тем же кодом, что и сервис.
func StartPostgresTC(ctx context.Context) (*PGContainer, func(context.Context) error, error) {
	pg, err := postgres.Run(
		ctx,
		postgresImage,
		tc.WithLifecycleHooks(lifecycle(tcLogger)),
		postgres.WithDatabase("pos_journal"),
		postgres.WithUsername("printer"),
		postgres.WithPassword("printer"),
		tc.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run postgres: %w", err)
	}
	terminate := func(cause error) (*PGContainer, func(context.Context) error, error) {
		_ = pg.Terminate(context.Background())
		return nil, nil, cause
	}

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return terminate(fmt.Errorf("conn string: %w", err))
	}
	applied, err := migrations.Up(ctx, dsn)
	if err != nil {
		return terminate(err)
	}
	tcLogger.Printf("migrations applied: %d", applied)

	pool, err := pgrepo.NewPool(ctx, dsn, 4)
	if err != nil {
		return terminate(err)
	}

	stop := func(c context.Context) error {
		pool.Close()
		return pg.Terminate(c)
	}
	return &PGContainer{Container: pg, DSN: dsn, Pool: pool}, stop, nil
}

// KafkaEnv — брокер Redpanda (Kafka API) для тестов консьюмера.
type KafkaEnv struct {
	Container *redpanda.Container
	Brokers   []string
	BaseTopic string
}

// StartKafkaTC — поднимает Redpanda; топики создаются тестами через EnsureTopic.
func StartKafkaTC(ctx context.Context, baseTopic string) (*KafkaEnv, func(context.Context) error, error) {
	rp, err := redpanda.Run(
		ctx,
		redpandaImage,
		tc.WithLifecycleHooks(lifecycle(tcLogger)),
		redpanda.WithAutoCreateTopics(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run redpanda: %w", err)
	}

	seed, err := rp.KafkaSeedBroker(ctx)
	if err != nil {
		_ = tc.TerminateContainer(rp)
		return nil, nil, fmt.Errorf("seed broker: %w", err)
	}

	env := &KafkaEnv{Container: rp, Brokers: []string{seed}, BaseTopic: baseTopic}
	return env, func(context.Context) error { return tc.TerminateContainer(rp) }, nil
}
