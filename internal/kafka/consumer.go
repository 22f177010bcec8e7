// Пакет kafka — приём заданий печати из топика: одно сообщение = один заказ (одна или обе роли).
package kafka

import (
	"context"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/pos_printer/internal/domain"
	"github.com/Gunvolt24/pos_printer/internal/ports"
	"github.com/Gunvolt24/pos_printer/pkg/metrics"
)

var _ ports.MessageConsumer = (*Consumer)(nil)

// reader — то, что нужно консьюмеру от kafka.Reader.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// printEventHandler — сервис печати: разбирает {"role","order"} и печатает чеки.
// only ограничивает печать перечисленными ролями (повтор после частичного сбоя).
type printEventHandler interface {
	HandleOrderEvent(ctx context.Context, raw []byte, only ...domain.Role) error
}

// Consumer читает задания печати с ручным коммитом оффсетов.
type Consumer struct {
	reader         reader
	service        printEventHandler
	log            ports.Logger
	processTimeout time.Duration
	fetchRetry     *backoff
	printRetry     *backoff
	closeOnce      sync.Once
}

// NewConsumer — нулевые таймауты в конфиге заменяются значениями по умолчанию.
func NewConsumer(cfg *ConsumerConfig, service printEventHandler, log ports.Logger) *Consumer {
	return &Consumer{
		reader:         kafka.NewReader(cfg.ReaderConfig()),
		service:        service,
		log:            log,
		processTimeout: orDefault(cfg.ProcessTimeout, 30*time.Second),
		fetchRetry: newBackoff(
			orDefault(cfg.RetryInitial, time.Second),
			orDefault(cfg.RetryMax, 30*time.Second),
			time.Now().UnixNano(),
		),
		printRetry: newBackoff(
			orDefault(cfg.RetryInitial, time.Second),
			orDefault(cfg.RetryMax, 30*time.Second),
			time.Now().UnixNano()+1,
		),
	}
}

// Run — цикл до отмены контекста. Оффсет коммитится после печати или для невалидного
// задания. Если принтер не подтвердил печать, то же сообщение повторяется с backoff
// (только для несработавших ролей), а следующие из партиции не читаются: коммит более
// позднего оффсета закрыл бы и неподтверждённый. При остановке сообщение остаётся
// незакоммиченным и придёт снова после перезапуска или ребаланса.
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "print consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			wait := c.fetchRetry.next()
			c.log.Warnf(ctx, "fetch print job: %v (retry in %s)", err, wait)
			if !sleepCtx(ctx, wait) {
				return ctx.Err()
			}
			continue
		}
		c.fetchRetry.reset()
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		if err := c.process(ctx, rc.Topic, &msg); err != nil {
			return err
		}
		c.commit(ctx, &msg)
	}
}

// process — печать одного сообщения до подтверждения; ошибка только при отмене контекста.
func (c *Consumer) process(ctx context.Context, topic string, msg *kafka.Message) error {
	defer c.printRetry.reset()

	var only []domain.Role
	for {
		done, failed := c.handleMessage(ctx, topic, msg, only)
		if done {
			return nil
		}
		if len(failed) > 0 {
			only = failed
		}
		wait := c.printRetry.next()
		c.log.Warnf(ctx, "retry print job partition=%d offset=%d roles=%v in %s", msg.Partition, msg.Offset, only, wait)
		if !sleepCtx(ctx, wait) {
			return ctx.Err()
		}
	}
}

// Close закрывает reader; повторные вызовы ничего не делают.
func (c *Consumer) Close() (err error) {
	c.closeOnce.Do(func() {
		err = c.reader.Close()
	})
	return err
}
