package kafka

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/pos_printer/internal/domain"
	"github.com/Gunvolt24/pos_printer/pkg/ctxmeta"
	"github.com/Gunvolt24/pos_printer/pkg/metrics"
	"github.com/Gunvolt24/pos_printer/pkg/validate"
)

// headerRequestID — заголовок сообщения со сквозным id (как X-Request-ID в HTTP).
const headerRequestID = "X-Request-ID"

// roleFailure — ошибка печати, знающая, какие роли не напечатались.
type roleFailure interface {
	FailedRoles() []domain.Role
}

// handleMessage печатает одно задание (only — роли для повтора).
// done — оффсет можно коммитить; failed — роли для следующей попытки, если известны.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message, only []domain.Role) (done bool, failed []domain.Role) {
	ctx, _ = ctxmeta.EnsureRequestID(ctx, headerValue(msg.Headers, headerRequestID))

	pctx, cancel := context.WithTimeout(ctx, c.processTimeout)
	err := c.service.HandleOrderEvent(pctx, msg.Value, only...)
	cancel()

	if err == nil {
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		return true, nil
	}
	metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()

	if errors.Is(err, validate.ErrInvalidOrder) {
		// повтор не поможет
		c.log.Warnf(ctx, "skip print job partition=%d offset=%d: %v", msg.Partition, msg.Offset, err)
		return true, nil
	}
	c.log.Errorf(ctx, "print job partition=%d offset=%d not confirmed: %v", msg.Partition, msg.Offset, err)

	var rf roleFailure
	if errors.As(err, &rf) {
		failed = rf.FailedRoles()
	}
	return false, failed
}

func (c *Consumer) commit(ctx context.Context, msg *kafka.Message) {
	if err := c.reader.CommitMessages(ctx, *msg); err != nil {
		c.log.Warnf(ctx, "commit offset=%d: %v", msg.Offset, err)
	}
}

func headerValue(headers []kafka.Header, key string) string {
	for _, h := range headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

// backoff — экспоненциальная задержка с equal-jitter: половина фиксирована, половина случайна.
type backoff struct {
	initial time.Duration
	max     time.Duration
	cur     time.Duration
	rnd     *rand.Rand
}

func newBackoff(initial, maxDelay time.Duration, seed int64) *backoff {
	return &backoff{initial: initial, max: maxDelay, cur: initial, rnd: rand.New(rand.NewSource(seed))}
}

// next — задержка для текущей попытки; следующая будет вдвое больше (не выше max).
func (b *backoff) next() time.Duration {
	d := b.jitter(b.cur)
	b.cur = min(b.cur*2, b.max)
	return d
}

func (b *backoff) reset() { b.cur = b.initial }

func (b *backoff) jitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	return half + time.Duration(b.rnd.Int63n(int64(d-half)+1))
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
