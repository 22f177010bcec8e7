package kafka

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	// maxEventBytes — тот же лимит, что и для тела HTTP-запроса на печать.
	maxEventBytes = 1 << 20
	// fetchMaxWait — чеки должны выходить сразу, поэтому не копим батч.
	fetchMaxWait = 500 * time.Millisecond
)

// ConsumerConfig — параметры консьюмера заданий печати.
type ConsumerConfig struct {
	Brokers     []string
	Topic       string
	GroupID     string
	StartOffset string // first | last (по умолчанию)

	ProcessTimeout time.Duration
	RetryInitial   time.Duration
	RetryMax       time.Duration
}

// ReaderConfig — конфиг kafka.Reader: ручной коммит, одно задание за раз.
func (c *ConsumerConfig) ReaderConfig() kafka.ReaderConfig {
	rc := kafka.ReaderConfig{
		Brokers:        c.Brokers,
		GroupID:        c.GroupID,
		Topic:          c.Topic,
		MinBytes:       1,
		MaxBytes:       maxEventBytes,
		MaxWait:        fetchMaxWait,
		CommitInterval: 0,
		StartOffset:    kafka.LastOffset,
	}
	if strings.EqualFold(strings.TrimSpace(c.StartOffset), "first") {
		rc.StartOffset = kafka.FirstOffset
	}
	return rc
}
