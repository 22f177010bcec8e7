//go:build integration

package testutil

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// TopicAndGroup — уникальные имена топика заданий печати и группы консьюмера.
func TopicAndGroup(base string) (topic, group string) {
	suffix := UniqSuffix()
	return base + "-" + suffix, base + "-printers-" + suffix
}

// seedAddr — первый брокер из bootstrap-строки, без схемы "PLAINTEXT://".
func seedAddr(raw string) string {
	first, _, _ := strings.Cut(raw, ",")
	first = strings.TrimSpace(first)
	if u, err := url.Parse(first); err == nil && u.Scheme != "" && u.Host != "" {
		return u.Host
	}
	return first
}

// EnsureTopic — создаёт топик с одной партицией и ждёт его в метаданных.
func EnsureTopic(ctx context.Context, broker, topic string) error {
	client := &kafka.Client{Addr: kafka.TCP(seedAddr(broker)), Timeout: 10 * time.Second}

	resp, err := client.CreateTopics(ctx, &kafka.CreateTopicsRequest{
		Topics: []kafka.TopicConfig{{Topic: topic, NumPartitions: 1, ReplicationFactor: 1}},
	})
	if err != nil {
		return fmt.Errorf("create topic %q: %w", topic, err)
	}
	if terr := resp.Errors[topic]; terr != nil && !errors.Is(terr, kafka.TopicAlreadyExists) {
		return fmt.Errorf("create topic %q: %w", topic, terr)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	tick := time.NewTicker(200 * time.Millisecond)
	defer tick.Stop()
	for {
		meta, merr := client.Metadata(ctx, &kafka.MetadataRequest{Topics: []string{topic}})
		if merr == nil && len(meta.Topics) == 1 && meta.Topics[0].Error == nil && len(meta.Topics[0].Partitions) > 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("topic %q not ready: %w", topic, ctx.Err())
		case <-tick.C:
		}
	}
}

// Publish — пишет события печати в топик с подтверждением от всех реплик.
func Publish(ctx context.Context, brokers []string, topic string, payloads ...[]byte) error {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		Balancer:     &kafka.LeastBytes{},
	}
	defer w.Close()

	msgs := make([]kafka.Message, 0, len(payloads))
	for _, p := range payloads {
		msgs = append(msgs, kafka.Message{Value: p})
	}
	return w.WriteMessages(ctx, msgs...)
}
