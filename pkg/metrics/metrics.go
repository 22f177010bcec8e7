package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	PrintJobs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "print_jobs_total",
			Help: "Print dispatches by printer role and result",
		},
		[]string{"role", "result"}, // ok|failed
	)
	PrintDispatchSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "print_dispatch_seconds",
			Help:    "Time spent handing a buffer to the OS print subsystem",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"role"},
	)
	ComposeFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "print_compose_failures_total",
			Help: "Receipts that could not be composed from order data",
		},
		[]string{"role"},
	)
	EncoderFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "print_encoder_fallback_total",
			Help: "Unknown printer settings replaced with defaults",
		},
		[]string{"setting"}, // device_type|character_set
	)
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snapshot_cache_operations_total",
			Help: "Reprint cache operations",
		},
		[]string{"op"}, // hit|miss|evicted (в т.ч. по TTL)
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "snapshot_cache_size",
			Help: "Number of order snapshots currently in cache",
		},
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует все метрики в глобальном реестре; повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			PrintJobs, PrintDispatchSeconds, ComposeFailures, EncoderFallbacks,
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
			CacheOps, CacheSize,
		)
	})
}
