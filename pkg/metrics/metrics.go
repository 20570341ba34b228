package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	AuthVerifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_verifications_total",
			Help: "Session verification attempts",
		},
		[]string{"result"}, // ok|rejected
	)
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of order documents fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of order documents processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of order documents failed to process",
		},
		[]string{"topic"},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "summary_cache_operations_total",
			Help: "Summary cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired|invalidated
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "summary_cache_size",
			Help: "Number of user entries currently in the summary cache",
		},
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует все метрики в default-реестре.
// Повторные вызовы безопасны (no-op).
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			AuthVerifications,
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
			CacheOps, CacheSize,
		)
	})
}
