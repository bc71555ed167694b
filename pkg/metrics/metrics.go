package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Операции кэша по коллекциям.
var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "driver_cache_operations_total",
			Help: "Cache operations by collection",
		},
		[]string{"collection", "op"}, // hit|refill|refill_failed|busy|fallback|heal
	)
	CacheSize = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "driver_cache_items",
			Help: "Number of items currently cached per collection",
		},
		[]string{"collection"},
	)
	CacheRefillDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "driver_cache_refill_duration_seconds",
			Help:    "Duration of remote refills per collection",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"collection"},
	)
)

// Realtime-канал (WebSocket или Kafka).
var (
	RealtimeEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "driver_realtime_events_total",
			Help: "Realtime events handled by type and result",
		},
		[]string{"type", "result"}, // applied|ignored|invalid
	)
	RealtimeReconnects = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "driver_realtime_reconnects_total",
			Help: "Realtime connection attempts that failed",
		},
		[]string{"source"},
	)
	RealtimeDegraded = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "driver_realtime_degraded",
			Help: "1 when the realtime channel is degraded and only polling keeps the cache fresh",
		},
	)
)

// Kafka-источник событий.
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

var registerOnce sync.Once

// MustRegister — регистрирует все метрики; повторные вызовы безопасны.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			CacheOps, CacheSize, CacheRefillDuration,
			RealtimeEvents, RealtimeReconnects, RealtimeDegraded,
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
		)
	})
}
