package monitoring

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusCollector registers and updates the hub's metrics. It
// implements both the service-level recorder and the storage failure
// hook, so one instance is threaded through the whole stack.
type PrometheusCollector struct {
	votesTotal         *prometheus.CounterVec
	chatMessagesTotal  *prometheus.CounterVec
	notificationsTotal *prometheus.CounterVec
	collectionSize     *prometheus.GaugeVec

	storageWriteFailures *prometheus.CounterVec

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

func NewPrometheusCollector() *PrometheusCollector {
	return &PrometheusCollector{
		votesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "metahub_votes_total",
			Help: "Total votes cast, by target kind",
		}, []string{"target"}),

		chatMessagesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "metahub_chat_messages_total",
			Help: "Total chat messages stored, by room",
		}, []string{"room"}),

		notificationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "metahub_notifications_total",
			Help: "Total notifications emitted, by type",
		}, []string{"type"}),

		collectionSize: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "metahub_collection_size",
			Help: "Current number of records per collection",
		}, []string{"collection"}),

		storageWriteFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "metahub_storage_write_failures_total",
			Help: "Failed persistence writes, by storage key",
		}, []string{"key"}),

		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "metahub_http_requests_total",
			Help: "Total HTTP requests, by method, path and status",
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "metahub_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"method", "path"}),
	}
}

func (p *PrometheusCollector) RecordVote(target string) {
	p.votesTotal.WithLabelValues(target).Inc()
}

func (p *PrometheusCollector) RecordChatMessage(room string) {
	p.chatMessagesTotal.WithLabelValues(room).Inc()
}

func (p *PrometheusCollector) RecordNotification(kind string) {
	p.notificationsTotal.WithLabelValues(kind).Inc()
}

func (p *PrometheusCollector) SetCollectionSize(collection string, size int) {
	p.collectionSize.WithLabelValues(collection).Set(float64(size))
}

func (p *PrometheusCollector) RecordWriteFailure(key string) {
	p.storageWriteFailures.WithLabelValues(key).Inc()
}

func (p *PrometheusCollector) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	p.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	p.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
